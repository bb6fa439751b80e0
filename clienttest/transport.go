// Package clienttest provides a fake [client.Transport] that routes requests
// by exact target URL, for testing code built on [client.Client].
package clienttest

import (
	"context"
	"sync"

	client "github.com/peteraglen/rest-client-go"
)

// UnroutedMessage is the message of the RequestError returned for a URL with
// no route.
const UnroutedMessage = "other error"

// HandlerFunc answers a routed request.
type HandlerFunc func(req *client.Request) (*client.Response, error)

// Transport is a fake transport. It is safe for concurrent use.
type Transport struct {
	mu       sync.Mutex
	routes   map[string]HandlerFunc
	requests []*client.Request
}

func New() *Transport {
	return &Transport{routes: make(map[string]HandlerFunc)}
}

// Respond routes url to a canned response.
func (t *Transport) Respond(url string, status int, body string) *Transport {
	return t.RespondFunc(url, func(*client.Request) (*client.Response, error) {
		return &client.Response{StatusCode: status, Body: []byte(body)}, nil
	})
}

// RespondFunc routes url to fn.
func (t *Transport) RespondFunc(url string, fn HandlerFunc) *Transport {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.routes[url] = fn

	return t
}

// FailNetwork makes requests to url fail with a NetworkError.
func (t *Transport) FailNetwork(url, message string) *Transport {
	return t.RespondFunc(url, func(req *client.Request) (*client.Response, error) {
		return nil, client.NewNetworkError(req, message, nil)
	})
}

// FailRequest makes requests to url fail with a RequestError.
func (t *Transport) FailRequest(url string, code int, message string) *Transport {
	return t.RespondFunc(url, func(req *client.Request) (*client.Response, error) {
		return nil, client.NewRequestError(req, message, code, nil)
	})
}

// Send records req and answers it from the matching route.
func (t *Transport) Send(_ context.Context, req *client.Request) (*client.Response, error) {
	t.mu.Lock()
	t.requests = append(t.requests, req)
	fn, ok := t.routes[req.URL]
	t.mu.Unlock()

	if !ok {
		return nil, client.NewRequestError(req, UnroutedMessage, 500, nil)
	}

	return fn(req)
}

// Requests returns the requests received so far, oldest first.
func (t *Transport) Requests() []*client.Request {
	t.mu.Lock()
	defer t.mu.Unlock()

	return append([]*client.Request(nil), t.requests...)
}

// EchoAuthorization is a HandlerFunc answering 200 with the request's
// Authorization header as the body.
func EchoAuthorization(req *client.Request) (*client.Response, error) {
	return &client.Response{StatusCode: 200, Body: []byte(req.Header.Get("Authorization"))}, nil
}
