package client

import (
	"net/http"
	"strings"
)

// Request is a single outbound request built by [Client]. It is created per
// call and never reused.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// NewRequest builds a Request with an uppercased method. An empty method
// means GET.
func NewRequest(method, url string, body []byte) *Request {
	method = strings.ToUpper(strings.TrimSpace(method))
	if method == "" {
		method = http.MethodGet
	}

	return &Request{
		Method: method,
		URL:    url,
		Header: make(http.Header),
		Body:   body,
	}
}

// Response is what a [Transport] returns for a completed exchange.
type Response struct {
	StatusCode int
	Body       []byte
}
