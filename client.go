package client

import (
	"context"
	"fmt"
	"net/http"
)

// Client dispatches requests against a fixed base origin. Its configuration
// is immutable after [New]; concurrent calls are safe when the configured
// [Transport] is.
type Client struct {
	baseOrigin string
	authMode   AuthMode
	secret     string
	login      string
	transport  Transport
	options    *Options
}

// New creates a Client for baseURI. Only the scheme, host and port of baseURI
// are kept. With AuthBasic, a login or secret not supplied through
// [WithLogin] or [WithSecret] is taken from the user-info of baseURI.
func New(baseURI string, mode AuthMode, opts ...Option) (*Client, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAuthMethod, mode)
	}

	options := newClientOptions()
	for _, o := range opts {
		o(options)
	}

	parsed, err := parseBaseURI(baseURI)
	if err != nil {
		return nil, err
	}

	c := &Client{
		baseOrigin: parsed.origin,
		authMode:   mode,
		secret:     options.secret,
		login:      options.login,
		transport:  options.transport,
		options:    options,
	}

	if mode == AuthBasic {
		if c.secret == "" && parsed.hasPassword {
			c.secret = parsed.password
		}
		if c.login == "" {
			c.login = parsed.user
		}
	}

	if c.transport == nil {
		c.transport = NewRestyTransport(WithTransportLogger(options.requestLogger))
	}

	return c, nil
}

// BaseOrigin returns the scheme, host and port every endpoint is appended to.
func (c *Client) BaseOrigin() string {
	return c.baseOrigin
}

// AuthMode returns the auth mode fixed at construction.
func (c *Client) AuthMode() AuthMode {
	return c.authMode
}

// Login returns the resolved AuthBasic login.
func (c *Client) Login() string {
	return c.login
}

// Get is shorthand for Call(ctx, endpoint, http.MethodGet, "").
func (c *Client) Get(ctx context.Context, endpoint string) (int, string) {
	return c.Call(ctx, endpoint, http.MethodGet, "")
}

// Call sends method to the base origin followed by endpoint and returns the
// response status and body. Classified transport failures are returned the
// same way: a [NetworkError] as ([NetworkFailureStatus], message) and a
// [RequestError] as (code, message).
func (c *Client) Call(ctx context.Context, endpoint, method, body string) (int, string) {
	resp, err := c.dispatch(ctx, endpoint, method, body)
	if err != nil {
		status, message, ok := classified(err)
		if !ok {
			c.options.requestLogger.Errorf("%s %s%s: unclassified transport error: %v", method, c.baseOrigin, endpoint, err)
			return 0, err.Error()
		}

		c.options.requestLogger.Warnf("%s %s%s failed with %d: %s", method, c.baseOrigin, endpoint, status, message)

		return status, message
	}

	return resp.StatusCode, string(resp.Body)
}

func (c *Client) dispatch(ctx context.Context, endpoint, method, body string) (*Response, error) {
	req := NewRequest(method, c.baseOrigin+endpoint, []byte(body))

	for k, v := range c.options.requestHeaders {
		req.Header[k] = append([]string(nil), v...)
	}

	if c.authMode != AuthNone {
		req.Header.Set("Authorization", authorizationHeader(c.authMode, c.login, c.secret))
	}

	c.options.requestLogger.Debugf("%s %s (auth: %s)", req.Method, req.URL, c.authMode)

	resp, err := c.transport.Send(ctx, req)
	if err == nil && resp == nil {
		err = fmt.Errorf("transport %T returned neither response nor error", c.transport)
	}

	return resp, err
}
