package client

import "context"

// Transport sends a fully built [Request].
//
// On failure a Transport returns a [*NetworkError] when the server could not
// be reached, or a [*RequestError] for everything else. Implementations
// document whether they are safe for concurrent use.
type Transport interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}

// TransportFunc adapts an ordinary function to the [Transport] interface.
type TransportFunc func(ctx context.Context, req *Request) (*Response, error)

// Send calls f(ctx, req).
func (f TransportFunc) Send(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}
