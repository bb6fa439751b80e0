package client

import (
	"errors"
	"fmt"
)

// NetworkFailureStatus is the status reported by [Client.Call] when the
// server could not be reached at all.
const NetworkFailureStatus = 404

var (
	// ErrUnknownAuthMethod is returned by [New] when the auth mode is not one
	// of [AuthNone], [AuthBasic] or [AuthBearer].
	ErrUnknownAuthMethod = errors.New("unknown auth method")

	// ErrInvalidBaseURI is returned by [New] when the base URI cannot be parsed.
	ErrInvalidBaseURI = errors.New("invalid base URI")
)

// NetworkError is returned by a [Transport] when connectivity could not be
// established: DNS or proxy resolution, connection refusal, TLS handshake
// failure or timeout.
type NetworkError struct {
	Request *Request
	Message string
	Code    int
	Err     error
}

// NewNetworkError creates a NetworkError carrying [NetworkFailureStatus].
func NewNetworkError(req *Request, message string, err error) *NetworkError {
	return &NetworkError{
		Request: req,
		Message: message,
		Code:    NetworkFailureStatus,
		Err:     err,
	}
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error (%d): %s", e.Code, e.Message)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// RequestError is returned by a [Transport] when the request was rejected
// locally or the server answered with an error status. Code is the last HTTP
// status observed, 0 if none, or 500 for transport configuration errors.
type RequestError struct {
	Request *Request
	Message string
	Code    int
	Err     error
}

// NewRequestError creates a RequestError.
func NewRequestError(req *Request, message string, code int, err error) *RequestError {
	return &RequestError{
		Request: req,
		Message: message,
		Code:    code,
		Err:     err,
	}
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request error (%d): %s", e.Code, e.Message)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// IsNetworkError reports whether err is, or wraps, a [NetworkError].
func IsNetworkError(err error) bool {
	var e *NetworkError
	return errors.As(err, &e)
}

// IsRequestError reports whether err is, or wraps, a [RequestError].
func IsRequestError(err error) bool {
	var e *RequestError
	return errors.As(err, &e)
}

// classified flattens a classified transport failure into a status and
// message. ok is false for errors outside the taxonomy.
func classified(err error) (status int, message string, ok bool) {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return NetworkFailureStatus, netErr.Message, true
	}

	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Code, reqErr.Message, true
	}

	return 0, "", false
}
