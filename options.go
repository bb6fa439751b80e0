package client

import (
	"net/http"
	"strings"
)

type Option func(*Options)

type Options struct {
	secret         string
	login          string
	transport      Transport
	requestLogger  RequestLogger
	requestHeaders http.Header
}

func newClientOptions() *Options {
	return &Options{
		requestLogger:  &NoopLogger{},
		requestHeaders: make(http.Header),
	}
}

// WithSecret sets the password (AuthBasic) or token (AuthBearer). An empty
// secret is treated as not supplied.
func WithSecret(secret string) Option {
	return func(o *Options) {
		o.secret = secret
	}
}

// WithLogin sets the AuthBasic user name. An empty login is treated as not
// supplied.
func WithLogin(login string) Option {
	return func(o *Options) {
		o.login = login
	}
}

func WithTransport(transport Transport) Option {
	return func(o *Options) {
		if transport != nil {
			o.transport = transport
		}
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

// WithRequestHeader adds a header to every request. The Authorization header
// is owned by the auth mode and cannot be set this way.
func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" || strings.EqualFold(header, "Authorization") {
			return
		}

		o.requestHeaders.Add(header, value)
	}
}
