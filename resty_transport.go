package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultUserAgent is sent by [RestyTransport] unless overridden with
// [WithUserAgent].
const DefaultUserAgent = "rest-client-go/1"

const defaultTimeout = 30 * time.Second

var (
	errUnsupportedAuthScheme = errors.New("unsupported authorization scheme")
	errMalformedBasicAuth    = errors.New("malformed basic authorization payload")
)

type payloadKey struct{}

type TransportOption func(*transportOptions)

type transportOptions struct {
	timeout     time.Duration
	userAgent   string
	logger      RequestLogger
	restyClient *resty.Client
}

// WithTimeout bounds the whole exchange, including reading the body.
func WithTimeout(timeout time.Duration) TransportOption {
	return func(o *transportOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

func WithUserAgent(userAgent string) TransportOption {
	return func(o *transportOptions) {
		if userAgent = strings.TrimSpace(userAgent); userAgent != "" {
			o.userAgent = userAgent
		}
	}
}

// WithTransportLogger routes resty's own diagnostics to logger.
func WithTransportLogger(logger RequestLogger) TransportOption {
	return func(o *transportOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithRestyClient makes the transport use c instead of a fresh client. The
// transport overrides c's timeout, user agent, redirect policy, cookie jar,
// retry count and pre-request hook.
func WithRestyClient(c *resty.Client) TransportOption {
	return func(o *transportOptions) {
		if c != nil {
			o.restyClient = c
		}
	}
}

// RestyTransport is the default [Transport], backed by resty. Redirects are
// not followed, cookies are not kept and keep-alives are disabled, so each
// connection lives only for the duration of one Send. It is safe for
// concurrent use.
type RestyTransport struct {
	client *resty.Client
}

func NewRestyTransport(opts ...TransportOption) *RestyTransport {
	o := &transportOptions{
		timeout:   defaultTimeout,
		userAgent: DefaultUserAgent,
		logger:    &NoopLogger{},
	}
	for _, opt := range opts {
		opt(o)
	}

	rc := o.restyClient
	if rc == nil {
		httpTransport := http.DefaultTransport.(*http.Transport).Clone()
		httpTransport.DisableKeepAlives = true
		rc = resty.New().SetTransport(httpTransport)
	}

	rc.SetTimeout(o.timeout).
		SetHeader("User-Agent", o.userAgent).
		SetLogger(o.logger).
		SetDisableWarn(true).
		SetRetryCount(0).
		SetCookieJar(nil).
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		})).
		SetPreRequestHook(attachPayload)

	return &RestyTransport{client: rc}
}

// Send executes req. Responses with status >= 400 are reported as a
// [RequestError] carrying that status.
func (t *RestyTransport) Send(ctx context.Context, req *Request) (*Response, error) {
	method := strings.ToUpper(strings.TrimSpace(req.Method))
	if method == "" {
		method = http.MethodGet
	}

	r, err := t.prepare(ctx, method, req)
	if err != nil {
		return nil, err
	}

	resp, err := r.Execute(method, req.URL)

	var status int
	if resp != nil {
		status = resp.StatusCode()
		if body := resp.RawBody(); body != nil {
			defer func() { _ = body.Close() }()
		}
	}

	if err != nil {
		return nil, classifyError(req, status, err)
	}

	if resp.IsError() {
		return nil, NewRequestError(req, fmt.Sprintf("The requested URL returned error: %d", status), status, nil)
	}

	out := &Response{StatusCode: status}

	if method != http.MethodHead && resp.RawBody() != nil {
		out.Body, err = io.ReadAll(resp.RawBody())
		if err != nil {
			return nil, classifyError(req, status, fmt.Errorf("read response body: %w", err))
		}
	}

	return out, nil
}

// prepare maps req onto a resty request. An Authorization header is turned
// into resty's native credentials rather than forwarded verbatim.
func (t *RestyTransport) prepare(ctx context.Context, method string, req *Request) (*resty.Request, error) {
	r := t.client.R().SetDoNotParseResponse(true)

	headers := make(map[string][]string, len(req.Header))
	for k, v := range req.Header {
		if http.CanonicalHeaderKey(k) == "Authorization" {
			continue
		}
		headers[k] = v
	}
	r.SetHeaderMultiValues(headers)

	if auth := req.Header.Get("Authorization"); auth != "" {
		if err := applyAuthorization(r, auth); err != nil {
			return nil, NewRequestError(req, err.Error(), http.StatusInternalServerError, err)
		}
	}

	switch method {
	case http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch, http.MethodOptions:
		ctx = context.WithValue(ctx, payloadKey{}, req.Body)
	}

	return r.SetContext(ctx), nil
}

func applyAuthorization(r *resty.Request, header string) error {
	scheme, credentials, _ := strings.Cut(strings.TrimSpace(header), " ")
	credentials = strings.TrimSpace(credentials)

	switch strings.ToUpper(scheme) {
	case "BASIC":
		decoded, err := base64.StdEncoding.DecodeString(credentials)
		if err != nil {
			return fmt.Errorf("%w: %w", errMalformedBasicAuth, err)
		}
		user, password, _ := strings.Cut(string(decoded), ":")
		r.SetBasicAuth(user, password)
	case "BEARER":
		if credentials == "" {
			// resty omits the header for an empty token
			r.SetHeader("Authorization", "Bearer ")
			break
		}
		r.SetAuthScheme("Bearer").SetAuthToken(credentials)
	default:
		return fmt.Errorf("%w: %q", errUnsupportedAuthScheme, scheme)
	}

	return nil
}

// attachPayload sets the raw request body for methods that carry one,
// replacing whatever body resty built. The body travels in the request
// context so it is attached verbatim for every such method, OPTIONS included,
// and no Content-Type is inferred.
func attachPayload(_ *resty.Client, hr *http.Request) error {
	payload, ok := hr.Context().Value(payloadKey{}).([]byte)
	if !ok {
		return nil
	}

	if len(payload) == 0 {
		hr.Body = http.NoBody
		hr.GetBody = func() (io.ReadCloser, error) { return http.NoBody, nil }
		hr.ContentLength = 0
		return nil
	}

	hr.Body = io.NopCloser(bytes.NewReader(payload))
	hr.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(payload)), nil
	}
	hr.ContentLength = int64(len(payload))

	return nil
}
