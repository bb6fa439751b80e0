package client

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"net"
	"strings"
	"syscall"
)

// classifyError maps a failed send into the two-kind taxonomy. Connectivity
// failures become a [NetworkError]; anything else becomes a [RequestError]
// carrying the last observed status, 0 if none.
func classifyError(req *Request, status int, err error) error {
	if isConnectivityFailure(err) {
		return NewNetworkError(req, err.Error(), err)
	}

	return NewRequestError(req, strings.TrimSpace(err.Error()), status, err)
}

// isConnectivityFailure reports whether err means the server could not be
// reached: DNS or proxy resolution, refused connection, TLS handshake failure
// or timeout. Cancellation by the caller is not a connectivity failure.
func isConnectivityFailure(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && (opErr.Op == "dial" || opErr.Op == "proxyconnect") {
		return true
	}

	if isTLSHandshakeFailure(err) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isTLSHandshakeFailure(err error) bool {
	var (
		recordErr    tls.RecordHeaderError
		alertErr     tls.AlertError
		verifyErr    *tls.CertificateVerificationError
		authorityErr x509.UnknownAuthorityError
		hostnameErr  x509.HostnameError
		invalidErr   x509.CertificateInvalidError
	)

	return errors.As(err, &recordErr) ||
		errors.As(err, &alertErr) ||
		errors.As(err, &verifyErr) ||
		errors.As(err, &authorityErr) ||
		errors.As(err, &hostnameErr) ||
		errors.As(err, &invalidErr)
}
