package client

import (
	"fmt"
	"net/url"
	"strings"
)

var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
}

// parsedBaseURI is the part of a configured base URI the client keeps.
type parsedBaseURI struct {
	origin      string
	user        string
	password    string
	hasPassword bool
}

// parseBaseURI reduces uri to its origin (scheme, host and non-default port)
// and extracts any embedded user-info. Path, query and fragment are dropped:
// endpoints are appended to the origin verbatim.
func parseBaseURI(uri string) (parsedBaseURI, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return parsedBaseURI{}, fmt.Errorf("%w: %w", ErrInvalidBaseURI, err)
	}

	var out parsedBaseURI

	scheme := strings.ToLower(u.Scheme)
	if scheme != "" {
		out.origin = scheme + ":"
	}

	hostport := strings.ToLower(u.Hostname())
	if strings.Contains(hostport, ":") {
		hostport = "[" + hostport + "]"
	}
	if port := u.Port(); port != "" && port != defaultPorts[scheme] {
		hostport += ":" + port
	}
	if hostport != "" {
		out.origin += "//" + hostport
	}

	if u.User != nil {
		out.user = u.User.Username()
		out.password, out.hasPassword = u.User.Password()
	}

	return out, nil
}
