package client

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// AuthMode selects how [Client] authenticates its requests.
type AuthMode int

const (
	// AuthNone sends no Authorization header.
	AuthNone AuthMode = iota
	// AuthBasic sends HTTP Basic credentials built from the login and secret.
	AuthBasic
	// AuthBearer sends the secret as a bearer token.
	AuthBearer
)

func (m AuthMode) String() string {
	switch m {
	case AuthNone:
		return "none"
	case AuthBasic:
		return "basic"
	case AuthBearer:
		return "bearer"
	default:
		return fmt.Sprintf("AuthMode(%d)", int(m))
	}
}

// Valid reports whether m is one of the supported modes.
func (m AuthMode) Valid() bool {
	switch m {
	case AuthNone, AuthBasic, AuthBearer:
		return true
	default:
		return false
	}
}

// ParseAuthMode parses "none", "basic" or "bearer" (case-insensitive).
func ParseAuthMode(s string) (AuthMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return AuthNone, nil
	case "basic":
		return AuthBasic, nil
	case "bearer":
		return AuthBearer, nil
	default:
		return AuthNone, fmt.Errorf("%w: %q", ErrUnknownAuthMethod, s)
	}
}

// authorizationHeader derives the Authorization header value. It must only be
// called with AuthBasic or AuthBearer; New rejects every other mode.
func authorizationHeader(mode AuthMode, login, secret string) string {
	switch mode {
	case AuthBasic:
		return "Basic " + base64.StdEncoding.EncodeToString([]byte(login+":"+secret))
	case AuthBearer:
		return "Bearer " + secret
	default:
		panic(fmt.Sprintf("client: authorization header requested for %s", mode))
	}
}
