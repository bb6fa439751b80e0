package client

import (
	"encoding/base64"
	"errors"
	"testing"
)

func TestAuthorizationHeader_Basic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		login  string
		secret string
	}{
		{"user", "pass"},
		{"", "pass"},
		{"user", ""},
		{"", ""},
		{"üser", "p:a:ss"},
	}

	for _, tt := range tests {
		expected := "Basic " + base64.StdEncoding.EncodeToString([]byte(tt.login+":"+tt.secret))

		if got := authorizationHeader(AuthBasic, tt.login, tt.secret); got != expected {
			t.Errorf("login=%q secret=%q: expected %q, got %q", tt.login, tt.secret, expected, got)
		}
	}
}

func TestAuthorizationHeader_Bearer(t *testing.T) {
	t.Parallel()

	if got := authorizationHeader(AuthBearer, "ignored", "my-token"); got != "Bearer my-token" {
		t.Errorf("expected 'Bearer my-token', got %q", got)
	}
}

func TestAuthorizationHeader_PanicsOnNone(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("expected panic for AuthNone")
		}
	}()

	authorizationHeader(AuthNone, "", "")
}

func TestParseAuthMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected AuthMode
		wantErr  bool
	}{
		{"none", AuthNone, false},
		{"", AuthNone, false},
		{"Basic", AuthBasic, false},
		{" BEARER ", AuthBearer, false},
		{"digest", AuthNone, true},
	}

	for _, tt := range tests {
		got, err := ParseAuthMode(tt.input)

		if tt.wantErr {
			if !errors.Is(err, ErrUnknownAuthMethod) {
				t.Errorf("%q: expected ErrUnknownAuthMethod, got %v", tt.input, err)
			}
			continue
		}

		if err != nil || got != tt.expected {
			t.Errorf("%q: expected %s, got %s (err=%v)", tt.input, tt.expected, got, err)
		}
	}
}

func TestAuthMode_String(t *testing.T) {
	t.Parallel()

	if AuthBasic.String() != "basic" || AuthBearer.String() != "bearer" || AuthNone.String() != "none" {
		t.Error("unexpected mode names")
	}

	if AuthMode(42).String() != "AuthMode(42)" {
		t.Errorf("unexpected name for invalid mode: %s", AuthMode(42))
	}

	if AuthMode(42).Valid() {
		t.Error("expected AuthMode(42) to be invalid")
	}
}
