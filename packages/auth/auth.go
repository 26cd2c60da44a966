package auth

import (
	"net/http"
)

// DefaultAPIKeyHeader is used when an APIKey provider has no header name set.
const DefaultAPIKeyHeader = "X-API-Key"

// Provider applies an authentication scheme to an outgoing request.
// Providers run before per-call headers, so callers can still override
// anything a provider sets.
type Provider interface {
	Apply(req *http.Request)
}

// Basic authenticates with HTTP basic auth.
type Basic struct {
	Username string
	Password string
}

func (b Basic) Apply(req *http.Request) {
	req.SetBasicAuth(b.Username, b.Password)
}

// Bearer authenticates with a bearer token.
type Bearer struct {
	Token string
}

func (b Bearer) Apply(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+b.Token)
}

// APIKey authenticates by sending a key in a header.
type APIKey struct {
	Header string
	Key    string
}

func (a APIKey) Apply(req *http.Request) {
	header := a.Header
	if header == "" {
		header = DefaultAPIKeyHeader
	}
	req.Header.Set(header, a.Key)
}
