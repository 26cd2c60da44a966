package transport

import (
	"fmt"
	"net/http"
	"strings"
)

// Method is the closed set of HTTP methods the API surface uses.
type Method string

const (
	MethodGet    Method = http.MethodGet
	MethodPost   Method = http.MethodPost
	MethodPut    Method = http.MethodPut
	MethodPatch  Method = http.MethodPatch
	MethodDelete Method = http.MethodDelete
)

// ParseMethod maps a case-insensitive method name onto the closed set.
func ParseMethod(s string) (Method, error) {
	switch m := Method(strings.ToUpper(s)); m {
	case MethodGet, MethodPost, MethodPut, MethodPatch, MethodDelete:
		return m, nil
	default:
		return "", fmt.Errorf("unsupported method %q", s)
	}
}

// RequestSpec describes one logical request. Path may be absolute or
// relative to the executor's base URL and may already embed a query string;
// Query entries are appended after it without deduplication. Body is
// JSON-serialized when non-nil.
type RequestSpec struct {
	Method  Method
	Path    string
	Query   map[string]string
	Body    any
	Headers map[string]string
}

// Label identifies the request for metrics breakdowns.
func (s RequestSpec) Label() string {
	return string(s.Method) + " " + s.Path
}
