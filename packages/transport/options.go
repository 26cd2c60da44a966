package transport

import (
	"time"

	"github.com/envokit/envokit/packages/auth"
	"github.com/envokit/envokit/packages/metrics"
)

type Option func(*Executor)

// WithTimeout sets the per-request deadline.
func WithTimeout(d time.Duration) Option {
	return func(e *Executor) {
		e.timeout = d
	}
}

// WithValidateStatus replaces the predicate deciding which status codes
// count as success.
func WithValidateStatus(fn func(status int) bool) Option {
	return func(e *Executor) {
		e.validate = fn
	}
}

// WithDefaultHeader sets a header applied to every request unless the call
// overrides it.
func WithDefaultHeader(key, value string) Option {
	return func(e *Executor) {
		e.headers[key] = value
	}
}

// WithDefaultHeaders sets multiple default headers.
func WithDefaultHeaders(headers map[string]string) Option {
	return func(e *Executor) {
		for k, v := range headers {
			e.headers[k] = v
		}
	}
}

// WithAuth applies an authentication provider to every request.
func WithAuth(p auth.Provider) Option {
	return func(e *Executor) {
		e.auth = p
	}
}

// WithRecorder records latency and outcome for every finished call.
func WithRecorder(r *metrics.Recorder) Option {
	return func(e *Executor) {
		e.recorder = r
	}
}

// WithRequestID attaches a generated X-Request-ID header to requests that
// do not carry one.
func WithRequestID() Option {
	return func(e *Executor) {
		e.requestID = true
	}
}
