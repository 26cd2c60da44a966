package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"time"

	"github.com/google/uuid"

	"github.com/envokit/envokit/packages/auth"
	"github.com/envokit/envokit/packages/envelope"
	"github.com/envokit/envokit/packages/metrics"
)

const (
	// DefaultTimeout bounds a request when no timeout is configured.
	DefaultTimeout = 60 * time.Second

	contentTypeHeader = "Content-Type"
	contentTypeJSON   = "application/json"
	requestIDHeader   = "X-Request-ID"
)

// Executor issues one HTTP request per Do call. All fields are fixed at
// construction; concurrent calls share only read-only state.
type Executor struct {
	baseURL    *neturl.URL
	timeout    time.Duration
	validate   func(status int) bool
	headers    map[string]string
	auth       auth.Provider
	recorder   *metrics.Recorder
	requestID  bool
	httpClient *http.Client
}

// NewExecutor builds an executor bound to baseURL. The base URL must be an
// absolute http or https URL.
func NewExecutor(baseURL string, opts ...Option) (*Executor, error) {
	u, err := neturl.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported base URL scheme: %q (only http and https are allowed)", u.Scheme)
	}
	if u.Host == "" {
		return nil, errors.New("base URL must have a host")
	}

	e := &Executor{
		baseURL:    u,
		timeout:    DefaultTimeout,
		validate:   DefaultValidateStatus,
		headers:    make(map[string]string),
		httpClient: &http.Client{},
	}

	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// DefaultValidateStatus treats any 2xx status as success.
func DefaultValidateStatus(status int) bool {
	return status >= 200 && status < 300
}

// Do executes the request described by spec and returns a Result. It never
// returns a Go error: transport failures, timeouts, malformed bodies and
// rejected status codes are all normalized into failure Results.
func (e *Executor) Do(ctx context.Context, spec RequestSpec) Result {
	start := time.Now()
	res := e.do(ctx, spec)

	if e.recorder != nil {
		outcome := metrics.OutcomeSuccess
		if err := res.Err(); err != nil {
			outcome = metrics.OutcomeFailure
			if err.IsTimeout() {
				outcome = metrics.OutcomeTimeout
			}
		}
		e.recorder.Record(spec.Label(), time.Since(start), outcome)
	}

	return res
}

func (e *Executor) do(ctx context.Context, spec RequestSpec) Result {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	requestURL, err := e.buildURL(spec.Path, spec.Query)
	if err != nil {
		return Failure(&APIError{Message: err.Error()})
	}

	var body io.Reader
	if spec.Body != nil {
		encoded, err := json.Marshal(spec.Body)
		if err != nil {
			return Failure(&APIError{Message: fmt.Sprintf("encode request body: %v", err)})
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, string(spec.Method), requestURL, body)
	if err != nil {
		return Failure(&APIError{Message: err.Error()})
	}

	for k, v := range e.headers {
		req.Header.Set(k, v)
	}
	if e.auth != nil {
		e.auth.Apply(req)
	}
	for k, v := range spec.Headers {
		req.Header.Set(k, v)
	}
	if req.Header.Get(contentTypeHeader) == "" {
		req.Header.Set(contentTypeHeader, contentTypeJSON)
	}
	if e.requestID && req.Header.Get(requestIDHeader) == "" {
		req.Header.Set(requestIDHeader, uuid.NewString())
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return Failure(e.transportError(err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Failure(e.transportError(err))
	}

	if !e.validate(resp.StatusCode) {
		apiErr := &APIError{Message: statusFailureMessage, Status: resp.StatusCode}
		if code, ok := envelope.Code(raw); ok {
			apiErr.Code = code
			apiErr.HasCode = true
		}
		return Failure(apiErr)
	}

	if !envelope.Valid(raw) {
		return Failure(&APIError{Message: "response body is not valid JSON"})
	}

	return Success(envelope.Payload(raw))
}

// buildURL resolves path against the base URL and appends the explicit
// query map after any query already embedded in path. Keys present in both
// are kept twice; the merge appends rather than deduplicates.
func (e *Executor) buildURL(path string, query map[string]string) (string, error) {
	ref, err := neturl.Parse(path)
	if err != nil {
		return "", fmt.Errorf("invalid request path %q: %w", path, err)
	}

	u := e.baseURL.ResolveReference(ref)

	if len(query) > 0 {
		extra := neturl.Values{}
		for k, v := range query {
			extra.Set(k, v)
		}
		if u.RawQuery != "" {
			u.RawQuery += "&" + extra.Encode()
		} else {
			u.RawQuery = extra.Encode()
		}
	}

	return u.String(), nil
}

// transportError maps a round-trip failure onto the error shape. A fired
// deadline becomes a timeout-worded failure; everything else keeps the
// underlying message. Neither carries an HTTP status.
func (e *Executor) transportError(err error) *APIError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &APIError{Message: fmt.Sprintf("%s after %s", timeoutMessagePrefix, e.timeout)}
	}
	return &APIError{Message: err.Error()}
}
