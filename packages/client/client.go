package client

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/envokit/envokit/packages/auth"
	"github.com/envokit/envokit/packages/metrics"
	"github.com/envokit/envokit/packages/transport"
)

// DefaultTimeoutSeconds bounds requests when the configuration leaves the
// timeout unset.
const DefaultTimeoutSeconds = 60

// Config is the documented option set. Zero values fall back to defaults:
// 60s timeout and a 2xx status predicate.
type Config struct {
	BaseURL        string
	TimeoutSeconds int
	ValidateStatus func(status int) bool
	Headers        map[string]string
	Auth           auth.Provider
	RequestID      bool
	Recorder       *metrics.Recorder
}

// Client forwards logical requests to its current executor. Initialize
// replaces the executor atomically, so calls already in flight keep the
// instance they started with.
type Client struct {
	exec atomic.Pointer[transport.Executor]
}

// New builds a client and initializes it from cfg.
func New(cfg Config) (*Client, error) {
	c := &Client{}
	if err := c.Initialize(cfg); err != nil {
		return nil, err
	}
	return c, nil
}

// Initialize merges cfg over defaults and installs a fresh executor.
// Safe to call again to reconfigure; the previous executor is discarded,
// never mutated.
func (c *Client) Initialize(cfg Config) error {
	timeout := DefaultTimeoutSeconds
	if cfg.TimeoutSeconds > 0 {
		timeout = cfg.TimeoutSeconds
	}

	opts := []transport.Option{
		transport.WithTimeout(time.Duration(timeout) * time.Second),
	}
	if cfg.ValidateStatus != nil {
		opts = append(opts, transport.WithValidateStatus(cfg.ValidateStatus))
	}
	if len(cfg.Headers) > 0 {
		opts = append(opts, transport.WithDefaultHeaders(cfg.Headers))
	}
	if cfg.Auth != nil {
		opts = append(opts, transport.WithAuth(cfg.Auth))
	}
	if cfg.RequestID {
		opts = append(opts, transport.WithRequestID())
	}
	if cfg.Recorder != nil {
		opts = append(opts, transport.WithRecorder(cfg.Recorder))
	}

	exec, err := transport.NewExecutor(cfg.BaseURL, opts...)
	if err != nil {
		return fmt.Errorf("initialize client: %w", err)
	}

	c.exec.Store(exec)
	return nil
}

// Do issues one request and returns the raw payload from the envelope's
// "data" field. A failure Result comes back as the *transport.APIError.
func (c *Client) Do(ctx context.Context, method transport.Method, path string, query map[string]string, body any, headers map[string]string) ([]byte, error) {
	exec := c.exec.Load()
	if exec == nil {
		return nil, &transport.APIError{Message: "client is not initialized"}
	}

	res := exec.Do(ctx, transport.RequestSpec{
		Method:  method,
		Path:    path,
		Query:   query,
		Body:    body,
		Headers: headers,
	})
	if !res.OK() {
		return nil, res.Err()
	}
	return res.Payload(), nil
}

// Execute issues one request and decodes the payload into T. Methods cannot
// carry type parameters, so typed decoding lives on this function instead.
func Execute[T any](ctx context.Context, c *Client, method transport.Method, path string, query map[string]string, body any, headers map[string]string) (T, error) {
	var out T

	payload, err := c.Do(ctx, method, path, query, body, headers)
	if err != nil {
		return out, err
	}
	if len(payload) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(payload, &out); err != nil {
		return out, &transport.APIError{Message: fmt.Sprintf("decode response payload: %v", err)}
	}
	return out, nil
}

func (c *Client) Get(ctx context.Context, path string, query map[string]string) ([]byte, error) {
	return c.Do(ctx, transport.MethodGet, path, query, nil, nil)
}

func (c *Client) Post(ctx context.Context, path string, body any) ([]byte, error) {
	return c.Do(ctx, transport.MethodPost, path, nil, body, nil)
}

func (c *Client) Put(ctx context.Context, path string, body any) ([]byte, error) {
	return c.Do(ctx, transport.MethodPut, path, nil, body, nil)
}

func (c *Client) Patch(ctx context.Context, path string, body any) ([]byte, error) {
	return c.Do(ctx, transport.MethodPatch, path, nil, body, nil)
}

func (c *Client) Delete(ctx context.Context, path string, query map[string]string) ([]byte, error) {
	return c.Do(ctx, transport.MethodDelete, path, query, nil, nil)
}
