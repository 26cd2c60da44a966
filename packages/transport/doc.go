// Package transport executes single HTTP requests against an envelope-style
// JSON API and normalizes every outcome into a Result.
//
// It wraps the standard library's http package with:
//   - Timeout-bounded execution via context cancellation
//   - Query-string composition that preserves parameters already embedded
//     in the request path
//   - An injected status-validation predicate
//   - Error normalization into a single APIError shape
//
// The executor never returns a Go error from Do: success and failure are
// both expressed as a Result, and the facade layer decides how to surface
// failures to callers.
package transport
