package transport

// Result is the tagged outcome of one executed request: either a success
// carrying the raw payload bytes, or a failure carrying an APIError. The
// tag is authoritative; a Result never holds both.
type Result struct {
	ok      bool
	payload []byte
	err     *APIError
}

// Success builds a success Result carrying the raw "data" payload.
func Success(payload []byte) Result {
	return Result{ok: true, payload: payload}
}

// Failure builds a failure Result.
func Failure(err *APIError) Result {
	return Result{err: err}
}

// OK reports whether the request succeeded.
func (r Result) OK() bool {
	return r.ok
}

// Payload returns the raw JSON payload. Nil on failure.
func (r Result) Payload() []byte {
	if !r.ok {
		return nil
	}
	return r.payload
}

// Err returns the failure, or nil on success.
func (r Result) Err() *APIError {
	if r.ok {
		return nil
	}
	return r.err
}
