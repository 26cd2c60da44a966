package transport

import (
	"fmt"
	"strings"
)

// Fixed message for responses that fail status validation.
const statusFailureMessage = "request failed"

// Prefix shared by timeout failures; a timeout has the same shape as any
// other transport failure and differs only in message text.
const timeoutMessagePrefix = "request aborted"

// APIError is the single error shape produced by the executor. Status is 0
// when no response was received (transport and timeout failures); Code is
// meaningful only when HasCode is set, which happens only when the failure
// body carried a numeric vendor error code.
type APIError struct {
	Message string
	Code    int64
	HasCode bool
	Status  int
}

func (e *APIError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Status == 0 {
		return e.Message
	}
	if e.HasCode {
		return fmt.Sprintf("%s (status %d, code %d)", e.Message, e.Status, e.Code)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// IsTimeout reports whether this failure came from the executor's deadline
// firing before a response arrived.
func (e *APIError) IsTimeout() bool {
	return e != nil && e.Status == 0 && strings.HasPrefix(e.Message, timeoutMessagePrefix)
}
