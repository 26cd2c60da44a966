package envelope

import (
	"github.com/tidwall/gjson"
)

const (
	// PayloadField is the envelope field carrying the success payload.
	PayloadField = "data"
	// CodeField is the envelope field carrying the vendor error code.
	CodeField = "ErrorCode"
)

// Valid reports whether body is well-formed JSON.
func Valid(body []byte) bool {
	return gjson.ValidBytes(body)
}

// Payload extracts the raw JSON of the envelope's "data" field.
// Returns nil when the field is absent.
func Payload(body []byte) []byte {
	res := gjson.GetBytes(body, PayloadField)
	if !res.Exists() {
		return nil
	}
	return []byte(res.Raw)
}

// Code extracts the vendor error code from a failure body. The second
// return value is true only when the field exists and is a JSON number;
// a string-typed or missing code is reported as absent.
func Code(body []byte) (int64, bool) {
	res := gjson.GetBytes(body, CodeField)
	if res.Type != gjson.Number {
		return 0, false
	}
	return res.Int(), true
}
