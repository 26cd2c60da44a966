package envelope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayload(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{
			name:     "object payload",
			body:     `{"data": {"id": 7, "name": "alpha"}}`,
			expected: `{"id": 7, "name": "alpha"}`,
		},
		{
			name:     "string payload keeps quotes",
			body:     `{"data": "ok"}`,
			expected: `"ok"`,
		},
		{
			name:     "array payload",
			body:     `{"data": [1,2,3]}`,
			expected: `[1,2,3]`,
		},
		{
			name:     "null payload",
			body:     `{"data": null}`,
			expected: `null`,
		},
		{
			name:     "missing data field",
			body:     `{"status": "ok"}`,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(Payload([]byte(tt.body))))
		})
	}
}

func TestCode(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		code     int64
		present  bool
	}{
		{
			name:    "numeric code",
			body:    `{"ErrorCode": 300}`,
			code:    300,
			present: true,
		},
		{
			name:    "zero code is still a code",
			body:    `{"ErrorCode": 0}`,
			code:    0,
			present: true,
		},
		{
			name:    "string code is not a code",
			body:    `{"ErrorCode": "300"}`,
			present: false,
		},
		{
			name:    "absent code",
			body:    `{"message": "nope"}`,
			present: false,
		},
		{
			name:    "boolean code is not a code",
			body:    `{"ErrorCode": true}`,
			present: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := Code([]byte(tt.body))
			assert.Equal(t, tt.present, ok)
			if tt.present {
				assert.Equal(t, tt.code, code)
			}
		})
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid([]byte(`{"data": 1}`)))
	assert.True(t, Valid([]byte(`[]`)))
	assert.False(t, Valid([]byte(`<html>not json</html>`)))
	assert.False(t, Valid([]byte(``)))
}
