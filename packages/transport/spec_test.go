package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	tests := []struct {
		input    string
		expected Method
		wantErr  bool
	}{
		{input: "GET", expected: MethodGet},
		{input: "get", expected: MethodGet},
		{input: "Post", expected: MethodPost},
		{input: "PUT", expected: MethodPut},
		{input: "patch", expected: MethodPatch},
		{input: "DELETE", expected: MethodDelete},
		{input: "HEAD", wantErr: true},
		{input: "OPTIONS", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m, err := ParseMethod(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, m)
		})
	}
}

func TestRequestSpec_Label(t *testing.T) {
	spec := RequestSpec{Method: MethodGet, Path: "/items"}
	assert.Equal(t, "GET /items", spec.Label())
}

func TestResult_TagIsAuthoritative(t *testing.T) {
	success := Success([]byte(`{"id":1}`))
	assert.True(t, success.OK())
	assert.Nil(t, success.Err())
	assert.Equal(t, `{"id":1}`, string(success.Payload()))

	failure := Failure(&APIError{Message: "boom"})
	assert.False(t, failure.OK())
	assert.Nil(t, failure.Payload())
	require.NotNil(t, failure.Err())
	assert.Equal(t, "boom", failure.Err().Message)
}

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *APIError
		expected string
	}{
		{
			name:     "transport shape",
			err:      &APIError{Message: "connection refused"},
			expected: "connection refused",
		},
		{
			name:     "status only",
			err:      &APIError{Message: "request failed", Status: 404},
			expected: "request failed (status 404)",
		},
		{
			name:     "status and code",
			err:      &APIError{Message: "request failed", Status: 400, Code: 300, HasCode: true},
			expected: "request failed (status 400, code 300)",
		},
		{
			name:     "nil receiver",
			err:      nil,
			expected: "<nil>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAPIError_IsTimeout(t *testing.T) {
	assert.True(t, (&APIError{Message: "request aborted after 1m0s"}).IsTimeout())
	assert.False(t, (&APIError{Message: "connection refused"}).IsTimeout())
	assert.False(t, (&APIError{Message: "request aborted after 1s", Status: 504}).IsTimeout())
	assert.False(t, (*APIError)(nil).IsTimeout())
}
