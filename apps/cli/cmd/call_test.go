package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQueryFlags(t *testing.T) {
	query, err := parseQueryFlags([]string{"a=1", "b=", "c=x=y"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "1", "b": "", "c": "x=y"}, query)

	query, err = parseQueryFlags(nil)
	require.NoError(t, err)
	assert.Nil(t, query)

	_, err = parseQueryFlags([]string{"noequals"})
	assert.Error(t, err)

	_, err = parseQueryFlags([]string{"=value"})
	assert.Error(t, err)
}

func TestParseHeaderFlags(t *testing.T) {
	headers, err := parseHeaderFlags([]string{"X-Reason: cleanup", "Accept:application/json"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"X-Reason": "cleanup",
		"Accept":   "application/json",
	}, headers)

	_, err = parseHeaderFlags([]string{"no-colon-here"})
	assert.Error(t, err)

	_, err = parseHeaderFlags([]string{": value"})
	assert.Error(t, err)
}
