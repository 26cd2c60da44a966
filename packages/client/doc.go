// Package client is the public entry point for issuing API calls. It owns
// the resolved configuration, builds one transport executor per Initialize,
// and converts the executor's tagged Results back into conventional
// (value, error) returns — the only place that conversion happens.
package client
