// Package metrics collects per-call latency histograms and outcome counts
// for a client. Recording is optional and wired in through a client option.
package metrics
