package metrics

import (
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Outcome classifies a finished call for recording purposes.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeFailure
	OutcomeTimeout
)

// Histogram range: 1us to 60s, 3 significant digits.
const (
	minLatencyUs = 1
	maxLatencyUs = 60_000_000
)

// Recorder aggregates per-call latency and outcome counts. Safe for
// concurrent use; the executor records one sample per finished call.
type Recorder struct {
	mu        sync.Mutex
	histogram *hdrhistogram.Histogram
	total     int64
	succeeded int64
	failed    int64
	timedOut  int64
	ops       map[string]*opStats
}

type opStats struct {
	histogram *hdrhistogram.Histogram
	total     int64
	failed    int64
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		histogram: hdrhistogram.New(minLatencyUs, maxLatencyUs, 3),
		ops:       make(map[string]*opStats),
	}
}

// Record adds one finished call under the given operation label.
func (r *Recorder) Record(op string, duration time.Duration, outcome Outcome) {
	latencyUs := duration.Microseconds()
	if latencyUs < minLatencyUs {
		latencyUs = minLatencyUs
	}
	if latencyUs > maxLatencyUs {
		latencyUs = maxLatencyUs
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.total++
	switch outcome {
	case OutcomeSuccess:
		r.succeeded++
	case OutcomeTimeout:
		r.timedOut++
		r.failed++
	default:
		r.failed++
	}
	_ = r.histogram.RecordValue(latencyUs)

	if op == "" {
		return
	}
	stats, ok := r.ops[op]
	if !ok {
		stats = &opStats{histogram: hdrhistogram.New(minLatencyUs, maxLatencyUs, 3)}
		r.ops[op] = stats
	}
	stats.total++
	if outcome != OutcomeSuccess {
		stats.failed++
	}
	_ = stats.histogram.RecordValue(latencyUs)
}

// Summary is a point-in-time aggregate of everything recorded so far.
type Summary struct {
	Total     int64
	Succeeded int64
	Failed    int64
	TimedOut  int64

	P50  time.Duration
	P95  time.Duration
	P99  time.Duration
	Max  time.Duration
	Mean time.Duration

	Ops map[string]OpSummary
}

// OpSummary is the per-operation breakdown.
type OpSummary struct {
	Total  int64
	Failed int64
	P50    time.Duration
	P95    time.Duration
	P99    time.Duration
}

// Summary returns the current aggregate view.
func (r *Recorder) Summary() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := Summary{
		Total:     r.total,
		Succeeded: r.succeeded,
		Failed:    r.failed,
		TimedOut:  r.timedOut,
		P50:       time.Duration(r.histogram.ValueAtQuantile(50)) * time.Microsecond,
		P95:       time.Duration(r.histogram.ValueAtQuantile(95)) * time.Microsecond,
		P99:       time.Duration(r.histogram.ValueAtQuantile(99)) * time.Microsecond,
		Max:       time.Duration(r.histogram.Max()) * time.Microsecond,
		Mean:      time.Duration(r.histogram.Mean()) * time.Microsecond,
		Ops:       make(map[string]OpSummary, len(r.ops)),
	}

	for op, stats := range r.ops {
		s.Ops[op] = OpSummary{
			Total:  stats.total,
			Failed: stats.failed,
			P50:    time.Duration(stats.histogram.ValueAtQuantile(50)) * time.Microsecond,
			P95:    time.Duration(stats.histogram.ValueAtQuantile(95)) * time.Microsecond,
			P99:    time.Duration(stats.histogram.ValueAtQuantile(99)) * time.Microsecond,
		}
	}

	return s
}
