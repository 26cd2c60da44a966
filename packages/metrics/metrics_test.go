package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecorder_Counts(t *testing.T) {
	r := NewRecorder()

	r.Record("GET /items", 10*time.Millisecond, OutcomeSuccess)
	r.Record("GET /items", 20*time.Millisecond, OutcomeSuccess)
	r.Record("GET /items", 30*time.Millisecond, OutcomeFailure)
	r.Record("POST /items", 40*time.Millisecond, OutcomeTimeout)

	s := r.Summary()
	assert.Equal(t, int64(4), s.Total)
	assert.Equal(t, int64(2), s.Succeeded)
	assert.Equal(t, int64(2), s.Failed)
	assert.Equal(t, int64(1), s.TimedOut)

	assert.Equal(t, int64(3), s.Ops["GET /items"].Total)
	assert.Equal(t, int64(1), s.Ops["GET /items"].Failed)
	assert.Equal(t, int64(1), s.Ops["POST /items"].Total)
}

func TestRecorder_Percentiles(t *testing.T) {
	r := NewRecorder()
	for i := 1; i <= 100; i++ {
		r.Record("op", time.Duration(i)*time.Millisecond, OutcomeSuccess)
	}

	s := r.Summary()
	// hdrhistogram keeps 3 significant digits, so allow some slack.
	assert.InDelta(t, 50, s.P50.Milliseconds(), 2)
	assert.InDelta(t, 95, s.P95.Milliseconds(), 2)
	assert.InDelta(t, 100, s.Max.Milliseconds(), 2)
}

func TestRecorder_EmptyLabelSkipsBreakdown(t *testing.T) {
	r := NewRecorder()
	r.Record("", time.Millisecond, OutcomeSuccess)

	s := r.Summary()
	assert.Equal(t, int64(1), s.Total)
	assert.Empty(t, s.Ops)
}

func TestRecorder_ClampsOutOfRangeLatency(t *testing.T) {
	r := NewRecorder()
	r.Record("op", 0, OutcomeSuccess)
	r.Record("op", 2*time.Minute, OutcomeSuccess)

	s := r.Summary()
	assert.Equal(t, int64(2), s.Total)
	assert.LessOrEqual(t, s.Max, 61*time.Second)
}
