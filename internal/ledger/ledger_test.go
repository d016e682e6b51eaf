package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisabledLedgerIsNoOp(t *testing.T) {
	l := New()
	release := l.Acquire()
	release()

	stats := l.Stats()
	assert.Equal(t, int64(0), stats.Total)
}

func TestEnabledLedgerTracksInFlightAndPeak(t *testing.T) {
	l := New()
	l.Enable(true)

	release1 := l.Acquire()
	release2 := l.Acquire()

	stats := l.Stats()
	assert.Equal(t, int64(2), stats.InFlight)
	assert.Equal(t, int64(2), stats.Peak)
	assert.Equal(t, int64(2), stats.Total)

	release1()
	stats = l.Stats()
	assert.Equal(t, int64(1), stats.InFlight)
	assert.Equal(t, int64(2), stats.Peak)

	release2()
	stats = l.Stats()
	assert.Equal(t, int64(0), stats.InFlight)
}

func TestReleaseIsIdempotent(t *testing.T) {
	l := New()
	l.Enable(true)
	release := l.Acquire()
	release()
	release()

	assert.Equal(t, int64(0), l.Stats().InFlight)
}

func TestSuspectReportsOverThreshold(t *testing.T) {
	l := New()
	l.Enable(true)
	for i := 0; i < 5; i++ {
		l.Acquire()
	}

	assert.True(t, l.Suspect(3))
	assert.False(t, l.Suspect(10))
}
