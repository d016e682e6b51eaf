package coordinator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sekz/ODR-PadEnc/config"
	"github.com/sekz/ODR-PadEnc/model"
)

func TestTriggerEmergencyDominatesTick(t *testing.T) {
	cfg := config.Default()
	c := NewDefault(cfg)

	now := time.Now()
	c.SetClock(func() time.Time { return now })

	_, _ = c.Queue().Submit(model.Caption{
		Text: "Regular programming", Priority: model.PriorityNormal,
		CreatedAt: now, ExpiresAt: now.Add(time.Hour),
	})

	c.TriggerEmergency("Severe weather warning", time.Minute)
	c.Tick()

	snap := c.Snapshot()
	require.NotNil(t, snap.Caption)
	assert.True(t, snap.EmergencyActive)
	assert.Equal(t, "Severe weather warning", snap.Caption.Text)
}

func TestClearEmergencyReturnsToIdle(t *testing.T) {
	cfg := config.Default()
	c := NewDefault(cfg)
	now := time.Now()
	c.SetClock(func() time.Time { return now })

	c.TriggerEmergency("Test alert", time.Hour)
	c.Tick()
	require.True(t, c.Snapshot().EmergencyActive)

	c.ClearEmergency()
	c.Tick()
	assert.False(t, c.Snapshot().EmergencyActive)
}

func TestEmergencyExpiresAfterDuration(t *testing.T) {
	cfg := config.Default()
	c := NewDefault(cfg)
	now := time.Now()
	c.SetClock(func() time.Time { return now })

	c.TriggerEmergency("Short alert", time.Minute)
	c.Tick()
	require.True(t, c.Snapshot().EmergencyActive)

	now = now.Add(2 * time.Minute)
	c.Tick()
	assert.False(t, c.Snapshot().EmergencyActive)
}

func TestTickHoldsPreviousWhenNothingEligible(t *testing.T) {
	cfg := config.Default()
	c := NewDefault(cfg)
	now := time.Now()
	clock := func() time.Time { return now }
	c.SetClock(clock)
	c.Queue().SetClock(clock)

	_, _ = c.Queue().Submit(model.Caption{
		Text: "First caption", Priority: model.PriorityNormal,
		CreatedAt: now, ExpiresAt: now.Add(time.Minute),
	})
	c.Tick()
	first := c.Snapshot()
	require.NotNil(t, first.Caption)
	assert.Equal(t, "First caption", first.Caption.Text)

	now = now.Add(time.Hour) // caption has now expired and is swept; nothing eligible
	c.Tick()
	second := c.Snapshot()
	require.NotNil(t, second.Caption)
	assert.Equal(t, first.Caption.Text, second.Caption.Text)
}

func TestTickRunsRecordsMetrics(t *testing.T) {
	cfg := config.Default()
	c := NewDefault(cfg)
	c.Tick()
	c.Tick()

	stats := c.Metrics().Snapshot()
	assert.Equal(t, uint64(2), stats.TicksRun)
}
