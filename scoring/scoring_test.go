package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaptionScoreMatchesFormula(t *testing.T) {
	in := CaptionInputs{PriorityOrdinal: 0, Importance: 1.0, AgeHours: 0, SendCount: 0}
	got := Caption(in)
	want := 0.4*1.0 + 0.3*1.0 + 0.2*1.0 + 0.1*1.0
	assert.InDelta(t, want, got, 1e-9)
}

func TestCaptionScoreAppliesPreferThaiPenalty(t *testing.T) {
	base := CaptionInputs{PriorityOrdinal: 1, Importance: 0.5, AgeHours: 10, SendCount: 2}
	withoutPenalty := Caption(base)

	base.PreferThai = true
	base.IsThai = false
	withPenalty := Caption(base)

	assert.InDelta(t, withoutPenalty*0.8, withPenalty, 1e-9)
}

func TestCaptionScorePreferThaiNoPenaltyWhenThai(t *testing.T) {
	in := CaptionInputs{PriorityOrdinal: 1, Importance: 0.5, AgeHours: 10, SendCount: 2, PreferThai: true, IsThai: true}
	unbiased := CaptionInputs{PriorityOrdinal: 1, Importance: 0.5, AgeHours: 10, SendCount: 2}
	assert.InDelta(t, Caption(unbiased), Caption(in), 1e-9)
}

func TestCaptionScoreDecreasesWithAge(t *testing.T) {
	fresh := Caption(CaptionInputs{PriorityOrdinal: 2, Importance: 0.5, AgeHours: 0, SendCount: 0})
	stale := Caption(CaptionInputs{PriorityOrdinal: 2, Importance: 0.5, AgeHours: 100, SendCount: 0})
	assert.Greater(t, fresh, stale)
}

func TestFreshnessMatchesFormula(t *testing.T) {
	got := Freshness(24, 10)
	want := math.Exp(-1.0) * (1.0 / 2.0)
	assert.InDelta(t, want, got, 1e-9)
}

func TestFreshnessMaximalAtZeroElapsedAndZeroDisplays(t *testing.T) {
	assert.InDelta(t, 1.0, Freshness(0, 0), 1e-9)
}

func TestSlideScoreMatchesFormula(t *testing.T) {
	in := SlideInputs{Sharpness: 0.8, Contrast: 0.6, Brightness: 0.5, HoursSinceDisplay: 0, DisplayCount: 0}
	got := Slide(in)
	want := 0.3*0.8 + 0.2*0.6 + 0.1*1.0 + 0.4*1.0
	assert.InDelta(t, want, got, 1e-9)
}

func TestSlideScorePenalizesExtremeBrightness(t *testing.T) {
	mid := Slide(SlideInputs{Sharpness: 0.5, Contrast: 0.5, Brightness: 0.5})
	extreme := Slide(SlideInputs{Sharpness: 0.5, Contrast: 0.5, Brightness: 1.0})
	assert.Greater(t, mid, extreme)
}

func TestSlideEvictionMatchesFormula(t *testing.T) {
	got := SlideEviction(0.5, 0.4, 0.6)
	want := 0.6*0.5 + 0.4*0.5
	assert.InDelta(t, want, got, 1e-9)
}

func TestScheduleScoreMatchesFormula(t *testing.T) {
	in := ScheduleInputs{PriorityOrdinal: 0, TimeRemainingRatio: 1.0, UsageInverse: 1.0, Quality: 1.0}
	assert.InDelta(t, 1.0, Schedule(in), 1e-9)
}

func TestScheduleScoreOrdersByPriority(t *testing.T) {
	high := Schedule(ScheduleInputs{PriorityOrdinal: 0, TimeRemainingRatio: 0.5, UsageInverse: 0.5, Quality: 0.5})
	low := Schedule(ScheduleInputs{PriorityOrdinal: 4, TimeRemainingRatio: 0.5, UsageInverse: 0.5, Quality: 0.5})
	assert.Greater(t, high, low)
}
