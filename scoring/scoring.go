// Package scoring implements the composite scoring functions from
// spec.md §4.1 (caption selection), §4.2 (slide selection and eviction),
// and §4.4 (scheduled-content eligibility). Formulas are as specified;
// this package exists so queue, carousel, and schedule share one
// well-tested set of arithmetic instead of three near-duplicate copies.
package scoring

import "math"

// CaptionInputs are the values the composite score in spec.md §4.1 needs.
type CaptionInputs struct {
	PriorityOrdinal int // Emergency = 0 .. Background = 4
	Importance      float64
	AgeHours        float64
	SendCount       int
	PreferThai      bool
	IsThai          bool
}

// Caption computes 0.4*priority_weight + 0.3*importance + 0.2*recency +
// 0.1*repeat_penalty, applying the 0.8 prefer-thai penalty for non-Thai
// candidates when requested.
func Caption(in CaptionInputs) float64 {
	priorityWeight := (4.0 - float64(in.PriorityOrdinal)) / 4.0
	recency := math.Exp(-in.AgeHours / 24.0)
	repeatPenalty := 1.0 / (1.0 + float64(in.SendCount)/2.0)

	score := 0.4*priorityWeight + 0.3*in.Importance + 0.2*recency + 0.1*repeatPenalty
	if in.PreferThai && !in.IsThai {
		score *= 0.8
	}
	return score
}

// SlideInputs are the values the slide selection composite score in
// spec.md §4.2 needs.
type SlideInputs struct {
	Sharpness         float64
	Contrast          float64
	Brightness        float64
	HoursSinceDisplay float64
	DisplayCount      int
}

// Freshness computes exp(-hours_since_last_display/24) * 1/(1+display_count/10).
func Freshness(hoursSinceDisplay float64, displayCount int) float64 {
	return math.Exp(-hoursSinceDisplay/24.0) * (1.0 / (1.0 + float64(displayCount)/10.0))
}

// Slide computes 0.3*sharpness + 0.2*contrast + 0.1*(1-|brightness-0.5|*2) + 0.4*freshness.
func Slide(in SlideInputs) float64 {
	freshness := Freshness(in.HoursSinceDisplay, in.DisplayCount)
	brightnessScore := 1.0 - math.Abs(in.Brightness-0.5)*2.0
	return 0.3*in.Sharpness + 0.2*in.Contrast + 0.1*brightnessScore + 0.4*freshness
}

// SlideEviction computes 0.6*freshness + 0.4*((sharpness+contrast)/2),
// ascending order marks the lowest-ranked slides for removal first.
func SlideEviction(freshness, sharpness, contrast float64) float64 {
	return 0.6*freshness + 0.4*((sharpness+contrast)/2.0)
}

// ScheduleInputs are the values the scheduled-content eligibility score in
// spec.md §4.4 needs.
type ScheduleInputs struct {
	PriorityOrdinal    int
	TimeRemainingRatio float64
	UsageInverse       float64
	Quality            float64
}

// Schedule computes 0.4*priority + 0.3*time_remaining_ratio + 0.2*usage_inverse + 0.1*quality.
func Schedule(in ScheduleInputs) float64 {
	priorityWeight := (4.0 - float64(in.PriorityOrdinal)) / 4.0
	return 0.4*priorityWeight + 0.3*in.TimeRemainingRatio + 0.2*in.UsageInverse + 0.1*in.Quality
}
