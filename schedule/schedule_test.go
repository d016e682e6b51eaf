package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sekz/ODR-PadEnc/model"
)

func TestAddValidatesWindow(t *testing.T) {
	tbl := New()
	now := time.Now()
	_, err := tbl.Add(Entry{
		Kind:  KindCaption,
		Start: now.Add(time.Hour),
		End:   now,
	})
	require.NotNil(t, err)
}

func TestNextOfKindRespectsTimeWindow(t *testing.T) {
	tbl := New()
	now := time.Now()
	tbl.SetClock(func() time.Time { return now })

	_, err := tbl.Add(Entry{
		Kind:     KindSlide,
		Slide:    &model.Slide{},
		Start:    now.Add(time.Hour),
		End:      now.Add(2 * time.Hour),
		Priority: model.PriorityNormal,
	})
	require.Nil(t, err)

	assert.Nil(t, tbl.NextOfKind(KindSlide))
}

func TestNextOfKindReturnsEligibleEntry(t *testing.T) {
	tbl := New()
	now := time.Now()
	tbl.SetClock(func() time.Time { return now })

	id, err := tbl.Add(Entry{
		Kind:     KindSlide,
		Slide:    &model.Slide{ID: "s1"},
		Start:    now.Add(-time.Hour),
		End:      now.Add(time.Hour),
		Priority: model.PriorityHigh,
		Quality:  0.8,
	})
	require.Nil(t, err)
	assert.NotEmpty(t, id)

	entry := tbl.NextOfKind(KindSlide)
	require.NotNil(t, entry)
	assert.Equal(t, model.SlideID("s1"), entry.Slide.ID)
}

func TestNextOfKindRespectsMaxRepeats(t *testing.T) {
	tbl := New()
	now := time.Now()
	tbl.SetClock(func() time.Time { return now })

	_, err := tbl.Add(Entry{
		Kind:           KindCaption,
		Caption:        &model.Caption{Text: "hi"},
		Start:          now.Add(-time.Hour),
		End:            now.Add(time.Hour),
		MaxRepeats:     1,
		CurrentRepeats: 1,
	})
	require.Nil(t, err)

	assert.Nil(t, tbl.NextOfKind(KindCaption))
}

func TestNextOfKindPrefersHigherPriority(t *testing.T) {
	tbl := New()
	now := time.Now()
	tbl.SetClock(func() time.Time { return now })

	_, _ = tbl.Add(Entry{
		Kind: KindSlide, Slide: &model.Slide{ID: "low"},
		Start: now.Add(-time.Hour), End: now.Add(time.Hour),
		Priority: model.PriorityBackground,
	})
	_, _ = tbl.Add(Entry{
		Kind: KindSlide, Slide: &model.Slide{ID: "high"},
		Start: now.Add(-time.Hour), End: now.Add(time.Hour),
		Priority: model.PriorityEmergency,
	})

	winner := tbl.NextOfKind(KindSlide)
	require.NotNil(t, winner)
	assert.Equal(t, model.SlideID("high"), winner.Slide.ID)
}

func TestCombinedKindMatchesAnyQuery(t *testing.T) {
	tbl := New()
	now := time.Now()
	tbl.SetClock(func() time.Time { return now })

	_, _ = tbl.Add(Entry{
		Kind: KindCombined, Slide: &model.Slide{ID: "combo"},
		Start: now.Add(-time.Hour), End: now.Add(time.Hour),
	})

	entry := tbl.NextOfKind(KindSlide)
	require.NotNil(t, entry)
	assert.Equal(t, model.SlideID("combo"), entry.Slide.ID)
}

func TestDayMaskMatchesUnrestrictedByDefault(t *testing.T) {
	var m DayMask
	assert.True(t, m.Matches(time.Now()))
}

func TestDayMaskMatchesSpecificDay(t *testing.T) {
	sunday := time.Date(2026, time.January, 4, 12, 0, 0, 0, time.UTC) // a Sunday
	m := DayMask(1 << uint(Sunday))
	assert.True(t, m.Matches(sunday))

	monday := sunday.AddDate(0, 0, 1)
	assert.False(t, m.Matches(monday))
}

func TestRemoveDeletesEntry(t *testing.T) {
	tbl := New()
	id, err := tbl.Add(Entry{Kind: KindCaption, Caption: &model.Caption{Text: "x"}, Start: time.Now(), End: time.Now().Add(time.Hour)})
	require.Nil(t, err)
	assert.True(t, tbl.Remove(id))
	assert.Equal(t, 0, tbl.Len())
}
