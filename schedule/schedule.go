// Package schedule implements the scheduled-content table of spec.md §3
// and §4.4 step 2/"Scheduled-table eligibility": time-windowed entries
// with optional daily/weekly repeat, a max-repeat count, and an
// eligibility score the coordinator uses to pick the highest-ranked
// Slide or Combined entry on each tick. Grounded on the queue package's
// mutex-guarded-map idiom, itself grounded on the teacher's
// mDlsDataProcessors pattern.
package schedule

import (
	"sort"
	"sync"
	"time"

	"github.com/sekz/ODR-PadEnc/model"
	"github.com/sekz/ODR-PadEnc/scoring"
)

// EntryKind distinguishes what a scheduled entry carries, per spec.md §3
// ("scheduled table of type Slide or Combined").
type EntryKind uint8

const (
	KindCaption EntryKind = iota
	KindSlide
	KindCombined
)

// Weekday is a day-of-week bitmask bit position, Sunday = bit 0, matching
// time.Weekday's own numbering so callers can build masks with
// 1<<uint(time.Now().Weekday()).
type Weekday uint8

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// DayMask is a bitmask of Weekday values; zero means "every day" (no
// weekly restriction).
type DayMask uint8

// Matches reports whether t's weekday is set in the mask, or true if the
// mask has no bits set (unrestricted).
func (m DayMask) Matches(t time.Time) bool {
	if m == 0 {
		return true
	}
	return m&(1<<uint(t.Weekday())) != 0
}

// EntryID uniquely names a scheduled entry.
type EntryID string

// Entry is a scheduled-content table row, per spec.md §3: "a caption or
// slide annotated with a schedule window."
type Entry struct {
	ID             EntryID
	Kind           EntryKind
	Caption        *model.Caption
	Slide          *model.Slide
	Start          time.Time
	End            time.Time
	DailyRepeat    bool
	WeeklyMask     DayMask
	MaxRepeats     int // 0 = unlimited
	CurrentRepeats int
	Priority       model.Priority
	Quality        float64 // [0,1], caller-supplied for non-slide entries
}

// Validate enforces spec.md §3's invariants: start <= end,
// current_repeat <= max_repeat when max > 0.
func (e *Entry) Validate() *model.Error {
	if e.Start.After(e.End) {
		return model.NewError(model.KindInvalidInput, "scheduled entry start is after end")
	}
	if e.MaxRepeats > 0 && e.CurrentRepeats > e.MaxRepeats {
		return model.NewError(model.KindInvalidInput, "scheduled entry current_repeats exceeds max_repeats")
	}
	return nil
}

// Table is the scheduled-content table, protected by one mutex per
// spec.md §5 ("Scheduled table: one mutex").
type Table struct {
	mu      sync.Mutex
	entries map[EntryID]*Entry
	now     func() time.Time
}

func New() *Table {
	return &Table{entries: make(map[EntryID]*Entry), now: time.Now}
}

// Add validates and inserts entry, assigning an ID if unset.
func (t *Table) Add(entry Entry) (EntryID, *model.Error) {
	if verr := entry.Validate(); verr != nil {
		return "", verr
	}
	if entry.ID == "" {
		entry.ID = EntryID(model.NewCaptionID())
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[entry.ID] = &entry
	return entry.ID, nil
}

// Remove deletes an entry by id.
func (t *Table) Remove(id EntryID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.entries[id]; !ok {
		return false
	}
	delete(t.entries, id)
	return true
}

// eligible implements spec.md §4.4's eligibility gate: start <= now <=
// end, current_repeats < max_repeats (if max > 0), daily/weekly mask
// matches.
func eligible(e *Entry, now time.Time) bool {
	if now.Before(e.Start) || now.After(e.End) {
		return false
	}
	if e.MaxRepeats > 0 && e.CurrentRepeats >= e.MaxRepeats {
		return false
	}
	if !e.DailyRepeat && e.WeeklyMask == 0 {
		// A one-shot entry (no repeat configured) is eligible for its
		// entire [start, end] window; MaxRepeats, checked against the
		// CurrentRepeats count NextOfKind advances on every pick, limits
		// how often it is returned, same as a repeating entry.
		return true
	}
	if e.WeeklyMask != 0 && !e.WeeklyMask.Matches(now) {
		return false
	}
	return true
}

// score implements spec.md §4.4's scheduled-table score:
// 0.4*priority + 0.3*time_remaining_ratio + 0.2*usage_inverse + 0.1*quality.
func score(e *Entry, now time.Time) float64 {
	total := e.End.Sub(e.Start)
	remaining := e.End.Sub(now)
	timeRemainingRatio := 1.0
	if total > 0 {
		timeRemainingRatio = float64(remaining) / float64(total)
	}
	if timeRemainingRatio < 0 {
		timeRemainingRatio = 0
	}

	usageInverse := 1.0
	if e.MaxRepeats > 0 {
		usageInverse = 1.0 - float64(e.CurrentRepeats)/float64(e.MaxRepeats)
	}

	return scoring.Schedule(scoring.ScheduleInputs{
		PriorityOrdinal:    int(e.Priority),
		TimeRemainingRatio: timeRemainingRatio,
		UsageInverse:       usageInverse,
		Quality:            e.Quality,
	})
}

// NextOfKind returns the highest-scoring eligible entry restricted to
// kind (or KindCombined entries, which satisfy any kind query), matching
// spec.md §4.4 step 2 ("scheduled table of type Slide or Combined").
// Ties broken by earliest Start, then insertion order via map iteration
// determinism is not guaranteed by Go, so a stable secondary key on ID
// string keeps NextOfKind deterministic for equal-score, equal-start
// entries.
func (t *Table) NextOfKind(kind EntryKind) *Entry {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	var candidates []*Entry
	for _, e := range t.entries {
		if e.Kind != kind && e.Kind != KindCombined {
			continue
		}
		if eligible(e, now) {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		si, sj := score(candidates[i], now), score(candidates[j], now)
		if si != sj {
			return si > sj
		}
		if !candidates[i].Start.Equal(candidates[j].Start) {
			return candidates[i].Start.Before(candidates[j].Start)
		}
		return candidates[i].ID < candidates[j].ID
	})

	winner := candidates[0]
	winner.CurrentRepeats++
	cp := *winner
	return &cp
}

// Len reports the number of entries currently in the table.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// SetClock overrides the table's time source, for deterministic tests.
func (t *Table) SetClock(now func() time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.now = now
}
