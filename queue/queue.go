// Package queue implements the priority-aware content queue and
// selector of spec.md §4.1: submission with dedup, eligibility-gated
// selection with a composite score, expiry sweeping, and the repeat
// throttle. Grounded on the teacher's mutex-guarded-map idiom (e.g.
// mDlsDataProcessors in edisplitter.go): one lock protects the priority
// structure, the index, and the dedup map together, per spec.md §5.
package queue

import (
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/sekz/ODR-PadEnc/hashing"
	"github.com/sekz/ODR-PadEnc/internal/logging"
	"github.com/sekz/ODR-PadEnc/model"
	"github.com/sekz/ODR-PadEnc/scoring"
	"github.com/sekz/ODR-PadEnc/thai"
)

// Verdict is the synchronous result of Submit, per spec.md §4.1.
type Verdict uint8

const (
	Accepted Verdict = iota
	RejectedDuplicate
	RejectedInvalid
)

func (v Verdict) String() string {
	switch v {
	case Accepted:
		return "Accepted"
	case RejectedDuplicate:
		return "RejectedDuplicate"
	default:
		return "RejectedInvalid"
	}
}

// Criteria narrows Select's candidate pool, per spec.md §4.1.
type Criteria struct {
	MinPriority      model.Priority
	MaxPriority      model.Priority
	AllowSources     map[model.Source]bool
	DenySources      map[model.Source]bool
	MaxAge           time.Duration
	AllowRepeats     bool
	MaxRepeatCount   int
	MinRepeatInterval time.Duration
	MaxTextLength    int
	PreferThai       bool
	ScoreFunc        func(model.Caption) float64
}

// DefaultCriteria matches any non-expired caption with no repeat
// restriction beyond the queue's own send-count/interval gates.
func DefaultCriteria(maxTextBytes int) Criteria {
	return Criteria{
		MinPriority:   model.PriorityEmergency,
		MaxPriority:   model.PriorityBackground,
		AllowRepeats:  true,
		MaxTextLength: maxTextBytes,
	}
}

type entry struct {
	caption   model.Caption
	firstSeen time.Time // dedup bookkeeping only
}

// Queue is the caption priority queue plus dedup map described in
// spec.md §4.1/§5. One mutex guards both data structures (the entry
// map keyed by caption id, and the dedup map) so they never observe a
// torn intermediate state.
type Queue struct {
	mu         sync.Mutex
	entries    map[model.CaptionID]*entry
	dedup      map[uint64]time.Time
	dedupWindow time.Duration
	log        zerolog.Logger
	now        func() time.Time
}

func New(dedupWindow time.Duration, log zerolog.Logger) *Queue {
	return &Queue{
		entries:     make(map[model.CaptionID]*entry),
		dedup:       make(map[uint64]time.Time),
		dedupWindow: dedupWindow,
		log:         log,
		now:         time.Now,
	}
}

// NewDefault wires a no-op logger, for callers that don't care.
func NewDefault(dedupWindow time.Duration) *Queue {
	return New(dedupWindow, logging.Nop())
}

// Submit implements spec.md §4.1's submit contract: never blocks, never
// retries, synchronous verdict.
func (q *Queue) Submit(c model.Caption) (Verdict, *model.Error) {
	if verr := c.Validate(); verr != nil {
		q.log.Info().Str("reason", verr.Detail).Msg("caption rejected: invalid")
		return RejectedInvalid, verr
	}

	normalized := thai.Normalize(c.Text)
	c.Text = normalized
	c.IsThai = thai.IsThai(normalized)
	c.ContentHash = hashing.ContentHashText(normalized)
	if c.ID == "" {
		c.ID = model.NewCaptionID()
	}
	c.State = model.CaptionQueued

	now := q.now()

	q.mu.Lock()
	defer q.mu.Unlock()

	q.sweepLocked(now)

	if firstSeen, dup := q.dedup[c.ContentHash]; dup && now.Sub(firstSeen) < q.dedupWindow {
		q.log.Info().Uint64("hash", c.ContentHash).Msg("caption rejected: duplicate")
		return RejectedDuplicate, model.NewError(model.KindDuplicate, "content hash seen within dedup window")
	}

	q.entries[c.ID] = &entry{caption: c, firstSeen: now}
	q.dedup[c.ContentHash] = now
	return Accepted, nil
}

// Select implements spec.md §4.1's select contract: eligibility gate,
// composite score, tie-break by newer created_at, and updates the
// winner's last-sent/send-count as a side effect. Candidates are
// gathered from a map, so among captions with equal score and equal
// created_at the winner is not defined.
func (q *Queue) Select(crit Criteria) *model.Caption {
	now := q.now()

	q.mu.Lock()
	defer q.mu.Unlock()

	q.sweepLocked(now)

	candidates := make([]*entry, 0, len(q.entries))
	for _, e := range q.entries {
		if q.eligibleLocked(e.caption, crit, now) {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		si := q.score(candidates[i].caption, crit, now)
		sj := q.score(candidates[j].caption, crit, now)
		if si != sj {
			return si > sj
		}
		return candidates[i].caption.CreatedAt.After(candidates[j].caption.CreatedAt)
	})

	winner := candidates[0]
	winner.caption.LastSent = now
	winner.caption.SendCount++
	winner.caption.State = model.CaptionSelected
	if winner.caption.MaxSends > 0 && winner.caption.SendCount >= winner.caption.MaxSends {
		winner.caption.State = model.CaptionExhausted
	} else {
		winner.caption.State = model.CaptionQueued
	}

	result := winner.caption.Clone()
	return &result
}

// dlPlusUrgencyBoost rewards a caption tagged with an urgent DL Plus
// content type (INFO_ALARM, INFO_TRAFFIC) ahead of an equally-scored
// ordinary one, per thai.DLPlusContentType.IsUrgent's doc comment.
const dlPlusUrgencyBoost = 0.15

func (q *Queue) score(c model.Caption, crit Criteria, now time.Time) float64 {
	if crit.ScoreFunc != nil {
		return crit.ScoreFunc(c)
	}
	ageHours := now.Sub(c.CreatedAt).Hours()
	base := scoring.Caption(scoring.CaptionInputs{
		PriorityOrdinal: int(c.Priority),
		Importance:      c.Importance,
		AgeHours:        ageHours,
		SendCount:       c.SendCount,
		PreferThai:      crit.PreferThai,
		IsThai:          c.IsThai,
	})
	if dlType, ok := thai.ParseDLPlusContentType(c.Metadata[thai.MetadataKey]); ok && dlType.IsUrgent() {
		base += dlPlusUrgencyBoost
	}
	return base
}

// eligibleLocked implements the seven-point gate in spec.md §4.1.
// Expiry (point 1) is enforced by sweepLocked removing the caption
// before this is ever consulted, so it does not need re-checking here.
func (q *Queue) eligibleLocked(c model.Caption, crit Criteria, now time.Time) bool {
	if c.Priority < crit.MinPriority || c.Priority > crit.MaxPriority {
		return false
	}
	if len(crit.AllowSources) > 0 && !crit.AllowSources[c.Source] {
		return false
	}
	if crit.DenySources[c.Source] {
		return false
	}
	if c.MaxSends > 0 && c.SendCount >= c.MaxSends {
		return false
	}
	if c.SendCount > 0 && crit.MinRepeatInterval > 0 && now.Sub(c.LastSent) < crit.MinRepeatInterval {
		return false
	}
	if crit.MaxTextLength > 0 {
		encoded := len(thai.EncodeBody(c.Text))
		if !c.IsThai {
			encoded = len(c.Text)
		}
		if encoded > crit.MaxTextLength {
			return false
		}
	}
	if !crit.AllowRepeats && c.SendCount > 0 {
		return false
	}
	if crit.MaxAge > 0 && now.Sub(c.CreatedAt) > crit.MaxAge {
		return false
	}
	if crit.MaxRepeatCount > 0 && c.SendCount >= crit.MaxRepeatCount {
		return false
	}
	return true
}

// sweepLocked removes expired captions and ages out stale dedup entries.
// Called on every Submit/Select (lazy); Sweep exposes it for a
// caller-driven 30s background tick, per spec.md §4.1.
func (q *Queue) sweepLocked(now time.Time) {
	for id, e := range q.entries {
		if now.After(e.caption.ExpiresAt) {
			delete(q.entries, id)
		}
	}
	for hash, seen := range q.dedup {
		if now.Sub(seen) >= q.dedupWindow {
			delete(q.dedup, hash)
		}
	}
}

// Sweep runs the expiry sweep out of band, for the 30s background tick.
func (q *Queue) Sweep() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.sweepLocked(q.now())
}

// Len reports the number of captions currently queued.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}

// Remove evicts a caption by id (operator remove), transitioning its
// state to Evicted conceptually — since the entry is deleted outright,
// no further observer will see that transition, matching "destroyed"
// semantics in spec.md §3.
func (q *Queue) Remove(id model.CaptionID) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if _, ok := q.entries[id]; !ok {
		return false
	}
	delete(q.entries, id)
	return true
}

// SetClock overrides the queue's time source, for deterministic tests.
func (q *Queue) SetClock(now func() time.Time) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.now = now
}
