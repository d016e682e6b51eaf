// Package contextselect implements component E of spec.md §2: it binds
// the DLS queue's select contract to whichever broadcast context (news,
// music, emergency, ...) is currently active, so the coordinator never
// needs to construct a queue.Criteria by hand on every tick. Grounded on
// the teacher's per-subchannel dispatch table (edisplitter.go routes
// X-PAD data by subchannel id the same shape: a static map keyed by an
// enum, consulted once per tick).
package contextselect

import (
	"time"

	"github.com/sekz/ODR-PadEnc/model"
	"github.com/sekz/ODR-PadEnc/queue"
)

// Selector binds a caption queue to a table of per-context criteria, per
// spec.md §4.4 step 3 ("selector.select(criteria_for(current_context))").
type Selector struct {
	q        *queue.Queue
	criteria map[model.Context]queue.Criteria
	fallback queue.Criteria
}

// New wires q with the criteria table. Any context absent from the table
// falls back to fallback.
func New(q *queue.Queue, fallback queue.Criteria) *Selector {
	return &Selector{
		q:        q,
		criteria: make(map[model.Context]queue.Criteria),
		fallback: fallback,
	}
}

// NewDefault builds a Selector with the reference criteria table
// DefaultCriteriaTable produces, against q. emergencyInterval is
// spec.md §6's "emergency.interval_s" (config.Config.EmergencyInterval).
func NewDefault(q *queue.Queue, maxTextBytes int, emergencyInterval time.Duration) *Selector {
	s := New(q, queue.DefaultCriteria(maxTextBytes))
	for ctx, crit := range DefaultCriteriaTable(maxTextBytes, emergencyInterval) {
		s.SetCriteria(ctx, crit)
	}
	return s
}

// SetCriteria overrides the criteria used for a specific context.
func (s *Selector) SetCriteria(ctx model.Context, crit queue.Criteria) {
	s.criteria[ctx] = crit
}

// SelectFor resolves the caption queue's select contract for ctx.
func (s *Selector) SelectFor(ctx model.Context) *model.Caption {
	crit, ok := s.criteria[ctx]
	if !ok {
		crit = s.fallback
	}
	return s.q.Select(crit)
}

// DefaultCriteriaTable returns one Criteria per Context: emergency
// contexts accept only Emergency and High priority and throttle repeats
// to emergencyInterval (spec.md §4.4's "min_repeat_interval = 3 s
// (configurable)"); news contexts accept news, RSS, traffic, weather and
// emergency-system sources; music/talk contexts prefer Thai text and
// accept now-playing, manual and emergency-system sources; maintenance
// accepts Normal through Background priority from any source except
// social media; off-air accepts High through Background priority and
// never repeats a caption; the remaining contexts use the unrestricted
// base criteria.
func DefaultCriteriaTable(maxTextBytes int, emergencyInterval time.Duration) map[model.Context]queue.Criteria {
	base := queue.DefaultCriteria(maxTextBytes)

	emergency := base
	emergency.MinPriority = model.PriorityEmergency
	emergency.MaxPriority = model.PriorityHigh
	emergency.AllowRepeats = true
	emergency.MinRepeatInterval = emergencyInterval

	news := base
	news.AllowSources = map[model.Source]bool{
		model.SourceNews: true, model.SourceRSS: true,
		model.SourceTraffic: true, model.SourceWeather: true,
		model.SourceEmergencySystem: true,
	}

	music := base
	music.PreferThai = true
	music.AllowSources = map[model.Source]bool{
		model.SourceNowPlaying: true, model.SourceManual: true, model.SourceEmergencySystem: true,
	}

	maintenance := base
	maintenance.MinPriority = model.PriorityNormal
	maintenance.MaxPriority = model.PriorityBackground
	maintenance.DenySources = map[model.Source]bool{model.SourceSocialMedia: true}

	offAir := base
	offAir.MinPriority = model.PriorityHigh
	offAir.MaxPriority = model.PriorityBackground
	offAir.AllowRepeats = false

	return map[model.Context]queue.Criteria{
		model.ContextEmergency:   emergency,
		model.ContextNews:        news,
		model.ContextMusic:       music,
		model.ContextTalk:        music,
		model.ContextLiveShow:    base,
		model.ContextAutomated:  base,
		model.ContextCommercial: base,
		model.ContextMaintenance: maintenance,
		model.ContextOffAir:     offAir,
	}
}
