// Package coordinator implements component F of spec.md §4.4: the
// content coordinator and emergency override state machine that drives
// the queue, carousel, context selector, and scheduled table on a
// periodic tick, and publishes the resolved (slide, caption,
// emergency_flag) triple for the emitter to pull. Grounded on the
// teacher's single-threaded tick loop (edisplitter.go's main read loop)
// generalized from EDI-frame processing to the decision procedure of
// spec.md §4.4.
package coordinator

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/sekz/ODR-PadEnc/carousel"
	"github.com/sekz/ODR-PadEnc/config"
	"github.com/sekz/ODR-PadEnc/contextselect"
	"github.com/sekz/ODR-PadEnc/internal/logging"
	"github.com/sekz/ODR-PadEnc/metrics"
	"github.com/sekz/ODR-PadEnc/model"
	"github.com/sekz/ODR-PadEnc/padwire"
	"github.com/sekz/ODR-PadEnc/queue"
	"github.com/sekz/ODR-PadEnc/schedule"
	"github.com/sekz/ODR-PadEnc/thai"
)

// Snapshot is the triple the emitter pulls, per spec.md §4.4's
// publication contract: reads never block writes, writes never tear.
type Snapshot struct {
	Slide           *model.Slide
	Caption         *model.Caption
	CaptionChecksum uint16
	EmergencyActive bool
	Timestamp       time.Time
}

// emergencyState is the {Idle | Active(message, started_at, duration)}
// variant of spec.md §3, guarded by its own mutex so trigger/clear never
// race a concurrent tick.
type emergencyState struct {
	mu        sync.Mutex
	active    bool
	message   string
	startedAt time.Time
	duration  time.Duration
}

// Coordinator drives components A-E on a periodic tick and resolves the
// pair (current slide, current caption), per spec.md §2's dependency
// table entry for component F.
type Coordinator struct {
	cfg       config.Config
	q         *queue.Queue
	car       *carousel.Carousel
	selector  *contextselect.Selector
	sched     *schedule.Table
	cultural  *thai.CulturalAnalyzer
	metrics   *metrics.Collector
	log       zerolog.Logger
	now       func() time.Time

	emergency emergencyState

	contextMu sync.Mutex
	context   model.Context

	snapshot atomic.Pointer[Snapshot]

	stopped atomic.Bool
}

// New wires a Coordinator against its dependencies. All dependencies are
// injected rather than constructed internally, matching the "library,
// not a framework" posture of spec.md §5 ("no internal thread pool").
func New(cfg config.Config, q *queue.Queue, car *carousel.Carousel, selector *contextselect.Selector, sched *schedule.Table, cultural *thai.CulturalAnalyzer, log zerolog.Logger) *Coordinator {
	c := &Coordinator{
		cfg:      cfg,
		q:        q,
		car:      car,
		selector: selector,
		sched:    sched,
		cultural: cultural,
		metrics:  metrics.New(),
		log:      log,
		now:      time.Now,
	}
	c.snapshot.Store(&Snapshot{Timestamp: c.now()})
	return c
}

// NewDefault wires sensible defaults for callers that don't need custom
// construction of every dependency.
func NewDefault(cfg config.Config) *Coordinator {
	q := queue.New(cfg.QueueDedupWindow, logging.Nop())
	car := carousel.New(carousel.Options{
		Capacity:    cfg.CarouselCapacity,
		MaxBytes:    cfg.CarouselMaxBytes,
		MaxWidth:    cfg.CarouselMaxWidth,
		MaxHeight:   cfg.CarouselMaxHeight,
		SmartSelect: cfg.CarouselSmartSelect,
		Dedup:       cfg.CarouselDedup,
	}, nil, logging.Nop())
	selector := contextselect.NewDefault(q, cfg.QueueMaxTextBytes, cfg.EmergencyInterval)
	sched := schedule.New()
	cultural := thai.NewCulturalAnalyzer()
	return New(cfg, q, car, selector, sched, cultural, logging.Nop())
}

// Metrics exposes the coordinator's performance-counter collector.
func (c *Coordinator) Metrics() *metrics.Collector { return c.metrics }

// Queue exposes the underlying caption queue, for submit_caption per
// spec.md §6.
func (c *Coordinator) Queue() *queue.Queue { return c.q }

// Carousel exposes the underlying slideshow carousel, for submit_slide
// per spec.md §6.
func (c *Coordinator) Carousel() *carousel.Carousel { return c.car }

// Scheduled exposes the scheduled-content table, for add_scheduled /
// remove_scheduled per spec.md §6.
func (c *Coordinator) Scheduled() *schedule.Table { return c.sched }

// SetContext implements spec.md §6's set_context inbound interface.
func (c *Coordinator) SetContext(ctx model.Context) {
	c.contextMu.Lock()
	defer c.contextMu.Unlock()
	c.context = ctx
}

func (c *Coordinator) currentContext() model.Context {
	c.contextMu.Lock()
	defer c.contextMu.Unlock()
	return c.context
}

// TriggerEmergency implements spec.md §4.4's emergency override: sets
// state to Active atomically and pushes an Emergency-priority caption
// onto the queue with max_sends=0 (unlimited) and the configured
// min-repeat-interval.
func (c *Coordinator) TriggerEmergency(message string, duration time.Duration) {
	now := c.now()

	c.emergency.mu.Lock()
	c.emergency.active = true
	c.emergency.message = message
	c.emergency.startedAt = now
	c.emergency.duration = duration
	c.emergency.mu.Unlock()

	c.q.Submit(model.Caption{
		Text:      message,
		Priority:  model.PriorityEmergency,
		Source:    model.SourceEmergencySystem,
		Context:   model.ContextEmergency,
		CreatedAt: now,
		ExpiresAt: now.Add(duration),
		MaxSends:  0,
	})
}

// ClearEmergency implements spec.md §4.4's clear_emergency: returns to
// Idle immediately; any in-flight tick finishes first because it reads
// emergency state once at the top of Tick under the same mutex.
func (c *Coordinator) ClearEmergency() {
	c.emergency.mu.Lock()
	defer c.emergency.mu.Unlock()
	c.emergency.active = false
}

// emergencySnapshot reads the emergency state once, matching the "reads
// never observe a torn intermediate state" contract.
func (c *Coordinator) emergencySnapshot() (active bool, message string, startedAt time.Time, duration time.Duration) {
	c.emergency.mu.Lock()
	defer c.emergency.mu.Unlock()
	return c.emergency.active, c.emergency.message, c.emergency.startedAt, c.emergency.duration
}

func (c *Coordinator) transitionEmergencyIdle() {
	c.emergency.mu.Lock()
	defer c.emergency.mu.Unlock()
	c.emergency.active = false
}

// Tick executes the decision procedure of spec.md §4.4 exactly once.
func (c *Coordinator) Tick() {
	start := c.now()
	defer func() { c.metrics.RecordTick(c.now().Sub(start)) }()

	active, message, startedAt, duration := c.emergencySnapshot()
	if active {
		if c.now().Sub(startedAt) < duration {
			c.publish(emergencySlide(message), emergencyCaption(message, startedAt, duration), true)
			return
		}
		c.transitionEmergencyIdle()
	}

	var slidePtr *model.Slide
	if entry := c.sched.NextOfKind(schedule.KindSlide); entry != nil && entry.Slide != nil {
		slidePtr = entry.Slide
	} else if next := c.car.Next(); next != nil {
		slidePtr = next
	}

	caption := c.selector.SelectFor(c.currentContext())

	if caption != nil && caption.IsThai {
		validation := c.cultural.Validate(caption.Text)
		if !validation.IsAppropriate && c.cfg.ThaiCulturalCheckMode == config.CulturalCheckBlocking {
			c.metrics.RecordRejection(model.KindUnsafeContent)
			caption = nil
		} else {
			formatted := thai.FormatForDLS(caption.Text, c.cfg.QueueMaxTextBytes, true)
			caption.Text = formatted
		}
	}

	c.publishOrHold(slidePtr, caption)
}

// publishOrHold implements "hold previous" semantics: a nil slot keeps
// whatever the previous snapshot held, per spec.md §4.4 step 6 and
// §6's publication contract.
func (c *Coordinator) publishOrHold(slide *model.Slide, caption *model.Caption) {
	prev := c.snapshot.Load()
	if slide == nil && prev != nil {
		slide = prev.Slide
	}
	if caption == nil && prev != nil {
		caption = prev.Caption
	}
	c.publish(slide, caption, false)
}

func (c *Coordinator) publish(slide *model.Slide, caption *model.Caption, emergencyActive bool) {
	var checksum uint16
	if caption != nil {
		wireBytes := []byte(caption.Text)
		if caption.IsThai {
			wireBytes = thai.Encode(caption.Text)
		}
		checksum = padwire.Checksum(wireBytes)
	}
	c.snapshot.Store(&Snapshot{
		Slide:           slide,
		Caption:         caption,
		CaptionChecksum: checksum,
		EmergencyActive: emergencyActive,
		Timestamp:       c.now(),
	})
}

// Snapshot implements spec.md §6's snapshot() outbound contract: a
// non-blocking read of the current triple. The returned value is safe
// to read after the call returns even if a concurrent Tick republishes,
// since publish always allocates a fresh Snapshot rather than mutating
// the previous one in place.
func (c *Coordinator) Snapshot() Snapshot {
	return *c.snapshot.Load()
}

// emergencySlide synthesizes the "message as slide" fallback spec.md
// §4.4 step 1 refers to: the emitter is expected to render this
// caption-only pair (Slide stays nil; MOT SlideShow simply holds
// whatever was last displayed) when no dedicated emergency graphic
// exists. The coordinator's job stops at handing across a well-formed
// nil; conjuring emergency artwork is out of scope.
func emergencySlide(message string) *model.Slide {
	return nil
}

func emergencyCaption(message string, startedAt time.Time, duration time.Duration) *model.Caption {
	return &model.Caption{
		Text:      message,
		Priority:  model.PriorityEmergency,
		Source:    model.SourceEmergencySystem,
		Context:   model.ContextEmergency,
		CreatedAt: startedAt,
		ExpiresAt: startedAt.Add(duration),
		MaxSends:  0,
		State:     model.CaptionSelected,
	}
}

// RunTicks runs Tick on cfg.CoordinatorTick cadence until the provided
// stop channel closes, matching spec.md §5's
// convergence-within-one-tick shutdown contract.
func (c *Coordinator) RunTicks(stop <-chan struct{}) {
	interval := c.cfg.CoordinatorTick
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			c.stopped.Store(true)
			return
		case <-ticker.C:
			c.Tick()
		}
	}
}

// SetClock overrides the coordinator's time source, for deterministic
// tests.
func (c *Coordinator) SetClock(now func() time.Time) {
	c.now = now
}
