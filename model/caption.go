package model

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// validate is shared by Caption.Validate and Slide.Validate for the
// subset of spec.md §3's invariants a struct tag can express directly,
// the same github.com/go-playground/validator/v10 instance
// config.Config.Validate uses.
var validate = validator.New()

// Priority orders captions for selection. Emergency always outranks every
// other tier; ordinal values are used directly by the composite score in
// the queue package (priority_weight = (4 - ordinal) / 4).
type Priority uint8

const (
	PriorityEmergency Priority = iota
	PriorityHigh
	PriorityNormal
	PriorityLow
	PriorityBackground
)

func (p Priority) String() string {
	switch p {
	case PriorityEmergency:
		return "Emergency"
	case PriorityHigh:
		return "High"
	case PriorityNormal:
		return "Normal"
	case PriorityLow:
		return "Low"
	case PriorityBackground:
		return "Background"
	default:
		return "Unknown"
	}
}

// Source tags where a caption originated, mirroring the "duck-typed source
// integration" of the original implementation, redesigned as a sealed
// enum plus a single submission API (design note in spec.md §9).
type Source uint8

const (
	SourceManual Source = iota
	SourceRSS
	SourceSocialMedia
	SourceNowPlaying
	SourceWeather
	SourceTraffic
	SourceNews
	SourceAutomation
	SourceEmergencySystem
)

func (s Source) String() string {
	switch s {
	case SourceManual:
		return "Manual"
	case SourceRSS:
		return "RSS"
	case SourceSocialMedia:
		return "SocialMedia"
	case SourceNowPlaying:
		return "NowPlaying"
	case SourceWeather:
		return "Weather"
	case SourceTraffic:
		return "Traffic"
	case SourceNews:
		return "News"
	case SourceAutomation:
		return "Automation"
	case SourceEmergencySystem:
		return "EmergencySystem"
	default:
		return "Unknown"
	}
}

// Context describes the broadcast context a caption or selection criteria
// applies to; the context-aware selector (contextselect) binds queue
// output to whichever of these is currently active.
type Context uint8

const (
	ContextLiveShow Context = iota
	ContextAutomated
	ContextNews
	ContextMusic
	ContextTalk
	ContextCommercial
	ContextEmergency
	ContextMaintenance
	ContextOffAir
)

func (c Context) String() string {
	switch c {
	case ContextLiveShow:
		return "LiveShow"
	case ContextAutomated:
		return "Automated"
	case ContextNews:
		return "News"
	case ContextMusic:
		return "Music"
	case ContextTalk:
		return "Talk"
	case ContextCommercial:
		return "Commercial"
	case ContextEmergency:
		return "Emergency"
	case ContextMaintenance:
		return "Maintenance"
	case ContextOffAir:
		return "OffAir"
	default:
		return "Unknown"
	}
}

// CaptionState is the lifecycle a caption moves through inside the queue,
// per spec.md §4.1: Queued -> Selected -> Queued, terminating in Expired,
// Exhausted, or Evicted.
type CaptionState uint8

const (
	CaptionQueued CaptionState = iota
	CaptionSelected
	CaptionExpired
	CaptionExhausted
	CaptionEvicted
)

// CaptionID uniquely names a caption. Generated by the submitter-facing
// API, not by the caller, so dedup and lifecycle bookkeeping have a stable
// handle independent of content-hash collisions across submitters.
type CaptionID string

func NewCaptionID() CaptionID { return CaptionID(uuid.NewString()) }

// Caption is a short text message destined for the Dynamic Label Segment.
// See spec.md §3 for the full invariant list; Validate enforces the
// subset checkable without access to the queue's clock or dedup state.
type Caption struct {
	ID          CaptionID
	Text        string  `validate:"required"`
	Priority    Priority
	Source      Source
	Context     Context
	CreatedAt   time.Time
	ExpiresAt   time.Time
	LastSent    time.Time
	SendCount   int     `validate:"min=0"`
	MaxSends    int
	Importance  float64 `validate:"min=0,max=1"`
	ContentHash uint64
	IsThai      bool
	Metadata    map[string]string
	State       CaptionState
}

// Validate checks the invariants spec.md §3 lists for a Caption:
// non-empty trimmed text, created_at <= expires_at, send_count >= 0,
// importance in [0,1]. It does not check the content hash (set by
// queue.Submit via hashing.ContentHashText after validation) or dedup
// state (queue-owned). The struct-tag-expressible checks (required, min/max)
// run through validator.Struct first; created_at/expires_at ordering
// keeps its own KindExpired classification since no cross-field tag
// maps to that Kind.
func (c *Caption) Validate() *Error {
	if err := validate.Struct(c); err != nil {
		return NewError(KindInvalidInput, err.Error())
	}
	if strings.TrimSpace(c.Text) == "" {
		return NewError(KindInvalidInput, "caption text is empty after trimming")
	}
	if c.CreatedAt.After(c.ExpiresAt) {
		return NewError(KindExpired, "created_at is after expires_at")
	}
	return nil
}

// Clone returns a value copy of the caption, matching the "value copy on
// snapshot, queue retains authority" ownership rule in spec.md §3.
func (c *Caption) Clone() Caption {
	cp := *c
	if c.Metadata != nil {
		cp.Metadata = make(map[string]string, len(c.Metadata))
		for k, v := range c.Metadata {
			cp.Metadata[k] = v
		}
	}
	return cp
}
