package model

import (
	"time"

	"github.com/google/uuid"
)

// ImageFormat is a magic-byte-detected image container, per spec.md §4.2
// step 2. Extension is advisory only; this is the trustworthy classifier.
type ImageFormat uint8

const (
	FormatUnknown ImageFormat = iota
	FormatJPEG
	FormatPNG
	FormatWebP
	FormatHEIF
)

func (f ImageFormat) String() string {
	switch f {
	case FormatJPEG:
		return "JPEG"
	case FormatPNG:
		return "PNG"
	case FormatWebP:
		return "WebP"
	case FormatHEIF:
		return "HEIF"
	default:
		return "Unknown"
	}
}

func (f ImageFormat) MimeType() string {
	switch f {
	case FormatJPEG:
		return "image/jpeg"
	case FormatPNG:
		return "image/png"
	case FormatWebP:
		return "image/webp"
	case FormatHEIF:
		return "image/heif"
	default:
		return "application/octet-stream"
	}
}

// SlideID uniquely names a slide within the carousel.
type SlideID string

func NewSlideID() SlideID { return SlideID(uuid.NewString()) }

// QualityMetrics are normalized [0,1] scores computed on the transcoded
// image, feeding the selection composite score in spec.md §4.2.
type QualityMetrics struct {
	Sharpness  float64
	Contrast   float64
	Brightness float64
}

// Slide is an image destined for MOT SlideShow. See spec.md §3 for
// invariants: transcoded bytes non-empty and <= budget, dimensions <=
// carousel max, content-hash unique within the carousel.
type Slide struct {
	ID               SlideID
	OriginalFilename string
	Format           ImageFormat
	TranscodedBytes  []byte `validate:"required"`
	Width            int
	Height           int
	Quality          QualityMetrics
	Freshness        float64
	LastDisplayed    time.Time
	DisplayCount     int
	ContentHash      uint64
	IsOptimized      bool
	// CategoryID and SlideNumber are passed-through MOT category/slide
	// metadata (see SPEC_FULL.md §4); the carousel does not interpret
	// them, it only carries them for the emitter's MOT header.
	CategoryID  uint8
	SlideNumber uint8
	// MOTContentType and MOTImageSubType are the ETSI TS 101 499 header
	// values the emitter needs to frame this slide; set by the carousel
	// via padwire.ImageSubTypeFor. HasImageSubType is false when Format
	// has no ETSI-assigned subtype (see padwire.ImageSubTypeFor).
	MOTContentType   uint8
	MOTImageSubType  uint16
	HasImageSubType  bool
	// WireChecksum is a CRC16-CCITT-FALSE checksum (padwire.Checksum)
	// over TranscodedBytes, letting an emitter verify the payload
	// survived transport unmodified.
	WireChecksum uint16
}

// Validate checks the invariants spec.md §3 lists for a Slide. The
// non-empty-bytes check runs through validator.Struct (the same
// github.com/go-playground/validator/v10 instance Caption.Validate
// uses); the byte/dimension budgets are runtime carousel configuration,
// not fixed tag values, so they stay explicit checks below.
func (s *Slide) Validate(maxBytes int, maxWidth, maxHeight int) *Error {
	if err := validate.Struct(s); err != nil {
		return NewError(KindInvalidInput, err.Error())
	}
	if maxBytes > 0 && len(s.TranscodedBytes) > maxBytes {
		return NewError(KindTooLarge, "slide exceeds carousel byte budget")
	}
	if maxWidth > 0 && s.Width > maxWidth {
		return NewError(KindInvalidInput, "slide width exceeds carousel maximum")
	}
	if maxHeight > 0 && s.Height > maxHeight {
		return NewError(KindInvalidInput, "slide height exceeds carousel maximum")
	}
	return nil
}

// Clone returns a value copy, including a defensive copy of the byte
// slice, matching the "emitter takes a value copy" ownership rule.
func (s *Slide) Clone() Slide {
	cp := *s
	if s.TranscodedBytes != nil {
		cp.TranscodedBytes = append([]byte(nil), s.TranscodedBytes...)
	}
	return cp
}
