// Package config enumerates every configuration key spec.md §6 names.
// This package never reads a file or environment variable itself
// (config-file loading is an out-of-scope external collaborator per
// spec.md §1) — it only defines the shape and validates whatever a
// caller populates, the way medusa's own settings struct is populated by
// its surrounding HTTP layer and merely validated here.
package config

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// CarouselFormat names a transcode target, spec.md §6 "carousel.format".
// The value is validated but not passed to the carousel, which always
// encodes baseline JPEG.
type CarouselFormat string

const (
	CarouselFormatJPEGBaseline    CarouselFormat = "jpeg"
	CarouselFormatJPEGProgressive CarouselFormat = "jpeg-progressive"
	CarouselFormatPNG             CarouselFormat = "png"
	CarouselFormatWebP            CarouselFormat = "webp"
	CarouselFormatHEIF            CarouselFormat = "heif"
)

// Config mirrors the "Configuration (enumerated)" table in spec.md §6.
// Struct tags drive github.com/go-playground/validator/v10 validation in
// Validate(); mapstructure tags let a caller populate this from
// github.com/spf13/viper however it likes.
type Config struct {
	CarouselCapacity      int            `mapstructure:"carousel.capacity" validate:"min=1"`
	CarouselMaxBytes      int            `mapstructure:"carousel.max_bytes" validate:"min=1024"`
	CarouselMaxWidth      int            `mapstructure:"carousel.max_width" validate:"min=1"`
	CarouselMaxHeight     int            `mapstructure:"carousel.max_height" validate:"min=1"`
	CarouselFormat        CarouselFormat `mapstructure:"carousel.format" validate:"required"`
	CarouselSmartSelect   bool           `mapstructure:"carousel.smart_selection"`
	CarouselDedup         bool           `mapstructure:"carousel.dedup"`

	QueueMaxTextBytes     int           `mapstructure:"queue.max_text_bytes" validate:"min=1"`
	QueueDedupWindow      time.Duration `mapstructure:"queue.dedup_window_s" validate:"min=1"`
	QueueDefaultExpiry    time.Duration `mapstructure:"queue.default_expiry_h" validate:"min=1"`

	CoordinatorTick       time.Duration `mapstructure:"coordinator.tick_ms" validate:"min=1"`

	EmergencyInterval     time.Duration `mapstructure:"emergency.interval_s" validate:"min=1"`

	PathsAllowRoots       []string `mapstructure:"paths.allow_roots" validate:"omitempty,dive,required"`

	ThaiCulturalCheckMode CulturalCheckMode `mapstructure:"thai.cultural_check"`
}

// CulturalCheckMode selects how the coordinator treats Thai cultural
// validation verdicts (spec.md §6 "thai.cultural_check"): purely
// advisory, or blocking on inappropriate content.
type CulturalCheckMode string

const (
	CulturalCheckAdvisory CulturalCheckMode = "advisory"
	CulturalCheckBlocking CulturalCheckMode = "blocking"
)

// Default returns the configuration defaults named throughout spec.md:
// 50 KiB slide budget, 320x240 max dimensions, 128 byte DLS budget, 1h
// dedup window, 1s coordinator tick, 3s emergency repeat interval.
func Default() Config {
	return Config{
		CarouselCapacity:    50,
		CarouselMaxBytes:    50 * 1024,
		CarouselMaxWidth:    320,
		CarouselMaxHeight:   240,
		CarouselFormat:      CarouselFormatJPEGBaseline,
		CarouselSmartSelect: true,
		CarouselDedup:       true,

		QueueMaxTextBytes:  128,
		QueueDedupWindow:   time.Hour,
		QueueDefaultExpiry: 24 * time.Hour,

		CoordinatorTick: time.Second,

		EmergencyInterval: 3 * time.Second,

		PathsAllowRoots: nil,

		ThaiCulturalCheckMode: CulturalCheckAdvisory,
	}
}

var validate = validator.New()

// Validate checks the struct tags above via go-playground/validator,
// rejecting a malformed configuration at construction time instead of
// mid-broadcast, per SPEC_FULL.md §2.
func (c Config) Validate() error {
	return validate.Struct(c)
}
