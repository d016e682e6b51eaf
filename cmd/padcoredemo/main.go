// Command padcoredemo wires the PAD encoding core end to end: it
// submits a handful of captions and one synthetic slide, runs a few
// coordinator ticks, and prints the resulting snapshot. It exists to
// exercise the full component graph the way an integrator embedding
// this module would, not as a production broadcast tool — the HTTP/
// WebSocket control surface and PAD bit-packer that would sit around it
// are out of scope per spec.md §1.
package main

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"time"

	"github.com/sekz/ODR-PadEnc/config"
	"github.com/sekz/ODR-PadEnc/coordinator"
	"github.com/sekz/ODR-PadEnc/internal/logging"
	"github.com/sekz/ODR-PadEnc/model"
	"github.com/sekz/ODR-PadEnc/thai"
)

func main() {
	log := logging.New("padcoredemo", os.Stdout)
	cfg := config.Default()

	coord := coordinator.NewDefault(cfg)
	coord.Carousel().EnableBufferTracking(true)

	now := time.Now()

	verdict, err := coord.Queue().Submit(model.Caption{
		Text:       "Now Playing: Luk Thung Hour",
		Priority:   model.PriorityNormal,
		Source:     model.SourceNowPlaying,
		Context:    model.ContextMusic,
		CreatedAt:  now,
		ExpiresAt:  now.Add(2 * time.Hour),
		Importance: 0.6,
	})
	log.Info().Str("verdict", verdict.String()).AnErr("error", errOrNil(err)).Msg("submitted caption")

	verdict2, err2 := coord.Queue().Submit(model.Caption{
		Text:       "สภาพอากาศวันนี้แจ่มใส",
		Priority:   model.PriorityHigh,
		Source:     model.SourceWeather,
		Context:    model.ContextMusic,
		CreatedAt:  now,
		ExpiresAt:  now.Add(time.Hour),
		Importance: 0.7,
	})
	log.Info().Str("verdict", verdict2.String()).AnErr("error", errOrNil(err2)).Msg("submitted thai caption")

	verdict3, err3 := coord.Queue().Submit(model.Caption{
		Text:       "เตือนภัยน้ำท่วมฉับพลันในพื้นที่ลุ่มต่ำ",
		Priority:   model.PriorityHigh,
		Source:     model.SourceWeather,
		Context:    model.ContextMusic,
		CreatedAt:  now,
		ExpiresAt:  now.Add(time.Hour),
		Importance: 0.7,
		Metadata:   map[string]string{thai.MetadataKey: thai.DLPlusInfoAlarm.String()},
	})
	log.Info().Str("verdict", verdict3.String()).AnErr("error", errOrNil(err3)).Msg("submitted alarm-tagged caption")

	if id, ierr := coord.Carousel().Ingest(sampleJPEG(), "image/jpeg"); ierr != nil {
		log.Warn().Err(ierr).Msg("sample slide ingest rejected")
	} else {
		log.Info().Str("slide_id", string(id)).Msg("ingested sample slide")
	}

	coord.SetContext(model.ContextMusic)

	for i := 0; i < 3; i++ {
		coord.Tick()
		snap := coord.Snapshot()
		event := log.Info().Time("tick_at", snap.Timestamp).Bool("emergency", snap.EmergencyActive)
		if snap.Caption != nil {
			event = event.Str("caption", snap.Caption.Text)
		}
		if snap.Slide != nil {
			event = event.Int("slide_bytes", len(snap.Slide.TranscodedBytes))
		}
		event.Msg("coordinator tick")
	}

	stats := coord.Metrics().Snapshot()
	log.Info().Uint64("ticks_run", stats.TicksRun).Dur("avg_tick", stats.AverageTick).Msg("metrics")

	bufStats := coord.Carousel().BufferStats()
	log.Info().Int64("in_flight", bufStats.InFlight).Int64("peak", bufStats.Peak).Msg("ingest buffer ledger")
}

func errOrNil(e *model.Error) error {
	if e == nil {
		return nil
	}
	return e
}

// sampleJPEG synthesizes a tiny in-memory JPEG so the demo has something
// to feed the carousel without depending on a file on disk.
func sampleJPEG() []byte {
	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 5), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	_ = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	return buf.Bytes()
}
