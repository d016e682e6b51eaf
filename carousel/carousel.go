// Package carousel implements the slideshow carousel of spec.md §4.2:
// image ingest with transcode/dedup/quality scoring, smart selection
// order, and capacity-based eviction. Grounded on the teacher's
// mutex-guarded-map idiom (mDlsDataProcessors in edisplitter.go): one
// lock protects the slide list and the hash index together.
package carousel

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/sekz/ODR-PadEnc/hashing"
	"github.com/sekz/ODR-PadEnc/internal/ledger"
	"github.com/sekz/ODR-PadEnc/internal/logging"
	"github.com/sekz/ODR-PadEnc/model"
	"github.com/sekz/ODR-PadEnc/padwire"
	"github.com/sekz/ODR-PadEnc/sanitize"
	"github.com/sekz/ODR-PadEnc/scoring"
)

// Options configures a Carousel, mirroring the "carousel.*" keys in
// spec.md §6.
type Options struct {
	Capacity    int
	MaxBytes    int
	MaxWidth    int
	MaxHeight   int
	SmartSelect bool
	Dedup       bool
}

// DefaultOptions matches spec.md's stated defaults: 50 KiB budget,
// 320x240 max, smart selection and dedup both on.
func DefaultOptions() Options {
	return Options{
		Capacity:    50,
		MaxBytes:    50 * 1024,
		MaxWidth:    320,
		MaxHeight:   240,
		SmartSelect: true,
		Dedup:       true,
	}
}

// Statistics summarizes carousel state for an operator/metrics caller.
type Statistics struct {
	Count           int
	Capacity        int
	TotalBytes      int
	AverageQuality  float64
	OldestInsertion time.Time
}

type slideEntry struct {
	slide      model.Slide
	insertSeq  uint64
	insertedAt time.Time
}

// Carousel is the ordered set of Slides plus hash index described in
// spec.md §3. One mutex protects both the slide map and the insertion
// counter, matching the queue package's locking discipline.
type Carousel struct {
	mu       sync.Mutex
	opts     Options
	slides   map[model.SlideID]*slideEntry
	byHash   map[uint64]model.SlideID
	nextSeq  uint64
	rrCursor int
	decoder  Decoder
	pathVal  *sanitize.PathValidator
	scanner  *sanitize.ContentScanner
	buffers  *ledger.Ledger
	log      zerolog.Logger
	now      func() time.Time
}

// New constructs a Carousel. pathVal may be nil if ingest_directory is
// never used against untrusted roots.
func New(opts Options, pathVal *sanitize.PathValidator, log zerolog.Logger) *Carousel {
	return &Carousel{
		opts:    opts,
		slides:  make(map[model.SlideID]*slideEntry),
		byHash:  make(map[uint64]model.SlideID),
		decoder: stdlibDecoder{},
		pathVal: pathVal,
		scanner: sanitize.NewContentScanner(),
		buffers: ledger.New(),
		log:     log,
		now:     time.Now,
	}
}

// EnableBufferTracking turns on the ingest buffer ledger, which watches
// for a build-up of outstanding decode buffers across concurrent Ingest
// calls (see internal/ledger doc comment). Off by default.
func (c *Carousel) EnableBufferTracking(v bool) {
	c.buffers.Enable(v)
}

// BufferStats reports the ingest buffer ledger's current counters.
func (c *Carousel) BufferStats() ledger.Stats {
	return c.buffers.Stats()
}

// NewDefault wires DefaultOptions and a no-op logger.
func NewDefault() *Carousel {
	return New(DefaultOptions(), nil, logging.Nop())
}

// WithDecoder injects a Decoder for formats stdlib can't handle
// (WebP/HEIF), per the Decoder doc comment in decode.go.
func (c *Carousel) WithDecoder(d Decoder) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.decoder = d
}

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".heic": true, ".heif": true,
}

// Ingest implements the seven-step pipeline of spec.md §4.2 steps 2-7
// (step 1, path safety, is the caller's job when reading from disk — see
// IngestDirectory).
func (c *Carousel) Ingest(data []byte, declaredMime string) (model.SlideID, *model.Error) {
	format := sanitize.DetectFormat(data)
	if format == model.FormatUnknown {
		return "", model.NewError(model.KindBadFormat, "unrecognized image magic bytes")
	}

	scan := c.scanner.Scan(data)
	if !scan.IsSafe {
		return "", model.NewError(model.KindUnsafeContent, strings.Join(scan.Reasons, "; "))
	}

	release := c.buffers.Acquire()
	defer release()

	img, err := c.decoder.Decode(data)
	if err != nil || img == nil {
		return "", model.WrapError(model.KindDecodeFailed, "image decode failed", err)
	}

	resized := downscalePreserveAspect(img, c.opts.MaxWidth, c.opts.MaxHeight)
	profiled := applyBroadcastProfile(resized)

	encoded, _, encErr := encodeAtQuality(profiled, c.opts.MaxBytes)
	if encErr != nil {
		return "", encErr
	}

	contentHash := hashing.ContentHashBytes(encoded)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.opts.Dedup {
		if _, dup := c.byHash[contentHash]; dup {
			return "", model.NewError(model.KindDuplicate, "content hash already present in carousel")
		}
	}

	quality := computeQuality(profiled)
	bounds := profiled.Bounds()

	// encodeAtQuality always produces baseline JPEG (see decode.go); the
	// output format tagged on the slide reflects what was actually
	// encoded, not the source format detected above.
	outputFormat := model.FormatJPEG
	subtype, hasSubtype := padwire.ImageSubTypeFor(outputFormat)

	slide := model.Slide{
		ID:              model.NewSlideID(),
		Format:          outputFormat,
		TranscodedBytes: encoded,
		Width:           bounds.Dx(),
		Height:          bounds.Dy(),
		Quality:         quality,
		Freshness:       1.0,
		ContentHash:     contentHash,
		IsOptimized:     true,
		MOTContentType:  uint8(padwire.MOTContentImage),
		MOTImageSubType: uint16(subtype),
		HasImageSubType: hasSubtype,
		WireChecksum:    padwire.Checksum(encoded),
	}
	if verr := slide.Validate(c.opts.MaxBytes, c.opts.MaxWidth, c.opts.MaxHeight); verr != nil {
		return "", verr
	}

	c.nextSeq++
	c.slides[slide.ID] = &slideEntry{slide: slide, insertSeq: c.nextSeq, insertedAt: c.now()}
	if c.opts.Dedup {
		c.byHash[contentHash] = slide.ID
	}

	if c.opts.Capacity > 0 && len(c.slides) > c.opts.Capacity {
		c.evictLocked(len(c.slides) - c.opts.Capacity)
	}

	return slide.ID, nil
}

// IngestDirectoryResult reports per-file outcomes of IngestDirectory.
type IngestDirectoryResult struct {
	Accepted  int
	Rejected  []RejectedFile
}

// RejectedFile names a file IngestDirectory could not ingest and why.
type RejectedFile struct {
	Path string
	Err  *model.Error
}

// IngestDirectory implements spec.md §4.2's ingest_directory contract:
// iterate regular files with known image extensions, ingest each, and
// report a mixed success/failure summary rather than aborting on the
// first bad file.
func (c *Carousel) IngestDirectory(dir string) IngestDirectoryResult {
	result := IngestDirectoryResult{}

	if c.pathVal != nil && !c.pathVal.IsSafe(dir) {
		result.Rejected = append(result.Rejected, RejectedFile{
			Path: dir,
			Err:  model.NewError(model.KindPathUnsafe, "directory failed path safety check"),
		})
		return result
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		result.Rejected = append(result.Rejected, RejectedFile{
			Path: dir,
			Err:  model.WrapError(model.KindInvalidInput, "cannot list directory", err),
		})
		return result
	}

	for _, ent := range entries {
		if ent.IsDir() {
			continue
		}
		if !imageExtensions[strings.ToLower(filepath.Ext(ent.Name()))] {
			continue
		}
		full := filepath.Join(dir, ent.Name())
		if c.pathVal != nil && !c.pathVal.IsSafe(full) {
			result.Rejected = append(result.Rejected, RejectedFile{
				Path: full,
				Err:  model.NewError(model.KindPathUnsafe, "file failed path safety check"),
			})
			continue
		}
		data, rerr := os.ReadFile(full)
		if rerr != nil {
			result.Rejected = append(result.Rejected, RejectedFile{
				Path: full,
				Err:  model.WrapError(model.KindInvalidInput, "cannot read file", rerr),
			})
			continue
		}
		if _, ierr := c.Ingest(data, ""); ierr != nil {
			result.Rejected = append(result.Rejected, RejectedFile{Path: full, Err: ierr})
			continue
		}
		result.Accepted++
	}
	return result
}

// Next implements spec.md §4.2's selection score, or round-robin by
// insertion order when smart selection is disabled. Returns a value
// snapshot and records the display as a side effect.
func (c *Carousel) Next() *model.Slide {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.slides) == 0 {
		return nil
	}

	entries := make([]*slideEntry, 0, len(c.slides))
	for _, e := range c.slides {
		entries = append(entries, e)
	}

	var winner *slideEntry
	if c.opts.SmartSelect {
		now := c.now()
		sort.SliceStable(entries, func(i, j int) bool {
			si := selectionScore(entries[i].slide, now)
			sj := selectionScore(entries[j].slide, now)
			if si != sj {
				return si > sj
			}
			return entries[i].slide.LastDisplayed.Before(entries[j].slide.LastDisplayed)
		})
		winner = entries[0]
	} else {
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].insertSeq < entries[j].insertSeq })
		winner = entries[c.rrCursor%len(entries)]
		c.rrCursor++
	}

	winner.slide.LastDisplayed = c.now()
	winner.slide.DisplayCount++

	result := winner.slide.Clone()
	return &result
}

// selectionScore implements spec.md §4.2's next() composite score via the
// shared scoring package.
func selectionScore(s model.Slide, now time.Time) float64 {
	hoursSince := 0.0
	if !s.LastDisplayed.IsZero() {
		hoursSince = now.Sub(s.LastDisplayed).Hours()
	}
	return scoring.Slide(scoring.SlideInputs{
		Sharpness:         s.Quality.Sharpness,
		Contrast:          s.Quality.Contrast,
		Brightness:        s.Quality.Brightness,
		HoursSinceDisplay: hoursSince,
		DisplayCount:      s.DisplayCount,
	})
}

func slideFreshness(s model.Slide, now time.Time) float64 {
	if s.LastDisplayed.IsZero() {
		return 1.0
	}
	return scoring.Freshness(now.Sub(s.LastDisplayed).Hours(), s.DisplayCount)
}

// evictionScore implements spec.md §4.2's eviction ranking (ascending:
// lowest removed first) via the shared scoring package.
func evictionScore(s model.Slide) float64 {
	return scoring.SlideEviction(s.Freshness, s.Quality.Sharpness, s.Quality.Contrast)
}

// evictLocked removes the n lowest-scoring slides and rebuilds the hash
// index, per spec.md §4.2's eviction contract. Caller must hold c.mu.
func (c *Carousel) evictLocked(n int) {
	if n <= 0 {
		return
	}
	entries := make([]*slideEntry, 0, len(c.slides))
	for _, e := range c.slides {
		entries = append(entries, e)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return evictionScore(entries[i].slide) < evictionScore(entries[j].slide)
	})
	for i := 0; i < n && i < len(entries); i++ {
		delete(c.slides, entries[i].slide.ID)
	}
	c.rebuildHashIndexLocked()
}

func (c *Carousel) rebuildHashIndexLocked() {
	c.byHash = make(map[uint64]model.SlideID, len(c.slides))
	for id, e := range c.slides {
		c.byHash[e.slide.ContentHash] = id
	}
}

// Remove deletes a slide by id (operator remove).
func (c *Carousel) Remove(id model.SlideID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.slides[id]; !ok {
		return false
	}
	delete(c.slides, id)
	c.rebuildHashIndexLocked()
	return true
}

// Count reports the number of slides currently held.
func (c *Carousel) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.slides)
}

// Statistics reports the aggregate view spec.md §4.2 expects for
// operator/metrics consumers.
func (c *Carousel) Statistics() Statistics {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats := Statistics{Count: len(c.slides), Capacity: c.opts.Capacity}
	if len(c.slides) == 0 {
		return stats
	}

	var qualitySum float64
	oldest := c.now()
	for _, e := range c.slides {
		stats.TotalBytes += len(e.slide.TranscodedBytes)
		qualitySum += (e.slide.Quality.Sharpness + e.slide.Quality.Contrast + e.slide.Quality.Brightness) / 3
		if e.insertedAt.Before(oldest) {
			oldest = e.insertedAt
		}
	}
	stats.AverageQuality = qualitySum / float64(len(c.slides))
	stats.OldestInsertion = oldest
	return stats
}

// RunMaintenance implements the 5-minute background tick of spec.md
// §4.2: recompute freshness for every slide and, when the carousel holds
// more than Capacity slides, evict down to Capacity. A carousel that is
// between 90% and 100% full is left unchanged.
func (c *Carousel) RunMaintenance() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for _, e := range c.slides {
		e.slide.Freshness = slideFreshness(e.slide, now)
	}

	if c.opts.Capacity > 0 && float64(len(c.slides)) >= 0.9*float64(c.opts.Capacity) && len(c.slides) > c.opts.Capacity {
		c.evictLocked(len(c.slides) - c.opts.Capacity)
	}

	if c.buffers.Suspect(8) {
		c.log.Warn().Interface("buffer_stats", c.buffers.Stats()).Msg("ingest buffers not draining")
	}
}

// SetClock overrides the carousel's time source, for deterministic tests.
func (c *Carousel) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}
