// Package metrics implements the coordinator's performance-counter
// snapshot named in SPEC_FULL.md §4 (a supplemented feature recovered
// from the reference implementation's PerformanceMetrics counters,
// dropped by the spec's distillation): ticks run, average tick
// duration, and rejections tallied by model.Kind. Grounded on the
// ledger package's atomic-counter idiom.
package metrics

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/sekz/ODR-PadEnc/model"
)

// Collector accumulates coordinator tick statistics. Safe for concurrent
// use: the hot path (RecordTick) is lock-free, the rarely-read rejection
// map is guarded by a small mutex.
type Collector struct {
	ticksRun     atomic.Uint64
	totalTickNs  atomic.Uint64
	rejectionsMu sync.Mutex
	rejections   map[model.Kind]uint64
}

func New() *Collector {
	return &Collector{rejections: make(map[model.Kind]uint64)}
}

// RecordTick accumulates one coordinator tick's wall-clock duration.
func (c *Collector) RecordTick(d time.Duration) {
	c.ticksRun.Add(1)
	c.totalTickNs.Add(uint64(d.Nanoseconds()))
}

// RecordRejection tallies a rejected operation by its error kind, so
// operators can see which rejection reason dominates over time.
func (c *Collector) RecordRejection(kind model.Kind) {
	c.rejectionsMu.Lock()
	defer c.rejectionsMu.Unlock()
	c.rejections[kind]++
}

// Snapshot is a point-in-time read of the accumulated counters.
type Snapshot struct {
	TicksRun        uint64
	AverageTick     time.Duration
	RejectionsByKind map[string]uint64
}

// Snapshot returns the current counter values. TicksRun of zero yields
// a zero AverageTick rather than dividing by zero.
func (c *Collector) Snapshot() Snapshot {
	ticks := c.ticksRun.Load()
	var avg time.Duration
	if ticks > 0 {
		avg = time.Duration(c.totalTickNs.Load() / ticks)
	}

	c.rejectionsMu.Lock()
	defer c.rejectionsMu.Unlock()
	byKind := make(map[string]uint64, len(c.rejections))
	for k, v := range c.rejections {
		byKind[k.String()] = v
	}

	return Snapshot{TicksRun: ticks, AverageTick: avg, RejectionsByKind: byKind}
}
