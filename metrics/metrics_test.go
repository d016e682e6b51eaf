package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sekz/ODR-PadEnc/model"
)

func TestSnapshotWithNoTicksHasZeroAverage(t *testing.T) {
	c := New()
	snap := c.Snapshot()
	assert.Equal(t, uint64(0), snap.TicksRun)
	assert.Equal(t, time.Duration(0), snap.AverageTick)
}

func TestRecordTickAccumulatesAverage(t *testing.T) {
	c := New()
	c.RecordTick(10 * time.Millisecond)
	c.RecordTick(20 * time.Millisecond)

	snap := c.Snapshot()
	assert.Equal(t, uint64(2), snap.TicksRun)
	assert.Equal(t, 15*time.Millisecond, snap.AverageTick)
}

func TestRecordRejectionTalliesByKind(t *testing.T) {
	c := New()
	c.RecordRejection(model.KindDuplicate)
	c.RecordRejection(model.KindDuplicate)
	c.RecordRejection(model.KindTooLarge)

	snap := c.Snapshot()
	assert.Equal(t, uint64(2), snap.RejectionsByKind[model.KindDuplicate.String()])
	assert.Equal(t, uint64(1), snap.RejectionsByKind[model.KindTooLarge.String()])
}

func TestSnapshotIsIndependentCopy(t *testing.T) {
	c := New()
	c.RecordRejection(model.KindDuplicate)
	snap := c.Snapshot()
	snap.RejectionsByKind["injected"] = 99

	snap2 := c.Snapshot()
	_, ok := snap2.RejectionsByKind["injected"]
	assert.False(t, ok)
}
