// Package history keeps a bounded, navigable record of tracked-set snapshots.
package history

import "github.com/goodnatureofminers/blockinsight7000-chainview/internal/chainview/model"

// DefaultMaxSnapshots is the default ring capacity.
const DefaultMaxSnapshots = 200

// LiveView supplies the current tracked set.
type LiveView interface {
	CurrentBlocks() []model.BlockRecord
}

// History stores snapshots oldest first and a cursor counting steps back from the newest
// stored snapshot; cursor 0 means the live view. It is not safe for concurrent use.
type History struct {
	live      LiveView
	capacity  int
	snapshots []model.Snapshot
	cursor    int
}

// New builds a History reading the live view from live.
func New(live LiveView, capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultMaxSnapshots
	}
	return &History{
		live:      live,
		capacity:  capacity,
		snapshots: make([]model.Snapshot, 0, capacity+1),
	}
}

// Record appends a copy of blocks. A cursor away from live keeps pointing at the same
// snapshot until that snapshot is evicted, then it settles on the oldest one.
func (h *History) Record(blocks []model.BlockRecord) {
	h.snapshots = append(h.snapshots, model.NewSnapshot(blocks))
	if h.cursor > 0 {
		h.cursor++
	}
	if len(h.snapshots) > h.capacity {
		h.snapshots[0] = model.Snapshot{}
		h.snapshots = h.snapshots[1:]
	}
	if h.cursor > len(h.snapshots)-1 {
		h.cursor = len(h.snapshots) - 1
	}
}

// StepBack moves the cursor one snapshot into the past, stopping at the oldest.
func (h *History) StepBack() {
	if h.cursor >= len(h.snapshots)-1 {
		return
	}
	h.cursor++
}

// StepForward moves the cursor one snapshot toward live.
func (h *History) StepForward() {
	if h.cursor == 0 {
		return
	}
	h.cursor--
}

// ActiveView returns the snapshot under the cursor, or the live view when the cursor is at 0.
func (h *History) ActiveView() []model.BlockRecord {
	if h.cursor > 0 {
		return h.snapshots[len(h.snapshots)-1-h.cursor].Blocks()
	}
	return h.live.CurrentBlocks()
}

// Depth returns the cursor distance from live.
func (h *History) Depth() int {
	return h.cursor
}

// IsLive reports whether the cursor is at the live position.
func (h *History) IsLive() bool {
	return h.cursor == 0
}

// Len returns the number of stored snapshots.
func (h *History) Len() int {
	return len(h.snapshots)
}

// Capacity returns the maximum number of stored snapshots.
func (h *History) Capacity() int {
	return h.capacity
}
