// Package model defines domain models for chain view tracking.
package model

// Hash identifies a block. The format is opaque to the tracker.
type Hash string

// BlockRecord represents one chain block known to the tracker.
type BlockRecord struct {
	Hash       Hash   `json:"hash"`
	Number     uint64 `json:"number"`
	ParentHash Hash   `json:"parent_hash"`
	// ChildDepth counts tracked strict descendants of the block.
	ChildDepth uint64 `json:"child_depth"`
	Confirmed  bool   `json:"confirmed"`
}

// Snapshot is an immutable copy of the tracked block set taken at one instant.
type Snapshot struct {
	blocks []BlockRecord
}

// NewSnapshot copies blocks into a new Snapshot.
func NewSnapshot(blocks []BlockRecord) Snapshot {
	return Snapshot{blocks: CopyBlocks(blocks)}
}

// Blocks returns a copy of the snapshot contents.
func (s Snapshot) Blocks() []BlockRecord {
	return CopyBlocks(s.blocks)
}

// Len returns the number of blocks captured in the snapshot.
func (s Snapshot) Len() int {
	return len(s.blocks)
}

// CopyBlocks returns a value copy of blocks. A nil input yields an empty, non-nil slice.
func CopyBlocks(blocks []BlockRecord) []BlockRecord {
	out := make([]BlockRecord, len(blocks))
	copy(out, blocks)
	return out
}

// MaxNumber returns the highest block number in blocks, or 0 when blocks is empty.
func MaxNumber(blocks []BlockRecord) uint64 {
	var highest uint64
	for _, b := range blocks {
		if b.Number > highest {
			highest = b.Number
		}
	}
	return highest
}
