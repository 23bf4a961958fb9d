package model

// EventKind names the kind of an inbound chain event.
type EventKind string

var (
	// EventAdd announces a new block.
	EventAdd EventKind = "add"
	// EventRollback retracts a previously announced block.
	EventRollback EventKind = "rollback"
	// EventConfirm marks a block as confirmed by the upstream stream.
	EventConfirm EventKind = "confirm"
)

// Event is a single add, rollback or confirm notification delivered in chain order.
type Event interface {
	Kind() EventKind
	BlockHash() Hash
}

// AddBlock announces a block linked to its parent by hash.
type AddBlock struct {
	Hash       Hash
	Number     uint64
	ParentHash Hash
}

// Kind implements Event.
func (e AddBlock) Kind() EventKind { return EventAdd }

// BlockHash implements Event.
func (e AddBlock) BlockHash() Hash { return e.Hash }

// RollbackBlock retracts a block.
type RollbackBlock struct {
	Hash Hash
}

// Kind implements Event.
func (e RollbackBlock) Kind() EventKind { return EventRollback }

// BlockHash implements Event.
func (e RollbackBlock) BlockHash() Hash { return e.Hash }

// ConfirmBlock marks a block as confirmed.
type ConfirmBlock struct {
	Hash Hash
}

// Kind implements Event.
func (e ConfirmBlock) Kind() EventKind { return EventConfirm }

// BlockHash implements Event.
func (e ConfirmBlock) BlockHash() Hash { return e.Hash }
