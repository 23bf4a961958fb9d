package model

import "errors"

var (
	// ErrCorruptChainState reports a parent cycle or a hash-uniqueness violation.
	// The offending event is dropped without side effects.
	ErrCorruptChainState = errors.New("corrupt chain state")
	// ErrDuplicateBlock reports a re-add of a tracked hash when duplicates are rejected.
	ErrDuplicateBlock = errors.New("duplicate block")
)

// Outcome describes what an event did to the tracked set.
type Outcome string

var (
	// OutcomeApplied means the tracked set was mutated.
	OutcomeApplied Outcome = "applied"
	// OutcomeUntracked means the event named a hash outside the tracked set.
	OutcomeUntracked Outcome = "untracked"
	// OutcomeUnchanged means the event was accepted but changed nothing.
	OutcomeUnchanged Outcome = "unchanged"
)

// Change is returned by every tracker mutation and drives snapshot capture.
type Change struct {
	Kind    EventKind
	Hash    Hash
	Outcome Outcome
	// Pruned lists hashes dropped by the retention window during an add.
	Pruned []Hash
}

// Mutated reports whether the tracked set changed.
func (c Change) Mutated() bool {
	return c.Outcome == OutcomeApplied
}
