// Package tracker maintains the bounded set of recently seen chain blocks.
package tracker

import (
	"fmt"
	"slices"

	"github.com/goodnatureofminers/blockinsight7000-chainview/internal/chainview/model"
	"go.uber.org/zap"
)

type entry struct {
	record model.BlockRecord
	seq    uint64
}

// Tracker owns the tracked set. It is not safe for concurrent use; callers serialize access.
//
// Child depths are exact only while nothing has been pruned or rolled back below a block:
// neither pruning nor rollback revisits ancestor depths, so values near the retention
// boundary are lower bounds.
type Tracker struct {
	cfg    Config
	logger *zap.Logger
	blocks map[model.Hash]*entry
	seq    uint64
}

// New builds a Tracker.
func New(cfg Config, logger *zap.Logger) (*Tracker, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{
		cfg:    cfg,
		logger: logger,
		blocks: make(map[model.Hash]*entry),
	}, nil
}

// RetentionWindow returns the configured retention window.
func (t *Tracker) RetentionWindow() uint64 {
	return t.cfg.RetentionWindow
}

// AddBlock inserts a block, bumps the child depth of every tracked ancestor and prunes
// blocks that fell out of the retention window.
func (t *Tracker) AddBlock(hash model.Hash, number uint64, parent model.Hash) (model.Change, error) {
	change := model.Change{Kind: model.EventAdd, Hash: hash}

	if existing, ok := t.blocks[hash]; ok {
		if existing.record.Number != number || existing.record.ParentHash != parent {
			return change, fmt.Errorf("add block %s: tracked at %d with parent %s: %w",
				hash, existing.record.Number, existing.record.ParentHash, model.ErrCorruptChainState)
		}
		if t.cfg.DuplicatePolicy == DuplicateReject {
			return change, fmt.Errorf("add block %s: %w", hash, model.ErrDuplicateBlock)
		}
		change.Outcome = model.OutcomeUnchanged
		return change, nil
	}
	ancestors, err := t.ancestors(hash, parent)
	if err != nil {
		return change, fmt.Errorf("add block %s: %w", hash, err)
	}

	t.seq++
	t.blocks[hash] = &entry{
		record: model.BlockRecord{Hash: hash, Number: number, ParentHash: parent},
		seq:    t.seq,
	}
	for _, a := range ancestors {
		a.record.ChildDepth++
	}

	change.Pruned = t.prune(number)
	change.Outcome = model.OutcomeApplied
	return change, nil
}

// ancestors collects the tracked ancestors of a block about to be inserted, nearest first.
// Nothing is mutated, so a detected cycle leaves the tracked set untouched.
func (t *Tracker) ancestors(hash, parent model.Hash) ([]*entry, error) {
	visited := map[model.Hash]struct{}{hash: {}}
	var chain []*entry
	for cur := parent; ; {
		if _, seen := visited[cur]; seen {
			return nil, fmt.Errorf("parent cycle through %s: %w", cur, model.ErrCorruptChainState)
		}
		e, ok := t.blocks[cur]
		if !ok {
			return chain, nil
		}
		visited[cur] = struct{}{}
		chain = append(chain, e)
		cur = e.record.ParentHash
	}
}

func (t *Tracker) prune(latest uint64) []model.Hash {
	if latest < t.cfg.RetentionWindow {
		return nil
	}
	floor := latest - t.cfg.RetentionWindow

	var pruned []model.Hash
	for h, e := range t.blocks {
		if e.record.Number < floor {
			delete(t.blocks, h)
			pruned = append(pruned, h)
		}
	}
	if len(pruned) > 0 {
		slices.Sort(pruned)
		t.logger.Debug("pruned blocks",
			zap.Uint64("floor", floor),
			zap.Int("count", len(pruned)),
			zap.Int("tracked", len(t.blocks)),
		)
	}
	return pruned
}

// RollbackBlock removes a tracked block. Ancestor depths are left as they are.
func (t *Tracker) RollbackBlock(hash model.Hash) model.Change {
	change := model.Change{Kind: model.EventRollback, Hash: hash, Outcome: model.OutcomeUntracked}
	if _, ok := t.blocks[hash]; !ok {
		return change
	}
	delete(t.blocks, hash)
	change.Outcome = model.OutcomeApplied
	return change
}

// ConfirmBlock marks a tracked block as confirmed.
func (t *Tracker) ConfirmBlock(hash model.Hash) model.Change {
	change := model.Change{Kind: model.EventConfirm, Hash: hash, Outcome: model.OutcomeUntracked}
	e, ok := t.blocks[hash]
	if !ok {
		return change
	}
	if e.record.Confirmed {
		change.Outcome = model.OutcomeUnchanged
		return change
	}
	e.record.Confirmed = true
	change.Outcome = model.OutcomeApplied
	return change
}

// CurrentBlocks returns value copies of all tracked blocks in insertion order.
func (t *Tracker) CurrentBlocks() []model.BlockRecord {
	entries := make([]*entry, 0, len(t.blocks))
	for _, e := range t.blocks {
		entries = append(entries, e)
	}
	slices.SortFunc(entries, func(a, b *entry) int {
		switch {
		case a.seq < b.seq:
			return -1
		case a.seq > b.seq:
			return 1
		}
		return 0
	})

	out := make([]model.BlockRecord, len(entries))
	for i, e := range entries {
		out[i] = e.record
	}
	return out
}

// Get returns a copy of the tracked block with the given hash.
func (t *Tracker) Get(hash model.Hash) (model.BlockRecord, bool) {
	e, ok := t.blocks[hash]
	if !ok {
		return model.BlockRecord{}, false
	}
	return e.record, true
}

// Len returns the number of tracked blocks.
func (t *Tracker) Len() int {
	return len(t.blocks)
}
