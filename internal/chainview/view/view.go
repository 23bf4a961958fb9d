// Package view composes the block tracker and snapshot history into one serialized unit.
package view

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-chainview/internal/chainview/history"
	"github.com/goodnatureofminers/blockinsight7000-chainview/internal/chainview/model"
	"github.com/goodnatureofminers/blockinsight7000-chainview/internal/chainview/tracker"
	"go.uber.org/zap"
)

// Config configures a ChainView.
type Config struct {
	Tracker      tracker.Config
	MaxSnapshots int
}

// ChainView applies chain events and answers live and historical queries.
// Every mutation and the snapshot it produces happen under one exclusive lock.
type ChainView struct {
	mu      sync.RWMutex
	tracker *tracker.Tracker
	history *history.History
	metrics Metrics
	logger  *zap.Logger
}

// New builds a ChainView with an empty tracked set and history.
func New(cfg Config, metrics Metrics, logger *zap.Logger) (*ChainView, error) {
	if metrics == nil {
		return nil, errors.New("chain view metrics is required")
	}
	logger = logger.Named("chainview")

	tr, err := tracker.New(cfg.Tracker, logger.Named("tracker"))
	if err != nil {
		return nil, fmt.Errorf("init tracker: %w", err)
	}
	return &ChainView{
		tracker: tr,
		history: history.New(tr, cfg.MaxSnapshots),
		metrics: metrics,
		logger:  logger,
	}, nil
}

// Apply applies one event. Errors leave the view unchanged and do not prevent later events.
func (v *ChainView) Apply(event model.Event) (model.Change, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.apply(event)
}

// Backfill applies the initial batch of events before live processing starts.
// It returns the number of events that mutated the view and the joined rejections.
func (v *ChainView) Backfill(events []model.Event) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	var (
		applied int
		errs    []error
	)
	for _, event := range events {
		change, err := v.apply(event)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if change.Mutated() {
			applied++
		}
	}
	v.logger.Info("backfill applied",
		zap.Int("events", len(events)),
		zap.Int("applied", applied),
		zap.Int("rejected", len(errs)),
	)
	return applied, errors.Join(errs...)
}

func (v *ChainView) apply(event model.Event) (change model.Change, err error) {
	if event == nil {
		return model.Change{}, errors.New("nil event")
	}
	started := time.Now()
	defer func() {
		v.metrics.ObserveEvent(event.Kind(), change.Outcome, err, started)
	}()

	switch e := event.(type) {
	case model.AddBlock:
		change, err = v.tracker.AddBlock(e.Hash, e.Number, e.ParentHash)
	case model.RollbackBlock:
		change = v.tracker.RollbackBlock(e.Hash)
	case model.ConfirmBlock:
		change = v.tracker.ConfirmBlock(e.Hash)
	default:
		return model.Change{}, fmt.Errorf("unsupported event %T", event)
	}
	if err != nil {
		v.logger.Warn("event rejected",
			zap.String("kind", string(event.Kind())),
			zap.String("hash", string(event.BlockHash())),
			zap.Error(err),
		)
		return change, err
	}
	if !change.Mutated() {
		v.logger.Debug("event ignored",
			zap.String("kind", string(event.Kind())),
			zap.String("hash", string(event.BlockHash())),
			zap.String("outcome", string(change.Outcome)),
		)
		return change, nil
	}

	v.history.Record(v.tracker.CurrentBlocks())
	v.metrics.ObservePruned(len(change.Pruned))
	v.metrics.SetTracked(v.tracker.Len())
	v.metrics.SetHistory(v.history.Len(), v.history.Depth())
	return change, nil
}

// LiveBlocks returns a copy of the current tracked set.
func (v *ChainView) LiveBlocks() []model.BlockRecord {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.tracker.CurrentBlocks()
}

// ActiveView returns the blocks under the history cursor, or the live set when at 0.
func (v *ChainView) ActiveView() []model.BlockRecord {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.history.ActiveView()
}

// MaxNumber returns the highest block number of the active view.
func (v *ChainView) MaxNumber() uint64 {
	return model.MaxNumber(v.ActiveView())
}

// LiveFrame returns the live tracked set with the current history depth.
func (v *ChainView) LiveFrame() Frame {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return newFrame(v.tracker.CurrentBlocks(), v.history.Depth())
}

// ActiveFrame returns the active view with the history depth it belongs to.
func (v *ChainView) ActiveFrame() Frame {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return newFrame(v.history.ActiveView(), v.history.Depth())
}

func newFrame(blocks []model.BlockRecord, depth int) Frame {
	if blocks == nil {
		blocks = []model.BlockRecord{}
	}
	return Frame{
		Blocks:       blocks,
		MaxNumber:    model.MaxNumber(blocks),
		HistoryDepth: depth,
	}
}

// HistoryDepth returns the cursor distance from live; 0 means live.
func (v *ChainView) HistoryDepth() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.history.Depth()
}

// StepBack moves one snapshot into the past and returns the frame it landed on.
func (v *ChainView) StepBack() Frame {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.history.StepBack()
	v.metrics.SetHistory(v.history.Len(), v.history.Depth())
	return newFrame(v.history.ActiveView(), v.history.Depth())
}

// StepForward moves one snapshot toward live and returns the frame it landed on.
func (v *ChainView) StepForward() Frame {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.history.StepForward()
	v.metrics.SetHistory(v.history.Len(), v.history.Depth())
	return newFrame(v.history.ActiveView(), v.history.Depth())
}

// Stats returns a summary of the tracked set and history.
func (v *ChainView) Stats() Stats {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return Stats{
		Tracked:         v.tracker.Len(),
		Snapshots:       v.history.Len(),
		Capacity:        v.history.Capacity(),
		HistoryDepth:    v.history.Depth(),
		RetentionWindow: v.tracker.RetentionWindow(),
		LiveMaxNumber:   model.MaxNumber(v.tracker.CurrentBlocks()),
	}
}
