// Package bitcoin turns a Bitcoin node's best chain into add, rollback and confirm events.
package bitcoin

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-chainview/internal/chainview/model"
	"github.com/goodnatureofminers/blockinsight7000-chainview/pkg/safe"
	"github.com/goodnatureofminers/blockinsight7000-chainview/pkg/workerpool"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

var errNotAnchored = errors.New("stream is not anchored")

type header struct {
	hash      model.Hash
	number    uint64
	parent    model.Hash
	confirmed bool
}

// Stream polls a node and reconciles its best chain with a bounded local copy.
// It is not safe for concurrent use.
type Stream struct {
	rpc     RPCClient
	metrics Metrics
	cfg     Config
	rl      ratelimit.Limiter
	logger  *zap.Logger
	// chain is contiguous and ascending by number.
	chain []*header
}

// NewStream builds a Stream.
func NewStream(rpc RPCClient, metrics Metrics, cfg Config, logger *zap.Logger) (*Stream, error) {
	if rpc == nil {
		return nil, errors.New("rpc client is required")
	}
	if metrics == nil {
		return nil, errors.New("stream metrics is required")
	}
	cfg = cfg.withDefaults()
	return &Stream{
		rpc:     rpc,
		metrics: metrics,
		cfg:     cfg,
		rl:      ratelimit.New(cfg.RPS),
		logger:  logger.Named("stream"),
	}, nil
}

// Anchor loads the last BackfillDepth blocks below the tip and returns them as add events,
// followed by confirm events for the ones already deep enough.
func (s *Stream) Anchor(ctx context.Context) ([]model.Event, error) {
	tip, err := s.tipHeight()
	if err != nil {
		return nil, err
	}
	var from uint64
	if tip > s.cfg.BackfillDepth {
		from = tip - s.cfg.BackfillDepth
	}

	headers, err := s.fetchRange(ctx, from, tip)
	if err != nil {
		return nil, fmt.Errorf("fetch anchor range %d-%d: %w", from, tip, err)
	}
	if err := checkLinkage(headers); err != nil {
		return nil, fmt.Errorf("anchor: %w", err)
	}

	s.chain = headers
	events := make([]model.Event, 0, len(headers))
	for _, h := range headers {
		events = append(events, addEvent(h))
	}
	events = append(events, s.confirmations()...)
	s.metrics.SetHead(tip)

	s.logger.Info("anchored",
		zap.Uint64("from", from),
		zap.Uint64("tip", tip),
		zap.String("head", string(s.head().hash)),
	)
	return events, nil
}

// Poll reconciles the local chain with the node and returns the resulting events in chain order.
// On error the returned events are still valid: they describe the blocks reconciled before the failure.
func (s *Stream) Poll(ctx context.Context) ([]model.Event, error) {
	if len(s.chain) == 0 {
		return nil, errNotAnchored
	}
	tip, err := s.tipHeight()
	if err != nil {
		return nil, err
	}

	head := s.head()
	from := head.number + 1
	if tip < from {
		// no new height; re-check the tip for a same-height or shorter reorg
		from = tip
	}
	if tip >= s.cfg.Window && from < tip-s.cfg.Window+1 {
		from = tip - s.cfg.Window + 1
	}

	// the tip ran more than a window ahead; heights between head and from are never fetched
	gap := from > head.number+1
	if gap {
		canonical, err := s.onBestChain(head)
		if err != nil {
			return nil, err
		}
		gap = canonical
	}

	headers, err := s.fetchRange(ctx, from, tip)
	if err != nil {
		return nil, fmt.Errorf("fetch range %d-%d: %w", from, tip, err)
	}
	if gap {
		return s.skipAhead(headers)
	}

	var events []model.Event
	for _, h := range headers {
		if s.indexOf(h.hash) >= 0 {
			continue
		}
		connected, err := s.connect(ctx, h)
		if err != nil {
			events = append(events, s.confirmations()...)
			return events, err
		}
		events = append(events, connected...)
	}
	events = append(events, s.confirmations()...)
	s.trim()
	s.metrics.SetHead(s.head().number)
	return events, nil
}

// skipAhead replaces a still-canonical local chain with headers, which start past its head.
// Held blocks are confirmed first since the node is now more than a window beyond them.
func (s *Stream) skipAhead(headers []*header) ([]model.Event, error) {
	if err := checkLinkage(headers); err != nil {
		return nil, fmt.Errorf("skip ahead: %w", err)
	}

	var events []model.Event
	for _, h := range s.chain {
		if !h.confirmed {
			h.confirmed = true
			events = append(events, model.ConfirmBlock{Hash: h.hash})
		}
	}
	skipped := headers[0].number - s.head().number - 1

	s.chain = headers
	for _, h := range headers {
		events = append(events, addEvent(h))
	}
	events = append(events, s.confirmations()...)
	s.metrics.SetHead(s.head().number)

	s.logger.Info("skipped ahead",
		zap.Uint64("skipped", skipped),
		zap.Int("added", len(headers)),
		zap.String("head", string(s.head().hash)),
	)
	return events, nil
}

// connect links h to the local chain. A parent mismatch walks h's ancestry back to the fork
// point; without one inside the window the whole local chain is replaced.
func (s *Stream) connect(ctx context.Context, h *header) ([]model.Event, error) {
	if h.parent == s.head().hash {
		s.chain = append(s.chain, h)
		return []model.Event{addEvent(h)}, nil
	}

	branch := []*header{h}
	fork := -1
	for cur := h; ; {
		if i := s.indexOf(cur.parent); i >= 0 {
			fork = i
			break
		}
		if cur.parent == "" || uint64(len(branch)) >= s.cfg.Window {
			break
		}
		parent, err := s.fetchByHash(ctx, cur.parent)
		if err != nil {
			return nil, fmt.Errorf("walk back from %s: %w", h.hash, err)
		}
		branch = append(branch, parent)
		cur = parent
	}
	slices.Reverse(branch)

	orphaned := s.chain[fork+1:]
	events := make([]model.Event, 0, len(orphaned)+len(branch))
	for i := len(orphaned) - 1; i >= 0; i-- {
		events = append(events, model.RollbackBlock{Hash: orphaned[i].hash})
	}
	for _, b := range branch {
		events = append(events, addEvent(b))
	}

	kept := s.chain[: fork+1 : fork+1]
	s.chain = append(kept, branch...)

	s.metrics.ObserveReorg(len(orphaned))
	s.logger.Info("reorg",
		zap.Int("orphaned", len(orphaned)),
		zap.Int("added", len(branch)),
		zap.Bool("fork_found", fork >= 0),
		zap.String("head", string(h.hash)),
	)
	return events, nil
}

// confirmations marks blocks that reached ConfirmationDepth and returns one confirm event per block.
func (s *Stream) confirmations() []model.Event {
	head := s.head()
	var events []model.Event
	for _, h := range s.chain {
		if h.confirmed {
			continue
		}
		if head.number-h.number+1 < s.cfg.ConfirmationDepth {
			break
		}
		h.confirmed = true
		events = append(events, model.ConfirmBlock{Hash: h.hash})
	}
	return events
}

func (s *Stream) trim() {
	if uint64(len(s.chain)) <= s.cfg.Window {
		return
	}
	s.chain = slices.Clone(s.chain[uint64(len(s.chain))-s.cfg.Window:])
}

func (s *Stream) head() *header {
	return s.chain[len(s.chain)-1]
}

func (s *Stream) indexOf(hash model.Hash) int {
	for i := len(s.chain) - 1; i >= 0; i-- {
		if s.chain[i].hash == hash {
			return i
		}
	}
	return -1
}

func checkLinkage(headers []*header) error {
	for i := 1; i < len(headers); i++ {
		if headers[i].parent != headers[i-1].hash {
			return fmt.Errorf("best chain changed at height %d", headers[i].number)
		}
	}
	return nil
}

// onBestChain reports whether the node still has h at its height.
func (s *Stream) onBestChain(h *header) (bool, error) {
	height, err := safe.Int64(h.number)
	if err != nil {
		return false, fmt.Errorf("block height: %w", err)
	}
	s.rl.Take()
	hash, err := s.rpc.GetBlockHash(height)
	if err != nil {
		return false, fmt.Errorf("get block hash at height %d: %w", h.number, err)
	}
	return model.Hash(hash.String()) == h.hash, nil
}

func (s *Stream) tipHeight() (uint64, error) {
	s.rl.Take()
	count, err := s.rpc.GetBlockCount()
	if err != nil {
		return 0, fmt.Errorf("get block count: %w", err)
	}
	height, err := safe.Uint64(count)
	if err != nil {
		return 0, fmt.Errorf("block count overflow: %w", err)
	}
	return height, nil
}

func (s *Stream) fetchRange(ctx context.Context, from, to uint64) ([]*header, error) {
	heights := make([]uint64, 0, to-from+1)
	for h := from; h <= to; h++ {
		heights = append(heights, h)
	}
	return workerpool.Map(ctx, s.cfg.WorkerCount, heights, s.fetchByHeight)
}

func (s *Stream) fetchByHeight(ctx context.Context, height uint64) (*header, error) {
	rpcHeight, err := safe.Int64(height)
	if err != nil {
		return nil, fmt.Errorf("block height: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.rl.Take()
	hash, err := s.rpc.GetBlockHash(rpcHeight)
	if err != nil {
		return nil, fmt.Errorf("get block hash at height %d: %w", height, err)
	}
	return s.fetchHeader(ctx, hash)
}

func (s *Stream) fetchByHash(ctx context.Context, hash model.Hash) (*header, error) {
	h, err := chainhash.NewHashFromStr(string(hash))
	if err != nil {
		return nil, fmt.Errorf("parse block hash %s: %w", hash, err)
	}
	return s.fetchHeader(ctx, h)
}

func (s *Stream) fetchHeader(ctx context.Context, hash *chainhash.Hash) (*header, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.rl.Take()
	res, err := s.rpc.GetBlockHeaderVerbose(hash)
	if err != nil {
		return nil, fmt.Errorf("get block header %s: %w", hash, err)
	}
	number, err := safe.Uint64(res.Height)
	if err != nil {
		return nil, fmt.Errorf("block %s height: %w", hash, err)
	}
	return &header{
		hash:   model.Hash(res.Hash),
		number: number,
		parent: model.Hash(res.PreviousHash),
	}, nil
}

func addEvent(h *header) model.Event {
	return model.AddBlock{Hash: h.hash, Number: h.number, ParentHash: h.parent}
}
