// Package ingester feeds chain events from an upstream source into a chain view.
package ingester

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/goodnatureofminers/blockinsight7000-chainview/internal/clock"
	"go.uber.org/zap"
)

// Service anchors the view once, then polls the source and applies events in order.
type Service struct {
	logger       *zap.Logger
	source       EventSource
	view         ChainView
	metrics      Metrics
	sleep        func(context.Context, time.Duration) error
	pollInterval time.Duration
	retry        backoff.BackOff
}

// NewService builds a Service with dependencies. A zero pollInterval selects the default.
func NewService(
	source EventSource,
	view ChainView,
	metrics Metrics,
	pollInterval time.Duration,
	logger *zap.Logger,
) (*Service, error) {
	if source == nil {
		return nil, errors.New("event source is required")
	}
	if view == nil {
		return nil, errors.New("chain view is required")
	}
	if metrics == nil {
		return nil, errors.New("ingester metrics is required")
	}
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}

	return &Service{
		logger:       logger.Named("ingester"),
		source:       source,
		view:         view,
		metrics:      metrics,
		sleep:        clock.SleepWithContext,
		pollInterval: pollInterval,
		retry:        newRetryBackOff(defaultRetryInterval, maxRetryInterval),
	}, nil
}

// Run anchors the view and then polls until the context is canceled.
func (s *Service) Run(ctx context.Context) error {
	if err := s.anchor(ctx); err != nil {
		return err
	}
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.run(ctx); err != nil {
			delay := s.retry.NextBackOff()
			s.logger.Warn("poll iteration failed, backing off", zap.Error(err), zap.Duration("sleep", delay))
			if sleepErr := s.sleep(ctx, delay); sleepErr != nil {
				return sleepErr
			}
			continue
		}
		s.retry.Reset()
	}
}

func (s *Service) anchor(ctx context.Context) error {
	for {
		started := time.Now()
		events, err := s.source.Anchor(ctx)
		s.metrics.ObserveAnchor(err, len(events), started)
		if err == nil {
			s.retry.Reset()
			applied, backfillErr := s.view.Backfill(events)
			if backfillErr != nil {
				s.logger.Warn("backfill rejected events", zap.Error(backfillErr))
			}
			s.logger.Info("view anchored", zap.Int("events", len(events)), zap.Int("applied", applied))
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		delay := s.retry.NextBackOff()
		s.logger.Warn("anchor failed, retrying", zap.Error(err), zap.Duration("sleep", delay))
		if sleepErr := s.sleep(ctx, delay); sleepErr != nil {
			return sleepErr
		}
	}
}

func (s *Service) run(ctx context.Context) error {
	started := time.Now()
	events, err := s.source.Poll(ctx)
	s.metrics.ObservePoll(err, len(events), started)

	// events reconciled before a poll failure are still valid
	for _, event := range events {
		if _, applyErr := s.view.Apply(event); applyErr != nil {
			s.metrics.ObserveRejected(event.Kind())
		}
	}
	if len(events) > 0 {
		s.logger.Debug("applied events", zap.Int("events", len(events)))
	}
	if err != nil {
		return err
	}

	return s.sleep(ctx, s.pollInterval)
}
