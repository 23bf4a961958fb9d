package ingester

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-chainview/internal/chainview/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// EventSource yields chain events. Poll may return events together with an error;
	// those events were reconciled before the failure and must still be applied.
	EventSource interface {
		Anchor(ctx context.Context) ([]model.Event, error)
		Poll(ctx context.Context) ([]model.Event, error)
	}
	ChainView interface {
		Apply(event model.Event) (model.Change, error)
		Backfill(events []model.Event) (int, error)
	}
	Metrics interface {
		ObserveAnchor(err error, events int, started time.Time)
		ObservePoll(err error, events int, started time.Time)
		ObserveRejected(kind model.EventKind)
	}
)
