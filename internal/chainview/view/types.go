package view

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-chainview/internal/chainview/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		ObserveEvent(kind model.EventKind, outcome model.Outcome, err error, started time.Time)
		ObservePruned(count int)
		SetTracked(count int)
		SetHistory(snapshots, depth int)
	}
)

// Stats summarizes the view for health reporting.
type Stats struct {
	Tracked         int    `json:"tracked"`
	Snapshots       int    `json:"snapshots"`
	Capacity        int    `json:"capacity"`
	HistoryDepth    int    `json:"history_depth"`
	RetentionWindow uint64 `json:"retention_window"`
	LiveMaxNumber   uint64 `json:"live_max_number"`
}

// Frame is a set of blocks read together with the history depth current at the time.
type Frame struct {
	Blocks       []model.BlockRecord `json:"blocks"`
	MaxNumber    uint64              `json:"max_number"`
	HistoryDepth int                 `json:"history_depth"`
}
