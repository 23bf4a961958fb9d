// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-chainview/internal/chainview/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	chainViewEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chainview",
		Name:      "events_total",
		Help:      "Count of chain events applied to the view.",
	}, []string{"kind", "outcome", "status"})

	chainViewEventDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chainview",
		Name:      "event_duration_seconds",
		Help:      "Duration of applying a chain event, snapshot included.",
		Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05},
	}, []string{"kind", "status"})

	chainViewPrunedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chainview",
		Name:      "pruned_blocks_total",
		Help:      "Count of blocks pruned out of the retention window.",
	})

	chainViewTracked = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chainview",
		Name:      "tracked_blocks",
		Help:      "Number of blocks in the live tracked set.",
	})

	chainViewSnapshots = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chainview",
		Name:      "history_snapshots",
		Help:      "Number of snapshots held in history.",
	})

	chainViewHistoryDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chainview",
		Name:      "history_depth",
		Help:      "Distance of the history cursor from live; 0 is live.",
	})
)

// ChainView tracks metrics for the chain view.
type ChainView struct{}

// NewChainView creates a ChainView metrics collector.
func NewChainView() *ChainView {
	return &ChainView{}
}

// ObserveEvent records the outcome and duration of one applied event.
func (m ChainView) ObserveEvent(kind model.EventKind, outcome model.Outcome, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	if outcome == "" {
		outcome = "none"
	}
	chainViewEventsTotal.WithLabelValues(string(kind), string(outcome), status).Inc()
	chainViewEventDuration.WithLabelValues(string(kind), status).Observe(time.Since(started).Seconds())
}

func (m ChainView) ObservePruned(count int) {
	if count <= 0 {
		return
	}
	chainViewPrunedTotal.Add(float64(count))
}

func (m ChainView) SetTracked(count int) {
	chainViewTracked.Set(float64(count))
}

func (m ChainView) SetHistory(snapshots, depth int) {
	chainViewSnapshots.Set(float64(snapshots))
	chainViewHistoryDepth.Set(float64(depth))
}
