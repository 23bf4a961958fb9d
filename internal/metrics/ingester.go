package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-chainview/internal/chainview/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ingesterAnchorTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chainview_ingester",
		Name:      "anchor_total",
		Help:      "Count of attempts to anchor the view.",
	}, []string{"network", "status"})

	ingesterAnchorDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chainview_ingester",
		Name:      "anchor_duration_seconds",
		Help:      "Duration of anchoring the view.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	ingesterPollTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chainview_ingester",
		Name:      "poll_total",
		Help:      "Count of polls of the event source.",
	}, []string{"network", "status"})

	ingesterPollDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chainview_ingester",
		Name:      "poll_duration_seconds",
		Help:      "Duration of a poll of the event source.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	ingesterEventsPerPoll = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chainview_ingester",
		Name:      "events_per_poll",
		Help:      "Number of events returned by a single poll.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 8), // 1..128
	}, []string{"network"})

	ingesterRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chainview_ingester",
		Name:      "rejected_events_total",
		Help:      "Count of events the view rejected.",
	}, []string{"network", "kind"})
)

// Ingester tracks metrics for the chain view ingestion loop.
type Ingester struct {
	network string
}

// NewIngester constructs an Ingester with defaults.
func NewIngester(network string) *Ingester {
	if network == "" {
		network = "unknown"
	}
	return &Ingester{network: network}
}

// ObserveAnchor records an anchor attempt outcome and duration.
func (m Ingester) ObserveAnchor(err error, _ int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	ingesterAnchorTotal.WithLabelValues(m.network, status).Inc()
	ingesterAnchorDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
}

// ObservePoll records a poll outcome, its duration and how many events it returned.
func (m Ingester) ObservePoll(err error, events int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	ingesterPollTotal.WithLabelValues(m.network, status).Inc()
	ingesterPollDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
	ingesterEventsPerPoll.WithLabelValues(m.network).Observe(float64(events))
}

// ObserveRejected counts an event the view refused.
func (m Ingester) ObserveRejected(kind model.EventKind) {
	ingesterRejectedTotal.WithLabelValues(m.network, string(kind)).Inc()
}
