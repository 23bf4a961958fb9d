package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	streamReorgsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chainview_stream",
		Name:      "reorgs_total",
		Help:      "Count of chain reorganizations seen by the stream.",
	}, []string{"network"})

	streamReorgDepth = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chainview_stream",
		Name:      "reorg_depth_blocks",
		Help:      "Number of blocks rolled back per reorganization.",
		Buckets:   []float64{1, 2, 3, 4, 6, 8, 16, 32, 64},
	}, []string{"network"})

	streamHead = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chainview_stream",
		Name:      "head_height",
		Help:      "Height of the stream's best chain head.",
	}, []string{"network"})
)

// Stream tracks metrics for the bitcoin event stream.
type Stream struct {
	network string
}

// NewStream constructs a Stream metrics collector.
func NewStream(network string) *Stream {
	if network == "" {
		network = "unknown"
	}
	return &Stream{network: network}
}

// ObserveReorg records a reorganization that rolled back depth blocks.
func (m Stream) ObserveReorg(depth int) {
	streamReorgsTotal.WithLabelValues(m.network).Inc()
	streamReorgDepth.WithLabelValues(m.network).Observe(float64(depth))
}

// SetHead records the current head height.
func (m Stream) SetHead(height uint64) {
	streamHead.WithLabelValues(m.network).Set(float64(height))
}
