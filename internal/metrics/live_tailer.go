package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	tailerHeadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "minerscan",
		Subsystem: "live_tailer",
		Name:      "heads_total",
		Help:      "Count of finalized head notifications processed.",
	}, []string{"network", "status"})

	tailerProcessHeadDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "minerscan",
		Subsystem: "live_tailer",
		Name:      "process_head_duration_seconds",
		Help:      "Duration of processing a finalized head, gap fill included.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	tailerGapBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "minerscan",
		Subsystem: "live_tailer",
		Name:      "gap_blocks_total",
		Help:      "Count of blocks ingested by gap fill between heads.",
	}, []string{"network"})

	tailerResubscribesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "minerscan",
		Subsystem: "live_tailer",
		Name:      "resubscribes_total",
		Help:      "Count of head subscription re-establishments.",
	}, []string{"network", "status"})

	tailerLastHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "minerscan",
		Subsystem: "live_tailer",
		Name:      "last_processed_height",
		Help:      "Highest block height the tailer has processed.",
	}, []string{"network"})
)

// LiveTailer tracks metrics for the finalized-head follower.
type LiveTailer struct {
	network string
}

// NewLiveTailer constructs a metrics collector for the live tailer.
func NewLiveTailer(network string) *LiveTailer {
	if network == "" {
		network = "unknown"
	}
	return &LiveTailer{network: network}
}

// ObserveHead records processing of one finalized head notification.
func (m LiveTailer) ObserveHead(err error, started time.Time) {
	status := statusLabel(err)
	tailerHeadsTotal.WithLabelValues(m.network, status).Inc()
	tailerProcessHeadDuration.WithLabelValues(m.network, status).
		Observe(time.Since(started).Seconds())
}

// ObserveGapBlocks records blocks ingested while catching up to a head.
func (m LiveTailer) ObserveGapBlocks(count int) {
	if count > 0 {
		tailerGapBlocksTotal.WithLabelValues(m.network).Add(float64(count))
	}
}

// ObserveResubscribe records a subscription re-establishment attempt.
func (m LiveTailer) ObserveResubscribe(err error) {
	tailerResubscribesTotal.WithLabelValues(m.network, statusLabel(err)).Inc()
}

// SetLastHeight publishes the highest processed height.
func (m LiveTailer) SetLastHeight(height uint64) {
	tailerLastHeight.WithLabelValues(m.network).Set(float64(height))
}
