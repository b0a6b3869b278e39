package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	backfillProcessBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "minerscan",
		Subsystem: "backfill_ingester",
		Name:      "process_batch_total",
		Help:      "Count of processed backfill batches.",
	}, []string{"network", "status"})

	backfillProcessBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "minerscan",
		Subsystem: "backfill_ingester",
		Name:      "process_batch_duration_seconds",
		Help:      "Duration of processing a backfill batch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	backfillProcessBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "minerscan",
		Subsystem: "backfill_ingester",
		Name:      "process_batch_size",
		Help:      "Number of heights processed per backfill batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10), // 1..512
	}, []string{"network"})

	backfillFetchHeightDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "minerscan",
		Subsystem: "backfill_ingester",
		Name:      "fetch_height_duration_seconds",
		Help:      "Duration of fetching a single height.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	backfillDeferredRangesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "minerscan",
		Subsystem: "backfill_ingester",
		Name:      "deferred_ranges_total",
		Help:      "Count of batches deferred after exhausting retries.",
	}, []string{"network"})
)

// BackfillIngester tracks metrics for the batch ingestion pipeline.
type BackfillIngester struct {
	network string
}

// NewBackfillIngester constructs a metrics collector for backfill ingestion.
func NewBackfillIngester(network string) *BackfillIngester {
	if network == "" {
		network = "unknown"
	}
	return &BackfillIngester{network: network}
}

// ObserveProcessBatch records processing of a batch of heights.
func (m BackfillIngester) ObserveProcessBatch(err error, heights int, started time.Time) {
	status := statusLabel(err)
	backfillProcessBatchTotal.WithLabelValues(m.network, status).Inc()
	backfillProcessBatchDuration.WithLabelValues(m.network, status).
		Observe(time.Since(started).Seconds())
	backfillProcessBatchSize.WithLabelValues(m.network).Observe(float64(heights))
}

// ObserveFetchHeight records fetching of a single height.
func (m BackfillIngester) ObserveFetchHeight(err error, started time.Time) {
	backfillFetchHeightDuration.WithLabelValues(m.network, statusLabel(err)).
		Observe(time.Since(started).Seconds())
}

// ObserveDeferredRange records a batch given up on and left for
// reconciliation.
func (m BackfillIngester) ObserveDeferredRange() {
	backfillDeferredRangesTotal.WithLabelValues(m.network).Inc()
}
