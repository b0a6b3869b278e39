package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	repositoryQueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "minerscan",
		Subsystem: "repository",
		Name:      "queries_total",
		Help:      "Count of sqlite repository queries.",
	}, []string{"operation", "network", "status"})
	repositoryQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "minerscan",
		Subsystem: "repository",
		Name:      "query_duration_seconds",
		Help:      "Duration of sqlite repository queries.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// Repository tracks metrics for sqlite queries.
type Repository struct {
	network string
}

// NewRepository constructs a metrics collector for repository queries.
func NewRepository(network string) *Repository {
	if network == "" {
		network = "unknown"
	}
	return &Repository{network: network}
}

// Observe records a single query outcome and duration.
func (m Repository) Observe(operation string, err error, started time.Time) {
	status := statusLabel(err)
	repositoryQueriesTotal.WithLabelValues(operation, m.network, status).Inc()
	repositoryQueryDuration.WithLabelValues(operation, m.network, status).Observe(time.Since(started).Seconds())
}
