package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reconcilerChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "minerscan",
		Subsystem: "reconciler",
		Name:      "checks_total",
		Help:      "Count of integrity checks.",
	}, []string{"network", "status"})

	reconcilerCheckDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "minerscan",
		Subsystem: "reconciler",
		Name:      "check_duration_seconds",
		Help:      "Duration of integrity checks.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	reconcilerMissingBlocks = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "minerscan",
		Subsystem: "reconciler",
		Name:      "missing_blocks",
		Help:      "Number of missing heights found by the last check.",
	}, []string{"network"})

	reconcilerRepairedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "minerscan",
		Subsystem: "reconciler",
		Name:      "repaired_blocks_total",
		Help:      "Count of missing heights repaired.",
	}, []string{"network", "status"})
)

// Reconciler tracks metrics for integrity checks and gap repair.
type Reconciler struct {
	network string
}

// NewReconciler constructs a metrics collector for the reconciler.
func NewReconciler(network string) *Reconciler {
	if network == "" {
		network = "unknown"
	}
	return &Reconciler{network: network}
}

// ObserveCheck records one integrity check pass and the gaps it found.
func (m Reconciler) ObserveCheck(err error, missing int, started time.Time) {
	status := statusLabel(err)
	reconcilerChecksTotal.WithLabelValues(m.network, status).Inc()
	reconcilerCheckDuration.WithLabelValues(m.network, status).
		Observe(time.Since(started).Seconds())
	if err == nil {
		reconcilerMissingBlocks.WithLabelValues(m.network).Set(float64(missing))
	}
}

// ObserveRepair records one repaired (or failed) missing height.
func (m Reconciler) ObserveRepair(err error) {
	reconcilerRepairedTotal.WithLabelValues(m.network, statusLabel(err)).Inc()
}
