// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	chainRPCRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "minerscan",
		Subsystem: "chain_client",
		Name:      "operations_total",
		Help:      "Count of substrate node RPC operations.",
	}, []string{"operation", "network", "status"})
	chainRPCRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "minerscan",
		Subsystem: "chain_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of substrate node RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
	chainReconnectsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "minerscan",
		Subsystem: "chain_client",
		Name:      "reconnects_total",
		Help:      "Count of node reconnect attempts.",
	}, []string{"network", "status"})
)

// ChainClient tracks metrics for RPC calls to the substrate node.
type ChainClient struct {
	network string
}

// NewChainClient constructs a metrics collector for node RPC calls.
func NewChainClient(network string) *ChainClient {
	if network == "" {
		network = "unknown"
	}
	return &ChainClient{network: network}
}

// Observe records a single RPC call outcome and duration.
func (m ChainClient) Observe(operation string, err error, started time.Time) {
	status := statusLabel(err)
	chainRPCRequestsTotal.WithLabelValues(operation, m.network, status).Inc()
	chainRPCRequestDuration.WithLabelValues(operation, m.network, status).Observe(time.Since(started).Seconds())
}

// ObserveReconnect records a reconnect attempt outcome.
func (m ChainClient) ObserveReconnect(err error) {
	chainReconnectsTotal.WithLabelValues(m.network, statusLabel(err)).Inc()
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
