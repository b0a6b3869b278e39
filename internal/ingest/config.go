package ingest

import "time"

// Config tunes the ingestion pipeline. The zero value is usable: every
// field falls back to the defaults below.
type Config struct {
	// StartHeight is the first height the pipeline is responsible for.
	StartHeight uint64
	// BatchSize is the number of heights per backfill batch.
	BatchSize int
	// FetchConcurrency is the number of parallel block fetches per batch.
	FetchConcurrency int
	// MaxFetchAttempts bounds retries of a single height fetch.
	MaxFetchAttempts int
	// RetryBaseDelay scales linear backoff between fetch attempts.
	RetryBaseDelay time.Duration
	// BatchMaxRetries bounds retries of a whole batch before it is
	// deferred to reconciliation.
	BatchMaxRetries int
	// RepairDelay is the pause between sequential gap-repair heights.
	RepairDelay time.Duration
	// RepairRangePause is the pause between gap-repair ranges.
	RepairRangePause time.Duration
	// ReconcileRounds bounds check-and-repair passes per reconcile run.
	ReconcileRounds int
	// HealthCheckInterval is the live tailer's connection probe period.
	HealthCheckInterval time.Duration
	// MemorySoftLimitMB shrinks backfill batches while heap usage stays
	// above it; 0 disables the backpressure.
	MemorySoftLimitMB int
	// SS58Prefix is the address format of the target chain.
	SS58Prefix uint16
}

const (
	defaultBatchSize           = 50
	defaultFetchConcurrency    = 10
	defaultMaxFetchAttempts    = 3
	defaultRetryBaseDelay      = 2 * time.Second
	defaultBatchMaxRetries     = 3
	defaultRepairDelay         = 500 * time.Millisecond
	defaultRepairRangePause    = time.Second
	defaultReconcileRounds     = 3
	defaultHealthCheckInterval = time.Minute
	defaultSS58Prefix          = 71
	minBatchSize               = 10
)

func (c Config) withDefaults() Config {
	if c.StartHeight < 1 {
		c.StartHeight = 1
	}
	if c.BatchSize <= 0 {
		c.BatchSize = defaultBatchSize
	}
	if c.FetchConcurrency <= 0 {
		c.FetchConcurrency = defaultFetchConcurrency
	}
	if c.MaxFetchAttempts <= 0 {
		c.MaxFetchAttempts = defaultMaxFetchAttempts
	}
	if c.RetryBaseDelay <= 0 {
		c.RetryBaseDelay = defaultRetryBaseDelay
	}
	if c.BatchMaxRetries <= 0 {
		c.BatchMaxRetries = defaultBatchMaxRetries
	}
	if c.RepairDelay <= 0 {
		c.RepairDelay = defaultRepairDelay
	}
	if c.RepairRangePause <= 0 {
		c.RepairRangePause = defaultRepairRangePause
	}
	if c.ReconcileRounds <= 0 {
		c.ReconcileRounds = defaultReconcileRounds
	}
	if c.HealthCheckInterval <= 0 {
		c.HealthCheckInterval = defaultHealthCheckInterval
	}
	if c.SS58Prefix == 0 {
		c.SS58Prefix = defaultSS58Prefix
	}
	return c
}
