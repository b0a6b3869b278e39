package ingest

import (
	"context"
	"runtime"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/p3dcommunity/minerscan-backend/internal/chain"
	"github.com/p3dcommunity/minerscan-backend/internal/clock"
	"github.com/p3dcommunity/minerscan-backend/internal/model"
	"github.com/p3dcommunity/minerscan-backend/pkg/heights"
	"github.com/p3dcommunity/minerscan-backend/pkg/workerpool"
)

// BatchIngester backfills a height range in batches: heights in a batch are
// fetched concurrently, sorted, and written in one transaction. A height
// that fails on its own is deferred immediately; only batch-level failures
// (transport, store) retry the whole batch. Nothing is lost either way:
// reconciliation picks the deferred gaps up later.
type BatchIngester struct {
	chain    ChainClient
	store    Store
	fetcher  *BlockFetcher
	identity *IdentityTracker
	cfg      Config
	metrics  BackfillMetrics
	sleep    clock.SleepFunc
	logger   *zap.Logger

	mu       sync.Mutex
	deferred []heights.Range
}

// NewBatchIngester constructs a backfill ingester.
func NewBatchIngester(
	client ChainClient,
	store Store,
	fetcher *BlockFetcher,
	identity *IdentityTracker,
	cfg Config,
	metrics BackfillMetrics,
	logger *zap.Logger,
) *BatchIngester {
	return &BatchIngester{
		chain:    client,
		store:    store,
		fetcher:  fetcher,
		identity: identity,
		cfg:      cfg.withDefaults(),
		metrics:  metrics,
		sleep:    clock.SleepWithContext,
		logger:   logger,
	}
}

// IngestRange backfills [lo, hi] inclusive. Failed batches are retried with
// reconnect handling; batches that exhaust their retries are deferred and
// the range continues. Returns an error only on context cancellation.
func (s *BatchIngester) IngestRange(ctx context.Context, lo, hi uint64) error {
	if lo > hi {
		return nil
	}

	batchSize := uint64(s.cfg.BatchSize)
	s.logger.Info("starting backfill",
		zap.Uint64("from", lo),
		zap.Uint64("to", hi),
		zap.Uint64("batch_size", batchSize))

	for start := lo; start <= hi; {
		end := start + batchSize - 1
		if end > hi {
			end = hi
		}

		if err := s.ingestBatchWithRetries(ctx, start, end); err != nil {
			return err
		}

		next := end + 1
		var err error
		batchSize, err = s.applyMemoryBackpressure(ctx, batchSize)
		if err != nil {
			return err
		}
		start = next
	}

	s.logger.Info("backfill complete",
		zap.Uint64("from", lo),
		zap.Uint64("to", hi),
		zap.Int("deferred_ranges", len(s.DeferredRanges())))
	return nil
}

// ingestBatchWithRetries retries one batch, checking and repairing the node
// connection between attempts on transport failures. Exhausted batches are
// deferred.
func (s *BatchIngester) ingestBatchWithRetries(ctx context.Context, lo, hi uint64) error {
	var lastErr error
	for attempt := 1; attempt <= s.cfg.BatchMaxRetries; attempt++ {
		lastErr = s.processBatch(ctx, lo, hi)
		if lastErr == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		s.logger.Warn("batch failed",
			zap.Uint64("from", lo),
			zap.Uint64("to", hi),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", s.cfg.BatchMaxRetries),
			zap.Error(lastErr))

		if chain.IsConnectionError(lastErr) && !s.chain.CheckConnection(ctx) {
			if err := s.chain.Reconnect(ctx); err != nil {
				s.logger.Warn("reconnect failed", zap.Error(err))
			}
		}

		if attempt < s.cfg.BatchMaxRetries {
			if err := s.sleep(ctx, time.Duration(attempt)*s.cfg.RetryBaseDelay); err != nil {
				return err
			}
		}
	}

	s.deferRange(heights.Range{Start: lo, End: hi})
	s.logger.Error("batch deferred after exhausting retries",
		zap.Uint64("from", lo),
		zap.Uint64("to", hi),
		zap.Error(lastErr))
	return nil
}

// processBatch fetches all heights of one batch concurrently and writes the
// successes in a single transaction. A height failing on its own is tracked
// and deferred, not retried inline; transport errors fail the whole attempt
// so the retry loop can repair the connection first.
func (s *BatchIngester) processBatch(ctx context.Context, lo, hi uint64) (err error) {
	started := time.Now()
	count := int(hi - lo + 1)
	defer func() {
		s.metrics.ObserveProcessBatch(err, count, started)
	}()

	batch := make([]uint64, 0, count)
	for h := lo; h <= hi; h++ {
		batch = append(batch, h)
	}

	var mu sync.Mutex
	records := make([]model.BlockRecord, 0, count)
	var failed []uint64

	err = workerpool.Process(ctx, s.cfg.FetchConcurrency, batch, func(ctx context.Context, height uint64) error {
		fetchStarted := time.Now()
		record, fetchErr := s.fetcher.Fetch(ctx, height)
		s.metrics.ObserveFetchHeight(fetchErr, fetchStarted)
		if fetchErr != nil {
			if chain.IsConnectionError(fetchErr) {
				return fetchErr
			}
			s.logger.Warn("height fetch failed, deferring for reconciliation",
				zap.Uint64("height", height),
				zap.Error(fetchErr))
			mu.Lock()
			failed = append(failed, height)
			mu.Unlock()
			return nil
		}

		mu.Lock()
		records = append(records, record)
		mu.Unlock()
		return nil
	})
	if err != nil {
		return err
	}

	// Transactional writes want deterministic order; workers finish in
	// arbitrary order.
	sort.Slice(records, func(i, j int) bool {
		return records[i].Height < records[j].Height
	})

	var result model.BatchResult
	if len(records) > 0 {
		result, err = s.store.InsertBlocks(ctx, records)
		if err != nil {
			return err
		}

		for _, record := range records {
			s.identity.Process(ctx, record)
		}
	}

	sort.Slice(failed, func(i, j int) bool { return failed[i] < failed[j] })
	for _, r := range heights.ToRanges(failed) {
		s.deferRange(r)
	}

	s.logger.Info("batch ingested",
		zap.Uint64("from", lo),
		zap.Uint64("to", hi),
		zap.Int("inserted", result.Inserted),
		zap.Int("skipped", result.Skipped),
		zap.Int("deferred", len(failed)),
		zap.Duration("elapsed", time.Since(started)))
	return nil
}

// applyMemoryBackpressure halves the batch size while heap usage stays
// above the configured soft limit, and restores it when pressure clears.
func (s *BatchIngester) applyMemoryBackpressure(ctx context.Context, batchSize uint64) (uint64, error) {
	if s.cfg.MemorySoftLimitMB <= 0 {
		return batchSize, nil
	}

	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	heapMB := int(stats.HeapAlloc / (1 << 20))

	if heapMB <= s.cfg.MemorySoftLimitMB {
		return uint64(s.cfg.BatchSize), nil
	}

	shrunk := batchSize / 2
	if shrunk < minBatchSize {
		shrunk = minBatchSize
	}
	s.logger.Warn("heap above soft limit, shrinking batches",
		zap.Int("heap_mb", heapMB),
		zap.Int("limit_mb", s.cfg.MemorySoftLimitMB),
		zap.Uint64("batch_size", shrunk))

	runtime.GC()
	if err := s.sleep(ctx, s.cfg.RepairRangePause); err != nil {
		return 0, err
	}
	return shrunk, nil
}

func (s *BatchIngester) deferRange(r heights.Range) {
	s.mu.Lock()
	s.deferred = append(s.deferred, r)
	s.mu.Unlock()
	s.metrics.ObserveDeferredRange()
}

// DeferredRanges returns the batches given up on so far.
func (s *BatchIngester) DeferredRanges() []heights.Range {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]heights.Range(nil), s.deferred...)
}

// TakeDeferredRanges returns and clears the deferred batches.
func (s *BatchIngester) TakeDeferredRanges() []heights.Range {
	s.mu.Lock()
	defer s.mu.Unlock()
	taken := s.deferred
	s.deferred = nil
	return taken
}
