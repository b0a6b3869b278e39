package ingest

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/p3dcommunity/minerscan-backend/internal/clock"
)

// LiveTailer follows finalized heads. Every head is processed through the
// same gap-aware path: all heights between the last processed height and
// the head are ingested in order, so skipped notifications and reconnect
// windows never leave holes behind.
type LiveTailer struct {
	chain    ChainClient
	store    Store
	fetcher  *BlockFetcher
	identity *IdentityTracker
	cfg      Config
	metrics  TailerMetrics
	sleep    clock.SleepFunc
	logger   *zap.Logger

	lastProcessed uint64
}

// NewLiveTailer constructs a live tailer.
func NewLiveTailer(
	client ChainClient,
	store Store,
	fetcher *BlockFetcher,
	identity *IdentityTracker,
	cfg Config,
	metrics TailerMetrics,
	logger *zap.Logger,
) *LiveTailer {
	return &LiveTailer{
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

// Run follows finalized heads until the context is canceled. It returns
// only the context's error; transport failures are handled in place with
// reconnect and resubscribe.
func (t *LiveTailer) Run(ctx context.Context) error {
	last, err := t.store.MaxBlockHeight(ctx)
	if err != nil {
		return err
	}
	t.lastProcessed = last

	sub, err := t.subscribe(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if sub != nil {
			sub.Unsubscribe()
		}
	}()

	ticker := time.NewTicker(t.cfg.HealthCheckInterval)
	defer ticker.Stop()

	t.logger.Info("live tail started", zap.Uint64("last_height", t.lastProcessed))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case head, ok := <-sub.Heights():
			if !ok {
				t.logger.Warn("head stream closed, resubscribing")
				if sub, err = t.recover(ctx, sub); err != nil {
					return err
				}
				continue
			}
			t.processHead(ctx, head)

		case streamErr := <-sub.Err():
			t.logger.Warn("head stream error", zap.Error(streamErr))
			if sub, err = t.recover(ctx, sub); err != nil {
				return err
			}

		case <-ticker.C:
			if t.chain.CheckConnection(ctx) {
				continue
			}
			t.logger.Warn("connection probe failed, recovering")
			if sub, err = t.recover(ctx, sub); err != nil {
				return err
			}
		}
	}
}

// processHead ingests every height in (lastProcessed, head]. Already stored
// heights are skipped by the idempotent insert, so replays across restarts
// and resubscribes are harmless.
func (t *LiveTailer) processHead(ctx context.Context, head uint64) {
	started := time.Now()
	var err error
	defer func() {
		t.metrics.ObserveHead(err, started)
	}()

	if head <= t.lastProcessed {
		return
	}

	// A fresh database has no heights at all; tailing is not backfill, so
	// anchor just below the head and let reconciliation own the history.
	if t.lastProcessed == 0 {
		t.lastProcessed = head - 1
	}

	gap := int(head - t.lastProcessed - 1)

	for height := t.lastProcessed + 1; height <= head; height++ {
		inserted, ingestErr := t.ingestHeight(ctx, height)
		if ingestErr != nil {
			if ctx.Err() != nil {
				err = ctx.Err()
				return
			}
			// Skip the height so one bad block never stalls the tail; the
			// hole is picked up by the integrity check.
			err = ingestErr
			t.logger.Warn("live ingest failed, leaving gap for reconciliation",
				zap.Uint64("height", height),
				zap.Error(ingestErr))
			t.lastProcessed = height
			continue
		}
		t.lastProcessed = height
		t.metrics.SetLastHeight(height)

		if inserted {
			t.logger.Info("block ingested", zap.Uint64("height", height))
		}
	}

	t.metrics.ObserveGapBlocks(gap)
	if gap > 0 {
		t.logger.Info("filled gap behind head",
			zap.Uint64("head", head),
			zap.Int("blocks", gap))
	}
}

func (t *LiveTailer) ingestHeight(ctx context.Context, height uint64) (bool, error) {
	record, err := t.fetcher.FetchWithRetry(ctx, height)
	if err != nil {
		return false, err
	}

	inserted, err := t.store.InsertBlock(ctx, record)
	if err != nil {
		return false, err
	}

	t.identity.Process(ctx, record)
	return inserted, nil
}

func (t *LiveTailer) subscribe(ctx context.Context) (HeadSubscription, error) {
	sub, err := t.chain.SubscribeFinalizedHeights(ctx)
	t.metrics.ObserveResubscribe(err)
	return sub, err
}

// recover tears the subscription down, restores the connection if needed,
// and resubscribes, retrying until it works or the context ends. The next
// processed head backfills whatever finalized while we were away.
func (t *LiveTailer) recover(ctx context.Context, old HeadSubscription) (HeadSubscription, error) {
	if old != nil {
		old.Unsubscribe()
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if !t.chain.CheckConnection(ctx) {
			if err := t.chain.Reconnect(ctx); err != nil {
				t.logger.Warn("reconnect failed", zap.Error(err))
				if err := t.sleep(ctx, t.cfg.RetryBaseDelay); err != nil {
					return nil, err
				}
				continue
			}
		}

		sub, err := t.subscribe(ctx)
		if err == nil {
			t.logger.Info("head subscription re-established")
			return sub, nil
		}

		t.logger.Warn("resubscribe failed", zap.Error(err))
		if err := t.sleep(ctx, t.cfg.RetryBaseDelay); err != nil {
			return nil, err
		}
	}
}
