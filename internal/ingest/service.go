package ingest

import (
	"context"

	"go.uber.org/zap"
)

// Observers bundles the pipeline's metrics collectors.
type Observers struct {
	Backfill   BackfillMetrics
	Tailer     TailerMetrics
	Reconciler ReconcilerMetrics
}

// Service runs the full ingestion lifecycle: hydrate the identity cache,
// backfill to the finalized tip, reconcile any gaps, then hand over to the
// live tailer. Heads that finalize during backfill are covered by the
// tailer's own gap fill.
type Service struct {
	chain      ChainClient
	store      Store
	backfill   *BatchIngester
	reconciler *IntegrityReconciler
	tailer     *LiveTailer
	identity   *IdentityTracker
	cfg        Config
	logger     *zap.Logger
}

// NewService wires the pipeline components together.
func NewService(client ChainClient, store Store, cfg Config, obs Observers, logger *zap.Logger) *Service {
	cfg = cfg.withDefaults()

	fetcher := NewBlockFetcher(client, cfg, logger.Named("fetcher"))
	identity := NewIdentityTracker(client, store, logger.Named("identity"))

	return &Service{
		chain:      client,
		store:      store,
		identity:   identity,
		backfill:   NewBatchIngester(client, store, fetcher, identity, cfg, obs.Backfill, logger.Named("backfill")),
		reconciler: NewIntegrityReconciler(store, fetcher, identity, cfg, obs.Reconciler, logger.Named("reconciler")),
		tailer:     NewLiveTailer(client, store, fetcher, identity, cfg, obs.Tailer, logger.Named("tailer")),
		cfg:        cfg,
		logger:     logger,
	}
}

// Run executes one full pipeline pass and then tails until the context is
// canceled.
func (s *Service) Run(ctx context.Context) error {
	if err := s.identity.Hydrate(ctx); err != nil {
		return err
	}

	tip, err := s.chain.TipHeight(ctx)
	if err != nil {
		return err
	}

	stored, err := s.store.MaxBlockHeight(ctx)
	if err != nil {
		return err
	}

	from := s.cfg.StartHeight
	if stored+1 > from {
		from = stored + 1
	}

	if from <= tip {
		if err := s.backfill.IngestRange(ctx, from, tip); err != nil {
			return err
		}
	} else {
		s.logger.Info("store already at tip, skipping backfill",
			zap.Uint64("stored", stored),
			zap.Uint64("tip", tip))
	}

	if deferred := s.backfill.TakeDeferredRanges(); len(deferred) > 0 {
		s.logger.Info("repairing deferred batches", zap.Int("ranges", len(deferred)))
		if _, err := s.reconciler.Repair(ctx, deferred); err != nil && ctx.Err() != nil {
			return err
		}
	}

	// The tip may have advanced during backfill; reconcile against the
	// current one so handover leaves no hole.
	tip, err = s.chain.TipHeight(ctx)
	if err != nil {
		return err
	}
	if err := s.reconciler.Reconcile(ctx, s.cfg.StartHeight, tip); err != nil {
		if ctx.Err() != nil {
			return err
		}
		s.logger.Warn("reconcile left gaps, continuing to live tail", zap.Error(err))
	}

	return s.tailer.Run(ctx)
}

// CheckIntegrity runs a one-shot check-and-repair over [lo, hi].
func (s *Service) CheckIntegrity(ctx context.Context, lo, hi uint64) error {
	if err := s.identity.Hydrate(ctx); err != nil {
		return err
	}
	return s.reconciler.Reconcile(ctx, lo, hi)
}

// FillRange runs a one-shot backfill over [lo, hi].
func (s *Service) FillRange(ctx context.Context, lo, hi uint64) error {
	if err := s.identity.Hydrate(ctx); err != nil {
		return err
	}
	if err := s.backfill.IngestRange(ctx, lo, hi); err != nil {
		return err
	}
	if deferred := s.backfill.TakeDeferredRanges(); len(deferred) > 0 {
		if _, err := s.reconciler.Repair(ctx, deferred); err != nil {
			return err
		}
	}
	return s.reconciler.Reconcile(ctx, lo, hi)
}
