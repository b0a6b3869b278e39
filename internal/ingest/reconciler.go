package ingest

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/p3dcommunity/minerscan-backend/internal/clock"
	"github.com/p3dcommunity/minerscan-backend/pkg/heights"
)

// IntegrityReconciler finds holes in the stored height sequence and repairs
// them. Repair is deliberately sequential and paced: it runs alongside the
// live tailer and must not compete with it for the node.
type IntegrityReconciler struct {
	store    Store
	fetcher  *BlockFetcher
	identity *IdentityTracker
	cfg      Config
	metrics  ReconcilerMetrics
	sleep    clock.SleepFunc
	logger   *zap.Logger
}

// NewIntegrityReconciler constructs a reconciler.
func NewIntegrityReconciler(
	store Store,
	fetcher *BlockFetcher,
	identity *IdentityTracker,
	cfg Config,
	metrics ReconcilerMetrics,
	logger *zap.Logger,
) *IntegrityReconciler {
	return &IntegrityReconciler{
		store:    store,
		fetcher:  fetcher,
		identity: identity,
		cfg:      cfg.withDefaults(),
		metrics:  metrics,
		sleep:    clock.SleepWithContext,
		logger:   logger,
	}
}

// Check returns the missing heights of [lo, hi] collapsed into contiguous
// ranges.
func (r *IntegrityReconciler) Check(ctx context.Context, lo, hi uint64) (gaps []heights.Range, err error) {
	started := time.Now()
	defer func() {
		r.metrics.ObserveCheck(err, int(heights.Count(gaps)), started)
	}()

	missing, err := r.store.MissingBlockHeights(ctx, lo, hi)
	if err != nil {
		return nil, err
	}

	gaps = heights.ToRanges(missing)
	if len(gaps) == 0 {
		r.logger.Info("integrity check passed",
			zap.Uint64("from", lo),
			zap.Uint64("to", hi))
		return nil, nil
	}

	fields := make([]string, 0, len(gaps))
	for _, gap := range gaps {
		fields = append(fields, gap.String())
	}
	r.logger.Warn("integrity check found gaps",
		zap.Uint64("from", lo),
		zap.Uint64("to", hi),
		zap.Uint64("missing", heights.Count(gaps)),
		zap.Strings("gaps", fields))
	return gaps, nil
}

// Repair fetches and stores every height of the given ranges one by one.
// Per-height failures are logged and skipped; the first one is returned
// after the pass so callers know the repair was partial.
func (r *IntegrityReconciler) Repair(ctx context.Context, gaps []heights.Range) (repaired int, err error) {
	var firstErr error

	for i, gap := range gaps {
		if i > 0 {
			if err := r.sleep(ctx, r.cfg.RepairRangePause); err != nil {
				return repaired, err
			}
		}

		r.logger.Info("repairing gap", zap.String("range", gap.String()))

		for height := gap.Start; height <= gap.End; height++ {
			if height > gap.Start {
				if err := r.sleep(ctx, r.cfg.RepairDelay); err != nil {
					return repaired, err
				}
			}

			if err := r.repairHeight(ctx, height); err != nil {
				if ctx.Err() != nil {
					return repaired, ctx.Err()
				}
				if firstErr == nil {
					firstErr = err
				}
				r.logger.Warn("gap repair failed for height",
					zap.Uint64("height", height),
					zap.Error(err))
				continue
			}
			repaired++
		}
	}

	return repaired, firstErr
}

func (r *IntegrityReconciler) repairHeight(ctx context.Context, height uint64) (err error) {
	defer func() {
		r.metrics.ObserveRepair(err)
	}()

	record, err := r.fetcher.FetchWithRetry(ctx, height)
	if err != nil {
		return err
	}

	if _, err = r.store.InsertBlock(ctx, record); err != nil {
		return err
	}

	r.identity.Process(ctx, record)
	return nil
}

// Reconcile runs check-and-repair passes until [lo, hi] is gapless or the
// round budget is spent. Leftover gaps are reported as an error; a later
// run (or the check-integrity command) picks them up.
func (r *IntegrityReconciler) Reconcile(ctx context.Context, lo, hi uint64) error {
	for round := 1; round <= r.cfg.ReconcileRounds; round++ {
		gaps, err := r.Check(ctx, lo, hi)
		if err != nil {
			return err
		}
		if len(gaps) == 0 {
			return nil
		}

		r.logger.Info("reconcile round",
			zap.Int("round", round),
			zap.Int("max_rounds", r.cfg.ReconcileRounds),
			zap.Uint64("missing", heights.Count(gaps)))

		repaired, err := r.Repair(ctx, gaps)
		if err != nil && ctx.Err() != nil {
			return err
		}
		r.logger.Info("reconcile round done",
			zap.Int("round", round),
			zap.Int("repaired", repaired))
	}

	gaps, err := r.Check(ctx, lo, hi)
	if err != nil {
		return err
	}
	if len(gaps) == 0 {
		return nil
	}

	r.logger.Error("gaps remain after reconcile budget, re-run integrity check manually",
		zap.Uint64("missing", heights.Count(gaps)))
	return fmt.Errorf("%d heights still missing after %d reconcile rounds", heights.Count(gaps), r.cfg.ReconcileRounds)
}
