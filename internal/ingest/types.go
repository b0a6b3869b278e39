// Package ingest contains the ingestion pipeline: batch backfill, gap
// reconciliation, and the finalized-head live tail, plus the identity
// change tracker they share.
package ingest

import (
	"context"
	"time"

	"github.com/p3dcommunity/minerscan-backend/internal/chain"
	"github.com/p3dcommunity/minerscan-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// ChainClient is the node surface the pipeline reads from.
	ChainClient interface {
		TipHeight(ctx context.Context) (uint64, error)
		BlockByHeight(ctx context.Context, height uint64) (chain.BlockRef, error)
		Author(ctx context.Context, headerNumber uint64) (string, error)
		Difficulty(ctx context.Context, blockHash string) (*uint64, error)
		Timestamp(ctx context.Context, blockHash string) (int64, error)
		RewardAmount(ctx context.Context, blockHash string) (uint64, error)
		Identity(ctx context.Context, blockHash, address string) (*model.IdentityInfo, error)
		SubscribeFinalizedHeights(ctx context.Context) (HeadSubscription, error)
		CheckConnection(ctx context.Context) bool
		Reconnect(ctx context.Context) error
	}

	// HeadSubscription is a cancellable stream of finalized heights.
	HeadSubscription interface {
		Heights() <-chan uint64
		Err() <-chan error
		Unsubscribe()
	}

	// Store is the persistence surface the pipeline writes to.
	Store interface {
		InsertBlock(ctx context.Context, block model.BlockRecord) (bool, error)
		InsertBlocks(ctx context.Context, blocks []model.BlockRecord) (model.BatchResult, error)
		MaxBlockHeight(ctx context.Context) (uint64, error)
		MissingBlockHeights(ctx context.Context, lo, hi uint64) ([]uint64, error)
		AppendIdentityChange(ctx context.Context, change model.IdentityChange) error
		IdentityLatestPerAuthor(ctx context.Context) (map[string]model.IdentityInfo, error)
		RecordedAuthors(ctx context.Context) ([]string, error)
	}

	// BackfillMetrics tracks batch ingestion outcomes.
	BackfillMetrics interface {
		ObserveProcessBatch(err error, heights int, started time.Time)
		ObserveFetchHeight(err error, started time.Time)
		ObserveDeferredRange()
	}

	// TailerMetrics tracks live-tail outcomes.
	TailerMetrics interface {
		ObserveHead(err error, started time.Time)
		ObserveGapBlocks(count int)
		ObserveResubscribe(err error)
		SetLastHeight(height uint64)
	}

	// ReconcilerMetrics tracks integrity check and repair outcomes.
	ReconcilerMetrics interface {
		ObserveCheck(err error, missing int, started time.Time)
		ObserveRepair(err error)
	}
)
