package ingest

import (
	"context"
	"encoding/hex"

	"go.uber.org/zap"

	"github.com/p3dcommunity/minerscan-backend/internal/chain"
	"github.com/p3dcommunity/minerscan-backend/internal/model"
	"github.com/p3dcommunity/minerscan-backend/pkg/retry"
)

// BlockFetcher assembles one BlockRecord per height. Author and timestamp
// are mandatory; difficulty, reward and the decoded public key are
// best-effort enrichment and never fail the fetch.
type BlockFetcher struct {
	chain      ChainClient
	retry      retry.Policy
	ss58Prefix uint16
	logger     *zap.Logger
}

// NewBlockFetcher constructs a fetcher with the config's retry policy.
func NewBlockFetcher(client ChainClient, cfg Config, logger *zap.Logger) *BlockFetcher {
	cfg = cfg.withDefaults()
	return &BlockFetcher{
		chain: client,
		retry: retry.Policy{
			MaxAttempts: cfg.MaxFetchAttempts,
			Backoff:     retry.Linear(cfg.RetryBaseDelay),
		},
		ss58Prefix: cfg.SS58Prefix,
		logger:     logger,
	}
}

// Fetch assembles the block record for a single height.
func (f *BlockFetcher) Fetch(ctx context.Context, height uint64) (model.BlockRecord, error) {
	ref, err := f.chain.BlockByHeight(ctx, height)
	if err != nil {
		return model.BlockRecord{}, &FetchError{Height: height, Err: err}
	}

	author, err := f.chain.Author(ctx, ref.Number)
	if err != nil {
		return model.BlockRecord{}, &FetchError{Height: height, Err: err}
	}

	ts, err := f.chain.Timestamp(ctx, ref.Hash)
	if err != nil {
		return model.BlockRecord{}, &FetchError{Height: height, Err: err}
	}

	record := model.BlockRecord{
		Height:    height,
		Timestamp: ts,
		Author:    author,
		BlockHash: ref.Hash,
	}

	if acct, err := chain.DecodeSS58(author, f.ss58Prefix); err == nil {
		record.AuthorPublicKey = "0x" + hex.EncodeToString(acct[:])
	} else {
		f.logger.Debug("author public key unavailable",
			zap.Uint64("height", height), zap.Error(err))
	}

	if difficulty, err := f.chain.Difficulty(ctx, ref.Hash); err == nil {
		record.Difficulty = difficulty
	} else {
		f.logger.Debug("difficulty unavailable",
			zap.Uint64("height", height), zap.Error(err))
	}

	if reward, err := f.chain.RewardAmount(ctx, ref.Hash); err == nil {
		record.RewardAmount = reward
	} else {
		f.logger.Debug("reward unavailable",
			zap.Uint64("height", height), zap.Error(err))
	}

	return record, nil
}

// FetchWithRetry fetches a height, retrying transient failures with linear
// backoff. The last attempt's error is returned unchanged.
func (f *BlockFetcher) FetchWithRetry(ctx context.Context, height uint64) (model.BlockRecord, error) {
	var record model.BlockRecord
	err := f.retry.Do(ctx, func(ctx context.Context) error {
		var fetchErr error
		record, fetchErr = f.Fetch(ctx, height)
		return fetchErr
	})
	if err != nil {
		return model.BlockRecord{}, err
	}
	return record, nil
}
