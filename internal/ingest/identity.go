package ingest

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/p3dcommunity/minerscan-backend/internal/model"
)

// IdentityTracker maintains the per-author identity cache and appends a
// history row whenever an author's on-chain identity differs from the last
// recorded state. First observation of an author is always recorded, even
// when the identity is empty; so is clearing a previously set identity.
type IdentityTracker struct {
	chain  ChainClient
	store  Store
	logger *zap.Logger

	mu       sync.Mutex
	cache    map[string]model.IdentityInfo
	recorded map[string]struct{}
}

// NewIdentityTracker constructs an empty tracker. Call Hydrate before
// processing to avoid duplicate first-observation rows after a restart.
func NewIdentityTracker(client ChainClient, store Store, logger *zap.Logger) *IdentityTracker {
	return &IdentityTracker{
		chain:    client,
		store:    store,
		logger:   logger,
		cache:    make(map[string]model.IdentityInfo),
		recorded: make(map[string]struct{}),
	}
}

// Hydrate rebuilds the cache and the recorded-author set from the store.
func (t *IdentityTracker) Hydrate(ctx context.Context) error {
	latest, err := t.store.IdentityLatestPerAuthor(ctx)
	if err != nil {
		return err
	}
	authors, err := t.store.RecordedAuthors(ctx)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.cache = make(map[string]model.IdentityInfo, len(latest))
	for author, info := range latest {
		t.cache[author] = info
	}
	t.recorded = make(map[string]struct{}, len(authors))
	for _, author := range authors {
		t.recorded[author] = struct{}{}
	}

	t.logger.Info("identity cache hydrated", zap.Int("authors", len(authors)))
	return nil
}

// Process compares the author's current on-chain identity against the cache
// and appends a history row when it changed. Identity tracking is
// best-effort: lookup failures are logged and swallowed so block ingestion
// never stalls on the identity pallet.
func (t *IdentityTracker) Process(ctx context.Context, block model.BlockRecord) {
	current, err := t.chain.Identity(ctx, block.BlockHash, block.Author)
	if err != nil {
		t.logger.Debug("identity lookup failed",
			zap.String("author", block.Author),
			zap.Uint64("height", block.Height),
			zap.Error(err))
		return
	}

	var info model.IdentityInfo
	if current != nil {
		info = *current
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	_, seen := t.recorded[block.Author]
	if seen && t.cache[block.Author].Equal(info) {
		return
	}

	change := model.IdentityChange{
		BlockHeight:     block.Height,
		Author:          block.Author,
		AuthorPublicKey: block.AuthorPublicKey,
		Discord:         info.Discord,
		Display:         info.Display,
	}
	if err := t.store.AppendIdentityChange(ctx, change); err != nil {
		t.logger.Warn("append identity change failed",
			zap.String("author", block.Author),
			zap.Uint64("height", block.Height),
			zap.Error(err))
		return
	}

	t.cache[block.Author] = info
	t.recorded[block.Author] = struct{}{}

	t.logger.Info("identity change recorded",
		zap.String("author", block.Author),
		zap.Uint64("height", block.Height),
		zap.Bool("first_observation", !seen))
}
