// kycsync is a one-shot repair tool: it walks every author that has mined a
// stored block and records the identity state at the current finalized head
// for any author whose history is missing or stale.
package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/p3dcommunity/minerscan-backend/internal/chain"
	"github.com/p3dcommunity/minerscan-backend/internal/clock"
	"github.com/p3dcommunity/minerscan-backend/internal/ingest"
	"github.com/p3dcommunity/minerscan-backend/internal/metrics"
	"github.com/p3dcommunity/minerscan-backend/internal/model"
	"github.com/p3dcommunity/minerscan-backend/internal/repository/sqlite"
)

type config struct {
	NodeURL    string        `long:"node-url" env:"KYCSYNC_NODE_URL" description:"substrate node websocket URL" default:"ws://127.0.0.1:9944"`
	SQLitePath string        `long:"sqlite-path" env:"KYCSYNC_SQLITE_PATH" description:"sqlite database file" default:"minerscan.db"`
	Network    string        `long:"network" env:"KYCSYNC_NETWORK" description:"network label for metrics" default:"mainnet"`
	SS58Prefix uint16        `long:"ss58-prefix" env:"KYCSYNC_SS58_PREFIX" description:"SS58 address format" default:"71"`
	Pause      time.Duration `long:"pause" env:"KYCSYNC_PAUSE" description:"pause between author lookups" default:"100ms"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("kycsync failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	repo, err := sqlite.NewRepository(cfg.SQLitePath, metrics.NewRepository(cfg.Network))
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		_ = repo.Close()
	}()

	client, err := chain.NewClient(chain.Opts{
		URL:        cfg.NodeURL,
		SS58Prefix: cfg.SS58Prefix,
		Metrics:    metrics.NewChainClient(cfg.Network),
		Logger:     logger.Named("chain"),
	})
	if err != nil {
		return fmt.Errorf("dial node: %w", err)
	}
	defer client.Close()

	adapted := ingest.AdaptChain(client)
	tracker := ingest.NewIdentityTracker(adapted, repo, logger.Named("identity"))
	if err := tracker.Hydrate(ctx); err != nil {
		return err
	}

	tip, err := client.TipHeight(ctx)
	if err != nil {
		return err
	}
	head, err := client.BlockByHeight(ctx, tip)
	if err != nil {
		return err
	}

	authors, err := repo.DistinctAuthors(ctx)
	if err != nil {
		return err
	}
	logger.Info("syncing identity history",
		zap.Int("authors", len(authors)),
		zap.Uint64("at_height", tip))

	for i, author := range authors {
		if i > 0 {
			if err := clock.SleepWithContext(ctx, cfg.Pause); err != nil {
				return err
			}
		}

		block := model.BlockRecord{
			Height:    tip,
			Author:    author,
			BlockHash: head.Hash,
		}
		if acct, err := chain.DecodeSS58(author, cfg.SS58Prefix); err == nil {
			block.AuthorPublicKey = "0x" + hex.EncodeToString(acct[:])
		}

		tracker.Process(ctx, block)
	}

	logger.Info("identity sync complete")
	return nil
}
