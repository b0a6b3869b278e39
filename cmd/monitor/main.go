package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/p3dcommunity/minerscan-backend/internal/chain"
	"github.com/p3dcommunity/minerscan-backend/internal/clock"
	"github.com/p3dcommunity/minerscan-backend/internal/ingest"
	"github.com/p3dcommunity/minerscan-backend/internal/metrics"
	"github.com/p3dcommunity/minerscan-backend/internal/repository/sqlite"
)

type config struct {
	NodeURL             string        `long:"node-url" env:"MONITOR_NODE_URL" description:"substrate node websocket URL" default:"ws://127.0.0.1:9944"`
	SQLitePath          string        `long:"sqlite-path" env:"MONITOR_SQLITE_PATH" description:"sqlite database file" default:"minerscan.db"`
	Network             string        `long:"network" env:"MONITOR_NETWORK" description:"network label for metrics" default:"mainnet"`
	SS58Prefix          uint16        `long:"ss58-prefix" env:"MONITOR_SS58_PREFIX" description:"SS58 address format" default:"71"`
	StartHeight         uint64        `long:"start-height" env:"MONITOR_START_HEIGHT" description:"first height to index" default:"1"`
	BatchSize           int           `long:"batch-size" env:"MONITOR_BATCH_SIZE" description:"heights per backfill batch" default:"50"`
	FetchConcurrency    int           `long:"fetch-concurrency" env:"MONITOR_FETCH_CONCURRENCY" description:"parallel fetches per batch" default:"10"`
	RPS                 int           `long:"rps" env:"MONITOR_RPS" description:"node RPC rate limit, 0 disables" default:"0"`
	HealthCheckInterval time.Duration `long:"health-check-interval" env:"MONITOR_HEALTH_CHECK_INTERVAL" description:"live tail connection probe period" default:"1m"`
	MemorySoftLimitMB   int           `long:"memory-soft-limit-mb" env:"MONITOR_MEMORY_SOFT_LIMIT_MB" description:"heap soft limit for batch backpressure, 0 disables" default:"0"`
	RestartDelay        time.Duration `long:"restart-delay" env:"MONITOR_RESTART_DELAY" description:"wait before restarting a failed pipeline" default:"10s"`
	MetricsAddr         string        `long:"metrics-addr" env:"MONITOR_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	LogFile             string        `long:"log-file" env:"MONITOR_LOG_FILE" description:"rotated log file, empty logs to stderr only"`

	CheckIntegrity bool   `long:"check-integrity" description:"run a one-shot integrity check and repair, then exit"`
	FillRange      string `long:"fill-range" description:"one-shot backfill of LO-HI, then exit"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, "failed to parse flags:", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogFile)
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("monitor failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	repo, err := sqlite.NewRepository(cfg.SQLitePath, metrics.NewRepository(cfg.Network))
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		_ = repo.Close()
	}()

	if err := repo.Migrate(); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	client, err := chain.NewClient(chain.Opts{
		URL:        cfg.NodeURL,
		SS58Prefix: cfg.SS58Prefix,
		RPS:        cfg.RPS,
		Metrics:    metrics.NewChainClient(cfg.Network),
		Logger:     logger.Named("chain"),
	})
	if err != nil {
		return fmt.Errorf("dial node: %w", err)
	}
	defer client.Close()

	svc := ingest.NewService(
		ingest.AdaptChain(client),
		repo,
		ingest.Config{
			StartHeight:         cfg.StartHeight,
			BatchSize:           cfg.BatchSize,
			FetchConcurrency:    cfg.FetchConcurrency,
			HealthCheckInterval: cfg.HealthCheckInterval,
			MemorySoftLimitMB:   cfg.MemorySoftLimitMB,
			SS58Prefix:          cfg.SS58Prefix,
		},
		ingest.Observers{
			Backfill:   metrics.NewBackfillIngester(cfg.Network),
			Tailer:     metrics.NewLiveTailer(cfg.Network),
			Reconciler: metrics.NewReconciler(cfg.Network),
		},
		logger.Named("ingest"),
	)

	if cfg.FillRange != "" {
		lo, hi, err := parseRange(cfg.FillRange)
		if err != nil {
			return err
		}
		return svc.FillRange(ctx, lo, hi)
	}

	if cfg.CheckIntegrity {
		tip, err := client.TipHeight(ctx)
		if err != nil {
			return err
		}
		return svc.CheckIntegrity(ctx, cfg.StartHeight, tip)
	}

	// The pipeline is restarted after unexpected failures so a flaky node
	// never leaves the monitor dead.
	for {
		err := svc.Run(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		logger.Error("pipeline stopped, restarting",
			zap.Error(err),
			zap.Duration("delay", cfg.RestartDelay))
		if err := clock.SleepWithContext(ctx, cfg.RestartDelay); err != nil {
			return err
		}
	}
}

func parseRange(s string) (uint64, uint64, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid range %q, want LO-HI", s)
	}
	lo, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range start %q: %w", parts[0], err)
	}
	hi, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range end %q: %w", parts[1], err)
	}
	if lo < 1 || lo > hi {
		return 0, 0, fmt.Errorf("invalid range %q", s)
	}
	return lo, hi, nil
}

func newLogger(logFile string) *zap.Logger {
	console := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(os.Stderr),
		zap.InfoLevel,
	)
	if logFile == "" {
		return zap.New(console)
	}

	rotated := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    100, // MB
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		}),
		zap.InfoLevel,
	)
	return zap.New(zapcore.NewTee(console, rotated))
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown failed", zap.Error(err))
		}
	}()
}
