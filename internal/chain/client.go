// Package chain wraps the Substrate node RPC connection: height and hash
// indexed reads, identity lookups, the finalized-head subscription, and
// connection health management.
package chain

import (
	"context"
	"fmt"
	"sync"
	"time"

	gsrpc "github.com/centrifuge/go-substrate-rpc-client/v4"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/p3dcommunity/minerscan-backend/internal/model"
)

// RPCMetrics records metrics for node RPC calls.
type RPCMetrics interface {
	Observe(operation string, err error, started time.Time)
}

// BlockRef identifies a block by hash and header number.
type BlockRef struct {
	Hash   string
	Number uint64
}

// Opts configures a Client.
type Opts struct {
	URL        string
	SS58Prefix uint16
	// RPS bounds outgoing RPC calls; 0 disables the limiter.
	RPS int
	// ProbeTimeout bounds the CheckConnection header fetch.
	ProbeTimeout time.Duration
	// ReconnectAttempts bounds Reconnect's own retry loop.
	ReconnectAttempts int
	// StabilizeDelay is the wait after a fresh dial before probing it.
	StabilizeDelay time.Duration
	Metrics        RPCMetrics
	Logger         *zap.Logger
}

// Client maintains one logical connection to the chain node. All transport
// failures are wrapped in ConnectionError so callers can classify them
// structurally.
type Client struct {
	url               string
	ss58Prefix        uint16
	rl                ratelimit.Limiter
	probeTimeout      time.Duration
	reconnectAttempts int
	stabilizeDelay    time.Duration
	metrics           RPCMetrics
	logger            *zap.Logger

	mu  sync.RWMutex
	api *gsrpc.SubstrateAPI
}

// NewClient dials the node and returns a connected client.
func NewClient(opts Opts) (*Client, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.ProbeTimeout <= 0 {
		opts.ProbeTimeout = 10 * time.Second
	}
	if opts.ReconnectAttempts <= 0 {
		opts.ReconnectAttempts = 3
	}
	if opts.StabilizeDelay <= 0 {
		opts.StabilizeDelay = 2 * time.Second
	}

	var rl ratelimit.Limiter
	if opts.RPS > 0 {
		rl = ratelimit.New(opts.RPS)
	} else {
		rl = ratelimit.NewUnlimited()
	}

	api, err := gsrpc.NewSubstrateAPI(opts.URL)
	if err != nil {
		return nil, connErr("dial", err)
	}

	return &Client{
		url:               opts.URL,
		ss58Prefix:        opts.SS58Prefix,
		rl:                rl,
		probeTimeout:      opts.ProbeTimeout,
		reconnectAttempts: opts.ReconnectAttempts,
		stabilizeDelay:    opts.StabilizeDelay,
		metrics:           opts.Metrics,
		logger:            opts.Logger,
		api:               api,
	}, nil
}

func (c *Client) currentAPI() *gsrpc.SubstrateAPI {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.api
}

func (c *Client) observe(operation string, err error, started time.Time) {
	if c.metrics != nil {
		c.metrics.Observe(operation, err, started)
	}
}

// TipHeight returns the current finalized chain height.
func (c *Client) TipHeight(ctx context.Context) (height uint64, err error) {
	started := time.Now()
	defer func() { c.observe("tip_height", err, started) }()

	if err = ctx.Err(); err != nil {
		return 0, err
	}
	c.rl.Take()

	api := c.currentAPI()
	hash, err := api.RPC.Chain.GetFinalizedHead()
	if err != nil {
		return 0, connErr("get finalized head", err)
	}
	header, err := api.RPC.Chain.GetHeader(hash)
	if err != nil {
		return 0, connErr("get finalized header", err)
	}
	return uint64(header.Number), nil
}

// BlockByHeight resolves a height to its block hash and header number.
// Heights past the finalized tip fail with ErrNotFound.
func (c *Client) BlockByHeight(ctx context.Context, height uint64) (ref BlockRef, err error) {
	started := time.Now()
	defer func() { c.observe("block_by_height", err, started) }()

	if err = ctx.Err(); err != nil {
		return BlockRef{}, err
	}
	c.rl.Take()

	api := c.currentAPI()
	hash, err := api.RPC.Chain.GetBlockHash(height)
	if err != nil {
		// The node answers null for unknown heights, which surfaces as a
		// hash parse error; disambiguate against the tip instead of
		// inspecting the message.
		if tip, tipErr := c.TipHeight(ctx); tipErr == nil && height > tip {
			return BlockRef{}, fmt.Errorf("height %d past tip %d: %w", height, tip, ErrNotFound)
		}
		return BlockRef{}, connErr("get block hash", err)
	}

	header, err := api.RPC.Chain.GetHeader(hash)
	if err != nil {
		return BlockRef{}, connErr("get header", err)
	}

	return BlockRef{Hash: hash.Hex(), Number: uint64(header.Number)}, nil
}

// Author returns the SS58 address of the block author for a header number.
func (c *Client) Author(ctx context.Context, headerNumber uint64) (author string, err error) {
	started := time.Now()
	defer func() { c.observe("author", err, started) }()

	if err = ctx.Err(); err != nil {
		return "", err
	}
	c.rl.Take()

	key := storageKey("ValidatorSet", "Authors", blake2b128Concat(encodeU32(uint32(headerNumber))))
	raw, err := c.currentAPI().RPC.State.GetStorageRawLatest(key)
	if err != nil {
		return "", connErr("get author storage", err)
	}
	if raw == nil || len(*raw) == 0 {
		return "", fmt.Errorf("no author recorded for block %d", headerNumber)
	}

	acct, err := decodeAccountID(*raw)
	if err != nil {
		return "", fmt.Errorf("block %d author: %w", headerNumber, err)
	}
	return EncodeSS58(acct, c.ss58Prefix), nil
}

// Difficulty returns the chain difficulty at a block hash, or nil when the
// value is unavailable.
func (c *Client) Difficulty(ctx context.Context, blockHash string) (difficulty *uint64, err error) {
	started := time.Now()
	defer func() { c.observe("difficulty", err, started) }()

	raw, err := c.storageAt(ctx, blockHash, storageKey("Difficulty", "CurrentDifficulty"))
	if err != nil || raw == nil {
		return nil, err
	}

	v, err := decodeU256Saturating(raw)
	if err != nil {
		return nil, fmt.Errorf("difficulty at %s: %w", blockHash, err)
	}
	return &v, nil
}

// Timestamp returns the block's unix timestamp in seconds.
func (c *Client) Timestamp(ctx context.Context, blockHash string) (ts int64, err error) {
	started := time.Now()
	defer func() { c.observe("timestamp", err, started) }()

	raw, err := c.storageAt(ctx, blockHash, storageKey("Timestamp", "Now"))
	if err != nil {
		return 0, err
	}
	if raw == nil {
		return 0, fmt.Errorf("no timestamp recorded at %s", blockHash)
	}

	ms, err := decodeTimestampMillis(raw)
	if err != nil {
		return 0, fmt.Errorf("timestamp at %s: %w", blockHash, err)
	}
	return int64(ms / 1000), nil
}

// RewardAmount returns the block reward in effect at a block hash, 0 when
// the rewards pallet has no value there.
func (c *Client) RewardAmount(ctx context.Context, blockHash string) (amount uint64, err error) {
	started := time.Now()
	defer func() { c.observe("reward_amount", err, started) }()

	raw, err := c.storageAt(ctx, blockHash, storageKey("Rewards", "BlockReward"))
	if err != nil || raw == nil {
		return 0, err
	}

	amount, err = decodeU128Saturating(raw)
	if err != nil {
		return 0, fmt.Errorf("reward at %s: %w", blockHash, err)
	}
	return amount, nil
}

// Identity returns the account's identity metadata as registered at the
// block hash, or nil when the account has no registration.
func (c *Client) Identity(ctx context.Context, blockHash, address string) (info *model.IdentityInfo, err error) {
	started := time.Now()
	defer func() { c.observe("identity", err, started) }()

	acct, err := DecodeSS58(address, c.ss58Prefix)
	if err != nil {
		return nil, fmt.Errorf("identity of %s: %w", address, err)
	}

	key := storageKey("Identity", "IdentityOf", blake2b128Concat(acct[:]))
	raw, err := c.storageAt(ctx, blockHash, key)
	if err != nil || raw == nil {
		return nil, err
	}

	decoded, err := decodeIdentityInfo(raw)
	if err != nil {
		return nil, fmt.Errorf("identity of %s: %w", address, err)
	}
	return &decoded, nil
}

// storageAt fetches raw storage bytes at a block hash; nil result means the
// key holds no value there.
func (c *Client) storageAt(ctx context.Context, blockHash string, key []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.rl.Take()

	hash, err := types.NewHashFromHexString(blockHash)
	if err != nil {
		return nil, fmt.Errorf("parse block hash %q: %w", blockHash, err)
	}

	raw, err := c.currentAPI().RPC.State.GetStorageRaw(key, hash)
	if err != nil {
		return nil, connErr("get storage", err)
	}
	if raw == nil || len(*raw) == 0 {
		return nil, nil
	}
	return *raw, nil
}

// CheckConnection probes the node with a header fetch raced against the
// probe timeout.
func (c *Client) CheckConnection(ctx context.Context) bool {
	done := make(chan error, 1)
	go func() {
		_, err := c.currentAPI().RPC.Chain.GetHeaderLatest()
		done <- err
	}()

	timer := time.NewTimer(c.probeTimeout)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		c.logger.Warn("connection probe timed out", zap.Duration("timeout", c.probeTimeout))
		return false
	case err := <-done:
		if err != nil {
			c.logger.Warn("connection probe failed", zap.Error(err))
		}
		return err == nil
	}
}

// Reconnect re-establishes the node transport, waits for it to stabilize,
// and verifies it with a probe. The previous connection is discarded.
func (c *Client) Reconnect(ctx context.Context) error {
	var lastErr error
	for attempt := 1; attempt <= c.reconnectAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.logger.Info("reconnecting to node",
			zap.String("url", c.url),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", c.reconnectAttempts))

		api, err := gsrpc.NewSubstrateAPI(c.url)
		if err != nil {
			lastErr = err
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.stabilizeDelay):
		}

		c.mu.Lock()
		old := c.api
		c.api = api
		c.mu.Unlock()
		closeAPI(old)

		if c.CheckConnection(ctx) {
			c.logger.Info("reconnected to node")
			return nil
		}
		lastErr = fmt.Errorf("post-reconnect probe failed")
	}

	return &ReconnectError{Attempts: c.reconnectAttempts, Err: lastErr}
}

// Close tears down the underlying transport.
func (c *Client) Close() {
	c.mu.Lock()
	api := c.api
	c.api = nil
	c.mu.Unlock()
	closeAPI(api)
}

func closeAPI(api *gsrpc.SubstrateAPI) {
	if api == nil {
		return
	}
	if closer, ok := any(api.Client).(interface{ Close() }); ok {
		closer.Close()
	}
}
