// Package transport exposes the read-side JSON API over the sqlite store.
package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/p3dcommunity/minerscan-backend/internal/model"
)

const (
	defaultLeaderboardDays  = 1
	defaultLeaderboardLimit = 100
	defaultRecentLimit      = 20
	maxLimit                = 1000
)

// Queries is the read surface the API serves from.
type Queries interface {
	MinerLeaderboard(ctx context.Context, since int64, limit int) ([]model.MinerStanding, error)
	RecentBlocks(ctx context.Context, limit int) ([]model.BlockRecord, error)
	NetworkStats(ctx context.Context) (model.NetworkStats, error)
}

// API serves the indexer's query endpoints.
type API struct {
	queries Queries
	logger  *zap.Logger
	now     func() time.Time
}

// NewAPI constructs the query API.
func NewAPI(queries Queries, logger *zap.Logger) *API {
	return &API{queries: queries, logger: logger, now: time.Now}
}

// Handler builds the routed handler with CORS applied.
func (a *API) Handler() http.Handler {
	router := httprouter.New()

	router.GET("/api/health", a.health)
	router.GET("/api/stats", a.stats)
	router.GET("/api/leaderboard", a.leaderboard)
	router.GET("/api/blocks/recent", a.recentBlocks)

	return cors.Default().Handler(router)
}

func (a *API) health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	a.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *API) stats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	stats, err := a.queries.NetworkStats(r.Context())
	if err != nil {
		a.writeError(w, "network stats", err)
		return
	}

	a.writeJSON(w, http.StatusOK, map[string]any{
		"total_blocks":     stats.TotalBlocks,
		"max_height":       stats.MaxHeight,
		"latest_timestamp": stats.LatestTimestamp,
		"distinct_authors": stats.DistinctAuthors,
	})
}

type leaderboardRow struct {
	Author        string  `json:"author"`
	Discord       *string `json:"discord"`
	Display       *string `json:"display"`
	Blocks        uint64  `json:"blocks"`
	TotalReward   uint64  `json:"total_reward"`
	LastBlockTime int64   `json:"last_block_time"`
}

func (a *API) leaderboard(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	days := queryInt(r, "days", defaultLeaderboardDays)
	limit := clampLimit(queryInt(r, "limit", defaultLeaderboardLimit))

	since := a.now().Add(-time.Duration(days) * 24 * time.Hour).Unix()

	standings, err := a.queries.MinerLeaderboard(r.Context(), since, limit)
	if err != nil {
		a.writeError(w, "leaderboard", err)
		return
	}

	rows := make([]leaderboardRow, 0, len(standings))
	for _, s := range standings {
		rows = append(rows, leaderboardRow{
			Author:        s.Author,
			Discord:       s.Discord,
			Display:       s.Display,
			Blocks:        s.Blocks,
			TotalReward:   s.TotalReward,
			LastBlockTime: s.LastBlockTime,
		})
	}

	a.writeJSON(w, http.StatusOK, map[string]any{
		"days":    days,
		"miners":  rows,
		"count":   len(rows),
		"updated": a.now().Unix(),
	})
}

type blockRow struct {
	Height          uint64  `json:"height"`
	Timestamp       int64   `json:"timestamp"`
	Author          string  `json:"author"`
	AuthorPublicKey string  `json:"author_public_key,omitempty"`
	BlockHash       string  `json:"block_hash"`
	Difficulty      *uint64 `json:"difficulty"`
	RewardAmount    uint64  `json:"reward_amount"`
}

func (a *API) recentBlocks(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit := clampLimit(queryInt(r, "limit", defaultRecentLimit))

	blocks, err := a.queries.RecentBlocks(r.Context(), limit)
	if err != nil {
		a.writeError(w, "recent blocks", err)
		return
	}

	rows := make([]blockRow, 0, len(blocks))
	for _, b := range blocks {
		rows = append(rows, blockRow{
			Height:          b.Height,
			Timestamp:       b.Timestamp,
			Author:          b.Author,
			AuthorPublicKey: b.AuthorPublicKey,
			BlockHash:       b.BlockHash,
			Difficulty:      b.Difficulty,
			RewardAmount:    b.RewardAmount,
		})
	}

	a.writeJSON(w, http.StatusOK, map[string]any{"blocks": rows, "count": len(rows)})
}

func (a *API) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Warn("write response failed", zap.Error(err))
	}
}

func (a *API) writeError(w http.ResponseWriter, operation string, err error) {
	a.logger.Error("query failed", zap.String("operation", operation), zap.Error(err))
	a.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}

func clampLimit(limit int) int {
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
