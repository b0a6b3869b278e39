package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/p3dcommunity/minerscan-backend/internal/model"
)

type stubQueries struct {
	standings []model.MinerStanding
	blocks    []model.BlockRecord
	stats     model.NetworkStats

	gotSince int64
	gotLimit int
}

func (s *stubQueries) MinerLeaderboard(_ context.Context, since int64, limit int) ([]model.MinerStanding, error) {
	s.gotSince = since
	s.gotLimit = limit
	return s.standings, nil
}

func (s *stubQueries) RecentBlocks(_ context.Context, limit int) ([]model.BlockRecord, error) {
	s.gotLimit = limit
	return s.blocks, nil
}

func (s *stubQueries) NetworkStats(context.Context) (model.NetworkStats, error) {
	return s.stats, nil
}

func TestAPIHealth(t *testing.T) {
	api := NewAPI(&stubQueries{}, zap.NewNop())
	rec := httptest.NewRecorder()

	api.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}

func TestAPILeaderboard(t *testing.T) {
	display := "Alice"
	queries := &stubQueries{
		standings: []model.MinerStanding{
			{Author: "d1Alice", Display: &display, Blocks: 12, TotalReward: 1200, LastBlockTime: 1700000000},
		},
	}

	api := NewAPI(queries, zap.NewNop())
	now := time.Unix(1700100000, 0)
	api.now = func() time.Time { return now }

	rec := httptest.NewRecorder()
	api.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/leaderboard?days=7&limit=5", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if want := now.Add(-7 * 24 * time.Hour).Unix(); queries.gotSince != want {
		t.Fatalf("unexpected since: got %d want %d", queries.gotSince, want)
	}
	if queries.gotLimit != 5 {
		t.Fatalf("unexpected limit: %d", queries.gotLimit)
	}

	var body struct {
		Days   int              `json:"days"`
		Count  int              `json:"count"`
		Miners []leaderboardRow `json:"miners"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Days != 7 || body.Count != 1 {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.Miners[0].Author != "d1Alice" || *body.Miners[0].Display != "Alice" {
		t.Fatalf("unexpected miner row: %+v", body.Miners[0])
	}
}

func TestAPIRecentBlocksDefaultsAndClamp(t *testing.T) {
	queries := &stubQueries{}
	api := NewAPI(queries, zap.NewNop())

	rec := httptest.NewRecorder()
	api.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/blocks/recent", nil))
	if queries.gotLimit != defaultRecentLimit {
		t.Fatalf("expected default limit, got %d", queries.gotLimit)
	}

	rec = httptest.NewRecorder()
	api.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/blocks/recent?limit=99999", nil))
	if queries.gotLimit != maxLimit {
		t.Fatalf("expected clamped limit, got %d", queries.gotLimit)
	}

	rec = httptest.NewRecorder()
	api.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/blocks/recent?limit=bogus", nil))
	if queries.gotLimit != defaultRecentLimit {
		t.Fatalf("expected fallback limit, got %d", queries.gotLimit)
	}
}

func TestAPIStats(t *testing.T) {
	queries := &stubQueries{
		stats: model.NetworkStats{TotalBlocks: 10, MaxHeight: 12, LatestTimestamp: 1700000000, DistinctAuthors: 3},
	}
	api := NewAPI(queries, zap.NewNop())

	rec := httptest.NewRecorder()
	api.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

	var body map[string]int64
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["total_blocks"] != 10 || body["max_height"] != 12 || body["distinct_authors"] != 3 {
		t.Fatalf("unexpected body: %+v", body)
	}
}
