package sqlite

import (
	"context"
	"time"

	"github.com/p3dcommunity/minerscan-backend/internal/model"
)

const networkStatsQuery = `
SELECT COUNT(*),
       COALESCE(MAX(height), 0),
       COALESCE(MAX(timestamp), 0),
       COUNT(DISTINCT author)
FROM block_info`

// NetworkStats summarizes the stored chain state in one query.
func (r *Repository) NetworkStats(ctx context.Context) (stats model.NetworkStats, err error) {
	started := time.Now()
	defer func() {
		r.observe("network_stats", err, started)
	}()

	var total, maxHeight, latest, authors int64
	if err = r.db.QueryRowContext(ctx, networkStatsQuery).Scan(&total, &maxHeight, &latest, &authors); err != nil {
		return model.NetworkStats{}, storeErr("network stats", err)
	}

	return model.NetworkStats{
		TotalBlocks:     uint64(total),
		MaxHeight:       uint64(maxHeight),
		LatestTimestamp: latest,
		DistinctAuthors: uint64(authors),
	}, nil
}
