package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/p3dcommunity/minerscan-backend/internal/model"
)

const minerLeaderboardQuery = `
SELECT b.author,
       COUNT(*)                        AS blocks,
       COALESCE(SUM(b.reward_amount), 0) AS total_reward,
       MAX(b.timestamp)                AS last_block_time,
       k.discord,
       k.display
FROM block_info b
LEFT JOIN identity_changes k
       ON k.author = b.author
      AND k.id = (SELECT MAX(k2.id) FROM identity_changes k2 WHERE k2.author = b.author)
WHERE b.timestamp >= ?
GROUP BY b.author
ORDER BY blocks DESC, b.author ASC
LIMIT ?`

// MinerLeaderboard aggregates blocks mined since the given unix timestamp,
// one row per author, most blocks first, joined with the author's latest
// known identity.
func (r *Repository) MinerLeaderboard(ctx context.Context, since int64, limit int) (standings []model.MinerStanding, err error) {
	started := time.Now()
	defer func() {
		r.observe("miner_leaderboard", err, started)
	}()

	rows, err := r.db.QueryContext(ctx, minerLeaderboardQuery, since, limit)
	if err != nil {
		return nil, storeErr("miner leaderboard", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			row              model.MinerStanding
			blocks, reward   int64
			discord, display sql.NullString
		)
		if err = rows.Scan(&row.Author, &blocks, &reward, &row.LastBlockTime, &discord, &display); err != nil {
			return nil, storeErr("miner leaderboard", err)
		}
		row.Blocks = uint64(blocks)
		row.TotalReward = uint64(reward)
		row.Discord = nullableString(discord)
		row.Display = nullableString(display)
		standings = append(standings, row)
	}
	if err = rows.Err(); err != nil {
		return nil, storeErr("miner leaderboard", err)
	}

	return standings, nil
}
