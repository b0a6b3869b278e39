package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/p3dcommunity/minerscan-backend/internal/model"
)

const recentBlocksQuery = `
SELECT height, timestamp, author, author_public_key, block_hash, difficulty, reward_amount
FROM block_info
ORDER BY height DESC
LIMIT ?`

// RecentBlocks returns the newest stored blocks, highest height first.
func (r *Repository) RecentBlocks(ctx context.Context, limit int) (blocks []model.BlockRecord, err error) {
	started := time.Now()
	defer func() {
		r.observe("recent_blocks", err, started)
	}()

	rows, err := r.db.QueryContext(ctx, recentBlocksQuery, limit)
	if err != nil {
		return nil, storeErr("recent blocks", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			block      model.BlockRecord
			height     int64
			reward     int64
			pubKey     sql.NullString
			difficulty sql.NullInt64
		)
		if err = rows.Scan(&height, &block.Timestamp, &block.Author, &pubKey, &block.BlockHash, &difficulty, &reward); err != nil {
			return nil, storeErr("recent blocks", err)
		}
		block.Height = uint64(height)
		block.RewardAmount = uint64(reward)
		if pubKey.Valid {
			block.AuthorPublicKey = pubKey.String
		}
		if difficulty.Valid {
			d := uint64(difficulty.Int64)
			block.Difficulty = &d
		}
		blocks = append(blocks, block)
	}
	if err = rows.Err(); err != nil {
		return nil, storeErr("recent blocks", err)
	}

	return blocks, nil
}
