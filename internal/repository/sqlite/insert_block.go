package sqlite

import (
	"context"
	"time"

	"github.com/p3dcommunity/minerscan-backend/internal/model"
)

// ON CONFLICT DO NOTHING keeps re-ingestion of an already stored height a
// no-op while still surfacing every other constraint violation as an error.
const insertBlockQuery = `
INSERT INTO block_info (height, timestamp, author, author_public_key, block_hash, difficulty, reward_amount)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (height) DO NOTHING`

// InsertBlock stores a single block record. It reports whether a row was
// actually written; false means the height already existed.
func (r *Repository) InsertBlock(ctx context.Context, block model.BlockRecord) (inserted bool, err error) {
	started := time.Now()
	defer func() {
		r.observe("insert_block", err, started)
	}()

	res, err := r.db.ExecContext(ctx, insertBlockQuery, blockArgs(block)...)
	if err != nil {
		return false, storeErr("insert block", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, storeErr("insert block", err)
	}

	return affected > 0, nil
}

func blockArgs(block model.BlockRecord) []any {
	var difficulty any
	if block.Difficulty != nil {
		difficulty = i64(*block.Difficulty)
	}

	var pubKey any
	if block.AuthorPublicKey != "" {
		pubKey = block.AuthorPublicKey
	}

	return []any{
		i64(block.Height),
		block.Timestamp,
		block.Author,
		pubKey,
		block.BlockHash,
		difficulty,
		i64(block.RewardAmount),
	}
}
