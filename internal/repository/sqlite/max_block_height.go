package sqlite

import (
	"context"
	"time"
)

const maxBlockHeightQuery = `SELECT COALESCE(MAX(height), 0) FROM block_info`

// MaxBlockHeight returns the highest stored height, or 0 for an empty store.
func (r *Repository) MaxBlockHeight(ctx context.Context) (height uint64, err error) {
	started := time.Now()
	defer func() {
		r.observe("max_block_height", err, started)
	}()

	var max int64
	if err = r.db.QueryRowContext(ctx, maxBlockHeightQuery).Scan(&max); err != nil {
		return 0, storeErr("max block height", err)
	}

	return uint64(max), nil
}
