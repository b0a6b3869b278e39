package sqlite

import (
	"context"
	"fmt"
	"time"
)

const missingBlockHeightsQuery = `
WITH RECURSIVE wanted (height) AS (
    SELECT CAST(? AS INTEGER)
    UNION ALL
    SELECT height + 1 FROM wanted WHERE height < ?
)
SELECT height
FROM wanted
WHERE height NOT IN (SELECT height FROM block_info)
ORDER BY height`

// MissingBlockHeights returns every height in [lo, hi] that has no stored
// block, in ascending order.
func (r *Repository) MissingBlockHeights(ctx context.Context, lo, hi uint64) (heights []uint64, err error) {
	started := time.Now()
	defer func() {
		r.observe("missing_block_heights", err, started)
	}()

	if lo > hi {
		return nil, fmt.Errorf("invalid height range [%d, %d]", lo, hi)
	}

	rows, err := r.db.QueryContext(ctx, missingBlockHeightsQuery, i64(lo), i64(hi))
	if err != nil {
		return nil, storeErr("missing block heights", err)
	}
	defer rows.Close()

	for rows.Next() {
		var height int64
		if err = rows.Scan(&height); err != nil {
			return nil, storeErr("missing block heights", err)
		}
		heights = append(heights, uint64(height))
	}
	if err = rows.Err(); err != nil {
		return nil, storeErr("missing block heights", err)
	}

	return heights, nil
}
