package sqlite

import (
	"context"
	"time"
)

const distinctAuthorsQuery = `SELECT DISTINCT author FROM block_info ORDER BY author`

// DistinctAuthors returns every author that has mined at least one stored
// block, in ascending address order.
func (r *Repository) DistinctAuthors(ctx context.Context) (authors []string, err error) {
	started := time.Now()
	defer func() {
		r.observe("distinct_authors", err, started)
	}()

	rows, err := r.db.QueryContext(ctx, distinctAuthorsQuery)
	if err != nil {
		return nil, storeErr("distinct authors", err)
	}
	defer rows.Close()

	for rows.Next() {
		var author string
		if err = rows.Scan(&author); err != nil {
			return nil, storeErr("distinct authors", err)
		}
		authors = append(authors, author)
	}
	if err = rows.Err(); err != nil {
		return nil, storeErr("distinct authors", err)
	}

	return authors, nil
}
