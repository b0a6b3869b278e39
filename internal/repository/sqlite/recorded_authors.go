package sqlite

import (
	"context"
	"time"
)

const recordedAuthorsQuery = `SELECT DISTINCT author FROM identity_changes`

// RecordedAuthors returns every author that has at least one identity
// history row.
func (r *Repository) RecordedAuthors(ctx context.Context) (authors []string, err error) {
	started := time.Now()
	defer func() {
		r.observe("recorded_authors", err, started)
	}()

	rows, err := r.db.QueryContext(ctx, recordedAuthorsQuery)
	if err != nil {
		return nil, storeErr("recorded authors", err)
	}
	defer rows.Close()

	for rows.Next() {
		var author string
		if err = rows.Scan(&author); err != nil {
			return nil, storeErr("recorded authors", err)
		}
		authors = append(authors, author)
	}
	if err = rows.Err(); err != nil {
		return nil, storeErr("recorded authors", err)
	}

	return authors, nil
}
