package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/p3dcommunity/minerscan-backend/internal/model"
)

const identityLatestPerAuthorQuery = `
SELECT k.author, k.discord, k.display
FROM identity_changes k
WHERE k.id = (SELECT MAX(k2.id) FROM identity_changes k2 WHERE k2.author = k.author)`

// IdentityLatestPerAuthor returns the newest identity row per author, keyed
// by author address. Used to rebuild the in-memory identity cache on start.
func (r *Repository) IdentityLatestPerAuthor(ctx context.Context) (latest map[string]model.IdentityInfo, err error) {
	started := time.Now()
	defer func() {
		r.observe("identity_latest_per_author", err, started)
	}()

	rows, err := r.db.QueryContext(ctx, identityLatestPerAuthorQuery)
	if err != nil {
		return nil, storeErr("identity latest per author", err)
	}
	defer rows.Close()

	latest = make(map[string]model.IdentityInfo)
	for rows.Next() {
		var (
			author           string
			discord, display sql.NullString
		)
		if err = rows.Scan(&author, &discord, &display); err != nil {
			return nil, storeErr("identity latest per author", err)
		}
		latest[author] = model.IdentityInfo{
			Discord: nullableString(discord),
			Display: nullableString(display),
		}
	}
	if err = rows.Err(); err != nil {
		return nil, storeErr("identity latest per author", err)
	}

	return latest, nil
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}
