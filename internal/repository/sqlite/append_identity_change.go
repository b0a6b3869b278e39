package sqlite

import (
	"context"
	"time"

	"github.com/p3dcommunity/minerscan-backend/internal/model"
)

const appendIdentityChangeQuery = `
INSERT INTO identity_changes (block_height, author, author_public_key, discord, display)
VALUES (?, ?, ?, ?, ?)`

// AppendIdentityChange writes one identity history row. History is
// append-only: existing rows for the author are never touched.
func (r *Repository) AppendIdentityChange(ctx context.Context, change model.IdentityChange) (err error) {
	started := time.Now()
	defer func() {
		r.observe("append_identity_change", err, started)
	}()

	var pubKey any
	if change.AuthorPublicKey != "" {
		pubKey = change.AuthorPublicKey
	}

	_, err = r.db.ExecContext(ctx, appendIdentityChangeQuery,
		i64(change.BlockHeight),
		change.Author,
		pubKey,
		change.Discord,
		change.Display,
	)
	if err != nil {
		return storeErr("append identity change", err)
	}

	return nil
}
