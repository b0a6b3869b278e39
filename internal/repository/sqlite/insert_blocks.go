package sqlite

import (
	"context"
	"time"

	"github.com/p3dcommunity/minerscan-backend/internal/model"
)

// InsertBlocks stores a batch of block records in one transaction: either
// every record lands (already stored heights are skipped, not errors) or the
// transaction is rolled back and nothing is written.
func (r *Repository) InsertBlocks(ctx context.Context, blocks []model.BlockRecord) (result model.BatchResult, err error) {
	started := time.Now()
	defer func() {
		r.observe("insert_blocks", err, started)
	}()

	if len(blocks) == 0 {
		return model.BatchResult{}, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return model.BatchResult{}, storeErr("begin batch", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, insertBlockQuery)
	if err != nil {
		return model.BatchResult{}, storeErr("prepare batch", err)
	}
	defer stmt.Close()

	for _, block := range blocks {
		res, execErr := stmt.ExecContext(ctx, blockArgs(block)...)
		if execErr != nil {
			err = storeErr("insert batch block", execErr)
			return model.BatchResult{}, err
		}

		affected, raErr := res.RowsAffected()
		if raErr != nil {
			err = storeErr("insert batch block", raErr)
			return model.BatchResult{}, err
		}

		if affected > 0 {
			result.Inserted++
		} else {
			result.Skipped++
		}
	}

	if err = tx.Commit(); err != nil {
		err = storeErr("commit batch", err)
		return model.BatchResult{}, err
	}

	return result, nil
}
