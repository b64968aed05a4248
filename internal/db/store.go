package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fr0stylo/enms/internal/db/queries"
)

// WithTx runs a function within a transaction. The function's error rolls the
// transaction back and is returned as is.
func (c *Database) WithTx(ctx context.Context, fn func(*queries.Queries) error) error {
	tx, err := c.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	if err := fn(queries.New(newInstrumentedDBTX(tx, c.tracker))); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			return errors.Join(err, rollbackErr)
		}
		return err
	}
	return tx.Commit()
}

// BoolToInt converts a boolean to the sqlite integer representation.
func BoolToInt(value bool) int64 {
	if value {
		return 1
	}
	return 0
}
