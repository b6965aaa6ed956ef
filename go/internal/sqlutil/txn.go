package sqlutil

import (
	"context"
	"database/sql"
)

// Read executes fn inside a *sql.Tx so multi-statement reads see the same
// rows, and always rolls back since nothing is written.
func Read[T, R any](
	ctx context.Context,
	db *sql.DB,
	newQueries func(*sql.Tx) *T,
	fn func(q *T) (R, error),
) (R, error) {
	var zero R
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return zero, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	res, err := fn(newQueries(tx))
	if err != nil {
		return zero, err
	}
	return res, nil
}
