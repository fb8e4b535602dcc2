package infra

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

const txMaxRetries = 3

// PgUnitOfWork runs the booking write path inside a retried transaction
// holding the per-date advisory lock.
type PgUnitOfWork struct {
	db *pgxpool.Pool
}

func NewPgUnitOfWork(db *pgxpool.Pool) *PgUnitOfWork {
	return &PgUnitOfWork{db: db}
}

func (u *PgUnitOfWork) WithinDate(ctx context.Context, date string, fn func(tx DBTX) error) error {
	_, err := RunInTxWithRetry(ctx, u.db, txMaxRetries, func(tx DBTX) (struct{}, error) {
		if err := LockDate(ctx, tx, date); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, fn(tx)
	})
	return err
}
