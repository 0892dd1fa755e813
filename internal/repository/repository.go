package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tamu-thinktank/website-sub000/internal/scheduler"
)

// Repository implements scheduler.Store on top of a pgx pool.
type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) execTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("tx err: %v, rollback err: %w", err, rbErr)
		}
		return err
	}
	return tx.Commit(ctx)
}

// WithTx exposes the transactional write surface to the scheduler. The
// closure's writes either all land or all roll back.
func (r *Repository) WithTx(ctx context.Context, fn func(scheduler.TxStore) error) error {
	return r.execTx(ctx, func(tx pgx.Tx) error {
		return fn(&txRepository{tx: tx})
	})
}

// txRepository scopes writes to one open transaction.
type txRepository struct {
	tx pgx.Tx
}
