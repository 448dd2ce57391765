package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

// querier is the subset of pgxpool.Pool and pgx.Tx used by the repositories.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// The relation lives in a single join table, tienda_cafes. Both directions
// read and write the same rows, which keeps the association symmetric.

const insertAssociationSQL = `
	INSERT INTO tienda_cafes (tienda_id, cafe_id)
	VALUES ($1, $2)
	ON CONFLICT (tienda_id, cafe_id) DO NOTHING`

func insertAssociation(ctx context.Context, q querier, tiendaID, cafeID string) error {
	if _, err := q.Exec(ctx, insertAssociationSQL, tiendaID, cafeID); err != nil {
		return errors.Wrapf(err, "insert association tienda=%s cafe=%s", tiendaID, cafeID)
	}
	return nil
}

func deleteAssociation(ctx context.Context, q querier, tiendaID, cafeID string) error {
	_, err := q.Exec(ctx, `DELETE FROM tienda_cafes WHERE tienda_id = $1 AND cafe_id = $2`, tiendaID, cafeID)
	if err != nil {
		return errors.Wrapf(err, "delete association tienda=%s cafe=%s", tiendaID, cafeID)
	}
	return nil
}

// inTx runs fn inside a transaction, rolling back on error.
func inTx(ctx context.Context, pool *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}
	defer func() {
		// No-op after a successful commit.
		_ = tx.Rollback(ctx)
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return errors.Wrap(err, "commit transaction")
	}
	return nil
}

func notFoundOr(err error, msg string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return errors.Wrap(err, msg)
}
