// Package dbx provides the small database/sql abstractions shared by the
// Postgres repositories: DBTX, satisfied by both *sql.DB and *sql.Tx, and
// WithTx for running a unit of work inside a transaction.
package dbx

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/recipeshare/internal/common"
)

// DBTX is the subset of database/sql used by repositories.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TxBeginner is implemented by *sql.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// DB is a DBTX that can also start transactions; *sql.DB satisfies it.
type DB interface {
	DBTX
	TxBeginner
}

// WithTx begins a transaction, runs fn with the transactional handle, and
// commits on success or rolls back on error/panic. Panics are rethrown.
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    _, err := tx.ExecContext(ctx, "INSERT INTO recipe_steps ...")
//	    return err
//	})
func WithTx(ctx context.Context, db TxBeginner, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(ctx, tx)
	return err
}

// ExpectOneRow checks the result of a statement keyed by primary key.
// No affected row means common.ErrorNotFound.
func ExpectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
