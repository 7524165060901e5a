// Package dbx holds the small database plumbing the repositories share:
// the DBTX interface that lets the same repository code run against a
// plain connection or an open transaction, and WithTx for the few
// operations (account registration) that need multi-row atomicity.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the query surface the repositories require. *sql.DB and *sql.Tx
// both satisfy it, so a service picks the transaction scope, not the
// repository.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TxFunc is the body of a transaction; the tx handle it receives must not
// escape the call.
type TxFunc func(ctx context.Context, tx DBTX) error

// WithTx runs fn inside a transaction: commit on a nil return, rollback on
// error. A panic inside fn rolls back and is rethrown.
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn TxFunc) (err error) {
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
