package tabletest

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tuanvumaihuynh/invoicing-api/internal/storage/db"
)

// ErrNoSQL is returned by DB for any raw query.
var ErrNoSQL = errors.New("tabletest: raw sql is not supported")

var _ db.DB = (*DB)(nil)

// DB satisfies db.DB for code that only needs transactions. WithTx runs the
// function directly and counts invocations.
type DB struct {
	Txs int
	// TxErr, when set, is returned by WithTx without calling the function.
	TxErr error
}

func (d *DB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, ErrNoSQL
}

func (d *DB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, ErrNoSQL
}

func (d *DB) QueryRow(context.Context, string, ...any) pgx.Row {
	return errRow{}
}

func (d *DB) WithTx(_ context.Context, txFunc func(db.DB) error) error {
	if d.TxErr != nil {
		return d.TxErr
	}
	d.Txs++
	return txFunc(d)
}

type errRow struct{}

func (errRow) Scan(...any) error { return ErrNoSQL }
