package table

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tuanvumaihuynh/invoicing-api/internal/storage/db"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

var _ Table[struct{}] = (*pgTable[struct{}])(nil)

type pgTable[T any] struct {
	db     db.DB
	schema Schema[T]
}

// NewPostgres returns a Table backed by Postgres. Rows are scanned into T by
// matching `db` struct tags against column names.
func NewPostgres[T any](db db.DB, schema Schema[T]) Table[T] {
	return &pgTable[T]{db: db, schema: schema}
}

func (t *pgTable[T]) WithDB(db db.DB) Table[T] {
	return &pgTable[T]{db: db, schema: t.schema}
}

func (t *pgTable[T]) Insert(ctx context.Context, rec T) ([]T, error) {
	placeholders := make([]string, len(t.schema.Columns))
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING *",
		t.tableName(), t.columnList(t.schema.Columns), strings.Join(placeholders, ", "))

	return t.query(ctx, "insert", sql, t.schema.Values(rec)...)
}

func (t *pgTable[T]) Select(ctx context.Context, filters ...Filter) ([]T, error) {
	where, args := t.where(filters, 0)
	sql := fmt.Sprintf("SELECT * FROM %s%s ORDER BY %s",
		t.tableName(), where, pgx.Identifier{t.schema.Key}.Sanitize())

	return t.query(ctx, "select", sql, args...)
}

func (t *pgTable[T]) Update(ctx context.Context, rec T, filters ...Filter) ([]T, error) {
	if len(filters) == 0 {
		return nil, ErrUnfiltered
	}

	values := t.schema.Values(rec)
	sets := make([]string, len(t.schema.Columns))
	for i, c := range t.schema.Columns {
		sets[i] = fmt.Sprintf("%s = $%d", pgx.Identifier{c}.Sanitize(), i+1)
	}

	where, args := t.where(filters, len(values))
	sql := fmt.Sprintf("UPDATE %s SET %s%s RETURNING *",
		t.tableName(), strings.Join(sets, ", "), where)

	return t.query(ctx, "update", sql, append(values, args...)...)
}

func (t *pgTable[T]) Delete(ctx context.Context, filters ...Filter) ([]T, error) {
	if len(filters) == 0 {
		return nil, ErrUnfiltered
	}

	where, args := t.where(filters, 0)
	sql := fmt.Sprintf("DELETE FROM %s%s RETURNING *", t.tableName(), where)

	return t.query(ctx, "delete", sql, args...)
}

func (t *pgTable[T]) query(ctx context.Context, op, sql string, args ...any) ([]T, error) {
	rows, err := t.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, t.wrapErr(op, err)
	}

	recs, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, t.wrapErr(op, err)
	}

	return recs, nil
}

func (t *pgTable[T]) wrapErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && (pgErr.Code == pgUniqueViolation || pgErr.Code == pgForeignKeyViolation) {
		return fmt.Errorf("%s %s: %w (%s): %w", op, t.schema.Name, ErrConflict, pgErr.ConstraintName, err)
	}
	return fmt.Errorf("%s %s: %w", op, t.schema.Name, err)
}

// where renders filters as a WHERE clause whose placeholders start after offset.
func (t *pgTable[T]) where(filters []Filter, offset int) (string, []any) {
	if len(filters) == 0 {
		return "", nil
	}

	conds := make([]string, len(filters))
	args := make([]any, len(filters))
	for i, f := range filters {
		conds[i] = fmt.Sprintf("%s = $%d", pgx.Identifier{f.Column}.Sanitize(), offset+i+1)
		args[i] = f.Value
	}

	return " WHERE " + strings.Join(conds, " AND "), args
}

func (t *pgTable[T]) tableName() string {
	return pgx.Identifier{t.schema.Name}.Sanitize()
}

func (t *pgTable[T]) columnList(columns []string) string {
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = pgx.Identifier{c}.Sanitize()
	}
	return strings.Join(quoted, ", ")
}
