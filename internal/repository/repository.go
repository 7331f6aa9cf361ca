package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/tuanvumaihuynh/invoicing-api/internal/storage/db"
	"github.com/tuanvumaihuynh/invoicing-api/internal/storage/table"
)

// ErrNotFound is returned when no row matches the identifying key.
var ErrNotFound = errors.New("record not found")

// Repository is the CRUD shape shared by every resource. K is the type of the
// identifying key used by Get, Update and Delete.
type Repository[T any, K comparable] interface {
	WithDB(db db.DB) Repository[T, K]

	// Key returns rec's identifying key.
	Key(rec T) K

	Create(ctx context.Context, rec T) (T, error)
	List(ctx context.Context) ([]T, error)
	ListBy(ctx context.Context, column string, value any) ([]T, error)
	Get(ctx context.Context, key K) (T, error)
	GetBy(ctx context.Context, column string, value any) (T, error)
	Update(ctx context.Context, key K, rec T) (T, error)
	Delete(ctx context.Context, key K) (T, error)
}

type tableRepository[T any, K comparable] struct {
	table     table.Table[T]
	keyColumn string
	key       func(T) K
}

// New returns a Repository over t whose records are identified by keyColumn,
// with key extracting the same value from a record.
func New[T any, K comparable](t table.Table[T], keyColumn string, key func(T) K) Repository[T, K] {
	return &tableRepository[T, K]{
		table:     t,
		keyColumn: keyColumn,
		key:       key,
	}
}

func (r *tableRepository[T, K]) WithDB(db db.DB) Repository[T, K] {
	return &tableRepository[T, K]{
		table:     r.table.WithDB(db),
		keyColumn: r.keyColumn,
		key:       r.key,
	}
}

func (r *tableRepository[T, K]) Key(rec T) K {
	return r.key(rec)
}

func (r *tableRepository[T, K]) Create(ctx context.Context, rec T) (T, error) {
	rows, err := r.table.Insert(ctx, rec)
	if err != nil {
		return rec, fmt.Errorf("table insert: %w", err)
	}
	if len(rows) == 0 {
		return rec, errors.New("table insert returned no rows")
	}

	return rows[0], nil
}

func (r *tableRepository[T, K]) List(ctx context.Context) ([]T, error) {
	rows, err := r.table.Select(ctx)
	if err != nil {
		return nil, fmt.Errorf("table select: %w", err)
	}

	return rows, nil
}

func (r *tableRepository[T, K]) ListBy(ctx context.Context, column string, value any) ([]T, error) {
	rows, err := r.table.Select(ctx, table.Eq(column, value))
	if err != nil {
		return nil, fmt.Errorf("table select by %s: %w", column, err)
	}

	return rows, nil
}

func (r *tableRepository[T, K]) Get(ctx context.Context, key K) (T, error) {
	return r.GetBy(ctx, r.keyColumn, key)
}

func (r *tableRepository[T, K]) GetBy(ctx context.Context, column string, value any) (T, error) {
	rows, err := r.table.Select(ctx, table.Eq(column, value))
	if err != nil {
		var zero T
		return zero, fmt.Errorf("table select by %s: %w", column, err)
	}

	return first(rows)
}

func (r *tableRepository[T, K]) Update(ctx context.Context, key K, rec T) (T, error) {
	rows, err := r.table.Update(ctx, rec, table.Eq(r.keyColumn, key))
	if err != nil {
		var zero T
		return zero, fmt.Errorf("table update: %w", err)
	}

	return first(rows)
}

func (r *tableRepository[T, K]) Delete(ctx context.Context, key K) (T, error) {
	rows, err := r.table.Delete(ctx, table.Eq(r.keyColumn, key))
	if err != nil {
		var zero T
		return zero, fmt.Errorf("table delete: %w", err)
	}

	return first(rows)
}

func first[T any](rows []T) (T, error) {
	if len(rows) == 0 {
		var zero T
		return zero, ErrNotFound
	}
	return rows[0], nil
}
