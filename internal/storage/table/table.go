package table

import (
	"context"
	"errors"

	"github.com/tuanvumaihuynh/invoicing-api/internal/storage/db"
)

var (
	// ErrConflict is returned when a write violates a unique or foreign key constraint.
	ErrConflict = errors.New("conflicting row")

	// ErrUnfiltered is returned by Update and Delete called without filters.
	ErrUnfiltered = errors.New("update or delete requires at least one filter")
)

// Filter is an equality predicate on a single column.
type Filter struct {
	Column string
	Value  any
}

// Eq returns a filter matching rows whose column equals value.
func Eq(column string, value any) Filter {
	return Filter{Column: column, Value: value}
}

// Table is a table-scoped view of the persistence service. Every operation
// returns the affected rows. A filter matching nothing yields an empty slice
// and a nil error.
type Table[T any] interface {
	// WithDB returns a copy of the table bound to db, typically a transaction.
	WithDB(db db.DB) Table[T]

	Insert(ctx context.Context, rec T) ([]T, error)
	Select(ctx context.Context, filters ...Filter) ([]T, error)
	// Update replaces the writable columns of matching rows with rec's values.
	Update(ctx context.Context, rec T, filters ...Filter) ([]T, error)
	Delete(ctx context.Context, filters ...Filter) ([]T, error)
}

// Schema describes how records of type T map onto a table.
type Schema[T any] struct {
	// Name is the table name.
	Name string
	// Key is the generated identity column.
	Key string
	// Columns are the writable columns, in the order Values returns them.
	Columns []string
	// Unique lists writable columns with a unique constraint.
	Unique []string

	Values func(T) []any
	ID     func(T) int64
	SetID  func(*T, int64)
}

// ColumnValue returns rec's value for column.
func (s Schema[T]) ColumnValue(rec T, column string) (any, bool) {
	if column == s.Key {
		return s.ID(rec), true
	}
	values := s.Values(rec)
	for i, c := range s.Columns {
		if c == column {
			return values[i], true
		}
	}
	return nil, false
}
