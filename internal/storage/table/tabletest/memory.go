// Package tabletest provides in-memory stand-ins for the storage layer.
package tabletest

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/tuanvumaihuynh/invoicing-api/internal/storage/db"
	"github.com/tuanvumaihuynh/invoicing-api/internal/storage/table"
)

var _ table.Table[struct{}] = (*Memory[struct{}])(nil)

// Memory is a table.Table kept in a slice. Rows are returned in insertion
// order, identities are assigned from a counter and Schema.Unique columns are
// enforced.
type Memory[T any] struct {
	schema table.Schema[T]

	mu     sync.Mutex
	rows   []T
	nextID int64
	// Err, when set, is returned by every operation.
	Err error
}

func NewMemory[T any](schema table.Schema[T], seed ...T) *Memory[T] {
	m := &Memory[T]{schema: schema}
	for _, rec := range seed {
		if _, err := m.Insert(context.Background(), rec); err != nil {
			panic(err)
		}
	}
	return m
}

func (m *Memory[T]) WithDB(db.DB) table.Table[T] {
	return m
}

// Rows returns a snapshot of the stored rows.
func (m *Memory[T]) Rows() []T {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]T(nil), m.rows...)
}

func (m *Memory[T]) Insert(_ context.Context, rec T) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	if err := m.checkUnique(rec, -1); err != nil {
		return nil, err
	}

	m.nextID++
	m.schema.SetID(&rec, m.nextID)
	m.rows = append(m.rows, rec)

	return []T{rec}, nil
}

func (m *Memory[T]) Select(_ context.Context, filters ...table.Filter) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	out := []T{}
	for _, rec := range m.rows {
		if m.matches(rec, filters) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *Memory[T]) Update(_ context.Context, rec T, filters ...table.Filter) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	if len(filters) == 0 {
		return nil, table.ErrUnfiltered
	}

	out := []T{}
	for i, row := range m.rows {
		if !m.matches(row, filters) {
			continue
		}
		if err := m.checkUnique(rec, i); err != nil {
			return nil, err
		}

		updated := rec
		m.schema.SetID(&updated, m.schema.ID(row))
		m.rows[i] = updated
		out = append(out, updated)
	}
	return out, nil
}

func (m *Memory[T]) Delete(_ context.Context, filters ...table.Filter) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	if len(filters) == 0 {
		return nil, table.ErrUnfiltered
	}

	out := []T{}
	kept := m.rows[:0]
	for _, row := range m.rows {
		if m.matches(row, filters) {
			out = append(out, row)
			continue
		}
		kept = append(kept, row)
	}
	m.rows = kept

	return out, nil
}

func (m *Memory[T]) matches(rec T, filters []table.Filter) bool {
	for _, f := range filters {
		v, ok := m.schema.ColumnValue(rec, f.Column)
		if !ok || !equal(v, f.Value) {
			return false
		}
	}
	return true
}

// checkUnique reports a conflict with any row other than the one at skip.
func (m *Memory[T]) checkUnique(rec T, skip int) error {
	for _, column := range m.schema.Unique {
		v, _ := m.schema.ColumnValue(rec, column)
		if deref(v) == nil {
			continue
		}
		for i, row := range m.rows {
			if i == skip {
				continue
			}
			if other, _ := m.schema.ColumnValue(row, column); equal(v, other) {
				return fmt.Errorf("insert %s: %w (%s_%s_key)", m.schema.Name, table.ErrConflict, m.schema.Name, column)
			}
		}
	}
	return nil
}

func equal(a, b any) bool {
	return reflect.DeepEqual(deref(a), deref(b))
}

func deref(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer {
		return v
	}
	if rv.IsNil() {
		return nil
	}
	return rv.Elem().Interface()
}
