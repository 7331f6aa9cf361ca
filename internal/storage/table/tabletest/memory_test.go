package tabletest_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/invoicing-api/internal/storage/table"
	"github.com/tuanvumaihuynh/invoicing-api/internal/storage/table/tabletest"
	"github.com/tuanvumaihuynh/invoicing-api/pkg/ptr"
)

type widget struct {
	ID     int64
	Code   string
	Parent *int64
}

var widgetSchema = table.Schema[widget]{
	Name:    "widgets",
	Key:     "id",
	Columns: []string{"codigo", "parent_id"},
	Unique:  []string{"codigo"},
	Values:  func(w widget) []any { return []any{w.Code, w.Parent} },
	ID:      func(w widget) int64 { return w.ID },
	SetID:   func(w *widget, id int64) { w.ID = id },
}

func TestMemory(t *testing.T) {
	ctx := context.Background()

	t.Run("Should assign ids and keep insertion order", func(t *testing.T) {
		m := tabletest.NewMemory(widgetSchema)

		a, err := m.Insert(ctx, widget{Code: "A"})
		require.NoError(t, err)
		b, err := m.Insert(ctx, widget{Code: "B"})
		require.NoError(t, err)

		assert.Equal(t, int64(1), a[0].ID)
		assert.Equal(t, int64(2), b[0].ID)

		all, err := m.Select(ctx)
		require.NoError(t, err)
		assert.Equal(t, []widget{{ID: 1, Code: "A"}, {ID: 2, Code: "B"}}, all)
	})

	t.Run("Should return empty result on no match", func(t *testing.T) {
		m := tabletest.NewMemory(widgetSchema, widget{Code: "A"})

		rows, err := m.Select(ctx, table.Eq("codigo", "Z"))
		require.NoError(t, err)
		assert.Empty(t, rows)

		rows, err = m.Update(ctx, widget{Code: "Z"}, table.Eq("codigo", "Z"))
		require.NoError(t, err)
		assert.Empty(t, rows)

		rows, err = m.Delete(ctx, table.Eq("id", int64(99)))
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("Should compare pointer columns by value", func(t *testing.T) {
		m := tabletest.NewMemory(widgetSchema, widget{Code: "A", Parent: ptr.New(int64(7))}, widget{Code: "B"})

		rows, err := m.Select(ctx, table.Eq("parent_id", int64(7)))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "A", rows[0].Code)
	})

	t.Run("Should replace columns but keep id on update", func(t *testing.T) {
		m := tabletest.NewMemory(widgetSchema, widget{Code: "A"})

		rows, err := m.Update(ctx, widget{ID: 50, Code: "A2"}, table.Eq("codigo", "A"))
		require.NoError(t, err)
		assert.Equal(t, []widget{{ID: 1, Code: "A2"}}, rows)
		assert.Equal(t, []widget{{ID: 1, Code: "A2"}}, m.Rows())
	})

	t.Run("Should delete matching rows", func(t *testing.T) {
		m := tabletest.NewMemory(widgetSchema, widget{Code: "A"}, widget{Code: "B"})

		rows, err := m.Delete(ctx, table.Eq("codigo", "A"))
		require.NoError(t, err)
		assert.Equal(t, []widget{{ID: 1, Code: "A"}}, rows)
		assert.Equal(t, []widget{{ID: 2, Code: "B"}}, m.Rows())
	})

	t.Run("Should enforce unique columns", func(t *testing.T) {
		m := tabletest.NewMemory(widgetSchema, widget{Code: "A"}, widget{Code: "B"})

		_, err := m.Insert(ctx, widget{Code: "A"})
		assert.ErrorIs(t, err, table.ErrConflict)

		_, err = m.Update(ctx, widget{Code: "B"}, table.Eq("codigo", "A"))
		assert.ErrorIs(t, err, table.ErrConflict)

		_, err = m.Update(ctx, widget{Code: "A"}, table.Eq("codigo", "A"))
		assert.NoError(t, err)
	})

	t.Run("Should surface injected errors", func(t *testing.T) {
		m := tabletest.NewMemory(widgetSchema)
		m.Err = errors.New("connection reset")

		_, err := m.Select(ctx)
		assert.EqualError(t, err, "connection reset")
	})
}
