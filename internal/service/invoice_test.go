package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/invoicing-api/internal/apperr"
	"github.com/tuanvumaihuynh/invoicing-api/internal/event"
	"github.com/tuanvumaihuynh/invoicing-api/internal/model"
	"github.com/tuanvumaihuynh/invoicing-api/internal/service"
	"github.com/tuanvumaihuynh/invoicing-api/pkg/ptr"
	"github.com/tuanvumaihuynh/invoicing-api/pkg/validator"
)

func newInvoiceService(f *fixture) service.InvoiceService {
	return service.NewInvoiceService(f.db, f.v, f.clientRepo(), f.invoiceRepo(), f.outbox)
}

func seedClient(t *testing.T, f *fixture) model.Client {
	t.Helper()

	rows, err := f.clients.Insert(context.Background(), model.Client{
		Identificacion: "1234567890",
		Nombre:         "María",
		Correo:         "maria@example.com",
		Telefono:       "0991234567",
	})
	require.NoError(t, err)
	return rows[0]
}

func validInvoiceParams(clientID int64) service.InvoiceParams {
	return service.InvoiceParams{
		ClienteID:     clientID,
		Fecha:         "2024-05-01",
		NumeroFactura: ptr.New("F-0001"),
		Subtotal:      1000,
	}
}

func TestInvoiceService_CreateInvoice(t *testing.T) {
	ctx := context.Background()

	t.Run("Should derive iva and total", func(t *testing.T) {
		f := newFixture()
		client := seedClient(t, f)
		svc := newInvoiceService(f)

		invoice, err := svc.CreateInvoice(ctx, validInvoiceParams(client.ID))
		require.NoError(t, err)

		assert.NotZero(t, invoice.ID)
		assert.Equal(t, 1000.0, invoice.Subtotal)
		assert.Equal(t, 120.0, invoice.Iva)
		assert.Equal(t, 1120.0, invoice.Total)
		assert.Equal(t, 1, f.db.Txs)
	})

	t.Run("Should enqueue invoice created event", func(t *testing.T) {
		f := newFixture()
		client := seedClient(t, f)
		svc := newInvoiceService(f)

		invoice, err := svc.CreateInvoice(ctx, validInvoiceParams(client.ID))
		require.NoError(t, err)

		require.Equal(t, []string{event.TopicInvoiceCreated}, f.outbox.topics())

		var ev event.InvoiceCreatedEvent
		require.NoError(t, json.Unmarshal(f.outbox.msgs[0].Payload, &ev))
		assert.Equal(t, invoice.ID, ev.InvoiceID)
		assert.Equal(t, 1120.0, ev.Total)
	})

	t.Run("Should omit empty numero_factura", func(t *testing.T) {
		f := newFixture()
		client := seedClient(t, f)
		svc := newInvoiceService(f)

		params := validInvoiceParams(client.ID)
		params.NumeroFactura = ptr.New("")
		invoice, err := svc.CreateInvoice(ctx, params)
		require.NoError(t, err)

		assert.Nil(t, invoice.NumeroFactura)
	})

	t.Run("Should reject unknown client", func(t *testing.T) {
		f := newFixture()
		svc := newInvoiceService(f)

		_, err := svc.CreateInvoice(ctx, validInvoiceParams(42))
		require.ErrorIs(t, err, apperr.ClientDoesNotExistErr)

		assert.Empty(t, f.invoices.Rows())
		assert.Empty(t, f.outbox.topics())
	})

	t.Run("Should store fecha in UTC for every accepted format", func(t *testing.T) {
		tests := []struct {
			fecha string
			want  time.Time
		}{
			{"2024-05-01T10:00:00Z", time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
			{"2024-05-01T10:00:00-05:00", time.Date(2024, 5, 1, 15, 0, 0, 0, time.UTC)},
			{"2024-05-01T10:00:00", time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
			{"2024-05-01", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		}
		for _, tt := range tests {
			t.Run(tt.fecha, func(t *testing.T) {
				f := newFixture()
				client := seedClient(t, f)
				svc := newInvoiceService(f)

				params := validInvoiceParams(client.ID)
				params.Fecha = tt.fecha
				invoice, err := svc.CreateInvoice(ctx, params)
				require.NoError(t, err)
				assert.True(t, tt.want.Equal(invoice.Fecha), "got %s", invoice.Fecha)
			})
		}
	})

	t.Run("Should round subtotal to cents before deriving totals", func(t *testing.T) {
		f := newFixture()
		client := seedClient(t, f)
		svc := newInvoiceService(f)

		params := validInvoiceParams(client.ID)
		params.Subtotal = 100.004
		invoice, err := svc.CreateInvoice(ctx, params)
		require.NoError(t, err)

		assert.Equal(t, 100.0, invoice.Subtotal)
		assert.Equal(t, 12.0, invoice.Iva)
		assert.Equal(t, 112.0, invoice.Total)
	})

	t.Run("Should reject sub-cent subtotal", func(t *testing.T) {
		f := newFixture()
		client := seedClient(t, f)
		svc := newInvoiceService(f)

		params := validInvoiceParams(client.ID)
		params.Subtotal = 0.001
		_, err := svc.CreateInvoice(ctx, params)
		require.ErrorIs(t, err, apperr.ValidationErr)
		assert.Equal(t, []validator.FieldViolation{{
			Field:      "subtotal",
			Constraint: "amount",
			Value:      0.001,
			Message:    "must be at least 0.01 once rounded to cents",
		}}, validator.Violations(err))
		assert.Zero(t, f.db.Txs)
	})

	t.Run("Should reject malformed fecha", func(t *testing.T) {
		f := newFixture()
		client := seedClient(t, f)
		svc := newInvoiceService(f)

		params := validInvoiceParams(client.ID)
		params.Fecha = "01/05/2024"
		_, err := svc.CreateInvoice(ctx, params)
		require.ErrorIs(t, err, apperr.ValidationErr)

		violations := validator.Violations(err)
		require.Len(t, violations, 1)
		assert.Equal(t, "fecha", violations[0].Field)
		assert.Equal(t, "isodatetime", violations[0].Constraint)
		assert.Equal(t, "01/05/2024", violations[0].Value)
	})

	t.Run("Should reject invalid invoice", func(t *testing.T) {
		f := newFixture()
		svc := newInvoiceService(f)

		params := validInvoiceParams(0)
		params.Subtotal = -1
		params.NumeroFactura = ptr.New("F1")

		_, err := svc.CreateInvoice(ctx, params)
		require.ErrorIs(t, err, apperr.ValidationErr)
		assert.Zero(t, f.db.Txs)
	})

	t.Run("Should fail when outbox write fails", func(t *testing.T) {
		f := newFixture()
		client := seedClient(t, f)
		f.outbox.err = errors.New("outbox unavailable")
		svc := newInvoiceService(f)

		_, err := svc.CreateInvoice(ctx, validInvoiceParams(client.ID))
		assert.ErrorIs(t, err, f.outbox.err)
	})
}

func TestInvoiceService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	client := seedClient(t, f)
	svc := newInvoiceService(f)

	created, err := svc.CreateInvoice(ctx, validInvoiceParams(client.ID))
	require.NoError(t, err)

	t.Run("Should get invoice by id", func(t *testing.T) {
		invoice, err := svc.GetInvoice(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, invoice)
	})

	t.Run("Should list invoices", func(t *testing.T) {
		invoices, err := svc.ListInvoices(ctx)
		require.NoError(t, err)
		assert.Equal(t, []model.Invoice{created}, invoices)
	})

	t.Run("Should reject id mismatch", func(t *testing.T) {
		params := validInvoiceParams(client.ID)
		params.ID = created.ID + 1
		_, err := svc.UpdateInvoice(ctx, created.ID, params)
		assert.ErrorIs(t, err, apperr.InvoiceIDMismatchErr)
	})

	t.Run("Should recompute totals on update", func(t *testing.T) {
		params := validInvoiceParams(client.ID)
		params.ID = created.ID
		params.Subtotal = 50.5
		updated, err := svc.UpdateInvoice(ctx, created.ID, params)
		require.NoError(t, err)

		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, 6.06, updated.Iva)
		assert.Equal(t, 56.56, updated.Total)
	})

	t.Run("Should return not found for unknown invoice", func(t *testing.T) {
		_, err := svc.GetInvoice(ctx, 999)
		assert.ErrorIs(t, err, apperr.InvoiceNotFoundErr)

		params := validInvoiceParams(client.ID)
		params.ID = 999
		_, err = svc.UpdateInvoice(ctx, 999, params)
		assert.ErrorIs(t, err, apperr.InvoiceNotFoundErr)
	})

	t.Run("Should delete invoice", func(t *testing.T) {
		deleted, err := svc.DeleteInvoice(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, deleted.ID)

		_, err = svc.DeleteInvoice(ctx, created.ID)
		assert.ErrorIs(t, err, apperr.InvoiceNotFoundErr)
	})
}
