package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/invoicing-api/internal/apperr"
	"github.com/tuanvumaihuynh/invoicing-api/internal/model"
	"github.com/tuanvumaihuynh/invoicing-api/internal/service"
	"github.com/tuanvumaihuynh/invoicing-api/pkg/validator"
)

func validClientParams() service.ClientParams {
	return service.ClientParams{
		Identificacion: "1234567890",
		Nombre:         "María",
		Correo:         "maria@example.com",
		Telefono:       "0991234567",
	}
}

func TestClientService_CreateClient(t *testing.T) {
	ctx := context.Background()

	t.Run("Should create client with generated id", func(t *testing.T) {
		f := newFixture()
		svc := service.NewClientService(f.v, f.clientRepo())

		client, err := svc.CreateClient(ctx, validClientParams())
		require.NoError(t, err)

		assert.NotZero(t, client.ID)
		assert.Equal(t, "1234567890", client.Identificacion)
		assert.Equal(t, "María", client.Nombre)
		assert.Len(t, f.clients.Rows(), 1)
	})

	t.Run("Should reject invalid client before storing it", func(t *testing.T) {
		f := newFixture()
		svc := service.NewClientService(f.v, f.clientRepo())

		params := validClientParams()
		params.Identificacion = "123"
		params.Correo = "not-an-email"

		_, err := svc.CreateClient(ctx, params)
		require.ErrorIs(t, err, apperr.ValidationErr)
		assert.Empty(t, f.clients.Rows())

		fields := map[string]string{}
		for _, v := range validator.Violations(err) {
			fields[v.Field] = v.Constraint
		}
		assert.Equal(t, map[string]string{"identificacion": "len=10", "correo": "email"}, fields)
	})

	t.Run("Should report duplicate identificacion as conflict", func(t *testing.T) {
		f := newFixture()
		svc := service.NewClientService(f.v, f.clientRepo())

		_, err := svc.CreateClient(ctx, validClientParams())
		require.NoError(t, err)

		_, err = svc.CreateClient(ctx, validClientParams())
		assert.ErrorIs(t, err, apperr.ConflictErr)
	})

	t.Run("Should wrap storage failures", func(t *testing.T) {
		f := newFixture()
		f.clients.Err = errors.New("connection refused")
		svc := service.NewClientService(f.v, f.clientRepo())

		_, err := svc.CreateClient(ctx, validClientParams())
		assert.ErrorIs(t, err, f.clients.Err)
	})
}

func TestClientService_GetListDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	svc := service.NewClientService(f.v, f.clientRepo())

	created, err := svc.CreateClient(ctx, validClientParams())
	require.NoError(t, err)

	t.Run("Should get client by identificacion", func(t *testing.T) {
		client, err := svc.GetClient(ctx, "1234567890")
		require.NoError(t, err)
		assert.Equal(t, created, client)
	})

	t.Run("Should return not found for unknown identificacion", func(t *testing.T) {
		_, err := svc.GetClient(ctx, "0000000000")
		assert.ErrorIs(t, err, apperr.ClientNotFoundErr)
	})

	t.Run("Should list clients idempotently", func(t *testing.T) {
		first, err := svc.ListClients(ctx)
		require.NoError(t, err)
		second, err := svc.ListClients(ctx)
		require.NoError(t, err)

		assert.Equal(t, []model.Client{created}, first)
		assert.Equal(t, first, second)
	})

	t.Run("Should return not found when deleting unknown client", func(t *testing.T) {
		_, err := svc.DeleteClient(ctx, "0000000000")
		assert.ErrorIs(t, err, apperr.ClientNotFoundErr)
	})

	t.Run("Should delete client and return it", func(t *testing.T) {
		deleted, err := svc.DeleteClient(ctx, "1234567890")
		require.NoError(t, err)
		assert.Equal(t, created, deleted)

		_, err = svc.GetClient(ctx, "1234567890")
		assert.ErrorIs(t, err, apperr.ClientNotFoundErr)
	})
}

func TestClientService_UpdateClient(t *testing.T) {
	ctx := context.Background()

	t.Run("Should replace mutable fields", func(t *testing.T) {
		f := newFixture()
		svc := service.NewClientService(f.v, f.clientRepo())
		created, err := svc.CreateClient(ctx, validClientParams())
		require.NoError(t, err)

		params := validClientParams()
		params.Nombre = "María José"
		updated, err := svc.UpdateClient(ctx, "1234567890", params)
		require.NoError(t, err)

		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "María José", updated.Nombre)
	})

	t.Run("Should reject identificacion mismatch and leave storage untouched", func(t *testing.T) {
		f := newFixture()
		svc := service.NewClientService(f.v, f.clientRepo())
		created, err := svc.CreateClient(ctx, validClientParams())
		require.NoError(t, err)

		params := validClientParams()
		params.Identificacion = "0987654321"
		_, err = svc.UpdateClient(ctx, "1234567890", params)
		require.ErrorIs(t, err, apperr.ClientIdentificationMismatchErr)

		assert.Equal(t, []model.Client{created}, f.clients.Rows())
	})

	t.Run("Should validate before comparing keys", func(t *testing.T) {
		f := newFixture()
		svc := service.NewClientService(f.v, f.clientRepo())

		params := validClientParams()
		params.Identificacion = "short"
		_, err := svc.UpdateClient(ctx, "1234567890", params)
		assert.ErrorIs(t, err, apperr.ValidationErr)
	})

	t.Run("Should return not found for unknown client", func(t *testing.T) {
		f := newFixture()
		svc := service.NewClientService(f.v, f.clientRepo())

		_, err := svc.UpdateClient(ctx, "1234567890", validClientParams())
		assert.ErrorIs(t, err, apperr.ClientNotFoundErr)
	})
}
