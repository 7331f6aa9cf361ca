package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/invoicing-api/internal/apperr"
	"github.com/tuanvumaihuynh/invoicing-api/internal/service"
	"github.com/tuanvumaihuynh/invoicing-api/pkg/ptr"
	"github.com/tuanvumaihuynh/invoicing-api/pkg/validator"
)

func validProductParams() service.ProductParams {
	return service.ProductParams{
		Codigo:         "P-001",
		Nombre:         "Teclado mecánico",
		Descripcion:    ptr.New("Teclado con switches marrones"),
		PrecioUnitario: 120.75,
		Stock:          ptr.New(10),
	}
}

func TestProductService_CreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Should create product", func(t *testing.T) {
		f := newFixture()
		svc := service.NewProductService(f.v, f.productRepo())

		product, err := svc.CreateProduct(ctx, validProductParams())
		require.NoError(t, err)

		assert.NotZero(t, product.ID)
		assert.Equal(t, "P-001", product.Codigo)
		assert.Equal(t, 10, product.Stock)
	})

	t.Run("Should store empty descripcion as absent", func(t *testing.T) {
		f := newFixture()
		svc := service.NewProductService(f.v, f.productRepo())

		params := validProductParams()
		params.Descripcion = ptr.New("")
		product, err := svc.CreateProduct(ctx, params)
		require.NoError(t, err)

		assert.Nil(t, product.Descripcion)
	})

	t.Run("Should accept zero stock", func(t *testing.T) {
		f := newFixture()
		svc := service.NewProductService(f.v, f.productRepo())

		params := validProductParams()
		params.Stock = ptr.New(0)
		_, err := svc.CreateProduct(ctx, params)
		assert.NoError(t, err)
	})

	t.Run("Should reject invalid fields", func(t *testing.T) {
		f := newFixture()
		svc := service.NewProductService(f.v, f.productRepo())

		params := validProductParams()
		params.Descripcion = ptr.New("short")
		params.PrecioUnitario = 0
		params.Stock = ptr.New(-1)

		_, err := svc.CreateProduct(ctx, params)
		require.ErrorIs(t, err, apperr.ValidationErr)
		assert.Empty(t, f.products.Rows())

		fields := map[string]string{}
		for _, v := range validator.Violations(err) {
			fields[v.Field] = v.Constraint
		}
		assert.Equal(t, map[string]string{
			"descripcion":     "min=10",
			"precio_unitario": "gt=0",
			"stock":           "gte=0",
		}, fields)
	})

	t.Run("Should require stock", func(t *testing.T) {
		f := newFixture()
		svc := service.NewProductService(f.v, f.productRepo())

		params := validProductParams()
		params.Stock = nil
		_, err := svc.CreateProduct(ctx, params)
		assert.ErrorIs(t, err, apperr.ValidationErr)
	})
}

func TestProductService_Lookups(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	svc := service.NewProductService(f.v, f.productRepo())

	created, err := svc.CreateProduct(ctx, validProductParams())
	require.NoError(t, err)

	t.Run("Should get product by code", func(t *testing.T) {
		product, err := svc.GetProductByCode(ctx, "P-001")
		require.NoError(t, err)
		assert.Equal(t, created, product)
	})

	t.Run("Should get product by id", func(t *testing.T) {
		product, err := svc.GetProductByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, product)
	})

	t.Run("Should return not found for unknown code and id", func(t *testing.T) {
		_, err := svc.GetProductByCode(ctx, "NOPE")
		assert.ErrorIs(t, err, apperr.ProductNotFoundErr)

		_, err = svc.GetProductByID(ctx, created.ID+100)
		assert.ErrorIs(t, err, apperr.ProductNotFoundErr)
	})
}

func TestProductService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Should update product keeping its id", func(t *testing.T) {
		f := newFixture()
		svc := service.NewProductService(f.v, f.productRepo())
		created, err := svc.CreateProduct(ctx, validProductParams())
		require.NoError(t, err)

		params := validProductParams()
		params.Stock = ptr.New(3)
		updated, err := svc.UpdateProduct(ctx, "P-001", params)
		require.NoError(t, err)

		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, 3, updated.Stock)
	})

	t.Run("Should reject code mismatch", func(t *testing.T) {
		f := newFixture()
		svc := service.NewProductService(f.v, f.productRepo())

		params := validProductParams()
		params.Codigo = "P-002"
		_, err := svc.UpdateProduct(ctx, "P-001", params)
		assert.ErrorIs(t, err, apperr.ProductCodeMismatchErr)
	})

	t.Run("Should return not found when updating or deleting unknown product", func(t *testing.T) {
		f := newFixture()
		svc := service.NewProductService(f.v, f.productRepo())

		_, err := svc.UpdateProduct(ctx, "P-001", validProductParams())
		assert.ErrorIs(t, err, apperr.ProductNotFoundErr)

		_, err = svc.DeleteProduct(ctx, "P-001")
		assert.ErrorIs(t, err, apperr.ProductNotFoundErr)
	})

	t.Run("Should delete product", func(t *testing.T) {
		f := newFixture()
		svc := service.NewProductService(f.v, f.productRepo())
		created, err := svc.CreateProduct(ctx, validProductParams())
		require.NoError(t, err)

		deleted, err := svc.DeleteProduct(ctx, "P-001")
		require.NoError(t, err)
		assert.Equal(t, created, deleted)
		assert.Empty(t, f.products.Rows())
	})
}
