package service

import (
	"context"
	"fmt"

	"github.com/tuanvumaihuynh/invoicing-api/internal/apperr"
	"github.com/tuanvumaihuynh/invoicing-api/internal/billing"
	"github.com/tuanvumaihuynh/invoicing-api/internal/model"
	"github.com/tuanvumaihuynh/invoicing-api/internal/repository"
	"github.com/tuanvumaihuynh/invoicing-api/pkg/ptr"
	"github.com/tuanvumaihuynh/invoicing-api/pkg/validator"
)

type ProductParams struct {
	Codigo         string  `json:"codigo" validate:"required,min=3,max=20"`
	Nombre         string  `json:"nombre" validate:"required,notblank,min=4,max=100"`
	Descripcion    *string `json:"descripcion,omitempty" validate:"omitempty,min=10,max=200"`
	PrecioUnitario float64 `json:"precio_unitario" validate:"gt=0,amount"`
	Stock          *int    `json:"stock" validate:"required,gte=0"`
}

// normalized treats an empty descripcion as absent.
func (p ProductParams) normalized() ProductParams {
	if p.Descripcion != nil && *p.Descripcion == "" {
		p.Descripcion = nil
	}
	return p
}

func (p ProductParams) toModel() model.Product {
	return model.Product{
		Codigo:         p.Codigo,
		Nombre:         p.Nombre,
		Descripcion:    p.Descripcion,
		PrecioUnitario: billing.Round(p.PrecioUnitario),
		Stock:          ptr.Deref(p.Stock),
	}
}

type ProductService interface {
	CreateProduct(ctx context.Context, params ProductParams) (model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProductByCode(ctx context.Context, codigo string) (model.Product, error)
	GetProductByID(ctx context.Context, id int64) (model.Product, error)
	UpdateProduct(ctx context.Context, codigo string, params ProductParams) (model.Product, error)
	DeleteProduct(ctx context.Context, codigo string) (model.Product, error)
}

type productService struct {
	validator   validator.Validator
	productRepo repository.ProductRepository
}

func NewProductService(v validator.Validator, productRepo repository.ProductRepository) ProductService {
	return &productService{
		validator:   v,
		productRepo: productRepo,
	}
}

func (s *productService) CreateProduct(ctx context.Context, params ProductParams) (model.Product, error) {
	params = params.normalized()
	if err := validate(s.validator, params); err != nil {
		return model.Product{}, err
	}

	product, err := s.productRepo.Create(ctx, params.toModel())
	if err != nil {
		return model.Product{}, storageErr("product repository create", err, apperr.ProductNotFoundErr)
	}

	return product, nil
}

func (s *productService) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("product repository list: %w", err)
	}

	return products, nil
}

func (s *productService) GetProductByCode(ctx context.Context, codigo string) (model.Product, error) {
	product, err := s.productRepo.Get(ctx, codigo)
	if err != nil {
		return model.Product{}, storageErr("product repository get", err, apperr.ProductNotFoundErr)
	}

	return product, nil
}

func (s *productService) GetProductByID(ctx context.Context, id int64) (model.Product, error) {
	product, err := s.productRepo.GetBy(ctx, repository.ColumnID, id)
	if err != nil {
		return model.Product{}, storageErr("product repository get by id", err, apperr.ProductNotFoundErr)
	}

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, codigo string, params ProductParams) (model.Product, error) {
	params = params.normalized()
	if err := validate(s.validator, params); err != nil {
		return model.Product{}, err
	}

	if params.Codigo != codigo {
		return model.Product{}, apperr.ProductCodeMismatchErr
	}

	product, err := s.productRepo.Update(ctx, codigo, params.toModel())
	if err != nil {
		return model.Product{}, storageErr("product repository update", err, apperr.ProductNotFoundErr)
	}

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, codigo string) (model.Product, error) {
	product, err := s.productRepo.Delete(ctx, codigo)
	if err != nil {
		return model.Product{}, storageErr("product repository delete", err, apperr.ProductNotFoundErr)
	}

	return product, nil
}
