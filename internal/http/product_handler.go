package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tuanvumaihuynh/invoicing-api/internal/service"
)

type productHandler struct {
	productSvc service.ProductService
}

func newProductHandler(productSvc service.ProductService) *productHandler {
	return &productHandler{
		productSvc: productSvc,
	}
}

func (h *productHandler) CreateProduct(w http.ResponseWriter, r *http.Request) error {
	params, err := decodeJSON[service.ProductParams](r)
	if err != nil {
		return err
	}

	product, err := h.productSvc.CreateProduct(r.Context(), params)
	if err != nil {
		return fmt.Errorf("product service create product: %w", err)
	}

	return writeJSON(w, http.StatusOK, product)
}

func (h *productHandler) ListProducts(w http.ResponseWriter, r *http.Request) error {
	products, err := h.productSvc.ListProducts(r.Context())
	if err != nil {
		return fmt.Errorf("product service list products: %w", err)
	}

	return writeJSON(w, http.StatusOK, products)
}

func (h *productHandler) GetProduct(w http.ResponseWriter, r *http.Request) error {
	product, err := h.productSvc.GetProductByCode(r.Context(), chi.URLParam(r, "codigo"))
	if err != nil {
		return fmt.Errorf("product service get product by code: %w", err)
	}

	return writeJSON(w, http.StatusOK, product)
}

func (h *productHandler) GetProductByID(w http.ResponseWriter, r *http.Request) error {
	id, err := pathInt64(r, "id")
	if err != nil {
		return err
	}

	product, err := h.productSvc.GetProductByID(r.Context(), id)
	if err != nil {
		return fmt.Errorf("product service get product by id: %w", err)
	}

	return writeJSON(w, http.StatusOK, product)
}

func (h *productHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) error {
	params, err := decodeJSON[service.ProductParams](r)
	if err != nil {
		return err
	}

	product, err := h.productSvc.UpdateProduct(r.Context(), chi.URLParam(r, "codigo"), params)
	if err != nil {
		return fmt.Errorf("product service update product: %w", err)
	}

	return writeJSON(w, http.StatusOK, product)
}

func (h *productHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) error {
	product, err := h.productSvc.DeleteProduct(r.Context(), chi.URLParam(r, "codigo"))
	if err != nil {
		return fmt.Errorf("product service delete product: %w", err)
	}

	return writeJSON(w, http.StatusOK, product)
}
