package http

import (
	"fmt"
	"net/http"

	"github.com/tuanvumaihuynh/invoicing-api/internal/service"
)

type invoiceLineHandler struct {
	invoiceLineSvc service.InvoiceLineService
}

func newInvoiceLineHandler(invoiceLineSvc service.InvoiceLineService) *invoiceLineHandler {
	return &invoiceLineHandler{
		invoiceLineSvc: invoiceLineSvc,
	}
}

func (h *invoiceLineHandler) CreateInvoiceLine(w http.ResponseWriter, r *http.Request) error {
	params, err := decodeJSON[service.InvoiceLineParams](r)
	if err != nil {
		return err
	}

	line, err := h.invoiceLineSvc.CreateInvoiceLine(r.Context(), params)
	if err != nil {
		return fmt.Errorf("invoice line service create invoice line: %w", err)
	}

	return writeJSON(w, http.StatusOK, line)
}

func (h *invoiceLineHandler) ListInvoiceLines(w http.ResponseWriter, r *http.Request) error {
	lines, err := h.invoiceLineSvc.ListInvoiceLines(r.Context())
	if err != nil {
		return fmt.Errorf("invoice line service list invoice lines: %w", err)
	}

	return writeJSON(w, http.StatusOK, lines)
}

func (h *invoiceLineHandler) GetInvoiceLine(w http.ResponseWriter, r *http.Request) error {
	id, err := pathInt64(r, "id")
	if err != nil {
		return err
	}

	line, err := h.invoiceLineSvc.GetInvoiceLine(r.Context(), id)
	if err != nil {
		return fmt.Errorf("invoice line service get invoice line: %w", err)
	}

	return writeJSON(w, http.StatusOK, line)
}
