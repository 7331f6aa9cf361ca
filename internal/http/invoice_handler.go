package http

import (
	"fmt"
	"net/http"

	"github.com/tuanvumaihuynh/invoicing-api/internal/service"
)

type invoiceHandler struct {
	invoiceSvc     service.InvoiceService
	invoiceLineSvc service.InvoiceLineService
}

func newInvoiceHandler(invoiceSvc service.InvoiceService, invoiceLineSvc service.InvoiceLineService) *invoiceHandler {
	return &invoiceHandler{
		invoiceSvc:     invoiceSvc,
		invoiceLineSvc: invoiceLineSvc,
	}
}

func (h *invoiceHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) error {
	params, err := decodeJSON[service.InvoiceParams](r)
	if err != nil {
		return err
	}

	invoice, err := h.invoiceSvc.CreateInvoice(r.Context(), params)
	if err != nil {
		return fmt.Errorf("invoice service create invoice: %w", err)
	}

	return writeJSON(w, http.StatusOK, invoice)
}

func (h *invoiceHandler) ListInvoices(w http.ResponseWriter, r *http.Request) error {
	invoices, err := h.invoiceSvc.ListInvoices(r.Context())
	if err != nil {
		return fmt.Errorf("invoice service list invoices: %w", err)
	}

	return writeJSON(w, http.StatusOK, invoices)
}

func (h *invoiceHandler) GetInvoice(w http.ResponseWriter, r *http.Request) error {
	id, err := pathInt64(r, "id")
	if err != nil {
		return err
	}

	invoice, err := h.invoiceSvc.GetInvoice(r.Context(), id)
	if err != nil {
		return fmt.Errorf("invoice service get invoice: %w", err)
	}

	return writeJSON(w, http.StatusOK, invoice)
}

func (h *invoiceHandler) ListInvoiceLines(w http.ResponseWriter, r *http.Request) error {
	id, err := pathInt64(r, "id")
	if err != nil {
		return err
	}

	lines, err := h.invoiceLineSvc.ListInvoiceLinesByInvoice(r.Context(), id)
	if err != nil {
		return fmt.Errorf("invoice line service list invoice lines by invoice: %w", err)
	}

	return writeJSON(w, http.StatusOK, lines)
}

func (h *invoiceHandler) UpdateInvoice(w http.ResponseWriter, r *http.Request) error {
	id, err := pathInt64(r, "id")
	if err != nil {
		return err
	}

	params, err := decodeJSON[service.InvoiceParams](r)
	if err != nil {
		return err
	}

	invoice, err := h.invoiceSvc.UpdateInvoice(r.Context(), id, params)
	if err != nil {
		return fmt.Errorf("invoice service update invoice: %w", err)
	}

	return writeJSON(w, http.StatusOK, invoice)
}

func (h *invoiceHandler) DeleteInvoice(w http.ResponseWriter, r *http.Request) error {
	id, err := pathInt64(r, "id")
	if err != nil {
		return err
	}

	invoice, err := h.invoiceSvc.DeleteInvoice(r.Context(), id)
	if err != nil {
		return fmt.Errorf("invoice service delete invoice: %w", err)
	}

	return writeJSON(w, http.StatusOK, invoice)
}
