package repository

import (
	"github.com/tuanvumaihuynh/invoicing-api/internal/model"
	"github.com/tuanvumaihuynh/invoicing-api/internal/storage/table"
)

type (
	ClientRepository      = Repository[model.Client, string]
	ProductRepository     = Repository[model.Product, string]
	InvoiceRepository     = Repository[model.Invoice, int64]
	InvoiceLineRepository = Repository[model.InvoiceLine, int64]
)

// NewClientRepository identifies clients by identificacion.
func NewClientRepository(t table.Table[model.Client]) ClientRepository {
	return New(t, ColumnIdentificacion, func(c model.Client) string { return c.Identificacion })
}

// NewProductRepository identifies products by codigo.
func NewProductRepository(t table.Table[model.Product]) ProductRepository {
	return New(t, ColumnCodigo, func(p model.Product) string { return p.Codigo })
}

func NewInvoiceRepository(t table.Table[model.Invoice]) InvoiceRepository {
	return New(t, ColumnID, func(i model.Invoice) int64 { return i.ID })
}

func NewInvoiceLineRepository(t table.Table[model.InvoiceLine]) InvoiceLineRepository {
	return New(t, ColumnID, func(l model.InvoiceLine) int64 { return l.ID })
}
