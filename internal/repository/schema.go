package repository

import (
	"github.com/tuanvumaihuynh/invoicing-api/internal/model"
	"github.com/tuanvumaihuynh/invoicing-api/internal/storage/table"
)

const (
	ColumnID             = "id"
	ColumnIdentificacion = "identificacion"
	ColumnCodigo         = "codigo"
	ColumnFacturaID      = "factura_id"
)

var ClientSchema = table.Schema[model.Client]{
	Name:    "clientes",
	Key:     ColumnID,
	Columns: []string{"identificacion", "nombre", "correo", "telefono"},
	Unique:  []string{"identificacion"},
	Values: func(c model.Client) []any {
		return []any{c.Identificacion, c.Nombre, c.Correo, c.Telefono}
	},
	ID:    func(c model.Client) int64 { return c.ID },
	SetID: func(c *model.Client, id int64) { c.ID = id },
}

var ProductSchema = table.Schema[model.Product]{
	Name:    "productos",
	Key:     ColumnID,
	Columns: []string{"codigo", "nombre", "descripcion", "precio_unitario", "stock"},
	Unique:  []string{"codigo"},
	Values: func(p model.Product) []any {
		return []any{p.Codigo, p.Nombre, p.Descripcion, p.PrecioUnitario, p.Stock}
	},
	ID:    func(p model.Product) int64 { return p.ID },
	SetID: func(p *model.Product, id int64) { p.ID = id },
}

var InvoiceSchema = table.Schema[model.Invoice]{
	Name:    "factura",
	Key:     ColumnID,
	Columns: []string{"cliente_id", "fecha", "numero_factura", "subtotal", "iva", "total"},
	Unique:  []string{"numero_factura"},
	Values: func(i model.Invoice) []any {
		return []any{i.ClienteID, i.Fecha, i.NumeroFactura, i.Subtotal, i.Iva, i.Total}
	},
	ID:    func(i model.Invoice) int64 { return i.ID },
	SetID: func(i *model.Invoice, id int64) { i.ID = id },
}

var InvoiceLineSchema = table.Schema[model.InvoiceLine]{
	Name:    "detalle_factura",
	Key:     ColumnID,
	Columns: []string{"factura_id", "producto_id", "descripcion", "cantidad", "precio_unitario", "subtotal"},
	Values: func(l model.InvoiceLine) []any {
		return []any{l.FacturaID, l.ProductoID, l.Descripcion, l.Cantidad, l.PrecioUnitario, l.Subtotal}
	},
	ID:    func(l model.InvoiceLine) int64 { return l.ID },
	SetID: func(l *model.InvoiceLine, id int64) { l.ID = id },
}
