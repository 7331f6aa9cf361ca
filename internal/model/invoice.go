package model

import "time"

// Invoice is issued to one client. Iva and Total are derived from Subtotal.
// Lines are stored separately and reference the invoice by FacturaID.
type Invoice struct {
	ID            int64     `json:"id" db:"id"`
	ClienteID     int64     `json:"cliente_id" db:"cliente_id"`
	Fecha         time.Time `json:"fecha" db:"fecha"`
	NumeroFactura *string   `json:"numero_factura,omitempty" db:"numero_factura"`
	Subtotal      float64   `json:"subtotal" db:"subtotal"`
	Iva           float64   `json:"iva" db:"iva"`
	Total         float64   `json:"total" db:"total"`
}

// InvoiceLine is one item of an invoice. Subtotal is Cantidad × PrecioUnitario.
type InvoiceLine struct {
	ID             int64   `json:"id" db:"id"`
	FacturaID      int64   `json:"factura_id" db:"factura_id"`
	ProductoID     *int64  `json:"producto_id,omitempty" db:"producto_id"`
	Descripcion    string  `json:"descripcion" db:"descripcion"`
	Cantidad       int     `json:"cantidad" db:"cantidad"`
	PrecioUnitario float64 `json:"precio_unitario" db:"precio_unitario"`
	Subtotal       float64 `json:"subtotal" db:"subtotal"`
}
