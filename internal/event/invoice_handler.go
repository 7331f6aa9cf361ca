package event

import (
	"context"
	"log/slog"
	"time"
)

const (
	TopicInvoiceCreated     = "invoice.created"
	TopicInvoiceLineCreated = "invoice_line.created"
)

type InvoiceCreatedEvent struct {
	InvoiceID     int64     `json:"factura_id"`
	ClienteID     int64     `json:"cliente_id"`
	NumeroFactura *string   `json:"numero_factura,omitempty"`
	Fecha         time.Time `json:"fecha"`
	Subtotal      float64   `json:"subtotal"`
	Iva           float64   `json:"iva"`
	Total         float64   `json:"total"`
}

type InvoiceLineCreatedEvent struct {
	InvoiceLineID int64   `json:"detalle_id"`
	InvoiceID     int64   `json:"factura_id"`
	ProductoID    *int64  `json:"producto_id,omitempty"`
	Cantidad      int     `json:"cantidad"`
	Subtotal      float64 `json:"subtotal"`
}

func (s *Service) handleInvoiceCreatedEvent(ctx context.Context, ev InvoiceCreatedEvent) error {
	s.logger.InfoContext(ctx, "invoice issued",
		slog.Int64("factura_id", ev.InvoiceID),
		slog.Int64("cliente_id", ev.ClienteID),
		slog.Float64("total", ev.Total),
	)
	return nil
}

func (s *Service) handleInvoiceLineCreatedEvent(ctx context.Context, ev InvoiceLineCreatedEvent) error {
	s.logger.InfoContext(ctx, "invoice line added",
		slog.Int64("detalle_id", ev.InvoiceLineID),
		slog.Int64("factura_id", ev.InvoiceID),
		slog.Float64("subtotal", ev.Subtotal),
	)
	return nil
}
