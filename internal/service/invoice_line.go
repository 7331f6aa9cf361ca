package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tuanvumaihuynh/invoicing-api/internal/apperr"
	"github.com/tuanvumaihuynh/invoicing-api/internal/billing"
	"github.com/tuanvumaihuynh/invoicing-api/internal/event"
	"github.com/tuanvumaihuynh/invoicing-api/internal/model"
	"github.com/tuanvumaihuynh/invoicing-api/internal/repository"
	"github.com/tuanvumaihuynh/invoicing-api/internal/storage/db"
	"github.com/tuanvumaihuynh/invoicing-api/pkg/validator"
)

// InvoiceLineParams is a line as sent by clients. Subtotal is not read, it is
// always derived from cantidad and precio_unitario rounded to cents.
type InvoiceLineParams struct {
	FacturaID      int64   `json:"factura_id" validate:"required,gt=0"`
	ProductoID     *int64  `json:"producto_id,omitempty" validate:"omitempty,gt=0"`
	Descripcion    string  `json:"descripcion" validate:"required,notblank,min=3,max=200"`
	Cantidad       int     `json:"cantidad" validate:"gt=0"`
	PrecioUnitario float64 `json:"precio_unitario" validate:"gt=0,amount"`
}

func (p InvoiceLineParams) toModel() model.InvoiceLine {
	return model.InvoiceLine{
		FacturaID:      p.FacturaID,
		ProductoID:     p.ProductoID,
		Descripcion:    p.Descripcion,
		Cantidad:       p.Cantidad,
		PrecioUnitario: billing.Round(p.PrecioUnitario),
		Subtotal:       billing.LineSubtotal(p.Cantidad, p.PrecioUnitario),
	}
}

type InvoiceLineService interface {
	CreateInvoiceLine(ctx context.Context, params InvoiceLineParams) (model.InvoiceLine, error)
	ListInvoiceLines(ctx context.Context) ([]model.InvoiceLine, error)
	GetInvoiceLine(ctx context.Context, id int64) (model.InvoiceLine, error)
	// ListInvoiceLinesByInvoice returns the lines of an existing invoice.
	ListInvoiceLinesByInvoice(ctx context.Context, invoiceID int64) ([]model.InvoiceLine, error)
}

type invoiceLineService struct {
	db              db.DB
	validator       validator.Validator
	invoiceRepo     repository.InvoiceRepository
	productRepo     repository.ProductRepository
	invoiceLineRepo repository.InvoiceLineRepository
	outboxMsgRepo   repository.OutboxMsgRepository
}

func NewInvoiceLineService(
	db db.DB,
	v validator.Validator,
	invoiceRepo repository.InvoiceRepository,
	productRepo repository.ProductRepository,
	invoiceLineRepo repository.InvoiceLineRepository,
	outboxMsgRepo repository.OutboxMsgRepository,
) InvoiceLineService {
	return &invoiceLineService{
		db:              db,
		validator:       v,
		invoiceRepo:     invoiceRepo,
		productRepo:     productRepo,
		invoiceLineRepo: invoiceLineRepo,
		outboxMsgRepo:   outboxMsgRepo,
	}
}

func (s *invoiceLineService) CreateInvoiceLine(ctx context.Context, params InvoiceLineParams) (model.InvoiceLine, error) {
	if err := validate(s.validator, params); err != nil {
		return model.InvoiceLine{}, err
	}

	var line model.InvoiceLine
	if err := s.db.WithTx(ctx, func(db db.DB) error {
		_, err := s.invoiceRepo.WithDB(db).Get(ctx, params.FacturaID)
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.InvoiceDoesNotExistErr.WrapParent(err)
		}
		if err != nil {
			return fmt.Errorf("invoice repository get: %w", err)
		}

		if params.ProductoID != nil {
			_, err := s.productRepo.WithDB(db).GetBy(ctx, repository.ColumnID, *params.ProductoID)
			if errors.Is(err, repository.ErrNotFound) {
				return apperr.ProductDoesNotExistErr.WrapParent(err)
			}
			if err != nil {
				return fmt.Errorf("product repository get by id: %w", err)
			}
		}

		line, err = s.invoiceLineRepo.WithDB(db).Create(ctx, params.toModel())
		if err != nil {
			return storageErr("invoice line repository create", err, apperr.InvoiceLineNotFoundErr)
		}

		return enqueueEvent(ctx, s.outboxMsgRepo.WithDB(db), event.TopicInvoiceLineCreated, line.FacturaID, event.InvoiceLineCreatedEvent{
			InvoiceLineID: line.ID,
			InvoiceID:     line.FacturaID,
			ProductoID:    line.ProductoID,
			Cantidad:      line.Cantidad,
			Subtotal:      line.Subtotal,
		})
	}); err != nil {
		return model.InvoiceLine{}, fmt.Errorf("db with tx: %w", err)
	}

	return line, nil
}

func (s *invoiceLineService) ListInvoiceLines(ctx context.Context) ([]model.InvoiceLine, error) {
	lines, err := s.invoiceLineRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("invoice line repository list: %w", err)
	}

	return lines, nil
}

func (s *invoiceLineService) GetInvoiceLine(ctx context.Context, id int64) (model.InvoiceLine, error) {
	line, err := s.invoiceLineRepo.Get(ctx, id)
	if err != nil {
		return model.InvoiceLine{}, storageErr("invoice line repository get", err, apperr.InvoiceLineNotFoundErr)
	}

	return line, nil
}

func (s *invoiceLineService) ListInvoiceLinesByInvoice(ctx context.Context, invoiceID int64) ([]model.InvoiceLine, error) {
	if _, err := s.invoiceRepo.Get(ctx, invoiceID); err != nil {
		return nil, storageErr("invoice repository get", err, apperr.InvoiceNotFoundErr)
	}

	lines, err := s.invoiceLineRepo.ListBy(ctx, repository.ColumnFacturaID, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("invoice line repository list by invoice: %w", err)
	}

	return lines, nil
}
