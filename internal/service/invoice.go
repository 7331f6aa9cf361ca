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
	"github.com/tuanvumaihuynh/invoicing-api/pkg/isotime"
	"github.com/tuanvumaihuynh/invoicing-api/pkg/validator"
)

// InvoiceParams is the client-supplied part of an invoice. ID is only read on
// update, where it must match the path. Fecha accepts ISO-8601 dates and
// date-times; values without a zone are UTC. Iva and total are not read,
// they are always derived from the subtotal rounded to cents.
type InvoiceParams struct {
	ID            int64   `json:"id"`
	ClienteID     int64   `json:"cliente_id" validate:"required,gt=0"`
	Fecha         string  `json:"fecha" validate:"required,isodatetime"`
	NumeroFactura *string `json:"numero_factura,omitempty" validate:"omitempty,min=5,max=20"`
	Subtotal      float64 `json:"subtotal" validate:"gt=0,amount"`
}

// normalized drops an empty numero_factura so it is not stored.
func (p InvoiceParams) normalized() InvoiceParams {
	if p.NumeroFactura != nil && *p.NumeroFactura == "" {
		p.NumeroFactura = nil
	}
	return p
}

func (p InvoiceParams) toModel() (model.Invoice, error) {
	fecha, err := isotime.Parse(p.Fecha)
	if err != nil {
		return model.Invoice{}, fmt.Errorf("parse fecha: %w", err)
	}
	iva, total := billing.InvoiceTotals(p.Subtotal)

	return model.Invoice{
		ClienteID:     p.ClienteID,
		Fecha:         fecha,
		NumeroFactura: p.NumeroFactura,
		Subtotal:      billing.Round(p.Subtotal),
		Iva:           iva,
		Total:         total,
	}, nil
}

type InvoiceService interface {
	CreateInvoice(ctx context.Context, params InvoiceParams) (model.Invoice, error)
	ListInvoices(ctx context.Context) ([]model.Invoice, error)
	GetInvoice(ctx context.Context, id int64) (model.Invoice, error)
	UpdateInvoice(ctx context.Context, id int64, params InvoiceParams) (model.Invoice, error)
	DeleteInvoice(ctx context.Context, id int64) (model.Invoice, error)
}

type invoiceService struct {
	db            db.DB
	validator     validator.Validator
	clientRepo    repository.ClientRepository
	invoiceRepo   repository.InvoiceRepository
	outboxMsgRepo repository.OutboxMsgRepository
}

func NewInvoiceService(
	db db.DB,
	v validator.Validator,
	clientRepo repository.ClientRepository,
	invoiceRepo repository.InvoiceRepository,
	outboxMsgRepo repository.OutboxMsgRepository,
) InvoiceService {
	return &invoiceService{
		db:            db,
		validator:     v,
		clientRepo:    clientRepo,
		invoiceRepo:   invoiceRepo,
		outboxMsgRepo: outboxMsgRepo,
	}
}

func (s *invoiceService) CreateInvoice(ctx context.Context, params InvoiceParams) (model.Invoice, error) {
	params = params.normalized()
	if err := validate(s.validator, params); err != nil {
		return model.Invoice{}, err
	}

	record, err := params.toModel()
	if err != nil {
		return model.Invoice{}, err
	}

	var invoice model.Invoice
	if err := s.db.WithTx(ctx, func(db db.DB) error {
		if err := s.ensureClientExists(ctx, db, params.ClienteID); err != nil {
			return err
		}

		var err error
		invoice, err = s.invoiceRepo.WithDB(db).Create(ctx, record)
		if err != nil {
			return storageErr("invoice repository create", err, apperr.InvoiceNotFoundErr)
		}

		return enqueueEvent(ctx, s.outboxMsgRepo.WithDB(db), event.TopicInvoiceCreated, invoice.ID, event.InvoiceCreatedEvent{
			InvoiceID:     invoice.ID,
			ClienteID:     invoice.ClienteID,
			NumeroFactura: invoice.NumeroFactura,
			Fecha:         invoice.Fecha,
			Subtotal:      invoice.Subtotal,
			Iva:           invoice.Iva,
			Total:         invoice.Total,
		})
	}); err != nil {
		return model.Invoice{}, fmt.Errorf("db with tx: %w", err)
	}

	return invoice, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context) ([]model.Invoice, error) {
	invoices, err := s.invoiceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("invoice repository list: %w", err)
	}

	return invoices, nil
}

func (s *invoiceService) GetInvoice(ctx context.Context, id int64) (model.Invoice, error) {
	invoice, err := s.invoiceRepo.Get(ctx, id)
	if err != nil {
		return model.Invoice{}, storageErr("invoice repository get", err, apperr.InvoiceNotFoundErr)
	}

	return invoice, nil
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, id int64, params InvoiceParams) (model.Invoice, error) {
	params = params.normalized()
	if err := validate(s.validator, params); err != nil {
		return model.Invoice{}, err
	}

	if params.ID != id {
		return model.Invoice{}, apperr.InvoiceIDMismatchErr
	}

	record, err := params.toModel()
	if err != nil {
		return model.Invoice{}, err
	}

	var invoice model.Invoice
	if err := s.db.WithTx(ctx, func(db db.DB) error {
		if err := s.ensureClientExists(ctx, db, params.ClienteID); err != nil {
			return err
		}

		var err error
		invoice, err = s.invoiceRepo.WithDB(db).Update(ctx, id, record)
		if err != nil {
			return storageErr("invoice repository update", err, apperr.InvoiceNotFoundErr)
		}
		return nil
	}); err != nil {
		return model.Invoice{}, fmt.Errorf("db with tx: %w", err)
	}

	return invoice, nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, id int64) (model.Invoice, error) {
	invoice, err := s.invoiceRepo.Delete(ctx, id)
	if err != nil {
		return model.Invoice{}, storageErr("invoice repository delete", err, apperr.InvoiceNotFoundErr)
	}

	return invoice, nil
}

func (s *invoiceService) ensureClientExists(ctx context.Context, db db.DB, clientID int64) error {
	_, err := s.clientRepo.WithDB(db).GetBy(ctx, repository.ColumnID, clientID)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.ClientDoesNotExistErr.WrapParent(err)
	}
	if err != nil {
		return fmt.Errorf("client repository get by id: %w", err)
	}

	return nil
}
