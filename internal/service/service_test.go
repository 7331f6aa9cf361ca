package service_test

import (
	"context"
	"sync"

	"github.com/tuanvumaihuynh/invoicing-api/internal/model"
	"github.com/tuanvumaihuynh/invoicing-api/internal/repository"
	"github.com/tuanvumaihuynh/invoicing-api/internal/storage/db"
	"github.com/tuanvumaihuynh/invoicing-api/internal/storage/table/tabletest"
	"github.com/tuanvumaihuynh/invoicing-api/pkg/validator"
)

type fakeOutboxMsgRepo struct {
	mu   sync.Mutex
	msgs []repository.CreateOutboxMsgParams
	err  error
}

func (r *fakeOutboxMsgRepo) WithDB(db.DB) repository.OutboxMsgRepository { return r }

func (r *fakeOutboxMsgRepo) CreateOutboxMsg(_ context.Context, params repository.CreateOutboxMsgParams) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return r.err
	}
	r.msgs = append(r.msgs, params)
	return nil
}

func (r *fakeOutboxMsgRepo) ListUnprocessedOutboxMsgs(context.Context, int32) ([]repository.OutboxMsg, error) {
	return nil, nil
}

func (r *fakeOutboxMsgRepo) MarkOutboxMsgsProcessed(context.Context, []repository.OutboxMsgResult) error {
	return nil
}

func (r *fakeOutboxMsgRepo) topics() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	topics := make([]string, 0, len(r.msgs))
	for _, m := range r.msgs {
		topics = append(topics, m.Topic)
	}
	return topics
}

type fixture struct {
	db *tabletest.DB
	v  validator.Validator

	clients  *tabletest.Memory[model.Client]
	products *tabletest.Memory[model.Product]
	invoices *tabletest.Memory[model.Invoice]
	lines    *tabletest.Memory[model.InvoiceLine]
	outbox   *fakeOutboxMsgRepo
}

func newFixture() *fixture {
	return &fixture{
		db:       &tabletest.DB{},
		v:        validator.MustNewDefaultValidator(),
		clients:  tabletest.NewMemory(repository.ClientSchema),
		products: tabletest.NewMemory(repository.ProductSchema),
		invoices: tabletest.NewMemory(repository.InvoiceSchema),
		lines:    tabletest.NewMemory(repository.InvoiceLineSchema),
		outbox:   &fakeOutboxMsgRepo{},
	}
}

func (f *fixture) clientRepo() repository.ClientRepository {
	return repository.NewClientRepository(f.clients)
}

func (f *fixture) productRepo() repository.ProductRepository {
	return repository.NewProductRepository(f.products)
}

func (f *fixture) invoiceRepo() repository.InvoiceRepository {
	return repository.NewInvoiceRepository(f.invoices)
}

func (f *fixture) invoiceLineRepo() repository.InvoiceLineRepository {
	return repository.NewInvoiceLineRepository(f.lines)
}
