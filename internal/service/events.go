package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/tuanvumaihuynh/invoicing-api/internal/repository"
	"github.com/tuanvumaihuynh/invoicing-api/pkg/outbox"
	"github.com/tuanvumaihuynh/invoicing-api/pkg/ptr"
)

// enqueueEvent stores ev in the outbox through repo, which must be bound to
// the transaction of the write the event describes. Events for one invoice
// share a partition key so they stay ordered.
func enqueueEvent(ctx context.Context, repo repository.OutboxMsgRepository, topic string, invoiceID int64, ev any) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", topic, err)
	}

	if err := repo.CreateOutboxMsg(ctx, repository.CreateOutboxMsgParams{
		Topic:        topic,
		Headers:      outbox.BuildHeaders(ctx),
		Payload:      payload,
		PartitionKey: ptr.New(strconv.FormatInt(invoiceID, 10)),
	}); err != nil {
		return fmt.Errorf("outbox msg repository create outbox msg: %w", err)
	}

	return nil
}
