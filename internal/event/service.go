package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/tuanvumaihuynh/invoicing-api/internal/storage/mq"
)

// Service consumes the invoicing topics.
type Service struct {
	logger     *slog.Logger
	mqConsumer mq.Consumer
}

func New(logger *slog.Logger, mqConsumer mq.Consumer) *Service {
	return &Service{
		logger:     logger.With(slog.String("service", "event")),
		mqConsumer: mqConsumer,
	}
}

type CleanupFunc func()

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	if err := s.RegisterHandlers(); err != nil {
		return nil, err
	}

	mqCleanup, err := s.mqConsumer.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("run mq consumer: %w", err)
	}

	return CleanupFunc(mqCleanup), nil
}

// RegisterHandlers subscribes every topic handled by the service.
func (s *Service) RegisterHandlers() error {
	if err := s.mqConsumer.RegisterHandler(TopicInvoiceCreated, jsonHandler(s.handleInvoiceCreatedEvent)); err != nil {
		return fmt.Errorf("register %s handler: %w", TopicInvoiceCreated, err)
	}

	if err := s.mqConsumer.RegisterHandler(TopicInvoiceLineCreated, jsonHandler(s.handleInvoiceLineCreatedEvent)); err != nil {
		return fmt.Errorf("register %s handler: %w", TopicInvoiceLineCreated, err)
	}

	return nil
}

func jsonHandler[E any](fn func(context.Context, E) error) mq.HandlerFunc {
	return func(ctx context.Context, topic string, payload []byte) error {
		var ev E
		if err := json.Unmarshal(payload, &ev); err != nil {
			return fmt.Errorf("unmarshal %s event: %w", topic, err)
		}

		if err := fn(ctx, ev); err != nil {
			return fmt.Errorf("handle %s event: %w", topic, err)
		}

		return nil
	}
}
