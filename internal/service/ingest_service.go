package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/model"
	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/mq"
)

// IngestService takes emails off the request path: it publishes an
// `email.received` event carrying the full record and lets the worker run
// the analysis.
type IngestService struct {
	producer EventPublisher
	logger   *zap.Logger
}

func NewIngestService(producer EventPublisher, logger *zap.Logger) *IngestService {
	return &IngestService{producer: producer, logger: logger}
}

// Enqueue publishes the record for asynchronous analysis.
func (s *IngestService) Enqueue(_ context.Context, email *model.EmailRecord) error {
	payload := mq.EmailReceivedPayload{
		Email:      *email,
		ReceivedAt: time.Now().UTC(),
	}
	if err := s.producer.Publish(mq.RoutingKeyEmailReceived, payload); err != nil {
		s.logger.Error("Failed to publish email.received event",
			zap.String("subject", email.Subject),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("Email queued for analysis",
		zap.String("subject", email.Subject),
		zap.String("sender", email.Sender.Email),
	)
	return nil
}
