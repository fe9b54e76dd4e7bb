package mqhandler

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/mq"
	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/service"
	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/util"
)

const handlerName = "analyze"

// Deduper suppresses duplicate processing of an email across broker
// redeliveries. Release undoes a prior acquisition so a failed run does not
// block a later redelivery.
type Deduper interface {
	AcquireOnce(ctx context.Context, handler, fingerprint string) bool
	Release(ctx context.Context, handler, fingerprint string) error
}

// EmailReceivedAnalyzeHandler consumes `email.received` events and runs the
// full analysis pipeline for each. Duplicate deliveries of the same email
// are suppressed through the deduper.
type EmailReceivedAnalyzeHandler struct {
	analyzeService *service.AnalyzeService
	deduper        Deduper
	logger         *zap.Logger
}

func NewEmailReceivedAnalyzeHandler(analyzeService *service.AnalyzeService, deduper Deduper, logger *zap.Logger) *EmailReceivedAnalyzeHandler {
	return &EmailReceivedAnalyzeHandler{
		analyzeService: analyzeService,
		deduper:        deduper,
		logger:         logger,
	}
}

// HandleEmailReceived processes one EmailReceivedPayload. The dedup key is
// released again when analysis fails, so a retryable failure that gets the
// message requeued is actually reprocessed on redelivery. Analysis of an
// identical record is deterministic (only record id and timestamps differ),
// so a duplicate slipping past the deduper is wasted work, not corruption.
func (h *EmailReceivedAnalyzeHandler) HandleEmailReceived(ctx context.Context, raw json.RawMessage) error {
	var p mq.EmailReceivedPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		h.logger.Error("Failed to unmarshal email received payload", zap.Error(err))
		return err
	}

	fingerprint := util.Fingerprint(&p.Email)
	h.logger.Info("Processing email analysis",
		zap.String("fingerprint", fingerprint),
		zap.String("subject", p.Email.Subject),
		zap.String("sender", p.Email.Sender.Email),
	)

	if h.deduper != nil && !h.deduper.AcquireOnce(ctx, handlerName, fingerprint) {
		h.logger.Debug("Email already analyzed, skipping",
			zap.String("fingerprint", fingerprint),
		)
		return nil
	}

	rec, err := h.analyzeService.Analyze(ctx, &p.Email)
	if err != nil {
		if h.deduper != nil {
			if relErr := h.deduper.Release(ctx, handlerName, fingerprint); relErr != nil {
				h.logger.Warn("Failed to release dedup key",
					zap.String("fingerprint", fingerprint),
					zap.Error(relErr),
				)
			}
		}
		h.logger.Error("Analysis failed",
			zap.String("fingerprint", fingerprint),
			zap.Error(err),
		)
		return err
	}

	h.logger.Info("Email analysis completed",
		zap.String("fingerprint", fingerprint),
		zap.String("record_id", rec.ID),
		zap.String("urgency", rec.Analysis.Urgency),
	)
	return nil
}
