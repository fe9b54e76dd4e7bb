package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/analyzer"
	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/graph"
	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/model"
	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/mq"
	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/patterns"
	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/summarizer"
	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/pkg/metrics"
)

// Summarizer is the external text-summarization collaborator.
type Summarizer interface {
	Configured() bool
	Summarize(ctx context.Context, text string) (string, error)
}

// HistoryStore accepts completed analysis records. Fire-and-forget from the
// analysis's perspective: a store failure never fails the analysis.
type HistoryStore interface {
	Save(ctx context.Context, rec *model.AnalysisRecord) error
}

// EventPublisher publishes events to the message bus.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

// AnalyzeService orchestrates one analysis: credential check, knowledge
// graph build, summarization call, rule-based scoring, result composition.
// The summary and the rule-based score are computed independently and only
// merged in the final record; a summarization failure aborts the whole
// analysis with no partial result.
type AnalyzeService struct {
	lib        *patterns.Library
	summarizer Summarizer
	history    HistoryStore
	producer   EventPublisher
	logger     *zap.Logger
}

// NewAnalyzeService wires the orchestrator. history and producer may be nil
// (synchronous analysis without persistence or events).
func NewAnalyzeService(lib *patterns.Library, sum Summarizer, history HistoryStore, producer EventPublisher, logger *zap.Logger) *AnalyzeService {
	return &AnalyzeService{
		lib:        lib,
		summarizer: sum,
		history:    history,
		producer:   producer,
		logger:     logger,
	}
}

// Analyze runs the full pipeline for one email record.
func (s *AnalyzeService) Analyze(ctx context.Context, email *model.EmailRecord) (*model.AnalysisRecord, error) {
	start := time.Now()

	// Fail fast before any extraction work when no credential is available.
	if !s.summarizer.Configured() {
		return nil, summarizer.ErrNotConfigured
	}

	g := graph.Build(ctx, s.lib, email)

	summary, err := s.summarizer.Summarize(ctx, email.Body)
	if err != nil {
		metrics.RecordAnalysisDuration("failed", time.Since(start))
		metrics.IncrementEmailAnalysisFailed()
		s.logger.Error("Summarization failed",
			zap.String("subject", email.Subject),
			zap.Error(err),
		)
		return nil, err
	}

	assessment := analyzer.ScoreUrgency(g)
	keyActions := analyzer.SelectKeyActions(g)

	rec := &model.AnalysisRecord{
		ID:             uuid.NewString(),
		Email:          g.Email,
		KnowledgeGraph: condense(g),
		Analysis: model.Analysis{
			Summary:    summary,
			Urgency:    assessment.Urgency,
			Reasoning:  assessment.Reasoning,
			KeyActions: keyActions,
			Confidence: assessment.Confidence,
		},
		Timestamp: time.Now().UTC(),
	}

	s.saveHistory(ctx, rec)
	s.publishAnalyzed(rec)

	metrics.RecordAnalysisDuration("success", time.Since(start))
	metrics.IncrementEmailAnalyzed(assessment.Urgency)
	s.logger.Info("Email analyzed",
		zap.String("record_id", rec.ID),
		zap.String("urgency", assessment.Urgency),
		zap.Float64("score", assessment.Score),
		zap.Float64("confidence", assessment.Confidence),
	)
	return rec, nil
}

// condense builds the outward graph summary: full categories, top-5
// keywords and the scalar signals presentation consumes.
func condense(g *model.KnowledgeGraph) model.GraphSummary {
	keywords := g.Nodes.Keywords
	if len(keywords) > 5 {
		keywords = keywords[:5]
	}
	return model.GraphSummary{
		Categories:       g.Nodes.Categories,
		Keywords:         keywords,
		UrgencyScore:     g.Nodes.UrgencyIndicators.Score,
		ActionItemsCount: len(g.Nodes.ActionItems),
		SenderImportance: g.Nodes.SenderImportance.Level,
		HasDeadline:      g.Nodes.TemporalContext.HasDeadline,
		Attachments:      g.Nodes.AttachmentContext.Count,
	}
}

func (s *AnalyzeService) saveHistory(ctx context.Context, rec *model.AnalysisRecord) {
	if s.history == nil {
		return
	}
	if err := s.history.Save(ctx, rec); err != nil {
		s.logger.Warn("Failed to save analysis to history",
			zap.String("record_id", rec.ID),
			zap.Error(err),
		)
	}
}

func (s *AnalyzeService) publishAnalyzed(rec *model.AnalysisRecord) {
	if s.producer == nil {
		return
	}
	payload := mq.EmailAnalyzedPayload{
		RecordID:     rec.ID,
		Urgency:      rec.Analysis.Urgency,
		UrgencyScore: rec.KnowledgeGraph.UrgencyScore,
		Confidence:   rec.Analysis.Confidence,
		AnalyzedAt:   rec.Timestamp,
	}
	if err := s.producer.Publish(mq.RoutingKeyEmailAnalyzed, payload); err != nil {
		s.logger.Warn("Failed to publish email.analyzed event",
			zap.String("record_id", rec.ID),
			zap.Error(err),
		)
	}
}
