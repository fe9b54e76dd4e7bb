package mq

import (
	"time"

	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/model"
)

// Routing keys on the events exchange.
const (
	RoutingKeyEmailReceived = "email.received"
	RoutingKeyEmailAnalyzed = "email.analyzed"
)

// EmailReceivedPayload carries a full email record to the analysis worker.
type EmailReceivedPayload struct {
	Email      model.EmailRecord `json:"email"`
	ReceivedAt time.Time         `json:"received_at"`
}

// EmailAnalyzedPayload announces a completed analysis.
type EmailAnalyzedPayload struct {
	RecordID     string    `json:"record_id"`
	Urgency      string    `json:"urgency"`
	UrgencyScore int       `json:"urgency_score"`
	Confidence   float64   `json:"confidence"`
	AnalyzedAt   time.Time `json:"analyzed_at"`
}
