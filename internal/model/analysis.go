package model

import "time"

// Urgency classification labels.
const (
	UrgencyUrgent    = "URGENT"
	UrgencyNonUrgent = "NON-URGENT"
)

// UrgencyAssessment is the output of the rule-based urgency scorer.
type UrgencyAssessment struct {
	Urgency    string  `json:"urgency"`
	Reasoning  string  `json:"reasoning"`
	Confidence float64 `json:"confidence"`
	Score      float64 `json:"score"`
}

// Analysis combines the generated summary with the rule-based assessment.
type Analysis struct {
	Summary    string   `json:"summary"`
	Urgency    string   `json:"urgency"`
	Reasoning  string   `json:"reasoning"`
	KeyActions []string `json:"key_actions"`
	Confidence float64  `json:"confidence"`
}

// GraphSummary is the condensed knowledge-graph view exposed on result
// records: full categories, top-5 keywords and a handful of scalar signals.
type GraphSummary struct {
	Categories       []CategoryMatch `json:"categories"`
	Keywords         []KeywordEntry  `json:"keywords"`
	UrgencyScore     int             `json:"urgency_score"`
	ActionItemsCount int             `json:"action_items_count"`
	SenderImportance string          `json:"sender_importance"`
	HasDeadline      bool            `json:"has_deadline"`
	Attachments      int             `json:"attachments"`
}

// AnalysisRecord is the outward-facing result of one completed analysis,
// also the shape persisted to history.
type AnalysisRecord struct {
	ID             string       `json:"id"`
	Email          EmailMeta    `json:"email"`
	KnowledgeGraph GraphSummary `json:"knowledge_graph"`
	Analysis       Analysis     `json:"analysis"`
	Timestamp      time.Time    `json:"timestamp"`
}
