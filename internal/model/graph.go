package model

import "time"

// CategoryMatch is one semantic category detected in an email, with a
// heuristic confidence in [0,1].
type CategoryMatch struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// KeywordEntry is a ranked keyword. Word is lowercase-normalized.
type KeywordEntry struct {
	Word       string  `json:"word"`
	Frequency  int     `json:"frequency"`
	Importance float64 `json:"importance"`
}

// Urgency tiers and levels.
const (
	UrgencyLevelHigh   = "high"
	UrgencyLevelMedium = "medium"
	UrgencyLevelLow    = "low"

	LocationSubject = "subject"
	LocationBody    = "body"
)

// UrgencyIndicator is a single urgency-pattern hit. Location records whether
// the match offset fell inside the subject portion of the combined
// subject+body text (a match at exactly the boundary counts as body).
type UrgencyIndicator struct {
	Pattern  string `json:"pattern"`
	Match    string `json:"match"`
	Location string `json:"location"`
}

// UrgencyIndicators groups the tiered pattern hits with the derived score
// (3 per high hit, 1 per medium hit) and level.
type UrgencyIndicators struct {
	High   []UrgencyIndicator `json:"high"`
	Medium []UrgencyIndicator `json:"medium"`
	Score  int                `json:"score"`
	Level  string             `json:"level"`
}

// Action item types.
const (
	ActionTypeReview     = "review"
	ActionTypeApproval   = "approval"
	ActionTypeCompletion = "completion"
	ActionTypeResponse   = "response"
	ActionTypeUpdate     = "update"
	ActionTypeGeneral    = "general"
)

// ActionItem is a sentence flagged as requiring recipient action. Priority
// is in [1,3]. Items are kept in sentence-encounter order.
type ActionItem struct {
	Text     string  `json:"text"`
	Type     string  `json:"type"`
	Priority float64 `json:"priority"`
}

// Sender importance levels.
const (
	ImportanceAutomated  = "automated"
	ImportanceStandard   = "standard"
	ImportanceManagement = "management"
	ImportanceExecutive  = "executive"
)

// SenderImportance is the coarse importance tier of the sender.
type SenderImportance struct {
	Level string  `json:"level"`
	Score float64 `json:"score"`
	Email string  `json:"email"`
	Name  string  `json:"name"`
}

// TemporalContext holds date/time mentions found in the body.
type TemporalContext struct {
	Dates          []string `json:"dates"`
	Times          []string `json:"times"`
	HasDeadline    bool     `json:"has_deadline"`
	HasMeetingTime bool     `json:"has_meeting_time"`
}

// AttachmentContext describes the attachments of an email. Types is the set
// of distinct file-type categories in first-seen order.
type AttachmentContext struct {
	HasAttachments bool     `json:"has_attachments"`
	Count          int      `json:"count"`
	Types          []string `json:"types"`
	FileNames      []string `json:"file_names,omitempty"`
}

// GraphNodes bundles the seven independently extracted signal nodes.
type GraphNodes struct {
	Categories        []CategoryMatch   `json:"categories"`
	Keywords          []KeywordEntry    `json:"keywords"`
	UrgencyIndicators UrgencyIndicators `json:"urgency_indicators"`
	ActionItems       []ActionItem      `json:"action_items"`
	SenderImportance  SenderImportance  `json:"sender_importance"`
	TemporalContext   TemporalContext   `json:"temporal_context"`
	AttachmentContext AttachmentContext `json:"attachment_context"`
}

// GraphMetadata describes the build itself.
type GraphMetadata struct {
	BodyLength     int       `json:"body_length"`
	HasAttachments bool      `json:"has_attachments"`
	ExtractedAt    time.Time `json:"extracted_at"`
}

// KnowledgeGraph is the assembled, immutable signal bundle for one email.
// Edges are static descriptive relationship strings; nothing downstream
// computes on them.
type KnowledgeGraph struct {
	Email    EmailMeta         `json:"email"`
	Nodes    GraphNodes        `json:"nodes"`
	Edges    map[string]string `json:"edges"`
	Metadata GraphMetadata     `json:"metadata"`
}
