package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/model"
)

func graphWith(nodes model.GraphNodes) *model.KnowledgeGraph {
	return &model.KnowledgeGraph{Nodes: nodes}
}

func highIndicators(n int) model.UrgencyIndicators {
	return model.UrgencyIndicators{
		High:  make([]model.UrgencyIndicator, n),
		Score: n * 3,
		Level: model.UrgencyLevelHigh,
	}
}

func TestScoreUrgencyQuietEmail(t *testing.T) {
	got := ScoreUrgency(graphWith(model.GraphNodes{}))

	assert.Equal(t, model.UrgencyNonUrgent, got.Urgency)
	assert.Equal(t, 0.0, got.Score)
	assert.Equal(t, "No urgent indicators detected; standard email communication", got.Reasoning)
	assert.Equal(t, 1.0, got.Confidence)
}

func TestScoreUrgencyComposite(t *testing.T) {
	got := ScoreUrgency(graphWith(model.GraphNodes{
		UrgencyIndicators: highIndicators(6),
		SenderImportance:  model.SenderImportance{Level: model.ImportanceManagement, Score: 2.0},
		TemporalContext:   model.TemporalContext{HasDeadline: true},
		ActionItems: []model.ActionItem{
			{Text: "Please review and approve the attached invoice immediately", Priority: 3},
			{Text: "Deadline is this Friday", Priority: 2},
		},
		Categories: []model.CategoryMatch{{Name: "financial", Confidence: 0.6}},
	}))

	assert.Equal(t, model.UrgencyUrgent, got.Urgency)
	assert.Equal(t, 8.5, got.Score)
	assert.InDelta(t, 0.85, got.Confidence, 1e-9)
	assert.Equal(t,
		"High-priority language detected: 6 urgent patterns. "+
			"Sender is management-level. "+
			"Contains deadline or time-sensitive information. "+
			"2 high-priority action items detected. "+
			"Email category typically requires timely response",
		got.Reasoning)
}

func TestScoreUrgencyConfidenceClampsAtMax(t *testing.T) {
	got := ScoreUrgency(graphWith(model.GraphNodes{
		UrgencyIndicators: highIndicators(4),
		SenderImportance:  model.SenderImportance{Level: model.ImportanceExecutive, Score: 3.0},
		TemporalContext:   model.TemporalContext{HasDeadline: true, HasMeetingTime: true},
		ActionItems:       []model.ActionItem{{Text: "sign this", Priority: 3}},
		Categories:        []model.CategoryMatch{{Name: "support", Confidence: 0.9}},
	}))

	// 3 + 2 + 2 + 1 + 1.5 + 1
	assert.Equal(t, 10.5, got.Score)
	assert.Equal(t, model.UrgencyUrgent, got.Urgency)
	assert.Equal(t, 0.95, got.Confidence)
}

func TestScoreUrgencyThresholdBoundary(t *testing.T) {
	got := ScoreUrgency(graphWith(model.GraphNodes{
		UrgencyIndicators: highIndicators(1),
		SenderImportance:  model.SenderImportance{Level: model.ImportanceManagement, Score: 2.0},
	}))

	// A score of exactly 4 already classifies as urgent.
	assert.Equal(t, 4.0, got.Score)
	assert.Equal(t, model.UrgencyUrgent, got.Urgency)
	assert.InDelta(t, 0.4, got.Confidence, 1e-9)
}

func TestScoreUrgencyMediumIndicatorsOnly(t *testing.T) {
	got := ScoreUrgency(graphWith(model.GraphNodes{
		UrgencyIndicators: model.UrgencyIndicators{
			Medium: make([]model.UrgencyIndicator, 1),
			Score:  1,
			Level:  model.UrgencyLevelMedium,
		},
	}))

	assert.Equal(t, model.UrgencyNonUrgent, got.Urgency)
	assert.Equal(t, 1.5, got.Score)
	assert.Equal(t, "Medium urgency indicators present", got.Reasoning)
	assert.InDelta(t, 0.85, got.Confidence, 1e-9)
}

func TestScoreUrgencyActionAverageBands(t *testing.T) {
	// Mean priority in (1, 2] earns the smaller bump.
	got := ScoreUrgency(graphWith(model.GraphNodes{
		ActionItems: []model.ActionItem{{Priority: 1.5}, {Priority: 1.5}},
	}))
	assert.Equal(t, 0.5, got.Score)
	assert.Equal(t, "2 action items present", got.Reasoning)

	// Mean priority of exactly 1 earns nothing.
	got = ScoreUrgency(graphWith(model.GraphNodes{
		ActionItems: []model.ActionItem{{Priority: 1}},
	}))
	assert.Equal(t, 0.0, got.Score)
	assert.Equal(t, "No urgent indicators detected; standard email communication", got.Reasoning)
}

func TestScoreUrgencyCategoryGate(t *testing.T) {
	// Confidence must exceed 0.5 and the category must be time-critical.
	got := ScoreUrgency(graphWith(model.GraphNodes{
		Categories: []model.CategoryMatch{
			{Name: "financial", Confidence: 0.5},
			{Name: "meeting", Confidence: 0.9},
		},
	}))
	assert.Equal(t, 0.0, got.Score)

	// Several qualifying categories still add only one point.
	got = ScoreUrgency(graphWith(model.GraphNodes{
		Categories: []model.CategoryMatch{
			{Name: "financial", Confidence: 0.6},
			{Name: "hr", Confidence: 0.9},
		},
	}))
	assert.Equal(t, 1.0, got.Score)
	assert.Equal(t, "Email category typically requires timely response", got.Reasoning)
}

func TestSelectKeyActionsRanksByPriority(t *testing.T) {
	got := SelectKeyActions(graphWith(model.GraphNodes{
		ActionItems: []model.ActionItem{
			{Text: "first", Priority: 1},
			{Text: "second", Priority: 3},
			{Text: "third", Priority: 2},
		},
	}))
	assert.Equal(t, []string{"second", "third", "first"}, got)
}

func TestSelectKeyActionsTopThreeAndTies(t *testing.T) {
	got := SelectKeyActions(graphWith(model.GraphNodes{
		ActionItems: []model.ActionItem{
			{Text: "a", Priority: 2},
			{Text: "b", Priority: 2},
			{Text: "c", Priority: 3},
			{Text: "d", Priority: 2},
		},
	}))
	// Equal priorities keep extraction order; only three survive.
	assert.Equal(t, []string{"c", "a", "b"}, got)
}

func TestSelectKeyActionsTrimsWhitespace(t *testing.T) {
	got := SelectKeyActions(graphWith(model.GraphNodes{
		ActionItems: []model.ActionItem{{Text: "  sign the form  ", Priority: 2}},
	}))
	assert.Equal(t, []string{"sign the form"}, got)
}

func TestSelectKeyActionsFallback(t *testing.T) {
	got := SelectKeyActions(graphWith(model.GraphNodes{}))
	require.Len(t, got, 1)
	assert.Equal(t, "Review email content", got[0])
}

func TestSelectKeyActionsDoesNotMutateGraph(t *testing.T) {
	g := graphWith(model.GraphNodes{
		ActionItems: []model.ActionItem{
			{Text: "first", Priority: 1},
			{Text: "second", Priority: 3},
		},
	})
	SelectKeyActions(g)
	assert.Equal(t, "first", g.Nodes.ActionItems[0].Text)
	assert.Equal(t, "second", g.Nodes.ActionItems[1].Text)
}
