// Package analyzer turns an assembled knowledge graph into the final
// urgency classification and the ranked key-action list. Both functions are
// pure: they read the graph and nothing else.
package analyzer

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/model"
)

// urgentThreshold is the additive score at which an email flips to URGENT.
const urgentThreshold = 4

// categoriesNeedingTimelyResponse contribute one flat point when detected
// with confidence above 0.5.
var categoriesNeedingTimelyResponse = map[string]bool{
	"financial": true,
	"support":   true,
	"hr":        true,
}

// ScoreUrgency runs the additive weighted model over the graph's signal
// nodes. Factor order only fixes the order of the reasoning notes; the
// total is order-independent.
func ScoreUrgency(g *model.KnowledgeGraph) model.UrgencyAssessment {
	nodes := &g.Nodes
	score := 0.0
	var reasons []string

	// Factor 1: urgency indicator level.
	switch nodes.UrgencyIndicators.Level {
	case model.UrgencyLevelHigh:
		score += 3
		reasons = append(reasons, fmt.Sprintf("High-priority language detected: %d urgent patterns",
			len(nodes.UrgencyIndicators.High)))
	case model.UrgencyLevelMedium:
		score += 1.5
		reasons = append(reasons, "Medium urgency indicators present")
	}

	// Factor 2: sender importance.
	switch nodes.SenderImportance.Level {
	case model.ImportanceExecutive:
		score += 2
		reasons = append(reasons, "Sender is executive-level")
	case model.ImportanceManagement:
		score += 1
		reasons = append(reasons, "Sender is management-level")
	}

	// Factor 3: temporal context. Deadline and meeting time are additive.
	if nodes.TemporalContext.HasDeadline {
		score += 2
		reasons = append(reasons, "Contains deadline or time-sensitive information")
	}
	if nodes.TemporalContext.HasMeetingTime {
		score += 1
		reasons = append(reasons, "Meeting time scheduled")
	}

	// Factor 4: action items, weighted by mean priority.
	if n := len(nodes.ActionItems); n > 0 {
		sum := 0.0
		for _, item := range nodes.ActionItems {
			sum += item.Priority
		}
		switch avg := sum / float64(n); {
		case avg > 2:
			score += 1.5
			reasons = append(reasons, fmt.Sprintf("%d high-priority action items detected", n))
		case avg > 1:
			score += 0.5
			reasons = append(reasons, fmt.Sprintf("%d action items present", n))
		}
	}

	// Factor 5: one flat point if any time-critical category is confident
	// enough, regardless of how many matched.
	for _, c := range nodes.Categories {
		if categoriesNeedingTimelyResponse[c.Name] && c.Confidence > 0.5 {
			score += 1
			reasons = append(reasons, "Email category typically requires timely response")
			break
		}
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "No urgent indicators detected; standard email communication")
	}

	urgent := score >= urgentThreshold
	confidence := math.Min(score/10, 0.95)

	assessment := model.UrgencyAssessment{
		Urgency:    model.UrgencyNonUrgent,
		Reasoning:  strings.Join(reasons, ". "),
		Confidence: math.Max(0.6, 1-confidence),
		Score:      score,
	}
	if urgent {
		assessment.Urgency = model.UrgencyUrgent
		assessment.Confidence = confidence
	}
	return assessment
}

// SelectKeyActions ranks the graph's action items by priority descending
// (stable, so equal priorities keep extraction order) and returns the
// trimmed texts of the top three. With no action items it falls back to a
// single generic action.
func SelectKeyActions(g *model.KnowledgeGraph) []string {
	items := make([]model.ActionItem, len(g.Nodes.ActionItems))
	copy(items, g.Nodes.ActionItems)

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Priority > items[j].Priority
	})
	if len(items) > 3 {
		items = items[:3]
	}

	if len(items) == 0 {
		return []string{"Review email content"}
	}
	actions := make([]string, 0, len(items))
	for _, item := range items {
		actions = append(actions, strings.TrimSpace(item.Text))
	}
	return actions
}
