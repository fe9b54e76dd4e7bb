package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLibraryShape(t *testing.T) {
	lib := Default()
	require.NotNil(t, lib)

	assert.Len(t, lib.UrgencyHigh, 17)
	assert.Len(t, lib.UrgencyMedium, 5)
	assert.Len(t, lib.Actions, 14)
	assert.Len(t, lib.Categories, 8)
	assert.Len(t, lib.ActionTypes, 5)
}

func TestCategoryRuleOrder(t *testing.T) {
	// Declaration order is the tie-break order for equal confidence.
	want := []string{"meeting", "financial", "project", "hr", "support", "sales", "administrative", "social"}
	lib := Default()
	for i, rule := range lib.Categories {
		assert.Equal(t, want[i], rule.Name)
	}
}

func TestCategoryRulesMatchRepresentativeText(t *testing.T) {
	lib := Default()
	samples := map[string]string{
		"meeting":        "let's set up a zoom call",
		"financial":      "the invoice is attached",
		"project":        "sprint milestone slipped",
		"hr":             "performance review cycle",
		"support":        "filed a bug ticket",
		"sales":          "new client proposal",
		"administrative": "updated compliance policy",
		"social":         "congratulations on the launch",
	}
	for _, rule := range lib.Categories {
		assert.True(t, rule.Re.MatchString(samples[rule.Name]), "category %s", rule.Name)
	}
}

func TestUrgencyRulesAreCaseInsensitive(t *testing.T) {
	lib := Default()
	assert.True(t, lib.UrgencyHigh[0].Re.MatchString("URGENT request"))
	assert.True(t, lib.UrgencyHigh[0].Re.MatchString("urgent request"))
	assert.Equal(t, "urgent", lib.UrgencyHigh[0].ID)
}

func TestHighTierPhrasePatterns(t *testing.T) {
	lib := Default()
	byID := make(map[string]int)
	for i, rule := range lib.UrgencyHigh {
		byID[rule.ID] = i
	}

	respond := lib.UrgencyHigh[byID[`respond (by|before)`]]
	assert.True(t, respond.Re.MatchString("please respond by Friday"))
	assert.False(t, respond.Re.MatchString("respond whenever"))

	need := lib.UrgencyHigh[byID[`need.{0,20}(today|now|soon)`]]
	assert.True(t, need.Re.MatchString("need this back today"))
	assert.False(t, need.Re.MatchString("no need to RSVP"))
}

func TestFileTypeTable(t *testing.T) {
	lib := Default()
	assert.Equal(t, "document", lib.FileTypes["pdf"])
	assert.Equal(t, "spreadsheet", lib.FileTypes["xlsx"])
	assert.Equal(t, "presentation", lib.FileTypes["ppt"])
	assert.Equal(t, "image", lib.FileTypes["jpeg"])
	assert.Equal(t, "archive", lib.FileTypes["zip"])
	assert.Equal(t, "text", lib.FileTypes["txt"])
	assert.Equal(t, "data", lib.FileTypes["csv"])
	_, known := lib.FileTypes["xyz"]
	assert.False(t, known)
}

func TestStopWords(t *testing.T) {
	lib := Default()
	for _, w := range []string{"the", "and", "with", "would", "were"} {
		_, ok := lib.StopWords[w]
		assert.True(t, ok, "stop word %q", w)
	}
	_, ok := lib.StopWords["budget"]
	assert.False(t, ok)
}

func TestTemporalPatterns(t *testing.T) {
	lib := Default()

	assert.Equal(t, []string{"12/31/2025"}, lib.DatePattern.FindAllString("ship by 12/31/2025", -1))
	assert.Equal(t, []string{"Jan 15"}, lib.DatePattern.FindAllString("meet on Jan 15", -1))
	assert.Equal(t, []string{"3:30 pm"}, lib.TimePattern.FindAllString("at 3:30 pm sharp", -1))

	assert.True(t, lib.DeadlinePattern.MatchString("due by Friday"))
	assert.True(t, lib.DeadlinePattern.MatchString("needed by EOD"))
	assert.False(t, lib.DeadlinePattern.MatchString("dues are paid"))
}
