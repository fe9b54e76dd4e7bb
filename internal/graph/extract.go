// Package graph derives the knowledge graph of an email: seven independent
// signal extractors plus the assembler composing their outputs. Every
// extractor is a total function over (pattern library, input); a non-match
// yields an empty collection, never an error.
package graph

import (
	"math"
	"sort"
	"strings"

	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/model"
	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/patterns"
)

// ExtractCategories classifies the combined subject+body text against the
// category rules. Confidence is min(0.3 * matchCount, 1.0). If nothing
// matches, a single "general" category with confidence 0.5 is returned.
// Results are sorted by confidence descending; ties keep declaration order.
func ExtractCategories(lib *patterns.Library, email *model.EmailRecord) []model.CategoryMatch {
	combined := strings.ToLower(email.Subject + " " + email.Body)

	var categories []model.CategoryMatch
	for _, rule := range lib.Categories {
		n := len(rule.Re.FindAllStringIndex(combined, -1))
		if n == 0 {
			continue
		}
		categories = append(categories, model.CategoryMatch{
			Name:       rule.Name,
			Confidence: math.Min(float64(n)*0.3, 1.0),
		})
	}

	if len(categories) == 0 {
		categories = append(categories, model.CategoryMatch{Name: "general", Confidence: 0.5})
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Confidence > categories[j].Confidence
	})
	return categories
}

// ExtractKeywords tokenizes subject+body, normalizes tokens to lowercase,
// drops stop words and tokens shorter than four characters, and returns the
// ten most frequent keywords. Frequency ties keep first-seen order. A
// keyword appearing in the subject doubles its importance.
func ExtractKeywords(lib *patterns.Library, email *model.EmailRecord) []model.KeywordEntry {
	text := email.Subject + " " + email.Body
	tokens := lib.Token.FindAllString(text, -1)

	freq := make(map[string]int)
	var order []string
	for _, tok := range tokens {
		word := strings.ToLower(tok)
		if _, stop := lib.StopWords[word]; stop || len(word) < 4 {
			continue
		}
		if _, seen := freq[word]; !seen {
			order = append(order, word)
		}
		freq[word]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return freq[order[i]] > freq[order[j]]
	})
	if len(order) > 10 {
		order = order[:10]
	}

	subject := strings.ToLower(email.Subject)
	keywords := make([]model.KeywordEntry, 0, len(order))
	for _, word := range order {
		importance := float64(freq[word]) * 0.1
		if strings.Contains(subject, word) {
			importance *= 2
		}
		keywords = append(keywords, model.KeywordEntry{
			Word:       word,
			Frequency:  freq[word],
			Importance: math.Min(importance, 1.0),
		})
	}
	return keywords
}

// ExtractUrgencyIndicators scans subject+body (joined with one space) with
// both urgency tiers, recording the first match per pattern. A hit counts as
// located in the subject when its offset in the combined string is below the
// subject length; a hit at exactly the boundary counts as body. This offset
// rule is kept as-is for compatibility with the established output, even
// though it can attribute a body match to the subject when offsets coincide.
func ExtractUrgencyIndicators(lib *patterns.Library, email *model.EmailRecord) model.UrgencyIndicators {
	combined := email.Subject + " " + email.Body

	scan := func(tier []patterns.Rule) []model.UrgencyIndicator {
		var hits []model.UrgencyIndicator
		for _, rule := range tier {
			loc := rule.Re.FindStringIndex(combined)
			if loc == nil {
				continue
			}
			location := model.LocationBody
			if loc[0] < len(email.Subject) {
				location = model.LocationSubject
			}
			hits = append(hits, model.UrgencyIndicator{
				Pattern:  rule.ID,
				Match:    combined[loc[0]:loc[1]],
				Location: location,
			})
		}
		return hits
	}

	high := scan(lib.UrgencyHigh)
	medium := scan(lib.UrgencyMedium)
	score := len(high)*3 + len(medium)

	level := model.UrgencyLevelLow
	switch {
	case score >= 3:
		level = model.UrgencyLevelHigh
	case score >= 1:
		level = model.UrgencyLevelMedium
	}

	return model.UrgencyIndicators{High: high, Medium: medium, Score: score, Level: level}
}

// ExtractActionItems splits the body into sentences and emits one item per
// (sentence, matching action pattern) pair, so a sentence matching several
// patterns produces several items; downstream ranking relies on that
// multiplicity. At most the first five items are kept, in encounter order.
func ExtractActionItems(lib *patterns.Library, email *model.EmailRecord) []model.ActionItem {
	sentences := lib.Sentence.Split(email.Body, -1)

	var items []model.ActionItem
	for _, sentence := range sentences {
		for _, rule := range lib.Actions {
			if rule.Re.MatchString(sentence) {
				items = append(items, model.ActionItem{
					Text:     strings.TrimSpace(sentence),
					Type:     classifyActionType(lib, sentence),
					Priority: actionPriority(lib, sentence),
				})
			}
		}
	}

	if len(items) > 5 {
		items = items[:5]
	}
	return items
}

func classifyActionType(lib *patterns.Library, sentence string) string {
	for _, rule := range lib.ActionTypes {
		if rule.Re.MatchString(sentence) {
			return rule.Type
		}
	}
	return model.ActionTypeGeneral
}

func actionPriority(lib *patterns.Library, sentence string) float64 {
	priority := 1.0
	if lib.UrgentTerm.MatchString(sentence) {
		priority += 2
	}
	if lib.PoliteTerm.MatchString(sentence) {
		priority += 0.5
	}
	if lib.DueTerm.MatchString(sentence) {
		priority += 1
	}
	return math.Min(priority, 3)
}

// AnalyzeSenderImportance maps the sender to a coarse importance tier. The
// automated/no-reply check runs first against the address alone and
// short-circuits; executive and management terms match name or address.
func AnalyzeSenderImportance(lib *patterns.Library, sender model.Sender) model.SenderImportance {
	email := strings.ToLower(sender.Email)
	name := strings.ToLower(sender.Name)

	level, score := model.ImportanceStandard, 1.0
	switch {
	case containsAny(email, lib.AutomatedTerms):
		level, score = model.ImportanceAutomated, 0.3
	case containsAny(name, lib.ExecutiveTerms) || containsAny(email, lib.ExecutiveTerms):
		level, score = model.ImportanceExecutive, 3.0
	case containsAny(name, lib.ManagementTerms) || containsAny(email, lib.ManagementTerms):
		level, score = model.ImportanceManagement, 2.0
	}

	return model.SenderImportance{Level: level, Score: score, Email: sender.Email, Name: sender.Name}
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

// ExtractTemporalContext collects date and time mentions from the body.
// HasMeetingTime requires a meeting/call keyword and at least one date or
// time hit.
func ExtractTemporalContext(lib *patterns.Library, email *model.EmailRecord) model.TemporalContext {
	dates := lib.DatePattern.FindAllString(email.Body, -1)
	times := lib.TimePattern.FindAllString(email.Body, -1)

	return model.TemporalContext{
		Dates:          dates,
		Times:          times,
		HasDeadline:    lib.DeadlinePattern.MatchString(email.Body),
		HasMeetingTime: lib.MeetingPattern.MatchString(email.Body) && (len(dates) > 0 || len(times) > 0),
	}
}

// AnalyzeAttachments maps each filename's extension (lowercased, after the
// last dot) through the file-type table. Unknown extensions fall into
// "other". Types is the distinct set in first-seen order; the input
// filename list is carried through unchanged.
func AnalyzeAttachments(lib *patterns.Library, attachments []string) model.AttachmentContext {
	if len(attachments) == 0 {
		return model.AttachmentContext{HasAttachments: false, Count: 0, Types: []string{}}
	}

	seen := make(map[string]bool)
	var types []string
	for _, filename := range attachments {
		ext := strings.ToLower(filename)
		if i := strings.LastIndex(filename, "."); i >= 0 {
			ext = strings.ToLower(filename[i+1:])
		}
		category, ok := lib.FileTypes[ext]
		if !ok {
			category = "other"
		}
		if !seen[category] {
			seen[category] = true
			types = append(types, category)
		}
	}

	return model.AttachmentContext{
		HasAttachments: true,
		Count:          len(attachments),
		Types:          types,
		FileNames:      attachments,
	}
}
