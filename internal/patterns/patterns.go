// Package patterns holds the rule tables driving email signal extraction:
// category matchers, tiered urgency matchers, action matchers, sender
// importance term lists, temporal matchers, the stop-word set and the file
// extension map. The tables are data, compiled once at process start and
// never mutated; extractors take the library as a parameter.
package patterns

import "regexp"

// Rule pairs a pattern identifier with its compiled matcher. The identifier
// is the raw pattern source, which is what gets reported on indicator hits.
type Rule struct {
	ID string
	Re *regexp.Regexp
}

// CategoryRule is a semantic category matcher. Declaration order is the
// tie-break order for equal-confidence categories.
type CategoryRule struct {
	Name string
	Re   *regexp.Regexp
}

// ActionTypeRule classifies an action sentence; first matching rule wins.
type ActionTypeRule struct {
	Type string
	Re   *regexp.Regexp
}

// Library is the full, immutable pattern set.
type Library struct {
	UrgencyHigh   []Rule
	UrgencyMedium []Rule
	Actions       []Rule
	Categories    []CategoryRule
	ActionTypes   []ActionTypeRule

	ExecutiveTerms  []string
	ManagementTerms []string
	AutomatedTerms  []string

	StopWords map[string]struct{}
	FileTypes map[string]string

	Token    *regexp.Regexp
	Sentence *regexp.Regexp

	DatePattern     *regexp.Regexp
	TimePattern     *regexp.Regexp
	DeadlinePattern *regexp.Regexp
	MeetingPattern  *regexp.Regexp

	UrgentTerm *regexp.Regexp
	PoliteTerm *regexp.Regexp
	DueTerm    *regexp.Regexp
}

func ci(src string) *regexp.Regexp { return regexp.MustCompile("(?i)" + src) }

func rules(srcs ...string) []Rule {
	out := make([]Rule, 0, len(srcs))
	for _, s := range srcs {
		out = append(out, Rule{ID: s, Re: ci(s)})
	}
	return out
}

var defaultLibrary = &Library{
	UrgencyHigh: rules(
		`urgent`, `asap`, `immediately`, `critical`, `emergency`,
		`time[- ]sensitive`, `deadline`, `overdue`, `priority`,
		`important`, `action required`, `respond (by|before)`,
		`please respond`, `need.{0,20}(today|now|soon)`,
		`within.{0,10}(hour|day)`, `reminder`, `follow[- ]up`,
	),
	UrgencyMedium: rules(
		`please (review|check|confirm)`, `fyi`, `for your (information|review)`,
		`when (you get|you have) (a chance|time)`, `at your convenience`,
	),
	Actions: rules(
		`please (review|approve|sign|complete|submit|update|confirm|respond|reply|check)`,
		`need (you to|your)`, `can you`, `could you`, `would you`,
		`action required`, `your (approval|signature|feedback|input|response)`,
		`waiting (for|on) you`, `pending your`, `requires? your`,
		`task`, `to[- ]do`, `deadline`, `due (date|by)`,
	),
	Categories: []CategoryRule{
		{Name: "meeting", Re: ci(`meeting|schedule|calendar|appointment|call|zoom|teams`)},
		{Name: "financial", Re: ci(`invoice|payment|budget|cost|expense|billing|transaction`)},
		{Name: "project", Re: ci(`project|milestone|deliverable|sprint|roadmap|timeline`)},
		{Name: "hr", Re: ci(`leave|vacation|pto|performance|review|hr|human resources`)},
		{Name: "support", Re: ci(`issue|problem|bug|error|help|support|ticket`)},
		{Name: "sales", Re: ci(`proposal|quote|deal|client|customer|sales|opportunity`)},
		{Name: "administrative", Re: ci(`policy|procedure|compliance|regulation|documentation`)},
		{Name: "social", Re: ci(`congratulations|welcome|thank you|invitation|announcement`)},
	},
	ActionTypes: []ActionTypeRule{
		{Type: "review", Re: ci(`review|check|read`)},
		{Type: "approval", Re: ci(`approve|sign`)},
		{Type: "completion", Re: ci(`complete|finish|submit`)},
		{Type: "response", Re: ci(`respond|reply`)},
		{Type: "update", Re: ci(`update|change|modify`)},
	},

	ExecutiveTerms:  []string{"ceo", "cto", "cfo", "coo", "president", "vp", "director"},
	ManagementTerms: []string{"manager", "lead", "head", "supervisor", "coordinator"},
	AutomatedTerms:  []string{"no-reply", "noreply", "automated", "notification"},

	StopWords: stopWordSet(
		"the", "and", "for", "with", "this", "that", "from", "have", "has",
		"will", "would", "could", "should", "your", "you", "are", "was", "were",
	),
	FileTypes: map[string]string{
		"pdf": "document", "doc": "document", "docx": "document",
		"xls": "spreadsheet", "xlsx": "spreadsheet",
		"ppt": "presentation", "pptx": "presentation",
		"jpg": "image", "jpeg": "image", "png": "image", "gif": "image",
		"zip": "archive", "rar": "archive",
		"txt": "text", "csv": "data",
	},

	Token:    regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b|\b[a-z]{4,}\b`),
	Sentence: regexp.MustCompile(`[.!?]+`),

	DatePattern:     ci(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b|\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+\d{1,2}`),
	TimePattern:     ci(`\b\d{1,2}:\d{2}\s*(am|pm)?\b`),
	DeadlinePattern: ci(`deadline|due (by|date|on)|by (end of|eod)`),
	MeetingPattern:  ci(`meeting|call|scheduled`),

	UrgentTerm: ci(`urgent|asap|immediately`),
	PoliteTerm: ci(`please|kindly`),
	DueTerm:    ci(`deadline|due`),
}

func stopWordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Default returns the process-wide library. It is built once at init and
// must be treated as read-only.
func Default() *Library { return defaultLibrary }
