// Package query translates free-text user queries into structured filters
// with an explicit ambiguity signal. Extraction is table-driven and
// deterministic; the reference time is always injected by the caller so the
// component stays pure and testable.
package query

import (
	"strings"
	"time"

	"newslens/internal/core"
	"newslens/internal/keywords"
)

// Parser interprets raw query strings. It holds no mutable state and is safe
// for concurrent use.
type Parser struct{}

// NewParser creates a query parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse interprets text into an intent plus filters. now anchors the named
// date windows ("today", "this week", ...).
func (p *Parser) Parse(text string, now time.Time) core.ParsedQuery {
	lowered := strings.ToLower(text)

	q := core.ParsedQuery{
		Intent: detectIntent(lowered),
		Raw:    text,
	}
	q.Sentiment = extractSentiment(lowered)
	q.Categories = extractCategories(lowered)
	q.DateRange = extractDateRange(lowered, now)
	q.Keywords = extractFreeKeywords(lowered)

	return q
}

// detectIntent checks the intent vocabulary in strict priority order:
// compare beats analyze beats summarize beats filter; search is the default.
func detectIntent(lowered string) core.QueryIntent {
	for _, entry := range intentVocab {
		for _, w := range entry.words {
			if strings.Contains(lowered, w) {
				return entry.intent
			}
		}
	}
	return core.IntentSearch
}

func extractSentiment(lowered string) *core.SentimentLabel {
	words := wordSet(lowered)
	for _, entry := range sentimentVocab {
		for _, w := range entry.words {
			if words[w] {
				label := entry.label
				return &label
			}
		}
	}
	return nil
}

// extractCategories returns every category whose vocabulary appears in the
// query; a query can target several categories at once.
func extractCategories(lowered string) []string {
	words := wordSet(lowered)
	var matched []string
	for _, entry := range categoryVocab {
		for _, w := range entry.words {
			if words[w] {
				matched = append(matched, entry.category)
				break
			}
		}
	}
	return matched
}

// extractDateRange resolves the first named time window found in the query.
func extractDateRange(lowered string, now time.Time) *core.DateRange {
	for _, entry := range dateVocab {
		for _, phrase := range entry.phrases {
			if strings.Contains(lowered, phrase) {
				r := namedRange(entry.name, now)
				return &r
			}
		}
	}
	return nil
}

// namedRange converts a window name to a concrete inclusive range anchored
// at now.
func namedRange(name string, now time.Time) core.DateRange {
	dayStart := startOfDay(now)
	switch name {
	case "today":
		return core.DateRange{Start: dayStart, End: now}
	case "yesterday":
		return core.DateRange{Start: dayStart.AddDate(0, 0, -1), End: dayStart}
	case "this week":
		return core.DateRange{Start: startOfWeek(now), End: now}
	case "last week":
		weekStart := startOfWeek(now)
		return core.DateRange{Start: weekStart.AddDate(0, 0, -7), End: weekStart}
	case "this month":
		return core.DateRange{Start: startOfMonth(now), End: now}
	case "last month":
		monthStart := startOfMonth(now)
		return core.DateRange{Start: monthStart.AddDate(0, -1, 0), End: monthStart}
	default: // "recent", "latest"
		return core.DateRange{Start: now.AddDate(0, 0, -7), End: now}
	}
}

// extractFreeKeywords returns the tokens left over once stop-words, short
// tokens, and the vocabulary consumed by the other extractors are removed,
// deduplicated in first-seen order.
func extractFreeKeywords(lowered string) []string {
	var kws []string
	seen := make(map[string]bool)
	for _, w := range splitWords(lowered) {
		if len(w) <= 2 || keywords.IsStopWord(w) || vocabularyWords[w] || seen[w] {
			continue
		}
		seen[w] = true
		kws = append(kws, w)
	}
	return kws
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek returns the Monday 00:00 preceding or equal to t.
func startOfWeek(t time.Time) time.Time {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	return startOfDay(t).AddDate(0, 0, -daysSinceMonday)
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// splitWords lower-case tokenizes on non-alphanumeric runes.
func splitWords(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'))
	})
}

func wordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range splitWords(text) {
		set[w] = true
	}
	return set
}
