package query

import (
	"fmt"
	"strings"
	"time"

	"newslens/internal/core"
)

// GenerateResponse builds a human-readable answer for a parsed query and its
// filtered results. now is the same reference time the query was parsed with,
// used to describe named date windows.
func GenerateResponse(q core.ParsedQuery, results []core.Document, now time.Time) string {
	if len(results) == 0 {
		return "No articles found matching your query. Try broadening the filters or using different keywords."
	}

	var b strings.Builder
	if len(results) == 1 {
		b.WriteString("Found 1 article")
	} else {
		b.WriteString(fmt.Sprintf("Found %d articles", len(results)))
	}

	if q.Sentiment != nil {
		b.WriteString(fmt.Sprintf(" with %s sentiment", *q.Sentiment))
	}
	if len(q.Categories) > 0 {
		b.WriteString(fmt.Sprintf(" in %s", strings.Join(q.Categories, ", ")))
	}
	if q.DateRange != nil {
		b.WriteString(" from " + describeRange(*q.DateRange, now))
	}
	if len(q.Keywords) > 0 {
		b.WriteString(fmt.Sprintf(" mentioning %s", strings.Join(q.Keywords, ", ")))
	}
	b.WriteString(".")

	switch q.Intent {
	case core.IntentSummarize:
		b.WriteString(" Here is a summary of the matched coverage.")
	case core.IntentAnalyze:
		b.WriteString(" Analysis of the matched coverage follows.")
	case core.IntentCompare:
		b.WriteString(" Comparison across the matched articles follows.")
	}

	return b.String()
}

// describeRange names the range when it lines up with a window anchored at
// now, and falls back to explicit dates otherwise.
func describeRange(r core.DateRange, now time.Time) string {
	switch {
	case r.Start.Equal(startOfDay(now)):
		return "today"
	case r.Start.Equal(startOfWeek(now)) && r.End.Equal(now):
		return "this week"
	case r.Start.Equal(startOfMonth(now)) && r.End.Equal(now):
		return "this month"
	default:
		return fmt.Sprintf("%s to %s", r.Start.Format("2006-01-02"), r.End.Format("2006-01-02"))
	}
}
