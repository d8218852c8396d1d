package topics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"newslens/internal/core"
)

// TrendReport is a rendered comparison of two document windows, suitable for
// the CLI and export layers. The analysis itself lives in AnalyzeTrends; the
// report only adds identity, window bounds, and human-readable findings.
type TrendReport struct {
	ID          string            `json:"id"`
	WindowStart time.Time         `json:"window_start"`
	WindowEnd   time.Time         `json:"window_end"`
	Trends      []core.TopicTrend `json:"trends"`
	KeyFindings []string          `json:"key_findings"`
	GeneratedAt time.Time         `json:"generated_at"`
}

// BuildTrendReport compares the current window against the previous one and
// wraps the result in a report. The reference time is injected so reports
// stay reproducible in tests.
func (a *Analyzer) BuildTrendReport(current, previous []core.Document, now time.Time) *TrendReport {
	trends := a.AnalyzeTrends(current, previous)

	return &TrendReport{
		ID:          uuid.NewString(),
		WindowStart: earliestTimestamp(current, now),
		WindowEnd:   now,
		Trends:      trends,
		KeyFindings: keyFindings(trends),
		GeneratedAt: now,
	}
}

func earliestTimestamp(docs []core.Document, fallback time.Time) time.Time {
	earliest := fallback
	for _, d := range docs {
		if !d.PublishedAt.IsZero() && d.PublishedAt.Before(earliest) {
			earliest = d.PublishedAt
		}
	}
	return earliest
}

// keyFindings summarizes the notable movements in plain sentences.
func keyFindings(trends []core.TopicTrend) []string {
	var newTopics, risingTopics, fallingTopics []string
	for _, tr := range trends {
		switch {
		case tr.IsNew:
			newTopics = append(newTopics, tr.Keyword)
		case tr.Direction == core.TrendRising:
			risingTopics = append(risingTopics, tr.Keyword)
		case tr.Direction == core.TrendFalling:
			fallingTopics = append(fallingTopics, tr.Keyword)
		}
	}
	sort.Strings(newTopics)
	sort.Strings(risingTopics)
	sort.Strings(fallingTopics)

	var findings []string
	if len(newTopics) > 0 {
		findings = append(findings, fmt.Sprintf("New topics emerged: %s", strings.Join(top3(newTopics), ", ")))
	}
	if len(risingTopics) > 0 {
		findings = append(findings, fmt.Sprintf("Rising topics: %s", strings.Join(top3(risingTopics), ", ")))
	}
	if len(fallingTopics) > 0 {
		findings = append(findings, fmt.Sprintf("Falling topics: %s", strings.Join(top3(fallingTopics), ", ")))
	}
	if len(findings) == 0 {
		findings = append(findings, "No significant topic movement in this period")
	}
	return findings
}

func top3(items []string) []string {
	if len(items) > 3 {
		return items[:3]
	}
	return items
}

// Format renders the report as markdown.
func (r *TrendReport) Format() string {
	var b strings.Builder

	b.WriteString("# Topic Trend Report\n")
	b.WriteString(fmt.Sprintf("**Window:** %s to %s\n",
		r.WindowStart.Format("2006-01-02"), r.WindowEnd.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("**Generated:** %s\n\n", r.GeneratedAt.Format("2006-01-02 15:04")))

	b.WriteString("## Key Findings\n")
	for _, f := range r.KeyFindings {
		b.WriteString(fmt.Sprintf("- %s\n", f))
	}
	b.WriteString("\n")

	b.WriteString("## Topic Movement\n")
	for i, tr := range r.Trends {
		if i >= 10 {
			break
		}
		status := ""
		if tr.IsNew {
			status = " (new)"
		}
		b.WriteString(fmt.Sprintf("- **%s**%s: %d → %d articles (%+.1f%%, %s)\n",
			tr.Keyword, status, tr.PreviousCount, tr.CurrentCount, tr.ChangePercent, tr.Direction))
	}

	return b.String()
}
