package sentiment

import (
	"strings"
	"testing"

	"newslens/internal/core"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name     string
		compound float64
		expected core.SentimentLabel
	}{
		{"strongly positive", 0.8, core.SentimentPositive},
		{"just above threshold", 0.051, core.SentimentPositive},
		{"exactly positive threshold", 0.05, core.SentimentNeutral},
		{"zero", 0.0, core.SentimentNeutral},
		{"exactly negative threshold", -0.05, core.SentimentNeutral},
		{"just below threshold", -0.051, core.SentimentNegative},
		{"strongly negative", -0.9, core.SentimentNegative},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.compound); got != tc.expected {
				t.Errorf("Classify(%v) = %s, expected %s", tc.compound, got, tc.expected)
			}
		})
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)

	if s.Total != 0 {
		t.Errorf("Expected zero total, got %d", s.Total)
	}
	if s.DominantTone != core.SentimentNeutral {
		t.Errorf("Empty collection should default to neutral, got %s", s.DominantTone)
	}
}

func TestSummarize_Distribution(t *testing.T) {
	docs := []core.Document{
		{ID: 1, Sentiment: 0.6},
		{ID: 2, Sentiment: 0.2},
		{ID: 3, Sentiment: -0.4},
		{ID: 4, Sentiment: 0.0},
	}

	s := Summarize(docs)

	if s.Total != 4 {
		t.Errorf("Expected total 4, got %d", s.Total)
	}
	if s.Distribution[core.SentimentPositive] != 2 {
		t.Errorf("Expected 2 positive, got %d", s.Distribution[core.SentimentPositive])
	}
	if s.Distribution[core.SentimentNegative] != 1 {
		t.Errorf("Expected 1 negative, got %d", s.Distribution[core.SentimentNegative])
	}
	if s.Distribution[core.SentimentNeutral] != 1 {
		t.Errorf("Expected 1 neutral, got %d", s.Distribution[core.SentimentNeutral])
	}
	if s.DominantTone != core.SentimentPositive {
		t.Errorf("Expected positive dominant tone, got %s", s.DominantTone)
	}

	expectedAvg := (0.6 + 0.2 - 0.4 + 0.0) / 4
	if diff := s.AverageScore - expectedAvg; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Expected average %v, got %v", expectedAvg, s.AverageScore)
	}
}

func TestSummaryFormat(t *testing.T) {
	s := Summarize([]core.Document{
		{ID: 1, Sentiment: 0.7},
		{ID: 2, Sentiment: -0.3},
	})

	out := s.Format()
	for _, want := range []string{"## Sentiment", "positive: 1", "negative: 1", "neutral: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("Formatted summary should contain %q, got:\n%s", want, out)
		}
	}
}
