package sources

import (
	"time"

	"newslens/internal/core"
)

// SampleCorpus returns a small built-in corpus for demo runs, anchored at
// now so the recency-sensitive commands have something to show.
func SampleCorpus(now time.Time) []core.Document {
	day := 24 * time.Hour
	return []core.Document{
		{
			ID:          1,
			Title:       "New artificial intelligence chip unveiled",
			Body:        "The company unveiled a new artificial intelligence chip promising faster inference for large language models in data centers.",
			Category:    "Technology",
			PublishedAt: now.Add(-2 * time.Hour),
			Source:      "TechWire",
			Sentiment:   0.4,
		},
		{
			ID:          2,
			Title:       "Artificial intelligence chip launch draws rivals",
			Body:        "Following the artificial intelligence chip launch, rivals announced competing accelerators for large language models inference.",
			Category:    "Technology",
			PublishedAt: now.Add(-5 * time.Hour),
			Source:      "Silicon Daily",
			Sentiment:   0.1,
		},
		{
			ID:          3,
			Title:       "Championship game ends in dramatic overtime",
			Body:        "The championship game result stunned fans after a dramatic overtime finish decided the tournament title.",
			Category:    "Sports",
			PublishedAt: now.Add(-1 * day),
			Source:      "Sports Desk",
			Sentiment:   0.6,
		},
		{
			ID:          4,
			Title:       "Markets slide on inflation worries",
			Body:        "Global markets declined sharply as inflation worries deepened and investors moved toward defensive positions.",
			Category:    "Business",
			PublishedAt: now.Add(-2 * day),
			Source:      "Market Watcher",
			Sentiment:   -0.5,
		},
		{
			ID:          5,
			Title:       "Artificial intelligence regulation debated",
			Body:        "Lawmakers debated artificial intelligence regulation proposals covering transparency requirements for model developers.",
			Category:    "Politics",
			PublishedAt: now.Add(-3 * day),
			Source:      "Capitol Report",
			Sentiment:   0.0,
		},
		{
			ID:          6,
			Title:       "Vaccine study reports encouraging results",
			Body:        "A vaccine study reported encouraging interim results, with researchers describing strong immune responses across cohorts.",
			Category:    "Health",
			PublishedAt: now.Add(-4 * day),
			Source:      "Health Journal",
			Sentiment:   0.7,
		},
		{
			ID:          7,
			Title:       "Artificial intelligence startup raises funding",
			Body:        "An artificial intelligence startup raised significant funding to expand its language model training infrastructure.",
			Category:    "Business",
			PublishedAt: now.Add(-6 * day),
			Source:      "Venture Note",
			Sentiment:   0.5,
		},
		{
			ID:          8,
			Title:       "Storm disrupts regional transport",
			Body:        "A severe storm disrupted regional transport networks, grounding flights and closing major rail corridors overnight.",
			Category:    "World",
			PublishedAt: now.Add(-8 * day),
			Source:      "Global Brief",
			Sentiment:   -0.6,
		},
	}
}
