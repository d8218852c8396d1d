package sentiment

import (
	"fmt"
	"strings"

	"newslens/internal/core"
)

// Thresholds on the compound score. Scores arrive on documents from the
// external inference layer; the engine only partitions them.
const (
	positiveAbove = 0.05
	negativeBelow = -0.05
)

// Classify maps a compound sentiment score to its discrete label.
func Classify(compound float64) core.SentimentLabel {
	switch {
	case compound > positiveAbove:
		return core.SentimentPositive
	case compound < negativeBelow:
		return core.SentimentNegative
	default:
		return core.SentimentNeutral
	}
}

// Summary holds the sentiment distribution of a document collection.
type Summary struct {
	Total        int                         `json:"total"`
	Distribution map[core.SentimentLabel]int `json:"distribution"`
	AverageScore float64                     `json:"average_score"`
	DominantTone core.SentimentLabel         `json:"dominant_tone"`
}

// Summarize computes the sentiment distribution across documents. An empty
// collection yields a zero-total summary with a neutral dominant tone.
func Summarize(docs []core.Document) Summary {
	s := Summary{
		Distribution: make(map[core.SentimentLabel]int),
		DominantTone: core.SentimentNeutral,
	}
	if len(docs) == 0 {
		return s
	}

	var total float64
	for _, d := range docs {
		s.Distribution[Classify(d.Sentiment)]++
		total += d.Sentiment
	}
	s.Total = len(docs)
	s.AverageScore = total / float64(len(docs))

	max := 0
	for _, label := range []core.SentimentLabel{core.SentimentPositive, core.SentimentNegative, core.SentimentNeutral} {
		if count := s.Distribution[label]; count > max {
			max = count
			s.DominantTone = label
		}
	}
	return s
}

// Format renders the summary as a short markdown block.
func (s Summary) Format() string {
	var b strings.Builder

	b.WriteString("## Sentiment\n")
	b.WriteString(fmt.Sprintf("**Dominant tone:** %s (average score %.2f)\n", s.DominantTone, s.AverageScore))
	b.WriteString(fmt.Sprintf("- positive: %d\n", s.Distribution[core.SentimentPositive]))
	b.WriteString(fmt.Sprintf("- negative: %d\n", s.Distribution[core.SentimentNegative]))
	b.WriteString(fmt.Sprintf("- neutral: %d\n", s.Distribution[core.SentimentNeutral]))

	return b.String()
}
