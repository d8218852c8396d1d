package topics

import (
	"math"
	"sort"

	"newslens/internal/core"
	"newslens/internal/keywords"
)

const (
	// DefaultMinArticles is the support floor for a term to become a topic.
	DefaultMinArticles = 3
	// CategoryMinArticles is the lowered support floor used for
	// category-scoped discovery, where collections are smaller.
	CategoryMinArticles = 2

	termsPerDocument  = 10
	maxTopics         = 20
	maxRelatedTopics  = 5
	maxRelatedTerms   = 5
	trendRisingAbove  = 20.0
	trendFallingBelow = -20.0
)

// Analyzer discovers named topics across a document collection and tracks
// their momentum between time windows. Topics are recomputed fresh on every
// call; there is no persistent topic identity and no hidden state, so two
// calls over the same collection return identical results.
type Analyzer struct {
	extractor *keywords.Extractor
}

// NewAnalyzer creates a topic analyzer backed by the given keyword extractor.
// A nil extractor gets the default configuration.
func NewAnalyzer(extractor *keywords.Extractor) *Analyzer {
	if extractor == nil {
		extractor = keywords.NewExtractor()
	}
	return &Analyzer{extractor: extractor}
}

// Discover finds topics supported by at least minArticles distinct documents,
// ranked by descending support. At most 20 topics are returned. Trend and
// velocity are left at stable/0; only the trend-aware calls populate them.
func (a *Analyzer) Discover(docs []core.Document, minArticles int) []core.Topic {
	if len(docs) == 0 {
		return nil
	}
	if minArticles < 1 {
		minArticles = DefaultMinArticles
	}

	// Per-document extracted terms, then the inverted term -> documents map.
	docTerms := make([][]string, len(docs))
	for i, d := range docs {
		weighted := a.extractor.Extract(d, docs, termsPerDocument)
		terms := make([]string, len(weighted))
		for j, wt := range weighted {
			terms[j] = wt.Term
		}
		docTerms[i] = terms
	}

	support := make(map[string][]int) // term -> indexes of supporting documents
	for i, terms := range docTerms {
		for _, t := range terms {
			support[t] = append(support[t], i)
		}
	}

	type candidate struct {
		term string
		docs []int
	}
	var candidates []candidate
	for term, idx := range support {
		if len(idx) >= minArticles {
			candidates = append(candidates, candidate{term: term, docs: idx})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if len(candidates[i].docs) != len(candidates[j].docs) {
			return len(candidates[i].docs) > len(candidates[j].docs)
		}
		return candidates[i].term < candidates[j].term
	})
	if len(candidates) > maxTopics {
		candidates = candidates[:maxTopics]
	}

	result := make([]core.Topic, 0, len(candidates))
	for _, c := range candidates {
		members := make([]core.Document, len(c.docs))
		for i, idx := range c.docs {
			members[i] = docs[idx]
		}
		result = append(result, core.Topic{
			Keyword:         c.term,
			Count:           len(members),
			Documents:       members,
			RelatedKeywords: relatedKeywords(c.term, c.docs, docTerms),
			Trend:           core.TrendStable,
			Velocity:        0,
		})
	}
	return result
}

// relatedKeywords collects the other terms extracted from a topic's
// supporting documents, in first-seen order, capped at 5.
func relatedKeywords(topic string, supporting []int, docTerms [][]string) []string {
	var related []string
	seen := map[string]bool{topic: true}
	for _, idx := range supporting {
		for _, t := range docTerms[idx] {
			if seen[t] {
				continue
			}
			seen[t] = true
			related = append(related, t)
			if len(related) == maxRelatedTerms {
				return related
			}
		}
	}
	return related
}

// AnalyzeTrends discovers topics independently in two time windows and
// reports how each current-window topic moved. A topic absent from the
// previous window counts as a full-strength rise of exactly 100%, never a
// division-by-zero error. Records are ordered by descending absolute change.
func (a *Analyzer) AnalyzeTrends(current, previous []core.Document) []core.TopicTrend {
	currentTopics := a.Discover(current, DefaultMinArticles)
	if len(currentTopics) == 0 {
		return nil
	}
	previousTopics := a.Discover(previous, DefaultMinArticles)

	previousCounts := make(map[string]int, len(previousTopics))
	for _, t := range previousTopics {
		previousCounts[t.Keyword] = t.Count
	}

	trends := make([]core.TopicTrend, 0, len(currentTopics))
	for _, t := range currentTopics {
		prev := previousCounts[t.Keyword]
		change := 100.0
		if prev > 0 {
			change = float64(t.Count-prev) / float64(prev) * 100
		}
		trends = append(trends, core.TopicTrend{
			Keyword:       t.Keyword,
			CurrentCount:  t.Count,
			PreviousCount: prev,
			ChangePercent: change,
			Direction:     classify(change),
			IsNew:         prev == 0,
		})
	}

	sort.SliceStable(trends, func(i, j int) bool {
		return math.Abs(trends[i].ChangePercent) > math.Abs(trends[j].ChangePercent)
	})
	return trends
}

// Emerging splits the collection at its timestamp midpoint, compares the
// recent half against the older half, and returns the full-collection topics
// enriched with trend direction and velocity, sorted by descending absolute
// velocity. Documents without a timestamp sort as the oldest.
func (a *Analyzer) Emerging(docs []core.Document) []core.Topic {
	if len(docs) == 0 {
		return nil
	}

	byRecency := make([]core.Document, len(docs))
	copy(byRecency, docs)
	sort.SliceStable(byRecency, func(i, j int) bool {
		return byRecency[i].PublishedAt.After(byRecency[j].PublishedAt)
	})

	// Integer floor split: on odd counts the extra document falls into the
	// older half.
	mid := len(byRecency) / 2
	recent, older := byRecency[:mid], byRecency[mid:]

	velocities := make(map[string]core.TopicTrend)
	for _, tr := range a.AnalyzeTrends(recent, older) {
		velocities[tr.Keyword] = tr
	}

	result := a.Discover(docs, DefaultMinArticles)
	for i := range result {
		if tr, ok := velocities[result[i].Keyword]; ok {
			result[i].Trend = tr.Direction
			result[i].Velocity = tr.ChangePercent
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return math.Abs(result[i].Velocity) > math.Abs(result[j].Velocity)
	})
	return result
}

// ByCategory runs discovery independently for each category in the
// collection. minArticles below 1 falls back to the lowered category floor
// of 2. Map keys are the categories as they appear on the documents.
func (a *Analyzer) ByCategory(docs []core.Document, minArticles int) map[string][]core.Topic {
	if len(docs) == 0 {
		return nil
	}
	if minArticles < 1 {
		minArticles = CategoryMinArticles
	}

	grouped := make(map[string][]core.Document)
	for _, d := range docs {
		grouped[d.Category] = append(grouped[d.Category], d)
	}

	result := make(map[string][]core.Topic, len(grouped))
	for category, members := range grouped {
		if topics := a.Discover(members, minArticles); len(topics) > 0 {
			result[category] = topics
		}
	}
	return result
}

// Related finds the topics sharing the most supporting documents with the
// topic named by keyword, excluding the topic itself and topics with no
// overlap. At most 5 are returned, sorted by descending overlap.
func (a *Analyzer) Related(topics []core.Topic, keyword string) []core.Topic {
	var target *core.Topic
	for i := range topics {
		if topics[i].Keyword == keyword {
			target = &topics[i]
			break
		}
	}
	if target == nil {
		return nil
	}

	targetIDs := make(map[int]bool, len(target.Documents))
	for _, d := range target.Documents {
		targetIDs[d.ID] = true
	}

	type scored struct {
		topic   core.Topic
		overlap int
	}
	var matches []scored
	for _, t := range topics {
		if t.Keyword == keyword {
			continue
		}
		shared := 0
		for _, d := range t.Documents {
			if targetIDs[d.ID] {
				shared++
			}
		}
		if shared > 0 {
			matches = append(matches, scored{topic: t, overlap: shared})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].overlap > matches[j].overlap
	})
	if len(matches) > maxRelatedTopics {
		matches = matches[:maxRelatedTopics]
	}

	result := make([]core.Topic, len(matches))
	for i, m := range matches {
		result[i] = m.topic
	}
	return result
}

func classify(changePercent float64) core.TrendDirection {
	switch {
	case changePercent > trendRisingAbove:
		return core.TrendRising
	case changePercent < trendFallingBelow:
		return core.TrendFalling
	default:
		return core.TrendStable
	}
}
