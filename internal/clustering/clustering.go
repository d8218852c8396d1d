package clustering

import (
	"fmt"
	"strings"

	"newslens/internal/core"
	"newslens/internal/keywords"
)

// SimilarityClusterer groups documents that cover the same story by pairwise
// term overlap. The algorithm is a deliberate single-pass greedy grouping:
// quadratic in the collection size, non-transitive (a seed may absorb two
// documents that are not similar to each other), and fully deterministic for
// a given input order. Callers wanting a bound on cost should truncate the
// collection before invoking Cluster.
type SimilarityClusterer struct {
	SimilarityThreshold float64 // Absorb when overlap reaches this value (default 0.30)
	CategoryThreshold   float64 // Lower bar when seed and candidate share a category (default 0.15)
	MinTermLength       int     // Tokens must be strictly longer than this (default 4)
	MaxTerms            int     // Term set cap per document (default 20)
}

// NewSimilarityClusterer creates a clusterer with the default thresholds.
// The thresholds are tuned constants; changing them changes which stories
// merge, so overrides should come from configuration, not call sites.
func NewSimilarityClusterer() *SimilarityClusterer {
	return &SimilarityClusterer{
		SimilarityThreshold: 0.30,
		CategoryThreshold:   0.15,
		MinTermLength:       4,
		MaxTerms:            20,
	}
}

// Cluster partitions documents into story clusters. Every document belongs to
// exactly one cluster; documents without similar peers form singletons. Empty
// input yields an empty slice, never an error.
func (sc *SimilarityClusterer) Cluster(docs []core.Document) []core.Cluster {
	if len(docs) == 0 {
		return nil
	}

	termSets := make([]map[string]bool, len(docs))
	for i, d := range docs {
		termSets[i] = sc.termSet(d)
	}

	processed := make([]bool, len(docs))
	var clusters []core.Cluster

	for i := range docs {
		if processed[i] {
			continue
		}

		members := []core.Document{docs[i]}
		for j := i + 1; j < len(docs); j++ {
			if processed[j] {
				continue
			}
			sim := overlap(termSets[i], termSets[j])
			sameCategory := strings.EqualFold(docs[i].Category, docs[j].Category)
			if sim >= sc.SimilarityThreshold || (sim >= sc.CategoryThreshold && sameCategory) {
				members = append(members, docs[j])
				processed[j] = true
			}
		}
		processed[i] = true

		clusters = append(clusters, core.Cluster{
			ID:             fmt.Sprintf("cluster_%d", len(clusters)),
			Representative: representative(members),
			Documents:      members,
		})
	}

	return clusters
}

// termSet builds the bounded comparison vocabulary for one document:
// lower-cased tokens longer than MinTermLength characters, stop-words
// removed, duplicates dropped, capped at MaxTerms in first-seen order.
func (sc *SimilarityClusterer) termSet(d core.Document) map[string]bool {
	fields := strings.FieldsFunc(strings.ToLower(d.Text()), func(r rune) bool {
		return !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'))
	})

	set := make(map[string]bool, sc.MaxTerms)
	for _, f := range fields {
		if len(set) >= sc.MaxTerms {
			break
		}
		if len(f) <= sc.MinTermLength || keywords.IsStopWord(f) {
			continue
		}
		set[f] = true
	}
	return set
}

// overlap is the size of the intersection divided by the larger set size,
// with the denominator floored at 1 to guard against empty term sets.
func overlap(a, b map[string]bool) float64 {
	shared := 0
	for t := range a {
		if b[t] {
			shared++
		}
	}

	larger := len(a)
	if len(b) > larger {
		larger = len(b)
	}
	if larger < 1 {
		larger = 1
	}
	return float64(shared) / float64(larger)
}

// representative picks the member with the most recent timestamp. A zero
// timestamp counts as the earliest possible time, and ties keep the
// first-seen member.
func representative(members []core.Document) core.Document {
	rep := members[0]
	for _, m := range members[1:] {
		if m.PublishedAt.After(rep.PublishedAt) {
			rep = m
		}
	}
	return rep
}
