package keywords

import (
	"math"
	"sort"
	"strings"

	"newslens/internal/core"
)

// Extractor ranks the terms of a single document against a document
// collection using term frequency weighted by inverse document frequency.
// It holds only configuration, so a single Extractor is safe for concurrent
// use; every call is a pure function of its inputs.
type Extractor struct {
	minTermLength int
	stopWords     map[string]bool
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMinTermLength overrides the minimum token length (default 4).
func WithMinTermLength(n int) Option {
	return func(e *Extractor) { e.minTermLength = n }
}

// NewExtractor creates an extractor with default settings.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		minTermLength: 4,
		stopWords:     commonStopWords,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns up to k terms of doc ranked by descending salience against
// the collection. Terms common across the collection are down-weighted, terms
// distinctive to doc are up-weighted. Ties keep first-occurrence order. An
// empty document yields an empty slice, never an error.
func (e *Extractor) Extract(doc core.Document, collection []core.Document, k int) []core.WeightedTerm {
	if k <= 0 {
		return nil
	}

	tokens := e.Tokenize(doc.Text())
	if len(tokens) == 0 {
		return nil
	}

	// Term frequency and first-occurrence position within the document.
	tf := make(map[string]int, len(tokens))
	firstSeen := make(map[string]int, len(tokens))
	for i, tok := range tokens {
		if _, seen := tf[tok]; !seen {
			firstSeen[tok] = i
		}
		tf[tok]++
	}

	df := e.documentFrequencies(tf, collection)
	n := len(collection)
	if n == 0 {
		n = 1
	}

	terms := make([]core.WeightedTerm, 0, len(tf))
	for term, count := range tf {
		freq := df[term]
		if freq == 0 {
			freq = 1
		}
		weight := float64(count) * math.Log(1+float64(n)/float64(freq))
		terms = append(terms, core.WeightedTerm{Term: term, Weight: weight})
	}

	sort.SliceStable(terms, func(i, j int) bool {
		if terms[i].Weight != terms[j].Weight {
			return terms[i].Weight > terms[j].Weight
		}
		return firstSeen[terms[i].Term] < firstSeen[terms[j].Term]
	})

	if len(terms) > k {
		terms = terms[:k]
	}
	return terms
}

// Tokenize splits text into lower-cased qualifying tokens: letters and digits
// only, stop-words removed, tokens shorter than the configured minimum length
// dropped. Duplicates are preserved so callers can count frequencies.
func (e *Extractor) Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isWordRune(r)
	})

	var tokens []string
	for _, f := range fields {
		if len(f) < e.minTermLength || e.stopWords[f] {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// documentFrequencies counts, for each candidate term, how many documents in
// the collection contain it at least once.
func (e *Extractor) documentFrequencies(candidates map[string]int, collection []core.Document) map[string]int {
	df := make(map[string]int, len(candidates))
	for _, d := range collection {
		seen := make(map[string]bool)
		for _, tok := range e.Tokenize(d.Text()) {
			if _, want := candidates[tok]; want && !seen[tok] {
				df[tok]++
				seen[tok] = true
			}
		}
	}
	return df
}

func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
