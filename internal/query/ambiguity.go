package query

import (
	"fmt"
	"math"
	"strings"

	"newslens/internal/core"
)

// Confidence penalties. Confidence starts at 1.0 and is floored at 0.1 so a
// result is always actionable.
const (
	entityPenalty        = 0.2
	vaguePenalty         = 0.1
	shortQueryPenalty    = 0.15
	broadCategoryPenalty = 0.1

	minConfidence      = 0.1
	ambiguousBelow     = 0.7
	maxSuggestions     = 3
	shortQueryMaxWords = 2
)

// DetectAmbiguity scores how confidently text can be given a single
// interpretation. Recognized multi-sense entity terms, vague fillers, very
// short queries, and overly broad category matches each subtract from the
// confidence. Scoring depends only on the text; docs is unused today.
func (p *Parser) DetectAmbiguity(text string, docs []core.Document) core.AmbiguityResult {
	lowered := strings.ToLower(text)
	tokens := splitWords(lowered)

	confidence := 1.0
	var ambiguousTerms []string
	var options []core.DisambiguationOption
	var suggestions []string

	seenEntity := make(map[string]bool)
	seenVague := make(map[string]bool)
	for _, tok := range tokens {
		if senses, ok := ambiguousEntities[tok]; ok && !seenEntity[tok] {
			seenEntity[tok] = true
			confidence -= entityPenalty
			ambiguousTerms = append(ambiguousTerms, tok)
			options = append(options, senses...)
		}
		if vagueTerms[tok] && !seenVague[tok] {
			seenVague[tok] = true
			confidence -= vaguePenalty
			ambiguousTerms = append(ambiguousTerms, tok)
		}
	}

	if len(tokens) <= shortQueryMaxWords {
		confidence -= shortQueryPenalty
	}

	if matched := extractCategories(lowered); len(matched) > 2 {
		confidence -= broadCategoryPenalty
		suggestions = append(suggestions, narrowingSuggestion(matched))
	}

	if confidence < minConfidence {
		confidence = minConfidence
	}
	if confidence > 1.0 {
		confidence = 1.0
	}

	suggestions = append(suggestions, rephrasings(text, ambiguousTerms)...)
	suggestions = dedupeStrings(suggestions)
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}

	return core.AmbiguityResult{
		Confidence:     confidence,
		ClarityScore:   int(math.Round(confidence * 10)),
		IsAmbiguous:    confidence < ambiguousBelow,
		Options:        options,
		Suggestions:    suggestions,
		AmbiguousTerms: ambiguousTerms,
	}
}

// narrowingSuggestion proposes restricting a too-broad query to its first
// matched category.
func narrowingSuggestion(matched []string) string {
	return fmt.Sprintf("Try narrowing your query to the %s category", matched[0])
}

// rephrasings substitutes each ambiguous entity with the first word of its
// top disambiguation label.
func rephrasings(text string, ambiguousTerms []string) []string {
	var result []string
	for _, term := range ambiguousTerms {
		senses, ok := ambiguousEntities[term]
		if !ok || len(senses) == 0 {
			continue
		}
		replacement := strings.Fields(senses[0].Label)[0]
		rephrased := replaceWordFold(text, term, replacement)
		if rephrased != text {
			result = append(result, rephrased)
		}
	}
	return result
}

// replaceWordFold replaces whole-word, case-insensitive occurrences of term,
// keeping any punctuation around the word.
func replaceWordFold(text, term, replacement string) string {
	fields := strings.Fields(text)
	for i, f := range fields {
		stripped := strings.TrimLeft(f, ".,!?;:")
		prefix := f[:len(f)-len(stripped)]
		word := strings.TrimRight(stripped, ".,!?;:")
		suffix := stripped[len(word):]
		if strings.EqualFold(word, term) {
			fields[i] = prefix + replacement + suffix
		}
	}
	return strings.Join(fields, " ")
}

func dedupeStrings(items []string) []string {
	seen := make(map[string]bool, len(items))
	var result []string
	for _, s := range items {
		if seen[s] {
			continue
		}
		seen[s] = true
		result = append(result, s)
	}
	return result
}
