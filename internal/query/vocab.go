package query

import "newslens/internal/core"

// Fixed vocabulary tables driving intent, sentiment, category, and date
// extraction. Order matters: within each dimension the first match wins, so
// the tables are slices, not maps.

var intentVocab = []struct {
	intent core.QueryIntent
	words  []string
}{
	{core.IntentCompare, []string{"compare", "versus", "vs"}},
	{core.IntentAnalyze, []string{"analyze", "analysis"}},
	{core.IntentSummarize, []string{"summarize", "summary"}},
	{core.IntentFilter, []string{"show", "find", "get"}},
}

var sentimentVocab = []struct {
	label core.SentimentLabel
	words []string
}{
	{core.SentimentPositive, []string{"positive", "good", "upbeat", "optimistic", "happy", "uplifting"}},
	{core.SentimentNegative, []string{"negative", "bad", "pessimistic", "concerning", "sad", "grim"}},
	{core.SentimentNeutral, []string{"neutral", "balanced"}},
}

var categoryVocab = []struct {
	category string
	words    []string
}{
	{"Technology", []string{"tech", "technology", "software", "gadget", "startup", "digital"}},
	{"Business", []string{"business", "economy", "market", "finance", "financial", "stocks"}},
	{"Politics", []string{"politics", "political", "election", "government", "policy"}},
	{"Sports", []string{"sports", "sport", "game", "match", "championship", "tournament"}},
	{"Health", []string{"health", "medical", "medicine", "wellness", "disease"}},
	{"Science", []string{"science", "scientific", "research", "study", "space"}},
	{"Entertainment", []string{"entertainment", "movie", "music", "celebrity", "film"}},
}

// Named time windows. Multi-word phrases come before their single-word
// suffixes so "last week" never matches as "week".
var dateVocab = []struct {
	name    string
	phrases []string
}{
	{"today", []string{"today"}},
	{"yesterday", []string{"yesterday"}},
	{"this week", []string{"this week"}},
	{"last week", []string{"last week"}},
	{"this month", []string{"this month"}},
	{"last month", []string{"last month"}},
	{"recent", []string{"recent", "latest"}},
}

// ambiguousEntities lists words with multiple common real-world senses,
// each with candidate disambiguations and example confidences.
var ambiguousEntities = map[string][]core.DisambiguationOption{
	"apple": {
		{Label: "Apple Inc.", Value: "apple inc", Description: "The technology company", Confidence: 0.7},
		{Label: "Apple (Fruit)", Value: "apple fruit", Description: "The fruit", Confidence: 0.3},
	},
	"amazon": {
		{Label: "Amazon.com", Value: "amazon com", Description: "The e-commerce company", Confidence: 0.75},
		{Label: "Amazon Rainforest", Value: "amazon rainforest", Description: "The South American rainforest", Confidence: 0.25},
	},
	"jaguar": {
		{Label: "Jaguar Cars", Value: "jaguar cars", Description: "The British car maker", Confidence: 0.6},
		{Label: "Jaguar (Animal)", Value: "jaguar animal", Description: "The big cat", Confidence: 0.4},
	},
	"tesla": {
		{Label: "Tesla Inc.", Value: "tesla inc", Description: "The electric vehicle company", Confidence: 0.8},
		{Label: "Nikola Tesla", Value: "nikola tesla", Description: "The inventor", Confidence: 0.2},
	},
	"mercury": {
		{Label: "Mercury (Planet)", Value: "mercury planet", Description: "The planet", Confidence: 0.5},
		{Label: "Mercury (Element)", Value: "mercury element", Description: "The chemical element", Confidence: 0.5},
	},
	"shell": {
		{Label: "Shell plc", Value: "shell plc", Description: "The energy company", Confidence: 0.65},
		{Label: "Shell (Object)", Value: "shell object", Description: "A seashell or casing", Confidence: 0.35},
	},
}

// vagueTerms are filler words that weaken a query without narrowing it.
var vagueTerms = map[string]bool{
	"stuff":      true,
	"things":     true,
	"thing":      true,
	"something":  true,
	"anything":   true,
	"everything": true,
	"whatever":   true,
	"etc":        true,
}

// vocabularyWords is the union of every word consumed by the intent,
// sentiment, category, and date extractors. Free-keyword extraction removes
// these so filters never double-count them.
var vocabularyWords = buildVocabularyWords()

func buildVocabularyWords() map[string]bool {
	set := make(map[string]bool)
	for _, entry := range intentVocab {
		for _, w := range entry.words {
			set[w] = true
		}
	}
	for _, entry := range sentimentVocab {
		for _, w := range entry.words {
			set[w] = true
		}
	}
	for _, entry := range categoryVocab {
		for _, w := range entry.words {
			set[w] = true
		}
	}
	for _, entry := range dateVocab {
		for _, phrase := range entry.phrases {
			for _, w := range splitWords(phrase) {
				set[w] = true
			}
		}
	}
	return set
}
