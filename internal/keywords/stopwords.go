package keywords

// commonStopWords is the shared English stop-word set used across the engine.
var commonStopWords = buildStopWords()

func buildStopWords() map[string]bool {
	words := []string{
		"a", "an", "and", "are", "as", "at", "be", "been", "but", "by",
		"can", "could", "did", "do", "does", "each", "for", "from", "had",
		"has", "have", "he", "her", "him", "his", "how", "if", "in", "into",
		"is", "it", "its", "just", "like", "make", "many", "more", "most",
		"much", "new", "no", "not", "now", "of", "on", "or", "other", "our",
		"out", "over", "said", "she", "so", "some", "such", "than", "that",
		"the", "their", "them", "then", "there", "these", "they", "this",
		"those", "through", "time", "to", "two", "up", "was", "we", "were",
		"what", "when", "which", "while", "who", "will", "with", "would",
		"you", "your", "about", "after", "also", "before", "being", "between",
		"both", "during", "only", "same", "very",
	}

	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// IsStopWord reports whether the lower-cased token is a common English
// stop-word.
func IsStopWord(token string) bool {
	return commonStopWords[token]
}
