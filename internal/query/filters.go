package query

import (
	"strings"

	"newslens/internal/core"
	"newslens/internal/sentiment"
)

// ApplyFilters returns the documents matching every active filter dimension
// of q. Inactive dimensions (nil/empty fields) pass everything through.
func ApplyFilters(docs []core.Document, q core.ParsedQuery) []core.Document {
	var result []core.Document
	for _, d := range docs {
		if q.Sentiment != nil && sentiment.Classify(d.Sentiment) != *q.Sentiment {
			continue
		}
		if len(q.Categories) > 0 && !matchesCategory(d.Category, q.Categories) {
			continue
		}
		if q.DateRange != nil && (d.PublishedAt.IsZero() || !q.DateRange.Contains(d.PublishedAt)) {
			continue
		}
		if len(q.Keywords) > 0 && !containsAnyKeyword(d.Body, q.Keywords) {
			continue
		}
		result = append(result, d)
	}
	return result
}

// matchesCategory is a case-insensitive substring match in either direction,
// so "tech" matches "Technology" and "Technology News" matches "technology".
func matchesCategory(docCategory string, queryCategories []string) bool {
	dc := strings.ToLower(docCategory)
	if dc == "" {
		return false
	}
	for _, qc := range queryCategories {
		qcl := strings.ToLower(qc)
		if strings.Contains(dc, qcl) || strings.Contains(qcl, dc) {
			return true
		}
	}
	return false
}

func containsAnyKeyword(body string, kws []string) bool {
	lowered := strings.ToLower(body)
	for _, kw := range kws {
		if strings.Contains(lowered, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
