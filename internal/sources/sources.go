// Package sources loads document corpora for the engine. Where the documents
// come from is irrelevant to the analytics core; this package only validates
// shape and hands over []core.Document slices.
package sources

import (
	"encoding/json"
	"fmt"
	"os"

	"newslens/internal/core"
)

// LoadJSON reads a corpus from a JSON file containing an array of documents.
func LoadJSON(path string) ([]core.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus file %s: %w", path, err)
	}

	var docs []core.Document
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("failed to parse corpus file %s: %w", path, err)
	}

	if err := Validate(docs); err != nil {
		return nil, fmt.Errorf("invalid corpus in %s: %w", path, err)
	}
	return docs, nil
}

// Validate checks that every document carries the required fields. Shape
// validation is the ingestion layer's responsibility; the analytics core
// assumes validated documents.
func Validate(docs []core.Document) error {
	seen := make(map[int]bool, len(docs))
	for i, d := range docs {
		if d.Body == "" {
			return fmt.Errorf("document %d (index %d) has an empty body", d.ID, i)
		}
		if d.Category == "" {
			return fmt.Errorf("document %d (index %d) has an empty category", d.ID, i)
		}
		if seen[d.ID] {
			return fmt.Errorf("duplicate document id %d", d.ID)
		}
		seen[d.ID] = true
	}
	return nil
}
