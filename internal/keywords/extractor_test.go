package keywords

import (
	"testing"

	"newslens/internal/core"
)

func TestExtract_EmptyDocument(t *testing.T) {
	e := NewExtractor()

	terms := e.Extract(core.Document{ID: 1}, nil, 10)
	if len(terms) != 0 {
		t.Errorf("Empty document should yield no terms, got %v", terms)
	}
}

func TestExtract_NeverExceedsK(t *testing.T) {
	e := NewExtractor()
	doc := core.Document{
		ID:   1,
		Body: "satellite launch rocket orbit payload telemetry booster capsule mission countdown ignition",
	}

	for _, k := range []int{0, 1, 3, 5, 100} {
		terms := e.Extract(doc, []core.Document{doc}, k)
		if len(terms) > k {
			t.Errorf("Extract with k=%d returned %d terms", k, len(terms))
		}
	}
}

func TestExtract_MinTermLengthAndStopWords(t *testing.T) {
	e := NewExtractor()
	doc := core.Document{
		ID:   1,
		Body: "the cat sat on a big satellite and the satellite was very shiny",
	}

	terms := e.Extract(doc, []core.Document{doc}, 10)
	for _, wt := range terms {
		if len(wt.Term) < 4 {
			t.Errorf("Term %q is shorter than the minimum length", wt.Term)
		}
		if IsStopWord(wt.Term) {
			t.Errorf("Stop-word %q should have been excluded", wt.Term)
		}
	}
}

func TestExtract_DownWeightsCollectionWideTerms(t *testing.T) {
	e := NewExtractor()

	target := core.Document{ID: 1, Body: "budget vote budget vote distinctive"}
	collection := []core.Document{
		target,
		{ID: 2, Body: "budget vote results announced"},
		{ID: 3, Body: "budget vote delayed again"},
		{ID: 4, Body: "budget vote scheduled soon"},
	}

	terms := e.Extract(target, collection, 10)
	if len(terms) == 0 {
		t.Fatal("Expected terms from non-empty document")
	}

	weights := make(map[string]float64, len(terms))
	for _, wt := range terms {
		weights[wt.Term] = wt.Weight
	}

	// "distinctive" appears once in one document; "budget" appears twice in
	// the target but in every document. Per-occurrence weight of the
	// distinctive term must be higher.
	if weights["distinctive"] <= weights["budget"]/2 {
		t.Errorf("Distinctive term should outweigh a collection-wide term per occurrence: distinctive=%f budget=%f",
			weights["distinctive"], weights["budget"])
	}
}

func TestExtract_TiesKeepFirstOccurrence(t *testing.T) {
	e := NewExtractor()
	doc := core.Document{ID: 1, Body: "zebra aardvark puffin"}

	terms := e.Extract(doc, []core.Document{doc}, 3)
	if len(terms) != 3 {
		t.Fatalf("Expected 3 terms, got %d", len(terms))
	}

	expected := []string{"zebra", "aardvark", "puffin"}
	for i, want := range expected {
		if terms[i].Term != want {
			t.Errorf("Position %d: expected %q (first-occurrence order), got %q", i, want, terms[i].Term)
		}
	}
}

func TestExtract_Deterministic(t *testing.T) {
	e := NewExtractor()
	doc := core.Document{
		ID:    1,
		Title: "Quarterly earnings beat expectations",
		Body:  "Quarterly earnings beat analyst expectations as revenue climbed across divisions.",
	}
	collection := []core.Document{
		doc,
		{ID: 2, Body: "Analyst expectations for revenue were modest this quarter."},
	}

	first := e.Extract(doc, collection, 5)
	second := e.Extract(doc, collection, 5)

	if len(first) != len(second) {
		t.Fatalf("Repeated extraction changed length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Repeated extraction differs at %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestTokenize_UsesTitleAndBody(t *testing.T) {
	e := NewExtractor()
	doc := core.Document{ID: 1, Title: "Headline keyword", Body: "body keyword"}

	terms := e.Extract(doc, []core.Document{doc}, 10)

	found := false
	for _, wt := range terms {
		if wt.Term == "headline" {
			found = true
		}
	}
	if !found {
		t.Error("Expected title tokens to participate in extraction")
	}
}
