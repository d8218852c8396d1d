package clustering

import (
	"testing"
	"time"

	"newslens/internal/core"
)

func TestCluster_EmptyInput(t *testing.T) {
	sc := NewSimilarityClusterer()
	if clusters := sc.Cluster(nil); len(clusters) != 0 {
		t.Errorf("Empty input should yield no clusters, got %d", len(clusters))
	}
}

func TestCluster_SameStoryGroupsTogether(t *testing.T) {
	sc := NewSimilarityClusterer()
	docs := []core.Document{
		{ID: 1, Category: "Tech", Body: "the new artificial intelligence chip impresses reviewers"},
		{ID: 2, Category: "Tech", Body: "artificial intelligence chip launch impresses early reviewers"},
		{ID: 3, Category: "Sports", Body: "championship game result thrills supporters"},
	}

	clusters := sc.Cluster(docs)
	if len(clusters) != 2 {
		t.Fatalf("Expected 2 clusters, got %d", len(clusters))
	}

	if clusters[0].Size() != 2 {
		t.Errorf("First cluster should hold the two chip stories, got %d members", clusters[0].Size())
	}
	if clusters[0].Documents[0].ID != 1 || clusters[0].Documents[1].ID != 2 {
		t.Errorf("First cluster should contain documents 1 and 2, got %v", memberIDs(clusters[0]))
	}
	if clusters[1].Size() != 1 || clusters[1].Documents[0].ID != 3 {
		t.Errorf("Sports story should form a singleton, got %v", memberIDs(clusters[1]))
	}
}

func TestCluster_PartitionInvariant(t *testing.T) {
	sc := NewSimilarityClusterer()
	docs := []core.Document{
		{ID: 1, Category: "Tech", Body: "processor architecture redesign boosts throughput benchmarks"},
		{ID: 2, Category: "Tech", Body: "processor architecture redesign impresses benchmark testers"},
		{ID: 3, Category: "Business", Body: "quarterly earnings surprise analysts across sectors"},
		{ID: 4, Category: "Health", Body: "vaccine trial enrollment accelerates nationwide"},
		{ID: 5, Category: "Business", Body: "earnings growth surprises seasoned analysts everywhere"},
	}

	clusters := sc.Cluster(docs)

	counts := make(map[int]int)
	for _, c := range clusters {
		for _, d := range c.Documents {
			counts[d.ID]++
		}
	}

	if len(counts) != len(docs) {
		t.Errorf("Partition covers %d documents, want %d", len(counts), len(docs))
	}
	for id, n := range counts {
		if n != 1 {
			t.Errorf("Document %d appears in %d clusters, want exactly 1", id, n)
		}
	}
}

func TestCluster_CategoryLowersThreshold(t *testing.T) {
	sc := NewSimilarityClusterer()
	// Two shared terms out of nine per document puts the overlap between
	// the two thresholds, so only the same-category pair merges.
	sameCategory := []core.Document{
		{ID: 1, Category: "Tech", Body: "quantum computing milestone achieved inside research laboratory yesterday evening"},
		{ID: 2, Category: "Tech", Body: "quantum computing investments surged among venture firms throughout spring"},
	}
	differentCategory := []core.Document{
		{ID: 1, Category: "Tech", Body: "quantum computing milestone achieved inside research laboratory yesterday evening"},
		{ID: 2, Category: "Business", Body: "quantum computing investments surged among venture firms throughout spring"},
	}

	if clusters := sc.Cluster(sameCategory); len(clusters) != 1 {
		t.Errorf("Same-category pair above the lowered threshold should merge, got %d clusters", len(clusters))
	}
	if clusters := sc.Cluster(differentCategory); len(clusters) != 2 {
		t.Errorf("Cross-category pair below the global threshold should stay apart, got %d clusters", len(clusters))
	}
}

func TestCluster_RepresentativeIsMostRecent(t *testing.T) {
	sc := NewSimilarityClusterer()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	docs := []core.Document{
		{ID: 1, Category: "Tech", Body: "artificial intelligence breakthrough announced during conference keynote", PublishedAt: base},
		{ID: 2, Category: "Tech", Body: "artificial intelligence breakthrough announced during conference keynote", PublishedAt: base.Add(time.Hour)},
	}

	clusters := sc.Cluster(docs)
	if len(clusters) != 1 {
		t.Fatalf("Expected identical documents to cluster together, got %d clusters", len(clusters))
	}
	if clusters[0].Representative.ID != 2 {
		t.Errorf("Representative should be the most recent member, got document %d", clusters[0].Representative.ID)
	}
}

func TestCluster_MissingTimestampsTreatedAsEarliest(t *testing.T) {
	sc := NewSimilarityClusterer()

	docs := []core.Document{
		{ID: 1, Category: "Tech", Body: "artificial intelligence breakthrough announced during conference keynote"},
		{ID: 2, Category: "Tech", Body: "artificial intelligence breakthrough announced during conference keynote",
			PublishedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	clusters := sc.Cluster(docs)
	if len(clusters) != 1 {
		t.Fatalf("Expected a single cluster, got %d", len(clusters))
	}
	if clusters[0].Representative.ID != 2 {
		t.Errorf("Timestamped member should beat a member without timestamp, got document %d", clusters[0].Representative.ID)
	}
}

func TestCluster_RepresentativeTieKeepsFirstSeen(t *testing.T) {
	sc := NewSimilarityClusterer()
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	docs := []core.Document{
		{ID: 7, Category: "Tech", Body: "artificial intelligence breakthrough announced during conference keynote", PublishedAt: ts},
		{ID: 8, Category: "Tech", Body: "artificial intelligence breakthrough announced during conference keynote", PublishedAt: ts},
	}

	clusters := sc.Cluster(docs)
	if len(clusters) != 1 {
		t.Fatalf("Expected a single cluster, got %d", len(clusters))
	}
	if clusters[0].Representative.ID != 7 {
		t.Errorf("Timestamp tie should keep the first-seen member, got document %d", clusters[0].Representative.ID)
	}
}

func TestTermSet_CapAndFilters(t *testing.T) {
	sc := NewSimilarityClusterer()

	body := ""
	long := []string{
		"alpha1", "bravo2", "charlie", "deltas", "echoes", "foxtrot", "golfer", "hotels",
		"indias", "juliet", "kilogr", "limaaa", "mikeee", "novemb", "oscarr", "papaaa",
		"quebec", "romeoo", "sierra", "tangoo", "unifor", "victor", "whiske", "xrayss",
	}
	for _, w := range long {
		body += w + " "
	}

	set := sc.termSet(core.Document{ID: 1, Body: body + "the and cat"})
	if len(set) > sc.MaxTerms {
		t.Errorf("Term set size %d exceeds the cap %d", len(set), sc.MaxTerms)
	}
	for term := range set {
		if len(term) <= sc.MinTermLength {
			t.Errorf("Term %q is not longer than %d characters", term, sc.MinTermLength)
		}
	}
}

func memberIDs(c core.Cluster) []int {
	ids := make([]int, len(c.Documents))
	for i, d := range c.Documents {
		ids[i] = d.ID
	}
	return ids
}
