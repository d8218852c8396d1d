package core

import "time"

// Document represents one ingested news item. Documents are immutable once
// handed to the engine; analysis only produces derived views.
type Document struct {
	ID          int       `json:"id"`           // Unique identifier for the document
	Title       string    `json:"title"`        // Headline (may be empty)
	Body        string    `json:"body"`         // Free-text body
	Category    string    `json:"category"`     // Single category label, exactly one per document
	PublishedAt time.Time `json:"published_at"` // Publication timestamp (zero value if unknown)
	Source      string    `json:"source"`       // Publisher/source name (may be empty)
	Sentiment   float64   `json:"sentiment"`    // Compound sentiment score attached upstream (-1.0 to 1.0)
}

// Text returns the analyzable text of the document.
func (d Document) Text() string {
	if d.Title == "" {
		return d.Body
	}
	return d.Title + " " + d.Body
}

// WeightedTerm is a normalized token with a salience score relative to the
// collection it was extracted against. Recomputed on every call, never cached.
type WeightedTerm struct {
	Term   string  `json:"term"`
	Weight float64 `json:"weight"`
}

// Cluster groups documents believed to report the same story. Clusters
// partition the input collection: every document lands in exactly one cluster,
// and a document with no similar peers forms a singleton.
type Cluster struct {
	ID             string     `json:"id"`             // Identifier within one clustering run
	Representative Document   `json:"representative"` // Most recent member (ties keep input order)
	Documents      []Document `json:"documents"`      // All members, in absorption order
}

// Size returns the member count.
func (c Cluster) Size() int { return len(c.Documents) }

// TrendDirection classifies a topic's movement between two time windows.
type TrendDirection string

const (
	TrendRising  TrendDirection = "rising"
	TrendStable  TrendDirection = "stable"
	TrendFalling TrendDirection = "falling"
)

// Topic is a keyword-anchored aggregation of documents discussing a shared
// subject. Trend and Velocity stay at their defaults unless the topic was
// produced by a trend-aware call.
type Topic struct {
	Keyword         string         `json:"keyword"`          // Defining keyword, case-normalized
	Count           int            `json:"count"`            // Supporting document count
	Documents       []Document     `json:"documents"`        // Supporting documents
	RelatedKeywords []string       `json:"related_keywords"` // Co-occurring terms, at most 5
	Trend           TrendDirection `json:"trend"`            // rising, stable, or falling
	Velocity        float64        `json:"velocity"`         // Signed percentage change between windows
}

// TopicTrend records how one topic moved between a previous and a current
// time window.
type TopicTrend struct {
	Keyword       string         `json:"keyword"`
	CurrentCount  int            `json:"current_count"`
	PreviousCount int            `json:"previous_count"`
	ChangePercent float64        `json:"change_percent"`
	Direction     TrendDirection `json:"direction"`
	IsNew         bool           `json:"is_new"` // True when the topic was absent from the previous window
}

// SentimentLabel is the discrete sentiment class derived from a compound score.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNegative SentimentLabel = "negative"
	SentimentNeutral  SentimentLabel = "neutral"
)

// QueryIntent is the detected purpose of a free-text query.
type QueryIntent string

const (
	IntentSearch    QueryIntent = "search"
	IntentFilter    QueryIntent = "filter"
	IntentAnalyze   QueryIntent = "analyze"
	IntentCompare   QueryIntent = "compare"
	IntentSummarize QueryIntent = "summarize"
)

// DateRange is an inclusive [Start, End] window.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the range, boundaries included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// ParsedQuery is the structured interpretation of a free-text query. Filter
// fields are nil/empty when the query did not mention that dimension. Raw
// always carries the original query verbatim.
type ParsedQuery struct {
	Intent     QueryIntent     `json:"intent"`
	Sentiment  *SentimentLabel `json:"sentiment,omitempty"`
	Categories []string        `json:"categories,omitempty"`
	DateRange  *DateRange      `json:"date_range,omitempty"`
	Keywords   []string        `json:"keywords,omitempty"`
	Raw        string          `json:"raw"`
}

// DisambiguationOption is one candidate reading of an ambiguous query term.
type DisambiguationOption struct {
	Label       string  `json:"label"`       // Human-readable sense, e.g. "Apple Inc."
	Value       string  `json:"value"`       // Machine-usable substitution value
	Description string  `json:"description"` // Short explanation of this sense
	Confidence  float64 `json:"confidence"`  // Example confidence for this sense
}

// AmbiguityResult reports how confidently a query can be given a single
// interpretation. Confidence never drops below 0.1 so results stay actionable.
type AmbiguityResult struct {
	Confidence     float64                `json:"confidence"`      // In [0.1, 1.0]
	ClarityScore   int                    `json:"clarity_score"`   // round(Confidence*10), in [1, 10]
	IsAmbiguous    bool                   `json:"is_ambiguous"`    // True iff Confidence < 0.7
	Options        []DisambiguationOption `json:"options"`         // Candidate readings of ambiguous terms
	Suggestions    []string               `json:"suggestions"`     // Rephrasings, at most 3
	AmbiguousTerms []string               `json:"ambiguous_terms"` // Terms that triggered penalties
}
