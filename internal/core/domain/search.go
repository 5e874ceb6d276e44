package domain

const (
	// MaxDisplayedResults caps how many result paragraphs a response
	// carries. TotalHits keeps counting past the cap so consumers can
	// report the full occurrence count.
	MaxDisplayedResults = 150

	// SnippetContext is how many characters of context a snippet keeps on
	// each side of the first occurrence.
	SnippetContext = 60

	// SnippetFallbackLength is the prefix length used when the matched term
	// cannot be located for snippet windowing.
	SnippetFallbackLength = 140
)

// SearchResult is one paragraph that matched a query.
type SearchResult struct {
	ParagraphRecord

	// Count is the number of non-overlapping occurrences in this paragraph.
	Count int

	// Snippet is the contextual excerpt around the first occurrence.
	Snippet string
}

// SearchResponse is the outcome of one query over the paragraph index.
// Results keep paragraph-index order; there is no relevance ranking.
type SearchResponse struct {
	// TotalHits is the sum of occurrence counts across all results.
	TotalHits int

	// Paragraphs is the number of matching paragraphs, counted past the
	// display cap.
	Paragraphs int

	// Results lists matching paragraphs in index order, capped at
	// MaxDisplayedResults.
	Results []SearchResult
}
