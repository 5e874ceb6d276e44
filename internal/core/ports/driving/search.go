package driving

import "github.com/custodia-labs/studyshelf/internal/core/domain"

// SearchService scans the paragraph index for a query term.
type SearchService interface {
	// Search counts non-overlapping case-insensitive occurrences per
	// paragraph and returns matching paragraphs in index order with
	// contextual snippets. An empty term yields zero hits, never an error.
	Search(term string) domain.SearchResponse
}

// AnnotationService resolves the marked ranges for one text.
type AnnotationService interface {
	// Resolve merges search-hit, cross-reference, principle-vocabulary, and
	// glossary candidates into a non-overlapping, position-ordered set of
	// marks over text.
	Resolve(text, term string, opts domain.AnnotateOptions) []domain.Match
}
