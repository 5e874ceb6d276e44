package services

import (
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/studyshelf/internal/core/domain"
	"github.com/custodia-labs/studyshelf/internal/core/ports/driving"
	"github.com/custodia-labs/studyshelf/internal/logger"
)

// SearchService performs case-insensitive substring search over the paragraph
// index of the current snapshot.
type SearchService struct {
	library driving.LibraryService
}

var _ driving.SearchService = (*SearchService)(nil)

// NewSearchService creates a search service backed by the given library.
func NewSearchService(library driving.LibraryService) *SearchService {
	return &SearchService{library: library}
}

// Search returns every paragraph containing the term, in index order, with a
// snippet around the first occurrence. TotalHits counts non-overlapping
// occurrences across all paragraphs; Results is capped for display.
func (s *SearchService) Search(term string) domain.SearchResponse {
	needle := strings.ToLower(strings.TrimSpace(term))
	snap := s.library.Snapshot()
	if needle == "" || snap == nil {
		return domain.SearchResponse{Results: []domain.SearchResult{}}
	}

	resp := domain.SearchResponse{Results: []domain.SearchResult{}}
	for _, record := range snap.Paragraphs {
		count := countOccurrences(record.Text, needle)
		if count == 0 {
			continue
		}
		resp.TotalHits += count
		resp.Paragraphs++
		if len(resp.Results) < domain.MaxDisplayedResults {
			resp.Results = append(resp.Results, domain.SearchResult{
				ParagraphRecord: record,
				Count:           count,
				Snippet:         makeSnippet(record.Text, needle),
			})
		}
	}
	logger.Debug("search %q: %d hits in %d paragraphs", needle, resp.TotalHits, resp.Paragraphs)
	return resp
}

// countOccurrences counts non-overlapping occurrences of the lower-cased
// needle in text, case-insensitively.
func countOccurrences(text, needle string) int {
	if needle == "" {
		return 0
	}
	return strings.Count(strings.ToLower(text), needle)
}

// makeSnippet extracts a window around the first occurrence of the needle
// with ellipses marking truncation. When the needle is not found the leading
// part of the text is returned instead.
func makeSnippet(text, needle string) string {
	lower := strings.ToLower(text)
	idx := strings.Index(lower, needle)
	if idx < 0 {
		return clipRunes(text, domain.SnippetFallbackLength)
	}

	start := idx - domain.SnippetContext
	if start < 0 {
		start = 0
	}
	end := idx + len(needle) + domain.SnippetContext
	if end > len(text) {
		end = len(text)
	}
	for start > 0 && !utf8.RuneStart(text[start]) {
		start--
	}
	for end < len(text) && !utf8.RuneStart(text[end]) {
		end++
	}

	snippet := strings.TrimSpace(text[start:end])
	if start > 0 {
		snippet = "..." + snippet
	}
	if end < len(text) {
		snippet += "..."
	}
	return snippet
}

func clipRunes(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	end := limit
	for end > 0 && !utf8.RuneStart(text[end]) {
		end--
	}
	return text[:end] + "..."
}
