package services

import (
	"github.com/custodia-labs/studyshelf/internal/core/domain"
	"github.com/custodia-labs/studyshelf/internal/core/ports/driving"
)

// GlossaryService answers dictionary lookups against the current snapshot.
type GlossaryService struct {
	library driving.LibraryService
}

var _ driving.GlossaryService = (*GlossaryService)(nil)

// NewGlossaryService creates a glossary service backed by the given library.
func NewGlossaryService(library driving.LibraryService) *GlossaryService {
	return &GlossaryService{library: library}
}

// Define resolves a term case-insensitively.
func (s *GlossaryService) Define(term string) (*domain.GlossaryEntry, error) {
	index := s.index()
	if index.Empty() {
		return nil, domain.ErrNotFound
	}
	entry := index.Lookup(term)
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	return entry, nil
}

// Terms returns every indexed entry in insertion order.
func (s *GlossaryService) Terms() []domain.GlossaryEntry {
	index := s.index()
	entries := make([]domain.GlossaryEntry, 0, len(index.Terms))
	for _, term := range index.Terms {
		if entry := index.Lookup(term); entry != nil {
			entries = append(entries, *entry)
		}
	}
	return entries
}

// TermsByLetter groups entries into alphabetical buckets. Terms without an
// A-Z letter land in the "#" bucket.
func (s *GlossaryService) TermsByLetter() map[string][]domain.GlossaryEntry {
	buckets := make(map[string][]domain.GlossaryEntry)
	for _, entry := range s.Terms() {
		letter := domain.IndexLetter(entry.Term)
		buckets[letter] = append(buckets[letter], entry)
	}
	return buckets
}

func (s *GlossaryService) index() *domain.GlossaryIndex {
	snap := s.library.Snapshot()
	if snap == nil {
		return &domain.GlossaryIndex{}
	}
	return &snap.Glossary
}
