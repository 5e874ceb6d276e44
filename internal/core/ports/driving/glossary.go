package driving

import "github.com/custodia-labs/studyshelf/internal/core/domain"

// GlossaryService looks up dictionary terms.
type GlossaryService interface {
	// Define resolves a term case-insensitively.
	// Returns domain.ErrNotFound when the term is not indexed.
	Define(term string) (*domain.GlossaryEntry, error)

	// Terms returns every indexed entry in insertion order.
	Terms() []domain.GlossaryEntry

	// TermsByLetter groups entries into alphabetical buckets (A-Z plus "#").
	TermsByLetter() map[string][]domain.GlossaryEntry
}
