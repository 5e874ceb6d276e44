package domain

import "time"

// Snapshot is one load generation of the library: the reconciled documents
// plus every derived index, rebuilt wholesale. A new load produces a fresh
// Snapshot that replaces the previous one atomically; nothing inside a
// snapshot mutates after it is published, so readers never observe a
// half-built index.
type Snapshot struct {
	// ID identifies this load generation (diagnostics only).
	ID string

	// Documents is the reconciled document list in canonical display order.
	Documents []Document

	// Keys resolves a document key as it appears in paragraph ids
	// (positional "s0", "s1", ... or the document id itself) to the
	// document id. Positional keys are stable only within this generation.
	Keys map[string]string

	// Paragraphs is the flat searchable paragraph index over Documents.
	Paragraphs []ParagraphRecord

	// Glossary is the term index built from the dictionary document.
	Glossary GlossaryIndex

	// Quotes is the cross-reference quote list from the daily document.
	Quotes []Quote

	// LoadedAt is when this generation was built.
	LoadedAt time.Time
}

// DocumentByID returns the document with the given id, or nil.
func (s *Snapshot) DocumentByID(id string) *Document {
	if s == nil {
		return nil
	}
	for i := range s.Documents {
		if s.Documents[i].ID == id {
			return &s.Documents[i]
		}
	}
	return nil
}

// Empty reports whether the snapshot holds no documents.
func (s *Snapshot) Empty() bool {
	return s == nil || len(s.Documents) == 0
}
