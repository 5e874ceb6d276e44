// Package tui provides the interactive terminal reader for StudyShelf.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"errors"

	"github.com/custodia-labs/studyshelf/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the reader.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Library loads and exposes the current snapshot.
	Library driving.LibraryService

	// Search scans the paragraph index.
	Search driving.SearchService

	// Annotate resolves highlight ranges for displayed text.
	Annotate driving.AnnotationService

	// Glossary answers term lookups.
	Glossary driving.GlossaryService

	// Daily navigates the dated-entries collection.
	Daily driving.DailyService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return errors.New("tui: nil ports")
	}
	if p.Library == nil {
		return errors.New("tui: library service is required")
	}
	if p.Search == nil {
		return errors.New("tui: search service is required")
	}
	if p.Annotate == nil {
		return errors.New("tui: annotation service is required")
	}
	if p.Glossary == nil {
		return errors.New("tui: glossary service is required")
	}
	if p.Daily == nil {
		return errors.New("tui: daily service is required")
	}
	return nil
}
