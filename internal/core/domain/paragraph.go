package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ParagraphRecord is one flattened, individually addressable paragraph,
// the unit of search and deep-linking. Records are rebuilt wholesale on
// every load; the per-load document key (s0, s1, ...) is stable only for
// the lifetime of one load generation.
type ParagraphRecord struct {
	// SourceID is the owning document id.
	SourceID string

	// SourceTitle is the owning document title.
	SourceTitle string

	// SectionID is the owning section id.
	SectionID string

	// Heading is the owning section heading.
	Heading string

	// Text is the raw paragraph text.
	Text string

	// SectionIndex is the section's position within its document.
	SectionIndex int

	// ParagraphIndex is the paragraph's position within its section.
	ParagraphIndex int

	// ID is the deterministic addressable identifier,
	// "p-{docKey}-{sectionIndex}-{paragraphIndex}".
	ID string
}

// BuildParagraphID composes the addressable paragraph identifier. The id is
// reconstructible from its three components alone so that search results and
// deep links stay valid across a re-render.
func BuildParagraphID(docKey string, sectionIndex, paragraphIndex int) string {
	return fmt.Sprintf("p-%s-%d-%d", docKey, sectionIndex, paragraphIndex)
}

// ParseParagraphID decomposes an identifier built by BuildParagraphID.
func ParseParagraphID(id string) (docKey string, sectionIndex, paragraphIndex int, err error) {
	rest, ok := strings.CutPrefix(id, "p-")
	if !ok {
		return "", 0, 0, fmt.Errorf("paragraph id %q: %w", id, ErrInvalidInput)
	}

	// The document key itself contains no dash, so the last two dash-separated
	// fields are always the numeric indices.
	parts := strings.Split(rest, "-")
	if len(parts) < 3 {
		return "", 0, 0, fmt.Errorf("paragraph id %q: %w", id, ErrInvalidInput)
	}

	sectionIndex, err = strconv.Atoi(parts[len(parts)-2])
	if err != nil {
		return "", 0, 0, fmt.Errorf("paragraph id %q: %w", id, ErrInvalidInput)
	}
	paragraphIndex, err = strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return "", 0, 0, fmt.Errorf("paragraph id %q: %w", id, ErrInvalidInput)
	}

	docKey = strings.Join(parts[:len(parts)-2], "-")
	if docKey == "" {
		return "", 0, 0, fmt.Errorf("paragraph id %q: %w", id, ErrInvalidInput)
	}
	return docKey, sectionIndex, paragraphIndex, nil
}
