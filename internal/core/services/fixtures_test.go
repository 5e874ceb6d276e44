package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/studyshelf/internal/core/domain"
)

// stubLibrary serves a fixed snapshot to the services under test.
type stubLibrary struct {
	snap *domain.Snapshot
}

func (s *stubLibrary) Load(ctx context.Context, force bool) (*domain.Snapshot, error) {
	return s.snap, nil
}

func (s *stubLibrary) LoadLocal(ctx context.Context, raws []domain.RawSource) (*domain.Snapshot, error) {
	return s.snap, nil
}

func (s *stubLibrary) Snapshot() *domain.Snapshot {
	return s.snap
}

// libraryWith builds a published-shape snapshot from documents, running the
// same finalisation and indexing as a real load.
func libraryWith(docs ...domain.Document) *stubLibrary {
	return &stubLibrary{snap: buildSnapshot(docs)}
}

func bookDocument(id, title string, paragraphs ...string) domain.Document {
	return domain.Document{
		ID:    id,
		Title: title,
		Kind:  domain.KindBook,
		Sections: []domain.Section{
			{ID: id + "-1", Heading: "Chapter One", Paragraphs: paragraphs},
		},
	}
}

// dictionaryDocument builds a dictionary document from term/definition
// pairs, in order. Order matters for first-wins duplicate handling.
func dictionaryDocument(pairs ...[2]string) domain.Document {
	doc := domain.Document{
		ID:    domain.GlossaryDocumentID,
		Title: "Dictionary",
		Kind:  domain.KindBook,
	}
	for _, pair := range pairs {
		doc.Sections = append(doc.Sections, domain.Section{
			ID:         pair[0],
			Heading:    pair[0],
			Paragraphs: []string{pair[1]},
		})
	}
	return doc
}

func dailyDocument(sections ...domain.Section) domain.Document {
	return domain.Document{
		ID:       domain.DailyDocumentID,
		Title:    "Daily Reflections",
		Kind:     domain.KindDaily,
		Sections: sections,
	}
}

func dailySection(month string, day int, quote, reflection string) domain.Section {
	return domain.Section{
		ID:         fmt.Sprintf("%s-%d", strings.ToLower(month), day),
		Heading:    month,
		Paragraphs: []string{quote, reflection},
		Meta: domain.SectionMeta{
			Type:       "daily",
			Date:       fmt.Sprintf("%s %d", month, day),
			Month:      month,
			Day:        day,
			Quote:      quote,
			Reflection: reflection,
		},
	}
}
