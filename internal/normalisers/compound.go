package normalisers

import (
	"encoding/json"

	"github.com/custodia-labs/studyshelf/internal/core/domain"
	"github.com/custodia-labs/studyshelf/internal/logger"
)

// compoundPayload is the two-part steps/traditions file: one payload that
// normalises into up to two documents.
type compoundPayload struct {
	Metadata   string          `json:"metadata"`
	Author     string          `json:"author"`
	Foreword   *compoundEntry  `json:"foreword"`
	Steps      []compoundEntry `json:"steps"`
	Traditions []compoundEntry `json:"traditions"`
}

// compoundEntry is one step, tradition, or foreword entry.
type compoundEntry struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Name     string   `json:"name"`
	Subtitle string   `json:"subtitle"`
	Content  []string `json:"content"`
	Number   int      `json:"number"`
}

// normaliseCompound splits a compound payload into a steps document (the
// foreword, when present, leads it) and a traditions document. Only
// non-empty parts are emitted; when neither part yields sections the result
// is a single empty document under the original id.
func normaliseCompound(id string, data []byte, fallbackTitle string) []domain.Document {
	var payload compoundPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		logger.Warn("compound payload %s: %v", id, err)
		return []domain.Document{unknownDocument(id, fallbackTitle)}
	}

	var steps, traditions []domain.Section
	if payload.Foreword != nil {
		steps = append(steps, sectionFromEntry(*payload.Foreword, "foreword"))
	}
	for _, entry := range payload.Steps {
		steps = append(steps, sectionFromEntry(entry, "step"))
	}
	for _, entry := range payload.Traditions {
		traditions = append(traditions, sectionFromEntry(entry, "tradition"))
	}

	var docs []domain.Document
	if len(steps) > 0 {
		docs = append(docs, makePartDocument("steps", "Twelve Steps", payload, steps))
	}
	if len(traditions) > 0 {
		docs = append(docs, makePartDocument("traditions", "Twelve Traditions", payload, traditions))
	}
	if len(docs) > 0 {
		return docs
	}

	// Neither part produced sections: keep the original id so the source
	// still reconciles, but with nothing to show.
	doc := domain.Document{
		ID:       id,
		Title:    firstNonEmpty(fallbackTitle, id),
		Kind:     domain.KindBook,
		Metadata: payload.Metadata,
		Author:   payload.Author,
	}
	doc.Finalize()
	return []domain.Document{doc}
}

func makePartDocument(id, title string, payload compoundPayload, sections []domain.Section) domain.Document {
	doc := domain.Document{
		ID:       id,
		Title:    title,
		Kind:     domain.KindBook,
		Metadata: payload.Metadata,
		Author:   payload.Author,
		Sections: sections,
	}
	doc.Finalize()
	return doc
}

// sectionFromEntry builds a section from one compound entry. The subtitle,
// when present, leads the paragraph list.
func sectionFromEntry(entry compoundEntry, entryType string) domain.Section {
	heading := firstNonEmpty(entry.Title, entry.Name, "Untitled")

	paragraphs := make([]string, 0, len(entry.Content)+1)
	paragraphs = append(paragraphs, entry.Subtitle)
	paragraphs = append(paragraphs, entry.Content...)

	sectionID := entry.ID
	if sectionID == "" {
		sectionID = slugify(heading)
	}

	return domain.Section{
		ID:         sectionID,
		Heading:    heading,
		Paragraphs: dropEmpty(paragraphs),
		Meta: domain.SectionMeta{
			Type:     entryType,
			Number:   entry.Number,
			Subtitle: entry.Subtitle,
		},
	}
}
