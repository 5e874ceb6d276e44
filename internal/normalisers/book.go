package normalisers

import (
	"encoding/json"
	"fmt"

	"github.com/custodia-labs/studyshelf/internal/core/domain"
	"github.com/custodia-labs/studyshelf/internal/logger"
)

// sectionedPayload is the generic sectioned-book shape. Dictionary-style
// documents ride this path too, carrying pronunciation, pages, and
// definitionParts on their sections.
type sectionedPayload struct {
	Title    string           `json:"title"`
	Author   string           `json:"author"`
	Metadata string           `json:"metadata"`
	Sections []sectionPayload `json:"sections"`
}

type sectionPayload struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Heading         string   `json:"heading"`
	Type            string   `json:"type"`
	Number          int      `json:"number"`
	Subtitle        string   `json:"subtitle"`
	Content         []string `json:"content"`
	Paragraphs      []string `json:"paragraphs"`
	Pronunciation   string   `json:"pronunciation"`
	Pages           string   `json:"pages"`
	DefinitionParts []string `json:"definitionParts"`
}

// normaliseSectioned converts a generic sectioned book into one document of
// kind book, preserving section order.
func normaliseSectioned(id string, data []byte, fallbackTitle string) []domain.Document {
	var payload sectionedPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		logger.Warn("sectioned payload %s: %v", id, err)
		return []domain.Document{unknownDocument(id, fallbackTitle)}
	}

	sections := make([]domain.Section, 0, len(payload.Sections))
	for i, raw := range payload.Sections {
		heading := firstNonEmpty(raw.Title, raw.Heading, fmt.Sprintf("Section %d", i+1))

		content := raw.Content
		if content == nil {
			content = raw.Paragraphs
		}

		sectionType := raw.Type
		if sectionType == "" {
			sectionType = "section"
		}
		meta := domain.SectionMeta{
			Type:     sectionType,
			Number:   raw.Number,
			Subtitle: raw.Subtitle,
		}
		if raw.Pronunciation != "" || raw.Pages != "" || len(raw.DefinitionParts) > 0 {
			meta.Pronunciation = raw.Pronunciation
			meta.Pages = raw.Pages
			meta.DefinitionParts = raw.DefinitionParts
		}

		sectionID := raw.ID
		if sectionID == "" {
			sectionID = fmt.Sprintf("%s-section-%d", id, i+1)
		}

		sections = append(sections, domain.Section{
			ID:         sectionID,
			Heading:    heading,
			Paragraphs: dropEmpty(content),
			Meta:       meta,
		})
	}

	doc := domain.Document{
		ID:       id,
		Title:    firstNonEmpty(payload.Title, fallbackTitle, id),
		Author:   payload.Author,
		Metadata: payload.Metadata,
		Kind:     domain.KindBook,
		Sections: sections,
	}
	doc.Finalize()
	return []domain.Document{doc}
}
