package normalisers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/custodia-labs/studyshelf/internal/core/domain"
	"github.com/custodia-labs/studyshelf/internal/logger"
)

// dailyEntry is one raw dated entry in a flat list payload.
type dailyEntry struct {
	Date       string `json:"date"`
	Title      string `json:"title"`
	Quote      string `json:"quote"`
	Reflection string `json:"reflection"`
	Source     string `json:"source"`
	Month      string `json:"month"`
	Day        int    `json:"day"`
	PageIndex  int    `json:"page_index"`
}

// normaliseDaily converts a dated-entries list into one document of kind
// daily. Each entry becomes one section whose paragraphs are the quote and
// the reflection, with missing values dropped.
func normaliseDaily(id string, data []byte, fallbackTitle string) []domain.Document {
	var entries []dailyEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		logger.Warn("daily payload %s: %v", id, err)
		return []domain.Document{unknownDocument(id, fallbackTitle)}
	}

	sections := make([]domain.Section, 0, len(entries))
	for i, entry := range entries {
		date := entry.Date
		if date == "" {
			date = fmt.Sprintf("Day %d", i+1)
		}
		heading := strings.TrimSpace(date + " - " + entry.Title)

		month := entry.Month
		if month == "" {
			month = "month"
		}
		dayPart := entry.Day
		if dayPart == 0 {
			dayPart = i + 1
		}

		sections = append(sections, domain.Section{
			ID:         slugify(fmt.Sprintf("%s-%d", month, dayPart)),
			Heading:    heading,
			Paragraphs: dropEmpty([]string{entry.Quote, entry.Reflection}),
			Meta: domain.SectionMeta{
				Type:       "daily",
				Date:       entry.Date,
				Title:      entry.Title,
				Quote:      entry.Quote,
				Source:     entry.Source,
				Reflection: entry.Reflection,
				Month:      entry.Month,
				Day:        entry.Day,
				PageIndex:  entry.PageIndex,
			},
		})
	}

	doc := domain.Document{
		ID:       id,
		Title:    firstNonEmpty(fallbackTitle, "Daily Reflections"),
		Kind:     domain.KindDaily,
		Sections: sections,
	}
	doc.Finalize()
	return []domain.Document{doc}
}
