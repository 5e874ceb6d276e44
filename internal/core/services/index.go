package services

import (
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/studyshelf/internal/core/domain"
)

// BuildParagraphIndex flattens the given documents into a single ordered list
// of paragraph records. The returned map resolves every document key that can
// appear inside a paragraph ID (list position "s0", "s1", ... as well as the
// document ID itself) back to the document ID.
func BuildParagraphIndex(docs []domain.Document) ([]domain.ParagraphRecord, map[string]string) {
	records := make([]domain.ParagraphRecord, 0)
	keys := make(map[string]string, len(docs)*2)

	for i := range docs {
		doc := &docs[i]
		positional := "s" + strconv.Itoa(i)
		keys[positional] = doc.ID
		if _, ok := keys[doc.ID]; !ok {
			keys[doc.ID] = doc.ID
		}
		for si := range doc.Sections {
			section := &doc.Sections[si]
			for pi, text := range section.Paragraphs {
				records = append(records, domain.ParagraphRecord{
					SourceID:       doc.ID,
					SourceTitle:    doc.Title,
					SectionID:      section.ID,
					Heading:        section.Heading,
					Text:           text,
					SectionIndex:   si,
					ParagraphIndex: pi,
					ID:             domain.BuildParagraphID(positional, si, pi),
				})
			}
		}
	}
	return records, keys
}

// BuildGlossaryIndex turns a dictionary document into a term index. Headings
// of a single character or sections without any definition text are skipped,
// and when the same term appears twice the first definition wins. The
// compiled pattern matches whole words only, longest term first, so that
// compound terms such as "open-mindedness" are preferred over their prefixes.
func BuildGlossaryIndex(doc *domain.Document) domain.GlossaryIndex {
	index := domain.GlossaryIndex{Entries: make(map[string]domain.GlossaryEntry)}
	if doc == nil {
		return index
	}

	for si := range doc.Sections {
		section := &doc.Sections[si]
		term := strings.TrimSpace(section.Heading)
		if utf8.RuneCountInString(term) <= 1 {
			continue
		}
		definition := strings.TrimSpace(strings.Join(section.Paragraphs, " "))
		if definition == "" {
			continue
		}
		key := strings.ToLower(term)
		if _, ok := index.Entries[key]; ok {
			continue
		}

		parts := trimParts(section.Meta.DefinitionParts)
		if len(parts) == 0 {
			parts = domain.SplitDefinitionParts(definition)
		}
		index.Entries[key] = domain.GlossaryEntry{
			Term:          term,
			Definition:    definition,
			Parts:         parts,
			Pronunciation: strings.TrimSpace(section.Meta.Pronunciation),
			Pages:         strings.TrimSpace(section.Meta.Pages),
		}
		index.Terms = append(index.Terms, term)
	}

	if len(index.Terms) > 0 {
		sorted := make([]string, len(index.Terms))
		copy(sorted, index.Terms)
		sort.SliceStable(sorted, func(i, j int) bool {
			return len(sorted[i]) > len(sorted[j])
		})
		index.Pattern = domain.CompileTermPattern(sorted, true)
	}
	return index
}

// BuildQuoteIndex collects the distinct daily-reflection quotes of a daily
// document in section order. Duplicate quote texts are kept once.
func BuildQuoteIndex(doc *domain.Document) []domain.Quote {
	if doc == nil {
		return nil
	}
	var quotes []domain.Quote
	seen := make(map[string]struct{})
	for si := range doc.Sections {
		meta := &doc.Sections[si].Meta
		text := strings.TrimSpace(meta.Quote)
		if text == "" {
			continue
		}
		if _, ok := seen[text]; ok {
			continue
		}
		seen[text] = struct{}{}
		quotes = append(quotes, domain.Quote{Text: text, Date: strings.TrimSpace(meta.Date)})
	}
	return quotes
}

// MergeSources combines cached and freshly fetched documents by ID, with
// fetched documents replacing cached ones. The result is ordered by the
// canonical source order first; documents outside the canonical list keep
// their first-seen position after it.
func MergeSources(cached, fetched []domain.Document) []domain.Document {
	byID := make(map[string]domain.Document, len(cached)+len(fetched))
	var order []string

	add := func(docs []domain.Document) {
		for _, doc := range docs {
			if _, ok := byID[doc.ID]; !ok {
				order = append(order, doc.ID)
			}
			byID[doc.ID] = doc
		}
	}
	add(cached)
	add(fetched)

	merged := make([]domain.Document, 0, len(byID))
	taken := make(map[string]struct{}, len(byID))
	for _, id := range domain.SourceOrder {
		if doc, ok := byID[id]; ok {
			merged = append(merged, doc)
			taken[id] = struct{}{}
		}
	}
	for _, id := range order {
		if _, ok := taken[id]; ok {
			continue
		}
		merged = append(merged, byID[id])
	}
	return merged
}

func trimParts(parts []string) []string {
	var out []string
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
