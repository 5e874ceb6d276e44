package domain

import (
	"regexp"
	"strings"
	"unicode"
)

// GlossaryEntry is one dictionary term with its definition.
type GlossaryEntry struct {
	// Term is the canonical display form.
	Term string

	// Definition is the flattened definition text.
	Definition string

	// Parts is the ordered list of alternate senses.
	Parts []string

	// Pronunciation is the phonetic spelling, possibly empty.
	Pronunciation string

	// Pages is the page reference string, possibly empty.
	Pages string
}

// GlossaryIndex is the lookup from lowercase term to entry plus one compiled
// pattern matching any indexed term as a whole word. An empty index has a
// nil Pattern and glossary linking becomes a no-op.
type GlossaryIndex struct {
	// Entries is keyed by the trimmed, lowercased term.
	// First occurrence wins; later duplicates are ignored.
	Entries map[string]GlossaryEntry

	// Pattern matches any indexed term, whole-word and case-insensitive,
	// with longer terms preferred over their substrings. Nil when empty.
	Pattern *regexp.Regexp

	// Terms lists the canonical forms in insertion order.
	Terms []string
}

// Lookup resolves a term case-insensitively. Returns nil when absent.
func (g *GlossaryIndex) Lookup(term string) *GlossaryEntry {
	key := strings.ToLower(strings.TrimSpace(term))
	if key == "" {
		return nil
	}
	entry, ok := g.Entries[key]
	if !ok {
		return nil
	}
	return &entry
}

// Empty reports whether the index holds no terms.
func (g *GlossaryIndex) Empty() bool {
	return g == nil || len(g.Entries) == 0
}

// definitionPartSplitter matches a slash or double-slash sense separator
// with surrounding whitespace.
var definitionPartSplitter = regexp.MustCompile(`\s*/{1,2}\s*`)

// SplitDefinitionParts splits a flattened definition into alternate senses
// on slash separators, trimming and dropping empty parts.
func SplitDefinitionParts(text string) []string {
	var parts []string
	for _, part := range definitionPartSplitter.Split(text, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

// IndexLetter returns the alphabetical bucket for a term: its first A-Z
// letter uppercased, or "#" when the term has none.
func IndexLetter(term string) string {
	for _, r := range strings.TrimSpace(term) {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			return string(unicode.ToUpper(r))
		}
	}
	return "#"
}
