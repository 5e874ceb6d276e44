package domain

import (
	"regexp"
	"strings"
)

// MatchKind tags a resolved annotation range with its visual/semantic class.
type MatchKind string

const (
	// MatchKindHit marks an occurrence of the active search term.
	MatchKindHit MatchKind = "hit"

	// MatchKindQuote marks a passage that is a known daily quote.
	MatchKindQuote MatchKind = "quote"

	// MatchKindPrinciple marks a word from the fixed principle vocabulary.
	MatchKindPrinciple MatchKind = "principle"

	// MatchKindGlossary marks a whole-word occurrence of a glossary term.
	MatchKindGlossary MatchKind = "glossary"
)

// Annotation priorities. Higher wins when candidate ranges overlap.
const (
	PriorityHit       = 3
	PriorityQuote     = 2
	PriorityPrinciple = 1
	PriorityGlossary  = 0
)

// Match is one marked character range over a single text string, valid for
// one render. Offsets are byte offsets and the interval is half-open.
type Match struct {
	// Start is the inclusive start offset.
	Start int

	// End is the exclusive end offset.
	End int

	// Kind is the visual/semantic class.
	Kind MatchKind

	// Priority decides conflicts between overlapping candidates.
	Priority int

	// Title is optional hover/tooltip text (cross-reference quotes).
	Title string

	// Term is the matched glossary term as it appears in the text.
	Term string

	// Entry is the resolved glossary entry for glossary matches.
	Entry *GlossaryEntry
}

// Len returns the span length in bytes.
func (m Match) Len() int { return m.End - m.Start }

// Overlaps reports strict half-open interval overlap with other.
func (m Match) Overlaps(other Match) bool {
	return m.Start < other.End && m.End > other.Start
}

// AnnotateOptions configures annotation resolution for one text.
type AnnotateOptions struct {
	// IncludeQuotes enables cross-reference quote detection. Quote
	// highlighting is suppressed inside the daily document itself.
	IncludeQuotes bool
}

// PrincipleTerms is the fixed vocabulary of virtue words highlighted in
// every rendered text.
var PrincipleTerms = []string{
	"honesty",
	"hope",
	"faith",
	"courage",
	"integrity",
	"willingness",
	"humility",
	"love",
	"service",
	"tolerance",
	"patience",
	"perseverance",
	"forgiveness",
	"compassion",
	"kindness",
	"gratitude",
	"responsibility",
	"acceptance",
	"open-mindedness",
	"open mindedness",
}

// CompileTermPattern builds one case-insensitive alternation over terms,
// optionally anchored at word boundaries. Terms are trimmed and empties
// dropped; nil is returned when nothing remains. Alternation order follows
// the input slice, so callers that need longest-first matching must sort
// before compiling.
func CompileTermPattern(terms []string, wholeWord bool) *regexp.Regexp {
	quoted := make([]string, 0, len(terms))
	for _, term := range terms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(term))
	}
	if len(quoted) == 0 {
		return nil
	}

	boundary := ""
	if wholeWord {
		boundary = `\b`
	}
	pattern := `(?i)` + boundary + `(?:` + strings.Join(quoted, "|") + `)` + boundary
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil
	}
	return re
}
