package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/studyshelf/internal/core/domain"
)

// Theme maps each match kind to a lipgloss style.
type Theme struct {
	// Hit highlights occurrences of the active search term.
	Hit lipgloss.Style

	// Quote marks passages that are known daily quotes.
	Quote lipgloss.Style

	// Principle marks words from the principle vocabulary.
	Principle lipgloss.Style

	// Glossary marks defined dictionary terms.
	Glossary lipgloss.Style
}

// DefaultTheme returns the default annotation palette.
func DefaultTheme() *Theme {
	return &Theme{
		Hit:       lipgloss.NewStyle().Background(lipgloss.Color("#F9E2AF")).Foreground(lipgloss.Color("#1E1E2E")),
		Quote:     lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")).Italic(true),
		Principle: lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")).Bold(true),
		Glossary:  lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Underline(true),
	}
}

// PlainTheme returns a theme with no styling, leaving text untouched.
func PlainTheme() *Theme {
	return &Theme{}
}

// Renderer styles paragraph text according to its annotation ranges.
type Renderer struct {
	theme *Theme
}

// New creates a renderer. A nil theme uses the default palette.
func New(theme *Theme) *Renderer {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &Renderer{theme: theme}
}

// Annotate applies the matches to text. Matches must be non-overlapping and
// sorted by start offset, which is what the annotation resolver produces.
// Out-of-range matches are skipped rather than panicking on foreign input.
func (r *Renderer) Annotate(text string, matches []domain.Match) string {
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + len(matches)*16)
	pos := 0
	for _, m := range matches {
		if m.Start < pos || m.End > len(text) || m.Start >= m.End {
			continue
		}
		b.WriteString(text[pos:m.Start])
		b.WriteString(r.styleFor(m.Kind).Render(text[m.Start:m.End]))
		pos = m.End
	}
	b.WriteString(text[pos:])
	return b.String()
}

func (r *Renderer) styleFor(kind domain.MatchKind) lipgloss.Style {
	switch kind {
	case domain.MatchKindHit:
		return r.theme.Hit
	case domain.MatchKindQuote:
		return r.theme.Quote
	case domain.MatchKindPrinciple:
		return r.theme.Principle
	case domain.MatchKindGlossary:
		return r.theme.Glossary
	default:
		return lipgloss.NewStyle()
	}
}
