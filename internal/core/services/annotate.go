package services

import (
	"regexp"
	"sort"
	"strings"

	"github.com/custodia-labs/studyshelf/internal/core/domain"
	"github.com/custodia-labs/studyshelf/internal/core/ports/driving"
)

// AnnotationResolver turns one paragraph text into a conflict-free set of
// annotation ranges. Four candidate sources compete: occurrences of the
// active search term, known daily quotes, glossary terms and the principle
// vocabulary. Overlaps are resolved by priority, then earlier start, then
// longer span; the winners never overlap.
type AnnotationResolver struct {
	library   driving.LibraryService
	principle *regexp.Regexp
}

var _ driving.AnnotationService = (*AnnotationResolver)(nil)

// NewAnnotationResolver creates a resolver backed by the given library, which
// supplies the quote list and glossary index of the current snapshot.
func NewAnnotationResolver(library driving.LibraryService) *AnnotationResolver {
	return &AnnotationResolver{
		library:   library,
		principle: domain.CompileTermPattern(domain.PrincipleTerms, true),
	}
}

// Resolve computes the annotation ranges for text. The returned matches are
// non-overlapping and sorted by start offset.
func (r *AnnotationResolver) Resolve(text, term string, opts domain.AnnotateOptions) []domain.Match {
	if text == "" {
		return nil
	}
	snap := r.library.Snapshot()

	var candidates []domain.Match
	if trimmed := strings.TrimSpace(term); trimmed != "" {
		if pattern := domain.CompileTermPattern([]string{trimmed}, false); pattern != nil {
			candidates = append(candidates, patternMatches(text, pattern, domain.Match{
				Kind:     domain.MatchKindHit,
				Priority: domain.PriorityHit,
			})...)
		}
	}
	if opts.IncludeQuotes && snap != nil {
		candidates = append(candidates, quoteMatches(text, snap.Quotes)...)
	}
	if snap != nil && snap.Glossary.Pattern != nil {
		candidates = append(candidates, glossaryMatches(text, snap.Glossary)...)
	}
	if r.principle != nil {
		candidates = append(candidates, patternMatches(text, r.principle, domain.Match{
			Kind:     domain.MatchKindPrinciple,
			Priority: domain.PriorityPrinciple,
		})...)
	}
	return resolveOverlaps(candidates)
}

// patternMatches collects every occurrence of pattern in text, stamped with
// the kind and priority of the prototype match.
func patternMatches(text string, pattern *regexp.Regexp, proto domain.Match) []domain.Match {
	var matches []domain.Match
	for _, loc := range pattern.FindAllStringIndex(text, -1) {
		if loc[1] == loc[0] {
			continue
		}
		m := proto
		m.Start, m.End = loc[0], loc[1]
		matches = append(matches, m)
	}
	return matches
}

// quoteMatches finds verbatim occurrences of known daily quotes,
// case-insensitively and non-overlapping per quote.
func quoteMatches(text string, quotes []domain.Quote) []domain.Match {
	if len(quotes) == 0 {
		return nil
	}
	haystack := strings.ToLower(text)
	var matches []domain.Match
	for _, quote := range quotes {
		needle := strings.ToLower(strings.TrimSpace(quote.Text))
		if needle == "" {
			continue
		}
		title := "Daily Reflection"
		if quote.Date != "" {
			title = "Daily Reflection: " + quote.Date
		}
		from := 0
		for {
			idx := strings.Index(haystack[from:], needle)
			if idx < 0 {
				break
			}
			start := from + idx
			matches = append(matches, domain.Match{
				Start:    start,
				End:      start + len(needle),
				Kind:     domain.MatchKindQuote,
				Priority: domain.PriorityQuote,
				Title:    title,
			})
			from = start + len(needle)
		}
	}
	return matches
}

// glossaryMatches finds whole-word glossary terms and attaches the resolved
// entry. Spans whose matched text does not resolve to an entry are dropped.
func glossaryMatches(text string, index domain.GlossaryIndex) []domain.Match {
	var matches []domain.Match
	for _, loc := range index.Pattern.FindAllStringIndex(text, -1) {
		matched := text[loc[0]:loc[1]]
		entry := index.Lookup(matched)
		if entry == nil {
			continue
		}
		matches = append(matches, domain.Match{
			Start:    loc[0],
			End:      loc[1],
			Kind:     domain.MatchKindGlossary,
			Priority: domain.PriorityGlossary,
			Term:     matched,
			Entry:    entry,
		})
	}
	return matches
}

// resolveOverlaps picks a non-overlapping subset of candidates greedily:
// higher priority first, then earlier start, then longer span. A candidate
// overlapping any already accepted match is dropped. The winners are returned
// in text order.
func resolveOverlaps(candidates []domain.Match) []domain.Match {
	if len(candidates) == 0 {
		return nil
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return a.Len() > b.Len()
	})

	var accepted []domain.Match
	for _, candidate := range candidates {
		overlaps := false
		for _, kept := range accepted {
			if candidate.Overlaps(kept) {
				overlaps = true
				break
			}
		}
		if !overlaps {
			accepted = append(accepted, candidate)
		}
	}

	sort.Slice(accepted, func(i, j int) bool {
		return accepted[i].Start < accepted[j].Start
	})
	return accepted
}
