package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/studyshelf/internal/core/domain"
)

func assertNonOverlapping(t *testing.T, matches []domain.Match) {
	t.Helper()
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i].Start, matches[i-1].End,
			"matches %d and %d overlap", i-1, i)
	}
}

func TestResolveSearchHits(t *testing.T) {
	resolver := NewAnnotationResolver(libraryWith())
	text := "Love is the answer. I love it."

	matches := resolver.Resolve(text, "love", domain.AnnotateOptions{})

	// "love" is also a principle term, so every occurrence is claimed by
	// the higher-priority search hit.
	require.Len(t, matches, 2)
	for _, m := range matches {
		assert.Equal(t, domain.MatchKindHit, m.Kind)
		assert.Equal(t, "love", strings.ToLower(text[m.Start:m.End]))
	}
	assertNonOverlapping(t, matches)
}

func TestResolvePrincipleTerms(t *testing.T) {
	resolver := NewAnnotationResolver(libraryWith())

	matches := resolver.Resolve("Honesty and hope carried us.", "", domain.AnnotateOptions{})

	require.Len(t, matches, 2)
	assert.Equal(t, domain.MatchKindPrinciple, matches[0].Kind)
	assert.Equal(t, 0, matches[0].Start)
	assert.Equal(t, len("Honesty"), matches[0].End)
	assert.Equal(t, domain.MatchKindPrinciple, matches[1].Kind)
}

func TestResolvePrincipleWholeWordOnly(t *testing.T) {
	resolver := NewAnnotationResolver(libraryWith())
	text := "Acceptances are not acceptance words."

	matches := resolver.Resolve(text, "", domain.AnnotateOptions{})

	require.Len(t, matches, 1)
	assert.Equal(t, "acceptance", textAt(text, matches[0]))
}

func textAt(text string, m domain.Match) string {
	return text[m.Start:m.End]
}

func TestResolveQuoteCrossReference(t *testing.T) {
	library := libraryWith(dailyDocument(
		dailySection("January", 1, "First things first.", "A reflection."),
	))
	resolver := NewAnnotationResolver(library)
	text := "Remember: first things first. Then the rest."

	with := resolver.Resolve(text, "", domain.AnnotateOptions{IncludeQuotes: true})
	require.Len(t, with, 1)
	assert.Equal(t, domain.MatchKindQuote, with[0].Kind)
	assert.Equal(t, "first things first.", textAt(text, with[0]))
	assert.Equal(t, "Daily Reflection: January 1", with[0].Title)

	// Suppressed when quotes are not requested, e.g. inside the daily
	// document itself.
	without := resolver.Resolve(text, "", domain.AnnotateOptions{})
	assert.Empty(t, without)
}

func TestResolveGlossaryTerms(t *testing.T) {
	library := libraryWith(dictionaryDocument(
		[2]string{"Serenity", "Calmness of mind"},
	))
	resolver := NewAnnotationResolver(library)
	text := "We found serenity at last."

	matches := resolver.Resolve(text, "", domain.AnnotateOptions{})

	require.Len(t, matches, 1)
	m := matches[0]
	assert.Equal(t, domain.MatchKindGlossary, m.Kind)
	assert.Equal(t, "serenity", m.Term)
	require.NotNil(t, m.Entry)
	assert.Equal(t, "Serenity", m.Entry.Term)
}

func TestResolvePriorityOrder(t *testing.T) {
	// "love" is simultaneously the search term, a glossary term and a
	// principle term. The search hit must win the range.
	library := libraryWith(dictionaryDocument(
		[2]string{"Love", "Unselfish concern for others"},
	))
	resolver := NewAnnotationResolver(library)
	text := "love conquers all"

	matches := resolver.Resolve(text, "love", domain.AnnotateOptions{})

	require.Len(t, matches, 1)
	assert.Equal(t, domain.MatchKindHit, matches[0].Kind)
}

func TestResolveGlossaryLosesToPrinciple(t *testing.T) {
	library := libraryWith(dictionaryDocument(
		[2]string{"Courage", "Strength in the face of fear"},
	))
	resolver := NewAnnotationResolver(library)

	matches := resolver.Resolve("It takes courage.", "", domain.AnnotateOptions{})

	require.Len(t, matches, 1)
	assert.Equal(t, domain.MatchKindPrinciple, matches[0].Kind)
}

func TestResolveQuoteBeatsContainedTerms(t *testing.T) {
	library := libraryWith(dailyDocument(
		dailySection("March", 5, "Faith without works is dead.", "A reflection."),
	))
	resolver := NewAnnotationResolver(library)
	text := "She said faith without works is dead. Faith remained."

	matches := resolver.Resolve(text, "", domain.AnnotateOptions{IncludeQuotes: true})

	require.Len(t, matches, 2)
	assert.Equal(t, domain.MatchKindQuote, matches[0].Kind)
	assert.Equal(t, domain.MatchKindPrinciple, matches[1].Kind)
	assert.Equal(t, "Faith", textAt(text, matches[1]))
	assertNonOverlapping(t, matches)
}

func TestResolveSortedByPosition(t *testing.T) {
	resolver := NewAnnotationResolver(libraryWith())
	text := "hope then honesty then hope again"

	matches := resolver.Resolve(text, "honesty", domain.AnnotateOptions{})

	require.Len(t, matches, 3)
	for i := 1; i < len(matches); i++ {
		assert.Less(t, matches[i-1].Start, matches[i].Start)
	}
	// The middle match is the hit despite being resolved first.
	assert.Equal(t, domain.MatchKindHit, matches[1].Kind)
}

func TestResolveEmptyText(t *testing.T) {
	resolver := NewAnnotationResolver(libraryWith())
	assert.Empty(t, resolver.Resolve("", "term", domain.AnnotateOptions{}))
}

func TestResolveSubstringHits(t *testing.T) {
	resolver := NewAnnotationResolver(libraryWith())

	// Search hits are substring matches, not whole-word.
	matches := resolver.Resolve("The hopeless felt hope.", "hope", domain.AnnotateOptions{})

	require.Len(t, matches, 2)
	assert.Equal(t, domain.MatchKindHit, matches[0].Kind)
	assert.Equal(t, 4, matches[0].Start)
}

func TestResolveNoSnapshot(t *testing.T) {
	resolver := NewAnnotationResolver(&stubLibrary{})
	matches := resolver.Resolve("Hope endures.", "", domain.AnnotateOptions{IncludeQuotes: true})

	// Principle vocabulary still applies without a snapshot.
	require.Len(t, matches, 1)
	assert.Equal(t, domain.MatchKindPrinciple, matches[0].Kind)
}
