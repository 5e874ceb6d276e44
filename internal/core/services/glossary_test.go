package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/studyshelf/internal/core/domain"
)

func glossaryFixture() *GlossaryService {
	return NewGlossaryService(libraryWith(dictionaryDocument(
		[2]string{"Serenity", "Calmness of mind"},
		[2]string{"Amends", "Reparation for a wrong"},
		[2]string{"12th step", "Carrying the message"},
	)))
}

func TestDefine(t *testing.T) {
	svc := glossaryFixture()

	entry, err := svc.Define("  SERENITY  ")
	require.NoError(t, err)
	assert.Equal(t, "Serenity", entry.Term)
	assert.Equal(t, "Calmness of mind", entry.Definition)
}

func TestDefineUnknownTerm(t *testing.T) {
	svc := glossaryFixture()
	_, err := svc.Define("nirvana")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDefineWithoutSnapshot(t *testing.T) {
	svc := NewGlossaryService(&stubLibrary{})
	_, err := svc.Define("serenity")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTermsInsertionOrder(t *testing.T) {
	svc := glossaryFixture()

	entries := svc.Terms()
	require.Len(t, entries, 3)
	assert.Equal(t, "Serenity", entries[0].Term)
	assert.Equal(t, "Amends", entries[1].Term)
	assert.Equal(t, "12th step", entries[2].Term)
}

func TestTermsByLetter(t *testing.T) {
	svc := glossaryFixture()

	buckets := svc.TermsByLetter()
	require.Len(t, buckets["S"], 1)
	require.Len(t, buckets["A"], 1)
	assert.Equal(t, "Serenity", buckets["S"][0].Term)

	// "12th step" starts with a digit but buckets by its first letter.
	require.Len(t, buckets["T"], 1)
	assert.Equal(t, "12th step", buckets["T"][0].Term)
}

func TestTermsWithoutSnapshot(t *testing.T) {
	svc := NewGlossaryService(&stubLibrary{})
	assert.Empty(t, svc.Terms())
	assert.Empty(t, svc.TermsByLetter())
}
