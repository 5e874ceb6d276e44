package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Finalize_AssignsIndices(t *testing.T) {
	doc := Document{
		ID:    "bbook",
		Title: "Big Book",
		Kind:  KindBook,
		Sections: []Section{
			{ID: "ch-1", Heading: "Chapter 1"},
			{ID: "ch-2", Heading: "Chapter 2"},
			{ID: "ch-3", Heading: "Chapter 3"},
		},
	}

	doc.Finalize()

	for i := range doc.Sections {
		assert.Equal(t, i, doc.Sections[i].Index)
		assert.Same(t, &doc.Sections[i], doc.SectionByID(doc.Sections[i].ID))
	}
}

func TestDocument_Finalize_DuplicateIDFirstWins(t *testing.T) {
	doc := Document{
		ID: "bbook",
		Sections: []Section{
			{ID: "dup", Heading: "First"},
			{ID: "dup", Heading: "Second"},
		},
	}

	doc.Finalize()

	// The list is ground truth; the lookup is best-effort and keeps the
	// first-inserted section.
	require.Len(t, doc.Sections, 2)
	got := doc.SectionByID("dup")
	require.NotNil(t, got)
	assert.Equal(t, "First", got.Heading)
	assert.Equal(t, 0, got.Index)
	assert.Equal(t, 1, doc.Sections[1].Index)
}

func TestDocument_Finalize_Rebuilds(t *testing.T) {
	doc := Document{Sections: []Section{{ID: "a"}}}
	doc.Finalize()
	require.NotNil(t, doc.SectionByID("a"))

	doc.Sections = append(doc.Sections, Section{ID: "b"})
	doc.Finalize()

	require.NotNil(t, doc.SectionByID("b"))
	assert.Equal(t, 1, doc.SectionByID("b").Index)
}

func TestDocument_SectionByID_Missing(t *testing.T) {
	doc := Document{}
	doc.Finalize()
	assert.Nil(t, doc.SectionByID("nope"))
}

func TestDocument_ParagraphCount(t *testing.T) {
	doc := Document{
		Sections: []Section{
			{ID: "a", Paragraphs: []string{"one", "two"}},
			{ID: "b", Paragraphs: []string{"three"}},
			{ID: "c"},
		},
	}
	assert.Equal(t, 3, doc.ParagraphCount())
}
