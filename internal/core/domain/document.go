package domain

// Kind classifies a normalised document by its structural origin.
// It determines indexing and display behaviour downstream.
type Kind string

const (
	// KindBook is a generic sectioned text (chapters, steps, definitions).
	KindBook Kind = "book"

	// KindDaily is a dated-entries collection (one section per day).
	KindDaily Kind = "daily"

	// KindUnknown marks input whose shape was not recognised. Unknown
	// documents are empty but harmlessly displayable.
	KindUnknown Kind = "unknown"
)

// Document is the canonical representation of one source text after
// normalisation. Section order is significant and preserved from source.
type Document struct {
	// ID is the stable short identifier, unique across loaded documents.
	ID string

	// Title is the human-readable title.
	Title string

	// Author is the attributed author, possibly empty.
	Author string

	// Metadata is a descriptive string carried from the source, possibly empty.
	Metadata string

	// Kind classifies the document by structural origin.
	Kind Kind

	// Sections is the ordered list of sections.
	Sections []Section

	// byID is the derived section lookup, built by Finalize.
	byID map[string]*Section
}

// Section is a titled subdivision of a document: a chapter, a step, a
// dictionary entry, or a dated entry.
type Section struct {
	// ID is unique within the document in well-formed input. Collisions are
	// not deduplicated: the sections list is ground truth and the byID map
	// keeps the first-inserted section for a colliding id.
	ID string

	// Heading is the display label, never empty after normalisation.
	Heading string

	// Paragraphs is the ordered list of non-empty paragraph strings.
	Paragraphs []string

	// Meta carries origin-dependent structural fields.
	Meta SectionMeta

	// Index is the zero-based position within the owning document,
	// assigned by Finalize.
	Index int
}

// SectionMeta is the structural bag attached to each section. Which fields
// are populated depends on the document's origin: every section has Type;
// dated entries carry the daily fields; dictionary entries carry
// Pronunciation, Pages, and DefinitionParts.
type SectionMeta struct {
	Type     string
	Number   int
	Subtitle string

	// Daily-entry fields.
	Date       string
	Title      string
	Quote      string
	Source     string
	Reflection string
	Month      string
	Day        int
	PageIndex  int

	// Dictionary-entry fields.
	Pronunciation   string
	Pages           string
	DefinitionParts []string
}

// Finalize assigns section indices and rebuilds the section lookup.
// It must run exactly once after all sections are attached, and again
// whenever Sections changes. For duplicate section ids the first insertion
// wins in the lookup; the Sections list keeps every entry.
func (d *Document) Finalize() {
	d.byID = make(map[string]*Section, len(d.Sections))
	for i := range d.Sections {
		d.Sections[i].Index = i
		if _, ok := d.byID[d.Sections[i].ID]; !ok {
			d.byID[d.Sections[i].ID] = &d.Sections[i]
		}
	}
}

// SectionByID returns the section with the given id, or nil.
// The lookup reflects the state of the last Finalize call.
func (d *Document) SectionByID(id string) *Section {
	return d.byID[id]
}

// ParagraphCount returns the total number of paragraphs across all sections.
func (d *Document) ParagraphCount() int {
	n := 0
	for i := range d.Sections {
		n += len(d.Sections[i].Paragraphs)
	}
	return n
}
