package domain

import "time"

// SourceFile describes one configured library file: where it lives and the
// document id and label it produces. The compound steps/traditions file is a
// single SourceFile that normalises into two documents.
type SourceFile struct {
	// ID is the document id used for caching and reconciliation.
	ID string

	// Path is the file name (relative to the library base URL or folder).
	Path string

	// Label is the display name, also used as the fallback title.
	Label string
}

// DefaultSources is the fixed library this application reads.
var DefaultSources = []SourceFile{
	{ID: "bbook", Path: "bbook.json", Label: "Big Book"},
	{ID: "dictionary", Path: "big_dictionary.json", Label: "Dictionary"},
	{ID: "twlvxtwlv", Path: "twlvxtwlv.json", Label: "Twelve Steps and Twelve Traditions"},
	{ID: "daily", Path: "daily.json", Label: "Daily Reflections"},
}

// SourceOrder is the canonical display order for known document ids.
// Documents with ids outside this list sort after it.
var SourceOrder = []string{"steps", "bbook", "traditions", "dictionary", "daily"}

// SourceHints maps known document ids to the message shown when that
// document is missing from the library.
var SourceHints = map[string]string{
	"steps":      "Add twlvxtwlv.json to see the Steps.",
	"bbook":      "Add bbook.json to see the Big Book.",
	"dictionary": "Add big_dictionary.json to see the Dictionary.",
	"traditions": "Add twlvxtwlv.json to see the Traditions.",
	"daily":      "Add daily.json to see Daily Reflections.",
}

const (
	// GlossaryDocumentID is the document the glossary index is built from.
	GlossaryDocumentID = "dictionary"

	// DailyDocumentID is the dated-entries document that supplies
	// cross-reference quotes and daily navigation.
	DailyDocumentID = "daily"
)

// RawSource is one raw payload prior to normalisation, as produced by a
// fetcher or read back from the cache.
type RawSource struct {
	// ID is the document id this payload will normalise under.
	ID string

	// Label is the display name and fallback title.
	Label string

	// Data is the raw JSON payload.
	Data []byte
}

// CacheEntry is one persisted payload in the local cache.
type CacheEntry struct {
	ID        string
	Label     string
	Data      []byte
	UpdatedAt time.Time
}
