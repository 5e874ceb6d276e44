// Package domain defines the core business entities for StudyShelf.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has no external dependencies and defines the fundamental types:
//
//   - Document: A normalised source text with ordered sections
//   - Section: A titled subdivision (chapter, step, entry, definition)
//   - ParagraphRecord: A flattened, addressable paragraph used for search
//   - GlossaryIndex: Term lookup plus a compiled whole-word matcher
//   - Quote: A cross-reference quote drawn from the daily collection
//   - Match: A resolved annotation range over raw text
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
