// Package services contains the application services that implement the
// driving ports. Services hold the business rules of StudyShelf: loading and
// merging sources into an immutable snapshot, paragraph and glossary indexing,
// full-text search, annotation resolution, glossary lookups and daily-reading
// navigation.
//
// # Import Rules
//
// Services may import:
//   - internal/core/domain
//   - internal/core/ports (driving and driven)
//   - internal/normalisers
//   - internal/logger
//
// Services must NOT import adapters. Infrastructure is always reached through
// a driven port interface supplied at construction time.
package services
