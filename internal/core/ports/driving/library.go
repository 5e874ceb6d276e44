package driving

import (
	"context"

	"github.com/custodia-labs/studyshelf/internal/core/domain"
)

// LibraryService loads and reconciles the document library and owns the
// current snapshot.
type LibraryService interface {
	// Load merges the persistent cache with freshly fetched sources and
	// publishes a new snapshot. Partial fetch failures are tolerated; the
	// returned error is domain.ErrNoSources only when nothing loaded at
	// all. When force is true, intermediate HTTP caching is bypassed.
	Load(ctx context.Context, force bool) (*domain.Snapshot, error)

	// LoadLocal builds and publishes a snapshot from already-read payloads
	// (a local folder scan), writing them through to the cache.
	LoadLocal(ctx context.Context, raws []domain.RawSource) (*domain.Snapshot, error)

	// Snapshot returns the currently published snapshot, or nil before the
	// first load.
	Snapshot() *domain.Snapshot
}
