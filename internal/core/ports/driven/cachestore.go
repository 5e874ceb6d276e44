package driven

import (
	"context"

	"github.com/custodia-labs/studyshelf/internal/core/domain"
)

// CacheStore persists raw source payloads between runs. It is explicitly
// best-effort: callers treat a GetAll error as an empty cache and a Put
// error as a skipped write. No cache failure may surface to the user.
type CacheStore interface {
	// GetAll returns every cached payload.
	GetAll(ctx context.Context) ([]domain.CacheEntry, error)

	// Put stores or replaces the payload for one document id.
	Put(ctx context.Context, id, label string, data []byte) error

	// Close releases the underlying storage.
	Close() error
}
