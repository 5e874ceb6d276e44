package driven

import (
	"context"

	"github.com/custodia-labs/studyshelf/internal/core/domain"
)

// Fetcher loads the raw payload for one configured source file. A failed
// load omits that single source from the library; siblings are unaffected.
type Fetcher interface {
	// Load fetches the payload. When force is true any intermediate caching
	// (HTTP or otherwise) must be bypassed.
	Load(ctx context.Context, source domain.SourceFile, force bool) ([]byte, error)
}
