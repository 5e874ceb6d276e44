package services

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/studyshelf/internal/core/domain"
	"github.com/custodia-labs/studyshelf/internal/core/ports/driven"
	"github.com/custodia-labs/studyshelf/internal/core/ports/driving"
	"github.com/custodia-labs/studyshelf/internal/logger"
	"github.com/custodia-labs/studyshelf/internal/normalisers"
)

// LibraryService loads source payloads from the cache and the fetcher,
// normalises them into documents and publishes an immutable snapshot. The
// published snapshot is never mutated; a new load swaps in a fresh one.
type LibraryService struct {
	cache   driven.CacheStore
	fetcher driven.Fetcher
	sources []domain.SourceFile

	mu       sync.RWMutex
	snapshot *domain.Snapshot

	// loading rejects overlapping loads; a rebuild in flight owns the
	// snapshot swap.
	loading atomic.Bool

	// writes tracks fire-and-forget cache persistence so tests can wait
	// for it to settle.
	writes sync.WaitGroup
}

var _ driving.LibraryService = (*LibraryService)(nil)

// NewLibraryService creates a library service. Both cache and fetcher may be
// nil, in which case the corresponding source of documents is skipped. When
// sources is nil the default source list is used.
func NewLibraryService(cache driven.CacheStore, fetcher driven.Fetcher, sources []domain.SourceFile) *LibraryService {
	if sources == nil {
		sources = domain.DefaultSources
	}
	return &LibraryService{cache: cache, fetcher: fetcher, sources: sources}
}

// Load reads cached payloads, fetches every configured source concurrently,
// merges the results with fetched documents winning over cached ones, and
// publishes the resulting snapshot. Individual source failures are logged and
// skipped; Load only fails when another load is running, the context is
// cancelled or no source at all produced a document.
func (s *LibraryService) Load(ctx context.Context, force bool) (*domain.Snapshot, error) {
	if !s.loading.CompareAndSwap(false, true) {
		return nil, domain.ErrLoadInProgress
	}
	defer s.loading.Store(false)
	logger.Section("Library Load")
	defer logger.Elapsed("library load", time.Now())

	cached := s.cachedDocuments(ctx)
	fetched, raws := s.fetchedDocuments(ctx, force)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.persist(raws)

	merged := MergeSources(cached, fetched)
	snap := buildSnapshot(merged)
	s.publish(snap)
	if snap.Empty() {
		return snap, domain.ErrNoSources
	}
	logger.Info("library loaded: %d documents, %d paragraphs", len(snap.Documents), len(snap.Paragraphs))
	return snap, nil
}

// LoadLocal builds a snapshot from raw payloads that were read outside the
// fetcher, typically from a local folder. The payloads replace the current
// library entirely. When none of them normalises into a document the current
// snapshot is kept and ErrNoSources is returned.
func (s *LibraryService) LoadLocal(ctx context.Context, raws []domain.RawSource) (*domain.Snapshot, error) {
	if !s.loading.CompareAndSwap(false, true) {
		return nil, domain.ErrLoadInProgress
	}
	defer s.loading.Store(false)
	logger.Section("Library Load (local)")

	var docs []domain.Document
	for _, raw := range raws {
		docs = append(docs, normalisers.Normalise(raw.ID, raw.Data, raw.Label)...)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, domain.ErrNoSources
	}
	s.persist(raws)

	snap := buildSnapshot(MergeSources(nil, docs))
	s.publish(snap)
	logger.Info("library loaded from local files: %d documents", len(snap.Documents))
	return snap, nil
}

// Snapshot returns the currently published snapshot, or nil before the first
// successful load.
func (s *LibraryService) Snapshot() *domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

func (s *LibraryService) cachedDocuments(ctx context.Context) []domain.Document {
	if s.cache == nil {
		return nil
	}
	entries, err := s.cache.GetAll(ctx)
	if err != nil {
		logger.Warn("cache read failed: %v", err)
		return nil
	}
	var docs []domain.Document
	for _, entry := range entries {
		docs = append(docs, normalisers.Normalise(entry.ID, entry.Data, entry.Label)...)
	}
	logger.Debug("cache produced %d documents", len(docs))
	return docs
}

func (s *LibraryService) fetchedDocuments(ctx context.Context, force bool) ([]domain.Document, []domain.RawSource) {
	if s.fetcher == nil {
		return nil, nil
	}

	payloads := make([][]byte, len(s.sources))
	var wg sync.WaitGroup
	for i, source := range s.sources {
		wg.Add(1)
		go func(i int, source domain.SourceFile) {
			defer wg.Done()
			data, err := s.fetcher.Load(ctx, source, force)
			if err != nil {
				logger.Warn("fetch %s failed: %v", source.ID, err)
				return
			}
			payloads[i] = data
		}(i, source)
	}
	wg.Wait()

	var docs []domain.Document
	var raws []domain.RawSource
	for i, data := range payloads {
		if data == nil {
			continue
		}
		source := s.sources[i]
		docs = append(docs, normalisers.Normalise(source.ID, data, source.Label)...)
		raws = append(raws, domain.RawSource{ID: source.ID, Label: source.Label, Data: data})
	}
	logger.Debug("fetch produced %d documents from %d sources", len(docs), len(raws))
	return docs, raws
}

// persist writes raw payloads to the cache in the background. Rendering never
// waits for cache persistence and write failures are only logged.
func (s *LibraryService) persist(raws []domain.RawSource) {
	if s.cache == nil || len(raws) == 0 {
		return
	}
	s.writes.Add(1)
	go func() {
		defer s.writes.Done()
		for _, raw := range raws {
			if err := s.cache.Put(context.Background(), raw.ID, raw.Label, raw.Data); err != nil {
				logger.Warn("cache write %s failed: %v", raw.ID, err)
			}
		}
	}()
}

func (s *LibraryService) publish(snap *domain.Snapshot) {
	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()
}

func buildSnapshot(docs []domain.Document) *domain.Snapshot {
	for i := range docs {
		docs[i].Finalize()
	}
	paragraphs, keys := BuildParagraphIndex(docs)
	snap := &domain.Snapshot{
		ID:         uuid.NewString(),
		Documents:  docs,
		Keys:       keys,
		Paragraphs: paragraphs,
		LoadedAt:   time.Now(),
	}
	snap.Glossary = BuildGlossaryIndex(snap.DocumentByID(domain.GlossaryDocumentID))
	snap.Quotes = BuildQuoteIndex(snap.DocumentByID(domain.DailyDocumentID))
	return snap
}
