package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/studyshelf/internal/core/domain"
)

type fakeCache struct {
	mu      sync.Mutex
	entries []domain.CacheEntry
	puts    map[string][]byte
	getErr  error
	putErr  error
}

func newFakeCache(entries ...domain.CacheEntry) *fakeCache {
	return &fakeCache{entries: entries, puts: make(map[string][]byte)}
}

func (c *fakeCache) GetAll(ctx context.Context) ([]domain.CacheEntry, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.entries, nil
}

func (c *fakeCache) Put(ctx context.Context, id, label string, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.putErr != nil {
		return c.putErr
	}
	c.puts[id] = data
	return nil
}

func (c *fakeCache) Close() error { return nil }

func (c *fakeCache) stored(id string) []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.puts[id]
}

type fakeFetcher struct {
	payloads map[string][]byte
	errs     map[string]error
	force    bool
}

func (f *fakeFetcher) Load(ctx context.Context, source domain.SourceFile, force bool) ([]byte, error) {
	f.force = force
	if err, ok := f.errs[source.ID]; ok {
		return nil, err
	}
	data, ok := f.payloads[source.ID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return data, nil
}

var (
	bbookPayload = []byte(`{"id":"bbook","title":"Big Book","sections":[` +
		`{"id":"ch1","title":"Chapter One","content":["We admitted we were powerless."]}]}`)
	dailyPayload = []byte(`[{"month":"January","day":1,"title":"First Entry",` +
		`"quote":"First things first.","reflection":"One day at a time."}]`)
)

func TestLibraryLoadMergesCacheAndFetch(t *testing.T) {
	stale := []byte(`{"id":"bbook","title":"Stale Big Book","sections":[` +
		`{"id":"ch1","title":"Old","content":["stale text"]}]}`)
	cache := newFakeCache(
		domain.CacheEntry{ID: "bbook", Label: "Big Book", Data: stale},
		domain.CacheEntry{ID: "daily", Label: "Daily Reflections", Data: dailyPayload},
	)
	fetcher := &fakeFetcher{payloads: map[string][]byte{"bbook": bbookPayload}}
	svc := NewLibraryService(cache, fetcher, []domain.SourceFile{
		{ID: "bbook", Label: "Big Book", Path: "bbook.json"},
		{ID: "daily", Label: "Daily Reflections", Path: "daily.json"},
	})

	snap, err := svc.Load(context.Background(), false)
	require.NoError(t, err)
	require.NotNil(t, snap)

	// Fetched bbook replaced the cached copy; the cached daily survived the
	// failed daily fetch.
	require.Len(t, snap.Documents, 2)
	assert.Equal(t, "bbook", snap.Documents[0].ID)
	assert.Equal(t, "Big Book", snap.Documents[0].Title)
	assert.Equal(t, "daily", snap.Documents[1].ID)
	assert.NotEmpty(t, snap.Quotes)

	assert.Same(t, snap, svc.Snapshot())

	// Fresh payloads are written back to the cache; failed fetches are not.
	svc.writes.Wait()
	assert.Equal(t, bbookPayload, cache.stored("bbook"))
	assert.Nil(t, cache.stored("daily"))
}

func TestLibraryLoadSurvivesCacheFailure(t *testing.T) {
	cache := newFakeCache()
	cache.getErr = errors.New("disk gone")
	fetcher := &fakeFetcher{payloads: map[string][]byte{"bbook": bbookPayload}}
	svc := NewLibraryService(cache, fetcher, []domain.SourceFile{
		{ID: "bbook", Label: "Big Book", Path: "bbook.json"},
	})

	snap, err := svc.Load(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, snap.Documents, 1)
	assert.Equal(t, "bbook", snap.Documents[0].ID)
}

func TestLibraryLoadNoSources(t *testing.T) {
	fetcher := &fakeFetcher{errs: map[string]error{"bbook": errors.New("offline")}}
	svc := NewLibraryService(nil, fetcher, []domain.SourceFile{
		{ID: "bbook", Label: "Big Book", Path: "bbook.json"},
	})

	snap, err := svc.Load(context.Background(), false)
	assert.ErrorIs(t, err, domain.ErrNoSources)
	require.NotNil(t, snap)
	assert.True(t, snap.Empty())
	// The empty snapshot is still published: a failed load clears the
	// library rather than keeping stale documents around.
	assert.Same(t, snap, svc.Snapshot())
}

func TestLibraryLoadForceFlagPropagates(t *testing.T) {
	fetcher := &fakeFetcher{payloads: map[string][]byte{"bbook": bbookPayload}}
	svc := NewLibraryService(nil, fetcher, []domain.SourceFile{
		{ID: "bbook", Label: "Big Book", Path: "bbook.json"},
	})

	_, err := svc.Load(context.Background(), true)
	require.NoError(t, err)
	assert.True(t, fetcher.force)
}

func TestLibraryLoadCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc := NewLibraryService(nil, nil, nil)

	_, err := svc.Load(ctx, false)
	assert.ErrorIs(t, err, context.Canceled)
}

// blockingFetcher parks its single load until released so a test can observe
// the service mid-load.
type blockingFetcher struct {
	once    sync.Once
	started chan struct{}
	release chan struct{}
}

func (f *blockingFetcher) Load(context.Context, domain.SourceFile, bool) ([]byte, error) {
	f.once.Do(func() { close(f.started) })
	<-f.release
	return nil, domain.ErrNotFound
}

func TestLibraryLoadRejectsOverlappingLoads(t *testing.T) {
	fetcher := &blockingFetcher{started: make(chan struct{}), release: make(chan struct{})}
	svc := NewLibraryService(nil, fetcher, []domain.SourceFile{
		{ID: "bbook", Label: "Big Book", Path: "bbook.json"},
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = svc.Load(context.Background(), false)
	}()
	<-fetcher.started

	_, err := svc.Load(context.Background(), false)
	assert.ErrorIs(t, err, domain.ErrLoadInProgress)

	_, err = svc.LoadLocal(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrLoadInProgress)

	close(fetcher.release)
	<-done

	// With the first load settled the guard releases.
	_, err = svc.Load(context.Background(), false)
	assert.ErrorIs(t, err, domain.ErrNoSources)
}

func TestLibraryLoadLocal(t *testing.T) {
	cache := newFakeCache()
	svc := NewLibraryService(cache, nil, nil)

	snap, err := svc.LoadLocal(context.Background(), []domain.RawSource{
		{ID: "daily", Label: "Daily Reflections", Data: dailyPayload},
	})
	require.NoError(t, err)
	require.Len(t, snap.Documents, 1)
	assert.Equal(t, "daily", snap.Documents[0].ID)
	assert.Equal(t, domain.KindDaily, snap.Documents[0].Kind)

	svc.writes.Wait()
	assert.Equal(t, dailyPayload, cache.stored("daily"))
}

func TestLibraryLoadLocalKeepsSnapshotOnEmptyInput(t *testing.T) {
	svc := NewLibraryService(nil, nil, nil)
	first, err := svc.LoadLocal(context.Background(), []domain.RawSource{
		{ID: "bbook", Label: "Big Book", Data: bbookPayload},
	})
	require.NoError(t, err)

	_, err = svc.LoadLocal(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrNoSources)
	assert.Same(t, first, svc.Snapshot())
}

func TestLibrarySnapshotGenerations(t *testing.T) {
	fetcher := &fakeFetcher{payloads: map[string][]byte{"bbook": bbookPayload}}
	svc := NewLibraryService(nil, fetcher, []domain.SourceFile{
		{ID: "bbook", Label: "Big Book", Path: "bbook.json"},
	})

	first, err := svc.Load(context.Background(), false)
	require.NoError(t, err)
	second, err := svc.Load(context.Background(), false)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Same(t, second, svc.Snapshot())
}

func TestLibrarySnapshotNilBeforeLoad(t *testing.T) {
	svc := NewLibraryService(nil, nil, nil)
	assert.Nil(t, svc.Snapshot())
}
