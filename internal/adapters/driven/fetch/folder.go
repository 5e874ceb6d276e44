package fetch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/studyshelf/internal/core/domain"
	"github.com/custodia-labs/studyshelf/internal/core/ports/driven"
	"github.com/custodia-labs/studyshelf/internal/logger"
)

// FolderFetcher loads source payloads from a local folder. Per-source loads
// match file names against the source list; ScanFolder additionally picks up
// json files outside the known set.
type FolderFetcher struct {
	dir string
}

var _ driven.Fetcher = (*FolderFetcher)(nil)

// NewFolderFetcher creates a fetcher reading from dir.
func NewFolderFetcher(dir string) *FolderFetcher {
	return &FolderFetcher{dir: dir}
}

// Load reads the payload file for one source. The force flag is meaningless
// for local files and is ignored.
func (f *FolderFetcher) Load(ctx context.Context, source domain.SourceFile, _ bool) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if source.Path == "" {
		return nil, fmt.Errorf("source %s: %w", source.ID, domain.ErrInvalidInput)
	}

	data, err := os.ReadFile(filepath.Join(f.dir, filepath.Base(source.Path)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("source %s: %w", source.ID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("reading %s: %w", source.ID, err)
	}
	return data, nil
}

// ScanFolder reads every *.json payload in dir and returns the raw payloads.
// Files named after a known source carry that source's id and label; any
// other json file loads with its file stem as both. Unreadable files are
// skipped; an empty result with a nil error means the folder holds no
// library files.
func ScanFolder(dir string, sources []domain.SourceFile) ([]domain.RawSource, error) {
	if sources == nil {
		sources = domain.DefaultSources
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("opening folder %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("folder %s: %w", dir, domain.ErrInvalidInput)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("opening folder %s: %w", dir, err)
	}

	known := make(map[string]bool, len(sources))
	var raws []domain.RawSource
	for _, source := range sources {
		name := filepath.Base(source.Path)
		known[name] = true
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			if !os.IsNotExist(err) {
				logger.Warn("skipping %s: %v", source.Path, err)
			}
			continue
		}
		raws = append(raws, domain.RawSource{ID: source.ID, Label: source.Label, Data: data})
	}

	// Anything else ending in .json loads under its file stem.
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || known[name] || !strings.EqualFold(filepath.Ext(name), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			logger.Warn("skipping %s: %v", name, err)
			continue
		}
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		raws = append(raws, domain.RawSource{ID: stem, Label: stem, Data: data})
	}
	logger.Debug("folder %s produced %d payloads", dir, len(raws))
	return raws, nil
}
