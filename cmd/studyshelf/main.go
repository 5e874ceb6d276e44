// Command studyshelf is the terminal reading companion for the recovery
// library. It wires the adapters to the application services and hands
// control to the CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/custodia-labs/studyshelf/internal/adapters/driven/config/file"
	"github.com/custodia-labs/studyshelf/internal/adapters/driven/fetch"
	"github.com/custodia-labs/studyshelf/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/studyshelf/internal/adapters/driving/cli"
	"github.com/custodia-labs/studyshelf/internal/core/domain"
	"github.com/custodia-labs/studyshelf/internal/core/ports/driven"
	"github.com/custodia-labs/studyshelf/internal/core/services"
	"github.com/custodia-labs/studyshelf/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	config, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	var cache driven.CacheStore
	store, err := sqlite.NewStore(config.GetString(file.KeyDataDir))
	if err != nil {
		// The cache is best-effort: the shelf still works, it just
		// cannot load offline.
		logger.Warn("cache unavailable: %v", err)
	} else {
		cache = store
		defer store.Close()
	}

	fetcher, folder := buildFetcher(config)
	library := services.NewLibraryService(cache, fetcher, nil)

	if folder != "" && config.GetBool(file.KeyWatch) {
		watcher := fetch.NewWatcher(folder, nil, func(ctx context.Context, raws []domain.RawSource) {
			if _, err := library.LoadLocal(ctx, raws); err != nil {
				logger.Warn("reload failed: %v", err)
			}
		})
		go func() {
			if err := watcher.Watch(context.Background()); err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("watcher stopped: %v", err)
			}
		}()
	}

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Config:     config,
		Library:    library,
		Search:     services.NewSearchService(library),
		Annotation: services.NewAnnotationResolver(library),
		Glossary:   services.NewGlossaryService(library),
		Daily:      services.NewDailyService(library),
	})

	return cli.Execute()
}

// buildFetcher picks the payload source: a configured local folder wins over
// the hosted library.
func buildFetcher(config driven.ConfigStore) (driven.Fetcher, string) {
	if folder := config.GetString(file.KeyFolder); folder != "" {
		return fetch.NewFolderFetcher(folder), folder
	}
	baseURL := config.GetString(file.KeyBaseURL)
	if baseURL == "" {
		baseURL = file.DefaultBaseURL
	}
	return fetch.NewHTTPFetcher(baseURL, nil), ""
}
