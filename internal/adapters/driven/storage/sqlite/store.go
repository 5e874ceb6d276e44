package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/studyshelf/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/studyshelf/internal/core/domain"
	"github.com/custodia-labs/studyshelf/internal/core/ports/driven"
)

// Store is a SQLite-backed payload cache implementing driven.CacheStore.
type Store struct {
	db   *sql.DB
	path string
}

var _ driven.CacheStore = (*Store)(nil)

// NewStore creates a new SQLite cache at the specified data directory.
// If dataDir is empty, defaults to ~/.studyshelf/data/cache.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".studyshelf", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "cache.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// GetAll returns every cached source payload.
func (s *Store) GetAll(ctx context.Context) ([]domain.CacheEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, label, data, updated_at
		FROM sources
	`)
	if err != nil {
		return nil, fmt.Errorf("querying sources: %w", err)
	}
	defer rows.Close()

	var entries []domain.CacheEntry //nolint:prealloc // size unknown from query
	for rows.Next() {
		var entry domain.CacheEntry
		var updatedAt sql.NullTime
		if err := rows.Scan(&entry.ID, &entry.Label, &entry.Data, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning source: %w", err)
		}
		if updatedAt.Valid {
			entry.UpdatedAt = updatedAt.Time
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sources: %w", err)
	}

	return entries, nil
}

// Put stores or replaces the payload for a source.
func (s *Store) Put(ctx context.Context, id, label string, data []byte) error {
	if id == "" || len(data) == 0 {
		return domain.ErrInvalidInput
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sources (id, label, data, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			label = excluded.label,
			data = excluded.data,
			updated_at = excluded.updated_at
	`, id, label, data, time.Now().UTC())

	if err != nil {
		return fmt.Errorf("saving source: %w", err)
	}
	return nil
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}
