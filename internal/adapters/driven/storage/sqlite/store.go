package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/citelens-labs/citelens-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/citelens-labs/citelens-cli/internal/core/domain"
	"github.com/citelens-labs/citelens-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ScoreStore = (*Store)(nil)

// Store is a SQLite-backed score cache.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.citelens/data/scores.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".citelens", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "scores.db")

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

// Get returns the record for hash, or domain.ErrNotFound.
func (s *Store) Get(ctx context.Context, hash string) (*domain.ScoreRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT hash, target, pos, word, citation_quality, total_score, created_at
		FROM score_cache WHERE hash = ?
	`, hash)

	return scanRecord(row)
}

// Put stores a record, replacing any existing record for its hash.
func (s *Store) Put(ctx context.Context, record domain.ScoreRecord) error {
	if record.Hash == "" {
		return fmt.Errorf("%w: empty hash", domain.ErrInvalidInput)
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO score_cache (hash, target, pos, word, citation_quality, total_score, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(hash) DO UPDATE SET
			target = excluded.target,
			pos = excluded.pos,
			word = excluded.word,
			citation_quality = excluded.citation_quality,
			total_score = excluded.total_score,
			created_at = excluded.created_at
	`, record.Hash, record.Target,
		record.Metrics.Pos, record.Metrics.Word,
		record.Metrics.CitationQuality, record.Metrics.TotalScore,
		record.CreatedAt)

	if err != nil {
		return fmt.Errorf("saving score record: %w", err)
	}
	return nil
}

// List returns the most recent records, newest first. A non-positive
// limit returns every record.
func (s *Store) List(ctx context.Context, limit int) ([]domain.ScoreRecord, error) {
	if limit <= 0 {
		limit = -1 // SQLite treats a negative LIMIT as unlimited
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT hash, target, pos, word, citation_quality, total_score, created_at
		FROM score_cache
		ORDER BY created_at DESC, hash
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying score records: %w", err)
	}
	defer rows.Close()

	var records []domain.ScoreRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		var rec domain.ScoreRecord
		if err := rows.Scan(&rec.Hash, &rec.Target,
			&rec.Metrics.Pos, &rec.Metrics.Word,
			&rec.Metrics.CitationQuality, &rec.Metrics.TotalScore,
			&rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning score record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating score records: %w", err)
	}

	return records, nil
}

// Purge removes all records.
func (s *Store) Purge(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM score_cache"); err != nil {
		return fmt.Errorf("purging score records: %w", err)
	}
	return nil
}

// scanRecord scans a single score record row.
func scanRecord(row *sql.Row) (*domain.ScoreRecord, error) {
	var rec domain.ScoreRecord
	if err := row.Scan(&rec.Hash, &rec.Target,
		&rec.Metrics.Pos, &rec.Metrics.Word,
		&rec.Metrics.CitationQuality, &rec.Metrics.TotalScore,
		&rec.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning score record: %w", err)
	}
	return &rec, nil
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
		// Extract version number (e.g., "001_score_cache.up.sql" -> 1)
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
