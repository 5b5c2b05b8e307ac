package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/ali-raheem/shannon/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/ali-raheem/shannon/internal/core/domain"
	"github.com/ali-raheem/shannon/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.HistoryStore = (*Store)(nil)

// Store is a SQLite-backed scan history store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.shannon/data/history.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".shannon", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "history.db")

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

// Save stores a scan report.
func (s *Store) Save(ctx context.Context, report domain.ScanReport) error {
	edgesJSON, err := json.Marshal(report.Edges)
	if err != nil {
		return fmt.Errorf("marshalling edges: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO reports (id, path, size, block_size, blocks,
			mean_entropy, min_entropy, max_entropy, file_entropy, total_entropy,
			edges, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, report.ID, report.Path, report.Size, report.BlockSize, report.Blocks,
		report.MeanEntropy, report.MinEntropy, report.MaxEntropy,
		report.FileEntropy, report.TotalEntropy,
		string(edgesJSON), report.CreatedAt)

	if err != nil {
		return fmt.Errorf("saving report: %w", err)
	}
	return nil
}

// Get retrieves a report by ID.
func (s *Store) Get(ctx context.Context, id string) (domain.ScanReport, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, path, size, block_size, blocks,
			mean_entropy, min_entropy, max_entropy, file_entropy, total_entropy,
			edges, created_at
		FROM reports WHERE id = ?
	`, id)

	report, err := scanReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ScanReport{}, fmt.Errorf("report %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.ScanReport{}, fmt.Errorf("getting report: %w", err)
	}
	return report, nil
}

// List returns the most recent reports, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]domain.ScanReport, error) {
	query := `
		SELECT id, path, size, block_size, blocks,
			mean_entropy, min_entropy, max_entropy, file_entropy, total_entropy,
			edges, created_at
		FROM reports ORDER BY created_at DESC, id
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}
	defer rows.Close()

	var reports []domain.ScanReport
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reports: %w", err)
	}
	return reports, nil
}

// Clear removes all stored reports.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM reports"); err != nil {
		return fmt.Errorf("clearing reports: %w", err)
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanReport reads one report row, decoding the edges JSON column.
func scanReport(row rowScanner) (domain.ScanReport, error) {
	var report domain.ScanReport
	var edgesJSON string

	err := row.Scan(&report.ID, &report.Path, &report.Size, &report.BlockSize,
		&report.Blocks, &report.MeanEntropy, &report.MinEntropy, &report.MaxEntropy,
		&report.FileEntropy, &report.TotalEntropy, &edgesJSON, &report.CreatedAt)
	if err != nil {
		return domain.ScanReport{}, err
	}

	if err := json.Unmarshal([]byte(edgesJSON), &report.Edges); err != nil {
		return domain.ScanReport{}, fmt.Errorf("unmarshalling edges: %w", err)
	}
	return report, nil
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

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_create_reports.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}
