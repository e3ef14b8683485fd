package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/kanata-dev/pagegen/internal/model"
)

// DB provides SQLite-based storage for scan and page history.
//
// Design decision: We use a single database file for all projects
// rather than one per project root. History queries span projects
// ("what did I generate last week?"), and a single file simplifies
// backup and cleanup.
type DB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures DB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent
	// performance. Recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a history database in dbDir.
// If CreateIfNotExists is true, the directory and database file are
// created as needed; otherwise a missing database is an error.
func Open(dbDir string, opts Options) (*DB, error) {
	dbPath := filepath.Join(dbDir, "pagegen.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite uses mode=rw to prevent creating new files,
	// mode=rwc to allow creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer; keep the pool at a single
	// connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	hdb := &DB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := hdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return hdb, nil
}

// Close closes the database connection.
func (h *DB) Close() error {
	return h.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (h *DB) createTables() error {
	schema := `
	-- Scan records store one row per directory classification
	CREATE TABLE IF NOT EXISTS scans (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		root_path TEXT NOT NULL,
		project TEXT NOT NULL,
		has_index INTEGER NOT NULL,
		has_assets INTEGER NOT NULL,
		categories TEXT NOT NULL,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_scans_root ON scans(root_path);
	CREATE INDEX IF NOT EXISTS idx_scans_timestamp ON scans(timestamp);

	-- Page records store one row per generated page
	CREATE TABLE IF NOT EXISTS pages (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		root_path TEXT NOT NULL,
		title TEXT NOT NULL,
		hash TEXT NOT NULL,
		size INTEGER NOT NULL,
		output_path TEXT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_pages_root ON pages(root_path);
	CREATE INDEX IF NOT EXISTS idx_pages_hash ON pages(hash);
	CREATE INDEX IF NOT EXISTS idx_pages_timestamp ON pages(timestamp);
	`

	_, err := h.db.ExecContext(context.Background(), schema)
	return err
}

// ScanRecord is a stored scan result.
type ScanRecord struct {
	ID         int64
	RootPath   string
	Project    string
	HasIndex   bool
	HasAssets  bool
	Categories []string
	Timestamp  time.Time
}

// PageRecord is a stored page generation result.
type PageRecord struct {
	ID         int64
	RootPath   string
	Title      string
	Hash       string
	Size       int
	OutputPath string
	Timestamp  time.Time
}

// SaveScan inserts a scan record for the given structure.
func (h *DB) SaveScan(ctx context.Context, structure *model.Structure) (int64, error) {
	// Categories are stored as JSON to keep the schema flat.
	categoriesJSON, err := json.Marshal(structure.Categories)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize categories: %w", err)
	}

	query := `
	INSERT INTO scans (root_path, project, has_index, has_assets, categories)
	VALUES (?, ?, ?, ?, ?)
	`
	result, err := h.db.ExecContext(ctx, query,
		structure.RootPath,
		structure.ProjectName(),
		structure.HasIndex(),
		structure.HasAssets(),
		string(categoriesJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert scan record: %w", err)
	}
	return result.LastInsertId()
}

// SavePage inserts a page record for a generated page.
func (h *DB) SavePage(ctx context.Context, rootPath string, page *model.GeneratedPage) (int64, error) {
	query := `
	INSERT INTO pages (root_path, title, hash, size, output_path)
	VALUES (?, ?, ?, ?, ?)
	`
	result, err := h.db.ExecContext(ctx, query,
		rootPath,
		page.Title,
		page.Hash,
		page.Size,
		page.OutputPath,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert page record: %w", err)
	}
	return result.LastInsertId()
}

// RecentScans returns up to limit scan records, newest first.
func (h *DB) RecentScans(ctx context.Context, limit int) ([]ScanRecord, error) {
	query := `
	SELECT id, root_path, project, has_index, has_assets, categories, timestamp
	FROM scans
	ORDER BY timestamp DESC, id DESC
	LIMIT ?
	`
	rows, err := h.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query scans: %w", err)
	}
	defer rows.Close()

	records := make([]ScanRecord, 0, limit)
	for rows.Next() {
		var r ScanRecord
		var categoriesJSON string
		if err := rows.Scan(&r.ID, &r.RootPath, &r.Project, &r.HasIndex, &r.HasAssets, &categoriesJSON, &r.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		if err := json.Unmarshal([]byte(categoriesJSON), &r.Categories); err != nil {
			return nil, fmt.Errorf("failed to deserialize categories: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// RecentPages returns up to limit page records, newest first.
func (h *DB) RecentPages(ctx context.Context, limit int) ([]PageRecord, error) {
	query := `
	SELECT id, root_path, title, hash, size, output_path, timestamp
	FROM pages
	ORDER BY timestamp DESC, id DESC
	LIMIT ?
	`
	rows, err := h.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query pages: %w", err)
	}
	defer rows.Close()

	records := make([]PageRecord, 0, limit)
	for rows.Next() {
		var r PageRecord
		if err := rows.Scan(&r.ID, &r.RootPath, &r.Title, &r.Hash, &r.Size, &r.OutputPath, &r.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
