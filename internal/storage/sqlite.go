package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Veraticus/dealscope/internal/common"
	"github.com/Veraticus/dealscope/internal/model"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStorage keeps the last fetched deal catalog in a SQLite database.
type SQLiteStorage struct {
	db     *sql.DB
	dbPath string
}

// FetchRun records one replacement of the catalog.
type FetchRun struct {
	FetchedAt time.Time
	Origin    string
	DealCount int
}

// NewSQLiteStorage creates a new SQLite storage instance.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStorage{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// Path returns the database location.
func (s *SQLiteStorage) Path() string {
	return s.dbPath
}

// ReplaceDeals swaps the whole catalog for deals in one transaction and
// records the run.
func (s *SQLiteStorage) ReplaceDeals(ctx context.Context, deals []model.Deal, origin string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateDeals(deals); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM deals`); err != nil {
		return fmt.Errorf("failed to clear deals: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO deals (position, title, platform, store, url, image_url, price, old_price, featured)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, d := range deals {
		if _, err := stmt.ExecContext(ctx, i, d.Title, d.Platform, d.Store, d.URL, d.ImageURL,
			d.Price, d.OldPrice, d.Featured); err != nil {
			return fmt.Errorf("failed to insert deal %q: %w", d.Title, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO fetch_runs (fetched_at, origin, deal_count) VALUES (?, ?, ?)`,
		time.Now().UTC(), origin, len(deals)); err != nil {
		return fmt.Errorf("failed to record fetch run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit deals: %w", err)
	}
	return nil
}

// Load returns the stored catalog in the order it was saved.
func (s *SQLiteStorage) Load(ctx context.Context) ([]model.Deal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT title, platform, store, url, image_url, price, old_price, featured
		FROM deals
		ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query deals: %w", err)
	}
	defer rows.Close()

	deals := []model.Deal{}
	for rows.Next() {
		var d model.Deal
		if err := rows.Scan(&d.Title, &d.Platform, &d.Store, &d.URL, &d.ImageURL,
			&d.Price, &d.OldPrice, &d.Featured); err != nil {
			return nil, fmt.Errorf("failed to scan deal: %w", err)
		}
		deals = append(deals, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read deals: %w", err)
	}

	return deals, nil
}

// LastFetchRun returns the most recent catalog replacement.
func (s *SQLiteStorage) LastFetchRun(ctx context.Context) (*FetchRun, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var run FetchRun
	err := s.db.QueryRowContext(ctx, `
		SELECT fetched_at, origin, deal_count
		FROM fetch_runs
		ORDER BY id DESC
		LIMIT 1`).Scan(&run.FetchedAt, &run.Origin, &run.DealCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last fetch run: %w", err)
	}
	return &run, nil
}
