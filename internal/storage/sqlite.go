package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Goutham-1610/finance-advisor/internal/service"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStorage implements the service.Storage interface using SQLite.
type SQLiteStorage struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStorage creates a new SQLite storage instance.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	// Ensure directory exists
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

// Stats returns counts of stored entities and the database file size.
func (s *SQLiteStorage) Stats(ctx context.Context) (*service.DatabaseStats, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	stats := &service.DatabaseStats{}

	counts := []struct {
		dest  *int
		table string
	}{
		{&stats.Transactions, "transactions"},
		{&stats.Budgets, "budgets"},
		{&stats.Goals, "goals"},
	}
	for _, c := range counts {
		query := fmt.Sprintf("SELECT COUNT(*) FROM %s", c.table)
		if err := s.db.QueryRowContext(ctx, query).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", c.table, err)
		}
	}

	if s.dbPath != ":memory:" {
		if info, err := os.Stat(s.dbPath); err == nil {
			stats.SizeBytes = info.Size()
		}
	}

	return stats, nil
}

// execInTx runs fn inside a transaction, rolling back on error so a failure
// leaves no partial state.
func (s *SQLiteStorage) execInTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}
