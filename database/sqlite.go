package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// busyTimeoutMillis is how long a connection waits for a competing writer
// before failing with SQLITE_BUSY
const busyTimeoutMillis = 5000

// OpenDB opens the SQLite database and checks the connection
func OpenDB(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", withBusyTimeout(dataSourceName))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection serializes writers
	db.SetMaxOpenConns(1)

	// Test the connection
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// withBusyTimeout adds the driver's _busy_timeout option to dsn so that every
// connection the pool opens gets it, unless the caller already set one
func withBusyTimeout(dsn string) string {
	// matches both _busy_timeout and its _timeout alias
	if strings.Contains(dsn, "_timeout=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%s_busy_timeout=%d", dsn, sep, busyTimeoutMillis)
}

// InitializeDatabase opens the database connection and creates missing tables
func InitializeDatabase(ctx context.Context, dataSourceName string) (*sql.DB, error) {
	db, err := OpenDB(dataSourceName)
	if err != nil {
		return nil, err
	}

	if err := EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return db, nil
}
