// Package db provides read-only access to the macOS Knowledge store.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"

	// Import modernc.org/sqlite as a blank import to register the driver
	_ "modernc.org/sqlite"
)

// DB wraps a read-only SQL connection to a knowledgeC.db file.
type DB struct {
	*sql.DB
	path string
}

// Open checks that the store at path is readable and opens it read-only.
func Open(ctx context.Context, path string) (*DB, error) {
	if err := checkAccess(path); err != nil {
		return nil, err
	}

	sqlDB, err := sql.Open("sqlite", readOnlyDSN(path))
	if err != nil {
		return nil, fmt.Errorf("%w at %s: %w", ErrDatastoreAccessDenied, path, err)
	}
	// A single connection keeps per-connection pragmas in effect.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("%w at %s: %w", ErrDatastoreAccessDenied, path, err)
	}

	db := &DB{
		DB:   sqlDB,
		path: path,
	}

	if err := db.configure(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}

// configure sets up connection pragmas.
func (db *DB) configure(ctx context.Context) error {
	pragmas := []string{
		"PRAGMA query_only=ON",
		"PRAGMA busy_timeout=5000",
		"PRAGMA temp_store=MEMORY",
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return queryError(pragma, err)
		}
	}

	return nil
}

// checkAccess distinguishes a missing store from an unreadable one.
func checkAccess(path string) error {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w at: %s", ErrDatastoreNotFound, path)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w at %s; %s", ErrDatastoreAccessDenied, path, fullDiskAccessHint)
	case err != nil:
		return fmt.Errorf("%w at %s: %w", ErrDatastoreAccessDenied, path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w at %s: is a directory", ErrDatastoreAccessDenied, path)
	}

	f, err := os.Open(path) // #nosec G304 -- path comes from configuration
	if err != nil {
		return fmt.Errorf("%w at %s; %s", ErrDatastoreAccessDenied, path, fullDiskAccessHint)
	}
	return f.Close()
}

// readOnlyDSN builds a SQLite URI that opens path without write access.
func readOnlyDSN(path string) string {
	u := url.URL{Scheme: "file", Opaque: (&url.URL{Path: path}).EscapedPath()}
	u.RawQuery = "mode=ro"
	return u.String()
}
