package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/pressly/goose/v3"
	// SQLite driver.
	_ "modernc.org/sqlite"

	"github.com/fr0stylo/enms/internal/db/queries"
)

// DefaultPath is used when no database path is configured.
const DefaultPath = "data/enms"

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Database is the enms inventory and automation store: sqlc queries over one
// migrated SQLite file.
type Database struct {
	*queries.Queries
	db      *sql.DB
	tracker *queryLatencyTracker
}

// New opens <path>.sqlite, creating its directory, and applies pending
// migrations. openParams are extra DSN parameters in key=value form.
func New(path string, openParams ...string) (*Database, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = DefaultPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory %s: %w", dir, err)
		}
	}

	conn, err := sql.Open("sqlite", sqliteDSN(path, openParams...))
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	if err := migrate(context.Background(), conn); err != nil {
		_ = conn.Close()
		return nil, err
	}

	tracker := newQueryLatencyTracker()
	return &Database{
		Queries: queries.New(newInstrumentedDBTX(conn, tracker)),
		db:      conn,
		tracker: tracker,
	}, nil
}

func migrate(ctx context.Context, conn *sql.DB) error {
	migrations, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	provider, err := goose.NewProvider(goose.DialectSQLite3, conn, migrations)
	if err != nil {
		return fmt.Errorf("prepare migrations: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}

// sqliteDSN enables foreign keys, which link and workflow member cascades
// depend on, and WAL with a busy timeout.
func sqliteDSN(path string, openParams ...string) string {
	values := url.Values{}
	for _, pragma := range []string{
		"foreign_keys(ON)",
		"journal_mode(WAL)",
		"synchronous(NORMAL)",
		"busy_timeout(5000)",
	} {
		values.Add("_pragma", pragma)
	}
	for _, param := range openParams {
		key, value, ok := strings.Cut(strings.TrimSpace(strings.TrimPrefix(param, "&")), "=")
		if ok && strings.TrimSpace(key) != "" {
			values.Add(strings.TrimSpace(key), strings.TrimSpace(value))
		}
	}
	return fmt.Sprintf("file:%s.sqlite?%s", path, values.Encode())
}

// Close closes the underlying connection pool.
func (c *Database) Close() error {
	return c.db.Close()
}
