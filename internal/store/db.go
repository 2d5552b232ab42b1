package store

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// DB wraps sql.DB for Postgres using pgx. Records are stored as JSONB
// documents, one row per document, so the relational layer stays a thin
// key-value shell around the collections.
type DB struct {
	Client *sql.DB
}

// NewDB creates a Postgres connection with sane defaults.
func NewDB(connString string) (*DB, error) {
	db, err := sql.Open("pgx", connString)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)
	return &DB{Client: db}, db.PingContext(context.Background())
}

// Migrate creates the document tables when they do not exist yet.
func (d *DB) Migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS staff_docs (
			id  UUID PRIMARY KEY,
			sl  BIGINT NOT NULL DEFAULT 0,
			doc JSONB NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS staff_docs_sl_idx ON staff_docs (sl)`,
		`CREATE TABLE IF NOT EXISTS vacation_docs (
			id  UUID PRIMARY KEY,
			doc JSONB NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS catalog_entries (
			kind TEXT NOT NULL,
			name TEXT NOT NULL,
			PRIMARY KEY (kind, name)
		)`,
	}
	for _, stmt := range stmts {
		if _, err := d.Client.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the underlying connection.
func (d *DB) Close() error {
	if d == nil || d.Client == nil {
		return nil
	}
	return d.Client.Close()
}
