package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/HunterBartelt/TinyTracker/internal/dbx"
)

// SQLiteBackend keeps the snapshot in a one-row key-value table. The row key
// is the schema-versioned SnapshotKey.
type SQLiteBackend struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the snapshot database at dsn and ensures the
// snapshots table exists.
func OpenSQLite(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	_, err = db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS snapshots (
		key TEXT PRIMARY KEY,
		data BLOB NOT NULL
	)`)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create snapshots table: %w", err)
	}
	return db, nil
}

// NewSQLiteBackend returns a SQLiteBackend bound to the given database.
func NewSQLiteBackend(db *sql.DB) *SQLiteBackend {
	return &SQLiteBackend{db: db}
}

func (b *SQLiteBackend) Load(ctx context.Context) ([]byte, bool, error) {
	var data []byte
	err := b.db.QueryRowContext(ctx,
		`SELECT data FROM snapshots WHERE key = ?`, SnapshotKey).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("select snapshot: %w", err)
	}
	return data, true, nil
}

func (b *SQLiteBackend) Store(ctx context.Context, data []byte) error {
	err := dbx.WithTx(ctx, b.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM snapshots WHERE key = ?`, SnapshotKey); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO snapshots (key, data) VALUES (?, ?)`, SnapshotKey, data)
		return err
	})
	if err != nil {
		return fmt.Errorf("store snapshot: %w", err)
	}
	return nil
}

func (b *SQLiteBackend) Clear(ctx context.Context) error {
	if _, err := b.db.ExecContext(ctx,
		`DELETE FROM snapshots WHERE key = ?`, SnapshotKey); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}
