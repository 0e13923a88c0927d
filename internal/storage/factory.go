package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/HunterBartelt/TinyTracker/internal/config"

	_ "modernc.org/sqlite"
)

// New builds the snapshot backend selected by the config.
func New(ctx context.Context, cfg *config.Config) (Backend, error) {
	switch cfg.StorageBackend {
	case "file":
		return NewFileBackend(cfg.DataDir)
	case "sqlite":
		if err := os.MkdirAll(cfg.DataDir, 0o770); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", cfg.DataDir, err)
		}
		db, err := OpenSQLite(ctx, filepath.Join(cfg.DataDir, "tinytrack.db"))
		if err != nil {
			return nil, err
		}
		return NewSQLiteBackend(db), nil
	case "memory":
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
