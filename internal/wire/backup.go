package wire

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/HunterBartelt/TinyTracker/internal/models"
)

// MarshalBackup serializes the complete snapshot as readable, indented JSON
// for the downloadable backup artifact.
func MarshalBackup(snap models.Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal backup: %w", err)
	}
	return data, nil
}

// BackupFileName names the backup artifact after the given date.
func BackupFileName(now time.Time) string {
	return fmt.Sprintf("tinytrack-backup-%s.json", now.Format("2006-01-02"))
}

// WriteBackup writes the backup file into dir and returns its full path.
func WriteBackup(dir string, snap models.Snapshot, now time.Time) (string, error) {
	data, err := MarshalBackup(snap)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, BackupFileName(now))
	if err := os.WriteFile(path, data, 0o660); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	return path, nil
}
