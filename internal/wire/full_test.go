package wire

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HunterBartelt/TinyTracker/internal/common"
	"github.com/HunterBartelt/TinyTracker/internal/merge"
	"github.com/HunterBartelt/TinyTracker/internal/models"
)

func TestSyncCode_RoundTripExact(t *testing.T) {
	snap := fullSnapshot()

	code, err := EncodeSyncCode(snap)
	require.NoError(t, err)

	ds, err := DecodeSyncCode(code)
	require.NoError(t, err)

	// Full fidelity: ids, sub-second precision, and every field survive.
	assert.Equal(t, snap.Feedings, ds.Feedings)
	assert.Equal(t, snap.Diapers, ds.Diapers)
	assert.Equal(t, snap.Sleep, ds.Sleep)
	assert.Equal(t, snap.Growth, ds.Growth)
	assert.Equal(t, snap.Medical, ds.Medical)
	assert.Equal(t, snap.Milestones, ds.Milestones)
}

func TestSyncCode_SelfMergeAddsNothing(t *testing.T) {
	snap := fullSnapshot()

	code, err := EncodeSyncCode(snap)
	require.NoError(t, err)
	ds, err := DecodeSyncCode(code)
	require.NoError(t, err)

	added := merge.Apply(&snap, ds)
	assert.Zero(t, added)
}

func TestSyncCode_CrossStoreMerge(t *testing.T) {
	a := models.DefaultSnapshot()
	a.Feedings = []models.FeedingLog{{ID: "fa", Timestamp: 1_700_000_000_000, Type: models.FeedingBottle, AmountMl: 90}}

	b := models.DefaultSnapshot()
	b.Feedings = []models.FeedingLog{{ID: "fb", Timestamp: 1_700_000_100_000, Type: models.FeedingNursing, LeftMinutes: 8}}
	b.Diapers = []models.DiaperLog{{ID: "db", Timestamp: 1_700_000_200_000, Type: models.DiaperWet}}

	code, err := EncodeSyncCode(b)
	require.NoError(t, err)
	ds, err := DecodeSyncCode(code)
	require.NoError(t, err)

	added := merge.Apply(&a, ds)
	assert.Equal(t, 2, added)
	require.Len(t, a.Feedings, 2)
	assert.Equal(t, "fa", a.Feedings[0].ID)
	assert.Equal(t, "fb", a.Feedings[1].ID)
	require.Len(t, a.Diapers, 1)
}

func TestDecodeSyncCode_Invalid(t *testing.T) {
	for _, code := range []string{"not base64 !!!", "aGVsbG8=", ""} {
		_, err := DecodeSyncCode(code)
		require.ErrorIs(t, err, common.ErrInvalidSyncCode, "code %q", code)
	}
}

func TestMarshalBackup_Indented(t *testing.T) {
	data, err := MarshalBackup(fullSnapshot())
	require.NoError(t, err)

	assert.Contains(t, string(data), "\n  \"feedings\"")

	var snap models.Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	assert.Len(t, snap.Feedings, 2)
}

func TestBackupFileName(t *testing.T) {
	now := time.Date(2024, 3, 7, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "tinytrack-backup-2024-03-07.json", BackupFileName(now))
}

func TestWriteBackup(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)

	path, err := WriteBackup(dir, fullSnapshot(), now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "tinytrack-backup-2024-03-07.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var snap models.Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	assert.Len(t, snap.Sleep, 1)
}
