package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HunterBartelt/TinyTracker/internal/models"
)

func snapWithFeeding(id string, ts int64) models.Snapshot {
	s := models.DefaultSnapshot()
	s.Feedings = []models.FeedingLog{{ID: id, Timestamp: ts, Type: models.FeedingBottle, AmountMl: 100}}
	return s
}

func TestApply_TimeCollisionRejected(t *testing.T) {
	// Same exact normalized timestamp, different id and payload: rejected.
	snap := snapWithFeeding("a", 1000)

	added := Apply(&snap, models.Dataset{
		Feedings: []models.FeedingLog{{ID: "b", Timestamp: 1000, Type: models.FeedingBottle, AmountMl: 999}},
	})

	assert.Equal(t, 0, added)
	require.Len(t, snap.Feedings, 1)
	assert.Equal(t, "a", snap.Feedings[0].ID)
	assert.Equal(t, float64(100), snap.Feedings[0].AmountMl)
}

func TestApply_IDCollisionRejected(t *testing.T) {
	snap := snapWithFeeding("a", 1_700_000_000_000)

	added := Apply(&snap, models.Dataset{
		Feedings: []models.FeedingLog{{ID: "a", Timestamp: 1_700_000_999_000}},
	})

	assert.Equal(t, 0, added)
	assert.Len(t, snap.Feedings, 1)
}

func TestApply_NormalizesSecondsBeforeDedup(t *testing.T) {
	// Existing record holds milliseconds; incoming carries the same instant
	// in epoch seconds. The heuristic maps them onto each other.
	snap := snapWithFeeding("a", 1_700_000_000_000)

	added := Apply(&snap, models.Dataset{
		Feedings: []models.FeedingLog{{Timestamp: 1_700_000_000}},
	})

	assert.Equal(t, 0, added)
	assert.Len(t, snap.Feedings, 1)
}

func TestApply_AcceptsNewRecords(t *testing.T) {
	snap := snapWithFeeding("a", 1_700_000_000_000)

	added := Apply(&snap, models.Dataset{
		Feedings: []models.FeedingLog{{Timestamp: 1_700_000_060, Type: models.FeedingNursing, LeftMinutes: 5}},
	})

	assert.Equal(t, 1, added)
	require.Len(t, snap.Feedings, 2)
	// Normalized to milliseconds and given a fresh id.
	assert.Equal(t, int64(1_700_000_060_000), snap.Feedings[1].Timestamp)
	assert.NotEmpty(t, snap.Feedings[1].ID)
}

func TestApply_DiscardsRecordsWithoutPrimaryTime(t *testing.T) {
	snap := models.DefaultSnapshot()

	added := Apply(&snap, models.Dataset{
		Milestones: []models.MilestoneLog{{Title: "no time"}},
	})

	assert.Equal(t, 0, added)
	assert.Empty(t, snap.Milestones)
}

func TestApply_BatchInternalDuplicatesAllAccepted(t *testing.T) {
	// Lookups are built from pre-merge state only, so two incoming records
	// sharing a timestamp both land.
	snap := models.DefaultSnapshot()

	added := Apply(&snap, models.Dataset{
		Diapers: []models.DiaperLog{
			{Timestamp: 1_700_000_000_000, Type: models.DiaperWet},
			{Timestamp: 1_700_000_000_000, Type: models.DiaperDirty},
		},
	})

	assert.Equal(t, 2, added)
	assert.Len(t, snap.Diapers, 2)
}

func TestApply_SortsAndCountsAcrossCategories(t *testing.T) {
	snap := models.DefaultSnapshot()
	snap.Growth = []models.GrowthLog{{ID: "g1", Timestamp: 1_700_000_500_000, WeightKg: 4.2}}

	end := int64(1_700_000_400_000)
	added := Apply(&snap, models.Dataset{
		Growth: []models.GrowthLog{{Timestamp: 1_700_000_100_000, WeightKg: 4.0}},
		Sleep:  []models.SleepLog{{StartTime: 1_700_000_000_000, EndTime: &end}},
	})

	assert.Equal(t, 2, added)
	require.Len(t, snap.Growth, 2)
	assert.True(t, snap.Growth[0].Timestamp <= snap.Growth[1].Timestamp)
	assert.Len(t, snap.Sleep, 1)
	// Categories absent from the dataset are untouched.
	assert.Empty(t, snap.Feedings)
	assert.Empty(t, snap.Medical)
}

func TestApply_OpenSleepIntervalSurvivesMerge(t *testing.T) {
	snap := models.DefaultSnapshot()

	added := Apply(&snap, models.Dataset{
		Sleep: []models.SleepLog{{StartTime: 1_700_000_000_000}},
	})

	assert.Equal(t, 1, added)
	require.Len(t, snap.Sleep, 1)
	assert.Nil(t, snap.Sleep[0].EndTime)
}

func TestApply_KeepsIncomingID(t *testing.T) {
	snap := models.DefaultSnapshot()

	added := Apply(&snap, models.Dataset{
		Feedings: []models.FeedingLog{{ID: "keep-me", Timestamp: 1_700_000_000_000}},
	})

	assert.Equal(t, 1, added)
	assert.Equal(t, "keep-me", snap.Feedings[0].ID)
}
