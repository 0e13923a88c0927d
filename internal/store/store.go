// Package store owns the canonical in-memory snapshot of the infant-care
// log and keeps it durable through an injected storage backend.
//
// Every mutation commits atomically to the in-memory snapshot first and is
// then persisted synchronously. If the process dies between the two steps
// the update is lost; persistence is best-effort by design.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/HunterBartelt/TinyTracker/internal/common"
	"github.com/HunterBartelt/TinyTracker/internal/logging"
	"github.com/HunterBartelt/TinyTracker/internal/merge"
	"github.com/HunterBartelt/TinyTracker/internal/models"
	"github.com/HunterBartelt/TinyTracker/internal/storage"
)

type Store struct {
	mu      sync.Mutex
	backend storage.Backend
	log     logging.Logger
	snap    models.Snapshot
}

func New(backend storage.Backend, log logging.Logger) *Store {
	return &Store{
		backend: backend,
		log:     log,
		snap:    models.DefaultSnapshot(),
	}
}

// Load replaces the in-memory snapshot with the last persisted one. A
// missing or unreadable snapshot is treated as absence, not an error: the
// store falls back to the empty default and the caller never sees a failure.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap = models.DefaultSnapshot()

	data, ok, err := s.backend.Load(ctx)
	if err != nil {
		s.log.Warn(ctx, "snapshot load failed, starting empty", "error", err)
		return
	}
	if !ok {
		return
	}

	snap := models.DefaultSnapshot()
	if err := json.Unmarshal(data, &snap); err != nil {
		s.log.Warn(ctx, "snapshot unreadable, starting empty", "error", err)
		return
	}
	snap.FillDefaults()
	s.snap = snap
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Clone()
}

// Settings returns the current settings singleton.
func (s *Store) Settings() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Settings
}

// Save creates or replaces one record. A record whose id matches an existing
// record in the category replaces it in full; any other record (no id, or an
// id the category has never seen) gets a fresh id and is appended. Either
// way the category is re-sorted by primary time and the snapshot persisted.
// The record's final id is returned.
func (s *Store) Save(ctx context.Context, cat models.Category, rec models.Record) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch cat {
	case models.CategoryFeeding:
		r, ok := rec.(*models.FeedingLog)
		if !ok {
			return "", fmt.Errorf("%w: %T in %s", common.ErrCategoryMismatch, rec, cat)
		}
		s.snap.Feedings = saveLog(s.snap.Feedings, r)
	case models.CategoryDiaper:
		r, ok := rec.(*models.DiaperLog)
		if !ok {
			return "", fmt.Errorf("%w: %T in %s", common.ErrCategoryMismatch, rec, cat)
		}
		s.snap.Diapers = saveLog(s.snap.Diapers, r)
	case models.CategorySleep:
		r, ok := rec.(*models.SleepLog)
		if !ok {
			return "", fmt.Errorf("%w: %T in %s", common.ErrCategoryMismatch, rec, cat)
		}
		s.snap.Sleep = saveLog(s.snap.Sleep, r)
	case models.CategoryGrowth:
		r, ok := rec.(*models.GrowthLog)
		if !ok {
			return "", fmt.Errorf("%w: %T in %s", common.ErrCategoryMismatch, rec, cat)
		}
		s.snap.Growth = saveLog(s.snap.Growth, r)
	case models.CategoryMedical:
		r, ok := rec.(*models.MedicalLog)
		if !ok {
			return "", fmt.Errorf("%w: %T in %s", common.ErrCategoryMismatch, rec, cat)
		}
		s.snap.Medical = saveLog(s.snap.Medical, r)
	case models.CategoryMilestone:
		r, ok := rec.(*models.MilestoneLog)
		if !ok {
			return "", fmt.Errorf("%w: %T in %s", common.ErrCategoryMismatch, rec, cat)
		}
		s.snap.Milestones = saveLog(s.snap.Milestones, r)
	default:
		return "", fmt.Errorf("%w: %q", common.ErrUnknownCategory, cat)
	}

	return rec.RecordID(), s.persist(ctx)
}

// Delete removes the record with the given id from the category. A missing
// id is a no-op, not an error.
func (s *Store) Delete(ctx context.Context, cat models.Category, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch cat {
	case models.CategoryFeeding:
		s.snap.Feedings = deleteLog[models.FeedingLog](s.snap.Feedings, id)
	case models.CategoryDiaper:
		s.snap.Diapers = deleteLog[models.DiaperLog](s.snap.Diapers, id)
	case models.CategorySleep:
		s.snap.Sleep = deleteLog[models.SleepLog](s.snap.Sleep, id)
	case models.CategoryGrowth:
		s.snap.Growth = deleteLog[models.GrowthLog](s.snap.Growth, id)
	case models.CategoryMedical:
		s.snap.Medical = deleteLog[models.MedicalLog](s.snap.Medical, id)
	case models.CategoryMilestone:
		s.snap.Milestones = deleteLog[models.MilestoneLog](s.snap.Milestones, id)
	default:
		return fmt.Errorf("%w: %q", common.ErrUnknownCategory, cat)
	}

	return s.persist(ctx)
}

// UpdateSettings merges the non-nil fields of the patch into the settings
// singleton.
func (s *Store) UpdateSettings(ctx context.Context, patch models.SettingsPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.UnitSystem != nil {
		s.snap.Settings.UnitSystem = *patch.UnitSystem
	}
	if patch.SyncEmail != nil {
		s.snap.Settings.SyncEmail = *patch.SyncEmail
	}
	if patch.SyncID != nil {
		s.snap.Settings.SyncID = *patch.SyncID
	}

	return s.persist(ctx)
}

// ClearAll resets the store to the empty default and erases the persisted
// snapshot.
func (s *Store) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap = models.DefaultSnapshot()
	if err := s.backend.Clear(ctx); err != nil {
		return fmt.Errorf("clear persisted snapshot: %w", err)
	}
	return nil
}

// Import merges the dataset into the store and returns the number of records
// added. The merge is computed against a copy of the snapshot and committed
// in one step, so a concurrent reader never observes a partially merged
// category.
func (s *Store) Import(ctx context.Context, in models.Dataset) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.snap.Clone()
	added := merge.Apply(&work, in)
	s.snap = work

	return added, s.persist(ctx)
}

// CurrentSleep returns the most recent sleep record with no end time, if
// any. The store permits several open intervals to coexist; callers that
// assume at most one get the newest.
func (s *Store) CurrentSleep() (models.SleepLog, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(s.snap.Sleep) - 1; i >= 0; i-- {
		if s.snap.Sleep[i].EndTime == nil {
			return s.snap.Sleep[i], true
		}
	}
	return models.SleepLog{}, false
}

// persist writes the whole snapshot through the backend. The in-memory
// commit already happened; a failed write is reported but not rolled back.
func (s *Store) persist(ctx context.Context) error {
	data, err := json.Marshal(s.snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := s.backend.Store(ctx, data); err != nil {
		s.log.Error(ctx, "snapshot persist failed", "error", err)
		return fmt.Errorf("persist snapshot: %w", err)
	}
	return nil
}

// saveLog implements the Save lifecycle for one category list. rec is
// mutated when a fresh id is assigned.
func saveLog[T any, PT models.RecordPtr[T]](list []T, rec PT) []T {
	if id := rec.RecordID(); id != "" {
		for i := range list {
			if PT(&list[i]).RecordID() == id {
				list[i] = *rec
				models.SortByTime[T, PT](list)
				return list
			}
		}
	}
	rec.SetRecordID(models.NewID())
	list = append(list, *rec)
	models.SortByTime[T, PT](list)
	return list
}

func deleteLog[T any, PT models.RecordPtr[T]](list []T, id string) []T {
	for i := range list {
		if PT(&list[i]).RecordID() == id {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
