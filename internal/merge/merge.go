// Package merge integrates an externally-sourced partial dataset into a
// snapshot with deduplication. The input may come from either wire format or
// from the document importer; the engine does not care which.
package merge

import (
	"github.com/HunterBartelt/TinyTracker/internal/models"
)

// Apply merges the dataset into the snapshot in place and returns the number
// of records actually added across all categories. Categories absent from
// the dataset are left untouched.
//
// Per category, an incoming record is accepted only if its id is absent from
// the category AND its normalized primary time is absent from the category.
// Records arriving from a foreign device carry freshly generated ids, so id
// dedup alone cannot catch a re-import of the same event; the timestamp
// check catches that case. The cost is that a genuinely distinct second
// event landing on the same exact millisecond is silently rejected too.
// Known trade-off, kept deliberately.
func Apply(snap *models.Snapshot, in models.Dataset) int {
	added := 0

	var n int
	snap.Feedings, n = mergeLogs(snap.Feedings, in.Feedings)
	added += n
	snap.Diapers, n = mergeLogs(snap.Diapers, in.Diapers)
	added += n
	snap.Sleep, n = mergeLogs(snap.Sleep, in.Sleep)
	added += n
	snap.Growth, n = mergeLogs(snap.Growth, in.Growth)
	added += n
	snap.Medical, n = mergeLogs(snap.Medical, in.Medical)
	added += n
	snap.Milestones, n = mergeLogs(snap.Milestones, in.Milestones)
	added += n

	return added
}

// mergeLogs merges one category. Both dedup lookups are built from the
// pre-merge state only, so duplicates within a single incoming batch are all
// accepted; this matches how re-imports behave in the field and keeps the
// merge a one-pass decision against one consistent view.
func mergeLogs[T any, PT models.RecordPtr[T]](existing, incoming []T) ([]T, int) {
	if len(incoming) == 0 {
		return existing, 0
	}

	existingIDs := make(map[string]struct{}, len(existing))
	existingTimes := make(map[int64]struct{}, len(existing))
	for i := range existing {
		p := PT(&existing[i])
		if id := p.RecordID(); id != "" {
			existingIDs[id] = struct{}{}
		}
		existingTimes[models.EnsureMillis(p.PrimaryTime())] = struct{}{}
	}

	out := existing
	added := 0
	for i := range incoming {
		p := PT(&incoming[i])
		// No primary time: the record cannot be ordered or deduplicated.
		if p.PrimaryTime() == 0 {
			continue
		}
		p.NormalizeTimes()
		if p.RecordID() == "" {
			p.SetRecordID(models.NewID())
		}
		if _, ok := existingIDs[p.RecordID()]; ok {
			continue
		}
		if _, ok := existingTimes[p.PrimaryTime()]; ok {
			continue
		}
		out = append(out, incoming[i])
		added++
	}

	models.SortByTime[T, PT](out)
	return out, added
}
