// Package wire implements the two transfer encodings: the compact,
// size-bounded payload carried by a visual code, and the full-fidelity
// serialization used for file export and manual text transfer.
package wire

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/HunterBartelt/TinyTracker/internal/codec"
	"github.com/HunterBartelt/TinyTracker/internal/common"
	"github.com/HunterBartelt/TinyTracker/internal/models"
)

// Category tags used in compact event tuples.
const (
	tagFeeding   = "f"
	tagDiaper    = "d"
	tagSleep     = "s"
	tagGrowth    = "g"
	tagMedical   = "m"
	tagMilestone = "l"
)

// compactLimit bounds the payload to what a low-capacity visual code can
// carry at a scannable density.
const compactLimit = 20

// openSleepSentinel marks a sleep tuple with no end time.
const openSleepSentinel = -1

// compactEnvelope is the top-level shape of the compact payload. Times are
// whole seconds: base is absolute, every tuple offset is relative to base.
// Sub-second precision is deliberately dropped to save space.
type compactEnvelope struct {
	Base   int64             `json:"base"`
	Events []json.RawMessage `json:"events"`
}

type taggedRecord struct {
	tag string
	rec models.Record
}

// EncodeCompact produces the visual-code payload: the 20 most recent records
// across all categories, delta-encoded against the earliest kept record and
// wrapped in the text-safe codec. An empty store yields a minimal empty
// payload.
func EncodeCompact(snap models.Snapshot) (string, error) {
	all := make([]taggedRecord, 0, snap.Total())
	for i := range snap.Feedings {
		all = append(all, taggedRecord{tagFeeding, &snap.Feedings[i]})
	}
	for i := range snap.Diapers {
		all = append(all, taggedRecord{tagDiaper, &snap.Diapers[i]})
	}
	for i := range snap.Sleep {
		all = append(all, taggedRecord{tagSleep, &snap.Sleep[i]})
	}
	for i := range snap.Growth {
		all = append(all, taggedRecord{tagGrowth, &snap.Growth[i]})
	}
	for i := range snap.Medical {
		all = append(all, taggedRecord{tagMedical, &snap.Medical[i]})
	}
	for i := range snap.Milestones {
		all = append(all, taggedRecord{tagMilestone, &snap.Milestones[i]})
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].rec.PrimaryTime() < all[j].rec.PrimaryTime()
	})
	if len(all) > compactLimit {
		all = all[len(all)-compactLimit:]
	}

	if len(all) == 0 {
		return codec.Encode([]byte("{}")), nil
	}

	base := all[0].rec.PrimaryTime() / 1000

	events := make([]any, 0, len(all))
	for _, tr := range all {
		offset := tr.rec.PrimaryTime()/1000 - base
		switch r := tr.rec.(type) {
		case *models.FeedingLog:
			code := 0
			if r.Type == models.FeedingNursing {
				code = 1
			}
			events = append(events, []any{tagFeeding, offset, code, r.AmountMl, r.LeftMinutes, r.RightMinutes})
		case *models.DiaperLog:
			code := 0
			switch r.Type {
			case models.DiaperDirty:
				code = 1
			case models.DiaperMixed:
				code = 2
			}
			events = append(events, []any{tagDiaper, offset, code})
		case *models.SleepLog:
			end := int64(openSleepSentinel)
			if r.EndTime != nil {
				end = *r.EndTime/1000 - base
			}
			events = append(events, []any{tagSleep, offset, end})
		case *models.GrowthLog:
			events = append(events, []any{tagGrowth, offset, r.WeightKg})
		case *models.MedicalLog:
			events = append(events, []any{tagMedical, offset, r.Title})
		case *models.MilestoneLog:
			events = append(events, []any{tagMilestone, offset, r.Title})
		}
	}

	payload, err := json.Marshal(struct {
		Base   int64 `json:"base"`
		Events []any `json:"events"`
	}{Base: base, Events: events})
	if err != nil {
		return "", fmt.Errorf("marshal compact payload: %w", err)
	}

	return codec.Encode(payload), nil
}

// DecodeCompact reverses EncodeCompact, reconstructing absolute times from
// base and offsets and re-attaching full field names. Any payload that does
// not decode, parse, and match the expected tuple layouts fails with
// common.ErrIncompatiblePayload; a payload without events decodes to an
// empty dataset.
func DecodeCompact(payload string) (models.Dataset, error) {
	var ds models.Dataset

	raw, err := codec.Decode(payload)
	if err != nil {
		return ds, fmt.Errorf("%w: %v", common.ErrIncompatiblePayload, err)
	}

	var env compactEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return ds, fmt.Errorf("%w: %v", common.ErrIncompatiblePayload, err)
	}
	if len(env.Events) == 0 {
		return ds, nil
	}

	baseMs := env.Base * 1000

	for _, rawEvent := range env.Events {
		var fields []json.RawMessage
		if err := json.Unmarshal(rawEvent, &fields); err != nil {
			return models.Dataset{}, fmt.Errorf("%w: event is not a tuple", common.ErrIncompatiblePayload)
		}
		if len(fields) < 3 {
			return models.Dataset{}, fmt.Errorf("%w: truncated event tuple", common.ErrIncompatiblePayload)
		}

		var tag string
		if err := json.Unmarshal(fields[0], &tag); err != nil {
			return models.Dataset{}, fmt.Errorf("%w: bad event tag", common.ErrIncompatiblePayload)
		}
		offset, err := intAt(fields, 1)
		if err != nil {
			return models.Dataset{}, err
		}
		at := baseMs + offset*1000

		switch tag {
		case tagFeeding:
			if len(fields) < 6 {
				return models.Dataset{}, fmt.Errorf("%w: truncated feeding tuple", common.ErrIncompatiblePayload)
			}
			code, err := intAt(fields, 2)
			if err != nil {
				return models.Dataset{}, err
			}
			amount, err := floatAt(fields, 3)
			if err != nil {
				return models.Dataset{}, err
			}
			left, err := intAt(fields, 4)
			if err != nil {
				return models.Dataset{}, err
			}
			right, err := intAt(fields, 5)
			if err != nil {
				return models.Dataset{}, err
			}
			typ := models.FeedingBottle
			if code == 1 {
				typ = models.FeedingNursing
			}
			ds.Feedings = append(ds.Feedings, models.FeedingLog{
				Timestamp:    at,
				Type:         typ,
				AmountMl:     amount,
				LeftMinutes:  int(left),
				RightMinutes: int(right),
			})
		case tagDiaper:
			code, err := intAt(fields, 2)
			if err != nil {
				return models.Dataset{}, err
			}
			typ := models.DiaperMixed
			switch code {
			case 0:
				typ = models.DiaperWet
			case 1:
				typ = models.DiaperDirty
			}
			ds.Diapers = append(ds.Diapers, models.DiaperLog{Timestamp: at, Type: typ})
		case tagSleep:
			end, err := intAt(fields, 2)
			if err != nil {
				return models.Dataset{}, err
			}
			var endTime *int64
			if end != openSleepSentinel {
				v := baseMs + end*1000
				endTime = &v
			}
			ds.Sleep = append(ds.Sleep, models.SleepLog{StartTime: at, EndTime: endTime})
		case tagGrowth:
			weight, err := floatAt(fields, 2)
			if err != nil {
				return models.Dataset{}, err
			}
			ds.Growth = append(ds.Growth, models.GrowthLog{Timestamp: at, WeightKg: weight})
		case tagMedical:
			title, err := stringAt(fields, 2)
			if err != nil {
				return models.Dataset{}, err
			}
			// The compact tuple does not carry the medical subtype.
			ds.Medical = append(ds.Medical, models.MedicalLog{Timestamp: at, Type: models.MedicalVisit, Title: title})
		case tagMilestone:
			title, err := stringAt(fields, 2)
			if err != nil {
				return models.Dataset{}, err
			}
			ds.Milestones = append(ds.Milestones, models.MilestoneLog{Timestamp: at, Title: title})
		default:
			return models.Dataset{}, fmt.Errorf("%w: unknown event tag %q", common.ErrIncompatiblePayload, tag)
		}
	}

	return ds, nil
}

func intAt(fields []json.RawMessage, i int) (int64, error) {
	var v int64
	if err := json.Unmarshal(fields[i], &v); err != nil {
		return 0, fmt.Errorf("%w: field %d is not an integer", common.ErrIncompatiblePayload, i)
	}
	return v, nil
}

func floatAt(fields []json.RawMessage, i int) (float64, error) {
	var v float64
	if err := json.Unmarshal(fields[i], &v); err != nil {
		return 0, fmt.Errorf("%w: field %d is not a number", common.ErrIncompatiblePayload, i)
	}
	return v, nil
}

func stringAt(fields []json.RawMessage, i int) (string, error) {
	var v string
	if err := json.Unmarshal(fields[i], &v); err != nil {
		return "", fmt.Errorf("%w: field %d is not a string", common.ErrIncompatiblePayload, i)
	}
	return v, nil
}
