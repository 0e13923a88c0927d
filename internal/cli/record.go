package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/HunterBartelt/TinyTracker/internal/models"
)

// Quantities are entered in the configured display unit but stored in the
// canonical unit (ml, kg).
const (
	mlPerOz = 29.57
	kgPerLb = 0.45359237
)

func (a *App) imperial() bool {
	return a.store.Settings().UnitSystem == models.UnitImperial
}

func (a *App) addFeeding(ctx context.Context) {
	typ, err := GetSimpleText(a.reader, "Feeding type (bottle/nursing)")
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	ts, err := a.getTime("Time")
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	rec := &models.FeedingLog{Timestamp: ts}

	switch typ {
	case "bottle", "":
		rec.Type = models.FeedingBottle
		if a.imperial() {
			oz, err := a.getFloat("Amount (oz)")
			if err != nil {
				log.Printf("error: %v", err)
				return
			}
			rec.AmountMl = oz * mlPerOz
		} else {
			ml, err := a.getFloat("Amount (ml)")
			if err != nil {
				log.Printf("error: %v", err)
				return
			}
			rec.AmountMl = ml
		}
	case "nursing":
		rec.Type = models.FeedingNursing
		left, err := a.getInt("Left side (minutes)")
		if err != nil {
			log.Printf("error: %v", err)
			return
		}
		right, err := a.getInt("Right side (minutes)")
		if err != nil {
			log.Printf("error: %v", err)
			return
		}
		rec.LeftMinutes, rec.RightMinutes = left, right
	default:
		log.Printf("unknown feeding type %q", typ)
		return
	}

	note, err := GetSimpleText(a.reader, "Note (optional)")
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	rec.Note = note

	id, err := a.store.Save(ctx, models.CategoryFeeding, rec)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	fmt.Printf("Saved feeding %s\n", id)
}

func (a *App) addDiaper(ctx context.Context) {
	typ, err := GetSimpleText(a.reader, "Diaper type (wet/dirty/mixed)")
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	var dt models.DiaperType
	switch typ {
	case "wet", "":
		dt = models.DiaperWet
	case "dirty":
		dt = models.DiaperDirty
	case "mixed":
		dt = models.DiaperMixed
	default:
		log.Printf("unknown diaper type %q", typ)
		return
	}

	ts, err := a.getTime("Time")
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	id, err := a.store.Save(ctx, models.CategoryDiaper, &models.DiaperLog{Timestamp: ts, Type: dt})
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	fmt.Printf("Saved diaper %s\n", id)
}

func (a *App) startSleep(ctx context.Context) {
	if cur, ok := a.store.CurrentSleep(); ok {
		fmt.Printf("Already asleep since %s (use 'wake' to close it)\n", formatMillis(cur.StartTime))
		return
	}

	ts, err := a.getTime("Fell asleep at")
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	id, err := a.store.Save(ctx, models.CategorySleep, &models.SleepLog{StartTime: ts})
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	fmt.Printf("Sleep started (%s)\n", id)
}

func (a *App) endSleep(ctx context.Context) {
	cur, ok := a.store.CurrentSleep()
	if !ok {
		fmt.Println("No open sleep interval.")
		return
	}

	end, err := a.getTime("Woke up at")
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	cur.EndTime = &end

	if _, err := a.store.Save(ctx, models.CategorySleep, &cur); err != nil {
		log.Printf("error: %v", err)
		return
	}
	fmt.Printf("Sleep closed: %s to %s\n", formatMillis(cur.StartTime), formatMillis(end))
}

func (a *App) addGrowth(ctx context.Context) {
	ts, err := a.getTime("Time")
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	var kg float64
	if a.imperial() {
		lb, err := a.getFloat("Weight (lb)")
		if err != nil {
			log.Printf("error: %v", err)
			return
		}
		kg = lb * kgPerLb
	} else {
		kg, err = a.getFloat("Weight (kg)")
		if err != nil {
			log.Printf("error: %v", err)
			return
		}
	}

	id, err := a.store.Save(ctx, models.CategoryGrowth, &models.GrowthLog{Timestamp: ts, WeightKg: kg})
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	fmt.Printf("Saved growth %s\n", id)
}

func (a *App) addMedical(ctx context.Context) {
	typ, err := GetSimpleText(a.reader, "Record type (visit/immunization)")
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	var mt models.MedicalType
	switch typ {
	case "visit", "":
		mt = models.MedicalVisit
	case "immunization":
		mt = models.MedicalImmunization
	default:
		log.Printf("unknown medical type %q", typ)
		return
	}

	title, err := GetSimpleText(a.reader, "Title")
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if title == "" {
		log.Println("title is required")
		return
	}

	ts, err := a.getTime("Time")
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	id, err := a.store.Save(ctx, models.CategoryMedical, &models.MedicalLog{Timestamp: ts, Type: mt, Title: title})
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	fmt.Printf("Saved medical record %s\n", id)
}

func (a *App) addMilestone(ctx context.Context) {
	title, err := GetSimpleText(a.reader, "Milestone")
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if title == "" {
		log.Println("title is required")
		return
	}

	ts, err := a.getTime("Time")
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	id, err := a.store.Save(ctx, models.CategoryMilestone, &models.MilestoneLog{Timestamp: ts, Title: title})
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	fmt.Printf("Saved milestone %s\n", id)
}
