package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/HunterBartelt/TinyTracker/internal/models"
)

// parseCategory maps a user-typed category name onto the closed enum.
func parseCategory(s string) (models.Category, bool) {
	switch s {
	case "feedings", "feeding", "feed":
		return models.CategoryFeeding, true
	case "diapers", "diaper":
		return models.CategoryDiaper, true
	case "sleep":
		return models.CategorySleep, true
	case "growth":
		return models.CategoryGrowth, true
	case "medical":
		return models.CategoryMedical, true
	case "milestones", "milestone":
		return models.CategoryMilestone, true
	}
	return "", false
}

func (a *App) list(ctx context.Context, args []string) {
	cats := models.AllCategories()
	if len(args) > 0 {
		cat, ok := parseCategory(args[0])
		if !ok {
			log.Printf("unknown category %q", args[0])
			return
		}
		cats = []models.Category{cat}
	}

	snap := a.store.Snapshot()
	for _, cat := range cats {
		a.printCategory(snap, cat)
	}
}

func (a *App) printCategory(snap models.Snapshot, cat models.Category) {
	switch cat {
	case models.CategoryFeeding:
		for _, r := range snap.Feedings {
			if r.Type == models.FeedingNursing {
				fmt.Printf("feeding   %s  %s  nursing L%dm R%dm\n", r.ID, formatMillis(r.Timestamp), r.LeftMinutes, r.RightMinutes)
			} else {
				fmt.Printf("feeding   %s  %s  bottle %.0fml\n", r.ID, formatMillis(r.Timestamp), r.AmountMl)
			}
		}
	case models.CategoryDiaper:
		for _, r := range snap.Diapers {
			fmt.Printf("diaper    %s  %s  %s\n", r.ID, formatMillis(r.Timestamp), r.Type)
		}
	case models.CategorySleep:
		for _, r := range snap.Sleep {
			end := "(asleep)"
			if r.EndTime != nil {
				end = formatMillis(*r.EndTime)
			}
			fmt.Printf("sleep     %s  %s  to %s\n", r.ID, formatMillis(r.StartTime), end)
		}
	case models.CategoryGrowth:
		for _, r := range snap.Growth {
			fmt.Printf("growth    %s  %s  %.3fkg\n", r.ID, formatMillis(r.Timestamp), r.WeightKg)
		}
	case models.CategoryMedical:
		for _, r := range snap.Medical {
			fmt.Printf("medical   %s  %s  %s: %s\n", r.ID, formatMillis(r.Timestamp), r.Type, r.Title)
		}
	case models.CategoryMilestone:
		for _, r := range snap.Milestones {
			fmt.Printf("milestone %s  %s  %s\n", r.ID, formatMillis(r.Timestamp), r.Title)
		}
	}
}

func (a *App) delete(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Println("usage: delete <category> <id>")
		return
	}
	cat, ok := parseCategory(args[0])
	if !ok {
		log.Printf("unknown category %q", args[0])
		return
	}
	if err := a.store.Delete(ctx, cat, args[1]); err != nil {
		log.Printf("error: %v", err)
		return
	}
	fmt.Println("Deleted (if it existed).")
}
