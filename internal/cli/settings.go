package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/HunterBartelt/TinyTracker/internal/models"
)

func (a *App) setUnits(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Printf("Current units: %s (usage: units <metric|imperial>)\n", a.store.Settings().UnitSystem)
		return
	}

	var unit models.UnitSystem
	switch args[0] {
	case "metric":
		unit = models.UnitMetric
	case "imperial":
		unit = models.UnitImperial
	default:
		log.Printf("unknown unit system %q", args[0])
		return
	}

	if err := a.store.UpdateSettings(ctx, models.SettingsPatch{UnitSystem: &unit}); err != nil {
		log.Printf("error: %v", err)
		return
	}
	fmt.Printf("Units set to %s\n", unit)
}

// setIdentity updates the optional sync identity fields on the settings
// singleton. Empty answers leave the current values alone.
func (a *App) setIdentity(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Sync email (empty to keep)")
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	syncID, err := GetSimpleText(a.reader, "Sync id (empty to keep)")
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	patch := models.SettingsPatch{}
	if email != "" {
		patch.SyncEmail = &email
	}
	if syncID != "" {
		patch.SyncID = &syncID
	}
	if patch.SyncEmail == nil && patch.SyncID == nil {
		return
	}

	if err := a.store.UpdateSettings(ctx, patch); err != nil {
		log.Printf("error: %v", err)
		return
	}
	fmt.Println("Sync identity updated.")
}

func (a *App) setAPIKey(ctx context.Context) {
	key, err := GetAPIKey(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	a.config.GeminiAPIKey = string(key)
	// Force the importer to be rebuilt with the new key.
	a.importer = nil
	fmt.Println("API key set for this session.")
}
