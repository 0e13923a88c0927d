package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/HunterBartelt/TinyTracker/internal/docimport"
	"github.com/HunterBartelt/TinyTracker/internal/wire"
)

func (a *App) backup(ctx context.Context) {
	path, err := wire.WriteBackup(a.config.DataDir, a.store.Snapshot(), time.Now())
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	fmt.Printf("Backup written to %s\n", path)
}

func (a *App) importPDF(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Println("usage: pdf <path>")
		return
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	if a.importer == nil {
		model, err := docimport.NewGeminiModel(ctx, a.config.GeminiAPIKey, a.config.GeminiModel)
		if err != nil {
			log.Printf("%v", err)
			return
		}
		a.importer = docimport.New(model, a.log)
	}

	fmt.Println("Reading PDF data...")
	ds, err := a.importer.ParsePDF(ctx, data)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	added, err := a.store.Import(ctx, ds)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	fmt.Printf("Successfully added %d records.\n", added)
}

func (a *App) clearAll(ctx context.Context) {
	answer, err := GetSimpleText(a.reader, "This erases every record and the persisted snapshot. Type 'yes' to confirm")
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if answer != "yes" {
		fmt.Println("Cancelled.")
		return
	}
	if err := a.store.ClearAll(ctx); err != nil {
		log.Printf("error: %v", err)
		return
	}
	fmt.Println("All data cleared.")
}
