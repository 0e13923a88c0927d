// Package cli is the interactive front end: a small REPL over the event
// store, the sync channels, and the document importer.
package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/HunterBartelt/TinyTracker/internal/config"
	"github.com/HunterBartelt/TinyTracker/internal/docimport"
	"github.com/HunterBartelt/TinyTracker/internal/logging"
	"github.com/HunterBartelt/TinyTracker/internal/scan"
	"github.com/HunterBartelt/TinyTracker/internal/storage"
	"github.com/HunterBartelt/TinyTracker/internal/store"
)

type App struct {
	config   *config.Config
	store    *store.Store
	scans    *scan.Manager
	importer *docimport.Importer
	log      logging.Logger
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	backend, err := storage.New(ctx, c)
	if err != nil {
		return nil, err
	}

	st := store.New(backend, logger)
	st.Load(ctx)

	return &App{
		config: c,
		store:  st,
		scans:  scan.NewManager(logger),
		log:    logger,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}
