package config

import (
	"flag"
	"os"

	"github.com/HunterBartelt/TinyTracker/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   data directory (default from Config)
//	-s string   storage backend: file, sqlite or memory
//	-k string   Gemini API key
//	-m string   Gemini model name
//	-q int      QR image size in pixels
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-s", "-k", "-m", "-q"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.StorageBackend, "s", cfg.StorageBackend, "storage backend (file, sqlite or memory)")
	fs.StringVar(&cfg.GeminiAPIKey, "k", cfg.GeminiAPIKey, "Gemini API key for PDF import")
	fs.StringVar(&cfg.GeminiModel, "m", cfg.GeminiModel, "Gemini model name")
	fs.IntVar(&cfg.QRSize, "q", cfg.QRSize, "QR image size (pixels)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
