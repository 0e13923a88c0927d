package config

import "os"

// Config holds runtime settings for the TinyTracker CLI.
//
// Fields:
//   - DataDir: directory holding the snapshot, backups, and QR images.
//   - StorageBackend: which snapshot backend to use ("file", "sqlite" or "memory").
//   - GeminiAPIKey: API key for the document-understanding service.
//   - GeminiModel: model name used for PDF report extraction.
//   - QRSize: side length in pixels of the generated QR image.
type Config struct {
	DataDir        string
	StorageBackend string
	GeminiAPIKey   string
	GeminiModel    string
	QRSize         int
}

// LoadDefaults populates c with sensible defaults. The Gemini key defaults
// from the GEMINI_API_KEY environment variable so it never has to appear on
// the command line.
func (c *Config) LoadDefaults() {
	c.DataDir = "."
	c.StorageBackend = "file"
	c.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	c.GeminiModel = "gemini-2.5-flash"
	c.QRSize = 1000
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
