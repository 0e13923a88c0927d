package config

import (
	"encoding/json"
	"os"

	"github.com/HunterBartelt/TinyTracker/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent keys
// leave the corresponding Config fields untouched.
type JsonConfig struct {
	DataDir        *string `json:"data_dir"`
	StorageBackend *string `json:"storage_backend"`
	GeminiAPIKey   *string `json:"gemini_api_key"`
	GeminiModel    *string `json:"gemini_model"`
	QRSize         *int    `json:"qr_size"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags via flagx.JsonConfigFlags;
// if neither is given, no JSON is loaded. Read or unmarshal errors panic
// (caller should recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataDir != nil {
		cfg.DataDir = *jc.DataDir
	}
	if jc.StorageBackend != nil {
		cfg.StorageBackend = *jc.StorageBackend
	}
	if jc.GeminiAPIKey != nil {
		cfg.GeminiAPIKey = *jc.GeminiAPIKey
	}
	if jc.GeminiModel != nil {
		cfg.GeminiModel = *jc.GeminiModel
	}
	if jc.QRSize != nil {
		cfg.QRSize = *jc.QRSize
	}
}
