package handler

import (
	"os"

	"github.com/ghodss/yaml"
	"golang.org/x/xerrors"
)

// Config controls the outline endpoints.
type Config struct {
	// Addr is the listen address of the example server.
	Addr string `json:"addr"`
	// MaxDocumentBytes bounds the request body of the outline endpoint.
	MaxDocumentBytes int64 `json:"maxDocumentBytes"`
	// AllowedOrigins restricts WebSocket upgrades. Empty allows any origin.
	AllowedOrigins []string `json:"allowedOrigins"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Addr:             ":8080",
		MaxDocumentBytes: 1 << 20,
	}
}

// LoadConfig reads a YAML configuration file, filling unset fields from
// DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, xerrors.Errorf("read config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, xerrors.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
