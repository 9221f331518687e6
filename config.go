package guihost

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the persisted host settings.
type Config struct {
	ScaleFactor float32 `toml:"scale_factor"`
	FontGamma   float32 `toml:"font_gamma"`
	Verbose     bool    `toml:"verbose"`
}

// DefaultConfig returns the settings New uses when no options are given.
func DefaultConfig() Config {
	return Config{ScaleFactor: 1, FontGamma: 1}
}

// LoadConfig reads a TOML config file. Keys missing from the file keep
// their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if !(cfg.ScaleFactor > 0) {
		return Config{}, fmt.Errorf("config %s: %w", path, ErrInvalidScaleFactor)
	}
	return cfg, nil
}

// Save writes the config as TOML.
func (c Config) Save(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
