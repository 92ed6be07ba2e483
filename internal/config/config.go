package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDBPath         = "data/db.json"
	DefaultTickMs         = 200
)

type Keymap struct {
	Quit    string `toml:"quit"`
	Home    string `toml:"home"`
	Groups  string `toml:"groups"`
	Editing string `toml:"editing"`
	Add     string `toml:"add"`
	Delete  string `toml:"delete"`
	Up      string `toml:"up"`
	Down    string `toml:"down"`
}

type Config struct {
	DBPath string `toml:"db_path"`
	TickMs int    `toml:"tick_ms"`
	Keys   Keymap `toml:"keys"`
}

// TickInterval converts the configured tick cadence to a duration,
// falling back to the default for zero or negative values.
func (c Config) TickInterval() time.Duration {
	ms := c.TickMs
	if ms <= 0 {
		ms = DefaultTickMs
	}
	return time.Duration(ms) * time.Millisecond
}

// ResolveConfigPath prefers the per-user config directory and falls
// back to the working directory when it cannot be determined.
func ResolveConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(base, "sagrading", DefaultConfigFileName)
}

func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBPath
	}
	if cfg.TickMs <= 0 {
		cfg.TickMs = DefaultTickMs
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig() Config {
	return Config{
		DBPath: DefaultDBPath,
		TickMs: DefaultTickMs,
		Keys: Keymap{
			Quit:    "q",
			Home:    "h",
			Groups:  "g",
			Editing: "e",
			Add:     "a",
			Delete:  "d",
			Up:      "up",
			Down:    "down",
		},
	}
}
