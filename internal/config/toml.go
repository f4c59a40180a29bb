// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Storage StorageConfig `toml:"storage"`
	Audio   AudioConfig   `toml:"audio"`
}

// StorageConfig maps storage-related settings.
type StorageConfig struct {
	Backend     *string `toml:"backend"`
	DB          *string `toml:"db"`
	RedisAddr   *string `toml:"redis-addr"`
	RedisPrefix *string `toml:"redis-prefix"`
}

// AudioConfig maps audio cue settings.
type AudioConfig struct {
	Bell *bool `toml:"bell"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		fmt.Fprintf(os.Stderr, "warning: unknown config key %q in %s\n", undecoded[0].String(), path)
	}
	return cfg, nil
}

// Settings are the resolved runtime settings.
type Settings struct {
	Backend     string
	DB          string
	RedisAddr   string
	RedisPrefix string
	Bell        bool
}

// Defaults returns the settings used when nothing is configured.
// DB is left empty; the store resolves its own default path.
func Defaults() Settings {
	return Settings{
		Backend:     BackendSQLite,
		RedisAddr:   "localhost:6379",
		RedisPrefix: "countdrill:",
		Bell:        true,
	}
}

// Apply overlays the values set in the file onto s. A leading ~ in the
// database path is expanded to the home directory.
func (s Settings) Apply(cfg FileConfig) Settings {
	if v := cfg.Storage.Backend; v != nil {
		s.Backend = *v
	}
	if v := cfg.Storage.DB; v != nil {
		s.DB = ExpandHome(*v)
	}
	if v := cfg.Storage.RedisAddr; v != nil {
		s.RedisAddr = *v
	}
	if v := cfg.Storage.RedisPrefix; v != nil {
		s.RedisPrefix = *v
	}
	if v := cfg.Audio.Bell; v != nil {
		s.Bell = *v
	}
	return s
}

// Validate reports settings that cannot be used.
func (s Settings) Validate() error {
	switch s.Backend {
	case BackendSQLite:
	case BackendRedis:
		if s.RedisAddr == "" {
			return fmt.Errorf("redis backend needs an address")
		}
	default:
		return fmt.Errorf("unknown storage backend %q (want %s or %s)", s.Backend, BackendSQLite, BackendRedis)
	}
	return nil
}

// Template is the commented config written by `countdrill config --init`.
const Template = `# countdrill configuration

[storage]
# backend = "sqlite"            # or "redis"
# db = "~/.local/share/countdrill/countdrill.db"
# redis-addr = "localhost:6379"
# redis-prefix = "countdrill:"

[audio]
# bell = true                   # ring the terminal bell after each answer
`

// WriteTemplate writes Template to path unless a file already exists there.
func WriteTemplate(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists at %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(Template), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
