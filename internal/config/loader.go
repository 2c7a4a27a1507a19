package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/tacogips/pagegen/internal/debug"
)

// Loader defines the interface for loading configuration files.
type Loader interface {
	// Load loads configuration from the specified file path.
	Load(path string) (*Config, error)
	// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
	LoadOrDefault(path string) (*Config, error)
	// Validate validates the configuration.
	Validate(config *Config) error
}

// FileLoader implements the Loader interface for file-based configuration loading.
// The decoder is chosen by extension: .json, .yaml/.yml or .toml.
type FileLoader struct{}

// NewLoader creates a new FileLoader instance.
func NewLoader() Loader {
	return &FileLoader{}
}

// Load loads configuration from the specified file path.
func (l *FileLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewConfigErrorWithCause(ConfigNotFound, path, "configuration file not found", err)
		}
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to read configuration file", err)
	}

	var cfg Config
	if err := decode(path, data, &cfg); err != nil {
		return nil, err
	}

	// Merge with defaults for any missing fields
	mergeConfig(&cfg, DefaultConfig())

	debug.Debug("[config] Loaded configuration from %s", path)
	return &cfg, nil
}

// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
func (l *FileLoader) LoadOrDefault(path string) (*Config, error) {
	cfg, err := l.Load(path)
	if err != nil {
		// If file not found, return defaults
		var cfgErr *ConfigError
		if errors.As(err, &cfgErr) && cfgErr.Type == ConfigNotFound {
			debug.Debug("[config] No configuration at %s, using defaults", path)
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration.
func (l *FileLoader) Validate(config *Config) error {
	return validateConfig(config)
}

func decode(path string, data []byte, cfg *Config) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return NewConfigErrorWithCause(ConfigInvalid, path, "invalid JSON syntax", err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return NewConfigErrorWithCause(ConfigInvalid, path, "invalid YAML syntax", err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return NewConfigErrorWithCause(ConfigInvalid, path, "invalid TOML syntax", err)
		}
	default:
		return NewConfigError(ConfigUnsupportedFormat, path, "unsupported configuration format "+ext+" (use .json, .yaml, .yml or .toml)")
	}
	return nil
}

// mergeConfig merges missing fields from defaults into cfg.
// Booleans are taken as written.
func mergeConfig(cfg, defaults *Config) {
	// Generation
	if cfg.Generation.FallbackPattern == "" {
		cfg.Generation.FallbackPattern = defaults.Generation.FallbackPattern
	}
	if cfg.Generation.OutputDir == "" {
		cfg.Generation.OutputDir = defaults.Generation.OutputDir
	}

	// Project
	if cfg.Project.ID == "" {
		cfg.Project.ID = defaults.Project.ID
	}
	if len(cfg.Project.IgnorePatterns) == 0 {
		cfg.Project.IgnorePatterns = defaults.Project.IgnorePatterns
	}
	if len(cfg.Project.BinaryExtensions) == 0 {
		cfg.Project.BinaryExtensions = defaults.Project.BinaryExtensions
	}

	// Store
	if cfg.Store.Path == "" {
		cfg.Store.Path = defaults.Store.Path
	}
}
