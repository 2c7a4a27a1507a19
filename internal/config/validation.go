package config

import (
	"path/filepath"
	"strings"

	"github.com/tacogips/pagegen/internal/template/scanner"
)

// Validate validates the configuration.
func Validate(config *Config) error {
	loader := NewLoader()
	return loader.Validate(config)
}

func validateConfig(config *Config) error {
	if config == nil {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "", "configuration cannot be nil")
	}

	fallback := config.Generation.FallbackPattern
	if strings.TrimSpace(fallback) == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "generation.fallback_pattern", "fallback pattern is required")
	}
	if !scanner.HasTag(fallback, "index") {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "generation.fallback_pattern",
			"fallback pattern must contain {index} so every unnamed page gets a distinct path")
	}
	if strings.Contains(fallback, "/") {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "generation.fallback_pattern",
			"fallback pattern names a file and cannot contain /")
	}

	if filepath.IsAbs(config.Generation.Folder) {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "generation.folder", "folder must be relative to the project root")
	}

	if config.Store.Enabled {
		if strings.TrimSpace(config.Project.ID) == "" {
			return NewConfigErrorWithField(ConfigValidationFailed, "", "project.id", "project id is required when the store is enabled")
		}
		if strings.TrimSpace(config.Store.Path) == "" {
			return NewConfigErrorWithField(ConfigValidationFailed, "", "store.path", "store path is required when the store is enabled")
		}
	}

	for _, pattern := range config.Project.IgnorePatterns {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return NewConfigErrorWithField(ConfigValidationFailed, "", "project.ignore_patterns",
				"invalid glob pattern "+pattern)
		}
	}

	for _, ext := range config.Project.BinaryExtensions {
		if !strings.HasPrefix(ext, ".") {
			return NewConfigErrorWithField(ConfigValidationFailed, "", "project.binary_extensions",
				"extension "+ext+" must start with a dot")
		}
	}

	return nil
}
