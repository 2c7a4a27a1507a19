package config

import (
	"path/filepath"

	"github.com/tacogips/pagegen/internal/project"
)

// DefaultFallbackPattern names pages whose output pattern resolves to nothing.
const DefaultFallbackPattern = "page-{index}.html"

// DefaultProjectID is the store project used when none is given.
const DefaultProjectID = "default"

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Generation: GenerationConfig{
			Pattern:         "",
			Folder:          "",
			FallbackPattern: DefaultFallbackPattern,
			OutputDir:       "dist",
			Overwrite:       false,
		},
		Project: ProjectConfig{
			ID:               DefaultProjectID,
			IgnorePatterns:   DefaultIgnorePatterns(),
			BinaryExtensions: DefaultBinaryExtensions(),
		},
		Store: StoreConfig{
			Enabled: false,
			Path:    filepath.Join(project.StateDir, "pages.db"),
		},
		Output: OutputConfig{
			NoColor: false,
			Debug:   false,
			Quiet:   false,
		},
	}
}

// DefaultIgnorePatterns returns the default ignore patterns.
func DefaultIgnorePatterns() []string {
	return []string{
		".DS_Store",
		"Thumbs.db",
		"*.swp",
		"*.swo",
		"*~",
	}
}

// DefaultBinaryExtensions returns the default binary file extensions.
func DefaultBinaryExtensions() []string {
	return []string{
		// Images
		".png", ".jpg", ".jpeg", ".gif", ".bmp", ".ico", ".webp",
		// Documents
		".pdf",
		// Archives
		".zip", ".tar", ".gz",
		// Fonts
		".woff", ".woff2", ".ttf", ".eot", ".otf",
		// Media
		".mp3", ".mp4", ".mov", ".wav",
		// Databases
		".db", ".sqlite", ".sqlite3",
	}
}

// DefaultConfigPath returns the default configuration file path,
// relative to the working directory.
func DefaultConfigPath() string {
	return filepath.Join(project.StateDir, "config.yaml")
}
