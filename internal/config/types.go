package config

// Config represents the pagegen configuration.
type Config struct {
	// Generation configures page naming.
	Generation GenerationConfig `json:"generation" yaml:"generation" toml:"generation"`
	// Project configures how existing project directories are read.
	Project ProjectConfig `json:"project" yaml:"project" toml:"project"`
	// Store configures the local page database.
	Store StoreConfig `json:"store" yaml:"store" toml:"store"`
	// Output configures terminal output. Command-line flags take precedence.
	Output OutputConfig `json:"output" yaml:"output" toml:"output"`
}

// GenerationConfig represents page generation settings.
type GenerationConfig struct {
	// Pattern is the default output pattern, e.g. "{slug}.html".
	Pattern string `json:"pattern" yaml:"pattern" toml:"pattern"`
	// Folder is the default folder generated pages are placed in.
	Folder string `json:"folder" yaml:"folder" toml:"folder"`
	// FallbackPattern names pages whose pattern resolves to nothing.
	// Must contain {index}.
	FallbackPattern string `json:"fallback_pattern" yaml:"fallback_pattern" toml:"fallback_pattern"`
	// OutputDir is the default directory pages are written to.
	OutputDir string `json:"output_dir" yaml:"output_dir" toml:"output_dir"`
	// Overwrite replaces existing files on write.
	Overwrite bool `json:"overwrite" yaml:"overwrite" toml:"overwrite"`
}

// ProjectConfig represents project directory settings.
type ProjectConfig struct {
	// ID identifies the project in the store.
	ID string `json:"id" yaml:"id" toml:"id"`
	// IgnorePatterns are glob patterns of files left out of the project.
	IgnorePatterns []string `json:"ignore_patterns" yaml:"ignore_patterns" toml:"ignore_patterns"`
	// BinaryExtensions are file extensions left out of the project.
	BinaryExtensions []string `json:"binary_extensions" yaml:"binary_extensions" toml:"binary_extensions"`
}

// StoreConfig represents the SQLite store settings.
type StoreConfig struct {
	// Enabled saves generated pages to the store.
	Enabled bool `json:"enabled" yaml:"enabled" toml:"enabled"`
	// Path is the database file path.
	Path string `json:"path" yaml:"path" toml:"path"`
}

// OutputConfig represents terminal output settings. Each field mirrors the
// global flag of the same name and is off by default.
type OutputConfig struct {
	// NoColor disables styled output.
	NoColor bool `json:"no_color" yaml:"no_color" toml:"no_color"`
	// Debug enables debug logging on stderr.
	Debug bool `json:"debug" yaml:"debug" toml:"debug"`
	// Quiet suppresses non-error output.
	Quiet bool `json:"quiet" yaml:"quiet" toml:"quiet"`
}
