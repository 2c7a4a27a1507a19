package cli

import (
	"github.com/spf13/cobra"

	"github.com/tacogips/pagegen/internal/config"
	"github.com/tacogips/pagegen/internal/debug"
)

// Common flag names and descriptions
const (
	// Flag names
	FlagTemplate    = "template"
	FlagRows        = "rows"
	FlagPattern     = "pattern"
	FlagFolder      = "folder"
	FlagOutput      = "output"
	FlagOverwrite   = "overwrite"
	FlagStore       = "store"
	FlagStorePath   = "store-path"
	FlagProject     = "project"
	FlagConfig      = "config"
	FlagDryRun      = "dry-run"
	FlagInteractive = "interactive"
	FlagNoColor     = "no-color"
	FlagQuiet       = "quiet"
	FlagDebug       = "debug"

	// Flag descriptions
	DescTemplate    = "Template file with {tag} placeholders"
	DescRows        = "Variation rows file (.csv, .tsv, .json, .yaml, .toml); repeatable"
	DescPattern     = "Output file name pattern, e.g. \"{slug}.html\""
	DescFolder      = "Folder generated pages are placed in"
	DescOutput      = "Output directory"
	DescOverwrite   = "Overwrite existing files"
	DescStore       = "Save pages to the local page store"
	DescStorePath   = "Path to the page store database"
	DescProject     = "Project ID in the page store"
	DescConfig      = "Path to config file (default .pagegen/config.yaml)"
	DescDryRun      = "Show actions without execution"
	DescInteractive = "Prompt for missing settings and before overwriting files"
	DescNoColor     = "Disable colored output"
	DescQuiet       = "Suppress output"
	DescDebug       = "Enable debug logging"
)

// loadConfig loads the configuration named by --config, or the default
// configuration file if it exists, and applies its output settings.
func loadConfig(cmd *cobra.Command, path string) (*config.Config, error) {
	loader := config.NewLoader()

	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = loader.Load(path)
	} else {
		cfg, err = loader.LoadOrDefault(config.DefaultConfigPath())
	}
	if err != nil {
		return nil, err
	}

	if err := loader.Validate(cfg); err != nil {
		return nil, err
	}

	applyOutputConfig(cmd, cfg.Output)
	debug.DebugValue("[cli] Config", cfg)
	return cfg, nil
}

// applyOutputConfig sets the global output flags from out unless they were
// given on the command line, then reinstalls the logger.
func applyOutputConfig(cmd *cobra.Command, out config.OutputConfig) {
	globalNoColor = boolFlag(cmd, FlagNoColor, globalNoColor, out.NoColor)
	globalQuiet = boolFlag(cmd, FlagQuiet, globalQuiet, out.Quiet)
	globalDebug = boolFlag(cmd, FlagDebug, globalDebug, out.Debug)
	debug.SetupWriter(stderr, globalDebug, globalNoColor)
}

// stringFlag returns the flag value when it was set on the command line,
// otherwise fallback.
func stringFlag(cmd *cobra.Command, name, value, fallback string) string {
	if flagChanged(cmd, name) {
		return value
	}
	return fallback
}

// boolFlag returns the flag value when it was set on the command line,
// otherwise fallback.
func boolFlag(cmd *cobra.Command, name string, value, fallback bool) bool {
	if flagChanged(cmd, name) {
		return value
	}
	return fallback
}

// flagChanged reports whether name, local or inherited, was set on the command line.
func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flag(name)
	return f != nil && f.Changed
}
