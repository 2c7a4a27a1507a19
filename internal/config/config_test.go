package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lithammer/dedent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "page-{index}.html", cfg.Generation.FallbackPattern)
	assert.Equal(t, "default", cfg.Project.ID)
	assert.Equal(t, filepath.Join(".pagegen", "pages.db"), cfg.Store.Path)
	assert.False(t, cfg.Store.Enabled)
	assert.NotEmpty(t, cfg.Project.IgnorePatterns)
	assert.Contains(t, cfg.Project.BinaryExtensions, ".png")
	assert.NoError(t, Validate(cfg))
}

func TestDefaultConfigPath(t *testing.T) {
	assert.Equal(t, filepath.Join(".pagegen", "config.yaml"), DefaultConfigPath())
}

func TestLoadFormats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "json",
			file: "config.json",
			content: `{
				"generation": {"pattern": "{slug}.html", "folder": "servicos"},
				"project": {"id": "site"},
				"store": {"enabled": true},
				"output": {"no_color": true, "quiet": true}
			}`,
		},
		{
			name: "yaml",
			file: "config.yaml",
			content: dedent.Dedent(`
				generation:
				  pattern: "{slug}.html"
				  folder: servicos
				project:
				  id: site
				store:
				  enabled: true
				output:
				  no_color: true
				  quiet: true
			`),
		},
		{
			name: "toml",
			file: "config.toml",
			content: dedent.Dedent(`
				[generation]
				pattern = "{slug}.html"
				folder = "servicos"

				[project]
				id = "site"

				[store]
				enabled = true

				[output]
				no_color = true
				quiet = true
			`),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewLoader().Load(writeConfig(t, tt.file, tt.content))
			require.NoError(t, err)

			assert.Equal(t, "{slug}.html", cfg.Generation.Pattern)
			assert.Equal(t, "servicos", cfg.Generation.Folder)
			assert.Equal(t, "site", cfg.Project.ID)
			assert.True(t, cfg.Store.Enabled)
			assert.Equal(t, OutputConfig{NoColor: true, Quiet: true}, cfg.Output)

			// merged from defaults
			assert.Equal(t, DefaultFallbackPattern, cfg.Generation.FallbackPattern)
			assert.Equal(t, filepath.Join(".pagegen", "pages.db"), cfg.Store.Path)
			assert.Equal(t, DefaultIgnorePatterns(), cfg.Project.IgnorePatterns)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		wantType ConfigErrorType
	}{
		{name: "invalid json", file: "c.json", content: "{", wantType: ConfigInvalid},
		{name: "unknown json field", file: "c.json", content: `{"cache": {}}`, wantType: ConfigInvalid},
		{name: "invalid yaml", file: "c.yaml", content: "generation: [", wantType: ConfigInvalid},
		{name: "unknown yaml field", file: "c.yml", content: "github:\n  token: x\n", wantType: ConfigInvalid},
		{name: "unknown output field", file: "c.yaml", content: "output:\n  color: false\n", wantType: ConfigInvalid},
		{name: "invalid toml", file: "c.toml", content: "[generation", wantType: ConfigInvalid},
		{name: "unsupported extension", file: "c.ini", content: "", wantType: ConfigUnsupportedFormat},
		{name: "unsupported uppercase extension", file: "C.XML", content: "<c/>", wantType: ConfigUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader().Load(writeConfig(t, tt.file, tt.content))
			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr), "got %v", err)
			assert.Equal(t, tt.wantType, cfgErr.Type)
		})
	}
}

func TestLoadEmptyYAML(t *testing.T) {
	cfg, err := NewLoader().Load(writeConfig(t, "config.yaml", ""))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOrDefault(t *testing.T) {
	loader := NewLoader()

	cfg, err := loader.LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err = loader.LoadOrDefault(writeConfig(t, "bad.json", "{"))
	assert.Error(t, err)

	_, err = loader.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, ConfigNotFound, cfgErr.Type)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantField string
	}{
		{name: "defaults are valid", modify: func(*Config) {}},
		{
			name:      "fallback without index",
			modify:    func(c *Config) { c.Generation.FallbackPattern = "page.html" },
			wantField: "generation.fallback_pattern",
		},
		{
			name:      "blank fallback",
			modify:    func(c *Config) { c.Generation.FallbackPattern = " " },
			wantField: "generation.fallback_pattern",
		},
		{
			name:      "fallback with folder",
			modify:    func(c *Config) { c.Generation.FallbackPattern = "a/page-{index}.html" },
			wantField: "generation.fallback_pattern",
		},
		{
			name:   "custom fallback",
			modify: func(c *Config) { c.Generation.FallbackPattern = "{city}-{index}.htm" },
		},
		{
			name:      "absolute folder",
			modify:    func(c *Config) { c.Generation.Folder = "/srv" },
			wantField: "generation.folder",
		},
		{
			name: "store without project id",
			modify: func(c *Config) {
				c.Store.Enabled = true
				c.Project.ID = ""
			},
			wantField: "project.id",
		},
		{
			name:   "project id not needed without store",
			modify: func(c *Config) { c.Project.ID = "" },
		},
		{
			name: "store without path",
			modify: func(c *Config) {
				c.Store.Enabled = true
				c.Store.Path = ""
			},
			wantField: "store.path",
		},
		{
			name:      "bad glob",
			modify:    func(c *Config) { c.Project.IgnorePatterns = []string{"[a-"} },
			wantField: "project.ignore_patterns",
		},
		{
			name:      "extension without dot",
			modify:    func(c *Config) { c.Project.BinaryExtensions = []string{"png"} },
			wantField: "project.binary_extensions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := Validate(cfg)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, ConfigValidationFailed, cfgErr.Type)
			assert.Equal(t, tt.wantField, cfgErr.Field)
		})
	}
}

func TestValidateNil(t *testing.T) {
	assert.Error(t, Validate(nil))
}

func TestConfigErrorMessage(t *testing.T) {
	err := NewConfigErrorWithField(ConfigValidationFailed, "c.yaml", "project.id", "required")
	assert.Equal(t, "config c.yaml [project.id]: required", err.Error())

	inMemory := NewConfigErrorWithField(ConfigValidationFailed, "", "generation.folder", "must be relative")
	assert.Equal(t, "config [generation.folder]: must be relative", inMemory.Error())

	cause := errors.New("boom")
	wrapped := NewConfigErrorWithCause(ConfigInvalid, "c.yaml", "bad", cause)
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, "config c.yaml: bad: boom", wrapped.Error())

	unsupported := NewConfigError(ConfigUnsupportedFormat, "c.ini", "no decoder")
	assert.Equal(t, "config c.ini: no decoder", unsupported.Error())
}

func TestConfigErrorTypeString(t *testing.T) {
	tests := []struct {
		typ  ConfigErrorType
		want string
	}{
		{ConfigNotFound, "not found"},
		{ConfigInvalid, "invalid"},
		{ConfigUnsupportedFormat, "unsupported format"},
		{ConfigValidationFailed, "validation failed"},
		{ConfigErrorType(99), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.String())
		})
	}
}
