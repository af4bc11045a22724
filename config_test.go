// FILE: lixenwraith/slogger/config_test.go
package slogger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, "none", cfg.Level)
	assert.Equal(t, "log", cfg.FilePath)
	assert.Equal(t, "log", cfg.Extension)
	assert.Equal(t, DefaultSeparator, cfg.Separator)
	assert.False(t, cfg.Rotation)
	assert.False(t, cfg.EnableConsole)
	assert.Equal(t, "stdout", cfg.ConsoleTarget)
	assert.True(t, cfg.InternalErrors)
	assert.Equal(t, "raw", cfg.Sanitize)
}

func TestConfigClone(t *testing.T) {
	cfg1 := DefaultConfig()
	cfg1.Level = "debug"
	cfg1.FilePath = "/custom/path"

	cfg2 := cfg1.Clone()
	assert.Equal(t, cfg1.FilePath, cfg2.FilePath)

	cfg1.Level = "error"
	assert.Equal(t, "debug", cfg2.Level)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantError string
	}{
		{
			name:   "valid config",
			modify: func(c *Config) {},
		},
		{
			name:      "invalid level",
			modify:    func(c *Config) { c.Level = "verbose" },
			wantError: "invalid level string",
		},
		{
			name:      "empty file path",
			modify:    func(c *Config) { c.FilePath = "  " },
			wantError: "file_path cannot be empty",
		},
		{
			name:      "extension with dot",
			modify:    func(c *Config) { c.Extension = ".log" },
			wantError: "extension should not start with dot",
		},
		{
			name:      "invalid console target",
			modify:    func(c *Config) { c.ConsoleTarget = "invalid" },
			wantError: "invalid console_target",
		},
		{
			name:      "invalid sanitize policy",
			modify:    func(c *Config) { c.Sanitize = "json" },
			wantError: "invalid sanitize policy",
		},
		{
			name:   "empty extension selects default",
			modify: func(c *Config) { c.Extension = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()

			if tt.wantError == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
			}
		})
	}
}

func TestNewConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slogger.toml")
	content := `
[slogger]
  level = "warning"
  file_path = "/var/log/app/server"
  extension = "txt"
  rotation = true
  enable_console = true
  console_target = "stderr"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewConfigFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "warning", cfg.Level)
	assert.Equal(t, "/var/log/app/server", cfg.FilePath)
	assert.Equal(t, "txt", cfg.Extension)
	assert.True(t, cfg.Rotation)
	assert.True(t, cfg.EnableConsole)
	assert.Equal(t, "stderr", cfg.ConsoleTarget)
	// Keys absent from the file keep their defaults
	assert.Equal(t, DefaultSeparator, cfg.Separator)
	assert.True(t, cfg.InternalErrors)
}

func TestNewConfigFromFileMissing(t *testing.T) {
	cfg, err := NewConfigFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestNewConfigFromFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slogger.toml")
	require.NoError(t, os.WriteFile(path, []byte("[slogger]\n  console_target = \"printer\"\n"), 0644))

	_, err := NewConfigFromFile(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid console_target")
}

func TestNewConfigFromDefaults(t *testing.T) {
	cfg, err := NewConfigFromDefaults(map[string]any{
		"level":     "error",
		"file_path": "/tmp/app",
		"rotation":  true,
	})
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Level)
	assert.Equal(t, "/tmp/app", cfg.FilePath)
	assert.True(t, cfg.Rotation)

	_, err = NewConfigFromDefaults(map[string]any{"unknown": 1})
	assert.ErrorContains(t, err, "unknown config key")

	_, err = NewConfigFromDefaults(map[string]any{"rotation": "yes"})
	assert.ErrorContains(t, err, "expected bool")

	_, err = NewConfigFromDefaults(map[string]any{"level": "loud"})
	assert.Error(t, err)
}
