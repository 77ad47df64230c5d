package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "rotxor.yaml")

	yamlContent := `
log_level: debug
format: hex
`
	require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0644))

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "hex", cfg.Format)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
}

func TestLoadConfigPartial(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "rotxor.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("log_level: error\n"), 0644))

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "decimal", cfg.Format)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("format: [unclosed\n"), 0644))
	_, err = LoadConfig(bad)
	assert.ErrorContains(t, err, "failed to process config file")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "info")
	t.Setenv(EnvFormat, "")

	cfg := Default()
	require.NoError(t, ApplyEnv(cfg, ""))
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "decimal", cfg.Format)
}

func TestApplyEnvFile(t *testing.T) {
	// Registered so the variable is restored after godotenv sets it.
	t.Setenv(EnvFormat, "")
	t.Setenv(EnvLogLevel, "")

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("ROTXOR_FORMAT=hex\n"), 0644))
	// godotenv does not override variables that are already set.
	require.NoError(t, os.Unsetenv(EnvFormat))

	cfg := Default()
	require.NoError(t, ApplyEnv(cfg, envFile))
	assert.Equal(t, "hex", cfg.Format)
	assert.Equal(t, "warn", cfg.LogLevel)

	err := ApplyEnv(cfg, filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "failed to load env file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"defaults", *Default(), ""},
		{"hex", Config{LogLevel: "DEBUG", Format: "hex"}, ""},
		{"bad format", Config{LogLevel: "warn", Format: "octal"}, "unknown format"},
		{"bad level", Config{LogLevel: "loud", Format: "decimal"}, "unknown log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestLevelFallback(t *testing.T) {
	cfg := Config{LogLevel: "loud"}
	assert.Equal(t, slog.LevelWarn, cfg.Level())
}

func TestExpandPath(t *testing.T) {
	t.Setenv("ROTXOR_TEST_DIR", "/tmp/rotxor")
	assert.Equal(t, "/tmp/rotxor/c.yaml", ExpandPath("$ROTXOR_TEST_DIR/c.yaml"))

	home, err := os.UserHomeDir()
	if err == nil {
		assert.Equal(t, filepath.Join(home, "c.yaml"), ExpandPath("~/c.yaml"))
	}
	assert.Equal(t, "plain.yaml", ExpandPath("plain.yaml"))
}
