package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvLogLevel = "ROTXOR_LOG_LEVEL"
	EnvFormat   = "ROTXOR_FORMAT"
)

// Config represents the configuration in the YAML file.
type Config struct {
	LogLevel string `yaml:"log_level,omitempty"`
	Format   string `yaml:"format,omitempty"`
}

func Default() *Config {
	return &Config{
		LogLevel: "warn",
		Format:   "decimal",
	}
}

// LoadConfig reads a YAML configuration file over the defaults. An empty
// path yields the defaults.
func LoadConfig(path string) (*Config, error) {
	config := Default()
	if path == "" {
		return config, nil
	}
	path = ExpandPath(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to process config file '%s': %w", path, err)
	}

	return config, nil
}

// ApplyEnv loads envFile into the process environment, if given, and then
// lets ROTXOR_* variables override the configuration.
func ApplyEnv(config *Config, envFile string) error {
	if envFile != "" {
		envFile = ExpandPath(envFile)
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("failed to load env file '%s': %w", envFile, err)
		}
	}

	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		config.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvFormat); ok && v != "" {
		config.Format = v
	}
	return nil
}

func (c *Config) Validate() error {
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.Format {
	case "decimal", "hex":
	default:
		return fmt.Errorf("unknown format '%s' (expected decimal or hex)", c.Format)
	}
	return nil
}

// Level returns the configured log level, falling back to warn.
func (c *Config) Level() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level '%s'", s)
}

// ExpandPath replaces a leading '~' with the user's home directory and
// $NAME references with environment variables.
func ExpandPath(path string) string {
	path = os.ExpandEnv(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return path
}
