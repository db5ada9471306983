package platform

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFile is the notebook used when nothing else is configured.
	DefaultFile = "my_notes.txt"

	EnvFile     = "JOT_FILE"
	EnvConfig   = "JOT_CONFIG"
	EnvLogLevel = "JOT_LOG_LEVEL"
)

// Config holds the resolved settings of the jot CLI.
type Config struct {
	File     string
	Perm     os.FileMode
	LogLevel slog.Level
}

// fileSettings is the structure of the YAML config file.
type fileSettings struct {
	File     string `yaml:"file"`
	Perm     string `yaml:"perm,omitempty"` // octal, e.g. "0600"
	LogLevel string `yaml:"log_level,omitempty"`
}

// ConfigSources lists where LoadConfig looks for settings.
type ConfigSources struct {
	FileFlag   string // --file
	ConfigPath string // --config; empty means $JOT_CONFIG or the user config dir
	DotEnv     string // path of the .env file; empty means ".env"

	// Getenv defaults to os.Getenv.
	Getenv func(string) string
}

// LoadConfig resolves configuration with priority: CLI flag > env vars (.env included) > config file > default.
func LoadConfig(src ConfigSources) (*Config, error) {
	getenv := envLookup(src)

	cfg := &Config{
		File:     DefaultFile,
		LogLevel: slog.LevelInfo,
	}

	// Priority 3: config file
	configPath, explicit := resolveConfigPath(src.ConfigPath, getenv)
	if configPath != "" {
		settings, err := loadConfigFile(configPath)
		switch {
		case errors.Is(err, os.ErrNotExist) && !explicit:
			// Optional.
		case err != nil:
			return nil, err
		default:
			if err := settings.apply(cfg, filepath.Dir(configPath)); err != nil {
				return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
			}
		}
	}

	// Priority 2: environment
	if v := getenv(EnvFile); v != "" {
		cfg.File = expandPath(v)
	}
	if v := getenv(EnvLogLevel); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvLogLevel, err)
		}
	}

	// Priority 1: CLI flags
	if src.FileFlag != "" {
		cfg.File = expandPath(src.FileFlag)
	}

	return cfg, nil
}

// envLookup reads the process environment first and falls back to the .env file.
func envLookup(src ConfigSources) func(string) string {
	getenv := src.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	dotEnv := src.DotEnv
	if dotEnv == "" {
		dotEnv = ".env"
	}
	vars, err := godotenv.Read(dotEnv)
	if err != nil {
		vars = nil
	}

	return func(key string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return vars[key]
	}
}

func resolveConfigPath(flag string, getenv func(string) string) (path string, explicit bool) {
	if flag != "" {
		return expandPath(flag), true
	}
	if v := getenv(EnvConfig); v != "" {
		return expandPath(v), true
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(dir, "jot", "config.yaml"), false
}

func loadConfigFile(path string) (*fileSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s fileSettings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &s, nil
}

// apply copies the settings onto cfg. A relative notebook path is taken
// relative to the directory of the config file.
func (s *fileSettings) apply(cfg *Config, baseDir string) error {
	if s.File != "" {
		file := expandPath(s.File)
		if !filepath.IsAbs(file) {
			file = filepath.Join(baseDir, file)
		}
		cfg.File = file
	}

	if s.Perm != "" {
		perm, err := strconv.ParseUint(s.Perm, 8, 32)
		if err != nil {
			return fmt.Errorf("perm %q is not an octal mode", s.Perm)
		}
		cfg.Perm = os.FileMode(perm).Perm()
	}

	if s.LogLevel != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(s.LogLevel)); err != nil {
			return fmt.Errorf("log_level: %w", err)
		}
	}
	return nil
}

// expandPath expands a leading ~ to the user's home directory.
func expandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
