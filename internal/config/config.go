// Package config loads the cbamatrix configuration from config.toml.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the configuration file looked up next to the executable.
const FileName = "config.toml"

// AppConfig is the application configuration.
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`
	Watch  WatchConfig  `toml:"watch"`
}

// ServerConfig configures the HTTP form server.
type ServerConfig struct {
	Port        int   `toml:"port"`
	DevMode     bool  `toml:"dev_mode"`
	MaxUploadMB int64 `toml:"max_upload_mb"`
}

// LogConfig configures the root logger.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// WatchConfig configures the template directory watcher.
type WatchConfig struct {
	DebounceMS int      `toml:"debounce_ms"`
	OutputDir  string   `toml:"output_dir"`
	Include    []string `toml:"include"`
	Exclude    []string `toml:"exclude"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:        8501,
			DevMode:     false,
			MaxUploadMB: 20,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Watch: WatchConfig{
			DebounceMS: 500,
			Include:    []string{"*.xlsx", "*.xlsm"},
			Exclude:    []string{"~$*", "TEG CBA Matrix-*"},
		},
	}
}

// Load reads path over the defaults. An empty path means config.toml next to
// the executable; a missing default file is not an error.
func Load(path string) (*AppConfig, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, err
	}

	if v := os.Getenv("CBAMATRIX_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("CBAMATRIX_PORT: %w", err)
		}
		cfg.Server.Port = port
	}

	return cfg, nil
}

// Save writes cfg to path as TOML.
func Save(cfg *AppConfig, path string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func defaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return FileName
	}
	return filepath.Join(filepath.Dir(exe), FileName)
}

// SlogLevel maps the configured level name to a slog level.
func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the root logger writing to w.
func (c LogConfig) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if strings.EqualFold(c.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
