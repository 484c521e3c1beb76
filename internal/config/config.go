package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/folio/internal/catalog"
	"github.com/five82/folio/internal/logger"
)

// Config captures the runtime settings folio reads from its config file.
type Config struct {
	FetchAllLatency time.Duration
	FetchOneLatency time.Duration
	RefreshInterval time.Duration
	LogPath         string
	LogLevel        string
	LogFormat       string
}

const (
	defaultConfigPath = "~/.config/folio/config.toml"
	defaultLogPath    = "~/.local/share/folio/folio.log"
	defaultLogLevel   = "info"
	defaultLogFormat  = logger.FormatText
)

// Default returns the settings used when no config file exists.
func Default() Config {
	store := catalog.DefaultOptions()
	return Config{
		FetchAllLatency: store.FetchAllLatency,
		FetchOneLatency: store.FetchOneLatency,
		LogPath:         mustExpand(defaultLogPath),
		LogLevel:        defaultLogLevel,
		LogFormat:       defaultLogFormat,
	}
}

// Load locates and parses the folio config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		FetchAllLatency string `toml:"fetch_all_latency"`
		FetchOneLatency string `toml:"fetch_one_latency"`
		RefreshInterval string `toml:"refresh_interval"`
		LogPath         string `toml:"log_path"`
		LogLevel        string `toml:"log_level"`
		LogFormat       string `toml:"log_format"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if cfg.FetchAllLatency, err = parseDuration("fetch_all_latency", raw.FetchAllLatency, cfg.FetchAllLatency); err != nil {
		return Config{}, err
	}
	if cfg.FetchOneLatency, err = parseDuration("fetch_one_latency", raw.FetchOneLatency, cfg.FetchOneLatency); err != nil {
		return Config{}, err
	}
	if cfg.RefreshInterval, err = parseDuration("refresh_interval", raw.RefreshInterval, cfg.RefreshInterval); err != nil {
		return Config{}, err
	}

	if logPath := strings.TrimSpace(raw.LogPath); logPath != "" {
		cfg.LogPath = mustExpand(logPath)
	}
	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
	if format := strings.TrimSpace(raw.LogFormat); format != "" {
		if !logger.ValidFormat(format) {
			return Config{}, fmt.Errorf("parse config: log_format %q: want %q or %q", format, logger.FormatText, logger.FormatJSON)
		}
		cfg.LogFormat = strings.ToLower(format)
	}

	return cfg, nil
}

// StoreOptions converts the latency settings for catalog.NewMemoryStore.
func (c Config) StoreOptions() catalog.Options {
	return catalog.Options{
		FetchAllLatency: c.FetchAllLatency,
		FetchOneLatency: c.FetchOneLatency,
	}
}

// parseDuration reads a non-negative duration, keeping fallback when value is blank.
func parseDuration(key, value string, fallback time.Duration) (time.Duration, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, fmt.Errorf("parse config: %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("parse config: %s must not be negative", key)
	}
	return d, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath trims path, expands a leading ~ and returns it absolute.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
