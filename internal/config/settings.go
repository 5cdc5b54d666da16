package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"
)

// DefaultCacheSize is the compiled-template cache size when unset.
const DefaultCacheSize = 64

// Settings is the content of config.yaml. Zero fields take defaults.
type Settings struct {
	DataDir   string `yaml:"data_dir,omitempty"   json:"data_dir"`
	Model     string `yaml:"model,omitempty"      json:"model"`
	LogLevel  string `yaml:"log_level,omitempty"  json:"log_level"`
	CacheSize int    `yaml:"cache_size,omitempty" json:"cache_size"`
}

// Keys lists the settable keys in display order.
func Keys() []string {
	return []string{"data_dir", "model", "log_level", "cache_size"}
}

// Load reads settings from path. A missing file yields empty settings.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &s, nil
}

// Save writes settings to path atomically, creating the directory.
func Save(path string, s *Settings) error {
	if err := s.validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// Resolved returns a copy with defaults filled in.
func (s Settings) Resolved() Settings {
	if s.DataDir == "" {
		s.DataDir = DefaultDataDir()
	}
	if s.LogLevel == "" {
		s.LogLevel = "error"
	}
	if s.CacheSize == 0 {
		s.CacheSize = DefaultCacheSize
	}
	return s
}

// Set assigns a setting by key. An empty value resets it to the default.
// On error s is left unchanged.
func (s *Settings) Set(key, value string) error {
	next := *s
	switch key {
	case "data_dir":
		next.DataDir = value
	case "model":
		next.Model = value
	case "log_level":
		next.LogLevel = value
	case "cache_size":
		if value == "" {
			next.CacheSize = 0
			break
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("cache_size must be a number: %q", value)
		}
		next.CacheSize = n
	default:
		return fmt.Errorf("unknown setting %q (known: %s)", key, strings.Join(Keys(), ", "))
	}
	if err := next.validate(); err != nil {
		return err
	}
	*s = next
	return nil
}

// Map returns the settings keyed by name, for display.
func (s Settings) Map() map[string]string {
	return map[string]string{
		"data_dir":   s.DataDir,
		"model":      s.Model,
		"log_level":  s.LogLevel,
		"cache_size": strconv.Itoa(s.CacheSize),
	}
}

func (s *Settings) validate() error {
	if s.LogLevel != "" {
		if _, err := ParseLogLevel(s.LogLevel); err != nil {
			return err
		}
	}
	if s.CacheSize < 0 {
		return fmt.Errorf("cache_size must not be negative: %d", s.CacheSize)
	}
	return nil
}

var logLevels = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// ParseLogLevel maps a level name to a slog.Level.
func ParseLogLevel(name string) (slog.Level, error) {
	if lvl, ok := logLevels[strings.ToLower(strings.TrimSpace(name))]; ok {
		return lvl, nil
	}
	names := make([]string, 0, len(logLevels))
	for n := range logLevels {
		names = append(names, n)
	}
	sort.Strings(names)
	return 0, fmt.Errorf("unknown log level %q (want one of %s)", name, strings.Join(names, ", "))
}
