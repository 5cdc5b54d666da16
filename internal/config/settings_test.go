package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_Missing(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(&Settings{}, s); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := &Settings{DataDir: "/data", Model: "claude-haiku", LogLevel: "debug", CacheSize: 8}

	if err := Save(path, want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":  "data_dir: [",
		"bad level": "log_level: loud\n",
		"negative":  "cache_size: -1\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSettings_Set(t *testing.T) {
	var s Settings
	for _, kv := range [][2]string{{"model", "gemini-pro"}, {"cache_size", "16"}, {"log_level", "info"}, {"data_dir", "/d"}} {
		if err := s.Set(kv[0], kv[1]); err != nil {
			t.Fatalf("Set(%s) error = %v", kv[0], err)
		}
	}
	want := Settings{DataDir: "/d", Model: "gemini-pro", LogLevel: "info", CacheSize: 16}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("Set mismatch (-want +got):\n%s", diff)
	}

	rejected := []struct{ key, value string }{
		{"cache_size", "many"},
		{"cache_size", "-1"},
		{"colour", "red"},
		{"log_level", "shout"},
	}
	for _, kv := range rejected {
		if err := s.Set(kv.key, kv.value); err == nil {
			t.Errorf("Set(%s, %q) succeeded, want error", kv.key, kv.value)
		}
		if diff := cmp.Diff(want, s); diff != "" {
			t.Errorf("failed Set(%s, %q) changed settings (-want +got):\n%s", kv.key, kv.value, diff)
		}
	}

	if err := s.Set("cache_size", ""); err != nil || s.CacheSize != 0 {
		t.Errorf("reset cache_size: err=%v size=%d", err, s.CacheSize)
	}
	if err := s.Set("log_level", "debug"); err != nil || s.LogLevel != "debug" {
		t.Errorf("set after failures: err=%v level=%q", err, s.LogLevel)
	}
}

func TestSettings_Resolved(t *testing.T) {
	t.Setenv("FOLIO_CONFIG_HOME", "/cfg")
	got := Settings{Model: "x"}.Resolved()
	want := Settings{DataDir: filepath.Join("/cfg", "data"), Model: "x", LogLevel: "error", CacheSize: DefaultCacheSize}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolved() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warning ", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLogLevel(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseLogLevel("trace"); err == nil {
		t.Error("expected error for trace")
	}
}
