package config

import (
	"path/filepath"
	"testing"
)

func TestDir(t *testing.T) {
	tests := []struct {
		name     string
		override string
		xdg      string
		want     string
	}{
		{name: "explicit override", override: "/custom/path", xdg: "/xdg", want: "/custom/path"},
		{name: "xdg", xdg: "/xdg/config", want: filepath.Join("/xdg/config", "folio")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("FOLIO_CONFIG_HOME", tt.override)
			t.Setenv("XDG_CONFIG_HOME", tt.xdg)
			if got := Dir(); got != tt.want {
				t.Errorf("Dir() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDir_Default(t *testing.T) {
	t.Setenv("FOLIO_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("APPDATA", "")

	dir := Dir()
	if dir != "" && filepath.Base(dir) != "folio" {
		t.Errorf("Dir() = %q, want path ending in 'folio'", dir)
	}
}

func TestPaths(t *testing.T) {
	t.Setenv("FOLIO_CONFIG_HOME", "/cfg")
	if got := Path(); got != filepath.Join("/cfg", "config.yaml") {
		t.Errorf("Path() = %q", got)
	}
	if got := DefaultDataDir(); got != filepath.Join("/cfg", "data") {
		t.Errorf("DefaultDataDir() = %q", got)
	}
}
