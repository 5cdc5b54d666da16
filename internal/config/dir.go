// Package config locates and loads folio's user configuration.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "folio"

// Dir returns the folio configuration directory.
//
// Resolution:
//   - $FOLIO_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/folio if set (respects XDG on any platform)
//   - %AppData%/folio on Windows
//   - ~/.config/folio on macOS and Linux
func Dir() string {
	if dir := os.Getenv("FOLIO_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// Path returns the location of config.yaml.
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// DefaultDataDir is where documents and custom templates live unless
// data_dir is configured.
func DefaultDataDir() string {
	return filepath.Join(Dir(), "data")
}
