package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvFiles returns the env files consulted for API keys, highest
// precedence first.
func EnvFiles() []string {
	return []string{".env.local", ".env", filepath.Join(Dir(), "env")}
}

// LoadEnv reads KEY=VALUE files in order and sets variables that are not
// already present, so earlier files and the real environment win. Missing
// files are skipped. It returns the files that were read.
func LoadEnv(paths ...string) ([]string, error) {
	var loaded []string
	for _, path := range paths {
		ok, err := loadEnvFile(path)
		if err != nil {
			return loaded, err
		}
		if ok {
			loaded = append(loaded, path)
		}
	}
	return loaded, nil
}

func loadEnvFile(path string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("opening env file %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // read-only

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := parseEnvLine(line)
		if !ok {
			continue
		}
		if _, set := os.LookupEnv(key); !set {
			_ = os.Setenv(key, value)
		}
	}
	if err := scanner.Err(); err != nil {
		return true, fmt.Errorf("reading env file %s: %w", path, err)
	}
	return true, nil
}

// parseEnvLine extracts KEY=VALUE, dropping an export prefix and one pair
// of matching quotes around the value.
func parseEnvLine(line string) (key, value string, ok bool) {
	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(key), "export "))
	if key == "" {
		return "", "", false
	}
	value = strings.TrimSpace(value)
	if n := len(value); n >= 2 && (value[0] == '"' || value[0] == '\'') && value[n-1] == value[0] {
		value = value[1 : n-1]
	}
	return key, value, true
}
