package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/folio/internal/config"
	"github.com/gorewood/folio/internal/output"
)

func TestRootCommand(t *testing.T) {
	t.Run("help lists groups", func(t *testing.T) {
		stdout, _, err := execute(t, newTestApp(t), "--help")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertContains(t, stdout, "Document Commands:", "Rendering Commands:", "Template Commands:", "render", "serve")
	})

	t.Run("json without subcommand", func(t *testing.T) {
		stdout, _, err := execute(t, newTestApp(t), "--json")
		if got := output.GetExitCode(err); got != output.ExitUserError {
			t.Errorf("exit code = %d, want %d", got, output.ExitUserError)
		}
		assertContains(t, stdout, `"error"`, "no command specified")
	})
}

func TestIsJSONMode(t *testing.T) {
	cmd := newRootCmdInternal(newTestApp(t))
	sub, _, err := cmd.Find([]string{"list"})
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if isJSONMode(sub) {
		t.Error("isJSONMode() = true before flag set")
	}
	if err := cmd.PersistentFlags().Set("json", "true"); err != nil {
		t.Fatal(err)
	}
	if !isJSONMode(sub) {
		t.Error("isJSONMode() = false after flag set")
	}
}

func TestBuildVersion(t *testing.T) {
	oldVersion, oldCommit, oldDate := version, commit, date
	t.Cleanup(func() { version, commit, date = oldVersion, oldCommit, oldDate })

	version, commit, date = "1.2.0", "none", "unknown"
	if got := buildVersion(); got != "1.2.0" {
		t.Errorf("buildVersion() = %q", got)
	}
	version, commit, date = "1.2.0", "0123456789abcdef", "2026-03-04"
	if got := buildVersion(); got != "1.2.0 (0123456, 2026-03-04)" {
		t.Errorf("buildVersion() = %q", got)
	}
}

func TestSetup(t *testing.T) {
	home := t.TempDir()
	t.Setenv("FOLIO_CONFIG_HOME", home)
	t.Chdir(t.TempDir())
	t.Setenv("FOLIO_TEST_KEY", "")
	if err := os.Unsetenv("FOLIO_TEST_KEY"); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Unsetenv("FOLIO_TEST_KEY") })

	if err := os.WriteFile(filepath.Join(home, "env"), []byte("FOLIO_TEST_KEY=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := config.Save(config.Path(), &config.Settings{Model: "claude-haiku", LogLevel: "info", CacheSize: 8}); err != nil {
		t.Fatal(err)
	}

	a := &app{}
	var stderr bytes.Buffer
	cmd := newRootCmdInternal(a)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&stderr)
	dataDir := filepath.Join(t.TempDir(), "data")
	cmd.SetArgs([]string{"config", "--data-dir", dataDir, "--log-level", "debug"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.settings.DataDir != dataDir {
		t.Errorf("DataDir = %q, want flag value %q", a.settings.DataDir, dataDir)
	}
	if a.settings.LogLevel != "debug" || a.settings.Model != "claude-haiku" || a.settings.CacheSize != 8 {
		t.Errorf("settings = %+v", a.settings)
	}
	if got := os.Getenv("FOLIO_TEST_KEY"); got != "from-file" {
		t.Errorf("FOLIO_TEST_KEY = %q, want value from env file", got)
	}
	if !strings.Contains(stderr.String(), "loaded env files") {
		t.Errorf("debug log missing, stderr = %q", stderr.String())
	}
}

func TestSetup_BadLogLevel(t *testing.T) {
	t.Setenv("FOLIO_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cmd := newRootCmdInternal(&app{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"list", "--log-level", "loud"})
	err := cmd.Execute()
	if got := output.GetExitCode(err); got != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", got, output.ExitUserError)
	}
}
