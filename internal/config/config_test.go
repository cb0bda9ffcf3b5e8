// ABOUTME: Tests for configuration loading, saving, and defaults.
// ABOUTME: XDG_CONFIG_HOME is redirected into a temp directory per test.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GetLanguage() != "en" {
		t.Errorf("default language = %q, want en", cfg.GetLanguage())
	}
	if cfg.GetDefaultUserID() != 1 {
		t.Errorf("default user = %d, want 1", cfg.GetDefaultUserID())
	}
	if cfg.GetDataDir() == "" {
		t.Error("expected a non-empty default data dir")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &Config{
		DataDir:       "/tmp/holdon-test",
		Language:      "sl",
		DefaultUserID: 7,
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.GetDataDir() != "/tmp/holdon-test" {
		t.Errorf("data dir = %q", got.GetDataDir())
	}
	if got.GetLanguage() != "sl" {
		t.Errorf("language = %q", got.GetLanguage())
	}
	if got.GetDefaultUserID() != 7 {
		t.Errorf("default user = %d", got.GetDefaultUserID())
	}
}

func TestLoadCorruptFileFails(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "holdon", "config.json")
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("{broken"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("expected an error for a corrupt config file")
	}
}

func TestDBPathUnderDataDir(t *testing.T) {
	cfg := &Config{DataDir: "/data/fitness"}
	if got := cfg.DBPath(); got != filepath.Join("/data/fitness", "holdon.db") {
		t.Errorf("DBPath = %q", got)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}

	if got := ExpandPath("~/fitness"); got != filepath.Join(home, "fitness") {
		t.Errorf("ExpandPath(~/fitness) = %q", got)
	}
	if got := ExpandPath("~"); got != home {
		t.Errorf("ExpandPath(~) = %q", got)
	}
	if got := ExpandPath("/absolute/path"); got != "/absolute/path" {
		t.Errorf("ExpandPath(/absolute/path) = %q", got)
	}
	if got := ExpandPath(""); got != "" {
		t.Errorf("ExpandPath(\"\") = %q", got)
	}
}
