package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestConfigLoadSave(t *testing.T) {
	tempDir := t.TempDir()

	// Override the home directory environment variable for testing
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir) // For Windows compatibility in tests

	// 1. Test Load with no existing file
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error when loading missing config, got: %v", err)
	}
	if cfg == nil {
		t.Fatalf("expected empty config to be returned, got nil")
	}

	// 2. Modify and Save the config
	cfg.SavedSources = []string{"courses.html", "https://wd10.myworkday.com/ubc"}
	cfg.Timezone = "America/Vancouver"
	cfg.AccentColor = "39"
	cfg.GridStartHour = 7
	cfg.GridEndHour = 22
	cfg.TermMonths = map[string][]int{"first": {8, 9}, "second": {12, 1}}
	cfg.DefaultTerm = "first"

	if err := Save(cfg); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	// Verify the file was actually created
	configPath := filepath.Join(tempDir, ".wdsched.json")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Errorf("expected config file to be created at %s", configPath)
	}

	// 3. Test Load with existing file
	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load existing config: %v", err)
	}

	if !reflect.DeepEqual(cfg, loadedCfg) {
		t.Errorf("loaded config does not match saved config.\nGot: %+v\nExpected: %+v", loadedCfg, cfg)
	}
}

func TestConfigParseError(t *testing.T) {
	tempDir := t.TempDir()

	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	// Write invalid JSON to the config file
	configPath := filepath.Join(tempDir, ".wdsched.json")
	if err := os.WriteFile(configPath, []byte("invalid json { content"), 0644); err != nil {
		t.Fatalf("failed to write invalid json: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Errorf("expected error when loading invalid json, got nil")
	}
}

func TestEffectiveTimezone(t *testing.T) {
	var nilCfg *AppConfig
	if got := nilCfg.EffectiveTimezone(); got != DefaultTimezone {
		t.Errorf("nil config timezone = %q, want default", got)
	}

	cfg := &AppConfig{}
	if got := cfg.EffectiveTimezone(); got != DefaultTimezone {
		t.Errorf("empty config timezone = %q, want default", got)
	}

	cfg.Timezone = "America/Toronto"
	if got := cfg.EffectiveTimezone(); got != "America/Toronto" {
		t.Errorf("timezone = %q, want America/Toronto", got)
	}
}
