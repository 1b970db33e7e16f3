package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	SavedSources   []string         `json:"saved_sources,omitempty"` // page files or URLs
	Timezone       string           `json:"timezone,omitempty"`
	AccentColor    string           `json:"accent_color,omitempty"`
	GridStartHour  int              `json:"grid_start_hour,omitempty"`
	GridEndHour    int              `json:"grid_end_hour,omitempty"`
	TermMonths     map[string][]int `json:"term_months,omitempty"`
	DefaultTerm    string           `json:"default_term,omitempty"`
	SortKey        string           `json:"sort_key,omitempty"`
	SortDescending bool             `json:"sort_descending,omitempty"`
}

// DefaultTimezone is the campus timezone used when none is configured
const DefaultTimezone = "America/Vancouver"

// getConfigPath returns the absolute path to ~/.wdsched.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".wdsched.json"), nil
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, just return an empty default configuration
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// EffectiveTimezone returns the configured campus timezone or the default
func (c *AppConfig) EffectiveTimezone() string {
	if c != nil && c.Timezone != "" {
		return c.Timezone
	}
	return DefaultTimezone
}
