// ABOUTME: HoldON configuration: data directory, language, default user.
// ABOUTME: JSON file at the XDG config path with ~ expansion for paths.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/holdonapp/holdon/internal/store"
)

// Config stores tool configuration.
type Config struct {
	// DataDir is the root directory for the SQLite store. Supports ~
	// expansion. Defaults to the standard XDG data directory.
	DataDir string `json:"data_dir,omitempty"`

	// Language selects localized exercise names: "en" (default) or "sl".
	Language string `json:"language,omitempty"`

	// DefaultUserID is the account CLI commands act for when --user is not
	// given. Every operation still takes the id explicitly.
	DefaultUserID int64 `json:"default_user_id,omitempty"`
}

// GetDataDir returns the configured data directory with ~ expanded.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return store.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetLanguage returns the configured language, defaulting to "en".
func (c *Config) GetLanguage() string {
	if c.Language == "" {
		return "en"
	}
	return c.Language
}

// GetDefaultUserID returns the configured default account, defaulting to 1.
func (c *Config) GetDefaultUserID() int64 {
	if c.DefaultUserID == 0 {
		return 1
	}
	return c.DefaultUserID
}

// DBPath returns the SQLite file path under the configured data directory.
func (c *Config) DBPath() string {
	return filepath.Join(c.GetDataDir(), "holdon.db")
}

// OpenStore opens the persistence gateway at the configured path.
func (c *Config) OpenStore() (*store.DB, error) {
	return store.Open(c.DBPath())
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "holdon", "config.json")
}

// Load reads config from disk. A missing file yields the zero config.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
