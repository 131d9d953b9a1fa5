package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"

	"github.com/zhubert/guess/internal/errors"
)

// Score store backends
const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
)

// Config holds the application configuration
type Config struct {
	Theme                string `json:"theme,omitempty"`                 // UI theme name (e.g., "dark-purple", "nord")
	NotificationsEnabled bool   `json:"notifications_enabled,omitempty"` // Desktop notification on a win
	ScoresStore          string `json:"scores_store,omitempty"`          // "json" (default) or "sqlite"
	ScoresPath           string `json:"scores_path,omitempty"`           // Overrides the default leaderboard location
	LastPlayerName       string `json:"last_player_name,omitempty"`      // Name submitted for the last recorded score
	LastSeenVersion      string `json:"last_seen_version,omitempty"`     // Last version user has seen changelog for

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".guess"), nil
}

// Dir returns the directory holding the config file and the default
// leaderboard.
func Dir() (string, error) {
	return configDir()
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or creates a new one if it doesn't exist
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, errors.ConfigLoadFailed("~/.guess/config.json", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path. A missing file yields defaults that
// will be written to path on Save.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{filePath: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg.ensureInitialized()
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	// Must happen before Validate(), which only reads
	cfg.ensureInitialized()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ensureInitialized fills in defaults for fields left empty.
//
// Not thread-safe: only called from LoadFrom before the Config is shared.
func (c *Config) ensureInitialized() {
	if c.ScoresStore == "" {
		c.ScoresStore = StoreJSON
	}
}

// Validate checks that the config is internally consistent.
// This is a read-only operation - call ensureInitialized() first if needed.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch c.ScoresStore {
	case "", StoreJSON, StoreSQLite:
	default:
		return errors.ConfigInvalid("scores_store must be json or sqlite, got " + c.ScoresStore)
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.filePath == "" {
		path, err := configPath()
		if err != nil {
			return errors.ConfigSaveFailed("~/.guess/config.json", err)
		}
		c.filePath = path
	}

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// Path returns where Save writes
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

// GetScoresStore returns the configured store backend
func (c *Config) GetScoresStore() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.ScoresStore == "" {
		return StoreJSON
	}
	return c.ScoresStore
}

// SetScoresStore sets the store backend. Unknown names are rejected.
func (c *Config) SetScoresStore(kind string) error {
	switch kind {
	case StoreJSON, StoreSQLite:
	default:
		return errors.ConfigInvalid("scores_store must be json or sqlite, got " + kind)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ScoresStore = kind
	return nil
}

// GetScoresPath returns the leaderboard location: the configured path, or
// the default for the configured backend.
func (c *Config) GetScoresPath() (string, error) {
	c.mu.RLock()
	path := c.ScoresPath
	c.mu.RUnlock()

	if path != "" {
		return path, nil
	}
	return DefaultScoresPath(c.GetScoresStore())
}

// SetScoresPath overrides the leaderboard location; "" restores the default.
func (c *Config) SetScoresPath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ScoresPath = path
}

// GetLastPlayerName returns the name used for the last recorded score
func (c *Config) GetLastPlayerName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.LastPlayerName
}

// SetLastPlayerName remembers the name used for the last recorded score
func (c *Config) SetLastPlayerName(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.LastPlayerName = name
}

// GetLastSeenVersion returns the last version the user has seen
func (c *Config) GetLastSeenVersion() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.LastSeenVersion
}

// SetLastSeenVersion sets the last version the user has seen
func (c *Config) SetLastSeenVersion(version string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.LastSeenVersion = version
}

// DefaultScoresPath returns the default leaderboard file for a backend:
// ~/.guess/data.rom for json, ~/.guess/scores.db for sqlite.
func DefaultScoresPath(kind string) (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	if kind == StoreSQLite {
		return filepath.Join(dir, "scores.db"), nil
	}
	return filepath.Join(dir, "data.rom"), nil
}
