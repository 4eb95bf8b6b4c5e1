package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/gofrs/flock"
)

// Config represents the application configuration
type Config struct {
	Suggest SuggestConfig `toml:"suggest"`
	Server  ServerConfig  `toml:"server"`
}

// SuggestConfig holds the defaults applied to every suggestion request
type SuggestConfig struct {
	ParseTime   bool     `toml:"parse_time"`
	Hour        int      `toml:"hour"`
	Minute      int      `toml:"minute"`
	ForwardDate bool     `toml:"forward_date"`
	Fallback    []string `toml:"fallback"`
}

// ServerConfig contains settings for the HTTP server
type ServerConfig struct {
	Addr              string  `toml:"addr"`
	SessionTTLMinutes int     `toml:"session_ttl_minutes"`
	MaxSessions       int     `toml:"max_sessions"`
	RatePerSecond     float64 `toml:"rate_per_second"`
	Burst             int     `toml:"burst"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Suggest: SuggestConfig{
			ParseTime:   false,
			Hour:        9,
			Minute:      0,
			ForwardDate: true,
			Fallback:    []string{"today", "tomorrow", "next monday"},
		},
		Server: ServerConfig{
			Addr:              "127.0.0.1:7676",
			SessionTTLMinutes: 30,
			MaxSessions:       1024,
			RatePerSecond:     20,
			Burst:             40,
		},
	}
}

// Request builds an engine request for query from the suggestion defaults.
func (c SuggestConfig) Request(query string) Request {
	return Request{
		Query:     query,
		ParseTime: c.ParseTime,
		Hour:      c.Hour,
		Minute:    c.Minute,
		Fallback:  FallbackLabels(c.Fallback...),
		Options:   ParseOptions{ForwardDate: c.ForwardDate},
	}
}

// SessionTTL is the idle time after which an HTTP session is dropped.
func (c ServerConfig) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

// UserConfigPath returns the path of the configuration file.
// DATESUGGEST_CONFIG overrides the default location.
func UserConfigPath() (string, error) {
	if path := os.Getenv("DATESUGGEST_CONFIG"); path != "" {
		return filepath.Clean(path), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "datesuggest", "config.toml"), nil
}

// LoadConfig loads configuration from file or returns default
func LoadConfig() (*Config, error) {
	configPath, err := UserConfigPath()
	if err != nil {
		return DefaultConfig(), nil // Return default config if can't get home dir
	}
	return LoadConfigFrom(configPath)
}

// LoadConfigFrom loads configuration from configPath. A missing or broken
// file yields the defaults.
func LoadConfigFrom(configPath string) (*Config, error) {
	config := DefaultConfig()

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return DefaultConfig(), nil
	}

	config.normalize()
	return config, nil
}

func (c *Config) normalize() {
	d := DefaultConfig()
	if c.Suggest.Hour < 0 || c.Suggest.Hour > 23 {
		c.Suggest.Hour = d.Suggest.Hour
	}
	if c.Suggest.Minute < 0 || c.Suggest.Minute > 59 {
		c.Suggest.Minute = d.Suggest.Minute
	}
	if c.Server.Addr == "" {
		c.Server.Addr = d.Server.Addr
	}
	if c.Server.SessionTTLMinutes <= 0 {
		c.Server.SessionTTLMinutes = d.Server.SessionTTLMinutes
	}
	if c.Server.MaxSessions <= 0 {
		c.Server.MaxSessions = d.Server.MaxSessions
	}
	if c.Server.RatePerSecond <= 0 {
		c.Server.RatePerSecond = d.Server.RatePerSecond
	}
	if c.Server.Burst <= 0 {
		c.Server.Burst = d.Server.Burst
	}
}

const defaultConfigContent = `# datesuggest configuration file

[suggest]
# Suggest hours ("in an hour") and extrapolate by hours
parse_time = false
# Clock time applied to suggestions that do not state one
hour = 9
minute = 0
# Move parsed dates that already passed to their next occurrence
forward_date = true
# Shown while the input is empty
fallback = ["today", "tomorrow", "next monday"]

[server]
addr = "127.0.0.1:7676"
# Idle sessions are dropped after this many minutes
session_ttl_minutes = 30
max_sessions = 1024
# Requests per second allowed for one session
rate_per_second = 20
burst = 40
`

// SaveDefaultConfig creates a default config file at configPath. An existing
// file is left alone. The write happens under a lock file next to it.
func SaveDefaultConfig(configPath string) (bool, error) {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return false, err
	}

	lock := flock.New(configPath + ".lock")
	if err := lock.Lock(); err != nil {
		return false, fmt.Errorf("failed to lock config: %w", err)
	}
	defer lock.Unlock()

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		return false, nil
	}

	tempFile, err := os.CreateTemp(configDir, ".datesuggest-*.tmp")
	if err != nil {
		return false, err
	}
	tempPath := tempFile.Name()

	defer func() {
		tempFile.Close()
		os.Remove(tempPath)
	}()

	if _, err := tempFile.WriteString(defaultConfigContent); err != nil {
		return false, err
	}
	if err := tempFile.Sync(); err != nil {
		return false, err
	}
	if err := tempFile.Close(); err != nil {
		return false, err
	}
	if err := os.Rename(tempPath, configPath); err != nil {
		return false, err
	}
	return true, nil
}
