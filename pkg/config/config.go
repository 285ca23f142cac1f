package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/rubiojr/snix/pkg/search"
)

//go:embed config.toml.sample
var configTemplate string

// Pager modes accepted in the config file.
const (
	PagerAuto   = "auto"
	PagerAlways = "always"
	PagerNever  = "never"
)

// Config holds the settings resolved once at startup. Command-line flags
// override everything in here.
type Config struct {
	// BaseURL is the search backend endpoint. The index name and _search
	// path are appended per request.
	BaseURL string `toml:"base_url"`

	// Channel is the default release channel to search.
	Channel string `toml:"channel"`

	// Username and Password override the public backend credentials.
	Username string `toml:"username,omitempty"`
	Password string `toml:"password,omitempty"`

	// Timeout bounds a single search request.
	Timeout Duration `toml:"timeout"`

	// Pager controls pager usage: auto, always or never.
	Pager string `toml:"pager"`
}

// Duration is a time.Duration that marshals as a human-readable string.
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// GetDefaultConfig returns the built-in defaults.
func GetDefaultConfig() *Config {
	return &Config{
		BaseURL: search.DefaultBaseURL,
		Channel: search.DefaultChannel,
		Timeout: Duration{search.DefaultTimeout},
		Pager:   PagerAuto,
	}
}

// LoadConfig reads the config file at configPath. A missing file is not an
// error; defaults are returned so the tool works with zero setup. Fields
// missing from the file fall back to their defaults individually.
func LoadConfig(configPath string) (*Config, error) {
	cfg := GetDefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var fileCfg Config
	if err := toml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if fileCfg.BaseURL != "" {
		cfg.BaseURL = fileCfg.BaseURL
	}
	if fileCfg.Channel != "" {
		cfg.Channel = fileCfg.Channel
	}
	if fileCfg.Username != "" {
		cfg.Username = fileCfg.Username
	}
	if fileCfg.Password != "" {
		cfg.Password = fileCfg.Password
	}
	if fileCfg.Timeout.Duration != 0 {
		cfg.Timeout = fileCfg.Timeout
	}
	if fileCfg.Pager != "" {
		switch fileCfg.Pager {
		case PagerAuto, PagerAlways, PagerNever:
			cfg.Pager = fileCfg.Pager
		default:
			return nil, fmt.Errorf("invalid pager mode %q (must be auto, always or never)", fileCfg.Pager)
		}
	}

	return cfg, nil
}

// SaveTemplateConfig writes the commented sample configuration to configPath.
func (c *Config) SaveTemplateConfig(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return os.WriteFile(configPath, []byte(configTemplate), 0644)
}

// GetConfigDir returns the configuration directory for snix
func GetConfigDir() (string, error) {
	// Use XDG_CONFIG_HOME if set, otherwise use ~/.config
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting user home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, "snix"), nil
}

// GetDefaultConfigPath returns the default configuration file path
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}
