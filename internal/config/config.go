package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

const appName = "gofish"

// Config represents the application configuration
type Config struct {
	PlayerName string `toml:"player_name" env:"GOFISH_PLAYER_NAME"`
	LogLines   int    `toml:"log_lines" env:"GOFISH_LOG_LINES"`
	Seed       uint64 `toml:"seed" env:"GOFISH_SEED"`
	LogLevel   string `toml:"log_level" env:"GOFISH_LOG_LEVEL"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		LogLines: 8,
		LogLevel: "info",
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetXDGStateHome returns XDG_STATE_HOME or default path
func GetXDGStateHome() string {
	if xdgState := os.Getenv("XDG_STATE_HOME"); xdgState != "" {
		return xdgState
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "state")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), appName, "config.toml")
}

// GetLogFilePath returns the path to the diagnostic log
func GetLogFilePath() string {
	return filepath.Join(GetXDGStateHome(), appName, appName+".log")
}

// Load reads the config file, creating it when missing, and applies
// GOFISH_* environment overrides on top.
func Load() (*Config, error) {
	cfg, err := LoadFile(GetConfigFilePath())
	if err != nil {
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parsing environment: %v", err)
	}

	return cfg, nil
}

// LoadFile loads the config at path, writing the default there if it does not exist
func LoadFile(path string) (*Config, error) {
	// Create default config if it doesn't exist
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return createDefaultConfig(path)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}

	return cfg, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig(path string) (*Config, error) {
	cfg := Default()
	if err := Save(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path as TOML
func Save(path string, cfg *Config) error {
	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %v", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}

	return nil
}

// SetPlayerName stores the default player name in the config file
func SetPlayerName(name string) error {
	path := GetConfigFilePath()
	cfg, err := LoadFile(path)
	if err != nil {
		return err
	}

	cfg.PlayerName = name

	return Save(path, cfg)
}
