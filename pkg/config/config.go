// Package config provides configuration management for the sl2hash CLI tool
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Davincible/sl2hash/pkg/parallel"
)

// CurrentVersion is written into newly created config files
const CurrentVersion = "1.0.0"

// Decompression modes accepted by Defaults.Decompress
var DecompressModes = []string{"none", "auto", "zstd", "lz4", "gzip"}

// Config represents the main configuration structure
type Config struct {
	Version  string          `json:"version"`
	Defaults DefaultSettings `json:"defaults"`
	UI       UIConfig        `json:"ui"`
}

// DefaultSettings contains default values for hashing operations
type DefaultSettings struct {
	Parallel   bool   `json:"parallel"`   // Default: false
	ChunkSize  int    `json:"chunk_size"` // Default: 1 MiB
	Workers    int    `json:"workers"`    // Default: 0 (GOMAXPROCS)
	Decompress string `json:"decompress"` // Default: none
	Strict     bool   `json:"strict"`     // Validate determinant when parsing hashes
}

// UIConfig contains user interface settings
type UIConfig struct {
	UseColor  bool   `json:"use_color"` // Enable colored output
	Verbosity string `json:"verbosity"` // quiet, normal, verbose
}

// ConfigManager manages configuration loading and saving
type ConfigManager struct {
	config     *Config
	configPath string
}

// NewConfigManager creates a new configuration manager. A missing config
// file is replaced by the defaults, which are written to disk.
func NewConfigManager() (*ConfigManager, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return NewConfigManagerAt(configPath)
}

// NewConfigManagerAt is NewConfigManager for an explicit path
func NewConfigManagerAt(configPath string) (*ConfigManager, error) {
	cm := &ConfigManager{configPath: configPath}

	if err := cm.LoadConfig(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cm.config = DefaultConfig()
		if err := cm.SaveConfig(); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
	}

	return cm, nil
}

// Load reads the configuration without writing anything. A missing file
// yields the defaults.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadAt(configPath)
}

// LoadAt is Load for an explicit path
func LoadAt(configPath string) (*Config, error) {
	cm := &ConfigManager{configPath: configPath}
	if err := cm.LoadConfig(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return cm.config, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		Defaults: DefaultSettings{
			Parallel:   false,
			ChunkSize:  parallel.DefaultChunkSize,
			Workers:    0,
			Decompress: "none",
			Strict:     true,
		},
		UI: UIConfig{
			UseColor:  true,
			Verbosity: "normal",
		},
	}
}

// Validate checks that the settings are usable
func (c *Config) Validate() error {
	opts := c.ParallelOptions()
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}

	if !isDecompressMode(c.Defaults.Decompress) {
		return fmt.Errorf("defaults: unknown decompress mode %q (want one of %s)",
			c.Defaults.Decompress, strings.Join(DecompressModes, ", "))
	}

	switch c.UI.Verbosity {
	case "quiet", "normal", "verbose":
	default:
		return fmt.Errorf("ui: unknown verbosity %q", c.UI.Verbosity)
	}

	return nil
}

// ParallelOptions returns the chunking settings as parallel.Options
func (c *Config) ParallelOptions() parallel.Options {
	return parallel.Options{
		ChunkSize: c.Defaults.ChunkSize,
		Workers:   c.Defaults.Workers,
	}
}

// LoadConfig loads the configuration from disk
func (cm *ConfigManager) LoadConfig() error {
	data, err := os.ReadFile(cm.configPath)
	if err != nil {
		return err
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", cm.configPath, err)
	}

	cm.config = config
	return nil
}

// SaveConfig saves the configuration to disk
func (cm *ConfigManager) SaveConfig() error {
	configDir := filepath.Dir(cm.configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cm.config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(cm.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetConfig returns the current configuration
func (cm *ConfigManager) GetConfig() *Config {
	return cm.config
}

// SetConfig updates the configuration
func (cm *ConfigManager) SetConfig(config *Config) {
	cm.config = config
}

// Path returns the file backing this manager
func (cm *ConfigManager) Path() string {
	return cm.configPath
}

// GetConfigPath returns the configuration file path
func GetConfigPath() (string, error) {
	if customPath := os.Getenv("SL2HASH_CONFIG"); customPath != "" {
		return customPath, nil
	}

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "sl2hash", "config.json"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "sl2hash", "config.json"), nil
}

func isDecompressMode(mode string) bool {
	for _, m := range DecompressModes {
		if m == mode {
			return true
		}
	}
	return false
}
