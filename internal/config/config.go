// Package config loads runtime configuration from a YAML file, ARCHEX_
// environment variables, and built-in defaults, in that precedence order.
package config

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is the full runtime configuration.
type Config struct {
	Output   OutputConfig   `mapstructure:"output" yaml:"output"`
	Detect   DetectConfig   `mapstructure:"detect" yaml:"detect"`
	Filter   FilterConfig   `mapstructure:"filter" yaml:"filter"`
	Tracking TrackingConfig `mapstructure:"tracking" yaml:"tracking"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
}

// OutputConfig controls record emission.
type OutputConfig struct {
	// Format is jsonl or csv.
	Format string `mapstructure:"format" yaml:"format"`
}

// DetectConfig controls cycle-size detection.
type DetectConfig struct {
	// ScanWindow bounds how many leading pages detection inspects.
	ScanWindow int `mapstructure:"scan_window" yaml:"scan_window"`
	// CycleSizes forces the cycle size per document type, skipping
	// detection for the named types.
	CycleSizes map[string]int `mapstructure:"cycle_sizes" yaml:"cycle_sizes"`
}

// FilterConfig controls row-validity filtering.
type FilterConfig struct {
	// Sentinels are primary-key texts marking placeholder rows.
	Sentinels []string `mapstructure:"sentinels" yaml:"sentinels"`
	// FooterPrefixes are primary-key prefixes marking footer rows.
	FooterPrefixes []string `mapstructure:"footer_prefixes" yaml:"footer_prefixes"`
}

// TrackingConfig overrides courier tracking URL templates. Keys are
// courier codes (FEDEX, UPS, ...), values are templates with one %s slot.
type TrackingConfig struct {
	Templates map[string]string `mapstructure:"templates" yaml:"templates"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	// Level is debug, info, warn, or error.
	Level string `mapstructure:"level" yaml:"level"`
}

// Manager loads configuration once and hands out the result.
type Manager struct {
	mu     sync.RWMutex
	config *Config
}

// NewManager sets up viper and loads the configuration. cfgFile may be
// empty, in which case the default search paths are used and a missing
// file is not an error.
func NewManager(cfgFile string) (*Manager, error) {
	cm := &Manager{}

	if err := cm.initViper(cfgFile); err != nil {
		return nil, err
	}

	cfg, err := cm.load()
	if err != nil {
		return nil, err
	}
	cm.config = cfg

	return cm, nil
}

// initViper sets up viper with defaults and the config file.
func (cm *Manager) initViper(cfgFile string) error {
	defaults := DefaultConfig()
	viper.SetDefault("output", defaults.Output)
	viper.SetDefault("detect", defaults.Detect)
	viper.SetDefault("filter", defaults.Filter)
	viper.SetDefault("tracking", defaults.Tracking)
	viper.SetDefault("log", defaults.Log)

	// Environment variables with ARCHEX_ prefix
	viper.SetEnvPrefix("ARCHEX")
	viper.AutomaticEnv()

	// Config file
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.archex")
	}

	// Try to read config file (not required)
	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}

// load parses the current viper state into a Config struct.
func (cm *Manager) load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Get returns the current configuration (thread-safe).
func (cm *Manager) Get() *Config {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.config
}

// WriteDefault writes the default configuration to the specified path.
func WriteDefault(path string) error {
	cfg := DefaultConfig()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# archex configuration
# Every key can also be set via ARCHEX_ environment variables.

`)
	return os.WriteFile(path, append(header, data...), 0o644)
}
