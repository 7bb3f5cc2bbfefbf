package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete custsearch configuration
type Config struct {
	Source  SourceConfig  `mapstructure:"source" yaml:"source"`
	Search  SearchConfig  `mapstructure:"search" yaml:"search"`
	TUI     TUIConfig     `mapstructure:"tui" yaml:"tui"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// SourceConfig controls where the customer dataset is read from
type SourceConfig struct {
	// Location of the JSON dataset: a path, file://, http(s)://, or s3://bucket/key.
	// A .gz or .zst suffix is decompressed transparently.
	Location string `mapstructure:"location" yaml:"location"`
	// S3 configures s3:// locations
	S3 S3Config `mapstructure:"s3" yaml:"s3"`
}

// S3Config configures access to S3-compatible object storage
type S3Config struct {
	// Endpoint is host[:port] of the object store (default: s3.amazonaws.com)
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`
	// Region is optional; empty lets the client discover it
	Region string `mapstructure:"region" yaml:"region"`
	// UseSSL selects https (default: true)
	UseSSL bool `mapstructure:"use_ssl" yaml:"use_ssl"`
}

// SearchConfig controls result presentation
type SearchConfig struct {
	// ResultLimit is the maximum number of rows rendered (default: 50).
	// The reported count is never truncated.
	ResultLimit int `mapstructure:"result_limit" yaml:"result_limit"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// Theme is the color theme for the TUI (default: "default")
	// Options: "default", "dracula", "nord", "monokai", "plain"
	Theme string `mapstructure:"theme" yaml:"theme"`
}

// LoggingConfig controls file logging behavior
type LoggingConfig struct {
	// Enabled controls whether the TUI writes a log file (default: true)
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level" yaml:"level"`
	// Dir is the log directory. If empty, defaults to <config dir>/logs.
	Dir string `mapstructure:"dir" yaml:"dir"`
	// MaxSizeMB is the maximum log file size in megabytes before rotation (default: 10)
	MaxSizeMB int `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	// MaxBackups is the number of backup log files to keep (default: 3)
	MaxBackups int `mapstructure:"max_backups" yaml:"max_backups"`
	// Compress gzips rotated log files (default: false)
	Compress bool `mapstructure:"compress" yaml:"compress"`
}

// ResolveDir returns the configured log directory, falling back to
// <config dir>/logs.
func (l *LoggingConfig) ResolveDir() string {
	if l.Dir != "" {
		return l.Dir
	}
	return filepath.Join(ConfigDir(), "logs")
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			Location: "customers.json",
			S3: S3Config{
				Endpoint: "s3.amazonaws.com",
				UseSSL:   true,
			},
		},
		Search: SearchConfig{
			ResultLimit: 50,
		},
		TUI: TUIConfig{
			Theme: "default",
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Source defaults
	viper.SetDefault("source.location", defaults.Source.Location)
	viper.SetDefault("source.s3.endpoint", defaults.Source.S3.Endpoint)
	viper.SetDefault("source.s3.region", defaults.Source.S3.Region)
	viper.SetDefault("source.s3.use_ssl", defaults.Source.S3.UseSSL)

	// Search defaults
	viper.SetDefault("search.result_limit", defaults.Search.ResultLimit)

	// TUI defaults
	viper.SetDefault("tui.theme", defaults.TUI.Theme)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "custsearch")
	}
	// Fall back to ~/.config/custsearch
	home, err := os.UserHomeDir()
	if err != nil {
		return ".custsearch"
	}
	return filepath.Join(home, ".config", "custsearch")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
