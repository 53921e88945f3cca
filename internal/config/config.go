// Package config handles configuration loading and validation for CodeMetrics.
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/imyousuf/CodeMetrics/internal/discover"
	"github.com/imyousuf/CodeMetrics/internal/lang"
	"github.com/imyousuf/CodeMetrics/internal/report"
)

const (
	// DefaultConfigFile is the default configuration file name (without extension).
	DefaultConfigFile = ".codemetrics"
	// DefaultConfigType is the default configuration file type.
	DefaultConfigType = "yaml"
	// EnvPrefix prefixes environment overrides, e.g. CODEMETRICS_OUTPUT_FORMAT.
	EnvPrefix = "CODEMETRICS"
)

// Config holds all configuration for CodeMetrics.
type Config struct {
	// Language forces the language of every analyzed file. Empty infers it.
	Language string `mapstructure:"language" yaml:"language,omitempty"`
	// Output controls report rendering.
	Output OutputConfig `mapstructure:"output" yaml:"output"`
	// Discover controls which files directory walks yield.
	Discover DiscoverConfig `mapstructure:"discover" yaml:"discover"`
	// Engine controls parsing.
	Engine EngineConfig `mapstructure:"engine" yaml:"engine"`
	// Cache controls the on-disk result cache.
	Cache CacheConfig `mapstructure:"cache" yaml:"cache"`
	// Workers is the number of files analyzed concurrently.
	Workers int `mapstructure:"workers" yaml:"workers"`

	// ConfigFile is the file the configuration was read from, if any.
	ConfigFile string `mapstructure:"-" yaml:"-"`
}

// OutputConfig holds report settings.
type OutputConfig struct {
	// Format is one of text, json, yaml, toml.
	Format string `mapstructure:"format" yaml:"format"`
	// Metrics are the flattened metric keys shown in text reports.
	Metrics []string `mapstructure:"metrics" yaml:"metrics"`
}

// DiscoverConfig holds file discovery settings.
type DiscoverConfig struct {
	Include   []string `mapstructure:"include" yaml:"include,omitempty"`
	Exclude   []string `mapstructure:"exclude" yaml:"exclude,omitempty"`
	GitIgnore bool     `mapstructure:"gitignore" yaml:"gitignore"`
}

// EngineConfig holds parser settings.
type EngineConfig struct {
	// Strict treats source with syntax errors as a parse failure.
	Strict bool `mapstructure:"strict" yaml:"strict"`
}

// CacheConfig holds result cache settings.
type CacheConfig struct {
	// Dir is the BadgerDB directory. Empty disables caching.
	Dir string `mapstructure:"dir" yaml:"dir,omitempty"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// Load loads configuration from file, environment variables, and defaults.
func Load() (*Config, error) {
	// A config file set via the --config flag is stored in the global viper.
	return LoadFile(viper.GetViper().GetString("config_file"))
}

// LoadFile loads configuration from path, or from .codemetrics.yaml in the
// working directory when path is empty.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(DefaultConfigFile)
		v.SetConfigType(DefaultConfigType)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	cfg.ConfigFile = v.ConfigFileUsed()
	return &cfg, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Language != "" {
		if _, ok := lang.Parse(c.Language); !ok {
			return fmt.Errorf("language: %w", &lang.UnsupportedLanguageError{Token: c.Language})
		}
	}
	if _, err := report.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if err := report.ValidateMetrics(c.Output.Metrics); err != nil {
		return fmt.Errorf("output.metrics: %w", err)
	}
	if err := c.DiscoverConfig().Validate(); err != nil {
		return fmt.Errorf("discover: %w", err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}

// DiscoverConfig converts the discover section for the discover package.
func (c *Config) DiscoverConfig() discover.Config {
	return discover.Config{
		Include:   c.Discover.Include,
		Exclude:   c.Discover.Exclude,
		GitIgnore: c.Discover.GitIgnore,
	}
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("language", "")

	v.SetDefault("output.format", string(report.FormatText))
	v.SetDefault("output.metrics", report.DefaultMetrics)

	v.SetDefault("discover.include", []string{})
	v.SetDefault("discover.exclude", []string{})
	v.SetDefault("discover.gitignore", true)

	v.SetDefault("engine.strict", false)

	v.SetDefault("cache.dir", "")

	v.SetDefault("workers", runtime.GOMAXPROCS(0))
}
