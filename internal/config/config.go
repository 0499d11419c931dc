package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// AppName is the application name used for config file placement.
const AppName = "dotstore"

// DefaultKind is the store kind `create` falls back to when neither the
// command line nor the config file names one.
const DefaultKind = "data"

// Config represents the top-level configuration structure.
type Config struct {
	Version     int    `mapstructure:"version" toml:"version"`
	DefaultKind string `mapstructure:"default_kind" toml:"default_kind"`
	Output      string `mapstructure:"output" toml:"output"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Version:     1,
		DefaultKind: DefaultKind,
		Output:      "text",
	}
}

// Dir returns the directory the config file is searched in. This is the
// same hidden directory ConfigStore("dotstore") would create; Load never
// creates it.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, "."+AppName)
}

// Path returns the full path of the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(Dir())

	// Environment variable support
	viper.SetEnvPrefix("DOTSTORE")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("version", 1)
	viper.SetDefault("default_kind", DefaultKind)
	viper.SetDefault("output", "text")
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back to
// defaults when no file exists.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// An explicitly requested file must exist.
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	return &cfg, nil
}
