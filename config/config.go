// Package config loads geokit settings from a TOML file and GEOKIT_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	Workers   int    `mapstructure:"workers"`
	Output    string `mapstructure:"output"`
	LogLevel  string `mapstructure:"log_level"`
	Precision int    `mapstructure:"precision"`
}

// DefaultPath is ~/.geokit/config.toml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return path.Join(homeDir, ".geokit", "config.toml"), nil
}

// Load reads the config file at p, if there is one, then applies
// environment overrides such as GEOKIT_WORKERS.
func Load(p string) (*Config, error) {
	v := viper.New()

	v.SetDefault("workers", 8)
	v.SetDefault("output", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("precision", 4)

	if p != "" {
		_, err := os.Stat(p)
		switch {
		case err == nil:
			v.SetConfigFile(p)
			v.SetConfigType("toml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("couldn't read config %s: %w", p, err)
			}
		case errors.Is(err, os.ErrNotExist):
			// defaults and environment only
		default:
			return nil, fmt.Errorf("couldn't stat config %s: %w", p, err)
		}
	}

	v.SetEnvPrefix("GEOKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []string

	if c.Workers < 1 {
		errs = append(errs, fmt.Sprintf("workers must be positive, got %d", c.Workers))
	}
	if c.Precision < 0 || c.Precision > 15 {
		errs = append(errs, fmt.Sprintf("precision must be 0-15, got %d", c.Precision))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Sprintf("log_level: %s", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// Level is the parsed LogLevel. Validate has already rejected bad values.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
