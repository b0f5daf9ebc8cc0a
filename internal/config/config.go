// Package config loads fwpack settings from the XDG config directory and
// FWPACK_* environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/fwpack/fwpack/internal/paths"
)

// Config holds user-tunable settings.
type Config struct {
	// SocketPath overrides the daemon unix socket location.
	SocketPath string `mapstructure:"socket_path"`
	// DefaultDestination is the folder imports land in when --dest is omitted.
	DefaultDestination string `mapstructure:"default_destination"`
	// GitInit makes every import initialize a git repository.
	GitInit bool `mapstructure:"git_init"`
}

// Load reads config.yaml from the config directory, applying defaults and
// environment overrides. A missing config file is not an error.
func Load() (*Config, error) {
	return load(paths.DefaultConfigDir())
}

func load(configDir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	v.SetEnvPrefix("FWPACK")
	v.AutomaticEnv()

	v.SetDefault("socket_path", paths.DefaultSocketPath())
	v.SetDefault("default_destination", "")
	v.SetDefault("git_init", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
