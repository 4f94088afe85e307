package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoadConfig loads configuration using Viper.
// Priority order: Environment variables > Config file > Defaults
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set config file details
	v.SetConfigName("gm")
	v.SetConfigType("yaml")

	// Add config paths
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/werewolfgm")
	}

	// Enable environment variable binding
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// These allow both WEREWOLFGM_APP_LOGLEVEL and LOG_LEVEL to work
	v.BindEnv("app.loglevel", "LOG_LEVEL")
	v.BindEnv("app.logformat", "LOG_FORMAT")
	v.BindEnv("app.datadir", "DATA_DIR")
	v.BindEnv("app.minplayers", "MIN_PLAYERS")
	v.BindEnv("app.maxplayers", "MAX_PLAYERS")

	// Defaults mirror DefaultConfig
	v.SetDefault("app.minplayers", 3)
	v.SetDefault("app.maxplayers", 20)
	v.SetDefault("app.defaultdiscussiontime", "3m")
	v.SetDefault("app.datadir", "data")
	v.SetDefault("app.loglevel", "info")
	v.SetDefault("app.logformat", "text")

	// Try to read config file (it's optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if strings.Contains(err.Error(), "no such file or directory") {
				// File doesn't exist, continue with defaults
			} else {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
		// Config file not found; continue with env vars and defaults
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Fall back to the built-in role table and presets when the config
	// file does not define any.
	if len(cfg.Roles.Available) == 0 {
		cfg.Roles.Available = DefaultConfig().Roles.Available
	}
	if len(cfg.Roles.Presets) == 0 {
		cfg.Roles.Presets = DefaultConfig().Roles.Presets
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
