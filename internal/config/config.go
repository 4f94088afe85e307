package config

import (
	"fmt"
	"time"
)

// This file defines the configuration structures used by viper_config.go.
// The actual loading is handled by viper in viper_config.go.

// Config is the application configuration
type Config struct {
	App   AppSettings `yaml:"app" mapstructure:"app"`
	Roles RolesConfig `yaml:"roles" mapstructure:"roles"`
}

// AppSettings contains application-wide settings
type AppSettings struct {
	MinPlayers            int           `yaml:"minPlayers" mapstructure:"minplayers"`
	MaxPlayers            int           `yaml:"maxPlayers" mapstructure:"maxplayers"`
	DefaultDiscussionTime time.Duration `yaml:"defaultDiscussionTime" mapstructure:"defaultdiscussiontime"`
	DataDir               string        `yaml:"dataDir" mapstructure:"datadir"`
	LogLevel              string        `yaml:"logLevel" mapstructure:"loglevel"`
	LogFormat             string        `yaml:"logFormat" mapstructure:"logformat"`
}

// RolesConfig contains role definitions and regulation presets
type RolesConfig struct {
	Available map[string]RoleDefinition `yaml:"available" mapstructure:"available"`
	Presets   map[string]Preset         `yaml:"presets" mapstructure:"presets"`
}

// RoleDefinition defines a single role type
type RoleDefinition struct {
	DisplayName string `yaml:"displayName" mapstructure:"displayname"`
	Team        string `yaml:"team" mapstructure:"team"`
	Description string `yaml:"description" mapstructure:"description"`
}

// Preset defines a named regulation for a given game size
type Preset struct {
	Name           string         `yaml:"name" mapstructure:"name"`
	Description    string         `yaml:"description" mapstructure:"description"`
	Roles          map[string]int `yaml:"roles" mapstructure:"roles"`
	DiscussionTime time.Duration  `yaml:"discussionTime" mapstructure:"discussiontime"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		App: AppSettings{
			MinPlayers:            3,
			MaxPlayers:            20,
			DefaultDiscussionTime: 3 * time.Minute,
			DataDir:               "data",
			LogLevel:              "info",
			LogFormat:             "text",
		},
		Roles: RolesConfig{
			Available: map[string]RoleDefinition{
				"villager": {
					DisplayName: "Villager",
					Team:        "village",
					Description: "An ordinary villager with no special ability",
				},
				"werewolf": {
					DisplayName: "Werewolf",
					Team:        "werewolf",
					Description: "Attacks one villager each night",
				},
				"seer": {
					DisplayName: "Seer",
					Team:        "village",
					Description: "Learns each night whether one player is a werewolf",
				},
				"medium": {
					DisplayName: "Medium",
					Team:        "village",
					Description: "Learns whether the executed player was a werewolf",
				},
				"guard": {
					DisplayName: "Guard",
					Team:        "village",
					Description: "Protects one player from the night attack",
				},
				"madman": {
					DisplayName: "Madman",
					Team:        "werewolf",
					Description: "A human who wins with the werewolves",
				},
			},
			Presets: map[string]Preset{
				"five": {
					Name:        "Five players",
					Description: "Short beginner game",
					Roles: map[string]int{
						"werewolf": 1,
						"seer":     1,
						"villager": 3,
					},
					DiscussionTime: 3 * time.Minute,
				},
				"seven": {
					Name:        "Seven players",
					Description: "Standard small game",
					Roles: map[string]int{
						"werewolf": 2,
						"seer":     1,
						"guard":    1,
						"villager": 3,
					},
					DiscussionTime: 4 * time.Minute,
				},
				"nine": {
					Name:        "Nine players",
					Description: "Full role spread",
					Roles: map[string]int{
						"werewolf": 2,
						"madman":   1,
						"seer":     1,
						"medium":   1,
						"guard":    1,
						"villager": 3,
					},
					DiscussionTime: 5 * time.Minute,
				},
			},
		},
	}
}

// GetPreset retrieves a preset by key
func (c *Config) GetPreset(name string) (Preset, bool) {
	p, ok := c.Roles.Presets[name]
	return p, ok
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.App.MinPlayers < 1 {
		return fmt.Errorf("minPlayers must be at least 1")
	}
	if c.App.MinPlayers > c.App.MaxPlayers {
		return fmt.Errorf("minPlayers cannot be greater than maxPlayers")
	}
	if c.App.DefaultDiscussionTime <= 0 {
		return fmt.Errorf("defaultDiscussionTime must be positive")
	}

	for name, role := range c.Roles.Available {
		if role.Team != "village" && role.Team != "werewolf" {
			return fmt.Errorf("role %s: unknown team %q", name, role.Team)
		}
	}

	for key, preset := range c.Roles.Presets {
		total := 0
		for roleName, count := range preset.Roles {
			if _, ok := c.Roles.Available[roleName]; !ok {
				return fmt.Errorf("preset %s: unknown role %q", key, roleName)
			}
			if count < 0 {
				return fmt.Errorf("preset %s: role %s has negative count", key, roleName)
			}
			total += count
		}
		if total < c.App.MinPlayers || total > c.App.MaxPlayers {
			return fmt.Errorf("preset %s: %d seats is outside the %d-%d player bounds",
				key, total, c.App.MinPlayers, c.App.MaxPlayers)
		}
	}

	return nil
}
