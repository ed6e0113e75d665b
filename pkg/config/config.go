/*
Package config manages TOML config for LexiServe services.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Suggest SuggestConfig `toml:"suggest"`
	Insight InsightConfig `toml:"insight"`
	Server  ServerConfig  `toml:"server"`
}

// SuggestConfig holds ranking engine options.
type SuggestConfig struct {
	Limit          int `toml:"limit"`
	MinPrefix      int `toml:"min_prefix"`
	MinSpellLength int `toml:"min_spell_length"`
}

// InsightConfig holds lexical insight options.
type InsightConfig struct {
	ExampleLimit int `toml:"example_limit"`
	RelatedLimit int `toml:"related_limit"`
	// TreatBarePackEntryAsMissing decides whether a pack entry without
	// definitions counts as "no entry" for the resolution chain.
	TreatBarePackEntryAsMissing bool `toml:"treat_bare_pack_entry_as_missing"`
}

// ServerConfig has IPC server related options.
type ServerConfig struct {
	MaxLimit  int `toml:"max_limit"`
	MaxPrefix int `toml:"max_prefix"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Suggest: SuggestConfig{
			Limit:          3,
			MinPrefix:      2,
			MinSpellLength: 3,
		},
		Insight: InsightConfig{
			ExampleLimit:                3,
			RelatedLimit:                8,
			TreatBarePackEntryAsMissing: false,
		},
		Server: ServerConfig{
			MaxLimit:  24,
			MaxPrefix: 60,
		},
	}
}

// DefaultConfigPath returns the conventional config location,
// ~/.config/lexiserve/config.toml, falling back to the working
// directory when the home dir is unknown.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(homeDir, ".config", "lexiserve", "config.toml")
}

// LoadConfig loads from a TOML file, falling back to defaults on any
// failure so a broken config never stops the service.
func LoadConfig(configPath string) *Config {
	config := DefaultConfig()
	if configPath == "" {
		return config
	}
	if _, err := os.Stat(configPath); err != nil {
		log.Debugf("No config file at %s, using defaults", configPath)
		return config
	}
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		log.Warnf("Failed to parse config %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig()
	}
	log.Debugf("Loaded config from: %s", configPath)
	return config
}

// SaveConfig saves into a TOML file, creating parent directories.
func SaveConfig(config *Config, configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}
	f, err := os.Create(configPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(config)
}
