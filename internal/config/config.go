// Package config handles loading and saving user configuration for fourzi.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up inside the config directory.
const FileName = "config.yaml"

// Render styles.
const (
	StylePlain = "plain"
	StyleTable = "table"
	StyleBig   = "big"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config holds all user configuration.
type Config struct {
	Game    GameConfig    `mapstructure:"game" yaml:"game"`
	Phrases PhrasesConfig `mapstructure:"phrases" yaml:"phrases"`
	Render  RenderConfig  `mapstructure:"render" yaml:"render"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// GameConfig holds round generation settings.
type GameConfig struct {
	NumPhrases     int  `mapstructure:"num_phrases" yaml:"num_phrases"`         // Phrases hidden per round
	SideSize       int  `mapstructure:"side_size" yaml:"side_size"`             // Grid width
	Rounds         int  `mapstructure:"rounds" yaml:"rounds"`                   // Rounds per run
	ExclusiveBound bool `mapstructure:"exclusive_bound" yaml:"exclusive_bound"` // Draw indices from [0, n) instead of [0, n]
}

// PhrasesConfig selects the phrase source.
type PhrasesConfig struct {
	Path string `mapstructure:"path" yaml:"path"` // .yaml, .jsonl or sqlite file; empty for the built-in list
}

// RenderConfig holds grid display settings.
type RenderConfig struct {
	Style  string `mapstructure:"style" yaml:"style"`   // plain, table, big
	Pinyin bool   `mapstructure:"pinyin" yaml:"pinyin"` // Show readings under characters
	Reveal bool   `mapstructure:"reveal" yaml:"reveal"` // Print the hidden phrases after the grid
	Copy   bool   `mapstructure:"copy" yaml:"copy"`     // Copy the plain grid to the clipboard
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"` // zerolog level name
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("game.num_phrases", 9)
	v.SetDefault("game.side_size", 6)
	v.SetDefault("game.rounds", 1)
	v.SetDefault("game.exclusive_bound", false)

	v.SetDefault("phrases.path", "")

	v.SetDefault("render.style", StyleTable)
	v.SetDefault("render.pinyin", false)
	v.SetDefault("render.reveal", false)
	v.SetDefault("render.copy", false)

	v.SetDefault("log.level", "warn")
}

// New returns a viper instance with defaults and FOURZI_ environment
// variables bound (e.g., FOURZI_GAME_SIDE_SIZE).
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix("FOURZI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads config.yaml from dir into v when it exists, then decodes and
// validates the merged settings.
func Load(v *viper.Viper, dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration implied by SetDefaults alone.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	// Defaults always decode.
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Game.NumPhrases < 0 {
		return fmt.Errorf("%w: game.num_phrases must not be negative, got %d", ErrInvalid, c.Game.NumPhrases)
	}
	if c.Game.SideSize <= 0 {
		return fmt.Errorf("%w: game.side_size must be positive, got %d", ErrInvalid, c.Game.SideSize)
	}
	if c.Game.Rounds < 1 {
		return fmt.Errorf("%w: game.rounds must be at least 1, got %d", ErrInvalid, c.Game.Rounds)
	}

	switch c.Render.Style {
	case StylePlain, StyleTable, StyleBig:
	default:
		return fmt.Errorf("%w: render.style must be plain, table or big, got %q", ErrInvalid, c.Render.Style)
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	return nil
}

// Save writes c to path as YAML.
func Save(path string, c *Config) error {
	out, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "fourzi"), nil
}
