package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Play modes
const (
	ModeManual = "manual"
	ModeAuto   = "auto"
)

const (
	defaultMode      = ModeManual
	defaultAutoDelay = 400
	defaultSoundDir  = "assets/sounds"
	defaultLogSizeMB = 10
)

// Config is the whole program configuration.
type Config struct {
	Game  GameConfig  `yaml:"game"`
	UI    UIConfig    `yaml:"ui"`
	Sound SoundConfig `yaml:"sound"`
	Log   LogConfig   `yaml:"log"`
}

// GameConfig controls how cards are dealt.
type GameConfig struct {
	Mode      string `yaml:"mode"`       // manual | auto
	Seed      uint64 `yaml:"seed"`       // 0 picks a random seed
	AutoDelay int    `yaml:"auto_delay"` // milliseconds between automatic deals
}

// UIConfig picks the driver.
type UIConfig struct {
	TUI   bool  `yaml:"tui"`
	Color *bool `yaml:"color"`
}

// SoundConfig controls audio cues.
type SoundConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// LogConfig controls the debug log file.
type LogConfig struct {
	Dir       string `yaml:"dir"`
	MaxSizeMB int    `yaml:"max_size_mb"`
}

// AutoDelayDuration returns the pause between automatic deals.
func (c *GameConfig) AutoDelayDuration() time.Duration {
	return time.Duration(c.AutoDelay) * time.Millisecond
}

// ColorEnabled reports whether styled output is wanted. Defaults to true.
func (c *UIConfig) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}

// Load reads a yaml config file, fills in defaults and applies
// HIGHLOW_* environment overrides. Keys missing from the file keep their
// defaults; keys present keep their value, so auto_delay: 0 disables the
// pause.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return cfg.finish()
}

// Default returns the default configuration with environment overrides.
// Malformed overrides are rejected the same way Load rejects them.
func Default() (*Config, error) {
	cfg := defaults()
	return cfg.finish()
}

func defaults() Config {
	return Config{
		Game:  GameConfig{Mode: defaultMode, AutoDelay: defaultAutoDelay},
		Sound: SoundConfig{Dir: defaultSoundDir},
		Log:   LogConfig{MaxSizeMB: defaultLogSizeMB},
	}
}

func (c Config) finish() (*Config, error) {
	c.applyDefaults()
	if err := c.applyEnv(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadDotEnv loads variables from .env style files into the environment
// without overriding ones already set. Missing files are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Validate checks values that have no sensible fallback.
func (c *Config) Validate() error {
	if c.Game.Mode != ModeManual && c.Game.Mode != ModeAuto {
		return fmt.Errorf("invalid game mode %q (want %s or %s)", c.Game.Mode, ModeManual, ModeAuto)
	}
	if c.Game.AutoDelay < 0 {
		return fmt.Errorf("auto_delay must not be negative: %d", c.Game.AutoDelay)
	}
	return nil
}

// applyDefaults refills settings a file blanked out explicitly.
func (c *Config) applyDefaults() {
	if c.Game.Mode == "" {
		c.Game.Mode = defaultMode
	}
	if c.Sound.Dir == "" {
		c.Sound.Dir = defaultSoundDir
	}
	if c.Log.MaxSizeMB == 0 {
		c.Log.MaxSizeMB = defaultLogSizeMB
	}
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("HIGHLOW_MODE"); v != "" {
		c.Game.Mode = v
	}
	if v := os.Getenv("HIGHLOW_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("HIGHLOW_SEED: %w", err)
		}
		c.Game.Seed = seed
	}
	if v := os.Getenv("HIGHLOW_AUTO_DELAY"); v != "" {
		delay, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("HIGHLOW_AUTO_DELAY: %w", err)
		}
		c.Game.AutoDelay = delay
	}
	if v := os.Getenv("HIGHLOW_TUI"); v != "" {
		tui, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("HIGHLOW_TUI: %w", err)
		}
		c.UI.TUI = tui
	}
	if v := os.Getenv("HIGHLOW_COLOR"); v != "" {
		color, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("HIGHLOW_COLOR: %w", err)
		}
		c.UI.Color = &color
	}
	if v := os.Getenv("HIGHLOW_SOUND"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("HIGHLOW_SOUND: %w", err)
		}
		c.Sound.Enabled = enabled
	}
	if v := os.Getenv("HIGHLOW_SOUND_DIR"); v != "" {
		c.Sound.Dir = v
	}
	if v := os.Getenv("HIGHLOW_LOG_DIR"); v != "" {
		c.Log.Dir = v
	}
	return nil
}
