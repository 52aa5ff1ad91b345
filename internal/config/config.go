package config

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

const (
	WindowWidth  = 600
	WindowHeight = 600
	WindowTitle  = "Colorator - drag to pick a hue, S: save PNG, Esc/Q: quit"

	// Space between the window edge and the wheel's bounding box.
	Padding = 20

	// Ring dimensions
	RingWidth  = 150
	RingStroke = 30

	// Feedback tone
	ToneSampleRate = 44100
	ToneBaseHz     = 220
	ToneOctaves    = 2
	ToneMillis     = 120
	ToneVolume     = 0.25

	// EnvPrefix namespaces the environment variables Load reads.
	EnvPrefix = "COLORATOR"
)

// Config holds the runtime settings. Every field can be set from a
// COLORATOR_* environment variable.
type Config struct {
	WindowWidth  int  `split_words:"true" default:"600"`
	WindowHeight int  `split_words:"true" default:"600"`
	Padding      int  `default:"20"`
	RingWidth    int  `split_words:"true" default:"150"`
	RingStroke   int  `split_words:"true" default:"30"`
	Sound        bool `default:"true"`
	Debug        bool `default:"false"`
}

// Default returns the settings used when nothing is overridden.
func Default() *Config {
	return &Config{
		WindowWidth:  WindowWidth,
		WindowHeight: WindowHeight,
		Padding:      Padding,
		RingWidth:    RingWidth,
		RingStroke:   RingStroke,
		Sound:        true,
	}
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var (
	ErrWindowSize = errors.New("window size must be positive")
	ErrPadding    = errors.New("padding must not be negative")
	ErrRing       = errors.New("ring stroke must be between 0 and the ring width")
)

// Validate reports the first setting that cannot produce a usable wheel.
func (c *Config) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrWindowSize, c.WindowWidth, c.WindowHeight)
	}
	if c.Padding < 0 {
		return fmt.Errorf("%w: %d", ErrPadding, c.Padding)
	}
	if c.RingWidth <= 0 || c.RingStroke < 0 || c.RingStroke > c.RingWidth {
		return fmt.Errorf("%w: width %d, stroke %d", ErrRing, c.RingWidth, c.RingStroke)
	}
	return nil
}
