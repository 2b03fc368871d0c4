// Package config loads runtime settings from the environment and an optional .env file.
//
// Every variable carries the ASPARAGUS_ prefix, nested groups add their own:
//
//	ASPARAGUS_SEED=42
//	ASPARAGUS_AUDIO_VOLUME=0.3
//	ASPARAGUS_SPECTATOR_ADDR=:8089
//	ASPARAGUS_TUNING_FALL_ANGLE=0.5
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/lixenwraith/asparagus/audio"
	"github.com/lixenwraith/asparagus/constants"
	"github.com/lixenwraith/asparagus/network"
	"github.com/lixenwraith/asparagus/physics"
)

// Prefix is prepended to every environment variable name
const Prefix = "ASPARAGUS_"

// Config is the complete runtime configuration
type Config struct {
	Debug bool  `env:"DEBUG"`
	Seed  int64 `env:"SEED"` // 0 picks a time based seed

	FrameInterval time.Duration `env:"FRAME_INTERVAL"`
	KeyHold       time.Duration `env:"KEY_HOLD"`

	Audio     audio.Config   `envPrefix:"AUDIO_"`
	Spectator network.Config `envPrefix:"SPECTATOR_"`
	Tuning    physics.Tuning `envPrefix:"TUNING_"`
}

// Default returns the shipped configuration
func Default() Config {
	return Config{
		FrameInterval: constants.FrameUpdateInterval,
		KeyHold:       constants.KeyHoldWindow,
		Audio:         audio.DefaultConfig(),
		Spectator:     network.DefaultConfig(),
		Tuning:        physics.DefaultTuning(),
	}
}

// Load reads .env if present, then overlays the environment onto the defaults
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("[CONFIG] .env ignored: %v", err)
	}

	cfg := Default()
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: Prefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every group and joins the failures
func (c Config) Validate() error {
	var errs []error
	if c.FrameInterval <= 0 {
		errs = append(errs, fmt.Errorf("FRAME_INTERVAL must be positive, got %v", c.FrameInterval))
	}
	if c.KeyHold <= 0 {
		errs = append(errs, fmt.Errorf("KEY_HOLD must be positive, got %v", c.KeyHold))
	}
	if err := c.Audio.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Spectator.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Tuning.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
