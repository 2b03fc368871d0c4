package audio

import (
	"fmt"
	"math"

	"github.com/lixenwraith/asparagus/constants"
)

// Config controls the sound cues, env tags are relative to the audio prefix
type Config struct {
	Enabled    bool    `env:"ENABLED"`
	Volume     float64 `env:"VOLUME"`      // linear master volume in [0, 1]
	SampleRate int     `env:"SAMPLE_RATE"` // Hz
}

// DefaultConfig returns audio enabled at the default volume
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Volume:     constants.DefaultMasterVolume,
		SampleRate: constants.DefaultSampleRate,
	}
}

// Validate rejects volumes outside [0, 1] and non-positive sample rates
func (c Config) Validate() error {
	if math.IsNaN(c.Volume) || c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("audio VOLUME must be within [0, 1], got %v", c.Volume)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("audio SAMPLE_RATE must be positive, got %d", c.SampleRate)
	}
	return nil
}
