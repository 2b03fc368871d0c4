package network

import (
	"fmt"

	"github.com/lixenwraith/asparagus/constants"
)

// Config controls the spectator feed, an empty Addr disables it
type Config struct {
	Addr          string `env:"ADDR"`
	SnapshotEvery int    `env:"SNAPSHOT_EVERY"` // frames between snapshot broadcasts
}

// DefaultConfig returns a disabled feed
func DefaultConfig() Config {
	return Config{
		SnapshotEvery: constants.SpectatorSnapshotEvery,
	}
}

// Enabled reports whether a listen address is configured
func (c Config) Enabled() bool {
	return c.Addr != ""
}

func (c Config) Validate() error {
	if c.SnapshotEvery <= 0 {
		return fmt.Errorf("spectator SNAPSHOT_EVERY must be positive, got %d", c.SnapshotEvery)
	}
	return nil
}
