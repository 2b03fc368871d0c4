package config

import (
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/asparagus/constants"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.FrameInterval != constants.FrameUpdateInterval {
		t.Errorf("Expected frame interval %v, got %v", constants.FrameUpdateInterval, cfg.FrameInterval)
	}
	if cfg.Tuning.FallAngle != constants.FallAngle {
		t.Errorf("Expected default fall angle %v, got %v", constants.FallAngle, cfg.Tuning.FallAngle)
	}
	if cfg.Spectator.Enabled() {
		t.Error("Expected spectator feed disabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ASPARAGUS_SEED", "42")
	t.Setenv("ASPARAGUS_DEBUG", "true")
	t.Setenv("ASPARAGUS_KEY_HOLD", "300ms")
	t.Setenv("ASPARAGUS_AUDIO_VOLUME", "0.25")
	t.Setenv("ASPARAGUS_SPECTATOR_ADDR", ":8089")
	t.Setenv("ASPARAGUS_TUNING_TAP_IMPULSE", "0.1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Seed != 42 || !cfg.Debug {
		t.Errorf("Expected seed 42 and debug on, got %d %v", cfg.Seed, cfg.Debug)
	}
	if cfg.KeyHold != 300*time.Millisecond {
		t.Errorf("Expected key hold 300ms, got %v", cfg.KeyHold)
	}
	if cfg.Audio.Volume != 0.25 {
		t.Errorf("Expected volume 0.25, got %v", cfg.Audio.Volume)
	}
	if cfg.Spectator.Addr != ":8089" {
		t.Errorf("Expected spectator addr :8089, got %q", cfg.Spectator.Addr)
	}
	if cfg.Tuning.TapImpulse != 0.1 {
		t.Errorf("Expected tap impulse 0.1, got %v", cfg.Tuning.TapImpulse)
	}
	// Unset tuning keeps its default
	if cfg.Tuning.Damping != constants.Damping {
		t.Errorf("Expected default damping %v, got %v", constants.Damping, cfg.Tuning.Damping)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
		want string
	}{
		{"malformed duration", "ASPARAGUS_FRAME_INTERVAL", "soon", "parse env"},
		{"non-positive interval", "ASPARAGUS_FRAME_INTERVAL", "0s", "FRAME_INTERVAL"},
		{"volume out of range", "ASPARAGUS_AUDIO_VOLUME", "2", "VOLUME"},
		{"bad snapshot cadence", "ASPARAGUS_SPECTATOR_SNAPSHOT_EVERY", "0", "SNAPSHOT_EVERY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			if err == nil {
				t.Fatal("Expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}
