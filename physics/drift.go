package physics

import (
	"time"

	"github.com/lixenwraith/asparagus/constants"
)

// Soft start ramps the ceiling from this fraction to full strength
const (
	softStartFloor = 0.25
	softStartSpan  = 0.75
)

// New drift targets land in [driftMagFloor, driftMagFloor+driftMagSpan] of the ceiling
const (
	driftMagFloor = 0.65
	driftMagSpan  = 0.35
)

// Source is a uniform random source in [0, 1), *rand.Rand satisfies it
type Source interface {
	Float64() float64
}

// DriftGenerator produces the slowly varying destabilizing torque
// Its only state lives in State (Drift, DriftTarget, LastDriftChange)
type DriftGenerator struct {
	tuning Tuning
	rng    Source
}

// NewDriftGenerator creates a generator drawing from rng
func NewDriftGenerator(t Tuning, rng Source) *DriftGenerator {
	return &DriftGenerator{tuning: t, rng: rng}
}

// Ceiling returns the maximum drift magnitude after elapsed round time
func (g *DriftGenerator) Ceiling(elapsed time.Duration) float64 {
	if elapsed < 0 {
		elapsed = 0
	}
	ceiling := g.tuning.DriftMaxStart + g.tuning.DriftMaxGrowth*Millis(elapsed)
	if elapsed < g.tuning.SoftStart {
		k := Millis(elapsed) / Millis(g.tuning.SoftStart)
		ceiling *= softStartFloor + softStartSpan*k
	}
	return ceiling
}

// Update draws a new target when the change interval elapsed and eases drift toward it
func (g *DriftGenerator) Update(s *State, dtMs float64, now time.Time) {
	ceiling := g.Ceiling(now.Sub(s.StartTime))

	if now.Sub(s.LastDriftChange) > g.tuning.DriftChangeEvery {
		s.LastDriftChange = now

		var sign float64
		if s.Angle > g.tuning.DriftBiasAngle || s.Angle < -g.tuning.DriftBiasAngle {
			sign = sideSign(s.Angle)
		} else {
			sign = g.randomSign()
		}
		mag := (driftMagFloor + driftMagSpan*g.rng.Float64()) * ceiling
		s.DriftTarget = sign * mag
	}

	s.Drift = EaseToward(s.Drift, s.DriftTarget, g.tuning.DriftEase, dtMs)
}

// Seed sets a fresh small drift: target = ±DriftMaxStart*(base+span*u), drift = target*carry
func (g *DriftGenerator) Seed(s *State, base, span, carry float64) {
	sign := g.randomSign()
	mag := g.tuning.DriftMaxStart * (base + span*g.rng.Float64())
	s.DriftTarget = sign * mag
	s.Drift = s.DriftTarget * carry
}

// SeedReset seeds drift for a hard reset
func (g *DriftGenerator) SeedReset(s *State) {
	g.Seed(s, constants.ResetSeedBase, constants.ResetSeedSpan, constants.ResetSeedCarry)
}

// SeedRecover seeds a gentler drift for a round started by recovery
func (g *DriftGenerator) SeedRecover(s *State) {
	g.Seed(s, constants.RecoverSeedBase, constants.RecoverSeedSpan, constants.RecoverSeedCarry)
}

func (g *DriftGenerator) randomSign() float64 {
	if g.rng.Float64() < 0.5 {
		return -1
	}
	return 1
}

func sideSign(v float64) float64 {
	if v > 0 {
		return 1
	}
	return -1
}
