package physics

import (
	"math"
	"time"

	"github.com/lixenwraith/asparagus/core"
)

// Controls reports held directions, input.Controls satisfies it
type Controls interface {
	Held(side core.Side) bool
}

// Loss describes the end of a round
type Loss struct {
	Side  core.Side
	Score time.Duration
	Best  time.Duration
	Angle float64
}

// Integrator advances the plank one frame at a time
type Integrator struct {
	tuning Tuning
	drift  *DriftGenerator
}

// NewIntegrator creates an integrator whose drift draws from rng
func NewIntegrator(t Tuning, rng Source) *Integrator {
	return &Integrator{
		tuning: t,
		drift:  NewDriftGenerator(t, rng),
	}
}

// Tuning returns the integrator's tuning
func (in *Integrator) Tuning() Tuning {
	return in.tuning
}

// Drift returns the drift generator sharing the integrator's random source
func (in *Integrator) Drift() *DriftGenerator {
	return in.drift
}

// Advance integrates one frame of an alive round
// steady enables the early pose-on loss thresholds, FallAngle applies in every pose
// Returns the loss when this frame ended the round
func (in *Integrator) Advance(s *State, dt time.Duration, now time.Time, controls Controls, steady bool) (Loss, bool) {
	if !s.Alive {
		return Loss{}, false
	}
	t := &in.tuning
	dtMs := Millis(dt)

	s.ElapsedScore = now.Sub(s.StartTime)
	in.drift.Update(s, dtMs, now)

	v := s.AngularVelocity
	v += s.Drift * dtMs
	v += t.InstabilityGain * s.Angle * dtMs

	// Control force ignores the tilt sign so the player can push through level
	if controls != nil {
		if controls.Held(core.SideRight) {
			v += t.HoldForce * dtMs
		}
		if controls.Held(core.SideLeft) {
			v -= t.HoldForce * dtMs
		}
	}

	s.BiasSign = commitBias(s.BiasSign, s.Angle, t)
	v += t.CommitPush * float64(s.BiasSign) * dtMs

	v = Damp(v, t.Damping, dtMs)
	s.AngularVelocity = Clamp(v, t.MaxAngularVelocity)
	s.Angle += s.AngularVelocity

	side := in.lossSide(s.Angle, steady)
	if side == core.SideNone {
		return Loss{}, false
	}
	return in.Lose(s, now, side)
}

// Kick applies a tap impulse toward side
// The velocity is left unclamped until the next Advance, so opposite kicks in one frame cancel
func (in *Integrator) Kick(s *State, side core.Side) {
	s.AngularVelocity += side.Sign() * in.tuning.TapImpulse
}

// Lose ends the round once, recording score and best
func (in *Integrator) Lose(s *State, now time.Time, side core.Side) (Loss, bool) {
	if !s.Alive {
		return Loss{}, false
	}
	score := now.Sub(s.StartTime)
	s.ElapsedScore = score
	if score > s.BestScore {
		s.BestScore = score
	}
	s.Alive = false
	s.LastLossSide = side

	return Loss{
		Side:  side,
		Score: score,
		Best:  s.BestScore,
		Angle: s.Angle,
	}, true
}

// Reset discards the round and starts a fresh one, the best score is kept
func (in *Integrator) Reset(s *State, now time.Time) {
	*s = State{
		BestScore:       s.BestScore,
		Alive:           true,
		StartTime:       now,
		LastDriftChange: now,
	}
	in.drift.SeedReset(s)
}

// Freeze stops the simulation for a recovery, the angle is left to the recovery tween
func (in *Integrator) Freeze(s *State) {
	s.Alive = false
	s.AngularVelocity = 0
	s.Drift = 0
	s.DriftTarget = 0
	s.BiasSign = 0
}

// Restart begins a new round after a completed recovery
func (in *Integrator) Restart(s *State, now time.Time) {
	s.Angle = 0
	s.AngularVelocity = 0
	s.BiasSign = 0
	s.LastLossSide = core.SideNone
	s.Alive = true
	s.StartTime = now
	s.LastDriftChange = now
	s.ElapsedScore = 0
	in.drift.SeedRecover(s)
}

// lossSide applies the steady pose-on thresholds first, then the fall angle
func (in *Integrator) lossSide(angle float64, steady bool) core.Side {
	if steady {
		if angle > in.tuning.RightPoseOn {
			return core.SideRight
		}
		if angle < in.tuning.LeftPoseOn {
			return core.SideLeft
		}
	}
	if math.Abs(angle) > in.tuning.FallAngle {
		return core.SideOf(angle)
	}
	return core.SideNone
}

// commitBias locks the bias above AngleCommit and releases it under CommitRelease*AngleCommit
func commitBias(bias int, angle float64, t *Tuning) int {
	a := math.Abs(angle)
	switch {
	case a > t.AngleCommit:
		return int(core.SideOf(angle))
	case a < t.AngleCommit*t.CommitRelease:
		return 0
	default:
		return bias
	}
}
