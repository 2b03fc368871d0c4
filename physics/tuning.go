package physics

import (
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/asparagus/constants"
)

// Tuning holds every simulation knob, env tags are relative to the tuning prefix
type Tuning struct {
	// Loss thresholds
	FallAngle   float64 `env:"FALL_ANGLE"`
	RightPoseOn float64 `env:"RIGHT_POSE_ON"`
	LeftPoseOn  float64 `env:"LEFT_POSE_ON"`

	// Integration
	Damping            float64 `env:"DAMPING"`
	MaxAngularVelocity float64 `env:"MAX_ANGVEL"`
	InstabilityGain    float64 `env:"INSTABILITY_GAIN"`

	// Drift
	DriftMaxStart    float64       `env:"DRIFT_MAX_START"`
	DriftMaxGrowth   float64       `env:"DRIFT_MAX_GROWTH"`
	DriftChangeEvery time.Duration `env:"DRIFT_CHANGE_EVERY"`
	SoftStart        time.Duration `env:"SOFT_START"`
	DriftEase        float64       `env:"DRIFT_EASE"`
	DriftBiasAngle   float64       `env:"DRIFT_BIAS_ANGLE"`

	// Player control
	HoldForce   float64       `env:"HOLD_FORCE"`
	TapImpulse  float64       `env:"TAP_IMPULSE"`
	TapCooldown time.Duration `env:"TAP_COOLDOWN"`

	// Commit bias
	AngleCommit   float64 `env:"ANGLE_COMMIT"`
	CommitRelease float64 `env:"COMMIT_RELEASE"`
	CommitPush    float64 `env:"COMMIT_PUSH"`

	// Pose and recovery
	StabilizeGain      float64       `env:"STABILIZE_GAIN"`
	StabilizeSmooth    float64       `env:"STABILIZE_SMOOTH"`
	TransitionDuration time.Duration `env:"TRANSITION_DURATION"`
	RecoverDuration    time.Duration `env:"RECOVER_DURATION"`

	// Frame driver
	MaxFrameDelta time.Duration `env:"MAX_FRAME_DELTA"`
}

// DefaultTuning returns the shipped game feel
func DefaultTuning() Tuning {
	return Tuning{
		FallAngle:   constants.FallAngle,
		RightPoseOn: constants.RightPoseOn,
		LeftPoseOn:  constants.LeftPoseOn,

		Damping:            constants.Damping,
		MaxAngularVelocity: constants.MaxAngularVelocity,
		InstabilityGain:    constants.InstabilityGain,

		DriftMaxStart:    constants.DriftMaxStart,
		DriftMaxGrowth:   constants.DriftMaxGrowth,
		DriftChangeEvery: constants.DriftChangeEvery,
		SoftStart:        constants.SoftStart,
		DriftEase:        constants.DriftEase,
		DriftBiasAngle:   constants.DriftBiasAngle,

		HoldForce:   constants.HoldForce,
		TapImpulse:  constants.TapImpulse,
		TapCooldown: constants.TapCooldown,

		AngleCommit:   constants.AngleCommit,
		CommitRelease: constants.CommitRelease,
		CommitPush:    constants.CommitPush,

		StabilizeGain:      constants.StabilizeGain,
		StabilizeSmooth:    constants.StabilizeSmooth,
		TransitionDuration: constants.TransitionDuration,
		RecoverDuration:    constants.RecoverDuration,

		MaxFrameDelta: constants.MaxFrameDelta,
	}
}

// Validate rejects values the integrator cannot run with
func (t Tuning) Validate() error {
	floats := []struct {
		name string
		v    float64
	}{
		{"FALL_ANGLE", t.FallAngle},
		{"RIGHT_POSE_ON", t.RightPoseOn},
		{"LEFT_POSE_ON", t.LeftPoseOn},
		{"DAMPING", t.Damping},
		{"MAX_ANGVEL", t.MaxAngularVelocity},
		{"INSTABILITY_GAIN", t.InstabilityGain},
		{"DRIFT_MAX_START", t.DriftMaxStart},
		{"DRIFT_MAX_GROWTH", t.DriftMaxGrowth},
		{"DRIFT_EASE", t.DriftEase},
		{"DRIFT_BIAS_ANGLE", t.DriftBiasAngle},
		{"HOLD_FORCE", t.HoldForce},
		{"TAP_IMPULSE", t.TapImpulse},
		{"ANGLE_COMMIT", t.AngleCommit},
		{"COMMIT_RELEASE", t.CommitRelease},
		{"COMMIT_PUSH", t.CommitPush},
		{"STABILIZE_GAIN", t.StabilizeGain},
		{"STABILIZE_SMOOTH", t.StabilizeSmooth},
	}
	for _, f := range floats {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("tuning %s is not finite", f.name)
		}
	}

	switch {
	case t.FallAngle <= 0:
		return fmt.Errorf("tuning FALL_ANGLE must be positive, got %v", t.FallAngle)
	case t.RightPoseOn <= 0 || t.LeftPoseOn >= 0:
		return fmt.Errorf("tuning pose thresholds must straddle level, got %v/%v", t.LeftPoseOn, t.RightPoseOn)
	case t.MaxAngularVelocity <= 0:
		return fmt.Errorf("tuning MAX_ANGVEL must be positive, got %v", t.MaxAngularVelocity)
	case t.StabilizeSmooth <= 0 || t.StabilizeSmooth > 1:
		return fmt.Errorf("tuning STABILIZE_SMOOTH must be in (0, 1], got %v", t.StabilizeSmooth)
	case t.CommitRelease <= 0 || t.CommitRelease > 1:
		return fmt.Errorf("tuning COMMIT_RELEASE must be in (0, 1], got %v", t.CommitRelease)
	case t.MaxFrameDelta <= 0:
		return fmt.Errorf("tuning MAX_FRAME_DELTA must be positive, got %v", t.MaxFrameDelta)
	case t.DriftChangeEvery <= 0 || t.SoftStart < 0:
		return fmt.Errorf("tuning drift intervals invalid: change=%v soft=%v", t.DriftChangeEvery, t.SoftStart)
	case t.TransitionDuration <= 0 || t.RecoverDuration <= 0:
		return fmt.Errorf("tuning pose durations must be positive: transition=%v recover=%v", t.TransitionDuration, t.RecoverDuration)
	}

	// Damping above 1/MaxFrameDelta would flip velocity sign within a clamped frame
	if t.Damping < 0 || t.Damping*Millis(t.MaxFrameDelta) >= 1 {
		return fmt.Errorf("tuning DAMPING %v unstable for frame delta %v", t.Damping, t.MaxFrameDelta)
	}
	return nil
}
