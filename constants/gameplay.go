package constants

import "time"

// Loss Thresholds
const (
	// FallAngle is the tilt (radians) beyond which the round is lost in any pose
	FallAngle = 0.5

	// RightPoseOn is the tilt that triggers the right fall while the pose is steady
	RightPoseOn = 0.42

	// LeftPoseOn is the tilt that triggers the left fall while the pose is steady
	LeftPoseOn = -0.42
)

// Integration
const (
	// Damping is the per-millisecond velocity damping factor
	Damping = 0.0011

	// MaxAngularVelocity clamps the angular velocity after every step
	MaxAngularVelocity = 0.0030

	// InstabilityGain scales the positive feedback from the current tilt
	InstabilityGain = 0.00055
)

// Drift
const (
	DriftMaxStart  = 0.00018
	DriftMaxGrowth = 0.00000018

	// DriftChangeEvery is the interval between drift target draws
	DriftChangeEvery = 2600 * time.Millisecond

	// SoftStart is the ramp during which the drift ceiling grows from 25% to full strength
	SoftStart = 1800 * time.Millisecond

	// DriftEase is the per-millisecond easing rate of drift toward its target
	DriftEase = 0.012

	// DriftBiasAngle is the tilt beyond which new drift targets follow the tilt direction
	DriftBiasAngle = 0.02
)

// Player Control
const (
	// HoldForce is applied per millisecond in the held direction regardless of tilt
	HoldForce = 0.0035

	// TapImpulse is the instantaneous velocity kick of a press edge
	TapImpulse = 0.0080
)

// Commit Bias
const (
	// AngleCommit locks the bias sign once exceeded
	AngleCommit = 0.06

	// CommitRelease is the fraction of AngleCommit under which the bias unlocks
	CommitRelease = 0.6

	// CommitPush is the per-millisecond push in the locked direction
	CommitPush = 0.00012
)

// Drift Seeding (base + span*u, drift = target*carry)
const (
	ResetSeedBase  = 0.6
	ResetSeedSpan  = 0.4
	ResetSeedCarry = 0.5

	RecoverSeedBase  = 0.5
	RecoverSeedSpan  = 0.3
	RecoverSeedCarry = 0.4
)

// Pose & Recovery
const (
	// StabilizeGain scales the tilt the upper layer counter-rotates against
	StabilizeGain = 1.0

	// StabilizeSmooth is the filter coefficient per reference frame
	StabilizeSmooth = 0.18

	// TransitionDuration is the loss transition from steady to posed
	TransitionDuration = 140 * time.Millisecond

	// RecoverDuration is the ease-out tween of the plank back to level
	RecoverDuration = 700 * time.Millisecond
)
