// Package pose derives the discrete character pose from loss and recovery events.
//
// States:
//
//	Steady ──Loss(side)──▶ Transitioning{side} ──TransitionDuration──▶ Posed{side}
//	Posed{side} ──recovery finished / hard reset──▶ Steady
//
// While Steady the upper layer counter-rotates against the plank tilt through an
// exponential filter normalized to a reference frame, so its responsiveness does
// not depend on the frame rate. The transition eases that counter-rotation to zero
// over a fixed duration, independent of the (already frozen) plank angle.
package pose

import "github.com/lixenwraith/asparagus/core"

// Pose is the discrete visual state of the character
type Pose uint8

const (
	Steady Pose = iota
	TransitioningRight
	TransitioningLeft
	PosedRight
	PosedLeft
)

// TransitionTo returns the transitioning pose toward side
func TransitionTo(side core.Side) Pose {
	if side == core.SideRight {
		return TransitioningRight
	}
	return TransitioningLeft
}

// PosedTo returns the settled pose on side
func PosedTo(side core.Side) Pose {
	if side == core.SideRight {
		return PosedRight
	}
	return PosedLeft
}

// Side returns the direction of a non-steady pose
func (p Pose) Side() core.Side {
	switch p {
	case TransitioningRight, PosedRight:
		return core.SideRight
	case TransitioningLeft, PosedLeft:
		return core.SideLeft
	default:
		return core.SideNone
	}
}

// Transitioning reports whether the pose is mid-transition
func (p Pose) Transitioning() bool {
	return p == TransitioningRight || p == TransitioningLeft
}

// Posed reports whether the pose settled on a side
func (p Pose) Posed() bool {
	return p == PosedRight || p == PosedLeft
}

func (p Pose) String() string {
	switch p {
	case Steady:
		return "steady"
	case TransitioningRight:
		return "transitioning-right"
	case TransitioningLeft:
		return "transitioning-left"
	case PosedRight:
		return "posed-right"
	case PosedLeft:
		return "posed-left"
	default:
		return "unknown"
	}
}
