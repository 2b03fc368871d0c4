package pose

import (
	"math"
	"time"

	"github.com/lixenwraith/asparagus/core"
)

// Config holds the filter and transition parameters
type Config struct {
	Gain             float64       // counter-rotation target is angle*Gain
	Smooth           float64       // filter coefficient per reference frame
	ReferenceFrameMs float64       // frame length Smooth is expressed against
	Duration         time.Duration // loss transition length
}

// Transition is the active loss transition record
type Transition struct {
	Active     bool
	Target     core.Side
	Start      time.Time
	StartInner float64
}

// Machine is the pose state machine
type Machine struct {
	cfg        Config
	pose       Pose
	transition Transition

	counter float64 // smoothed counter-rotation while steady
	inner   float64 // rotation applied to the upper layer
}

// NewMachine creates a machine in the steady pose
func NewMachine(cfg Config) *Machine {
	return &Machine{cfg: cfg}
}

func (m *Machine) Pose() Pose             { return m.pose }
func (m *Machine) Transition() Transition { return m.transition }
func (m *Machine) Counter() float64       { return m.counter }

// Inner returns the rotation of the upper layer relative to the plank
func (m *Machine) Inner() float64 { return m.inner }

// BeginTransition starts the loss transition toward side, only from Steady
func (m *Machine) BeginTransition(side core.Side, now time.Time) bool {
	if m.pose != Steady || side == core.SideNone {
		return false
	}
	m.transition = Transition{
		Active:     true,
		Target:     side,
		Start:      now,
		StartInner: -m.counter,
	}
	m.pose = TransitionTo(side)
	m.inner = m.transition.StartInner
	return true
}

// Step advances the filter or the transition for one frame
// Returns the side when a transition settled during this step
func (m *Machine) Step(angle float64, dt time.Duration, now time.Time) (core.Side, bool) {
	switch {
	case m.pose == Steady:
		dtMs := float64(dt) / float64(time.Millisecond)
		alpha := 1 - math.Pow(1-m.cfg.Smooth, dtMs/m.cfg.ReferenceFrameMs)
		m.counter += (angle*m.cfg.Gain - m.counter) * alpha
		m.inner = -m.counter
		return core.SideNone, false

	case m.pose.Transitioning():
		if !m.transition.Active {
			return core.SideNone, false
		}
		k := float64(now.Sub(m.transition.Start)) / float64(m.cfg.Duration)
		k = math.Max(0, math.Min(1, k))
		m.inner = m.transition.StartInner * (1 - k)
		if k < 1 {
			return core.SideNone, false
		}
		side := m.transition.Target
		m.transition.Active = false
		m.pose = PosedTo(side)
		m.inner = 0
		return side, true

	default:
		m.inner = 0
		return core.SideNone, false
	}
}

// SetImmediate switches pose without a transition, cancelling any in flight
func (m *Machine) SetImmediate(p Pose) {
	m.transition = Transition{}
	m.pose = p
	if p == Steady {
		m.inner = -m.counter
	} else {
		m.inner = 0
	}
}

// ResetFilter zeroes the smoothed counter-rotation
func (m *Machine) ResetFilter() {
	m.counter = 0
	if m.pose == Steady {
		m.inner = 0
	}
}
