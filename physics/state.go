package physics

import (
	"time"

	"github.com/lixenwraith/asparagus/core"
)

// State is the complete simulation state of the plank
// Owned by the Integrator, mutated only by Advance, Kick and the reset/recovery operations
type State struct {
	Angle           float64 // radians, zero is level, positive tilts right
	AngularVelocity float64 // added to Angle once per integration step, always within ±MaxAngularVelocity

	Drift           float64 // current destabilizing torque
	DriftTarget     float64 // torque the drift eases toward
	LastDriftChange time.Time

	StartTime    time.Time
	ElapsedScore time.Duration
	BestScore    time.Duration // process lifetime only

	Alive        bool
	BiasSign     int // -1, 0, 1
	LastLossSide core.Side
}
