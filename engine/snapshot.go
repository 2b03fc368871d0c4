package engine

import (
	"time"

	"github.com/lixenwraith/asparagus/core"
	"github.com/lixenwraith/asparagus/pose"
)

// Snapshot is the read-only view presenters draw from
type Snapshot struct {
	Frame int64
	Time  time.Time

	Angle           float64
	AngularVelocity float64
	Drift           float64
	Inner           float64 // upper layer rotation relative to the plank

	Pose         pose.Pose
	Alive        bool
	Recovering   bool
	LastLossSide core.Side

	Score time.Duration
	Best  time.Duration
}

// Snapshot captures the current frame
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Frame:           g.frame,
		Time:            g.now,
		Angle:           g.state.Angle,
		AngularVelocity: g.state.AngularVelocity,
		Drift:           g.state.Drift,
		Inner:           g.pose.Inner(),
		Pose:            g.pose.Pose(),
		Alive:           g.state.Alive,
		Recovering:      g.recovery != nil,
		LastLossSide:    g.state.LastLossSide,
		Score:           g.state.ElapsedScore,
		Best:            g.state.BestScore,
	}
}
