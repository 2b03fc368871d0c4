package engine

import (
	"time"

	"github.com/lixenwraith/asparagus/constants"
	"github.com/lixenwraith/asparagus/core"
	"github.com/lixenwraith/asparagus/input"
	"github.com/lixenwraith/asparagus/physics"
	"github.com/lixenwraith/asparagus/pose"
)

// Game owns the complete simulation of one player
// Not safe for concurrent use, every method runs on the frame loop
type Game struct {
	tuning     physics.Tuning
	state      physics.State
	latch      *input.Latch
	integrator *physics.Integrator
	pose       *pose.Machine
	anims      Presentation

	recovery *RecoverySession
	sessions uint64 // last issued recovery session ID

	events *EventQueue
	frame  int64
	now    time.Time // timestamp of the latest operation, used by completion callbacks
}

// NewGame creates a game and starts the first round at now
// rng feeds the drift generator, pass a seeded source for reproducible rounds
func NewGame(t physics.Tuning, rng physics.Source, now time.Time, anims Presentation) *Game {
	g := &Game{
		tuning:     t,
		latch:      input.NewLatch(t.TapCooldown),
		integrator: physics.NewIntegrator(t, rng),
		pose: pose.NewMachine(pose.Config{
			Gain:             t.StabilizeGain,
			Smooth:           t.StabilizeSmooth,
			ReferenceFrameMs: constants.ReferenceFrameMs,
			Duration:         t.TransitionDuration,
		}),
		anims:  anims,
		events: NewEventQueue(),
	}
	g.HardReset(now)
	return g
}

// Events returns the queue the game pushes to
func (g *Game) Events() *EventQueue {
	return g.events
}

// State returns a copy of the simulation state
func (g *Game) State() physics.State {
	return g.state
}

// Pose returns the current pose
func (g *Game) Pose() pose.Pose {
	return g.pose.Pose()
}

// Recovery returns a copy of the active recovery session
func (g *Game) Recovery() (RecoverySession, bool) {
	if g.recovery == nil {
		return RecoverySession{}, false
	}
	return *g.recovery, true
}

// Update advances one frame
// Order: recovery tween or physics, loss handling, pose step, settled-pose animation
func (g *Game) Update(now time.Time, dt time.Duration) {
	g.frame++
	g.now = now

	if g.recovery != nil {
		g.stepRecovery(now)
	} else if g.state.Alive {
		steady := g.pose.Pose() == pose.Steady
		if loss, lost := g.integrator.Advance(&g.state, dt, now, g.latch.Controls(), steady); lost {
			g.onLoss(loss, now)
		}
	}

	if side, settled := g.pose.Step(g.state.Angle, dt, now); settled {
		playForward(g.anims.For(side), 0)
		g.push(EventPoseSettled, SidePayload{Side: side}, now)
	}
}

// Press latches a held direction, an accepted edge kicks the plank while a round runs
func (g *Game) Press(side core.Side, now time.Time) {
	if !g.latch.Press(side, now) {
		return
	}
	if g.state.Alive && g.recovery == nil {
		g.integrator.Kick(&g.state, side)
	}
}

// Release clears a held direction
func (g *Game) Release(side core.Side) {
	g.latch.Release(side)
}

// RequestRetry rewinds a lost round, or hard resets when no rewind applies
// A retry during the loss transition rewinds, a retry during a rewind hard resets
func (g *Game) RequestRetry(now time.Time) {
	g.now = now
	if g.state.LastLossSide != core.SideNone && g.recovery == nil {
		g.startRecovery(g.state.LastLossSide, now)
		return
	}
	g.HardReset(now)
}

// HardReset unconditionally starts a fresh round
// Supersedes any transition or recovery, late completion signals are ignored
func (g *Game) HardReset(now time.Time) {
	g.now = now
	g.recovery = nil

	for _, a := range g.anims.all() {
		onComplete(a, nil)
		stopAndRestore(a, 0)
	}

	g.pose.SetImmediate(pose.Steady)
	g.pose.ResetFilter()
	g.integrator.Reset(&g.state, now)

	playForward(g.anims.Base, 0)
	g.push(EventRoundStarted, nil, now)
}

func (g *Game) onLoss(loss physics.Loss, now time.Time) {
	g.push(EventRoundLost, RoundLostPayload{
		Side:  loss.Side,
		Score: loss.Score,
		Best:  loss.Best,
	}, now)
	g.pose.BeginTransition(loss.Side, now)
}

func (g *Game) push(t EventType, payload any, now time.Time) {
	g.events.Push(GameEvent{
		Type:      t,
		Payload:   payload,
		Frame:     g.frame,
		Timestamp: now,
	})
}
