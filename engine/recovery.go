package engine

import (
	"math"
	"time"

	"github.com/lixenwraith/asparagus/core"
	"github.com/lixenwraith/asparagus/pose"
)

// RecoverySession joins the two concurrent halves of a rewind
// Exists only while recovering, the round restarts once both halves are done
type RecoverySession struct {
	ID          uint64
	Side        core.Side
	StartTime   time.Time
	FromAngle   float64
	ReverseDone bool // reverse animation reported completion
	TweenDone   bool // angle tween reached level
}

// Complete reports whether both halves finished
func (r *RecoverySession) Complete() bool {
	return r.ReverseDone && r.TweenDone
}

// EaseOutCubic maps [0,1] onto [0,1] decelerating toward 1
func EaseOutCubic(x float64) float64 {
	return 1 - math.Pow(1-x, 3)
}

func (g *Game) startRecovery(side core.Side, now time.Time) {
	g.sessions++
	id := g.sessions
	r := &RecoverySession{
		ID:        id,
		Side:      side,
		StartTime: now,
		FromAngle: g.state.Angle,
	}
	g.recovery = r

	g.integrator.Freeze(&g.state)
	g.pose.SetImmediate(pose.PosedTo(side))
	g.pose.ResetFilter()
	stopAndRestore(g.anims.Base, 0)

	// Detach before attaching so an earlier play cannot fire into this session
	player := g.anims.For(side)
	if player == nil {
		r.ReverseDone = true
	} else {
		player.OnComplete(nil)
		player.OnComplete(func() { g.reverseComplete(id) })
		player.PlayBackward()
	}

	g.push(EventRecoveryStarted, SidePayload{Side: side}, now)
}

func (g *Game) stepRecovery(now time.Time) {
	r := g.recovery
	if r.TweenDone {
		return
	}
	k := float64(now.Sub(r.StartTime)) / float64(g.tuning.RecoverDuration)
	k = math.Max(0, math.Min(1, k))
	g.state.Angle = r.FromAngle * (1 - EaseOutCubic(k))
	if k < 1 {
		return
	}
	r.TweenDone = true
	g.joinRecovery(r, now)
}

// reverseComplete is the completion signal of session id's reverse animation
func (g *Game) reverseComplete(id uint64) {
	r := g.recovery
	if r == nil || r.ID != id || r.ReverseDone {
		return
	}
	r.ReverseDone = true

	player := g.anims.For(r.Side)
	onComplete(player, nil)
	stopAndRestore(player, 0)

	g.joinRecovery(r, g.now)
}

func (g *Game) joinRecovery(r *RecoverySession, now time.Time) {
	if g.recovery != r || !r.Complete() {
		return
	}
	g.finishRecovery(now)
}

func (g *Game) finishRecovery(now time.Time) {
	g.recovery = nil

	g.pose.SetImmediate(pose.Steady)
	g.pose.ResetFilter()
	stopAndRestore(g.anims.Base, 0)
	playForward(g.anims.Base, 0)

	g.integrator.Restart(&g.state, now)

	g.push(EventRecoveryFinished, nil, now)
	g.push(EventRoundStarted, nil, now)
}
