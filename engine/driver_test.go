package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/asparagus/constants"
	"github.com/lixenwraith/asparagus/core"
)

func TestFrameClockDelta(t *testing.T) {
	c := NewFrameClock(40 * time.Millisecond)

	steps := []struct {
		at   time.Duration
		want time.Duration
	}{
		{0, 0},                                          // first frame
		{16 * time.Millisecond, 16 * time.Millisecond},  // normal
		{11 * time.Millisecond, 0},                      // clock went backward
		{111 * time.Millisecond, 40 * time.Millisecond}, // stall clamped
		{151 * time.Millisecond, 40 * time.Millisecond}, // exactly the bound
	}
	for i, s := range steps {
		if got := c.Delta(epoch.Add(s.at)); got != s.want {
			t.Errorf("Step %d: expected %v, got %v", i, s.want, got)
		}
	}
}

// syncRecorder logs presenter syncs and handler dispatches into one ordered log
type syncRecorder struct {
	log    *[]string
	dts    []time.Duration
	onSync func(Snapshot)
}

func (r *syncRecorder) Sync(snap Snapshot, dt time.Duration) {
	*r.log = append(*r.log, "sync")
	r.dts = append(r.dts, dt)
	if r.onSync != nil {
		r.onSync(snap)
	}
}

func (r *syncRecorder) HandleEvent(ev GameEvent) { *r.log = append(*r.log, ev.Type.String()) }
func (r *syncRecorder) EventTypes() []EventType  { return AllEventTypes }

func TestDriverFrameOrder(t *testing.T) {
	rig := newTestRig(1)
	d := NewDriver(rig.game, constants.MaxFrameDelta)

	var log []string
	rec := &syncRecorder{log: &log}
	d.AddPresenter(rec)
	d.AddPresenter(nil)
	d.Router().Register(rec)

	snap := d.Frame(epoch)
	if snap.Frame != 1 || !snap.Alive {
		t.Errorf("Expected first alive frame, got %+v", snap)
	}
	if len(log) != 2 || log[0] != "sync" || log[1] != "RoundStarted" {
		t.Errorf("Expected sync before dispatch, got %v", log)
	}

	d.Frame(epoch.Add(100 * time.Millisecond))
	if len(rec.dts) != 2 || rec.dts[0] != 0 || rec.dts[1] != constants.MaxFrameDelta {
		t.Errorf("Expected deltas [0 %v], got %v", constants.MaxFrameDelta, rec.dts)
	}
}

func TestDriverCompletesRecoveryThroughPresenter(t *testing.T) {
	rig := newTestRig(1)
	g := rig.game
	d := NewDriver(g, constants.MaxFrameDelta)

	var log []string
	rec := &syncRecorder{log: &log}
	// Stands in for an animation that finishes its backward play late in the tween
	rec.onSync = func(snap Snapshot) {
		if snap.Recovering && snap.Angle == 0 {
			rig.right.finish()
		}
	}
	d.AddPresenter(rec)
	d.Router().Register(rec)

	clock := NewMockTimeProvider(epoch)
	d.Frame(clock.Now())
	g.state.Angle = 0.45
	d.Frame(clock.Advance(frame))
	if g.State().Alive {
		t.Fatal("Expected loss")
	}

	g.RequestRetry(clock.Now())
	for i := 0; i < 60; i++ {
		d.Frame(clock.Advance(frame))
	}

	if !g.State().Alive || g.State().LastLossSide != core.SideNone {
		t.Fatalf("Expected recovered round, got %+v", g.State())
	}

	finished, started := 0, 0
	for _, entry := range log {
		switch entry {
		case "RecoveryFinished":
			finished++
		case "RoundStarted":
			started++
		}
	}
	if finished != 1 || started != 2 {
		t.Errorf("Expected 1 RecoveryFinished and 2 RoundStarted, got %d and %d in %v", finished, started, log)
	}
}
