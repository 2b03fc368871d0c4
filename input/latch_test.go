package input

import (
	"testing"
	"time"

	"github.com/lixenwraith/asparagus/core"
)

func TestLatchTapCooldown(t *testing.T) {
	base := time.Unix(1000, 0)
	l := NewLatch(110 * time.Millisecond)

	if !l.Press(core.SideRight, base) {
		t.Fatal("Expected first press to produce an impulse")
	}
	l.Release(core.SideRight)

	// Second edge inside the cooldown
	if l.Press(core.SideRight, base.Add(60*time.Millisecond)) {
		t.Error("Expected press within cooldown to produce no impulse")
	}
	l.Release(core.SideRight)

	// Exactly at the cooldown boundary is still inside it
	if l.Press(core.SideRight, base.Add(110*time.Millisecond)) {
		t.Error("Expected press at the cooldown boundary to produce no impulse")
	}
	l.Release(core.SideRight)

	if !l.Press(core.SideRight, base.Add(111*time.Millisecond)) {
		t.Error("Expected press after cooldown to produce an impulse")
	}
}

func TestLatchCooldownIsPerDirection(t *testing.T) {
	base := time.Unix(1000, 0)
	l := NewLatch(110 * time.Millisecond)

	if !l.Press(core.SideRight, base) {
		t.Fatal("Expected right impulse")
	}
	if !l.Press(core.SideLeft, base.Add(10*time.Millisecond)) {
		t.Error("Expected left impulse independent of right cooldown")
	}
	c := l.Controls()
	if !c.Left || !c.Right {
		t.Errorf("Expected both sides held, got %+v", c)
	}
}

func TestLatchIgnoresRepeatedPress(t *testing.T) {
	base := time.Unix(1000, 0)
	l := NewLatch(110 * time.Millisecond)

	l.Press(core.SideLeft, base)
	// Held key, not an edge, even long after the cooldown
	if l.Press(core.SideLeft, base.Add(time.Second)) {
		t.Error("Expected press of an already held side to be ignored")
	}
	if !l.Held(core.SideLeft) {
		t.Error("Expected left to stay held")
	}

	l.Release(core.SideLeft)
	if l.Held(core.SideLeft) {
		t.Error("Expected left released")
	}
	if l.Press(core.SideNone, base) {
		t.Error("Expected SideNone press to be ignored")
	}
}

func TestControlsHeld(t *testing.T) {
	c := Controls{Left: true}
	if !c.Held(core.SideLeft) || c.Held(core.SideRight) || c.Held(core.SideNone) {
		t.Errorf("Unexpected Held results for %+v", c)
	}
}
