package input

import (
	"time"

	"github.com/lixenwraith/asparagus/core"
)

// Controls is a read-only view of the held flags
type Controls struct {
	Left, Right bool
}

// Held reports whether the given side is held
func (c Controls) Held(side core.Side) bool {
	switch side {
	case core.SideLeft:
		return c.Left
	case core.SideRight:
		return c.Right
	default:
		return false
	}
}

// Latch tracks held directions and debounces tap impulses per direction
type Latch struct {
	held     [2]bool
	lastTap  [2]time.Time // zero value means never tapped
	cooldown time.Duration
}

// NewLatch creates a latch with the given per-direction tap cooldown
func NewLatch(cooldown time.Duration) *Latch {
	return &Latch{cooldown: cooldown}
}

// Press marks a side held and reports whether the edge produces a tap impulse
// Presses of an already held side are not edges and are ignored
func (l *Latch) Press(side core.Side, now time.Time) bool {
	i := side.Index()
	if i < 0 || l.held[i] {
		return false
	}
	l.held[i] = true

	last := l.lastTap[i]
	if !last.IsZero() && now.Sub(last) <= l.cooldown {
		return false
	}
	l.lastTap[i] = now
	return true
}

// Release clears the held flag of a side
func (l *Latch) Release(side core.Side) {
	if i := side.Index(); i >= 0 {
		l.held[i] = false
	}
}

// Held reports whether the side is currently held
func (l *Latch) Held(side core.Side) bool {
	i := side.Index()
	return i >= 0 && l.held[i]
}

// Controls returns a copy of both held flags
func (l *Latch) Controls() Controls {
	return Controls{Left: l.held[0], Right: l.held[1]}
}
