package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/asparagus/core"
)

// Target receives debounced direction edges and retry requests
type Target interface {
	Press(side core.Side, now time.Time)
	Release(side core.Side)
	RequestRetry(now time.Time)
}

// Controller turns terminal key and pointer events into true press/release edges
// Terminals report no key release, a keyboard hold lasts until no repeat arrives within the hold window
type Controller struct {
	keys   *KeyTable
	target Target
	hold   time.Duration

	keySeen [2]time.Time // last key event per side, zero when not held by keyboard
	pointer core.Side    // side held by the pointer, SideNone when up
	onRetry bool         // pointer went down on retry, cleared by PointerUp
}

// NewController creates a controller forwarding edges to target
func NewController(target Target, keys *KeyTable, hold time.Duration) *Controller {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Controller{
		keys:   keys,
		target: target,
		hold:   hold,
	}
}

// HandleKey processes a key event and returns true when the player asked to quit
func (c *Controller) HandleKey(ev *tcell.EventKey, now time.Time) bool {
	intent := c.keys.Lookup(ev)
	switch intent {
	case IntentLeft, IntentRight:
		side := intent.Side()
		wasHeld := c.isHeld(side)
		c.keySeen[side.Index()] = now
		if !wasHeld {
			c.target.Press(side, now)
		}
	case IntentRetry:
		c.target.RequestRetry(now)
	case IntentQuit:
		return true
	}
	return false
}

// PointerDown handles a button press or drag over a UI region
// Retry fires once per press, drag reports over the button are ignored until PointerUp
func (c *Controller) PointerDown(intent IntentType, now time.Time) {
	side := intent.Side()
	if side == core.SideNone {
		// Leaving a control region counts as pointer release
		c.releasePointer()
		if intent == IntentRetry && !c.onRetry {
			c.onRetry = true
			c.target.RequestRetry(now)
		}
		return
	}
	if c.pointer == side {
		return
	}
	c.releasePointer()

	wasHeld := c.isHeld(side)
	c.pointer = side
	if !wasHeld {
		c.target.Press(side, now)
	}
}

// PointerUp ends the pointer press
func (c *Controller) PointerUp() {
	c.onRetry = false
	c.releasePointer()
}

func (c *Controller) releasePointer() {
	side := c.pointer
	if side == core.SideNone {
		return
	}
	c.pointer = core.SideNone
	if !c.isHeld(side) {
		c.target.Release(side)
	}
}

// Expire releases keyboard holds whose repeat stream stopped, called once per frame
func (c *Controller) Expire(now time.Time) {
	for _, side := range core.Sides {
		i := side.Index()
		if c.keySeen[i].IsZero() || now.Sub(c.keySeen[i]) <= c.hold {
			continue
		}
		c.keySeen[i] = time.Time{}
		if !c.isHeld(side) {
			c.target.Release(side)
		}
	}
}

func (c *Controller) isHeld(side core.Side) bool {
	return !c.keySeen[side.Index()].IsZero() || c.pointer == side
}
