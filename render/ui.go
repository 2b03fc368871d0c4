package render

import (
	"github.com/lixenwraith/asparagus/engine"
	"github.com/lixenwraith/asparagus/input"
)

// UI toggles the control and retry affordances from core events
// Accessed only from the frame loop
type UI struct {
	layout   *Layout
	controls bool
	retry    bool
}

// NewUI creates the UI with controls visible
func NewUI(layout *Layout) *UI {
	return &UI{layout: layout, controls: true}
}

// ShowControls shows the direction controls and hides retry
func (u *UI) ShowControls() {
	u.controls = true
	u.retry = false
}

// ShowRetry hides the direction controls and shows retry
func (u *UI) ShowRetry() {
	u.controls = false
	u.retry = true
}

func (u *UI) ControlsVisible() bool { return u.controls }
func (u *UI) RetryVisible() bool    { return u.retry }

// HandleEvent implements engine.EventHandler
func (u *UI) HandleEvent(ev engine.GameEvent) {
	switch ev.Type {
	case engine.EventRoundStarted, engine.EventRecoveryStarted:
		u.ShowControls()
	case engine.EventRoundLost:
		u.ShowRetry()
	}
}

// EventTypes implements engine.EventHandler
func (u *UI) EventTypes() []engine.EventType {
	return []engine.EventType{
		engine.EventRoundStarted,
		engine.EventRoundLost,
		engine.EventRecoveryStarted,
	}
}

// HitTest maps a pointer cell to the intent of the visible affordance under it
func (u *UI) HitTest(x, y int) input.IntentType {
	switch {
	case u.retry && u.layout.Retry.Contains(x, y):
		return input.IntentRetry
	case u.controls && u.layout.LeftControl.Contains(x, y):
		return input.IntentLeft
	case u.controls && u.layout.RightControl.Contains(x, y):
		return input.IntentRight
	default:
		return input.IntentNone
	}
}
