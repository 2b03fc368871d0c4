package input

import "github.com/lixenwraith/asparagus/core"

// IntentType is the semantic action a key or pointer event maps to
type IntentType uint8

const (
	IntentNone IntentType = iota
	IntentLeft
	IntentRight
	IntentRetry
	IntentQuit
)

// Side returns the direction of a directional intent, SideNone otherwise
func (i IntentType) Side() core.Side {
	switch i {
	case IntentLeft:
		return core.SideLeft
	case IntentRight:
		return core.SideRight
	default:
		return core.SideNone
	}
}

func (i IntentType) String() string {
	switch i {
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	case IntentRetry:
		return "retry"
	case IntentQuit:
		return "quit"
	default:
		return "none"
	}
}
