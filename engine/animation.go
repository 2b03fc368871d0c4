package engine

import "github.com/lixenwraith/asparagus/core"

// AnimationPlayer is the contract of a character animation
// Implementations complete asynchronously and report through the OnComplete callback
type AnimationPlayer interface {
	// PlayForward plays from the given frame toward the last one
	PlayForward(fromFrame int)
	// PlayBackward plays from the last frame back to frame 0
	PlayBackward()
	// StopAndRestore stops playback and shows the given frame
	StopAndRestore(frame int)
	// OnComplete replaces the single completion subscription, nil detaches it
	// The callback fires once per finished non-looping play
	OnComplete(fn func())
}

// Presentation holds the three character animations
// Any of them may be nil until loaded, every call site skips nil players
type Presentation struct {
	Base  AnimationPlayer
	Right AnimationPlayer
	Left  AnimationPlayer
}

// For returns the directional player of side, nil for SideNone
func (p Presentation) For(side core.Side) AnimationPlayer {
	switch side {
	case core.SideRight:
		return p.Right
	case core.SideLeft:
		return p.Left
	default:
		return nil
	}
}

func (p Presentation) all() [3]AnimationPlayer {
	return [3]AnimationPlayer{p.Base, p.Right, p.Left}
}

func playForward(a AnimationPlayer, frame int) {
	if a != nil {
		a.PlayForward(frame)
	}
}

func stopAndRestore(a AnimationPlayer, frame int) {
	if a != nil {
		a.StopAndRestore(frame)
	}
}

func onComplete(a AnimationPlayer, fn func()) {
	if a != nil {
		a.OnComplete(fn)
	}
}
