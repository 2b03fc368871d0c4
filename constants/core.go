package constants

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the default frame driver interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single frame step so one slow frame cannot produce an oversized integration step
	MaxFrameDelta = 40 * time.Millisecond

	// ReferenceFrameMs is the frame length the stabilization filter coefficient is expressed against
	ReferenceFrameMs = 16.67
)

// Input Timing
const (
	// TapCooldown is the minimum gap between two tap impulses in the same direction
	TapCooldown = 110 * time.Millisecond

	// KeyHoldWindow is how long a keyboard direction stays held without a repeat event
	// Terminals report no key release, so holds are inferred from auto-repeat
	KeyHoldWindow = 500 * time.Millisecond
)

// Event Queue
const (
	// EventQueueSize bounds pending events, the oldest is dropped beyond it
	EventQueueSize = 32
)
