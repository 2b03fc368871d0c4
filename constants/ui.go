package constants

import "time"

// Plank Geometry (ratios of the terminal size)
const (
	// BoardYRatio places the plank pivot at this fraction of the screen height
	BoardYRatio = 0.75

	// PlankLengthRatio is the plank length as a fraction of the screen width
	PlankLengthRatio = 0.70

	// CellAspect compensates for terminal cells being roughly twice as tall as wide
	CellAspect = 0.5
)

// Rocks
const (
	RocksScale    = 0.8
	RocksMinWidth = 8
)

// Character Art
const (
	// CharacterPivotX/Y are the pivot of the character art as a fraction of its size
	CharacterPivotX = 256.0 / 512.0
	CharacterPivotY = 490.0 / 512.0

	// CharacterHeightRatio caps the art height relative to the screen
	CharacterHeightRatio = 0.8

	// CharacterMinWidth is the smallest width the art is laid out at
	CharacterMinWidth = 6
)

// Animation Timing
const (
	// IdleFrameDuration is the frame length of the looping idle pose
	IdleFrameDuration = 220 * time.Millisecond

	// FallFrameDuration is the frame length of the directional fall animations
	FallFrameDuration = 60 * time.Millisecond
)

// HUD Text
const (
	ControlLeftLabel  = " ◀ LEFT "
	ControlRightLabel = " RIGHT ▶ "
	RetryLabel        = " ↻ RETRY (r) "
)
