package render

import "time"

// Animation is a terminal frame animation driven by Step
// Implements engine.AnimationPlayer
type Animation struct {
	frames        []Frame
	frameDuration time.Duration
	loop          bool

	frame     int
	direction int // +1 forward, -1 backward, 0 stopped
	elapsed   time.Duration
	complete  func()
}

// NewAnimation creates a stopped animation showing frame 0
func NewAnimation(frames []Frame, frameDuration time.Duration, loop bool) *Animation {
	return &Animation{
		frames:        frames,
		frameDuration: frameDuration,
		loop:          loop,
	}
}

// PlayForward plays from fromFrame toward the last frame
func (a *Animation) PlayForward(fromFrame int) {
	a.frame = a.clamp(fromFrame)
	a.direction = 1
	a.elapsed = 0
}

// PlayBackward plays from the last frame back to frame 0
func (a *Animation) PlayBackward() {
	a.frame = a.clamp(len(a.frames) - 1)
	a.direction = -1
	a.elapsed = 0
}

// StopAndRestore stops playback and shows frame
func (a *Animation) StopAndRestore(frame int) {
	a.frame = a.clamp(frame)
	a.direction = 0
	a.elapsed = 0
}

// OnComplete replaces the completion callback, nil detaches it
func (a *Animation) OnComplete(fn func()) {
	a.complete = fn
}

// Playing reports whether the animation advances on Step
func (a *Animation) Playing() bool {
	return a.direction != 0
}

// FrameIndex returns the shown frame index
func (a *Animation) FrameIndex() int {
	return a.frame
}

// Current returns the shown frame, nil for an empty animation
func (a *Animation) Current() Frame {
	if len(a.frames) == 0 {
		return nil
	}
	return a.frames[a.frame]
}

// Len returns the frame count
func (a *Animation) Len() int {
	return len(a.frames)
}

// Step advances playback by dt
// A non-looping play stops on its end frame and fires the callback once
func (a *Animation) Step(dt time.Duration) {
	if a.direction == 0 {
		return
	}
	if len(a.frames) == 0 || a.frameDuration <= 0 {
		a.finish()
		return
	}

	a.elapsed += dt
	for a.elapsed >= a.frameDuration {
		a.elapsed -= a.frameDuration
		next := a.frame + a.direction
		if next >= 0 && next < len(a.frames) {
			a.frame = next
			continue
		}
		if a.loop {
			a.frame = (next + len(a.frames)) % len(a.frames)
			continue
		}
		a.finish()
		return
	}
}

// finish stops before notifying, the callback may restart or restore the animation
func (a *Animation) finish() {
	a.direction = 0
	a.elapsed = 0
	if fn := a.complete; fn != nil {
		fn()
	}
}

func (a *Animation) clamp(frame int) int {
	if frame < 0 || len(a.frames) == 0 {
		return 0
	}
	if frame >= len(a.frames) {
		return len(a.frames) - 1
	}
	return frame
}
