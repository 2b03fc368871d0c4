package engine

import "time"

// FrameClock turns frame timestamps into clamped deltas
type FrameClock struct {
	last     time.Time
	started  bool
	maxDelta time.Duration
}

// NewFrameClock creates a clock clamping deltas to maxDelta
func NewFrameClock(maxDelta time.Duration) *FrameClock {
	return &FrameClock{maxDelta: maxDelta}
}

// Delta returns the time since the previous call
// The first call and backward steps yield zero, long frames are clamped
func (c *FrameClock) Delta(now time.Time) time.Duration {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		return 0
	}
	if dt > c.maxDelta {
		return c.maxDelta
	}
	return dt
}

// Presenter receives the state of every frame
type Presenter interface {
	Sync(snap Snapshot, dt time.Duration)
}

// Driver runs one frame: simulation, presentation sync, event dispatch
type Driver struct {
	game       *Game
	clock      *FrameClock
	router     *EventRouter
	presenters []Presenter
}

// NewDriver creates a driver for game with its own router on the game's queue
func NewDriver(game *Game, maxDelta time.Duration) *Driver {
	return &Driver{
		game:   game,
		clock:  NewFrameClock(maxDelta),
		router: NewEventRouter(game.Events()),
	}
}

// Router returns the router handlers register with
func (d *Driver) Router() *EventRouter {
	return d.router
}

// AddPresenter appends a presenter, synced in registration order
func (d *Driver) AddPresenter(p Presenter) {
	if p != nil {
		d.presenters = append(d.presenters, p)
	}
}

// Frame advances the game to now and returns the synced snapshot
func (d *Driver) Frame(now time.Time) Snapshot {
	dt := d.clock.Delta(now)
	d.game.Update(now, dt)

	snap := d.game.Snapshot()
	for _, p := range d.presenters {
		p.Sync(snap, dt)
	}
	d.router.DispatchAll()
	return snap
}
