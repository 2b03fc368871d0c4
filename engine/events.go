// Package engine drives one round of the balance game per frame.
//
// Event System
//
// The game never calls into presentation, audio or network code. Phase changes
// are pushed to an EventQueue as GameEvents and the EventRouter dispatches them,
// in FIFO order, to the EventHandlers registered for each type. The Driver runs
// the dispatch once per frame after the presenters have been synced, so every
// handler sees the state the event describes.
//
// Event Flow Pattern:
//  1. Game.Update / RequestRetry / HardReset push events
//  2. Driver.Frame syncs presenters with the new snapshot
//  3. EventRouter.DispatchAll consumes the queue and notifies handlers
package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/asparagus/constants"
	"github.com/lixenwraith/asparagus/core"
)

// EventType represents the type of game event
type EventType int

const (
	// EventRoundStarted signals a fresh round after a hard reset or a finished recovery
	// Payload: nil
	EventRoundStarted EventType = iota

	// EventRoundLost signals the end of a round
	// Payload: RoundLostPayload
	EventRoundLost

	// EventRecoveryStarted signals the start of the rewind toward level
	// Payload: SidePayload
	EventRecoveryStarted

	// EventRecoveryFinished signals the end of the rewind, always followed by EventRoundStarted
	// Payload: nil
	EventRecoveryFinished

	// EventPoseSettled signals that the loss transition reached the posed side
	// Payload: SidePayload
	EventPoseSettled
)

// AllEventTypes lists every event type, for handlers that observe everything
var AllEventTypes = []EventType{
	EventRoundStarted,
	EventRoundLost,
	EventRecoveryStarted,
	EventRecoveryFinished,
	EventPoseSettled,
}

// String returns the event name for logs and the spectator feed
func (e EventType) String() string {
	switch e {
	case EventRoundStarted:
		return "RoundStarted"
	case EventRoundLost:
		return "RoundLost"
	case EventRecoveryStarted:
		return "RecoveryStarted"
	case EventRecoveryFinished:
		return "RecoveryFinished"
	case EventPoseSettled:
		return "PoseSettled"
	default:
		return "Unknown"
	}
}

// RoundLostPayload carries the losing side and the scores of the round
type RoundLostPayload struct {
	Side  core.Side     `json:"side"`
	Score time.Duration `json:"score"`
	Best  time.Duration `json:"best"`
}

// SidePayload carries the side of a pose or recovery event
type SidePayload struct {
	Side core.Side `json:"side"`
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType // Type of event
	Payload   any       // Event-specific payload, nil or one of the *Payload types
	Frame     int64     // Frame number when event was created
	Timestamp time.Time // Simulation time of the event
}

// EventQueue is a bounded FIFO of events
// The oldest event is dropped when the queue is full
type EventQueue struct {
	mu     sync.Mutex
	events []GameEvent
	limit  int
}

// NewEventQueue creates an empty queue holding at most constants.EventQueueSize events
func NewEventQueue() *EventQueue {
	return &EventQueue{
		events: make([]GameEvent, 0, constants.EventQueueSize),
		limit:  constants.EventQueueSize,
	}
}

// Push appends an event
func (eq *EventQueue) Push(event GameEvent) {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if len(eq.events) >= eq.limit {
		copy(eq.events, eq.events[1:])
		eq.events = eq.events[:len(eq.events)-1]
	}
	eq.events = append(eq.events, event)
}

// Consume returns all pending events in push order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if len(eq.events) == 0 {
		return nil
	}
	result := make([]GameEvent, len(eq.events))
	copy(result, eq.events)
	eq.events = eq.events[:0]
	return result
}

// Peek returns pending events without consuming them
func (eq *EventQueue) Peek() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if len(eq.events) == 0 {
		return nil
	}
	result := make([]GameEvent, len(eq.events))
	copy(result, eq.events)
	return result
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return len(eq.events)
}
