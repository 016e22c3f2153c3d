package system

import "github.com/younwookim/ledgeline/internal/application/state"

// Event is something observable that happened during a tick
type Event interface {
	isEvent()
}

// StateChanged reports a movement state transition
type StateChanged struct {
	Frame    int64
	From, To state.ID
}

func (StateChanged) isEvent() {}

// Respawned reports that a hazard sent the actor back to its safe point
type Respawned struct {
	Frame int64
	X, Y  float64
}

func (Respawned) isEvent() {}

// RoomChanged reports a gate transition
type RoomChanged struct {
	Frame    int64
	From, To string
	Gate     int
}

func (RoomChanged) isEvent() {}

// GateBlocked reports a gate whose target could not be resolved
type GateBlocked struct {
	Frame int64
	Gate  int
	Err   error
}

func (GateBlocked) isEvent() {}
