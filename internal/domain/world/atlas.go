package world

import (
	"fmt"
	"sort"

	"github.com/younwookim/ledgeline/internal/domain/entity"
)

// Atlas indexes rooms by name and resolves gate transitions between them
type Atlas struct {
	rooms map[string]*Room
}

// NewAtlas creates an atlas from the given rooms
func NewAtlas(rooms ...*Room) *Atlas {
	a := &Atlas{rooms: make(map[string]*Room, len(rooms))}
	for _, r := range rooms {
		a.Add(r)
	}
	return a
}

// Add registers a room, replacing any room with the same name
func (a *Atlas) Add(r *Room) {
	a.rooms[r.Name] = r
}

// Room looks up a room by name
func (a *Atlas) Room(name string) (*Room, bool) {
	r, ok := a.rooms[name]
	return r, ok
}

// Names returns the room names in sorted order
func (a *Atlas) Names() []string {
	names := make([]string, 0, len(a.rooms))
	for name := range a.rooms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve finds the room behind a gate and the actor's entry position
func (a *Atlas) Resolve(gate *Gate, actor *entity.Actor) (*Room, float64, float64, error) {
	room, ok := a.rooms[gate.TargetRoom]
	if !ok {
		return nil, 0, 0, fmt.Errorf("room %q: %w", gate.TargetRoom, ErrNoTarget)
	}
	target, ok := room.Gate(gate.TargetGate)
	if !ok {
		return nil, 0, 0, fmt.Errorf("room %q gate %d: %w", gate.TargetRoom, gate.TargetGate, ErrNoTarget)
	}
	x, y, err := gate.Handoff(actor, target)
	if err != nil {
		return nil, 0, 0, err
	}
	return room, x, y, nil
}
