package input

import (
	"fmt"
	"sort"

	"github.com/younwookim/ledgeline/internal/domain/clock"
)

// Standard signal names.
const (
	Jump   = "JUMP"
	Crouch = "CROUCH"
	Dash   = "DASH"
	Sprint = "SPRINT"
	Left   = "LEFT"
	Right  = "RIGHT"

	Horizontal = "HORIZONTAL"
)

// Set is the registry of buttons and axes for one player.
type Set struct {
	clock   *clock.Clock
	buttons map[string]*Button
	axes    map[string]*Axis
}

// NewSet creates a set with the standard buttons and the horizontal axis.
func NewSet(clk *clock.Clock) *Set {
	s := &Set{
		clock:   clk,
		buttons: make(map[string]*Button),
		axes:    make(map[string]*Axis),
	}
	for _, id := range []string{Jump, Crouch, Dash, Sprint, Left, Right} {
		s.AddButton(id)
	}
	s.AddAxis(Horizontal)
	return s
}

// Clock returns the clock buttons are stamped with.
func (s *Set) Clock() *clock.Clock {
	return s.clock
}

// AddButton registers a button, returning the existing one if present.
func (s *Set) AddButton(id string) *Button {
	if b, ok := s.buttons[id]; ok {
		return b
	}
	b := NewButton(id, s.clock)
	s.buttons[id] = b
	return b
}

// AddAxis registers an axis, returning the existing one if present.
func (s *Set) AddAxis(id string) *Axis {
	if a, ok := s.axes[id]; ok {
		return a
	}
	a := NewAxis(id)
	s.axes[id] = a
	return a
}

// Button returns a registered button. Unknown names panic.
func (s *Set) Button(id string) *Button {
	b, ok := s.buttons[id]
	if !ok {
		panic(fmt.Sprintf("input: unknown button %q", id))
	}
	return b
}

// Axis returns a registered axis. Unknown names panic.
func (s *Set) Axis(id string) *Axis {
	a, ok := s.axes[id]
	if !ok {
		panic(fmt.Sprintf("input: unknown axis %q", id))
	}
	return a
}

// ButtonIDs returns the registered button names in sorted order.
func (s *Set) ButtonIDs() []string {
	ids := make([]string, 0, len(s.buttons))
	for id := range s.buttons {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Apply feeds one tick of device state into the set. Edges fire their
// observers here, before the simulation step that follows.
func (s *Set) Apply(f Frame) {
	apply := func(id string, v float64) {
		b := s.Button(id)
		switch {
		case v == 0:
			b.Release()
		case b.IsPressed():
			b.Hold(v)
		default:
			b.Press(v)
		}
	}

	apply(Left, f.Left)
	apply(Right, f.Right)
	apply(Sprint, f.Sprint)
	apply(Crouch, f.Crouch)
	apply(Dash, f.Dash)

	axis := s.Axis(Horizontal)
	target := f.Right - f.Left + f.StickX
	if target > 1 {
		target = 1
	} else if target < -1 {
		target = -1
	}
	axis.Update(target - axis.Value())

	apply(Jump, f.Jump)
}
