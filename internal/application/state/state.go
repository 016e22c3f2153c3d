// Package state enumerates the movement states of the player character.
package state

import "fmt"

// ID identifies a movement state
type ID int

const (
	Stand ID = iota
	Run
	Jump
	Fall
	WallSlide
	LedgeHold
	Slide
	CeilSlide

	// Count is the number of movement states
	Count
)

// String returns the string representation of the movement state
func (s ID) String() string {
	switch s {
	case Stand:
		return "stand"
	case Run:
		return "run"
	case Jump:
		return "jump"
	case Fall:
		return "fall"
	case WallSlide:
		return "wall_slide"
	case LedgeHold:
		return "ledge_hold"
	case Slide:
		return "slide"
	case CeilSlide:
		return "ceil_slide"
	default:
		return "unknown"
	}
}

// Valid reports whether the id names a movement state
func (s ID) Valid() bool {
	return s >= 0 && s < Count
}

// Airborne reports whether the state is one of the in-air states
func (s ID) Airborne() bool {
	switch s {
	case Jump, Fall, WallSlide, CeilSlide:
		return true
	default:
		return false
	}
}

// Parse maps a state name to its id
func Parse(name string) (ID, error) {
	for s := ID(0); s < Count; s++ {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown movement state %q", name)
}
