package world

import (
	"errors"
	"fmt"

	"github.com/younwookim/ledgeline/internal/domain/entity"
)

// Direction is the room edge a gate sits on
type Direction int

const (
	DirTop Direction = iota
	DirRight
	DirBottom
	DirLeft
)

func (d Direction) String() string {
	switch d {
	case DirTop:
		return "top"
	case DirRight:
		return "right"
	case DirBottom:
		return "bottom"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// ParseDirection maps a direction name to its value
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "top", "up":
		return DirTop, nil
	case "right":
		return DirRight, nil
	case "bottom", "down":
		return DirBottom, nil
	case "left":
		return DirLeft, nil
	}
	return 0, fmt.Errorf("unknown gate direction %q", s)
}

// Gate is a trigger volume leading to a gate in another room
type Gate struct {
	ID         int
	Rect       entity.Rect
	Direction  Direction
	TargetRoom string
	TargetGate int
}

// ErrNoTarget is returned when a gate points at a missing room or gate
var ErrNoTarget = errors.New("gate target not found")

// Handoff maps the actor position across this gate onto the target gate.
// Vertical gates keep the relative x offset, side gates keep the relative y
// offset, scaled by the ratio of the gate sizes.
func (g *Gate) Handoff(actor *entity.Actor, target *Gate) (x, y float64, err error) {
	switch g.Direction {
	case DirTop:
		x = target.Rect.CenterX() + relative(actor.X-g.Rect.CenterX(), g.Rect.W, target.Rect.W)
		y = target.Rect.Top() + actor.Height
	case DirBottom:
		x = target.Rect.CenterX() + relative(actor.X-g.Rect.CenterX(), g.Rect.W, target.Rect.W)
		y = target.Rect.Bottom() - actor.Height
	case DirRight:
		x = target.Rect.Right() + actor.Width/2
		y = target.Rect.CenterY() + relative(actor.Y-g.Rect.CenterY(), g.Rect.H, target.Rect.H)
	case DirLeft:
		x = target.Rect.Left() - actor.Width/2
		y = target.Rect.CenterY() + relative(actor.Y-g.Rect.CenterY(), g.Rect.H, target.Rect.H)
	default:
		return 0, 0, fmt.Errorf("gate %d: unknown direction %d", g.ID, g.Direction)
	}
	return x, y, nil
}

func relative(offset, from, to float64) float64 {
	if from == 0 {
		return 0
	}
	return offset / from * to
}
