package system

import (
	"math"

	"github.com/younwookim/ledgeline/internal/domain/entity"
)

// Probe sweeps thin sensors along the actor's edges from last tick's
// position to the current one, so fast motion cannot skip a tile.
type Probe struct {
	actor  *entity.Actor
	tuning *Tuning
}

// NewProbe creates a probe bound to an actor
func NewProbe(actor *entity.Actor, tuning *Tuning) *Probe {
	return &Probe{actor: actor, tuning: tuning}
}

// Sweep samples a w x h sensor centered on points along the segment
// (fromX, fromY) to (toX, toY). The first sample that overlaps the layer
// wins; among its hits the tile with the highest center is returned.
func (p *Probe) Sweep(fromX, fromY, toX, toY, w, h float64, layer *entity.TileLayer) (*entity.Tile, bool) {
	if layer == nil || layer.Len() == 0 {
		return nil, false
	}

	step := p.tuning.Physics.StepLength
	if step <= 0 {
		step = 1
	}
	dist := math.Hypot(toX-fromX, toY-fromY)
	steps := int(dist/step) + 1

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := math.Round(fromX + (toX-fromX)*t)
		y := math.Round(fromY + (toY-fromY)*t)

		hits := layer.Overlapping(entity.RectCentered(x, y, w, h))
		if len(hits) == 0 {
			continue
		}
		best := hits[0]
		for _, tile := range hits[1:] {
			if tile.CenterY() > best.CenterY() {
				best = tile
			}
		}
		return best, true
	}
	return nil, false
}

func (p *Probe) inset() float64 {
	return p.tuning.Physics.SensorInset
}

// HitGround sweeps a one-unit strip just below the feet
func (p *Probe) HitGround(layer *entity.TileLayer) (*entity.Tile, bool) {
	a := p.actor
	return p.Sweep(a.OldX, a.OldBottom()-1, a.X, a.Bottom()-1, a.Width-p.inset(), 1, layer)
}

// HitCeiling sweeps a one-unit strip just above the head
func (p *Probe) HitCeiling(layer *entity.TileLayer) (*entity.Tile, bool) {
	a := p.actor
	return p.Sweep(a.OldX, a.OldTop()+1, a.X, a.Top()+1, a.Width-p.inset(), 1, layer)
}

// HitLeft sweeps a one-unit strip left of the hitbox
func (p *Probe) HitLeft(layer *entity.TileLayer) (*entity.Tile, bool) {
	a := p.actor
	return p.Sweep(a.OldLeft()-1, a.OldY, a.Left()-1, a.Y, 1, a.Height-p.inset(), layer)
}

// HitRight sweeps a one-unit strip right of the hitbox
func (p *Probe) HitRight(layer *entity.TileLayer) (*entity.Tile, bool) {
	a := p.actor
	return p.Sweep(a.OldRight()+1, a.OldY, a.Right()+1, a.Y, 1, a.Height-p.inset(), layer)
}

// LedgeVerticalLeft reports a grabbable ledge on the left: the actor
// touches a wall and the space diagonally above it is empty.
func (p *Probe) LedgeVerticalLeft(layer *entity.TileLayer) bool {
	if _, ok := p.HitLeft(layer); !ok {
		return false
	}
	a := p.actor
	m, s := p.tuning.Ledge.ProbeMargin, p.tuning.Ledge.ProbeSize
	_, blocked := p.Sweep(a.OldLeft()-m, a.OldTop()+m, a.Left()-m, a.Top()+m, s, s, layer)
	return !blocked
}

// LedgeVerticalRight is the mirror of LedgeVerticalLeft
func (p *Probe) LedgeVerticalRight(layer *entity.TileLayer) bool {
	if _, ok := p.HitRight(layer); !ok {
		return false
	}
	a := p.actor
	m, s := p.tuning.Ledge.ProbeMargin, p.tuning.Ledge.ProbeSize
	_, blocked := p.Sweep(a.OldRight()+m, a.OldTop()+m, a.Right()+m, a.Top()+m, s, s, layer)
	return !blocked
}

// LedgeHorizontalLeft reports standing on ground whose edge drops away
// just past the left foot
func (p *Probe) LedgeHorizontalLeft(layer *entity.TileLayer) bool {
	if _, ok := p.HitGround(layer); !ok {
		return false
	}
	a := p.actor
	m, s := p.tuning.Ledge.ProbeMargin, p.tuning.Ledge.ProbeSize
	_, blocked := p.Sweep(a.OldLeft()-m, a.OldBottom()-m, a.Left()-m, a.Bottom()-m, s, s, layer)
	return !blocked
}

// LedgeHorizontalRight is the mirror of LedgeHorizontalLeft
func (p *Probe) LedgeHorizontalRight(layer *entity.TileLayer) bool {
	if _, ok := p.HitGround(layer); !ok {
		return false
	}
	a := p.actor
	m, s := p.tuning.Ledge.ProbeMargin, p.tuning.Ledge.ProbeSize
	_, blocked := p.Sweep(a.OldRight()+m, a.OldBottom()-m, a.Right()+m, a.Bottom()-m, s, s, layer)
	return !blocked
}
