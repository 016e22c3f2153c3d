package system

import (
	"math"

	"github.com/younwookim/ledgeline/internal/domain/clock"
	"github.com/younwookim/ledgeline/internal/domain/entity"
)

// Layers selects the tile layer each edge resolves against
type Layers struct {
	Ground  *entity.TileLayer
	Ceiling *entity.TileLayer
	Left    *entity.TileLayer
	Right   *entity.TileLayer
}

// CollisionHandler receives each resolved contact before the integrator
// clamps velocity and snaps the edge, so it still sees the impact speed.
type CollisionHandler interface {
	CollideBottom(tile *entity.Tile)
	CollideTop(tile *entity.Tile)
	CollideLeft(tile *entity.Tile)
	CollideRight(tile *entity.Tile)
}

// PhysicsSystem integrates velocity and resolves swept contacts
type PhysicsSystem struct {
	actor   *entity.Actor
	clock   *clock.Clock
	probe   *Probe
	handler CollisionHandler
}

// NewPhysicsSystem creates a new physics system. handler may be nil.
func NewPhysicsSystem(actor *entity.Actor, clk *clock.Clock, probe *Probe, handler CollisionHandler) *PhysicsSystem {
	return &PhysicsSystem{
		actor:   actor,
		clock:   clk,
		probe:   probe,
		handler: handler,
	}
}

// Move stores the previous position and advances by velocity * dt
func (s *PhysicsSystem) Move(dt float64) {
	a := s.actor
	a.OldX, a.OldY = a.X, a.Y
	a.X += a.VX * dt
	a.Y += a.VY * dt
}

// ResolveCollisions recomputes the contact flags. An edge only resolves
// when the actor moves toward it and did not already cross it last tick,
// which lets the actor pass up through one-way platforms.
func (s *PhysicsSystem) ResolveCollisions(layers Layers) {
	a := s.actor
	a.ClearContacts()

	if a.VY <= 0 {
		if tile, ok := s.probe.HitGround(layers.Ground); ok && a.OldBottom() >= tile.Top() {
			if s.handler != nil {
				s.handler.CollideBottom(tile)
			}
			a.VY = math.Max(0, a.VY)
			a.SetBottom(tile.Top())
			a.OnGround = true
			a.ForgivenEdge = s.clock.Mark()
		}
	}

	if a.VY >= 0 {
		if tile, ok := s.probe.HitCeiling(layers.Ceiling); ok && a.OldTop() <= tile.Bottom() {
			if s.handler != nil {
				s.handler.CollideTop(tile)
			}
			a.VY = math.Min(0, a.VY)
			a.SetTop(tile.Bottom())
			a.OnCeiling = true
		}
	}

	if a.VX <= 0 {
		if tile, ok := s.probe.HitLeft(layers.Left); ok && a.OldLeft() >= tile.Right() {
			if s.handler != nil {
				s.handler.CollideLeft(tile)
			}
			a.VX = math.Max(0, a.VX)
			a.SetLeft(tile.Right())
			a.OnLeft = true
		}
	}

	if a.VX >= 0 {
		if tile, ok := s.probe.HitRight(layers.Right); ok && a.OldRight() <= tile.Left() {
			if s.handler != nil {
				s.handler.CollideRight(tile)
			}
			a.VX = math.Min(0, a.VX)
			a.SetRight(tile.Left())
			a.OnRight = true
		}
	}
}
