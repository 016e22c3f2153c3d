package entity

import "github.com/younwookim/ledgeline/internal/domain/clock"

// Actor is the kinematic state of the player character.
// X and Y are the center of the hitbox in a y-up world.
type Actor struct {
	X, Y       float64
	OldX, OldY float64
	Width      float64
	Height     float64

	VX, VY float64
	// AX and AY hold the acceleration applied this tick, for reporting only.
	AX, AY float64

	Direction float64 // +1 right, -1 left

	OnGround    bool
	OnCeiling   bool
	OnLeft      bool
	OnRight     bool
	AtLedge     bool
	InSpawnZone bool

	ForgivenEdge clock.Anchor // last frame the actor left the ground
	ForgivenJump clock.Anchor // buffered jump press
	BlockedLedge clock.Anchor // last ledge release

	SafeX, SafeY  float64
	CanTransition bool
}

// NewActor creates an actor of size w x h centered on the spawn point
func NewActor(x, y, w, h float64) *Actor {
	a := &Actor{
		Width:  w,
		Height: h,
		SafeX:  x,
		SafeY:  y,
	}
	a.Reset()
	return a
}

// Reset moves the actor to its safe snapshot and clears transient state
func (a *Actor) Reset() {
	a.X, a.Y = a.SafeX, a.SafeY
	a.OldX, a.OldY = a.X, a.Y
	a.VX, a.VY = 0, 0
	a.AX, a.AY = 0, 0
	if a.Direction == 0 {
		a.Direction = 1
	}
	a.ClearContacts()
	a.AtLedge = false
	a.InSpawnZone = false
	a.ForgivenEdge = clock.Unset
	a.ForgivenJump = clock.Unset
	a.BlockedLedge = clock.Unset
	a.CanTransition = true
}

// ClearContacts resets the flags recomputed by collision resolution
func (a *Actor) ClearContacts() {
	a.OnGround = false
	a.OnCeiling = false
	a.OnLeft = false
	a.OnRight = false
}

// Teleport places the actor without a sweep from its previous position
func (a *Actor) Teleport(x, y float64) {
	a.X, a.Y = x, y
	a.OldX, a.OldY = x, y
}

// Snapshot records the current position as the respawn point
func (a *Actor) Snapshot() {
	a.SafeX, a.SafeY = a.X, a.Y
}

// Bounds returns the current hitbox
func (a *Actor) Bounds() Rect {
	return RectCentered(a.X, a.Y, a.Width, a.Height)
}

func (a *Actor) Left() float64   { return a.X - a.Width/2 }
func (a *Actor) Right() float64  { return a.X + a.Width/2 }
func (a *Actor) Bottom() float64 { return a.Y - a.Height/2 }
func (a *Actor) Top() float64    { return a.Y + a.Height/2 }

func (a *Actor) OldLeft() float64   { return a.OldX - a.Width/2 }
func (a *Actor) OldRight() float64  { return a.OldX + a.Width/2 }
func (a *Actor) OldBottom() float64 { return a.OldY - a.Height/2 }
func (a *Actor) OldTop() float64    { return a.OldY + a.Height/2 }

func (a *Actor) SetLeft(v float64)   { a.X = v + a.Width/2 }
func (a *Actor) SetRight(v float64)  { a.X = v - a.Width/2 }
func (a *Actor) SetBottom(v float64) { a.Y = v + a.Height/2 }
func (a *Actor) SetTop(v float64)    { a.Y = v - a.Height/2 }

// Airborne reports whether neither ground nor a ledge supports the actor
func (a *Actor) Airborne() bool {
	return !a.OnGround && !a.AtLedge
}

// PressingInto reports whether a horizontal input value pushes into a
// wall the actor is touching
func (a *Actor) PressingInto(axis float64) bool {
	return (axis < 0 && a.OnLeft) || (axis > 0 && a.OnRight)
}
