package system

import (
	"math"

	"github.com/younwookim/ledgeline/internal/application/state"
	"github.com/younwookim/ledgeline/internal/domain/clock"
	"github.com/younwookim/ledgeline/internal/domain/entity"
	"github.com/younwookim/ledgeline/internal/domain/input"
)

var wallSlideBehavior = behavior{
	enter: func(m *Machine) {
		m.actor.ForgivenEdge = clock.Unset
	},
	update: func(m *Machine, dt float64) {
		a := m.actor
		m.steer(wallMotion, dt)
		m.faceInput()

		g := m.tuning.Physics.Gravity
		if m.axis() != 0 && a.PressingInto(m.axis()) && !m.button(input.Crouch).IsPressed() {
			if a.VY <= 0 {
				g = m.tuning.Wall.SlideGravity
			} else {
				g = m.tuning.Wall.RiseGravity
			}
		}
		m.applyGravity(g, dt)
	},
	findState: func(m *Machine) {
		a := m.actor
		switch {
		case m.jumpBuffered():
			m.wallJump(m.bufferedJumpValue())
		case !a.OnLeft && !a.OnRight:
			m.SetState(state.Fall)
		}
	},
	collideBottom: func(m *Machine, _ *entity.Tile) {
		m.SetState(state.Stand)
	},
	collideLeft: func(m *Machine, tile *entity.Tile) {
		m.actor.VX = 0
		m.tryLedgeGrab(-1, tile)
	},
	collideRight: func(m *Machine, tile *entity.Tile) {
		m.actor.VX = 0
		m.tryLedgeGrab(1, tile)
	},
	jump: func(m *Machine, b *input.Button) {
		m.wallJump(b.Value())
	},
}

var ledgeHoldBehavior = behavior{
	enter: func(m *Machine) {
		a := m.actor
		a.VX, a.VY = 0, 0
		a.AX, a.AY = 0, 0
		a.AtLedge = true
	},
	exit: func(m *Machine) {
		m.actor.AtLedge = false
		m.actor.BlockedLedge = m.clock.Mark()
	},
	findState: func(m *Machine) {
		a := m.actor
		switch {
		case a.OnGround:
			m.SetState(state.Stand)
		case !a.OnLeft && !a.OnRight:
			m.SetState(state.Fall)
		case (a.OnLeft && a.Direction > 0) || (a.OnRight && a.Direction < 0):
			m.SetState(state.Fall)
		}
	},
	jump: func(m *Machine, b *input.Button) {
		a := m.actor
		side := m.wallSide()
		if side == 0 {
			side = a.Direction
		}
		l := m.tuning.Ledge
		a.VY = (l.JumpSpeed + l.SprintBonus*m.button(input.Sprint).Value()) * l.JumpMultiplier * b.Value()
		a.VX = -side * l.JumpPush
		a.ForgivenEdge = clock.Unset
		a.ForgivenJump = clock.Unset
		m.SetState(state.Jump)
	},
	crouch: func(m *Machine, _ *input.Button) {
		m.SetState(state.WallSlide)
	},
	horizontal: func(m *Machine, value float64) {
		if value != 0 {
			m.actor.Direction = sign(value)
		}
	},
}

// hitWall handles an airborne state running into a wall on side (-1 left,
// +1 right): grab the ledge if one is in reach, otherwise slide.
func (m *Machine) hitWall(side float64, tile *entity.Tile, boost float64) {
	if m.tryLedgeGrab(side, tile) {
		return
	}
	a := m.actor
	if a.VY != 0 && m.crouchBuffered(2) {
		a.VY += math.Abs(a.VX) * boost * sign(a.VY)
	}
	m.SetState(state.WallSlide)
}

// tryLedgeGrab snaps the actor onto the top corner of tile when both
// facing and input point into the wall, the corner is above the actor's
// center and the space above it is open.
func (m *Machine) tryLedgeGrab(side float64, tile *entity.Tile) bool {
	a := m.actor
	if a.Direction != side || sign(m.axis()) != side {
		return false
	}
	if a.Y >= tile.Top() || a.VY >= m.tuning.Ground.MaxSpeed {
		return false
	}
	if m.clock.Within(a.BlockedLedge, m.tuning.LedgeCooldownFrames) {
		return false
	}

	var open bool
	if side < 0 {
		open = m.probe.LedgeVerticalLeft(m.solid)
	} else {
		open = m.probe.LedgeVerticalRight(m.solid)
	}
	if !open {
		return false
	}

	a.VX, a.VY = 0, 0
	a.SetTop(tile.Top())
	m.SetState(state.LedgeHold)
	return true
}

// wallJump kicks off the touched wall
func (m *Machine) wallJump(value float64) {
	a := m.actor
	side := m.wallSide()
	if side == 0 {
		side = a.Direction
	}
	w := m.tuning.Wall
	a.VY = m.tuning.Jump.Speed * w.JumpMultiplier * value
	if m.button(input.Crouch).IsPressed() {
		a.VY = -a.VY
	}
	a.VX = -side * (w.JumpPush + w.SprintPush*m.button(input.Sprint).Value())
	a.Direction = -side
	a.ForgivenEdge = clock.Unset
	a.ForgivenJump = clock.Unset
	m.SetState(state.Jump)
}
