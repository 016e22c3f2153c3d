package system

import (
	"math"

	"github.com/younwookim/ledgeline/internal/application/state"
	"github.com/younwookim/ledgeline/internal/domain/entity"
	"github.com/younwookim/ledgeline/internal/domain/input"
)

var jumpBehavior = behavior{
	update: func(m *Machine, dt float64) {
		// holding JUMP lightens gravity on the way up
		g := m.tuning.Physics.Gravity - m.tuning.Jump.HeldGravityReduction*m.button(input.Jump).Value()
		m.applyGravity(g, dt)
		m.steer(airMotion, dt)
		m.faceVelocity()
	},
	findState: func(m *Machine) {
		if m.actor.VY < 0 {
			m.SetState(state.Fall)
		}
	},
	collideBottom: func(m *Machine, _ *entity.Tile) {
		m.land()
	},
	collideTop: func(m *Machine, _ *entity.Tile) {
		a := m.actor
		if a.VX != 0 && m.crouchBuffered(1) {
			a.VX += math.Abs(a.VY) * m.tuning.Slide.CeilingBoost * sign(a.VX)
			m.SetState(state.CeilSlide)
			return
		}
		m.SetState(state.Fall)
	},
	collideLeft: func(m *Machine, tile *entity.Tile) {
		m.hitWall(-1, tile, m.tuning.Wall.JumpBoost)
	},
	collideRight: func(m *Machine, tile *entity.Tile) {
		m.hitWall(1, tile, m.tuning.Wall.JumpBoost)
	},
	jump: func(m *Machine, _ *input.Button) {
		m.actor.ForgivenJump = m.clock.Mark()
	},
}

var fallBehavior = behavior{
	update: func(m *Machine, dt float64) {
		m.applyGravity(m.tuning.Physics.Gravity, dt)
		m.steer(airMotion, dt)
		m.faceVelocity()
	},
	collideBottom: func(m *Machine, _ *entity.Tile) {
		a := m.actor
		if a.VX != 0 && m.sprinting() && m.crouchBuffered(1) {
			a.VX += math.Abs(a.VY) * m.tuning.Slide.LandingBoost * sign(a.VX)
			m.SetState(state.Slide)
			return
		}
		m.land()
	},
	collideTop: func(m *Machine, _ *entity.Tile) {
		a := m.actor
		if a.VX != 0 && m.crouchBuffered(1) {
			a.VX += math.Abs(a.VY) * m.tuning.Slide.CeilingBoost * sign(a.VX)
		}
	},
	collideLeft: func(m *Machine, tile *entity.Tile) {
		m.hitWall(-1, tile, m.tuning.Wall.Boost)
	},
	collideRight: func(m *Machine, tile *entity.Tile) {
		m.hitWall(1, tile, m.tuning.Wall.Boost)
	},
	jump: func(m *Machine, b *input.Button) {
		if m.coyote() {
			m.groundJump(b.Value())
			return
		}
		m.actor.ForgivenJump = m.clock.Mark()
	},
}

var ceilSlideBehavior = behavior{
	update: func(m *Machine, dt float64) {
		m.applyGravity(m.tuning.Physics.Gravity, dt)
		m.faceVelocity()
	},
	findState: func(m *Machine) {
		if m.actor.VY < 0 {
			m.SetState(state.Fall)
		}
	},
	collideBottom: func(m *Machine, _ *entity.Tile) {
		m.land()
	},
}
