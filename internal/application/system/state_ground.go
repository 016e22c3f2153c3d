package system

import (
	"math"

	"github.com/younwookim/ledgeline/internal/application/state"
	"github.com/younwookim/ledgeline/internal/domain/input"
)

var standBehavior = behavior{
	enter: func(m *Machine) {
		a := m.actor
		a.VX, a.VY = 0, 0
		a.AX, a.AY = 0, 0
	},
	update: func(m *Machine, dt float64) {
		m.applyGravity(m.tuning.Physics.Gravity, dt)
	},
	findState: func(m *Machine) {
		a := m.actor
		switch {
		case m.jumpBuffered():
			m.groundJump(m.bufferedJumpValue())
		case a.Airborne() || a.VY < 0:
			m.leaveGround()
		case m.axis() != 0 && !a.PressingInto(m.axis()):
			a.Direction = sign(m.axis())
			m.SetState(state.Run)
		}
	},
	jump: func(m *Machine, b *input.Button) {
		m.groundJump(b.Value())
	},
	horizontal: func(m *Machine, value float64) {
		if value == 0 || m.actor.PressingInto(value) {
			return
		}
		m.actor.Direction = sign(value)
		m.SetState(state.Run)
	},
}

var runBehavior = behavior{
	update: func(m *Machine, dt float64) {
		m.steer(groundMotion, dt)
		m.faceVelocity()
		m.applyGravity(m.tuning.Physics.Gravity, dt)
	},
	findState: func(m *Machine) {
		a := m.actor
		switch {
		case m.jumpBuffered():
			m.groundJump(m.bufferedJumpValue())
		case a.Airborne() || a.VY < 0:
			m.leaveGround()
		case a.VX == 0:
			m.SetState(state.Stand)
		}
	},
	jump: func(m *Machine, b *input.Button) {
		m.groundJump(b.Value())
	},
	crouch: func(m *Machine, _ *input.Button) {
		if math.Abs(m.actor.VX) > m.tuning.Ground.MaxSpeed {
			m.SetState(state.Slide)
		}
	},
}

// slideBehavior keeps sprint speed low to the ground, bleeding it off
// with drag until the crouch is released or the speed runs out.
var slideBehavior = behavior{
	update: func(m *Machine, dt float64) {
		a := m.actor
		m.faceVelocity()
		if a.VX != 0 {
			dir := sign(a.VX)
			a.AX = -dir * m.tuning.Slide.Drag
			a.VX += a.AX * dt
			if sign(a.VX) != dir {
				a.VX = 0
			}
		} else {
			a.AX = 0
		}
		m.applyGravity(m.tuning.Physics.Gravity, dt)
	},
	findState: func(m *Machine) {
		a := m.actor
		switch {
		case a.Airborne():
			m.leaveGround()
		case !m.button(input.Crouch).IsPressed() || math.Abs(a.VX) < m.tuning.Ground.MaxSpeed/2:
			m.land()
		}
	},
	jump: func(m *Machine, b *input.Button) {
		m.groundJump(b.Value())
	},
}
