package system

import (
	"fmt"

	"github.com/younwookim/ledgeline/internal/application/state"
	"github.com/younwookim/ledgeline/internal/domain/clock"
	"github.com/younwookim/ledgeline/internal/domain/entity"
	"github.com/younwookim/ledgeline/internal/domain/input"
)

// behavior is one row of the state table. Nil hooks do nothing; the
// integrator still clamps and snaps after a nil collision hook.
type behavior struct {
	enter     func(m *Machine)
	exit      func(m *Machine)
	update    func(m *Machine, dt float64)
	findState func(m *Machine)

	collideBottom func(m *Machine, tile *entity.Tile)
	collideTop    func(m *Machine, tile *entity.Tile)
	collideLeft   func(m *Machine, tile *entity.Tile)
	collideRight  func(m *Machine, tile *entity.Tile)

	jump       func(m *Machine, b *input.Button)
	crouch     func(m *Machine, b *input.Button)
	horizontal func(m *Machine, value float64)
}

// behaviors is filled in init because the hooks call back into SetState.
var behaviors [state.Count]behavior

func init() {
	behaviors = [state.Count]behavior{
		state.Stand:     standBehavior,
		state.Run:       runBehavior,
		state.Jump:      jumpBehavior,
		state.Fall:      fallBehavior,
		state.WallSlide: wallSlideBehavior,
		state.LedgeHold: ledgeHoldBehavior,
		state.Slide:     slideBehavior,
		state.CeilSlide: ceilSlideBehavior,
	}
}

// Machine owns the actor's movement state and routes input, collision and
// per-tick callbacks to the active state's behavior.
type Machine struct {
	actor  *entity.Actor
	clock  *clock.Clock
	input  *input.Set
	probe  *Probe
	tuning *Tuning
	solid  *entity.TileLayer

	current state.ID
	events  []Event
}

// NewMachine creates a machine in the initial state. The initial state's
// enter hook is not run.
func NewMachine(actor *entity.Actor, clk *clock.Clock, in *input.Set, probe *Probe, tuning *Tuning, initial state.ID) *Machine {
	if !initial.Valid() {
		panic(fmt.Sprintf("system: invalid initial state %d", initial))
	}
	return &Machine{
		actor:   actor,
		clock:   clk,
		input:   in,
		probe:   probe,
		tuning:  tuning,
		current: initial,
	}
}

// Bind subscribes the machine to the jump, crouch and horizontal signals.
// The returned func unsubscribes.
func (m *Machine) Bind() func() {
	cancels := []func(){
		m.input.Button(input.Jump).OnPress(m.Jump),
		m.input.Button(input.Crouch).OnPress(m.Crouch),
		m.input.Axis(input.Horizontal).OnChange(m.Horizontal),
	}
	return func() {
		for _, cancel := range cancels {
			cancel()
		}
	}
}

// SetSolid sets the layer ledge probes test against
func (m *Machine) SetSolid(layer *entity.TileLayer) {
	m.solid = layer
}

// State returns the active state
func (m *Machine) State() state.ID {
	return m.current
}

// SetState runs exit on the old state and enter on the new one.
// Setting the active state again does nothing.
func (m *Machine) SetState(id state.ID) {
	if !id.Valid() {
		panic(fmt.Sprintf("system: invalid state %d", id))
	}
	if id == m.current {
		return
	}
	from := m.current
	if fn := behaviors[from].exit; fn != nil {
		fn(m)
	}
	m.current = id
	if fn := behaviors[id].enter; fn != nil {
		fn(m)
	}
	m.events = append(m.events, StateChanged{Frame: m.clock.Frame(), From: from, To: id})
}

// SetStateByName is SetState for a state name. Unknown names panic.
func (m *Machine) SetStateByName(name string) {
	id, err := state.Parse(name)
	if err != nil {
		panic(err)
	}
	m.SetState(id)
}

// Update runs the active state's per-tick logic
func (m *Machine) Update(dt float64) {
	if fn := behaviors[m.current].update; fn != nil {
		fn(m, dt)
	}
}

// FindState applies the active state's transition rules
func (m *Machine) FindState() {
	if fn := behaviors[m.current].findState; fn != nil {
		fn(m)
	}
}

func (m *Machine) CollideBottom(tile *entity.Tile) {
	if fn := behaviors[m.current].collideBottom; fn != nil {
		fn(m, tile)
	}
}

func (m *Machine) CollideTop(tile *entity.Tile) {
	if fn := behaviors[m.current].collideTop; fn != nil {
		fn(m, tile)
	}
}

func (m *Machine) CollideLeft(tile *entity.Tile) {
	if fn := behaviors[m.current].collideLeft; fn != nil {
		fn(m, tile)
	}
}

func (m *Machine) CollideRight(tile *entity.Tile) {
	if fn := behaviors[m.current].collideRight; fn != nil {
		fn(m, tile)
	}
}

// Jump handles a JUMP press edge
func (m *Machine) Jump(b *input.Button) {
	if fn := behaviors[m.current].jump; fn != nil {
		fn(m, b)
	}
}

// Crouch handles a CROUCH press edge
func (m *Machine) Crouch(b *input.Button) {
	if fn := behaviors[m.current].crouch; fn != nil {
		fn(m, b)
	}
}

// Horizontal handles a change of the horizontal axis
func (m *Machine) Horizontal(value float64) {
	if fn := behaviors[m.current].horizontal; fn != nil {
		fn(m, value)
	}
}

// drainEvents returns and clears the pending events
func (m *Machine) drainEvents() []Event {
	events := m.events
	m.events = nil
	return events
}

// Shared helpers used by the state rows.

func (m *Machine) axis() float64 {
	return m.input.Axis(input.Horizontal).Value()
}

func (m *Machine) button(id string) *input.Button {
	return m.input.Button(id)
}

func (m *Machine) sprinting() bool {
	return m.button(input.Sprint).IsPressed()
}

// crouchBuffered reports a crouch press within scale slide-buffer windows
func (m *Machine) crouchBuffered(scale int64) bool {
	return m.clock.Within(m.button(input.Crouch).PressFrame(), m.tuning.SlideBufferFrames*scale)
}

func (m *Machine) jumpBuffered() bool {
	return m.clock.Within(m.actor.ForgivenJump, m.tuning.JumpBufferFrames)
}

func (m *Machine) coyote() bool {
	return m.clock.Within(m.actor.ForgivenEdge, m.tuning.CoyoteFrames)
}

// bufferedJumpValue is the strength of a jump fired from the buffer. A
// press that was already released jumps at full strength.
func (m *Machine) bufferedJumpValue() float64 {
	if v := m.button(input.Jump).Value(); v > 0 {
		return v
	}
	return 1
}

func (m *Machine) applyGravity(g, dt float64) {
	a := m.actor
	if a.OnGround {
		a.AY = 0
		return
	}
	a.AY = -g
	a.VY += a.AY * dt
}

// motionTable picks the acceleration table a state steers with
type motionTable int

const (
	groundMotion motionTable = iota // sprint table while SPRINT is held
	airMotion
	wallMotion // air table without momentum
)

func (m *Machine) steer(table motionTable, dt float64) {
	a := m.actor
	t := &m.tuning.PhysicsConfig
	motion, momentum := t.Ground, false
	switch table {
	case airMotion:
		motion, momentum = t.Air, true
	case wallMotion:
		motion = t.Air
	case groundMotion:
		if m.sprinting() {
			motion, momentum = t.Sprint, true
		}
	}
	prev := a.VX
	a.VX = approach(a.VX, motion.MaxSpeed*m.axis(), motion, dt, momentum)
	if dt > 0 {
		a.AX = (a.VX - prev) / dt
	}
}

func (m *Machine) faceVelocity() {
	if s := sign(m.actor.VX); s != 0 {
		m.actor.Direction = s
	}
}

func (m *Machine) faceInput() {
	if s := sign(m.axis()); s != 0 {
		m.actor.Direction = s
	}
}

// groundJump launches a jump from the ground or from coyote time
func (m *Machine) groundJump(value float64) {
	a := m.actor
	a.VY = m.tuning.Jump.Speed * value
	a.ForgivenEdge = clock.Unset
	a.ForgivenJump = clock.Unset
	m.SetState(state.Jump)
}

// leaveGround starts the coyote window and falls
func (m *Machine) leaveGround() {
	m.actor.ForgivenEdge = m.clock.Mark()
	m.SetState(state.Fall)
}

// land picks Run or Stand after touching down
func (m *Machine) land() {
	if m.actor.VX != 0 {
		m.SetState(state.Run)
		return
	}
	m.SetState(state.Stand)
}

// wallSide is -1 when only the left wall is touched, +1 for only the right
// wall, 0 otherwise
func (m *Machine) wallSide() float64 {
	a := m.actor
	switch {
	case a.OnLeft && !a.OnRight:
		return -1
	case a.OnRight && !a.OnLeft:
		return 1
	}
	return 0
}
