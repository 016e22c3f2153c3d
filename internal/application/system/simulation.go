package system

import (
	"github.com/younwookim/ledgeline/internal/application/state"
	"github.com/younwookim/ledgeline/internal/domain/clock"
	"github.com/younwookim/ledgeline/internal/domain/entity"
	"github.com/younwookim/ledgeline/internal/domain/input"
	"github.com/younwookim/ledgeline/internal/domain/world"
	"github.com/younwookim/ledgeline/internal/infrastructure/config"
)

// GateResolver maps a gate the actor entered to the room behind it and the
// actor's entry position there
type GateResolver interface {
	Resolve(gate *world.Gate, actor *entity.Actor) (*world.Room, float64, float64, error)
}

// Pose is the render-facing view of the actor after a tick
type Pose struct {
	X, Y      float64
	Width     float64
	Height    float64
	Direction float64
	State     state.ID
	OnGround  bool
	AtLedge   bool
	Teetering bool // standing with the leading foot past a floor edge
}

// Simulation drives one actor through a room at a fixed tick.
// It is not safe for concurrent use.
type Simulation struct {
	clock   *clock.Clock
	input   *input.Set
	actor   *entity.Actor
	room    *world.Room
	gates   GateResolver
	tuning  *Tuning
	probe   *Probe
	physics *PhysicsSystem
	machine *Machine
	unbind  func()

	events []Event
	pose   Pose
}

// NewSimulation places a new actor at the room's spawn point, falling.
// gates may be nil, in which case gates never fire.
func NewSimulation(cfg *config.PhysicsConfig, clk *clock.Clock, in *input.Set, room *world.Room, gates GateResolver) *Simulation {
	tuning := NewTuning(cfg)
	actor := entity.NewActor(room.SpawnX, room.SpawnY, tuning.Actor.Width, tuning.Actor.Height)
	probe := NewProbe(actor, tuning)
	machine := NewMachine(actor, clk, in, probe, tuning, state.Fall)
	machine.SetSolid(room.Layer(world.LayerGround))

	s := &Simulation{
		clock:   clk,
		input:   in,
		actor:   actor,
		room:    room,
		gates:   gates,
		tuning:  tuning,
		probe:   probe,
		physics: NewPhysicsSystem(actor, clk, probe, machine),
		machine: machine,
	}
	s.unbind = machine.Bind()
	s.syncPose()
	return s
}

// Close unsubscribes the simulation from its input set
func (s *Simulation) Close() {
	if s.unbind != nil {
		s.unbind()
		s.unbind = nil
	}
}

// Tick advances the clock, applies one frame of input and steps the
// simulation. A frame with Reset set respawns the actor first. It returns
// the events raised during the tick.
func (s *Simulation) Tick(dt float64, f input.Frame) []Event {
	s.clock.Tick(dt)
	s.input.Apply(f)
	if f.Reset {
		s.Respawn()
	}
	return s.Update()
}

// Update steps the simulation once using the clock's current delta. Input
// for the frame must already be applied.
func (s *Simulation) Update() []Event {
	dt := s.clock.DeltaTime()

	s.machine.Update(dt)
	s.physics.Move(dt)
	s.physics.ResolveCollisions(s.layers())

	if !s.checkHazards() {
		s.checkSpawnZones()
		s.checkGates()
	}

	s.machine.FindState()
	s.syncPose()

	events := append(s.machine.drainEvents(), s.events...)
	s.events = nil
	return events
}

// Respawn returns the actor to its last safe snapshot, falling. The state
// switch runs first so exit hooks cannot re-arm timers the reset clears.
// Its Respawned event is returned by the running or next Update.
func (s *Simulation) Respawn() {
	s.machine.SetState(state.Fall)
	s.actor.Reset()
	s.events = append(s.events, Respawned{Frame: s.clock.Frame(), X: s.actor.X, Y: s.actor.Y})
}

// SetTuning swaps the physics tuning in place. The hitbox size is kept.
func (s *Simulation) SetTuning(cfg *config.PhysicsConfig) {
	w, h := s.tuning.Actor.Width, s.tuning.Actor.Height
	*s.tuning = *NewTuning(cfg)
	s.tuning.Actor.Width, s.tuning.Actor.Height = w, h
}

// Actor returns a copy of the actor state
func (s *Simulation) Actor() entity.Actor {
	return *s.actor
}

// State returns the movement state
func (s *Simulation) State() state.ID {
	return s.machine.State()
}

// Tuning returns a copy of the active tuning
func (s *Simulation) Tuning() Tuning {
	return *s.tuning
}

// Machine exposes the state machine
func (s *Simulation) Machine() *Machine {
	return s.machine
}

// Room returns the room the actor is in
func (s *Simulation) Room() *world.Room {
	return s.room
}

// Clock returns the simulation clock
func (s *Simulation) Clock() *clock.Clock {
	return s.clock
}

// Pose returns the actor pose after the last tick
func (s *Simulation) Pose() Pose {
	return s.pose
}

// EnterRoom moves the actor into room at (x, y). The entry point becomes
// the respawn point until a spawn zone records a new one.
func (s *Simulation) EnterRoom(room *world.Room, x, y float64) {
	s.room = room
	s.machine.SetSolid(room.Layer(world.LayerGround))
	s.actor.Teleport(x, y)
	s.actor.SafeX, s.actor.SafeY = x, y
}

// layers picks the collision layers for this tick. Holding CROUCH drops
// through one-way platforms.
func (s *Simulation) layers() Layers {
	solid := s.room.Layer(world.LayerGround)
	ground := s.room.Layer(world.LayerAllGround)
	if s.input.Button(input.Crouch).IsPressed() {
		ground = solid
	}
	return Layers{Ground: ground, Ceiling: solid, Left: solid, Right: solid}
}

// checkHazards respawns the actor on spike contact
func (s *Simulation) checkHazards() bool {
	if !s.room.Layer(world.LayerSpikes).Any(s.actor.Bounds()) {
		return false
	}
	s.Respawn()
	return true
}

func (s *Simulation) checkSpawnZones() {
	a := s.actor
	a.InSpawnZone = s.room.Layer(world.LayerSpawnZones).Any(a.Bounds())
	if a.OnGround && a.InSpawnZone {
		a.Snapshot()
	}
}

func (s *Simulation) checkGates() {
	a := s.actor
	gate, ok := s.room.GateAt(a.Bounds())
	if !ok {
		a.CanTransition = true
		return
	}
	if !a.CanTransition || s.gates == nil {
		return
	}
	a.CanTransition = false

	room, x, y, err := s.gates.Resolve(gate, a)
	if err != nil {
		s.events = append(s.events, GateBlocked{Frame: s.clock.Frame(), Gate: gate.ID, Err: err})
		return
	}
	from := s.room.Name
	s.EnterRoom(room, x, y)
	s.events = append(s.events, RoomChanged{Frame: s.clock.Frame(), From: from, To: room.Name, Gate: gate.ID})
}

func (s *Simulation) syncPose() {
	a := s.actor
	teeter := false
	if a.OnGround && s.machine.State() == state.Stand {
		ground := s.room.Layer(world.LayerAllGround)
		if a.Direction < 0 {
			teeter = s.probe.LedgeHorizontalLeft(ground)
		} else {
			teeter = s.probe.LedgeHorizontalRight(ground)
		}
	}
	s.pose = Pose{
		X:         a.X,
		Y:         a.Y,
		Width:     a.Width,
		Height:    a.Height,
		Direction: a.Direction,
		State:     s.machine.State(),
		OnGround:  a.OnGround,
		AtLedge:   a.AtLedge,
		Teetering: teeter,
	}
}
