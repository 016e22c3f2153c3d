package replay

import (
	"fmt"

	"github.com/younwookim/ledgeline/internal/application/system"
	"github.com/younwookim/ledgeline/internal/domain/clock"
	"github.com/younwookim/ledgeline/internal/domain/input"
	"github.com/younwookim/ledgeline/internal/domain/world"
	"github.com/younwookim/ledgeline/internal/infrastructure/config"
)

// Playback steps a fresh simulation through a recording without a window
type Playback struct {
	replayer *Replayer
	sim      *system.Simulation
	retunes  []Retune
	tickRate int
	dt       float64
}

// NewPlayback starts a simulation in the recording's room. The recorded
// tuning wins over cfg when the recording carries one.
func NewPlayback(cfg *config.PhysicsConfig, atlas *world.Atlas, data *ReplayData) (*Playback, error) {
	replayer := NewReplayer(*data)
	room, ok := atlas.Room(replayer.Room())
	if !ok {
		return nil, fmt.Errorf("failed to find room %q", replayer.Room())
	}

	physics := cfg
	if data.Physics != nil {
		physics = data.Physics
	}
	tickRate := replayer.TickRate(cfg.Display.TickRate)

	clk := clock.New()
	return &Playback{
		replayer: replayer,
		sim:      system.NewSimulation(atTickRate(physics, tickRate), clk, input.NewSet(clk), room, atlas),
		retunes:  data.Retunes,
		tickRate: tickRate,
		dt:       1.0 / float64(tickRate),
	}, nil
}

// Next applies the tuning changes due at the current frame and returns its
// input
func (p *Playback) Next() (input.Frame, bool) {
	n := p.replayer.CurrentFrame()
	for len(p.retunes) > 0 && p.retunes[0].F <= n {
		p.sim.SetTuning(atTickRate(p.retunes[0].Physics, p.tickRate))
		p.retunes = p.retunes[1:]
	}
	return p.replayer.Next()
}

// Step plays one recorded frame. It returns false once the recording is exhausted.
func (p *Playback) Step() ([]system.Event, bool) {
	f, ok := p.Next()
	if !ok {
		return nil, false
	}
	return p.sim.Tick(p.dt, f), true
}

// DT returns the recorded step length in seconds
func (p *Playback) DT() float64 {
	return p.dt
}

// Simulation exposes the simulation being driven
func (p *Playback) Simulation() *system.Simulation {
	return p.sim
}

// Replayer exposes the frame source
func (p *Playback) Replayer() *Replayer {
	return p.replayer
}

// Close releases the simulation's input subscriptions
func (p *Playback) Close() {
	p.sim.Close()
}

// Result summarizes a finished playback
type Result struct {
	Frames      int
	Room        string
	Pose        system.Pose
	Transitions int
	Respawns    int
	RoomChanges int
}

// Run plays a whole recording and reports where the actor ended up
func Run(cfg *config.PhysicsConfig, atlas *world.Atlas, data *ReplayData) (Result, error) {
	p, err := NewPlayback(cfg, atlas, data)
	if err != nil {
		return Result{}, err
	}
	defer p.Close()

	var res Result
	for {
		events, ok := p.Step()
		if !ok {
			break
		}
		res.Frames++
		for _, ev := range events {
			switch ev.(type) {
			case system.StateChanged:
				res.Transitions++
			case system.Respawned:
				res.Respawns++
			case system.RoomChanged:
				res.RoomChanges++
			}
		}
	}

	res.Room = p.sim.Room().Name
	res.Pose = p.sim.Pose()
	return res, nil
}
