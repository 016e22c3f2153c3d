// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/ledgeline/internal/application/replay"
	"github.com/younwookim/ledgeline/internal/application/scene"
	"github.com/younwookim/ledgeline/internal/application/system"
	"github.com/younwookim/ledgeline/internal/domain/clock"
	"github.com/younwookim/ledgeline/internal/domain/entity"
	"github.com/younwookim/ledgeline/internal/domain/input"
	"github.com/younwookim/ledgeline/internal/domain/world"
	"github.com/younwookim/ledgeline/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG        = color.RGBA{26, 26, 46, 255}
	colorSolid     = color.RGBA{80, 80, 100, 255}
	colorOneWay    = color.RGBA{120, 120, 150, 255}
	colorSpike     = color.RGBA{200, 50, 50, 255}
	colorSpawnZone = color.RGBA{60, 120, 60, 96}
	colorGate      = color.RGBA{255, 215, 0, 96}
	colorActor     = color.RGBA{100, 200, 100, 255}
	colorLedge     = color.RGBA{100, 160, 255, 255}
	colorTeeter    = color.RGBA{255, 200, 100, 255}
	colorFacing    = color.RGBA{255, 255, 255, 255}
)

// FrameSource supplies one tick of device state. It returns false once no
// more input is available.
type FrameSource interface {
	Next() (input.Frame, bool)
}

// liveSource polls the devices every tick
type liveSource struct {
	sys *system.InputSystem
}

func (l *liveSource) Next() (input.Frame, bool) {
	return l.sys.Poll(), true
}

// Options configures a Playing scene
type Options struct {
	Config *config.GameConfig
	Atlas  *world.Atlas
	Room   string

	// Loader and Watcher enable hot reload of physics.json and
	// bindings.yaml. Either may be nil.
	Loader  *config.Loader
	Watcher *config.Watcher

	// RecordPath enables recording. Replay plays a recording instead of
	// polling devices.
	RecordPath string
	Replay     *replay.ReplayData
}

// Playing is the main gameplay scene
type Playing struct {
	config  *config.GameConfig
	atlas   *world.Atlas
	loader  *config.Loader
	watcher *config.Watcher

	sim      *system.Simulation
	source   FrameSource
	live     *liveSource
	playback *replay.Playback

	screenW int
	screenH int
	dt      float64

	paused       bool
	finished     bool
	resetPending bool
	lastLog      string

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
}

// New creates a new Playing scene in the named room
func New(opts Options) (*Playing, error) {
	cfg := opts.Config
	roomName := opts.Room
	if opts.Replay != nil {
		roomName = opts.Replay.Room
	}
	room, ok := opts.Atlas.Room(roomName)
	if !ok {
		return nil, fmt.Errorf("failed to find room %q", roomName)
	}

	tickRate := cfg.Physics.Display.TickRate
	p := &Playing{
		config:         cfg,
		atlas:          opts.Atlas,
		loader:         opts.Loader,
		watcher:        opts.Watcher,
		screenW:        cfg.Physics.Display.ScreenWidth,
		screenH:        cfg.Physics.Display.ScreenHeight,
		recordFilename: opts.RecordPath,
	}

	if opts.Replay != nil {
		playback, err := replay.NewPlayback(cfg.Physics, opts.Atlas, opts.Replay)
		if err != nil {
			return nil, err
		}
		p.playback = playback
		p.source = playback
		p.sim = playback.Simulation()
		p.dt = playback.DT()
		log.Printf("Replaying %d frames in room %s", playback.Replayer().TotalFrames(), roomName)
		return p, nil
	}

	sys, err := system.NewInputSystem(cfg.Bindings)
	if err != nil {
		return nil, fmt.Errorf("failed to create input system: %w", err)
	}
	p.live = &liveSource{sys: sys}
	p.source = p.live
	p.dt = 1.0 / float64(tickRate)

	clk := clock.New()
	p.sim = system.NewSimulation(cfg.Physics, clk, input.NewSet(clk), room, opts.Atlas)

	if opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(roomName, tickRate)
		p.recorder.Retune(cfg.Physics)
		log.Printf("Recording enabled: %s", opts.RecordPath)
	}

	return p, nil
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	p.drainReloads()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.paused = !p.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		p.saveRecording()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		p.requestRespawn()
	}
	if p.paused || p.finished {
		return nil, nil
	}

	p.step()
	return nil, nil // nil = stay on this scene
}

// step plays one frame of input through the simulation
func (p *Playing) step() {
	f, ok := p.source.Next()
	if !ok {
		p.finished = true
		pose := p.sim.Pose()
		log.Printf("Replay finished in %s at (%.2f, %.2f) %s", p.sim.Room().Name, pose.X, pose.Y, pose.State)
		return
	}

	if p.resetPending {
		f.Reset = true
		p.resetPending = false
	}
	if p.recorder != nil {
		p.recorder.RecordFrame(f)
	}

	for _, ev := range p.sim.Tick(p.dt, f) {
		p.logEvent(ev)
	}
}

// requestRespawn respawns the actor on the next live frame. The request
// travels inside the frame so recordings reproduce it.
func (p *Playing) requestRespawn() {
	if p.live == nil {
		return
	}
	p.resetPending = true
}

func (p *Playing) logEvent(ev system.Event) {
	var msg string
	switch e := ev.(type) {
	case system.RoomChanged:
		msg = fmt.Sprintf("Entered %s through gate %d", e.To, e.Gate)
	case system.Respawned:
		msg = fmt.Sprintf("Respawned at (%.0f, %.0f)", e.X, e.Y)
	case system.GateBlocked:
		msg = fmt.Sprintf("Gate %d blocked: %v", e.Gate, e.Err)
	default:
		return
	}
	p.lastLog = msg
	log.Print(msg)
}

// drainReloads applies config files changed on disk since the last frame
func (p *Playing) drainReloads() {
	for p.watcher != nil {
		select {
		case name, ok := <-p.watcher.Events:
			if !ok {
				p.watcher = nil
				return
			}
			p.reload(name)
		case err, ok := <-p.watcher.Errors:
			if !ok {
				p.watcher = nil
				return
			}
			log.Printf("Config watcher error: %v", err)
		default:
			return
		}
	}
}

func (p *Playing) reload(name string) {
	if p.loader == nil {
		return
	}

	switch name {
	case config.PhysicsFile:
		if p.playback != nil {
			return
		}
		physics, err := p.loader.LoadPhysics()
		if err != nil {
			log.Printf("Failed to reload physics: %v", err)
			return
		}
		p.config.Physics = physics
		p.sim.SetTuning(physics)
		if p.recorder != nil {
			p.recorder.Retune(physics)
		}
		log.Printf("Physics reloaded")
	case config.BindingsFile:
		if p.live == nil {
			return
		}
		bindings, err := p.loader.LoadBindings()
		if err != nil {
			log.Printf("Failed to reload bindings: %v", err)
			return
		}
		sys, err := system.NewInputSystem(bindings)
		if err != nil {
			log.Printf("Failed to apply bindings: %v", err)
			return
		}
		p.config.Bindings = bindings
		p.live.sys = sys
		log.Printf("Bindings reloaded")
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// Simulation exposes the running simulation
func (p *Playing) Simulation() *system.Simulation {
	return p.sim
}

// Finished reports whether a replay has run out of frames
func (p *Playing) Finished() bool {
	return p.finished
}

// camera returns the world coordinates of the screen's bottom-left corner
func (p *Playing) camera() (float64, float64) {
	pose := p.sim.Pose()
	room := p.sim.Room()
	camX := clampCamera(pose.X-float64(p.screenW)/2, room.Width-float64(p.screenW))
	camY := clampCamera(pose.Y-float64(p.screenH)/2, room.Height-float64(p.screenH))
	return camX, camY
}

func clampCamera(v, limit float64) float64 {
	return math.Max(0, math.Min(v, limit))
}

// toScreen maps a world rect to screen space, flipping y
func (p *Playing) toScreen(r entity.Rect, camX, camY float64) (x, y, w, h float64) {
	return r.X - camX, float64(p.screenH) - (r.Top() - camY), r.W, r.H
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	camX, camY := p.camera()
	room := p.sim.Room()

	p.drawLayer(screen, room.Layer(world.LayerSpawnZones), colorSpawnZone, camX, camY)
	p.drawLayer(screen, room.Layer(world.LayerGround), colorSolid, camX, camY)
	p.drawLayer(screen, room.Layer(world.LayerOneWay), colorOneWay, camX, camY)
	p.drawLayer(screen, room.Layer(world.LayerSpikes), colorSpike, camX, camY)
	for _, g := range room.Gates {
		x, y, w, h := p.toScreen(g.Rect, camX, camY)
		ebitenutil.DrawRect(screen, x, y, w, h, colorGate)
	}

	p.drawActor(screen, camX, camY)
	p.drawUI(screen)
}

func (p *Playing) drawLayer(screen *ebiten.Image, layer *entity.TileLayer, c color.Color, camX, camY float64) {
	for _, t := range layer.Tiles() {
		x, y, w, h := p.toScreen(t.Rect, camX, camY)
		ebitenutil.DrawRect(screen, x, y, w, h, c)
	}
}

func (p *Playing) drawActor(screen *ebiten.Image, camX, camY float64) {
	pose := p.sim.Pose()
	bounds := entity.RectCentered(pose.X, pose.Y, pose.Width, pose.Height)
	x, y, w, h := p.toScreen(bounds, camX, camY)

	c := colorActor
	switch {
	case pose.AtLedge:
		c = colorLedge
	case pose.Teetering:
		c = colorTeeter
	}
	ebitenutil.DrawRect(screen, x, y, w, h, c)

	// Facing marker at head height
	eyeX := x + w/2 + pose.Direction*w/4
	ebitenutil.DrawLine(screen, x+w/2, y+6, eyeX, y+6, colorFacing)
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	a := p.sim.Actor()
	pose := p.sim.Pose()
	text := fmt.Sprintf("%s  room:%s  frame:%d\npos:(%.1f, %.1f) vel:(%.1f, %.1f)",
		pose.State, p.sim.Room().Name, p.sim.Clock().Frame(), a.X, a.Y, a.VX, a.VY)
	if p.recorder != nil {
		text += fmt.Sprintf("\nREC %d", p.recorder.FrameCount())
	}
	if p.lastLog != "" {
		text += "\n" + p.lastLog
	}
	ebitenutil.DebugPrint(screen, text)

	ebitenutil.DebugPrintAt(screen, "Arrows: Move | Space: Jump | Down: Crouch | Shift: Sprint | F9: Respawn | F5: Save | ESC: Pause", 4, p.screenH-16)

	switch {
	case p.paused:
		p.drawOverlay(screen, "PAUSED\n\nPress ESC to resume")
	case p.finished:
		p.drawOverlay(screen, "REPLAY FINISHED")
	}
}

func (p *Playing) drawOverlay(screen *ebiten.Image, text string) {
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-20)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	log.Printf("Entered room %s", p.sim.Room().Name)
}

// OnExit is called when leaving this scene. The recording is saved and the
// simulation released.
func (p *Playing) OnExit() {
	if p.recorder != nil {
		p.saveRecording()
		p.recorder.Stop()
	}
	p.sim.Close()
}
