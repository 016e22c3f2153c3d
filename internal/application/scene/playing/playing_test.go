package playing

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/ledgeline/internal/application/replay"
	"github.com/younwookim/ledgeline/internal/application/scene"
	"github.com/younwookim/ledgeline/internal/application/state"
	"github.com/younwookim/ledgeline/internal/application/system"
	"github.com/younwookim/ledgeline/internal/domain/input"
	"github.com/younwookim/ledgeline/internal/domain/world"
	"github.com/younwookim/ledgeline/internal/infrastructure/config"
)

// createTestConfig creates a minimal config for testing
func createTestConfig() *config.GameConfig {
	return &config.GameConfig{
		Physics: config.DefaultPhysics(),
		Bindings: &config.BindingsConfig{
			Deadzone: 0.25,
			Actions: map[string]config.ActionBinding{
				input.Left:  {Keys: []string{"ArrowLeft"}},
				input.Right: {Keys: []string{"ArrowRight"}},
				input.Jump:  {Keys: []string{"Space"}, Gamepad: []string{"a"}},
			},
		},
	}
}

// createTestAtlas holds a 30x12 room whose floor top is at y=64
func createTestAtlas(t *testing.T) *world.Atlas {
	t.Helper()
	rows := make([]string, 0, 12)
	rows = append(rows, "##############################")
	for i := 0; i < 9; i++ {
		rows = append(rows, "#............................#")
	}
	rows = append(rows, "##############################", "##############################")

	room, err := system.BuildRoom(&config.RoomConfig{
		ID:          "hall",
		TileSize:    32,
		Spawn:       config.PositionConfig{X: 160, Y: 100},
		Layers:      config.LayersConfig{Collision: rows},
		TileMapping: map[string]config.TileMappingConfig{"#": {Type: "solid"}},
	})
	require.NoError(t, err)
	return world.NewAtlas(room)
}

func createTestPlaying(t *testing.T, opts Options) *Playing {
	t.Helper()
	if opts.Config == nil {
		opts.Config = createTestConfig()
	}
	if opts.Atlas == nil {
		opts.Atlas = createTestAtlas(t)
	}
	if opts.Room == "" {
		opts.Room = "hall"
	}
	p, err := New(opts)
	require.NoError(t, err)
	return p
}

// scriptedSource replays a fixed list of frames
type scriptedSource struct {
	frames []input.Frame
	i      int
}

func (s *scriptedSource) Next() (input.Frame, bool) {
	if s.i >= len(s.frames) {
		return input.Frame{}, false
	}
	f := s.frames[s.i]
	s.i++
	return f, true
}

func repeat(f input.Frame, n int) []input.Frame {
	out := make([]input.Frame, n)
	for i := range out {
		out[i] = f
	}
	return out
}

func TestPlaying_ImplementsScene(t *testing.T) {
	var _ scene.Scene = (*Playing)(nil)
}

func TestNew(t *testing.T) {
	p := createTestPlaying(t, Options{})

	assert.NotNil(t, p.live)
	assert.Nil(t, p.recorder)
	assert.Equal(t, "hall", p.Simulation().Room().Name)
	assert.InDelta(t, 1.0/120, p.dt, 1e-12)
}

func TestNew_Errors(t *testing.T) {
	t.Run("unknown room", func(t *testing.T) {
		_, err := New(Options{Config: createTestConfig(), Atlas: createTestAtlas(t), Room: "cellar"})
		assert.Error(t, err)
	})

	t.Run("bad key name", func(t *testing.T) {
		cfg := createTestConfig()
		cfg.Bindings.Actions[input.Dash] = config.ActionBinding{Keys: []string{"NoSuchKey"}}
		_, err := New(Options{Config: cfg, Atlas: createTestAtlas(t), Room: "hall"})
		assert.Error(t, err)
	})
}

func TestPlaying_Update_ReturnsNil(t *testing.T) {
	p := createTestPlaying(t, Options{})
	p.source = &scriptedSource{frames: repeat(input.Frame{}, 1)}

	next, err := p.Update(1.0 / 120)
	assert.NoError(t, err)
	assert.Nil(t, next)
	assert.Equal(t, int64(1), p.Simulation().Clock().Frame())
}

func TestPlaying_StepRunsSimulation(t *testing.T) {
	p := createTestPlaying(t, Options{})
	p.source = &scriptedSource{frames: repeat(input.Frame{Right: 1}, 120)}

	for i := 0; i < 120; i++ {
		p.step()
	}

	pose := p.Simulation().Pose()
	assert.Equal(t, state.Run, pose.State)
	assert.True(t, pose.OnGround)
	assert.Greater(t, pose.X, 160.0)
	assert.False(t, p.Finished())
}

func TestPlaying_PausedDoesNotStep(t *testing.T) {
	p := createTestPlaying(t, Options{})
	p.source = &scriptedSource{frames: repeat(input.Frame{}, 5)}
	p.paused = true

	_, err := p.Update(1.0 / 120)
	require.NoError(t, err)
	assert.Equal(t, int64(0), p.Simulation().Clock().Frame())
}

func TestPlaying_ReplayFinishes(t *testing.T) {
	data := &replay.ReplayData{
		Room:     "hall",
		TickRate: 60,
		Frames:   []replay.FrameInput{{F: 0, R: 1}, {F: 1, R: 1}, {F: 2}},
	}
	p := createTestPlaying(t, Options{Room: "ignored", Replay: data})
	assert.Nil(t, p.live)
	assert.InDelta(t, 1.0/60, p.dt, 1e-12)

	for i := 0; i < 3; i++ {
		p.step()
		assert.False(t, p.Finished())
	}
	p.step()
	assert.True(t, p.Finished())
	assert.Equal(t, int64(3), p.Simulation().Clock().Frame())
}

func TestPlaying_RecordsAndSavesOnExit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	p := createTestPlaying(t, Options{RecordPath: path})
	p.source = &scriptedSource{frames: repeat(input.Frame{Left: 1}, 10)}

	p.OnEnter()
	for i := 0; i < 10; i++ {
		p.step()
	}
	p.OnExit()

	assert.False(t, p.recorder.IsRecording())
	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, "hall", data.Room)
	assert.Equal(t, 120, data.TickRate)
	require.Len(t, data.Frames, 10)
	assert.Equal(t, 1.0, data.Frames[9].L)
}

func TestPlaying_ReplayReproducesRecording(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	frames := append(repeat(input.Frame{Right: 1, Sprint: 1}, 60), repeat(input.Frame{Jump: 1}, 20)...)
	frames = append(frames, repeat(input.Frame{}, 60)...)

	rec := createTestPlaying(t, Options{RecordPath: path})
	rec.source = &scriptedSource{frames: frames}
	for range frames {
		rec.step()
	}
	rec.OnExit()

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	play := createTestPlaying(t, Options{Replay: data})
	for !play.Finished() {
		play.step()
	}
	defer play.OnExit()

	assert.Equal(t, rec.Simulation().Pose(), play.Simulation().Pose())
}

func TestPlaying_ReloadPhysics(t *testing.T) {
	fsys := fstest.MapFS{
		config.PhysicsFile: {Data: []byte(`{"physics": {"gravity": 2048}}`)},
	}
	p := createTestPlaying(t, Options{Loader: config.NewFSLoader(fsys, "test")})

	p.reload(config.PhysicsFile)

	assert.Equal(t, 2048.0, p.config.Physics.Physics.Gravity)
}

func TestPlaying_ReloadKeepsConfigOnError(t *testing.T) {
	fsys := fstest.MapFS{
		config.PhysicsFile:  {Data: []byte(`{"physics": {"gravity": 2048}, "display": {"tickRate": 0}}`)},
		config.BindingsFile: {Data: []byte("actions:\n  JUMP:\n    keys: [NoSuchKey]\n")},
	}
	p := createTestPlaying(t, Options{Loader: config.NewFSLoader(fsys, "test")})
	before := p.live.sys

	p.reload(config.PhysicsFile)
	p.reload(config.BindingsFile)

	assert.Equal(t, 1024.0, p.config.Physics.Physics.Gravity)
	assert.Same(t, before, p.live.sys)
}

func TestPlaying_ReloadBindings(t *testing.T) {
	fsys := fstest.MapFS{
		config.BindingsFile: {Data: []byte("deadzone: 0.5\nactions:\n  JUMP:\n    keys: [K]\n")},
	}
	p := createTestPlaying(t, Options{Loader: config.NewFSLoader(fsys, "test")})
	before := p.live.sys

	p.reload(config.BindingsFile)

	assert.NotSame(t, before, p.live.sys)
	assert.Equal(t, 0.5, p.config.Bindings.Deadzone)
}

func TestPlaying_Camera(t *testing.T) {
	p := createTestPlaying(t, Options{})

	// The room is 960 wide, 384 tall and the screen 640x384
	camX, camY := p.camera()
	assert.Equal(t, 0.0, camX)
	assert.Equal(t, 0.0, camY)

	assert.Equal(t, 320.0, clampCamera(500, 320))
	assert.Equal(t, 0.0, clampCamera(-20, 320))
	assert.Equal(t, 0.0, clampCamera(10, -100))
}

func TestPlaying_Draw(t *testing.T) {
	p := createTestPlaying(t, Options{})
	img := ebiten.NewImage(p.screenW, p.screenH)

	assert.NotPanics(t, func() {
		p.Draw(img)
	})
}

func TestPlaying_RespawnRequestIsRecorded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "respawn.json")
	p := createTestPlaying(t, Options{RecordPath: path})
	p.source = &scriptedSource{frames: repeat(input.Frame{Right: 1}, 60)}
	for i := 0; i < 30; i++ {
		p.step()
	}

	p.requestRespawn()
	p.step()
	for i := 0; i < 29; i++ {
		p.step()
	}
	p.OnExit()

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	require.Len(t, data.Frames, 60)
	assert.True(t, data.Frames[30].Z)
	assert.False(t, data.Frames[31].Z, "the request covers a single frame")

	play := createTestPlaying(t, Options{Replay: data})
	defer play.OnExit()
	for !play.Finished() {
		play.step()
	}
	assert.Equal(t, p.Simulation().Pose(), play.Simulation().Pose())
}

func TestPlaying_RespawnRequestIgnoredDuringReplay(t *testing.T) {
	data := &replay.ReplayData{Room: "hall", Frames: []replay.FrameInput{{F: 0}}}
	p := createTestPlaying(t, Options{Replay: data})
	defer p.OnExit()

	p.requestRespawn()

	assert.False(t, p.resetPending)
}

func TestPlaying_ReplayTunesAtRecordedRate(t *testing.T) {
	data := &replay.ReplayData{Room: "hall", TickRate: 60, Frames: []replay.FrameInput{{F: 0}}}
	p := createTestPlaying(t, Options{Replay: data})
	defer p.OnExit()

	assert.Equal(t, 60, p.Simulation().Tuning().Display.TickRate)
	assert.Equal(t, 120, p.config.Physics.Display.TickRate)
}

func TestPlaying_ReloadPhysicsIsRecorded(t *testing.T) {
	fsys := fstest.MapFS{
		config.PhysicsFile: {Data: []byte(`{"physics": {"gravity": 2048}}`)},
	}
	path := filepath.Join(t.TempDir(), "retune.json")
	p := createTestPlaying(t, Options{Loader: config.NewFSLoader(fsys, "test"), RecordPath: path})
	p.source = &scriptedSource{frames: repeat(input.Frame{Jump: 1}, 40)}
	for i := 0; i < 10; i++ {
		p.step()
	}
	p.reload(config.PhysicsFile)
	for i := 0; i < 30; i++ {
		p.step()
	}
	p.OnExit()

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	require.NotNil(t, data.Physics)
	assert.Equal(t, 1024.0, data.Physics.Physics.Gravity)
	require.Len(t, data.Retunes, 1)
	assert.Equal(t, 10, data.Retunes[0].F)

	play := createTestPlaying(t, Options{Replay: data})
	defer play.OnExit()
	for !play.Finished() {
		play.step()
	}
	assert.Equal(t, p.Simulation().Pose(), play.Simulation().Pose())
}

func TestPlaying_ReplayIgnoresPhysicsReload(t *testing.T) {
	fsys := fstest.MapFS{
		config.PhysicsFile: {Data: []byte(`{"physics": {"gravity": 2048}}`)},
	}
	data := &replay.ReplayData{Room: "hall", Frames: []replay.FrameInput{{F: 0}}}
	p := createTestPlaying(t, Options{Loader: config.NewFSLoader(fsys, "test"), Replay: data})
	defer p.OnExit()

	p.reload(config.PhysicsFile)

	assert.Equal(t, 1024.0, p.Simulation().Tuning().Physics.Gravity)
}
