package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/ledgeline/internal/domain/clock"
	"github.com/younwookim/ledgeline/internal/domain/entity"
)

// recordingHandler captures the velocity each hook sees
type recordingHandler struct {
	actor  *entity.Actor
	bottom []float64
	left   []float64
}

func (h *recordingHandler) CollideBottom(*entity.Tile) { h.bottom = append(h.bottom, h.actor.VY) }
func (h *recordingHandler) CollideTop(*entity.Tile)    {}
func (h *recordingHandler) CollideLeft(*entity.Tile)   { h.left = append(h.left, h.actor.VX) }
func (h *recordingHandler) CollideRight(*entity.Tile)  {}

func createTestPhysics(x, y float64) (*PhysicsSystem, *entity.Actor, *recordingHandler) {
	clk := clock.New()
	clk.Tick(1.0 / 120)
	actor := entity.NewActor(x, y, 20, 44)
	handler := &recordingHandler{actor: actor}
	probe := NewProbe(actor, NewTuning(nil))
	return NewPhysicsSystem(actor, clk, probe, handler), actor, handler
}

func createTestLayers(tiles ...*entity.Tile) Layers {
	l := entity.NewTileLayer("ground", tiles)
	return Layers{Ground: l, Ceiling: l, Left: l, Right: l}
}

func TestPhysicsSystem_Move(t *testing.T) {
	sys, a, _ := createTestPhysics(100, 100)
	a.VX, a.VY = 120, -240

	sys.Move(0.5)

	assert.Equal(t, 100.0, a.OldX)
	assert.Equal(t, 100.0, a.OldY)
	assert.Equal(t, 160.0, a.X)
	assert.Equal(t, -20.0, a.Y)
}

func TestPhysicsSystem_Landing(t *testing.T) {
	floor := entity.NewTile(0, 0, 320, 64, entity.TileSolid)
	layers := createTestLayers(floor)

	tests := []struct {
		name   string
		bottom float64
		vy     float64
		dt     float64
	}{
		{"slow landing", 65, -100, 1.0 / 120},
		{"fast fall does not tunnel", 100, -5000, 1.0 / 60},
		{"fall faster than the floor is thick", 100, -20000, 1.0 / 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys, a, h := createTestPhysics(160, tt.bottom+22)
			a.VY = tt.vy

			sys.Move(tt.dt)
			sys.ResolveCollisions(layers)

			assert.True(t, a.OnGround)
			assert.Equal(t, 64.0, a.Bottom())
			assert.Equal(t, 0.0, a.VY)
			assert.Equal(t, clock.Anchor(1), a.ForgivenEdge)
			// the hook saw the impact speed
			require.Len(t, h.bottom, 1)
			assert.Equal(t, tt.vy, h.bottom[0])
		})
	}
}

func TestPhysicsSystem_RisingIgnoresGround(t *testing.T) {
	floor := entity.NewTile(0, 0, 320, 64, entity.TileSolid)
	sys, a, h := createTestPhysics(160, 64+22)
	a.VY = 100

	sys.Move(1.0 / 120)
	sys.ResolveCollisions(createTestLayers(floor))

	assert.False(t, a.OnGround)
	assert.Empty(t, h.bottom)
	assert.Greater(t, a.VY, 0.0)
}

func TestPhysicsSystem_OneWayFromBelow(t *testing.T) {
	platform := entity.NewTile(100, 152, 128, 8, entity.TileOneWay)
	layers := createTestLayers(platform)

	t.Run("bottom already past the top falls through", func(t *testing.T) {
		sys, a, _ := createTestPhysics(160, 156+22)
		a.VY = -10

		sys.Move(1.0 / 120)
		sys.ResolveCollisions(layers)

		assert.False(t, a.OnGround)
	})

	t.Run("landing from above holds", func(t *testing.T) {
		sys, a, _ := createTestPhysics(160, 161+22)
		a.VY = -200

		sys.Move(1.0 / 120)
		sys.ResolveCollisions(layers)

		assert.True(t, a.OnGround)
		assert.Equal(t, 160.0, a.Bottom())
	})
}

func TestPhysicsSystem_Walls(t *testing.T) {
	wall := entity.NewTile(0, 0, 32, 320, entity.TileSolid)
	layers := createTestLayers(wall)

	t.Run("moving into the wall snaps and clamps", func(t *testing.T) {
		sys, a, h := createTestPhysics(43, 200)
		a.VX = -600

		sys.Move(1.0 / 120)
		sys.ResolveCollisions(layers)

		assert.True(t, a.OnLeft)
		assert.Equal(t, 32.0, a.Left())
		assert.Equal(t, 0.0, a.VX)
		require.Len(t, h.left, 1)
		assert.Equal(t, -600.0, h.left[0])
	})

	t.Run("at rest against the wall keeps contact", func(t *testing.T) {
		sys, a, _ := createTestPhysics(42, 200)

		sys.Move(1.0 / 120)
		sys.ResolveCollisions(layers)

		assert.True(t, a.OnLeft)
		assert.False(t, a.OnRight)
	})

	t.Run("moving away clears contact", func(t *testing.T) {
		sys, a, _ := createTestPhysics(42, 200)
		a.OnLeft = true
		a.VX = 100

		sys.Move(1.0 / 120)
		sys.ResolveCollisions(layers)

		assert.False(t, a.OnLeft)
		assert.Equal(t, 100.0, a.VX)
	})
}

func TestPhysicsSystem_Ceiling(t *testing.T) {
	ceiling := entity.NewTile(0, 200, 320, 32, entity.TileSolid)
	sys, a, _ := createTestPhysics(160, 200-22-1)
	a.VY = 400

	sys.Move(1.0 / 120)
	sys.ResolveCollisions(createTestLayers(ceiling))

	assert.True(t, a.OnCeiling)
	assert.Equal(t, 200.0, a.Top())
	assert.Equal(t, 0.0, a.VY)
}

func TestPhysicsSystem_NilHandler(t *testing.T) {
	floor := entity.NewTile(0, 0, 320, 64, entity.TileSolid)
	clk := clock.New()
	actor := entity.NewActor(160, 64+22+1, 20, 44)
	actor.VY = -100
	sys := NewPhysicsSystem(actor, clk, NewProbe(actor, NewTuning(nil)), nil)

	sys.Move(1.0 / 120)
	sys.ResolveCollisions(createTestLayers(floor))

	assert.True(t, actor.OnGround)
}
