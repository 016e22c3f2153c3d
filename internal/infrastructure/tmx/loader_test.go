package tmx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/ledgeline/internal/domain/entity"
	"github.com/younwookim/ledgeline/internal/domain/world"
)

const configDir = "../../../cmd/game/configs"

func loadTower(t *testing.T) *world.Room {
	t.Helper()
	room, err := LoadRoom(os.DirFS(configDir), "rooms/tower.tmx")
	require.NoError(t, err)
	return room
}

func TestLoadRoom(t *testing.T) {
	room := loadTower(t)

	t.Run("size and name", func(t *testing.T) {
		assert.Equal(t, "tower", room.Name)
		assert.Equal(t, 320.0, room.Width)
		assert.Equal(t, 256.0, room.Height)
	})

	t.Run("spawn point is flipped to y-up", func(t *testing.T) {
		assert.Equal(t, 64.0, room.SpawnX)
		assert.Equal(t, 106.0, room.SpawnY)
	})

	t.Run("ground tiles", func(t *testing.T) {
		ground := room.Layer(world.LayerGround)
		// the bottom-left cell is at the world origin
		assert.True(t, ground.Any(entity.Rect{X: 1, Y: 1, W: 1, H: 1}))
		// the shaft under the gate is open
		assert.False(t, ground.Any(entity.Rect{X: 130, Y: 1, W: 60, H: 60}))
		// the ceiling row
		assert.True(t, ground.Any(entity.Rect{X: 100, Y: 230, W: 1, H: 1}))
	})

	t.Run("one-way tiles are thin and at the top of the cell", func(t *testing.T) {
		oneWay := room.Layer(world.LayerOneWay)
		require.Equal(t, 2, oneWay.Len())
		tile := oneWay.Tiles()[0]
		assert.Equal(t, entity.TileOneWay, tile.Type)
		assert.Equal(t, 96.0, tile.X)
		assert.Equal(t, 8.0, tile.H)
		assert.Equal(t, 160.0, tile.Top())
	})

	t.Run("spikes and spawn zones", func(t *testing.T) {
		spikes := room.Layer(world.LayerSpikes)
		require.Equal(t, 1, spikes.Len())
		assert.Equal(t, entity.Rect{X: 256, Y: 64, W: 32, H: 32}, spikes.Tiles()[0].Rect)

		assert.Equal(t, 2, room.Layer(world.LayerSpawnZones).Len())
	})

	t.Run("all_ground merges ground and one-way", func(t *testing.T) {
		all := room.Layer(world.LayerAllGround)
		assert.Equal(t, room.Layer(world.LayerGround).Len()+2, all.Len())
	})

	t.Run("gates", func(t *testing.T) {
		require.Len(t, room.Gates, 1)
		g := room.Gates[0]
		assert.Equal(t, 2, g.ID)
		assert.Equal(t, world.DirBottom, g.Direction)
		assert.Equal(t, "shaft", g.TargetRoom)
		assert.Equal(t, 2, g.TargetGate)
		assert.Equal(t, entity.Rect{X: 128, Y: 0, W: 64, H: 16}, g.Rect)
	})
}

func TestLoadRooms(t *testing.T) {
	rooms, err := LoadRooms(os.DirFS(configDir), "rooms")
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "tower", rooms[0].Name)
}

func TestLoadRoom_Missing(t *testing.T) {
	_, err := LoadRoom(os.DirFS(configDir), "rooms/nope.tmx")
	assert.Error(t, err)
}
