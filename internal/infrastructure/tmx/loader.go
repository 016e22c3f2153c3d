// Package tmx loads rooms authored in the Tiled map editor.
//
// Tile layers are matched by name (ground, one_way, spikes, spawn_zones).
// A layer's "height" int property trims its tiles to their top slice. The
// "gates" object group carries id, direction, targetRoom and targetGate
// properties; the first object of the "spawn" group is the spawn point.
// Tiled is y-down, so every rect is flipped into the y-up world.
package tmx

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/younwookim/ledgeline/internal/domain/entity"
	"github.com/younwookim/ledgeline/internal/domain/world"
)

// Object group names
const (
	GroupGates = "gates"
	GroupSpawn = "spawn"
)

var layerTypes = map[string]entity.TileType{
	world.LayerGround:     entity.TileSolid,
	world.LayerOneWay:     entity.TileOneWay,
	world.LayerSpikes:     entity.TileSpike,
	world.LayerSpawnZones: entity.TileSpawnZone,
}

// LoadRoom parses the map at p in fsys. The room is named after the file.
func LoadRoom(fsys fs.FS, p string) (*world.Room, error) {
	m, err := tiled.LoadFile(p, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("failed to load map %s: %w", p, err)
	}

	tw, th := float64(m.TileWidth), float64(m.TileHeight)
	width, height := float64(m.Width)*tw, float64(m.Height)*th

	tiles := make(map[entity.TileType][]*entity.Tile)
	for _, layer := range m.Layers {
		kind, ok := layerTypes[layer.Name]
		if !ok {
			continue
		}
		h := th
		if v := layer.Properties.GetInt("height"); v > 0 && float64(v) < th {
			h = float64(v)
		}
		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				i := y*m.Width + x
				if i >= len(layer.Tiles) || layer.Tiles[i].IsNil() {
					continue
				}
				// thin tiles sit at the top of their cell
				top := height - float64(y)*th
				tiles[kind] = append(tiles[kind], entity.NewTile(float64(x)*tw, top-h, tw, h, kind))
			}
		}
	}

	name := strings.TrimSuffix(path.Base(p), path.Ext(p))
	room := world.NewRoom(name, width, height,
		tiles[entity.TileSolid], tiles[entity.TileOneWay], tiles[entity.TileSpike], tiles[entity.TileSpawnZone])
	room.SpawnX, room.SpawnY = width/2, height/2

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case GroupGates:
			for _, o := range og.Objects {
				dir, err := world.ParseDirection(o.Properties.GetString("direction"))
				if err != nil {
					return nil, fmt.Errorf("failed to load map %s: object %d: %w", p, o.ID, err)
				}
				room.Gates = append(room.Gates, &world.Gate{
					ID:         o.Properties.GetInt("id"),
					Rect:       entity.Rect{X: o.X, Y: height - o.Y - o.Height, W: o.Width, H: o.Height},
					Direction:  dir,
					TargetRoom: o.Properties.GetString("targetRoom"),
					TargetGate: o.Properties.GetInt("targetGate"),
				})
			}
		case GroupSpawn:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				room.SpawnX, room.SpawnY = o.X, height-o.Y
			}
		}
	}

	sort.Slice(room.Gates, func(i, j int) bool { return room.Gates[i].ID < room.Gates[j].ID })
	return room, nil
}

// LoadRooms loads every .tmx map in dir, sorted by name
func LoadRooms(fsys fs.FS, dir string) ([]*world.Room, error) {
	matches, err := fs.Glob(fsys, path.Join(dir, "*.tmx"))
	if err != nil {
		return nil, fmt.Errorf("failed to list maps in %s: %w", dir, err)
	}
	sort.Strings(matches)

	rooms := make([]*world.Room, 0, len(matches))
	for _, p := range matches {
		room, err := LoadRoom(fsys, p)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}
