package system

import (
	"fmt"

	"github.com/younwookim/ledgeline/internal/domain/entity"
	"github.com/younwookim/ledgeline/internal/domain/world"
	"github.com/younwookim/ledgeline/internal/infrastructure/config"
	"github.com/younwookim/ledgeline/internal/infrastructure/tmx"
)

// BuildRoom converts a RoomConfig into a Room. Collision rows are read top
// to bottom and flipped into the y-up world.
func BuildRoom(cfg *config.RoomConfig) (*world.Room, error) {
	if cfg.TileSize <= 0 {
		return nil, fmt.Errorf("room %s: tile size must be positive", cfg.ID)
	}
	ts := float64(cfg.TileSize)
	rows := cfg.Layers.Collision

	cols := 0
	for _, row := range rows {
		cols = max(cols, len(row))
	}
	width, height := float64(cols)*ts, float64(len(rows))*ts

	tiles := make(map[entity.TileType][]*entity.Tile)
	for y, row := range rows {
		top := height - float64(y)*ts
		for x, char := range row {
			mapping, ok := cfg.TileMapping[string(char)]
			if !ok {
				continue
			}
			kind, err := parseTileType(mapping.Type)
			if err != nil {
				return nil, fmt.Errorf("room %s: tile %q: %w", cfg.ID, char, err)
			}
			if kind == entity.TileEmpty {
				continue
			}

			h := ts
			if mapping.Height > 0 && float64(mapping.Height) < ts {
				h = float64(mapping.Height)
			}
			tiles[kind] = append(tiles[kind], entity.NewTile(float64(x)*ts, top-h, ts, h, kind))
		}
	}

	room := world.NewRoom(cfg.ID, width, height,
		tiles[entity.TileSolid], tiles[entity.TileOneWay], tiles[entity.TileSpike], tiles[entity.TileSpawnZone])
	room.SpawnX, room.SpawnY = cfg.Spawn.X, cfg.Spawn.Y

	for _, g := range cfg.Gates {
		dir, err := world.ParseDirection(g.Direction)
		if err != nil {
			return nil, fmt.Errorf("room %s: gate %d: %w", cfg.ID, g.ID, err)
		}
		room.Gates = append(room.Gates, &world.Gate{
			ID:         g.ID,
			Rect:       entity.Rect{X: g.Rect.X, Y: g.Rect.Y, W: g.Rect.W, H: g.Rect.H},
			Direction:  dir,
			TargetRoom: g.TargetRoom,
			TargetGate: g.TargetGate,
		})
	}

	return room, nil
}

func parseTileType(s string) (entity.TileType, error) {
	switch s {
	case "", "empty":
		return entity.TileEmpty, nil
	case "solid":
		return entity.TileSolid, nil
	case "one_way":
		return entity.TileOneWay, nil
	case "spike":
		return entity.TileSpike, nil
	case "spawn_zone":
		return entity.TileSpawnZone, nil
	}
	return entity.TileEmpty, fmt.Errorf("unknown tile type %q", s)
}

// LoadAtlas loads every JSON and TMX room under the loader's rooms dir
func LoadAtlas(loader *config.Loader) (*world.Atlas, error) {
	names, err := loader.RoomNames()
	if err != nil {
		return nil, err
	}

	atlas := world.NewAtlas()
	for _, name := range names {
		cfg, err := loader.LoadRoom(name)
		if err != nil {
			return nil, err
		}
		room, err := BuildRoom(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to build room %s: %w", name, err)
		}
		if err := addRoom(atlas, room); err != nil {
			return nil, err
		}
	}

	rooms, err := tmx.LoadRooms(loader.FS(), config.RoomsDir)
	if err != nil {
		return nil, err
	}
	for _, room := range rooms {
		if err := addRoom(atlas, room); err != nil {
			return nil, err
		}
	}

	return atlas, nil
}

// addRoom refuses a second room under a name already in the atlas
func addRoom(atlas *world.Atlas, room *world.Room) error {
	if _, ok := atlas.Room(room.Name); ok {
		return fmt.Errorf("failed to add room %s: duplicate name", room.Name)
	}
	atlas.Add(room)
	return nil
}
