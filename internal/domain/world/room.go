// Package world holds rooms, their collision layers and the gates that
// connect them.
package world

import (
	"fmt"

	"github.com/younwookim/ledgeline/internal/domain/entity"
)

// Layer keys every room provides
const (
	LayerGround     = "ground"
	LayerOneWay     = "one_way"
	LayerAllGround  = "all_ground"
	LayerSpikes     = "spikes"
	LayerSpawnZones = "spawn_zones"
)

// Room is one screen of level geometry
type Room struct {
	Name   string
	Width  float64
	Height float64
	SpawnX float64
	SpawnY float64
	Gates  []*Gate

	layers map[string]*entity.TileLayer
}

// NewRoom builds a room from its tile sets. The all_ground union is derived
// from ground and one_way.
func NewRoom(name string, width, height float64, ground, oneWay, spikes, spawnZones []*entity.Tile) *Room {
	g := entity.NewTileLayer(LayerGround, ground)
	o := entity.NewTileLayer(LayerOneWay, oneWay)
	return &Room{
		Name:   name,
		Width:  width,
		Height: height,
		layers: map[string]*entity.TileLayer{
			LayerGround:     g,
			LayerOneWay:     o,
			LayerAllGround:  entity.MergeLayers(LayerAllGround, g, o),
			LayerSpikes:     entity.NewTileLayer(LayerSpikes, spikes),
			LayerSpawnZones: entity.NewTileLayer(LayerSpawnZones, spawnZones),
		},
	}
}

// Layer returns a collision layer. Unknown keys panic.
func (r *Room) Layer(name string) *entity.TileLayer {
	l, ok := r.layers[name]
	if !ok {
		panic(fmt.Sprintf("world: room %q has no layer %q", r.Name, name))
	}
	return l
}

// Gate returns the gate with the given id
func (r *Room) Gate(id int) (*Gate, bool) {
	for _, g := range r.Gates {
		if g.ID == id {
			return g, true
		}
	}
	return nil, false
}

// GateAt returns the first gate overlapping the rect
func (r *Room) GateAt(bounds entity.Rect) (*Gate, bool) {
	for _, g := range r.Gates {
		if g.Rect.Overlaps(bounds) {
			return g, true
		}
	}
	return nil, false
}
