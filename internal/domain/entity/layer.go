package entity

import (
	"math"
	"sort"

	"github.com/solarlune/resolv"
)

const (
	tileTag       = "tile"
	layerCellSize = 32
	layerPadding  = 64
)

// TileLayer is a named, read-only collection of tiles with a broadphase
// index. Queries never mutate the tiles.
type TileLayer struct {
	name   string
	tiles  []*Tile
	space  *resolv.Space
	lookup map[*resolv.Object]int

	originX, originY float64
}

// NewTileLayer indexes the given tiles under a layer name
func NewTileLayer(name string, tiles []*Tile) *TileLayer {
	l := &TileLayer{
		name:   name,
		tiles:  tiles,
		lookup: make(map[*resolv.Object]int, len(tiles)),
	}
	if len(tiles) == 0 {
		return l
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, t := range tiles {
		minX = math.Min(minX, t.Left())
		minY = math.Min(minY, t.Bottom())
		maxX = math.Max(maxX, t.Right())
		maxY = math.Max(maxY, t.Top())
	}

	// resolv cells start at 0, so the layer is shifted to a padded origin
	l.originX = minX - layerPadding
	l.originY = minY - layerPadding
	w := int(math.Ceil(maxX-l.originX)) + layerPadding
	h := int(math.Ceil(maxY-l.originY)) + layerPadding
	l.space = resolv.NewSpace(w, h, layerCellSize, layerCellSize)

	for i, t := range tiles {
		obj := resolv.NewObject(t.X-l.originX, t.Y-l.originY, t.W, t.H, tileTag)
		l.space.Add(obj)
		l.lookup[obj] = i
	}
	return l
}

// MergeLayers builds a union layer sharing the tiles of the given layers
func MergeLayers(name string, layers ...*TileLayer) *TileLayer {
	var tiles []*Tile
	for _, l := range layers {
		if l == nil {
			continue
		}
		tiles = append(tiles, l.tiles...)
	}
	return NewTileLayer(name, tiles)
}

// Name returns the layer key
func (l *TileLayer) Name() string {
	return l.name
}

// Tiles returns the tiles in insertion order
func (l *TileLayer) Tiles() []*Tile {
	return l.tiles
}

// Len returns the number of tiles
func (l *TileLayer) Len() int {
	return len(l.tiles)
}

// Overlapping returns the tiles strictly overlapping r, in insertion order
func (l *TileLayer) Overlapping(r Rect) []*Tile {
	if l == nil || l.space == nil {
		return nil
	}

	// The query object is one unit larger on every side so cell rounding
	// in the broadphase never drops a candidate; the exact test follows.
	probe := resolv.NewObject(r.X-l.originX-1, r.Y-l.originY-1, r.W+2, r.H+2)
	l.space.Add(probe)
	check := probe.Check(0, 0, tileTag)
	l.space.Remove(probe)
	if check == nil {
		return nil
	}

	candidates := check.ObjectsByTags(tileTag)
	indices := make([]int, 0, len(candidates))
	seen := make(map[int]bool, len(candidates))
	for _, obj := range candidates {
		i, ok := l.lookup[obj]
		if !ok || seen[i] {
			continue
		}
		seen[i] = true
		if l.tiles[i].Overlaps(r) {
			indices = append(indices, i)
		}
	}
	if len(indices) == 0 {
		return nil
	}

	sort.Ints(indices)
	hits := make([]*Tile, len(indices))
	for n, i := range indices {
		hits[n] = l.tiles[i]
	}
	return hits
}

// Any reports whether any tile strictly overlaps r
func (l *TileLayer) Any(r Rect) bool {
	return len(l.Overlapping(r)) > 0
}
