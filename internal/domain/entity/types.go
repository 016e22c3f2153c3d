package entity

// TileType represents the role of a tile in a room
type TileType int

const (
	TileEmpty TileType = iota
	TileSolid
	TileOneWay
	TileSpike
	TileSpawnZone
)

// String returns the layer-style name of the tile type
func (t TileType) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileSolid:
		return "solid"
	case TileOneWay:
		return "one_way"
	case TileSpike:
		return "spike"
	case TileSpawnZone:
		return "spawn_zone"
	default:
		return "unknown"
	}
}

// Rect is an axis-aligned rectangle in world units.
// The world is y-up: (X, Y) is the bottom-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// RectCentered builds a rect of size w x h around (cx, cy)
func RectCentered(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

func (r Rect) Left() float64    { return r.X }
func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Bottom() float64  { return r.Y }
func (r Rect) Top() float64     { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Overlaps reports strict overlap. Rects that only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left() < o.Right() && r.Right() > o.Left() &&
		r.Bottom() < o.Top() && r.Top() > o.Bottom()
}

// Tile is a static collider in a room
type Tile struct {
	Rect
	Type TileType
}

// NewTile creates a tile with its bottom-left corner at (x, y)
func NewTile(x, y, w, h float64, t TileType) *Tile {
	return &Tile{Rect: Rect{X: x, Y: y, W: w, H: h}, Type: t}
}
