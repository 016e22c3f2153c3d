package config

// RoomConfig is the root config for rooms/<name>.json.
// Collision rows are listed top to bottom; world coordinates are y-up.
type RoomConfig struct {
	ID          string                       `json:"id"`
	Name        string                       `json:"name"`
	TileSize    int                          `json:"tileSize"`
	Spawn       PositionConfig               `json:"spawn"`
	Layers      LayersConfig                 `json:"layers"`
	TileMapping map[string]TileMappingConfig `json:"tileMapping"`
	Gates       []GateConfig                 `json:"gates"`
}

type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type LayersConfig struct {
	Collision []string `json:"collision"`
}

type TileMappingConfig struct {
	Type string `json:"type"` // solid, one_way, spike, spawn_zone
	// Height trims the tile to its top slice, e.g. thin one-way platforms.
	// Zero means a full tile.
	Height int `json:"height,omitempty"`
}

type GateConfig struct {
	ID         int        `json:"id"`
	Rect       RectConfig `json:"rect"`
	Direction  string     `json:"direction"`
	TargetRoom string     `json:"targetRoom"`
	TargetGate int        `json:"targetGate"`
}

type RectConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}
