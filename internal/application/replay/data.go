package replay

import (
	"github.com/younwookim/ledgeline/internal/domain/input"
	"github.com/younwookim/ledgeline/internal/infrastructure/config"
)

// Version is written into new recordings
const Version = "1.0"

// FrameInput records device state for a single frame
type FrameInput struct {
	F int     `json:"f"`           // Frame number
	L float64 `json:"l,omitempty"` // Left
	R float64 `json:"r,omitempty"` // Right
	J float64 `json:"j,omitempty"` // Jump
	C float64 `json:"c,omitempty"` // Crouch
	S float64 `json:"s,omitempty"` // Sprint
	D float64 `json:"d,omitempty"` // Dash
	X float64 `json:"x,omitempty"` // Stick X
	Z bool    `json:"z,omitempty"` // Respawn requested
}

// NewFrameInput captures frame n of device state
func NewFrameInput(n int, f input.Frame) FrameInput {
	return FrameInput{
		F: n,
		L: f.Left,
		R: f.Right,
		J: f.Jump,
		C: f.Crouch,
		S: f.Sprint,
		D: f.Dash,
		X: f.StickX,
		Z: f.Reset,
	}
}

// Frame converts the record back into device state
func (fi FrameInput) Frame() input.Frame {
	return input.Frame{
		Left:   fi.L,
		Right:  fi.R,
		Jump:   fi.J,
		Crouch: fi.C,
		Sprint: fi.S,
		Dash:   fi.D,
		StickX: fi.X,
		Reset:  fi.Z,
	}
}

// Retune is a physics change that took effect before frame F
type Retune struct {
	F       int                   `json:"f"`
	Physics *config.PhysicsConfig `json:"physics"`
}

// ReplayData contains all data needed to replay a session. Physics is the
// tuning at the first frame; recordings without it replay under the
// caller's tuning.
type ReplayData struct {
	Version   string                `json:"version"`
	Room      string                `json:"room"`
	TickRate  int                   `json:"tickRate"`
	StartTime string                `json:"startTime"`
	Physics   *config.PhysicsConfig `json:"physics,omitempty"`
	Retunes   []Retune              `json:"retunes,omitempty"`
	Frames    []FrameInput          `json:"frames"`
}

// atTickRate copies cfg with its tick rate replaced, so frame windows are
// derived from the rate the frames were recorded at
func atTickRate(cfg *config.PhysicsConfig, tickRate int) *config.PhysicsConfig {
	c := *cfg
	c.Display.TickRate = tickRate
	return &c
}
