package input

// Frame is one tick of abstract device state. Digital sources use 0 or 1.
type Frame struct {
	Left   float64
	Right  float64
	Jump   float64
	Crouch float64
	Sprint float64
	Dash   float64
	// StickX is an analog horizontal contribution in [-1,1].
	StickX float64
	// Reset asks the simulation to respawn before stepping this tick. It is
	// a request, not a button, and never reaches the input set.
	Reset bool
}

// IsZero reports whether nothing is held.
func (f Frame) IsZero() bool {
	return f == Frame{}
}
