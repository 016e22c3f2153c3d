// Package clock provides the frame and time source the simulation runs on.
//
// Timers are stored as anchors: the frame at which an event last happened.
// A window is active while the frames elapsed since the anchor do not exceed
// the window length.
package clock

import "math"

// Anchor is the frame number at which an event occurred.
type Anchor int64

// Unset marks an anchor that has never been set. It is distinct from frame 0.
const Unset Anchor = -1

// IsSet reports whether the anchor refers to a real frame.
func (a Anchor) IsSet() bool {
	return a >= 0
}

// Clock counts simulation frames and elapsed seconds.
type Clock struct {
	frame int64
	time  float64
	delta float64
}

// New creates a clock at frame 0.
func New() *Clock {
	return &Clock{}
}

// Tick advances the clock by one frame of dt seconds.
// A negative or NaN dt advances the frame without moving time.
func (c *Clock) Tick(dt float64) {
	if math.IsNaN(dt) || dt < 0 {
		dt = 0
	}
	c.frame++
	c.time += dt
	c.delta = dt
}

// Frame returns the current frame number.
func (c *Clock) Frame() int64 {
	return c.frame
}

// Time returns the elapsed simulation time in seconds.
func (c *Clock) Time() float64 {
	return c.time
}

// DeltaTime returns the dt of the last tick.
func (c *Clock) DeltaTime() float64 {
	return c.delta
}

// Mark returns an anchor for the current frame.
func (c *Clock) Mark() Anchor {
	return Anchor(c.frame)
}

// Since returns the number of frames elapsed since the anchor.
// Unset anchors report math.MaxInt64 so they never fall inside a window.
func (c *Clock) Since(a Anchor) int64 {
	if !a.IsSet() {
		return math.MaxInt64
	}
	return c.frame - int64(a)
}

// Within reports whether the anchor lies inside a window of the given length.
func (c *Clock) Within(a Anchor, window int64) bool {
	return a.IsSet() && c.frame-int64(a) <= window
}

// FramesFor converts a duration in seconds to a whole number of frames at
// the given tick rate, rounding up so short windows never collapse to zero.
func FramesFor(seconds float64, tickRate int) int64 {
	if seconds <= 0 || tickRate <= 0 {
		return 0
	}
	return int64(math.Ceil(seconds*float64(tickRate) - 1e-9))
}
