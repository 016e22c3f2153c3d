// Package input provides the button and axis signals the movement core reads.
//
// Device polling happens elsewhere; this package only tracks values, edges
// and the frames at which they happened. Observers run synchronously inside
// the call that changed the signal.
package input

import "github.com/younwookim/ledgeline/internal/domain/clock"

// ButtonFunc observes a button edge or hold.
type ButtonFunc func(b *Button)

type buttonObserver struct {
	id int
	fn ButtonFunc
}

type buttonObservers struct {
	next  int
	items []buttonObserver
}

func (o *buttonObservers) add(fn ButtonFunc) func() {
	o.next++
	id := o.next
	o.items = append(o.items, buttonObserver{id: id, fn: fn})
	return func() {
		for i, item := range o.items {
			if item.id == id {
				o.items = append(o.items[:i:i], o.items[i+1:]...)
				return
			}
		}
	}
}

func (o *buttonObservers) notify(b *Button) {
	for _, item := range o.items {
		item.fn(b)
	}
}

// Button is a digital or analog trigger with values in [0,1].
type Button struct {
	id    string
	clock *clock.Clock

	value        float64
	pressFrame   clock.Anchor
	pressTime    float64
	releaseFrame clock.Anchor
	releaseTime  float64

	onPress   buttonObservers
	onHold    buttonObservers
	onRelease buttonObservers
}

// NewButton creates a released button stamped by the given clock.
func NewButton(id string, clk *clock.Clock) *Button {
	return &Button{
		id:           id,
		clock:        clk,
		pressFrame:   clock.Unset,
		releaseFrame: clock.Unset,
	}
}

// ID returns the button name.
func (b *Button) ID() string {
	return b.id
}

// Press records a press edge. Pressing an already pressed button, or
// pressing with a zero value, does nothing.
func (b *Button) Press(value float64) {
	value = clamp01(value)
	if b.value != 0 || value == 0 {
		return
	}
	b.value = value
	b.pressFrame = b.clock.Mark()
	b.pressTime = b.clock.Time()
	b.onPress.notify(b)
}

// Hold refreshes the value of a pressed button and fires hold observers.
func (b *Button) Hold(value float64) {
	if b.value == 0 {
		return
	}
	if v := clamp01(value); v != 0 {
		b.value = v
	}
	b.onHold.notify(b)
}

// Release records a release edge. Releasing a released button does nothing.
func (b *Button) Release() {
	if b.value == 0 {
		return
	}
	b.value = 0
	b.releaseFrame = b.clock.Mark()
	b.releaseTime = b.clock.Time()
	b.onRelease.notify(b)
}

// Value returns the current pressed value, 0 when released.
func (b *Button) Value() float64 {
	return b.value
}

// IsPressed reports whether the button is down.
func (b *Button) IsPressed() bool {
	return b.value != 0
}

// PressFrame returns the frame of the current press, or clock.Unset while
// the button is released.
func (b *Button) PressFrame() clock.Anchor {
	if !b.IsPressed() {
		return clock.Unset
	}
	return b.pressFrame
}

// PressTime returns the time of the current press, 0 while released.
func (b *Button) PressTime() float64 {
	if !b.IsPressed() {
		return 0
	}
	return b.pressTime
}

// ReleaseFrame returns the frame of the last release.
func (b *Button) ReleaseFrame() clock.Anchor {
	return b.releaseFrame
}

// ReleaseTime returns the time of the last release.
func (b *Button) ReleaseTime() float64 {
	return b.releaseTime
}

// Held reports whether the button has been held for at least length seconds.
func (b *Button) Held(length float64) bool {
	return b.IsPressed() && b.clock.Time()-b.pressTime >= length
}

// HeldFrames reports whether the button has been held for at least n frames.
func (b *Button) HeldFrames(n int64) bool {
	return b.IsPressed() && b.clock.Since(b.pressFrame) >= n
}

// OnPress registers an observer for press edges. The returned func removes it.
func (b *Button) OnPress(fn ButtonFunc) func() {
	return b.onPress.add(fn)
}

// OnHold registers an observer called every tick the button stays held.
func (b *Button) OnHold(fn ButtonFunc) func() {
	return b.onHold.add(fn)
}

// OnRelease registers an observer for release edges.
func (b *Button) OnRelease(fn ButtonFunc) func() {
	return b.onRelease.add(fn)
}

func clamp01(v float64) float64 {
	switch {
	case v != v, v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
