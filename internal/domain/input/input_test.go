package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/ledgeline/internal/domain/clock"
)

func TestButton_PressIsIdempotent(t *testing.T) {
	clk := clock.New()
	b := NewButton(Jump, clk)

	presses := 0
	b.OnPress(func(*Button) { presses++ })

	clk.Tick(1.0 / 60.0)
	b.Press(1.0)
	first := b.PressFrame()

	clk.Tick(1.0 / 60.0)
	b.Press(1.0)

	assert.Equal(t, first, b.PressFrame())
	assert.Equal(t, clock.Anchor(1), b.PressFrame())
	assert.Equal(t, 1, presses)
}

func TestButton_ZeroPressIsIgnored(t *testing.T) {
	b := NewButton(Jump, clock.New())
	b.Press(0)
	assert.False(t, b.IsPressed())
	assert.Equal(t, clock.Unset, b.PressFrame())
}

func TestButton_ReleaseMasksPress(t *testing.T) {
	clk := clock.New()
	b := NewButton(Crouch, clk)

	releases := 0
	b.OnRelease(func(*Button) { releases++ })

	b.Release()
	assert.Equal(t, 0, releases, "release of a released button is a no-op")

	clk.Tick(0.5)
	b.Press(1)
	assert.Equal(t, 0.5, b.PressTime())

	clk.Tick(0.5)
	b.Release()
	b.Release()

	assert.Equal(t, 1, releases)
	assert.Equal(t, clock.Unset, b.PressFrame())
	assert.Equal(t, 0.0, b.PressTime())
	assert.Equal(t, clock.Anchor(2), b.ReleaseFrame())
	assert.Equal(t, 1.0, b.ReleaseTime())
}

func TestButton_Held(t *testing.T) {
	clk := clock.New()
	b := NewButton(Sprint, clk)
	b.Press(1)

	assert.True(t, b.Held(0))
	assert.False(t, b.Held(0.2))
	assert.False(t, b.HeldFrames(2))

	clk.Tick(0.1)
	clk.Tick(0.1)

	assert.True(t, b.Held(0.2))
	assert.True(t, b.HeldFrames(2))
	assert.False(t, b.HeldFrames(3))

	b.Release()
	assert.False(t, b.Held(0))
}

func TestButton_ObserverCancel(t *testing.T) {
	b := NewButton(Jump, clock.New())

	var calls []string
	cancelA := b.OnPress(func(*Button) { calls = append(calls, "a") })
	b.OnPress(func(*Button) { calls = append(calls, "b") })

	cancelA()
	b.Press(1)

	assert.Equal(t, []string{"b"}, calls)
}

func TestButton_HoldObservers(t *testing.T) {
	b := NewButton(Jump, clock.New())

	holds := 0
	b.OnHold(func(*Button) { holds++ })

	b.Hold(1)
	assert.Equal(t, 0, holds, "hold does nothing while released")

	b.Press(0.5)
	b.Hold(0.75)
	b.Hold(0.75)

	assert.Equal(t, 2, holds)
	assert.Equal(t, 0.75, b.Value())
}

func TestAxis_Update(t *testing.T) {
	tests := []struct {
		name     string
		deltas   []float64
		expected float64
	}{
		{"clamped high", []float64{1, 1}, 1},
		{"opposing sources cancel", []float64{1, -1}, 0},
		{"clamped low", []float64{-1, -0.5}, -1},
		{"analog", []float64{0.25, 0.25}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAxis(Horizontal)
			for _, d := range tt.deltas {
				a.Update(d)
			}
			assert.Equal(t, tt.expected, a.Value())
		})
	}
}

func TestAxis_ObserverGetsClampedValue(t *testing.T) {
	a := NewAxis(Horizontal)

	var seen []float64
	a.OnChange(func(v float64) { seen = append(seen, v) })

	a.Update(1)
	a.Update(1) // already at the limit, no change
	a.Update(-1)

	assert.Equal(t, []float64{1, 0}, seen)
}

func TestSet_UnknownNamesPanic(t *testing.T) {
	s := NewSet(clock.New())

	assert.Panics(t, func() { s.Button("FLY") })
	assert.Panics(t, func() { s.Axis("VERTICAL") })
	assert.NotPanics(t, func() { s.Button(Jump) })
}

func TestSet_Apply(t *testing.T) {
	clk := clock.New()
	s := NewSet(clk)

	var axisValues []float64
	s.Axis(Horizontal).OnChange(func(v float64) { axisValues = append(axisValues, v) })

	jumps := 0
	s.Button(Jump).OnPress(func(*Button) { jumps++ })

	clk.Tick(1.0 / 60.0)
	s.Apply(Frame{Right: 1, Jump: 1})
	require.Equal(t, 1.0, s.Axis(Horizontal).Value())
	assert.True(t, s.Button(Right).IsPressed())

	clk.Tick(1.0 / 60.0)
	s.Apply(Frame{Right: 1, Left: 1, Jump: 1})
	assert.Equal(t, 0.0, s.Axis(Horizontal).Value())
	assert.Equal(t, 1, jumps, "held jump does not press again")

	clk.Tick(1.0 / 60.0)
	s.Apply(Frame{Left: 1, StickX: -0.5})
	assert.Equal(t, -1.0, s.Axis(Horizontal).Value())
	assert.False(t, s.Button(Jump).IsPressed())
	assert.Equal(t, clock.Anchor(3), s.Button(Jump).ReleaseFrame())

	clk.Tick(1.0 / 60.0)
	s.Apply(Frame{})
	assert.Equal(t, 0.0, s.Axis(Horizontal).Value())

	assert.Equal(t, []float64{1, 0, -1, 0}, axisValues)
}

func TestSet_ButtonIDs(t *testing.T) {
	s := NewSet(clock.New())
	s.AddButton("ATTACK")

	assert.Equal(t, []string{"ATTACK", Crouch, Dash, Jump, Left, Right, Sprint}, s.ButtonIDs())
	assert.Same(t, s.Button("ATTACK"), s.AddButton("ATTACK"))
}

func TestFrame_IsZero(t *testing.T) {
	assert.True(t, Frame{}.IsZero())
	assert.False(t, Frame{Jump: 1}.IsZero())
}
