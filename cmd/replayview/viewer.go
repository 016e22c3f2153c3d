package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/ledgeline/internal/application/replay"
	"github.com/younwookim/ledgeline/internal/application/system"
	"github.com/younwookim/ledgeline/internal/domain/entity"
	"github.com/younwookim/ledgeline/internal/domain/world"
)

const maxSpeed = 16

var (
	styleSolid  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleOneWay = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleSpike  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleZone   = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	styleGate   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleActor  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// viewer renders a playback as one character per cell x cell world square
type viewer struct {
	screen   tcell.Screen
	playback *replay.Playback
	cell     float64

	paused   bool
	finished bool
	speed    int // frames per redraw
	last     string
}

func newViewer(screen tcell.Screen, playback *replay.Playback, cell float64, speed int) *viewer {
	return &viewer{
		screen:   screen,
		playback: playback,
		cell:     cell,
		speed:    max(1, speed),
	}
}

// advance plays up to speed frames unless paused
func (v *viewer) advance() {
	if v.paused {
		return
	}
	for i := 0; i < v.speed; i++ {
		if !v.step() {
			return
		}
	}
}

func (v *viewer) step() bool {
	events, ok := v.playback.Step()
	if !ok {
		v.finished = true
		return false
	}
	for _, ev := range events {
		switch e := ev.(type) {
		case system.StateChanged:
			v.last = fmt.Sprintf("%d: %s -> %s", e.Frame, e.From, e.To)
		case system.Respawned:
			v.last = fmt.Sprintf("%d: respawned", e.Frame)
		case system.RoomChanged:
			v.last = fmt.Sprintf("%d: %s -> %s", e.Frame, e.From, e.To)
		}
	}
	return true
}

// handleKey applies a key press and reports whether the viewer should quit
func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case ' ':
			v.paused = !v.paused
		case '.':
			if v.paused {
				v.step()
			}
		case '+':
			v.speed = min(maxSpeed, v.speed*2)
		case '-':
			v.speed = max(1, v.speed/2)
		}
	}
	return false
}

// glyph picks what to show for one cell of the room
func glyph(room *world.Room, r entity.Rect) (rune, tcell.Style) {
	switch {
	case room.Layer(world.LayerSpikes).Any(r):
		return '^', styleSpike
	case room.Layer(world.LayerGround).Any(r):
		return '#', styleSolid
	case room.Layer(world.LayerOneWay).Any(r):
		return '-', styleOneWay
	}
	if _, ok := room.GateAt(r); ok {
		return '+', styleGate
	}
	if room.Layer(world.LayerSpawnZones).Any(r) {
		return '.', styleZone
	}
	return ' ', tcell.StyleDefault
}

func (v *viewer) draw() {
	v.screen.Clear()

	sim := v.playback.Simulation()
	room := sim.Room()
	cols := int(math.Ceil(room.Width / v.cell))
	rows := int(math.Ceil(room.Height / v.cell))

	actor := sim.Actor()
	bounds := actor.Bounds()
	for cy := 0; cy < rows; cy++ {
		sy := rows - 1 - cy
		for cx := 0; cx < cols; cx++ {
			r := entity.Rect{X: float64(cx) * v.cell, Y: float64(cy) * v.cell, W: v.cell, H: v.cell}
			ch, style := glyph(room, r)
			if bounds.Overlaps(r) {
				ch, style = '@', styleActor
			}
			v.screen.SetContent(cx, sy, ch, nil, style)
		}
	}

	pose := sim.Pose()
	replayer := v.playback.Replayer()
	status := fmt.Sprintf("%s  frame %d/%d  x%d  %s  (%.1f, %.1f)",
		room.Name, replayer.CurrentFrame(), replayer.TotalFrames(), v.speed, pose.State, pose.X, pose.Y)
	switch {
	case v.finished:
		status += "  [done]"
	case v.paused:
		status += "  [paused]"
	}
	drawText(v.screen, 0, rows, status, styleStatus)
	drawText(v.screen, 0, rows+1, v.last, styleStatus)
	drawText(v.screen, 0, rows+2, "space: pause  .: step  +/-: speed  q: quit", styleStatus)

	v.screen.Show()
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
