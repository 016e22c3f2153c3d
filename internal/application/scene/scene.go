// Package scene defines the Scene interface for screens driven by the game loop.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the frontend. The game loop delegates Update and
// Draw to the current scene; returning a non-nil Scene from Update switches
// to it.
type Scene interface {
	// Update advances the scene by dt seconds. Returning an error stops the loop.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called each time the scene becomes current.
	OnEnter()

	// OnExit is called when the scene is replaced or the loop shuts down.
	OnExit()
}
