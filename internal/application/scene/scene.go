// Package scene defines the Scene interface for game screens.
//
// The playing scene runs a level run from spawn to summit. Other screens
// plug into game.Game the same way.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen driven by the game loop.
// Returning a non-nil Scene from Update switches to it.
type Scene interface {
	// Update advances the scene by dt seconds (1/TPS).
	// Returns the next scene, or nil to stay. An error stops the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when the scene becomes current.
	OnEnter()

	// OnExit is called when the scene is replaced or the window closes.
	// Recordings are flushed here.
	OnExit()
}
