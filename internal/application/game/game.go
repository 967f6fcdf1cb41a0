// Package game provides the ebiten.Game driver that ties input polling
// to the scene manager.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/tinymon/internal/application/scene"
	"github.com/younwookim/tinymon/internal/application/system"
)

// Game implements ebiten.Game on top of the scene manager.
type Game struct {
	manager *scene.Manager
	input   *system.InputSystem
	screenW int
	screenH int
	dt      float64
}

// New creates a new Game driving the given manager.
func New(manager *scene.Manager, screenW, screenH int) *Game {
	return &Game{
		manager: manager,
		input:   system.NewInputSystem(),
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
	}
}

// Update polls input and advances the active scene by one tick.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	g.manager.Update(g.dt, g.input.Poll())
	return nil
}

// Draw renders the active scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.manager.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}
