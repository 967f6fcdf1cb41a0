// Package scene defines the Scene lifecycle contract and the Manager that
// owns the active-scene pointer and the transition protocol.
//
// Lifecycle: Load -> Setup -> (Enter <-> Update/Draw loop <-> Exit) -> Reset.
// The Manager drives per-frame Update and Draw dispatch to the active
// scene only; inactive scenes receive no per-frame calls.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/tinymon/internal/application/system"
)

// Registered scene names.
const (
	NameMenu   = "menu"
	NameWorld  = "world"
	NameBattle = "battle"
)

// Scene represents a top-level game mode (menu, world, battle).
type Scene interface {
	// Load performs one-time (possibly asynchronous) resource loading.
	Load() error

	// Setup prepares the scene for a fresh run. The manager calls Reset
	// immediately before Setup, so Setup can assume a clean baseline.
	Setup()

	// Enter is called when the scene becomes active. ctx carries the
	// transition payload from the triggering scene and may be nil.
	Enter(ctx Context)

	// Exit is called when the scene stops being active.
	Exit()

	// Reset restores the scene to its initial state.
	Reset()

	// Update advances the scene by dt seconds with this tick's input.
	Update(dt float64, in system.Input)

	// Draw renders the scene. Draw never runs before the same tick's
	// Update and must not mutate scene state.
	Draw(screen *ebiten.Image)
}
