// Package system holds the small per-frame services shared by scenes:
// input polling, map-view extraction, and config-to-entity conversion.
package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is the normalized per-tick input snapshot consumed by scenes.
// MoveIndex is -1 when no move-selection digit was pressed this tick.
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool

	Confirm bool // Enter, just pressed
	Cancel  bool // Escape, just pressed

	MoveIndex int // 0..3 from digits 1-4, just pressed
}

// NoMove is the MoveIndex value when no digit was pressed.
const NoMove = -1

// InputSystem polls the keyboard into Input snapshots.
type InputSystem struct{}

// NewInputSystem creates a new input system.
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

var moveKeys = [4]ebiten.Key{
	ebiten.KeyDigit1,
	ebiten.KeyDigit2,
	ebiten.KeyDigit3,
	ebiten.KeyDigit4,
}

// Poll reads the current input state.
func (s *InputSystem) Poll() Input {
	in := Input{
		Up:        ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:      ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:      ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:     ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Confirm:   inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Cancel:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		MoveIndex: NoMove,
	}

	for i, key := range moveKeys {
		if inpututil.IsKeyJustPressed(key) {
			in.MoveIndex = i
			break
		}
	}

	return in
}
