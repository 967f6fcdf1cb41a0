// Package menu implements the title menu scene.
package menu

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/tinymon/internal/application/event"
	"github.com/younwookim/tinymon/internal/application/scene"
	"github.com/younwookim/tinymon/internal/application/state"
	"github.com/younwookim/tinymon/internal/application/system"
	"github.com/younwookim/tinymon/internal/infrastructure/config"
)

const (
	optionNewGame  = "NEW GAME"
	optionContinue = "CONTINUE"
)

var (
	colorMenuBG = color.RGBA{24, 32, 56, 255}
	colorCursor = color.RGBA{240, 200, 80, 255}
)

// Scene is the title menu. NEW GAME resets the store to its defaults;
// CONTINUE restores the last save and stays on the menu if that fails.
type Scene struct {
	bus     *event.Bus
	store   *state.Store
	screenW int
	screenH int

	options  []string
	selected int
	status   string

	// Arrow keys arrive level-triggered; edge-detect locally
	upHeld   bool
	downHeld bool
}

// New creates the menu scene.
func New(bus *event.Bus, store *state.Store, cfg *config.SettingsConfig) *Scene {
	return &Scene{
		bus:     bus,
		store:   store,
		screenW: cfg.Display.ScreenWidth,
		screenH: cfg.Display.ScreenHeight,
		options: []string{optionNewGame, optionContinue},
	}
}

// Load implements scene.Scene.
func (s *Scene) Load() error { return nil }

// Enter implements scene.Scene. The menu takes no context.
func (s *Scene) Enter(scene.Context) {}

// Exit implements scene.Scene.
func (s *Scene) Exit() {}

// Reset moves the cursor back to the first option.
func (s *Scene) Reset() {
	s.selected = 0
	s.status = ""
	s.upHeld = false
	s.downHeld = false
}

// Setup implements scene.Scene.
func (s *Scene) Setup() {}

// Update moves the cursor and activates the selected option on Confirm.
func (s *Scene) Update(dt float64, in system.Input) {
	if in.Up && !s.upHeld {
		s.selected = (s.selected + len(s.options) - 1) % len(s.options)
	}
	if in.Down && !s.downHeld {
		s.selected = (s.selected + 1) % len(s.options)
	}
	s.upHeld = in.Up
	s.downHeld = in.Down

	if in.Confirm {
		s.activate(s.options[s.selected])
	}
}

func (s *Scene) activate(option string) {
	switch option {
	case optionNewGame:
		s.store.Reset()
		event.Emit(s.bus, event.TopicSceneTransition, event.SceneTransition{
			To:      scene.NameWorld,
			Context: map[string]any{scene.CtxSpawn: "start"},
		})
	case optionContinue:
		if err := s.store.Load(); err != nil {
			log.Printf("menu: continue failed: %v", err)
			s.status = "No saved game found."
			return
		}
		// The world scene restores the saved position when no spawn
		// point is named
		event.Emit(s.bus, event.TopicSceneTransition, event.SceneTransition{To: scene.NameWorld})
	}
}

// Draw renders the title and the option list.
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(colorMenuBG)
	ebitenutil.DebugPrintAt(screen, "TINYMON", s.screenW/2-28, s.screenH/4)

	y := s.screenH / 2
	for i, option := range s.options {
		if i == s.selected {
			ebitenutil.DrawRect(screen, float64(s.screenW/2-60), float64(y-2), 4, 12, colorCursor)
		}
		ebitenutil.DebugPrintAt(screen, option, s.screenW/2-48, y)
		y += 20
	}

	if s.status != "" {
		ebitenutil.DebugPrintAt(screen, s.status, s.screenW/2-60, y+12)
	}

	ebitenutil.DebugPrintAt(screen, "ARROWS move  ENTER select", 8, s.screenH-16)
}
