package world

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/tinymon/internal/application/event"
	"github.com/younwookim/tinymon/internal/application/scene"
	"github.com/younwookim/tinymon/internal/application/state"
	"github.com/younwookim/tinymon/internal/application/system"
)

const (
	settingsResume = "RESUME"
	settingsSave   = "SAVE"
	settingsQuit   = "QUIT"
)

var (
	colorOverlayBG = color.RGBA{10, 10, 20, 210}
	colorOverlayFG = color.RGBA{240, 200, 80, 255}
)

// settingsOverlay is the in-world pause menu. While open it swallows all
// input, so the world underneath is effectively paused.
type settingsOverlay struct {
	bus        *event.Bus
	store      *state.Store
	beforeSave func() // syncs the live player position into the store

	open     bool
	selected int
	status   string
	upHeld   bool
	downHeld bool
	options  []string
}

func newSettingsOverlay(bus *event.Bus, store *state.Store, beforeSave func()) *settingsOverlay {
	return &settingsOverlay{
		bus:        bus,
		store:      store,
		beforeSave: beforeSave,
		options:    []string{settingsResume, settingsSave, settingsQuit},
	}
}

func (o *settingsOverlay) isOpen() bool { return o.open }

func (o *settingsOverlay) openOverlay() {
	o.open = true
	o.selected = 0
	o.status = ""
}

func (o *settingsOverlay) reset() {
	o.open = false
	o.selected = 0
	o.status = ""
	o.upHeld = false
	o.downHeld = false
}

func (o *settingsOverlay) update(in system.Input) {
	if in.Cancel {
		o.open = false
		return
	}

	if in.Up && !o.upHeld {
		o.selected = (o.selected + len(o.options) - 1) % len(o.options)
	}
	if in.Down && !o.downHeld {
		o.selected = (o.selected + 1) % len(o.options)
	}
	o.upHeld = in.Up
	o.downHeld = in.Down

	if in.Confirm {
		o.activate(o.options[o.selected])
	}
}

func (o *settingsOverlay) activate(option string) {
	switch option {
	case settingsResume:
		o.open = false
	case settingsSave:
		if o.beforeSave != nil {
			o.beforeSave()
		}
		if err := o.store.Save(); err != nil {
			log.Printf("world: save failed: %v", err)
			o.status = "Save failed."
			return
		}
		o.status = "Game saved."
	case settingsQuit:
		o.open = false
		event.Emit(o.bus, event.TopicSceneTransition, event.SceneTransition{To: scene.NameMenu})
	}
}

func (o *settingsOverlay) draw(screen *ebiten.Image, w, h int) {
	if !o.open {
		return
	}

	ebitenutil.DrawRect(screen, float64(w/4), float64(h/4), float64(w/2), float64(h/2), colorOverlayBG)
	ebitenutil.DebugPrintAt(screen, "SETTINGS", w/2-24, h/4+8)

	y := h/4 + 32
	for i, option := range o.options {
		if i == o.selected {
			ebitenutil.DrawRect(screen, float64(w/4+12), float64(y-2), 4, 12, colorOverlayFG)
		}
		ebitenutil.DebugPrintAt(screen, option, w/4+24, y)
		y += 18
	}

	if o.status != "" {
		ebitenutil.DebugPrintAt(screen, o.status, w/4+24, y+8)
		y += 16
	}

	// Party and money readout
	y += 16
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("$%d", o.store.GetMoney()), w/4+24, y)
	for _, p := range o.store.GetPlayerPokemon() {
		y += 14
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s Lv%d", p.Name, p.Level), w/4+24, y)
	}
}
