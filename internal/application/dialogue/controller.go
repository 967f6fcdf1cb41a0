// Package dialogue implements the typewriter text box shared by the world
// and battle scenes.
package dialogue

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// DefaultCharsPerSecond is used when the configured rate is not positive.
const DefaultCharsPerSecond = 30.0

var (
	colorBoxBG     = color.RGBA{20, 20, 30, 230}
	colorBoxBorder = color.RGBA{220, 220, 220, 255}
)

// Controller reveals a string one character at a time at a fixed rate.
// Exactly one session is live at a time; DisplayText discards any in-flight
// reveal and its pending callback.
type Controller struct {
	charsPerSecond float64

	runes      []rune
	revealed   int
	elapsed    float64 // time carried toward the next character
	visible    bool
	complete   bool
	onComplete func()
}

// New creates a hidden controller revealing at the given rate.
func New(charsPerSecond float64) *Controller {
	if charsPerSecond <= 0 {
		charsPerSecond = DefaultCharsPerSecond
	}
	return &Controller{charsPerSecond: charsPerSecond}
}

// Show makes the box visible. Visibility is independent of the reveal
// queue.
func (c *Controller) Show() { c.visible = true }

// Hide makes the box invisible without touching the reveal queue.
func (c *Controller) Hide() { c.visible = false }

// SetVisibility is the explicit setter equivalent of Show/Hide.
func (c *Controller) SetVisibility(visible bool) { c.visible = visible }

// IsVisible reports whether the box is shown.
func (c *Controller) IsVisible() bool { return c.visible }

// IsComplete reports whether the live session is fully revealed.
func (c *Controller) IsComplete() bool { return c.complete }

// DisplayedText returns the currently revealed prefix.
func (c *Controller) DisplayedText() string { return string(c.runes[:c.revealed]) }

// FullText returns the complete text of the live session.
func (c *Controller) FullText() string { return string(c.runes) }

// DisplayText starts a new reveal session, silently dropping any prior
// session and its callback. Empty content completes immediately and
// invokes onComplete right away.
func (c *Controller) DisplayText(content string, onComplete func()) {
	c.runes = []rune(content)
	c.revealed = 0
	c.elapsed = 0
	c.complete = false
	c.onComplete = onComplete

	if len(c.runes) == 0 {
		c.finish()
	}
}

// DisplayTextImmediately sets content as fully revealed. It bypasses the
// completion callback entirely.
func (c *Controller) DisplayTextImmediately(content string) {
	c.runes = []rune(content)
	c.revealed = len(c.runes)
	c.elapsed = 0
	c.complete = true
	c.onComplete = nil
}

// SkipToEnd fast-forwards the live session through the same completion
// path as a natural finish.
func (c *Controller) SkipToEnd() {
	if c.complete {
		return
	}
	c.revealed = len(c.runes)
	c.finish()
}

// ClearText resets to an empty session and discards any pending callback
// without invoking it.
func (c *Controller) ClearText() {
	c.runes = nil
	c.revealed = 0
	c.elapsed = 0
	c.complete = false
	c.onComplete = nil
}

// Update advances the reveal by dt seconds. A large dt reveals several
// characters in one call so total duration stays deterministic regardless
// of frame rate. No-op while hidden or already complete.
func (c *Controller) Update(dt float64) {
	if !c.visible || c.complete {
		return
	}

	c.elapsed += dt
	perChar := 1.0 / c.charsPerSecond
	for c.elapsed >= perChar && c.revealed < len(c.runes) {
		c.elapsed -= perChar
		c.revealed++
	}

	if c.revealed >= len(c.runes) {
		c.finish()
	}
}

// finish marks the session complete and fires the callback exactly once.
func (c *Controller) finish() {
	c.complete = true
	cb := c.onComplete
	c.onComplete = nil
	if cb != nil {
		cb()
	}
}

// Draw renders the box and the revealed prefix. Pure read: reveal state is
// never mutated here.
func (c *Controller) Draw(screen *ebiten.Image, x, y, w, h float64) {
	if !c.visible {
		return
	}
	ebitenutil.DrawRect(screen, x, y, w, h, colorBoxBG)
	ebitenutil.DrawRect(screen, x, y, w, 1, colorBoxBorder)
	ebitenutil.DrawRect(screen, x, y+h-1, w, 1, colorBoxBorder)
	ebitenutil.DebugPrintAt(screen, c.DisplayedText(), int(x)+8, int(y)+8)
}
