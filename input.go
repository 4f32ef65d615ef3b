package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"

	"github.com/junipergames/cauldron/engine"
)

// Key repeat in frames, roughly matching host auto-repeat at 60 TPS. Each
// repeat is delivered to the engine as its own discrete step.
const (
	repeatDelay    = 24
	repeatInterval = 6
)

// Input polls ebiten state and exposes it as the engine's discrete events.
type Input struct {
	// Steps holds one entry per directional event this frame.
	Steps []engine.Direction
	// ConfirmPressed is true on a frame any arrow, enter, or space went down.
	ConfirmPressed bool

	PointerPos    cp.Vector
	PointerDown   bool // left button went down this frame
	PointerMoved  bool // cursor moved while the drag is held
	PointerUp     bool // left button released this frame
	PointerCancel bool // focus lost mid-drag

	dragging bool
	lastPos  cp.Vector
}

var arrowKeys = []struct {
	key ebiten.Key
	dir engine.Direction
}{
	{ebiten.KeyArrowUp, engine.DirUp},
	{ebiten.KeyArrowDown, engine.DirDown},
	{ebiten.KeyArrowLeft, engine.DirLeft},
	{ebiten.KeyArrowRight, engine.DirRight},
}

// Update polls the keyboard and mouse. Non-arrow keys are simply not mapped.
func (i *Input) Update() {
	i.Steps = i.Steps[:0]
	for _, k := range arrowKeys {
		if repeatingKeyPressed(k.key) {
			i.Steps = append(i.Steps, k.dir)
		}
	}
	i.ConfirmPressed = len(i.Steps) > 0 ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace)

	mx, my := ebiten.CursorPosition()
	pos := cp.Vector{X: float64(mx), Y: float64(my)}
	i.PointerPos = pos

	i.PointerDown = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	i.PointerUp = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	i.PointerCancel = false

	if i.PointerDown {
		i.dragging = true
		i.lastPos = pos
	}

	i.PointerMoved = i.dragging && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && pos != i.lastPos
	if i.PointerMoved {
		i.lastPos = pos
	}

	if i.PointerUp {
		i.dragging = false
	}
	// losing window focus mid-drag releases the capture
	if i.dragging && !ebiten.IsFocused() {
		i.PointerCancel = true
		i.dragging = false
	}
}

// repeatingKeyPressed reports a step on the initial press and then on every
// auto-repeat interval while held.
func repeatingKeyPressed(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}
