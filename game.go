package main

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	"github.com/junipergames/cauldron/engine"
	"github.com/junipergames/cauldron/levelspec"
)

// Game is the ebiten shell: it polls input, feeds discrete events to the
// engine, and draws the engine's snapshot. All game rules live in the engine.
type Game struct {
	frames int
	debug  bool
	logr   *zap.SugaredLogger

	eng    *engine.Game
	input  *Input
	prompt *PromptUI

	watcher *levelspec.Watcher
}

func NewGame(levelName string, debug bool, logr *zap.SugaredLogger) (*Game, error) {
	specs, err := engine.LoadSpecs()
	if err != nil {
		return nil, err
	}

	eng := engine.New(specs, logr, time.Now())
	if levelName != "" {
		if err := eng.JumpTo(levelName); err != nil {
			return nil, err
		}
	}

	g := &Game{debug: debug, logr: logr, eng: eng, input: &Input{}}
	g.prompt = NewPromptUI(func(text string) { g.eng.Submit(text) })

	if debug {
		watcher, err := levelspec.NewWatcher(levelspec.DiskDir)
		if err != nil {
			logr.Warnw("level watcher unavailable", "err", err)
		} else {
			g.watcher = watcher
		}
	}

	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++
	g.pollWatcher()
	g.input.Update()

	snap := g.eng.Snapshot()
	switch {
	case snap.Phase == engine.PhaseStart:
		if g.input.ConfirmPressed {
			g.eng.Begin()
		}
	case snap.PromptOpen:
		g.prompt.SetError(snap.PromptError)
		g.prompt.Update()
	default:
		for _, dir := range g.input.Steps {
			g.eng.Move(dir)
		}
		if g.input.PointerDown {
			g.eng.PointerDown(g.input.PointerPos)
		}
		if g.input.PointerMoved {
			g.eng.PointerMove(g.input.PointerPos)
		}
		if g.input.PointerUp {
			g.eng.PointerUp()
		}
		if g.input.PointerCancel {
			g.eng.PointerCancel()
		}
	}

	g.eng.Update(time.Now())
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	changed := false
loop:
	for {
		select {
		case name := <-g.watcher.Events:
			g.logr.Infow("level file changed", "file", name)
			changed = true
		case err := <-g.watcher.Errors:
			g.logr.Warnw("level watcher error", "err", err)
		default:
			break loop
		}
	}
	if !changed {
		return
	}

	specs, err := engine.LoadSpecs()
	if err != nil {
		g.logr.Warnw("level reload failed", "err", err)
		return
	}
	g.eng.Reload(specs)
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.eng.Snapshot()
	drawSnapshot(screen, snap)

	if snap.PromptOpen {
		g.prompt.Draw(screen)
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f    phase: %d    pos: (%.0f, %.0f)",
			ebiten.ActualFPS(), snap.Phase, snap.Player.X, snap.Player.Y))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return engine.ArenaWidth, engine.ArenaHeight
}
