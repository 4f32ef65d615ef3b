package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"

	"github.com/junipergames/cauldron/engine"
)

var (
	bgColor      = color.NRGBA{R: 0x1d, G: 0x1d, B: 0x26, A: 0xff}
	wallColor    = color.NRGBA{R: 0x55, G: 0x4a, B: 0x3c, A: 0xff}
	playerColor  = color.NRGBA{R: 0x7a, G: 0xc1, B: 0x6e, A: 0xff}
	facingColor  = color.NRGBA{R: 0xe8, G: 0xf5, B: 0xe0, A: 0xff}
	barBackColor = color.NRGBA{R: 0x33, G: 0x33, B: 0x3d, A: 0xff}
	barFillColor = color.NRGBA{R: 0xe0, G: 0xa0, B: 0x30, A: 0xff}

	propColors = map[string]color.NRGBA{
		"pot":   {R: 0x8a, G: 0x8a, B: 0x99, A: 0xff},
		"stove": {R: 0xb3, G: 0x3a, B: 0x2e, A: 0xff},
		"door":  {R: 0x8c, G: 0x5a, B: 0x2b, A: 0xff},
		"spoon": {R: 0xd9, G: 0xc8, B: 0x9e, A: 0xff},
	}
)

func drawSnapshot(screen *ebiten.Image, snap engine.Snapshot) {
	screen.Fill(bgColor)

	switch snap.Phase {
	case engine.PhaseStart:
		ebitenutil.DebugPrintAt(screen, "CAULDRON", engine.ArenaWidth/2-30, engine.ArenaHeight/2-30)
		ebitenutil.DebugPrintAt(screen, "press any arrow key to start", engine.ArenaWidth/2-90, engine.ArenaHeight/2)
		return
	case engine.PhaseWin:
		ebitenutil.DebugPrintAt(screen, "dinner is served. you win!", engine.ArenaWidth/2-80, engine.ArenaHeight/2)
		return
	}

	for _, ob := range snap.Obstacles {
		fillBox(screen, ob, wallColor)
	}

	for _, prop := range snap.Props {
		if prop.Taken {
			continue
		}
		clr, ok := propColors[prop.Kind]
		if !ok {
			clr = color.NRGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}
		}
		fillBox(screen, engine.Box(prop.Pos), clr)
		ebitenutil.DebugPrintAt(screen, prop.Kind, int(prop.Pos.X), int(prop.Pos.Y)-16)
	}

	if !snap.PlayerHidden {
		fillBox(screen, engine.Box(snap.Player), playerColor)
		tickX := snap.Player.X
		if snap.Facing > 0 {
			tickX = snap.Player.X + engine.SpriteSize - 8
		}
		vector.DrawFilledRect(screen, float32(tickX), float32(snap.Player.Y+24), 8, 16, facingColor, false)

		if snap.Carrying != engine.ItemNone {
			ebitenutil.DebugPrintAt(screen, snap.Carrying.String(), int(snap.Player.X), int(snap.Player.Y)-16)
		}
	}

	if snap.Lit {
		ebitenutil.DebugPrintAt(screen, "the stove is lit!", engine.ArenaWidth/2-50, 10)
	}
	if snap.Level == "stir" {
		drawStirBar(screen, snap.StirProgress)
	}
}

func fillBox(dst *ebiten.Image, bb cp.BB, clr color.Color) {
	vector.DrawFilledRect(dst, float32(bb.L), float32(bb.B), float32(bb.R-bb.L), float32(bb.T-bb.B), clr, false)
}

func drawStirBar(dst *ebiten.Image, progress float64) {
	const w, h = 200, 12
	x := float32(engine.ArenaWidth-w) / 2
	vector.DrawFilledRect(dst, x, 10, w, h, barBackColor, false)
	vector.DrawFilledRect(dst, x, 10, float32(w*progress/engine.GestureTarget), h, barFillColor, false)
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("stir: %.0f%%", progress), engine.ArenaWidth/2-30, 26)
}
