package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/junipergames/cauldron/engine"
)

// PromptUI is the door level's free-text entry: a centered panel with a text
// input and a validation message line. Built from colored nine-slices and the
// built-in basic font so it doesn't require theme fonts to be loaded.
type PromptUI struct {
	ui      *ebitenui.UI
	input   *widget.TextInput
	errText *widget.Text
}

func NewPromptUI(onSubmit func(text string)) *PromptUI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	fieldImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	title := widget.NewText(
		widget.TextOpts.Text("The door only opens for a proper phrase.", &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	p := &PromptUI{}

	p.input = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(320, 24),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
		widget.TextInputOpts.Image(&widget.TextInputImage{Idle: fieldImg, Disabled: fieldImg}),
		widget.TextInputOpts.Face(&face),
		widget.TextInputOpts.Color(&widget.TextInputColor{Idle: white, Caret: white}),
		widget.TextInputOpts.Padding(&widget.Insets{Top: 4, Bottom: 4, Left: 8, Right: 8}),
		widget.TextInputOpts.Placeholder("say the magic words"),
		widget.TextInputOpts.SubmitHandler(func(args *widget.TextInputChangedEventArgs) {
			onSubmit(args.InputText)
		}),
	)

	p.errText = widget.NewText(
		widget.TextOpts.Text("", &face, color.NRGBA{R: 0xff, G: 0x66, B: 0x66, A: 0xff}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(engine.ArenaWidth/2, engine.ArenaHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(p.input)
	panel.AddChild(p.errText)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	p.ui = &ebitenui.UI{Container: root}
	return p
}

// SetError updates the validation message line.
func (p *PromptUI) SetError(msg string) {
	p.errText.Label = msg
}

func (p *PromptUI) Update() {
	p.input.Focus(true)
	p.ui.Update()
}

func (p *PromptUI) Draw(screen *ebiten.Image) {
	p.ui.Draw(screen)
}
