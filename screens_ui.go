package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/pollo/system"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

type menuButton struct {
	label   string
	onClick func()
}

var (
	panelColor  = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
	buttonColor = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	textColor   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// newMenuUI builds a centered panel with a title, some lines of text and a
// column of buttons. Buttons use coloured nine-slices and the built-in basic
// font so no theme assets are needed.
func newMenuUI(g *Game, title string, titleColor color.Color, lines []string, buttons []menuButton) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(panelColor)
	btnImg := imageui.NewNineSliceColor(buttonColor)

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	btnTextColor := &widget.ButtonTextColor{Idle: textColor}
	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(int(g.tuning.World.CanvasWidth)/2, int(g.tuning.World.CanvasHeight)/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(title, &face, titleColor),
		widget.TextOpts.WidgetOpts(centered),
	))
	for _, line := range lines {
		panel.AddChild(widget.NewText(
			widget.TextOpts.Text(line, &face, textColor),
			widget.TextOpts.WidgetOpts(centered),
		))
	}
	for _, b := range buttons {
		onClick := b.onClick
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(b.label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(centered),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		))
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

func muteLabel(g *Game) string {
	if g.input.Keys().Mute {
		return "Unmute"
	}
	return "Mute"
}

func newStartUI(g *Game) *ebitenui.UI {
	stats := g.store.Stats()
	lines := []string{
		"A/D or arrows walk, Space jumps",
		"Enter or F throws a bottle",
		"M mutes, Esc pauses, R restarts",
		fmt.Sprintf("Wins %d  Losses %d  Best coins %d", stats.Wins, stats.Losses, stats.BestCoins),
	}
	return newMenuUI(g, g.tuning.World.Name, colornames.Gold, lines, []menuButton{
		{label: "Start", onClick: g.startSession},
		{label: muteLabel(g), onClick: func() {
			g.toggleMute()
			g.show(screenStart)
		}},
	})
}

func newEndUI(g *Game, s screen, r system.Result) *ebitenui.UI {
	title, tint := "You won!", color.Color(colornames.Gold)
	if s == screenLost {
		title, tint = "Game over", colornames.Crimson
	}
	lines := []string{
		fmt.Sprintf("Coins %d  Bottles %d  Energy %d", r.Coins, r.Bottles, r.Energy),
		fmt.Sprintf("Time %s", r.Elapsed.Round(100*time.Millisecond)),
	}
	return newMenuUI(g, title, tint, lines, []menuButton{
		{label: "Restart", onClick: g.startSession},
		{label: "Back to start", onClick: g.backToStart},
	})
}

func newPauseUI(g *Game) *ebitenui.UI {
	return newMenuUI(g, "Paused", textColor, nil, []menuButton{
		{label: "Resume", onClick: func() { g.paused = false }},
		{label: "Back to start", onClick: g.backToStart},
	})
}
