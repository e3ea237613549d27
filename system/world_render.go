package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/pollo/assets"
	"github.com/milk9111/pollo/obj"
)

var (
	debugBoxColor   = color.NRGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	debugInsetColor = color.NRGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}
)

// Draw renders the world through the camera, then the HUD on top.
func (w *World) Draw(screen *ebiten.Image, sprites *assets.Sprites, debug bool) {
	w.Camera.Render(screen, func(dst *ebiten.Image) {
		for _, b := range w.Level.Backgrounds {
			w.drawWorldSprite(dst, sprites, b.Sprite())
		}
		for _, c := range w.Level.Clouds {
			w.drawWorldSprite(dst, sprites, c.Sprite())
		}
		for _, c := range w.Level.Coins {
			w.drawWorldSprite(dst, sprites, c.Sprite())
		}
		for _, b := range w.Level.Bottles {
			w.drawWorldSprite(dst, sprites, b.Sprite())
		}
		for _, e := range w.Level.Enemies {
			w.drawWorldSprite(dst, sprites, e.Sprite())
		}
		for _, p := range w.Projectiles {
			w.drawWorldSprite(dst, sprites, p.Sprite())
		}
		w.drawWorldSprite(dst, sprites, w.Character.Sprite())

		if debug {
			w.drawBoxes(dst)
		}
	})

	for _, bar := range []*obj.StatusBar{w.HealthBar, w.CoinBar, w.BottleBar, w.BossBar} {
		if bar.Visible {
			drawSprite(screen, sprites, bar.Sprite(), nil)
		}
	}

	if debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
			"t=%s energy=%d coins=%d bottles=%d projectiles=%d boss=%d state=%s",
			w.clock.Now().Truncate(1e6), w.Character.Energy.Current, w.coins, w.bottles,
			len(w.Projectiles), w.Endboss.Energy.Current, w.Character.State(),
		), 240, 0)
	}
}

func (w *World) drawWorldSprite(dst *ebiten.Image, sprites *assets.Sprites, sp obj.Sprite) {
	if !w.Camera.Visible(sp.X, sp.W) {
		return
	}
	drawSprite(dst, sprites, sp, w.Camera)
}

func drawSprite(dst *ebiten.Image, sprites *assets.Sprites, sp obj.Sprite, cam *obj.Camera) {
	img := sprites.Frame(sp.Frame, int(sp.W), int(sp.H))
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	if sp.FlipX {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(b.Dx()), 0)
	}
	op.GeoM.Scale(sp.W/float64(b.Dx()), sp.H/float64(b.Dy()))
	op.GeoM.Translate(sp.X, sp.Y)
	if cam != nil {
		cam.Apply(op)
	}
	dst.DrawImage(img, op)
}

// drawBoxes outlines raw and inset collision boxes of everything that
// collides.
func (w *World) drawBoxes(dst *ebiten.Image) {
	bodies := []*obj.Movable{&w.Character.Movable}
	for _, e := range w.Level.Enemies {
		bodies = append(bodies, e.Base())
	}
	for _, p := range w.Projectiles {
		bodies = append(bodies, &p.Movable)
	}
	for _, c := range w.Level.Coins {
		bodies = append(bodies, &c.Movable)
	}
	for _, b := range w.Level.Bottles {
		bodies = append(bodies, &b.Movable)
	}

	for _, m := range bodies {
		raw, inset := m.Bounds(), m.Inset()
		vector.StrokeRect(dst, float32(w.Camera.ViewX(raw.L)), float32(raw.B),
			float32(raw.R-raw.L), float32(raw.T-raw.B), 1, debugBoxColor, false)
		vector.StrokeRect(dst, float32(w.Camera.ViewX(inset.L)), float32(inset.B),
			float32(inset.R-inset.L), float32(inset.T-inset.B), 1, debugInsetColor, false)
	}
}
