// Command preview cycles one prefab animation in a window, using the same
// sprite cache the game draws with.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/pollo/assets"
	"github.com/milk9111/pollo/component"
	"github.com/milk9111/pollo/prefabs"
)

const previewSize = 512

type previewGame struct {
	sprites     *assets.Sprites
	anim        component.Animation
	set         component.FrameSet
	w, h        int
	tick        int
	ticksPerFrm int
}

func (g *previewGame) Update() error {
	g.tick++
	if g.tick >= g.ticksPerFrm {
		g.tick = 0
		g.anim.Play(g.set)
	}
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	frame := g.anim.Frame()
	if frame == "" {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(previewSize-g.w)/2, float64(previewSize-g.h)/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(g.sprites.Frame(frame, g.w, g.h), op)
	ebitenutil.DebugPrint(screen, frame)
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return previewSize, previewSize
}

// animations returns the named frame sets and the draw size of an entity.
func animations(t *prefabs.Tuning, entity string) (map[string]prefabs.AnimationSpec, prefabs.SizeSpec, error) {
	switch entity {
	case "character":
		return t.Character.Animations, t.Character.Size, nil
	case "chicken":
		return t.Chicken.Animations, t.Chicken.Size, nil
	case "mini_chicken":
		return t.MiniChicken.Animations, t.MiniChicken.Size, nil
	case "endboss":
		return t.Endboss.Animations, t.Endboss.Size, nil
	case "throwable":
		return t.Throwable.Animations, t.Throwable.Size, nil
	case "coin":
		return map[string]prefabs.AnimationSpec{"spin": t.Coin.Animation}, t.Coin.Size, nil
	case "bottle":
		return map[string]prefabs.AnimationSpec{"spin": t.Bottle.Animation}, t.Bottle.Size, nil
	}
	return nil, prefabs.SizeSpec{}, fmt.Errorf("preview: unknown entity %q", entity)
}

func pick(anims map[string]prefabs.AnimationSpec, name string) (prefabs.AnimationSpec, error) {
	if a, ok := anims[name]; ok {
		return a, nil
	}
	names := make([]string, 0, len(anims))
	for n := range anims {
		names = append(names, n)
	}
	sort.Strings(names)
	return prefabs.AnimationSpec{}, fmt.Errorf("preview: no animation %q (have %s)", name, strings.Join(names, ", "))
}

func main() {
	entity := flag.String("entity", "character", "prefab to preview")
	name := flag.String("anim", "walk", "animation name")
	fps := flag.Int("fps", 10, "frames per second")
	flag.Parse()

	t, err := prefabs.LoadTuning()
	if err != nil {
		log.Fatal(err)
	}
	anims, size, err := animations(t, *entity)
	if err != nil {
		log.Fatal(err)
	}
	spec, err := pick(anims, *name)
	if err != nil {
		log.Fatal(err)
	}

	ticks := 1
	if *fps > 0 {
		ticks = 60 / *fps
		if ticks < 1 {
			ticks = 1
		}
	}
	g := &previewGame{
		sprites:     assets.NewSprites(true),
		set:         spec.FrameSet(),
		w:           int(size.Width),
		h:           int(size.Height),
		ticksPerFrm: ticks,
	}
	g.anim.Play(g.set)

	ebiten.SetWindowSize(previewSize, previewSize)
	ebiten.SetWindowTitle(fmt.Sprintf("%s %s", *entity, *name))
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
