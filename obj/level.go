package obj

import (
	"fmt"
	"math/rand"

	"github.com/milk9111/pollo/levels"
	"github.com/milk9111/pollo/prefabs"
)

// Level holds the entities of one playthrough. It is rebuilt from scratch
// on every restart.
type Level struct {
	Enemies     []Enemy
	Endboss     *Endboss
	Clouds      []*Cloud
	Backgrounds []*Background
	Coins       []*Coin
	Bottles     []*Bottle
	EndX        float64
}

// BuildLevel instantiates every entity described by layout on s. The boss
// is placed from its own prefab and appended last to Enemies.
func BuildLevel(s Session, t *prefabs.Tuning, layout *levels.Layout, rng *rand.Rand) (*Level, error) {
	if layout == nil {
		return nil, fmt.Errorf("obj: nil layout")
	}
	lvl := &Level{EndX: layout.EndX}

	for _, e := range layout.Enemies {
		switch e.Type {
		case "chicken":
			lvl.Enemies = append(lvl.Enemies, NewChicken(s, t.Chicken, e.X, rng))
		case "mini_chicken":
			lvl.Enemies = append(lvl.Enemies, NewMiniChicken(s, t.MiniChicken, e.X, rng))
		default:
			return nil, fmt.Errorf("obj: unknown enemy type %q", e.Type)
		}
	}
	lvl.Endboss = NewEndboss(s, t.Endboss)
	lvl.Enemies = append(lvl.Enemies, lvl.Endboss)

	for _, c := range layout.Clouds {
		lvl.Clouds = append(lvl.Clouds, NewCloud(s, t.Cloud, c.X, c.Y))
	}
	for _, b := range layout.Backgrounds {
		for _, layer := range t.Background.Layers {
			frame := fmt.Sprintf("%s/%d", layer, b.Variant)
			lvl.Backgrounds = append(lvl.Backgrounds, NewBackground(t.Background, frame, b.X, t.World.CanvasHeight))
		}
	}
	for _, c := range layout.Coins {
		lvl.Coins = append(lvl.Coins, NewCoin(t.Coin, c.X, c.Y))
	}
	for _, b := range layout.Bottles {
		lvl.Bottles = append(lvl.Bottles, NewBottle(s, t.Bottle, b.X))
	}
	return lvl, nil
}

// LiveEnemies counts enemies with energy left.
func (l *Level) LiveEnemies() int {
	n := 0
	for _, e := range l.Enemies {
		if !e.Base().Dead() {
			n++
		}
	}
	return n
}
