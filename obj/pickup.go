package obj

import (
	"github.com/milk9111/pollo/component"
	"github.com/milk9111/pollo/prefabs"
	"github.com/milk9111/pollo/sched"
)

// Coin is a static collectible.
type Coin struct {
	Movable
}

// NewCoin places a coin at (x, y).
func NewCoin(spec prefabs.CoinSpec, x, y float64) *Coin {
	c := &Coin{}
	c.Box = boxFor(x, y, spec.Size, spec.Offset)
	c.Anim.Show(spec.Animation.FrameSet(), 0)
	return c
}

// Bottle is a collectible lying on the ground. It flips between its two
// ground frames until picked up.
type Bottle struct {
	Movable

	spin *sched.Task
}

// NewBottle places a bottle at x on the bottle ground line.
func NewBottle(s Session, spec prefabs.BottleSpec, x float64) *Bottle {
	b := &Bottle{}
	b.Box = boxFor(x, spec.Y, spec.Size, spec.Offset)
	frames := spec.Animation.FrameSet()
	b.Anim.Play(frames)
	b.spin = s.Every(spec.SpinInterval, func() {
		b.Anim.Play(frames)
	})
	return b
}

// Collect stops the ground spin.
func (b *Bottle) Collect() {
	if b.spin != nil {
		b.spin.Cancel()
	}
}

// collectible lets the world treat coins and bottles alike.
type collectible interface {
	Body() component.Box
}

func (c *Coin) Body() component.Box   { return c.Box }
func (b *Bottle) Body() component.Box { return b.Box }

// Collect removes every item overlapping target from items in place and
// calls take for each, stopping early once take reports false. It returns
// the remaining items.
func Collect[T collectible](items []T, target component.Box, take func(T) bool) []T {
	kept := items[:0]
	accepting := true
	for _, it := range items {
		if accepting && component.Overlaps(target, it.Body()) {
			if take(it) {
				continue
			}
			accepting = false
		}
		kept = append(kept, it)
	}
	var zero T
	for i := len(kept); i < len(items); i++ {
		items[i] = zero
	}
	return kept
}
