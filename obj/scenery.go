package obj

import (
	"github.com/milk9111/pollo/prefabs"
)

// Cloud drifts slowly left forever.
type Cloud struct {
	Movable
}

// NewCloud places a cloud at x, lifted by lift above its spec height, and
// starts its drift.
func NewCloud(s Session, spec prefabs.CloudSpec, x, lift float64) *Cloud {
	c := &Cloud{}
	c.X, c.Y = x, spec.Y+lift
	c.W, c.H = spec.Size.Width, spec.Size.Height
	c.Vel.X = spec.Speed
	c.Anim.Show(staticFrame(spec.Frame), 0)
	s.Every(spec.MoveInterval, c.MoveLeft)
	return c
}

// Background is one parallax layer tile. It never moves.
type Background struct {
	Movable
}

// NewBackground places layer at x, resting on the bottom of the canvas.
func NewBackground(spec prefabs.BackgroundSpec, layer string, x, canvasHeight float64) *Background {
	b := &Background{}
	b.X = x
	b.W, b.H = spec.Size.Width, spec.Size.Height
	b.Y = canvasHeight - b.H
	b.Anim.Show(staticFrame(layer), 0)
	return b
}
