package obj

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Camera scrolls the world horizontally. X is the translation applied to
// world coordinates: following a character at x puts the view at
// -x + offset.
type Camera struct {
	X float64

	offset  float64
	screenW int
	// shake state, counted in frames
	shake       float64
	shakeFrames int
	shakeTotal  int

	screenH int
	off     *ebiten.Image
}

// NewCamera creates a camera for a screen of the given logical size that
// keeps the followed point offset pixels from the left edge.
func NewCamera(screenW, screenH int, offset float64) *Camera {
	return &Camera{screenW: screenW, screenH: screenH, offset: offset, X: offset}
}

// Follow recomputes the translation for a followed world x.
func (c *Camera) Follow(x float64) {
	c.X = -x + c.offset
}

// SetScreenSize updates the logical screen size used by the camera.
func (c *Camera) SetScreenSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	if c.screenW == w && c.screenH == h {
		return
	}
	c.screenW = w
	c.screenH = h
	c.off = nil
}

// ScreenX maps a world x to screen space.
func (c *Camera) ScreenX(x float64) float64 {
	return x + c.X
}

// ViewX maps a world x to where it is drawn this frame, shake included.
func (c *Camera) ViewX(x float64) float64 {
	return c.ScreenX(x) + c.shakeOffset()
}

// Visible reports whether a span [x, x+w) is at least partly on screen.
func (c *Camera) Visible(x, w float64) bool {
	sx := c.ScreenX(x)
	return sx+w > 0 && sx < float64(c.screenW)
}

// StartShake jitters the view horizontally for the given number of frames,
// fading out linearly.
func (c *Camera) StartShake(intensity float64, frames int) {
	if frames <= 0 || intensity <= 0 {
		return
	}
	c.shake = intensity
	c.shakeFrames = frames
	c.shakeTotal = frames
}

// Tick advances the shake by one frame.
func (c *Camera) Tick() {
	if c.shakeFrames > 0 {
		c.shakeFrames--
	}
}

// Shaking reports whether a shake is in progress.
func (c *Camera) Shaking() bool { return c.shakeFrames > 0 }

func (c *Camera) shakeOffset() float64 {
	if c.shakeFrames <= 0 || c.shakeTotal == 0 {
		return 0
	}
	amp := c.shake * float64(c.shakeFrames) / float64(c.shakeTotal)
	if c.shakeFrames%2 == 0 {
		return amp
	}
	return -amp
}

// Apply translates op by the camera, snapped to whole pixels.
func (c *Camera) Apply(op *ebiten.DrawImageOptions) {
	op.GeoM.Translate(math.Round(c.X+c.shakeOffset()), 0)
}

// Render draws the world into an offscreen image through drawWorld and then
// copies it onto screen. drawWorld should translate with Apply.
func (c *Camera) Render(screen *ebiten.Image, drawWorld func(world *ebiten.Image)) {
	if c.off == nil {
		c.off = ebiten.NewImage(c.screenW, c.screenH)
	}

	c.off.Clear()
	if drawWorld != nil {
		drawWorld(c.off)
	}

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(c.off, op)
}
