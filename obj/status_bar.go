package obj

import (
	"github.com/milk9111/pollo/component"
)

// BarKind selects how a status bar maps its value to one of six frames.
type BarKind string

const (
	HealthBar BarKind = "health"
	BottleBar BarKind = "bottle"
	CoinBar   BarKind = "coin"
	BossBar   BarKind = "boss"
)

const barFrames = 6

// StatusBar is a fixed-position HUD element. It is drawn without the
// camera offset.
type StatusBar struct {
	Kind    BarKind
	X, Y    float64
	W, H    float64
	Visible bool

	frames component.FrameSet
	index  int
}

// NewStatusBar creates a visible bar showing its full frame for health
// and boss bars and its empty frame otherwise.
func NewStatusBar(kind BarKind, x, y float64) *StatusBar {
	b := &StatusBar{
		Kind:    kind,
		X:       x,
		Y:       y,
		W:       200,
		H:       60,
		Visible: true,
		frames:  component.NewFrameSet("statusbar/"+string(kind), barFrames),
	}
	switch kind {
	case HealthBar, BossBar:
		b.SetPercentage(100)
	}
	return b
}

// Index returns the selected frame, 0 (empty) to 5 (full).
func (b *StatusBar) Index() int { return b.index }

// SetPercentage selects the frame for a 0-100 value.
func (b *StatusBar) SetPercentage(p float64) {
	if b.Kind == BottleBar {
		b.index = InclusiveIndex(p)
		return
	}
	b.index = PercentIndex(p)
}

// SetCount selects the frame for a collected-item count, one frame per
// two items.
func (b *StatusBar) SetCount(n int) {
	b.index = CountIndex(n)
}

func (b *StatusBar) Sprite() Sprite {
	return Sprite{
		Frame: b.frames.Frames[b.index],
		X:     b.X,
		Y:     b.Y,
		W:     b.W,
		H:     b.H,
	}
}

// PercentIndex maps 100 to 5 and otherwise uses exclusive 80/60/40/20
// thresholds.
func PercentIndex(p float64) int {
	switch {
	case p >= 100:
		return 5
	case p > 80:
		return 4
	case p > 60:
		return 3
	case p > 40:
		return 2
	case p > 20:
		return 1
	default:
		return 0
	}
}

// InclusiveIndex is PercentIndex with inclusive thresholds.
func InclusiveIndex(p float64) int {
	switch {
	case p >= 100:
		return 5
	case p >= 80:
		return 4
	case p >= 60:
		return 3
	case p >= 40:
		return 2
	case p >= 20:
		return 1
	default:
		return 0
	}
}

// CountIndex maps a count to min(n/2, 5).
func CountIndex(n int) int {
	if n < 0 {
		return 0
	}
	return min(n/2, barFrames-1)
}
