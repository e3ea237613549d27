package component

import "github.com/jakecoffman/cp"

// Offset insets each edge of a box before collision testing.
type Offset struct {
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
}

// Box is an entity's placement in world units. Y grows downwards.
type Box struct {
	X, Y   float64
	W, H   float64
	Offset Offset
}

// Bounds returns the raw box. L/R are the horizontal edges, B is the top
// edge and T the bottom edge in screen space.
func (b Box) Bounds() cp.BB {
	return cp.BB{L: b.X, B: b.Y, R: b.X + b.W, T: b.Y + b.H}
}

// Inset returns the box shrunk by its offset.
func (b Box) Inset() cp.BB {
	return cp.BB{
		L: b.X + b.Offset.Left,
		B: b.Y + b.Offset.Top,
		R: b.X + b.W - b.Offset.Right,
		T: b.Y + b.H - b.Offset.Bottom,
	}
}

// Sized reports whether the box has a usable width and height.
func (b Box) Sized() bool {
	return b.W > 0 && b.H > 0
}

// Overlaps tests a against b using both inset boxes. Edges that only touch do
// not overlap. Unsized boxes never overlap.
func Overlaps(a, b Box) bool {
	if !a.Sized() || !b.Sized() {
		return false
	}
	return strictOverlap(a.Inset(), b.Inset())
}

// OverlapsRaw tests the raw boxes, ignoring offsets.
func OverlapsRaw(a, b Box) bool {
	if !a.Sized() || !b.Sized() {
		return false
	}
	return strictOverlap(a.Bounds(), b.Bounds())
}

func strictOverlap(a, b cp.BB) bool {
	return a.R > b.L && a.T > b.B && a.L < b.R && a.B < b.T
}
