package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/pollo/component"
	"github.com/milk9111/pollo/prefabs"
	"github.com/milk9111/pollo/sched"
)

// Sprite is what the renderer needs to draw one entity.
type Sprite struct {
	Frame string
	X, Y  float64
	W, H  float64
	FlipX bool
}

// Drawable is anything the world can render.
type Drawable interface {
	Sprite() Sprite
}

// Movable is the shared body of every game object: placement, energy,
// velocity, facing and the current animation frame.
type Movable struct {
	component.Box
	Energy *component.Energy
	Anim   component.Animation

	// Vel holds the horizontal step size in X and the vertical speed in Y.
	// Under ApplyGravity a positive Y rises.
	Vel        cp.Vector
	FacingLeft bool

	// AlwaysAirborne keeps gravity from ever treating the object as landed.
	AlwaysAirborne bool

	gravity *sched.Task
}

// AboveGround reports whether the object is in the air.
func (m *Movable) AboveGround(groundY float64) bool {
	return m.AlwaysAirborne || m.Y < groundY
}

// MoveLeft steps left by Vel.X.
func (m *Movable) MoveLeft() { m.X -= m.Vel.X }

// MoveRight steps right by Vel.X.
func (m *Movable) MoveRight() { m.X += m.Vel.X }

// ApplyGravity starts the fall loop: while airborne or still rising, Y moves
// up by Vel.Y and Vel.Y decays by the acceleration.
func (m *Movable) ApplyGravity(s Session, g prefabs.GravitySpec) {
	m.StopGravity()
	m.gravity = s.Every(g.Interval, func() {
		if m.AboveGround(g.GroundY) || m.Vel.Y > 0 {
			m.Y -= m.Vel.Y
			m.Vel = m.Vel.Sub(cp.Vector{Y: g.Acceleration})
		}
	})
}

// ApplyGravityReversed is the mirror loop used for objects launched with a
// negative Vel.Y: Y moves by Vel.Y and Vel.Y grows by the acceleration.
func (m *Movable) ApplyGravityReversed(s Session, g prefabs.GravitySpec) {
	m.StopGravity()
	m.gravity = s.Every(g.Interval, func() {
		if m.AboveGround(g.GroundY) || m.Vel.Y < 0 {
			m.Y += m.Vel.Y
			m.Vel = m.Vel.Add(cp.Vector{Y: g.Acceleration})
		}
	})
}

// StopGravity cancels the fall loop.
func (m *Movable) StopGravity() {
	if m.gravity != nil {
		m.gravity.Cancel()
		m.gravity = nil
	}
}

// Dead reports whether energy is exhausted. Objects without energy are
// never dead.
func (m *Movable) Dead() bool {
	return m.Energy != nil && m.Energy.IsDead()
}

// Sprite returns the draw data for the current frame.
func (m *Movable) Sprite() Sprite {
	return Sprite{
		Frame: m.Anim.Frame(),
		X:     m.X,
		Y:     m.Y,
		W:     m.W,
		H:     m.H,
		FlipX: m.FacingLeft,
	}
}

// Collides tests inset boxes.
func (m *Movable) Collides(other component.Box) bool {
	return component.Overlaps(m.Box, other)
}

func boxFor(x, y float64, size prefabs.SizeSpec, offset component.Offset) component.Box {
	return component.Box{X: x, Y: y, W: size.Width, H: size.Height, Offset: offset}
}

// taskSet collects an entity's own timers so it can stop them as a group.
type taskSet []*sched.Task

func (ts *taskSet) add(t *sched.Task) *sched.Task {
	*ts = append(*ts, t)
	return t
}

func (ts *taskSet) cancel() {
	for _, t := range *ts {
		t.Cancel()
	}
	*ts = nil
}

func staticFrame(name string) component.FrameSet {
	return component.FrameSet{Name: name, Frames: []string{name}}
}
