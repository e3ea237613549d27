package obj

import (
	"github.com/milk9111/pollo/component"
	"github.com/milk9111/pollo/prefabs"
)

// ThrowState is the lifecycle of a thrown bottle.
type ThrowState int

const (
	ThrowInFlight ThrowState = iota
	ThrowSplashing
	ThrowRemoved
)

func (s ThrowState) String() string {
	switch s {
	case ThrowInFlight:
		return "in_flight"
	case ThrowSplashing:
		return "splashing"
	case ThrowRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Throwable is a bottle in flight. It is always airborne so gravity never
// rests it; it ends by splashing on an enemy or on the ground band.
type Throwable struct {
	Movable

	spec    prefabs.ThrowableSpec
	session Session
	rotate  component.FrameSet
	splash  component.FrameSet
	state   ThrowState
	motion  taskSet

	// OnRemoved fires once when the splash finishes.
	OnRemoved func(t *Throwable)
}

// NewThrowable launches a bottle from (x, y). Thrown left it uses the
// reversed arc and the slower horizontal step.
func NewThrowable(s Session, spec prefabs.ThrowableSpec, gravity prefabs.GravitySpec, x, y float64, left bool) *Throwable {
	t := &Throwable{
		spec:    spec,
		session: s,
		rotate:  spec.Animations["rotate"].FrameSet(),
		splash:  spec.Animations["splash"].FrameSet(),
	}
	t.Box = boxFor(x, y, spec.Size, spec.Offset)
	t.AlwaysAirborne = true
	t.FacingLeft = left
	t.Anim.Play(t.rotate)

	if left {
		t.Vel.Y = spec.Left.SpeedY
		t.Vel.X = spec.Left.StepX
		t.ApplyGravityReversed(s, gravity)
		t.motion.add(s.Every(spec.MoveInterval, t.MoveLeft))
	} else {
		t.Vel.Y = spec.Right.SpeedY
		t.Vel.X = spec.Right.StepX
		t.ApplyGravity(s, gravity)
		t.motion.add(s.Every(spec.MoveInterval, t.MoveRight))
	}
	t.motion.add(s.Every(spec.RotateInterval, func() {
		t.Anim.Play(t.rotate)
	}))
	return t
}

// State returns the current lifecycle state.
func (t *Throwable) State() ThrowState { return t.state }

// InFlight reports whether the bottle can still hit something.
func (t *Throwable) InFlight() bool { return t.state == ThrowInFlight }

// Collides tests the raw box of the bottle against the raw box of target.
// Offsets are ignored on both sides.
func (t *Throwable) Collides(target component.Box) bool {
	return component.OverlapsRaw(t.Box, target)
}

// InGroundBand reports whether the bottle has reached the splash band.
func (t *Throwable) InGroundBand() bool {
	return t.Y > t.spec.GroundBand.Min && t.Y < t.spec.GroundBand.Max
}

// Splash halts the bottle, plays the splash frames and removes it after
// the configured delay. Returns false if it was already splashing.
func (t *Throwable) Splash() bool {
	if t.state != ThrowInFlight {
		return false
	}
	t.state = ThrowSplashing
	t.motion.cancel()
	t.StopGravity()
	t.Anim.Reset()
	t.Anim.Play(t.splash)

	frames := t.session.Every(t.spec.SplashInterval, func() {
		t.Anim.Play(t.splash)
	})
	t.session.After(t.spec.RemoveAfter, func() {
		frames.Cancel()
		t.state = ThrowRemoved
		if t.OnRemoved != nil {
			t.OnRemoved(t)
		}
	})
	return true
}
