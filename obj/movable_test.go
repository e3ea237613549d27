package obj

import (
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pollo/component"
)

func TestGravityLandsAndRests(t *testing.T) {
	s := newTestSession()
	g := testTuning(t).World.Gravity

	m := &Movable{Box: component.Box{X: 0, Y: 30, W: 10, H: 10}}
	m.ApplyGravity(s, g)

	s.advance(time.Second)
	if m.Y != 142.5 {
		t.Fatalf("Y = %v, want 142.5", m.Y)
	}
	if m.AboveGround(g.GroundY) {
		t.Fatalf("expected landed")
	}

	s.advance(time.Second)
	if m.Y != 142.5 {
		t.Fatalf("moved while resting: Y = %v", m.Y)
	}
}

func TestGravityRisesWithPositiveSpeed(t *testing.T) {
	s := newTestSession()
	g := testTuning(t).World.Gravity

	m := &Movable{Box: component.Box{Y: 142.5, W: 10, H: 10}, Vel: cp.Vector{Y: 20}}
	m.ApplyGravity(s, g)

	s.advance(g.Interval)
	if m.Y != 122.5 || m.Vel.Y != 17.5 {
		t.Fatalf("after one tick Y=%v Vel.Y=%v, want 122.5 17.5", m.Y, m.Vel.Y)
	}
}

func TestGravityLeavesHorizontalStep(t *testing.T) {
	s := newTestSession()
	g := testTuning(t).World.Gravity

	m := &Movable{Box: component.Box{X: 50, Y: 100, W: 10, H: 10}, Vel: cp.Vector{X: 5, Y: 10}}
	m.ApplyGravity(s, g)
	s.advance(3 * g.Interval)
	if m.Vel.X != 5 {
		t.Fatalf("Vel.X = %v after gravity, want 5", m.Vel.X)
	}

	m.MoveRight()
	m.MoveRight()
	m.MoveLeft()
	if m.X != 55 {
		t.Fatalf("X = %v, want 55", m.X)
	}
}

func TestAlwaysAirborneNeverRests(t *testing.T) {
	s := newTestSession()
	g := testTuning(t).World.Gravity

	m := &Movable{Box: component.Box{Y: 400, W: 10, H: 10}, AlwaysAirborne: true}
	m.ApplyGravity(s, g)

	s.advance(4 * g.Interval)
	if m.Y <= 400 {
		t.Fatalf("expected fall below ground line, Y = %v", m.Y)
	}
}

func TestReversedGravityArc(t *testing.T) {
	s := newTestSession()
	g := testTuning(t).World.Gravity

	m := &Movable{Box: component.Box{Y: 200, W: 10, H: 10}, Vel: cp.Vector{Y: -15}, AlwaysAirborne: true}
	m.ApplyGravityReversed(s, g)

	s.advance(g.Interval)
	if m.Y != 185 || m.Vel.Y != -12.5 {
		t.Fatalf("Y=%v Vel.Y=%v, want 185 -12.5", m.Y, m.Vel.Y)
	}
}

func TestStopGravity(t *testing.T) {
	s := newTestSession()
	g := testTuning(t).World.Gravity

	m := &Movable{Box: component.Box{Y: 30, W: 10, H: 10}}
	m.ApplyGravity(s, g)
	m.StopGravity()
	m.StopGravity()

	s.advance(time.Second)
	if m.Y != 30 {
		t.Fatalf("Y = %v after stop, want 30", m.Y)
	}
}

func TestDeadWithoutEnergy(t *testing.T) {
	m := &Movable{}
	if m.Dead() {
		t.Fatalf("object without energy reported dead")
	}
	m.Energy = component.NewEnergy(2)
	m.Energy.Kill()
	if !m.Dead() {
		t.Fatalf("expected dead")
	}
}
