package obj

import (
	"testing"
	"time"

	"github.com/milk9111/pollo/component"
)

func newTestThrowable(t *testing.T, s *testSession, left bool) *Throwable {
	t.Helper()
	tuning := testTuning(t)
	return NewThrowable(s, tuning.Throwable, tuning.World.Gravity, 110, 242.5, left)
}

func TestThrowableFlightDirection(t *testing.T) {
	tests := []struct {
		name  string
		left  bool
		wantX float64
	}{
		{"right", false, 110 + 6*8},
		{"left", true, 110 - 6*5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession()
			p := newTestThrowable(t, s, tt.left)
			s.advance(100 * time.Millisecond)
			if p.X != tt.wantX {
				t.Fatalf("X = %v, want %v", p.X, tt.wantX)
			}
			if p.Y >= 242.5 {
				t.Fatalf("expected the bottle to rise first, Y = %v", p.Y)
			}
		})
	}
}

func TestThrowableRawBoundsAgainstEnemy(t *testing.T) {
	s := newTestSession()
	p := newTestThrowable(t, s, false)
	p.X, p.Y = 0, 360

	enemy := component.Box{
		X: 45, Y: 360, W: 70, H: 55,
		Offset: component.Offset{Top: 5, Bottom: 5, Left: 25, Right: 25},
	}

	if !p.Collides(enemy) {
		t.Fatalf("expected raw overlap to count as a hit")
	}
	if component.Overlaps(enemy, p.Box) {
		t.Fatalf("inset boxes should not overlap here")
	}
}

func TestThrowableSplashLifecycle(t *testing.T) {
	s := newTestSession()
	p := newTestThrowable(t, s, false)
	removed := 0
	p.OnRemoved = func(*Throwable) { removed++ }

	s.advance(50 * time.Millisecond)
	if !p.Splash() {
		t.Fatalf("first splash refused")
	}
	if p.Splash() {
		t.Fatalf("second splash accepted")
	}
	if p.State() != ThrowSplashing || p.InFlight() {
		t.Fatalf("state = %s, want splashing", p.State())
	}
	x, y := p.X, p.Y

	s.advance(500 * time.Millisecond)
	if p.X != x || p.Y != y {
		t.Fatalf("splashing bottle moved")
	}
	if got := p.Anim.Set(); got != "bottle/splash" {
		t.Fatalf("animation set = %q", got)
	}

	s.advance(time.Second)
	if p.State() != ThrowRemoved {
		t.Fatalf("state = %s, want removed", p.State())
	}
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
}

func TestThrowableGroundBand(t *testing.T) {
	s := newTestSession()
	p := newTestThrowable(t, s, false)

	tests := []struct {
		y    float64
		want bool
	}{
		{330, false},
		{331, true},
		{369, true},
		{370, false},
	}
	for _, tt := range tests {
		p.Y = tt.y
		if got := p.InGroundBand(); got != tt.want {
			t.Fatalf("InGroundBand(%v) = %v, want %v", tt.y, got, tt.want)
		}
	}
}

func TestThrowStateString(t *testing.T) {
	if ThrowSplashing.String() != "splashing" {
		t.Fatalf("got %q", ThrowSplashing.String())
	}
}
