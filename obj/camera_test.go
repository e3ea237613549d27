package obj

import "testing"

func TestCameraFollow(t *testing.T) {
	c := NewCamera(720, 480, 100)
	c.Follow(400)
	if c.X != -300 {
		t.Fatalf("X = %v, want -300", c.X)
	}
	if got := c.ScreenX(400); got != 100 {
		t.Fatalf("ScreenX = %v, want 100", got)
	}
}

func TestCameraVisible(t *testing.T) {
	c := NewCamera(720, 480, 100)
	c.Follow(1000)

	tests := []struct {
		x, w float64
		want bool
	}{
		{900, 50, true},
		{800, 50, false},
		{1620, 50, false},
		{1600, 50, true},
	}
	for _, tt := range tests {
		if got := c.Visible(tt.x, tt.w); got != tt.want {
			t.Errorf("Visible(%v, %v) = %v, want %v", tt.x, tt.w, got, tt.want)
		}
	}
}

func TestCameraShakeFades(t *testing.T) {
	c := NewCamera(720, 480, 100)
	c.StartShake(6, 4)
	if !c.Shaking() || c.shakeOffset() != 6 {
		t.Fatalf("offset = %v, want 6", c.shakeOffset())
	}
	c.Tick()
	if got := c.shakeOffset(); got != -4.5 {
		t.Fatalf("offset = %v, want -4.5", got)
	}
	for i := 0; i < 3; i++ {
		c.Tick()
	}
	if c.Shaking() || c.shakeOffset() != 0 {
		t.Fatalf("shake did not end")
	}
}

func TestCameraViewXFollowsShake(t *testing.T) {
	c := NewCamera(720, 480, 100)
	c.Follow(400)
	if got := c.ViewX(400); got != 100 {
		t.Fatalf("ViewX = %v, want 100 without shake", got)
	}

	c.StartShake(6, 4)
	if got := c.ViewX(400); got != 106 {
		t.Fatalf("ViewX = %v, want 106", got)
	}
	c.Tick()
	if got := c.ViewX(400); got != 95.5 {
		t.Fatalf("ViewX = %v, want 95.5", got)
	}
	if got := c.ScreenX(400); got != 100 {
		t.Fatalf("ScreenX = %v, want 100 regardless of shake", got)
	}
}
