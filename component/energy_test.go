package component

import (
	"testing"
	"time"
)

func TestEnergyNeverNegative(t *testing.T) {
	cases := []struct {
		name   string
		max    int
		hits   []int
		expect int
	}{
		{"single_hit", 100, []int{10}, 90},
		{"exact_zero", 20, []int{10, 10}, 0},
		{"overkill", 2, []int{10}, 0},
		{"many_hits", 100, []int{10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10}, 0},
		{"boss_damage", 100, []int{40, 40, 40}, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := NewEnergy(c.max)
			for i, amount := range c.hits {
				e.Damage(amount, time.Duration(i)*time.Second)
				if e.Current < 0 {
					t.Fatalf("energy went negative: %d", e.Current)
				}
			}
			if e.Current != c.expect {
				t.Fatalf("expected %d, got %d", c.expect, e.Current)
			}
		})
	}
}

func TestEnergyDamageOnDeadIsIgnored(t *testing.T) {
	e := NewEnergy(10)
	if !e.Damage(10, 100*time.Millisecond) {
		t.Fatalf("first hit should apply")
	}
	if e.Damage(10, 900*time.Millisecond) {
		t.Fatalf("hit on a dead pool should be ignored")
	}
	if e.LastHit != 100*time.Millisecond {
		t.Fatalf("last hit should not move after death, got %v", e.LastHit)
	}
}

func TestEnergyIsHurtWindow(t *testing.T) {
	e := NewEnergy(100)
	if e.IsHurt(0, time.Second) {
		t.Fatalf("fresh pool must not be hurt")
	}
	e.Damage(10, 2*time.Second)

	cases := []struct {
		now  time.Duration
		hurt bool
	}{
		{2 * time.Second, true},
		{2*time.Second + 999*time.Millisecond, true},
		{3 * time.Second, false},
		{10 * time.Second, false},
	}
	for _, c := range cases {
		if got := e.IsHurt(c.now, time.Second); got != c.hurt {
			t.Fatalf("IsHurt(%v) = %v, want %v", c.now, got, c.hurt)
		}
	}
}

func TestEnergyKillCallsOnDeathOnce(t *testing.T) {
	e := NewEnergy(2)
	deaths := 0
	e.OnDeath = func(*Energy) { deaths++ }

	e.Kill()
	e.Kill()
	e.Damage(10, 0)

	if deaths != 1 {
		t.Fatalf("expected one death callback, got %d", deaths)
	}
	if _, ok := e.SinceHit(time.Second); ok {
		t.Fatalf("kill must not record a hit")
	}
}

func TestPercentClamps(t *testing.T) {
	cases := []struct {
		value, max, want float64
	}{
		{50, 100, 50},
		{-5, 100, 0},
		{200, 100, 100},
		{65, 130, 50},
		{10, 0, 0},
	}
	for _, c := range cases {
		if got := Percent(c.value, c.max); got != c.want {
			t.Fatalf("Percent(%v, %v) = %v, want %v", c.value, c.max, got, c.want)
		}
	}
}
