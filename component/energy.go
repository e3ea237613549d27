package component

import "time"

// Energy is the hit-point pool shared by every damageable entity. Current
// never drops below zero and an entity at zero is dead.
type Energy struct {
	Max     int
	Current int
	LastHit time.Duration

	hit bool

	OnDamage func(e *Energy)
	OnDeath  func(e *Energy)
}

// NewEnergy creates an Energy pool with current set to max.
func NewEnergy(max int) *Energy {
	if max <= 0 {
		max = 1
	}
	return &Energy{Max: max, Current: max}
}

// IsDead reports whether the pool is exhausted.
func (e *Energy) IsDead() bool {
	return e == nil || e.Current <= 0
}

// Damage subtracts amount and records the hit time. Damage on a dead pool is
// ignored. Returns true if damage was applied.
func (e *Energy) Damage(amount int, now time.Duration) bool {
	if e == nil || e.IsDead() || amount <= 0 {
		return false
	}
	e.Current -= amount
	if e.Current < 0 {
		e.Current = 0
	}
	e.LastHit = now
	e.hit = true
	if e.OnDamage != nil {
		e.OnDamage(e)
	}
	if e.Current == 0 && e.OnDeath != nil {
		e.OnDeath(e)
	}
	return true
}

// Kill forces the pool to zero without recording a hit.
func (e *Energy) Kill() {
	if e == nil || e.IsDead() {
		return
	}
	e.Current = 0
	if e.OnDeath != nil {
		e.OnDeath(e)
	}
}

// IsHurt reports whether the last hit happened less than window ago.
func (e *Energy) IsHurt(now, window time.Duration) bool {
	if e == nil || !e.hit {
		return false
	}
	return now-e.LastHit < window
}

// SinceHit returns the time elapsed since the last hit, or false if the
// pool was never hit.
func (e *Energy) SinceHit(now time.Duration) (time.Duration, bool) {
	if e == nil || !e.hit {
		return 0, false
	}
	return now - e.LastHit, true
}

// Percentage returns Current as a share of Max in [0, 100].
func (e *Energy) Percentage() float64 {
	if e == nil || e.Max <= 0 {
		return 0
	}
	return Percent(float64(e.Current), float64(e.Max))
}

// Percent returns value/max scaled to [0, 100].
func Percent(value, max float64) float64 {
	if max <= 0 {
		return 0
	}
	p := value / max * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
