package obj

import (
	"time"

	"github.com/milk9111/pollo/component"
	"github.com/milk9111/pollo/prefabs"
	"github.com/milk9111/pollo/sched"
)

// Endboss guards the end of the level. Its death plays out over several
// frames and then reports the win through OnDefeated.
type Endboss struct {
	Movable

	spec    prefabs.EndbossSpec
	session Session

	alert, walk, attack, hurt, dead component.FrameSet

	state     EnemyState
	dying     bool
	deadFrame int
	hurtSound bool
	lastSound time.Duration

	tasks taskSet

	// OnDefeated fires once, after the last dead frame and the win delay.
	OnDefeated func()
}

// NewEndboss places the boss and starts its animation and movement loops.
func NewEndboss(s Session, spec prefabs.EndbossSpec) *Endboss {
	b := &Endboss{
		spec:    spec,
		session: s,
		alert:   spec.Animations["alert"].FrameSet(),
		walk:    spec.Animations["walk"].FrameSet(),
		attack:  spec.Animations["attack"].FrameSet(),
		hurt:    spec.Animations["hurt"].FrameSet(),
		dead:    spec.Animations["dead"].FrameSet(),
		state:   EnemyAlert,
	}
	b.Box = boxFor(spec.X, spec.Y, spec.Size, spec.Offset)
	b.Energy = component.NewEnergy(spec.Energy)
	b.Vel.X = spec.PursuitSpeed
	b.Anim.Play(b.alert)

	b.tasks.add(s.Every(spec.AnimInterval, b.animate))
	b.tasks.add(s.Every(spec.MoveInterval, b.move))
	return b
}

func (b *Endboss) Base() *Movable    { return &b.Movable }
func (b *Endboss) Kind() string      { return "endboss" }
func (b *Endboss) State() EnemyState { return b.state }
func (b *Endboss) Boss() bool        { return true }

// Dying reports whether the death sequence has begun.
func (b *Endboss) Dying() bool { return b.dying }

// Hit applies one projectile hit. Hits closer together than the hit gate
// are ignored.
func (b *Endboss) Hit() {
	now := b.session.Now()
	if since, ok := b.Energy.SinceHit(now); ok && since <= b.spec.HitGate {
		return
	}
	if !b.Energy.Damage(b.spec.HitDamage, now) {
		return
	}
	b.playHurt(now)
}

func (b *Endboss) playHurt(now time.Duration) {
	if b.dying || b.session.Muted() {
		return
	}
	if b.hurtSound && now-b.lastSound <= b.spec.HurtSoundGate {
		return
	}
	b.hurtSound = true
	b.lastSound = now
	b.session.Sound().Play(b.spec.HurtSound.Name, b.spec.HurtSound.Volume)
}

func (b *Endboss) Kill() {
	b.Energy.Kill()
}

func (b *Endboss) distance() float64 {
	return b.X - b.session.CharacterX()
}

func (b *Endboss) animate() {
	if b.dying {
		return
	}
	if b.Dead() {
		b.BeginDeath()
		return
	}

	now := b.session.Now()
	switch {
	case b.Energy.IsHurt(now, b.spec.HurtWindow):
		b.state = EnemyHurt
		b.Anim.Play(b.hurt)
	case b.distance() <= b.spec.AttackRange:
		b.state = EnemyAttacking
		b.Anim.Play(b.attack)
	case b.session.CharacterX() > b.spec.WakeX || b.X < b.spec.X || b.Energy.Current < b.spec.WalkEnergyBelow:
		b.state = EnemyWalking
		b.Anim.Play(b.walk)
	default:
		b.state = EnemyAlert
		b.Anim.Play(b.alert)
	}
}

func (b *Endboss) move() {
	if b.Dead() {
		return
	}
	charX := b.session.CharacterX()
	switch {
	case charX < b.X:
		b.MoveLeft()
	case charX > b.X:
		b.MoveRight()
	}
	if b.distance() <= b.spec.AttackRange {
		b.Vel.X = b.spec.ChaseSpeed
	} else {
		b.Vel.X = b.spec.PursuitSpeed
	}
}

// BeginDeath starts the death sequence. Calls after the first are no-ops.
func (b *Endboss) BeginDeath() {
	if b.dying {
		return
	}
	b.dying = true
	b.state = EnemyDead
	b.Vel.X = 0
	b.tasks.cancel()

	b.Anim.Show(b.dead, 0)
	b.deadFrame = 1
	var frames *sched.Task
	frames = b.session.Every(b.spec.DeadFrameInterval, func() {
		if b.deadFrame < b.dead.Len() {
			b.Anim.Show(b.dead, b.deadFrame)
			b.deadFrame++
			return
		}
		frames.Cancel()
		b.session.After(b.spec.WinDelay, func() {
			if b.OnDefeated != nil {
				b.OnDefeated()
			}
		})
	})
}
