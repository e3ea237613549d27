package obj

import (
	"time"

	"github.com/milk9111/pollo/component"
	"github.com/milk9111/pollo/prefabs"
	"github.com/milk9111/pollo/sched"
)

// CharacterState is the animation state chosen each animation tick.
type CharacterState string

const (
	CharacterIdle     CharacterState = "idle"
	CharacterSleeping CharacterState = "sleeping"
	CharacterWalking  CharacterState = "walking"
	CharacterJumping  CharacterState = "jumping"
	CharacterHurt     CharacterState = "hurt"
	CharacterDead     CharacterState = "dead"
	CharacterFalling  CharacterState = "falling"
)

// Character is the player-controlled entity.
type Character struct {
	Movable

	spec    prefabs.CharacterSpec
	gravity prefabs.GravitySpec
	session Session

	idle, sleep, walk, jump, hurt, dead component.FrameSet

	state      CharacterState
	lastAction time.Duration
	snoring    bool
	dying      bool
	gone       bool

	tasks taskSet
}

// NewCharacter places the character and starts its movement, animation,
// idle tracking and gravity loops on s.
func NewCharacter(s Session, spec prefabs.CharacterSpec, gravity prefabs.GravitySpec) *Character {
	c := &Character{
		spec:       spec,
		gravity:    gravity,
		session:    s,
		idle:       spec.Animations["idle"].FrameSet(),
		sleep:      spec.Animations["sleep"].FrameSet(),
		walk:       spec.Animations["walk"].FrameSet(),
		jump:       spec.Animations["jump"].FrameSet(),
		hurt:       spec.Animations["hurt"].FrameSet(),
		dead:       spec.Animations["dead"].FrameSet(),
		state:      CharacterIdle,
		lastAction: s.Now(),
	}
	c.Box = boxFor(spec.X, spec.Y, spec.Size, spec.Offset)
	c.Energy = component.NewEnergy(spec.Energy)
	c.Vel.X = spec.Speed
	c.Anim.Play(c.idle)

	c.tasks.add(s.Every(spec.MoveInterval, c.move))
	c.tasks.add(s.Every(spec.AnimInterval, c.animate))
	c.tasks.add(s.Every(spec.IdleInterval, c.trackIdle))
	c.ApplyGravity(s, gravity)
	return c
}

// State returns the state picked by the last animation tick.
func (c *Character) State() CharacterState { return c.state }

// Airborne reports whether the character is above the ground line.
func (c *Character) Airborne() bool { return c.AboveGround(c.gravity.GroundY) }

// IsHurt reports whether the character was hit within its hurt window.
func (c *Character) IsHurt() bool {
	return c.Energy.IsHurt(c.session.Now(), c.spec.HurtWindow)
}

// Hit applies contact damage. Returns false while dead.
func (c *Character) Hit(damage int) bool {
	return c.Energy.Damage(damage, c.session.Now())
}

// Idle returns how long the character has gone without acting.
func (c *Character) Idle() time.Duration {
	return c.session.Now() - c.lastAction
}

// Gone reports whether the death fall has left the canvas.
func (c *Character) Gone() bool { return c.gone }

func (c *Character) move() {
	if c.Dead() {
		return
	}
	s := c.session
	keys := s.Keys()
	walk := c.spec.WalkSound

	s.Sound().Pause(walk.Name)
	if keys.Right && c.X < s.EndbossX() {
		c.MoveRight()
		c.FacingLeft = false
		c.walkSound()
	}
	if keys.Left && c.X > 0 {
		c.MoveLeft()
		c.FacingLeft = true
		c.walkSound()
	}
	if keys.Jump && !c.Airborne() {
		s.Sound().Pause(walk.Name)
		play(s, c.spec.JumpSound.Name, c.spec.JumpSound.Volume)
		c.Vel.Y = c.spec.JumpSpeed
	}
	s.FollowCamera(c.X)
}

func (c *Character) walkSound() {
	if c.session.Muted() {
		c.session.Sound().Pause(c.spec.WalkSound.Name)
		return
	}
	c.session.Sound().Play(c.spec.WalkSound.Name, c.spec.WalkSound.Volume)
}

func (c *Character) trackIdle() {
	keys := c.session.Keys()
	if keys.Any() || c.Airborne() || c.IsHurt() || c.Dead() {
		c.lastAction = c.session.Now()
	}
}

func (c *Character) animate() {
	keys := c.session.Keys()
	next := CharacterIdle

	switch {
	case c.Dead():
		c.Anim.Play(c.dead)
		next = CharacterDead
		if c.state == CharacterFalling {
			next = CharacterFalling
		}
		c.beginDeathFall()
	case c.IsHurt():
		c.Anim.Play(c.hurt)
		next = CharacterHurt
	case c.Airborne():
		c.Anim.Play(c.jump)
		next = CharacterJumping
	case keys.Right || keys.Left:
		c.Anim.Play(c.walk)
		next = CharacterWalking
	case c.sleepy():
		c.Anim.Play(c.sleep)
		next = CharacterSleeping
	default:
		c.Anim.Play(c.idle)
	}

	c.state = next
	c.snore(next == CharacterSleeping)
}

func (c *Character) sleepy() bool {
	s := c.session
	if s.Muted() {
		return false
	}
	if s.EndbossX()-c.X < c.spec.SleepBossDistance {
		return false
	}
	return c.Idle() > c.spec.SleepAfter
}

func (c *Character) snore(on bool) {
	name := c.spec.SnoreSound.Name
	switch {
	case on && !c.snoring:
		c.session.Sound().Play(name, c.spec.SnoreSound.Volume)
		c.snoring = true
	case !on && c.snoring:
		c.session.Sound().Pause(name)
		c.snoring = false
	}
}

// beginDeathFall schedules the off-screen fall once per death.
func (c *Character) beginDeathFall() {
	if c.dying {
		return
	}
	c.dying = true
	c.session.Sound().Pause(c.spec.WalkSound.Name)
	c.tasks.add(c.session.After(c.spec.DeathDelay, func() {
		c.state = CharacterFalling
		c.StopGravity()
		var fall *sched.Task
		fall = c.session.Every(c.spec.DeathFallInterval, func() {
			c.Y += c.spec.DeathFallStep
			if c.Y > c.session.CanvasHeight() {
				fall.Cancel()
				c.gone = true
				c.tasks.cancel()
			}
		})
		c.tasks.add(fall)
	}))
}
