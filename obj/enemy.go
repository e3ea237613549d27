package obj

import (
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pollo/component"
	"github.com/milk9111/pollo/prefabs"
	"github.com/milk9111/pollo/sched"
)

// EnemyState is the behaviour an enemy is currently showing.
type EnemyState string

const (
	EnemyWalking   EnemyState = "walking"
	EnemyJumping   EnemyState = "jumping"
	EnemyAlert     EnemyState = "alert"
	EnemyAttacking EnemyState = "attack"
	EnemyHurt      EnemyState = "hurt"
	EnemyDead      EnemyState = "dead"
)

// Enemy is anything on the level's enemy list.
type Enemy interface {
	Drawable
	Base() *Movable
	Kind() string
	State() EnemyState
	// Hit applies one projectile hit.
	Hit()
	// Kill forces energy to zero, as a stomp does.
	Kill()
	Boss() bool
}

// walker is the part shared by both chicken kinds.
type walker struct {
	Movable

	kind       string
	session    Session
	hitDamage  int
	walk, dead component.FrameSet
	deathSound prefabs.SoundCueSpec

	state       EnemyState
	deathPlayed bool
	tasks       taskSet
}

func newWalker(s Session, kind string, spec prefabs.ChickenSpec, x float64, rng *rand.Rand) walker {
	w := walker{
		kind:       kind,
		session:    s,
		hitDamage:  spec.HitDamage,
		walk:       spec.Animations["walk"].FrameSet(),
		dead:       spec.Animations["dead"].FrameSet(),
		deathSound: spec.DeathSound,
		state:      EnemyWalking,
	}
	w.Box = boxFor(x, spec.Y, spec.Size, spec.Offset)
	w.Energy = component.NewEnergy(spec.Energy)
	w.Vel.X = spec.SpeedMin
	if rng != nil {
		w.Vel.X += rng.Float64() * spec.SpeedJitter
	}
	w.Anim.Play(w.walk)
	return w
}

func (w *walker) Base() *Movable    { return &w.Movable }
func (w *walker) Kind() string      { return w.kind }
func (w *walker) State() EnemyState { return w.state }
func (w *walker) Boss() bool        { return false }

func (w *walker) Hit() {
	w.Energy.Damage(w.hitDamage, w.session.Now())
}

func (w *walker) Kill() {
	w.Energy.Kill()
}

// showDead pins the dead frame and plays the death sound the first time.
func (w *walker) showDead() {
	w.state = EnemyDead
	w.Anim.Show(w.dead, 0)
	if w.deathPlayed {
		return
	}
	w.deathPlayed = true
	play(w.session, w.deathSound.Name, w.deathSound.Volume)
}

// Chicken walks left at a constant speed until killed.
type Chicken struct {
	walker
}

// NewChicken places a chicken at x and starts its walk and animation loops.
func NewChicken(s Session, spec prefabs.ChickenSpec, x float64, rng *rand.Rand) *Chicken {
	c := &Chicken{walker: newWalker(s, "chicken", spec, x, rng)}
	c.tasks.add(s.Every(spec.MoveInterval, c.move))
	c.tasks.add(s.Every(spec.AnimInterval, c.animate))
	return c
}

func (c *Chicken) move() {
	if c.Dead() {
		return
	}
	c.MoveLeft()
}

func (c *Chicken) animate() {
	if c.Dead() {
		c.showDead()
		c.tasks.cancel()
		return
	}
	c.Anim.Play(c.walk)
}

// MiniChicken walks like a chicken and randomly hops.
type MiniChicken struct {
	walker

	hop     prefabs.HopSpec
	rng     *rand.Rand
	groundY float64
	hopping bool
	flight  *sched.Task
}

// NewMiniChicken places a mini chicken at x and starts its walk, hop and
// animation loops.
func NewMiniChicken(s Session, spec prefabs.MiniChickenSpec, x float64, rng *rand.Rand) *MiniChicken {
	m := &MiniChicken{
		walker:  newWalker(s, "mini_chicken", spec.ChickenSpec, x, rng),
		hop:     spec.Hop,
		rng:     rng,
		groundY: spec.Y,
	}
	m.tasks.add(s.Every(spec.MoveInterval, m.move))
	m.tasks.add(s.Every(spec.AnimInterval, m.animate))
	m.tasks.add(s.Every(spec.Hop.Interval, m.roll))
	return m
}

// Hopping reports whether a hop is in progress.
func (m *MiniChicken) Hopping() bool { return m.hopping }

func (m *MiniChicken) State() EnemyState {
	if m.state != EnemyDead && m.hopping {
		return EnemyJumping
	}
	return m.state
}

func (m *MiniChicken) move() {
	if m.Dead() || m.hopping {
		return
	}
	m.MoveLeft()
}

func (m *MiniChicken) animate() {
	if m.Dead() {
		m.showDead()
		m.tasks.cancel()
		return
	}
	m.Anim.Play(m.walk)
}

func (m *MiniChicken) roll() {
	if m.Dead() || m.hopping || m.rng == nil {
		return
	}
	if m.rng.Float64() < m.hop.Chance {
		m.Jump()
	}
}

// Jump starts a hop. The hop's own gravity runs until the chicken is back
// on its ground line, even if it dies mid-air.
func (m *MiniChicken) Jump() {
	if m.hopping || m.Dead() {
		return
	}
	m.hopping = true
	m.Vel.Y = m.hop.Speed
	if m.flight != nil {
		m.flight.Cancel()
	}
	m.flight = m.session.Every(m.hop.GravityInterval, m.fall)
	m.session.After(m.hop.Cooldown, func() {
		m.hopping = false
	})
}

func (m *MiniChicken) fall() {
	m.Y -= m.Vel.Y
	m.Vel = m.Vel.Sub(cp.Vector{Y: m.hop.Decay})
	if m.Y >= m.groundY {
		m.Y = m.groundY
		m.Vel.Y = 0
		m.flight.Cancel()
	}
}

