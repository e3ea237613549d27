package system

import (
	"math/rand"
	"testing"
	"time"

	"github.com/milk9111/pollo/audio/audiotest"
	"github.com/milk9111/pollo/component"
	"github.com/milk9111/pollo/obj"
	"github.com/milk9111/pollo/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	w      *World
	rec    *audiotest.Recorder
	keys   *obj.StaticKeys
	tuning *prefabs.Tuning
	wins   []Result
	losses []Result
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	tuning, err := prefabs.LoadTuning()
	require.NoError(t, err)

	h := &harness{
		rec:    audiotest.New(),
		keys:   &obj.StaticKeys{},
		tuning: tuning,
	}
	h.w, err = NewWorld(Options{
		Tuning:   tuning,
		Audio:    h.rec,
		Keyboard: h.keys,
		Rand:     rand.New(rand.NewSource(1)),
		Hooks: Hooks{
			OnWin:  func(r Result) { h.wins = append(h.wins, r) },
			OnLose: func(r Result) { h.losses = append(h.losses, r) },
		},
	})
	require.NoError(t, err)
	return h
}

// isolate strips the generated level down to the boss so tests place
// exactly what they need.
func (h *harness) isolate() {
	h.w.Level.Enemies = []obj.Enemy{h.w.Endboss}
	h.w.Level.Coins = nil
	h.w.Level.Bottles = nil
}

func (h *harness) chickenAt(x float64) *obj.Chicken {
	c := obj.NewChicken(h.w, h.tuning.Chicken, x, rand.New(rand.NewSource(2)))
	h.w.Level.Enemies = append([]obj.Enemy{c}, h.w.Level.Enemies...)
	return c
}

func (h *harness) grounded() *obj.Character {
	c := h.w.Character
	c.Y = 142.5
	c.Vel.Y = 0
	return c
}

func TestNewWorldRequiresTuning(t *testing.T) {
	_, err := NewWorld(Options{})
	require.Error(t, err)
}

func TestNewWorldDefaults(t *testing.T) {
	tuning, err := prefabs.LoadTuning()
	require.NoError(t, err)

	w, err := NewWorld(Options{Tuning: tuning})
	require.NoError(t, err)
	assert.Equal(t, Running, w.Outcome())
	assert.Equal(t, w.Level.Endboss, w.Endboss)
	assert.False(t, w.BossBar.Visible)
	assert.Equal(t, tuning.Character.CameraOffset-w.Character.X, w.Camera.X)
	assert.Equal(t, tuning.Character.CameraOffset, w.Camera.ScreenX(w.Character.X))

	w.Update(time.Second)
	assert.False(t, w.Finished())
}

func TestThrowWithoutBottles(t *testing.T) {
	h := newHarness(t)
	h.isolate()
	h.keys.State.Throw = true

	h.w.Update(time.Second)

	assert.Empty(t, h.w.Projectiles)
	assert.Equal(t, 0, h.w.Bottles())
	assert.Zero(t, h.rec.Plays("broken_bottle_sound"))
}

func TestThrowSpendsBottle(t *testing.T) {
	h := newHarness(t)
	h.isolate()
	h.w.bottles = 3
	h.keys.State.Throw = true

	h.w.Update(h.tuning.World.RunInterval)

	require.Len(t, h.w.Projectiles, 1)
	assert.Equal(t, 2, h.w.Bottles())
	assert.Equal(t, 1, h.rec.Plays("broken_bottle_sound"))

	p := h.w.Projectiles[0]
	c := h.w.Character
	assert.False(t, p.FacingLeft)
	assert.Greater(t, p.X, c.X)

	h.keys.State.Throw = false
	h.w.Update(3 * time.Second)
	assert.Empty(t, h.w.Projectiles, "splashed bottles are removed")
	assert.Equal(t, 2, h.w.Bottles())
}

func TestProjectileKillsChicken(t *testing.T) {
	h := newHarness(t)
	h.isolate()
	chicken := h.chickenAt(1000)

	p := obj.NewThrowable(h.w, h.tuning.Throwable, h.tuning.World.Gravity, 990, 310, false)
	p.OnRemoved = h.w.removeProjectile
	h.w.Projectiles = append(h.w.Projectiles, p)

	h.w.collect()
	assert.Equal(t, 0, chicken.Energy.Current)
	assert.Equal(t, obj.ThrowSplashing, p.State())

	h.w.Update(100 * time.Millisecond)
	assert.Equal(t, "chicken/dead", chicken.Anim.Set())

	h.w.Update(time.Second)
	assert.Empty(t, h.w.Projectiles)
	assert.Equal(t, obj.ThrowRemoved, p.State())
}

func TestProjectileIgnoresDeadEnemies(t *testing.T) {
	h := newHarness(t)
	h.isolate()
	chicken := h.chickenAt(1000)
	chicken.Kill()

	p := obj.NewThrowable(h.w, h.tuning.Throwable, h.tuning.World.Gravity, 990, 310, false)
	h.w.Projectiles = append(h.w.Projectiles, p)

	h.w.collect()
	assert.True(t, p.InFlight())
}

func TestProjectileSplashesOnGround(t *testing.T) {
	h := newHarness(t)
	h.isolate()

	p := obj.NewThrowable(h.w, h.tuning.Throwable, h.tuning.World.Gravity, 900, 340, false)
	h.w.Projectiles = append(h.w.Projectiles, p)

	h.w.collect()
	assert.Equal(t, obj.ThrowSplashing, p.State())
}

func TestProjectileHitsBossThroughGate(t *testing.T) {
	h := newHarness(t)
	h.isolate()
	boss := h.w.Endboss

	p := obj.NewThrowable(h.w, h.tuning.Throwable, h.tuning.World.Gravity, boss.X+100, 200, false)
	h.w.Projectiles = append(h.w.Projectiles, p)

	h.w.collect()
	assert.Equal(t, 85, boss.Energy.Current)
	assert.False(t, p.InFlight())

	h.w.collect()
	assert.Equal(t, 85, boss.Energy.Current, "a splashing bottle is not resolved again")
}

func TestStompKillsEnemy(t *testing.T) {
	h := newHarness(t)
	h.isolate()
	c := h.w.Character
	c.Y = 100
	chicken := h.chickenAt(c.X)
	chicken.Energy.Current = 2

	h.w.collect()

	assert.Equal(t, 0, chicken.Energy.Current)
	assert.Equal(t, chicken.Y-c.H, c.Y)
	assert.Equal(t, h.tuning.World.StompRebound, c.Vel.Y)
	assert.Equal(t, 100, c.Energy.Current, "a stomp does not hurt")
}

func TestProjectileResolvesBeforeStomp(t *testing.T) {
	h := newHarness(t)
	h.isolate()
	var got []component.GameEventType
	h.w.Subscribe(func(e component.GameEvent) { got = append(got, e.Type) })

	c := h.w.Character
	c.Y = 100
	c.Vel.Y = 0
	chicken := h.chickenAt(c.X)
	require.True(t, c.Collides(chicken.Box), "character must be over the chicken")

	p := obj.NewThrowable(h.w, h.tuning.Throwable, h.tuning.World.Gravity, chicken.X-10, 310, false)
	p.OnRemoved = h.w.removeProjectile
	h.w.Projectiles = append(h.w.Projectiles, p)

	h.w.collect()

	assert.Equal(t, []component.GameEventType{component.EventEnemyHit, component.EventBottleSplashed}, got)
	assert.Equal(t, 0, chicken.Energy.Current)
	assert.Equal(t, obj.ThrowSplashing, p.State())
	assert.Equal(t, 100.0, c.Y, "no stomp snap onto a chicken the bottle already killed")
	assert.Equal(t, 0.0, c.Vel.Y, "no stomp rebound")
	assert.Equal(t, 100, c.Energy.Current)
}

func TestGroundedContactHurts(t *testing.T) {
	h := newHarness(t)
	h.isolate()
	c := h.grounded()
	chicken := h.chickenAt(c.X)

	h.w.collect()
	assert.Equal(t, 90, c.Energy.Current)
	assert.Equal(t, 2, chicken.Energy.Current)
	assert.Equal(t, 1, h.rec.Plays("hurt_sound"))
	assert.Equal(t, 4, h.w.HealthBar.Index())

	h.w.collect()
	assert.Equal(t, 90, c.Energy.Current, "hurt window blocks repeat damage")

	chicken.X = 5000
	h.w.Update(1100 * time.Millisecond)
	chicken.X = c.X
	chicken.Y = h.tuning.Chicken.Y
	h.grounded()

	h.w.collect()
	assert.Equal(t, 80, c.Energy.Current)
}

func TestBossContactHurtsEvenAirborne(t *testing.T) {
	for _, y := range []float64{142.5, 100} {
		h := newHarness(t)
		h.isolate()
		c := h.w.Character
		c.Y = y
		boss := h.w.Endboss
		boss.X = c.X - 60

		h.w.collect()
		assert.Equal(t, 60, c.Energy.Current, "y=%v", y)
		assert.Equal(t, 100, boss.Energy.Current)
	}
}

func TestDeadEnemiesDoNotHurt(t *testing.T) {
	h := newHarness(t)
	h.isolate()
	c := h.grounded()
	chicken := h.chickenAt(c.X)
	chicken.Kill()

	h.w.collect()
	assert.Equal(t, 100, c.Energy.Current)
}

func TestLoseIsTerminalAndDelayed(t *testing.T) {
	h := newHarness(t)
	h.isolate()
	c := h.grounded()
	c.Energy.Current = 10
	h.chickenAt(c.X)

	h.w.collect()
	assert.True(t, h.w.Finished())
	assert.Equal(t, Lost, h.w.Outcome())
	assert.Empty(t, h.losses, "lose screen waits for the death fall")

	h.w.Lose()
	h.w.Win()
	h.w.Update(h.tuning.World.LoseDelay)

	require.Len(t, h.losses, 1)
	assert.Empty(t, h.wins)
	assert.Equal(t, Lost, h.losses[0].Outcome)
	assert.Equal(t, 1, h.w.Shutdowns())
	assert.Equal(t, 1, h.rec.Plays("game_over_sound"))

	h.w.Lose()
	h.w.Update(5 * time.Second)
	assert.Len(t, h.losses, 1)
	assert.Equal(t, 1, h.w.Shutdowns())
}

func TestLoseSilentWhenPlayerMuted(t *testing.T) {
	h := newHarness(t)
	h.isolate()
	h.keys.State.Mute = true
	h.w.Update(h.tuning.World.RunInterval)
	require.True(t, h.w.Muted())

	h.w.Lose()
	h.w.Update(h.tuning.World.LoseDelay)
	assert.Len(t, h.losses, 1)
	assert.Zero(t, h.rec.Plays("game_over_sound"))
}

func TestBossDeathWins(t *testing.T) {
	h := newHarness(t)
	h.isolate()
	boss := h.w.Endboss

	boss.Kill()
	h.w.Update(300 * time.Millisecond)
	assert.True(t, boss.Dying())
	assert.False(t, h.w.Finished())

	h.w.Update(3 * time.Second)
	require.Len(t, h.wins, 1)
	assert.Equal(t, Won, h.w.Outcome())
	assert.Equal(t, 1, h.w.Shutdowns())
	assert.Equal(t, 1, h.rec.Plays("game_winner_sound"))

	h.w.Win()
	h.w.Lose()
	h.w.Update(5 * time.Second)
	assert.Len(t, h.wins, 1)
	assert.Empty(t, h.losses)
	assert.Equal(t, Won, h.w.Outcome())
	assert.Equal(t, 1, h.w.Shutdowns())
}

func TestTimersStopAfterWin(t *testing.T) {
	h := newHarness(t)
	h.isolate()
	h.w.Win()

	x := h.w.Character.X
	h.keys.State.Right = true
	h.w.Update(time.Second)
	assert.Equal(t, x, h.w.Character.X)
	assert.Equal(t, 0, h.w.scope.Len())
}

func TestCoinCollectedOnce(t *testing.T) {
	h := newHarness(t)
	h.isolate()
	c := h.grounded()
	h.w.Level.Coins = []*obj.Coin{
		obj.NewCoin(h.tuning.Coin, c.X+20, c.Y+150),
		obj.NewCoin(h.tuning.Coin, c.X+2000, c.Y+150),
	}

	h.w.collect()
	h.w.collect()

	assert.Equal(t, 1, h.w.Coins())
	assert.Len(t, h.w.Level.Coins, 1)
	assert.Equal(t, 1, h.rec.Plays("coin_sound"))
}

func TestBottleCapacity(t *testing.T) {
	h := newHarness(t)
	h.isolate()
	c := h.grounded()
	h.w.bottles = h.tuning.World.BottleCapacity - 1
	h.w.Level.Bottles = []*obj.Bottle{
		obj.NewBottle(h.w, h.tuning.Bottle, c.X+10),
		obj.NewBottle(h.w, h.tuning.Bottle, c.X+20),
	}

	h.w.collect()
	assert.Equal(t, h.tuning.World.BottleCapacity, h.w.Bottles())
	assert.Len(t, h.w.Level.Bottles, 1)
	assert.Equal(t, 5, h.w.BottleBar.Index())

	h.w.collect()
	assert.Equal(t, h.tuning.World.BottleCapacity, h.w.Bottles())
	assert.Len(t, h.w.Level.Bottles, 1)
}

func TestMuteSync(t *testing.T) {
	h := newHarness(t)
	h.isolate()

	h.w.Update(h.tuning.World.RunInterval)
	assert.True(t, h.rec.Playing("background_sound"))

	h.keys.State.Mute = true
	h.w.Update(h.tuning.World.RunInterval)
	assert.True(t, h.w.Muted())
	assert.True(t, h.rec.Muted())
	assert.False(t, h.rec.Playing("background_sound"))

	h.keys.State.Mute = false
	h.w.Update(h.tuning.World.RunInterval)
	assert.False(t, h.rec.Muted())
	assert.True(t, h.rec.Playing("background_sound"))
}

func TestBossMusicNearBoss(t *testing.T) {
	h := newHarness(t)
	h.isolate()
	c := h.w.Character

	c.X = h.w.Endboss.X - 400
	h.w.run()
	assert.True(t, h.rec.Playing("endboss_sound"))
	assert.False(t, h.rec.Playing("background_sound"))

	c.X = 100
	h.w.run()
	assert.False(t, h.rec.Playing("endboss_sound"))
	assert.True(t, h.rec.Playing("background_sound"))
}

func TestBossBarVisibility(t *testing.T) {
	h := newHarness(t)
	h.isolate()

	h.w.refreshHUD()
	assert.False(t, h.w.BossBar.Visible)

	h.w.Character.X = h.w.Endboss.X - 300
	h.w.Endboss.Energy.Current = 65
	h.w.refreshHUD()
	assert.True(t, h.w.BossBar.Visible)
	assert.Equal(t, 2, h.w.BossBar.Index())
}

func TestRemoveProjectileIdempotent(t *testing.T) {
	h := newHarness(t)
	p := obj.NewThrowable(h.w, h.tuning.Throwable, h.tuning.World.Gravity, 0, 0, false)
	h.w.Projectiles = []*obj.Throwable{p}

	h.w.removeProjectile(p)
	h.w.removeProjectile(p)
	assert.Empty(t, h.w.Projectiles)
}

func TestEventsEmitted(t *testing.T) {
	h := newHarness(t)
	h.isolate()
	var got []component.GameEventType
	h.w.Subscribe(func(e component.GameEvent) { got = append(got, e.Type) })

	c := h.grounded()
	h.w.Level.Coins = []*obj.Coin{obj.NewCoin(h.tuning.Coin, c.X+20, c.Y+150)}
	h.chickenAt(c.X)
	h.w.collect()

	assert.Equal(t, []component.GameEventType{component.EventCoinCollected, component.EventCharacterHurt}, got)
}

func TestRestartBuildsEqualLevel(t *testing.T) {
	build := func() *World {
		tuning, err := prefabs.LoadTuning()
		require.NoError(t, err)
		w, err := NewWorld(Options{Tuning: tuning, Rand: rand.New(rand.NewSource(42))})
		require.NoError(t, err)
		return w
	}

	first := build()
	first.bottles = 4
	first.coins = 3
	first.Win()

	second := build()
	fresh := build()

	assert.Zero(t, second.Coins())
	assert.Zero(t, second.Bottles())
	assert.Empty(t, second.Projectiles)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, shape(fresh.Level), shape(second.Level))
	assert.NotSame(t, fresh.Level, second.Level)
}

type levelShape struct {
	Enemies []string
	EnemyX  []float64
	Coins   [][2]float64
	Bottles []float64
	Clouds  []float64
}

func shape(l *obj.Level) levelShape {
	var s levelShape
	for _, e := range l.Enemies {
		s.Enemies = append(s.Enemies, e.Kind())
		s.EnemyX = append(s.EnemyX, e.Base().X)
	}
	for _, c := range l.Coins {
		s.Coins = append(s.Coins, [2]float64{c.X, c.Y})
	}
	for _, b := range l.Bottles {
		s.Bottles = append(s.Bottles, b.X)
	}
	for _, c := range l.Clouds {
		s.Clouds = append(s.Clouds, c.X)
	}
	return s
}
