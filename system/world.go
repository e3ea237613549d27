package system

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/milk9111/pollo/audio"
	"github.com/milk9111/pollo/component"
	"github.com/milk9111/pollo/levels"
	"github.com/milk9111/pollo/obj"
	"github.com/milk9111/pollo/prefabs"
	"github.com/milk9111/pollo/sched"
)

// Outcome is how a session ended.
type Outcome int

const (
	Running Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "running"
	}
}

// Result summarises a finished session.
type Result struct {
	Session     uuid.UUID
	Outcome     Outcome
	Coins       int
	Bottles     int
	Energy      int
	EnemiesLeft int
	Elapsed     time.Duration
}

// Hooks are called once when the session ends. OnWin fires right after the
// win; OnLose fires after the lose delay.
type Hooks struct {
	OnWin  func(Result)
	OnLose func(Result)
}

// Options configures a World. Tuning is required; the rest default to a
// silent, input-less, time-seeded session.
type Options struct {
	Tuning   *prefabs.Tuning
	Audio    audio.Service
	Keyboard obj.Keyboard
	Rand     *rand.Rand
	Hooks    Hooks
	Events   []component.GameEventHandler
}

// World owns one playthrough: the clock, every entity, the tallies and the
// terminal win/lose state. All callbacks run from Update on the caller's
// goroutine.
type World struct {
	ID uuid.UUID

	Character *obj.Character
	Endboss   *obj.Endboss
	Level     *obj.Level
	Camera    *obj.Camera

	HealthBar *obj.StatusBar
	BottleBar *obj.StatusBar
	CoinBar   *obj.StatusBar
	BossBar   *obj.StatusBar

	Projectiles []*obj.Throwable

	tuning   *prefabs.Tuning
	clock    *sched.Scheduler
	scope    *sched.Scope
	sound    audio.Service
	keyboard obj.Keyboard
	hooks    Hooks
	events   component.GameEventEmitter

	coins     int
	bottles   int
	muted     bool
	bossMusic bool
	finished  bool
	outcome   Outcome
	shutdowns int
}

// NewWorld builds a fresh level and character and starts every loop.
func NewWorld(opts Options) (*World, error) {
	if opts.Tuning == nil {
		return nil, fmt.Errorf("system: nil tuning")
	}
	t := opts.Tuning
	if opts.Audio == nil {
		opts.Audio = &audio.Nop{}
	}
	if opts.Keyboard == nil {
		opts.Keyboard = &obj.StaticKeys{}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	clock := sched.NewScheduler()
	w := &World{
		ID:       uuid.New(),
		tuning:   t,
		clock:    clock,
		scope:    sched.NewScope(clock),
		sound:    opts.Audio,
		keyboard: opts.Keyboard,
		hooks:    opts.Hooks,
	}
	for _, h := range opts.Events {
		w.events.Subscribe(h)
	}

	layout, err := levels.Generate(t.Level, opts.Rand)
	if err != nil {
		return nil, fmt.Errorf("system: generate level: %w", err)
	}

	w.Camera = obj.NewCamera(int(t.World.CanvasWidth), int(t.World.CanvasHeight), t.Character.CameraOffset)
	w.Character = obj.NewCharacter(w, t.Character, t.World.Gravity)
	w.Camera.Follow(w.Character.X)
	lvl, err := obj.BuildLevel(w, t, layout, opts.Rand)
	if err != nil {
		w.scope.Shutdown()
		return nil, fmt.Errorf("system: build level: %w", err)
	}
	w.Level = lvl
	w.Endboss = lvl.Endboss
	w.Endboss.OnDefeated = w.Win

	w.HealthBar = obj.NewStatusBar(obj.HealthBar, 20, 0)
	w.CoinBar = obj.NewStatusBar(obj.CoinBar, 20, 50)
	w.BottleBar = obj.NewStatusBar(obj.BottleBar, 20, 100)
	w.BossBar = obj.NewStatusBar(obj.BossBar, 420, 0)
	w.BossBar.Visible = false

	if opts.Keyboard.Keys().Mute {
		w.muted = true
		w.sound.Mute()
	}

	w.scope.Every(t.World.CollectInterval, w.collect)
	w.scope.Every(t.World.RunInterval, w.run)
	w.scope.Every(t.World.EndCheckInterval, w.checkEnd)
	w.scope.Every(t.World.HUDInterval, w.refreshHUD)

	log.Printf("world: session %s started", w.ID)
	return w, nil
}

// Update advances the game clock by dt, firing every due timer.
func (w *World) Update(dt time.Duration) {
	w.clock.Advance(dt)
	w.Camera.Tick()
}

// Subscribe registers an event handler.
func (w *World) Subscribe(h component.GameEventHandler) {
	w.events.Subscribe(h)
}

func (w *World) Coins() int              { return w.coins }
func (w *World) Bottles() int            { return w.bottles }
func (w *World) Finished() bool          { return w.finished }
func (w *World) Outcome() Outcome        { return w.outcome }
func (w *World) Shutdowns() int          { return w.shutdowns }
func (w *World) Tuning() *prefabs.Tuning { return w.tuning }

// Result reports the current tallies.
func (w *World) Result() Result {
	left := 0
	if w.Level != nil {
		left = w.Level.LiveEnemies()
	}
	return Result{
		Session:     w.ID,
		Outcome:     w.outcome,
		Coins:       w.coins,
		Bottles:     w.bottles,
		Energy:      w.Character.Energy.Current,
		EnemiesLeft: left,
		Elapsed:     w.clock.Now(),
	}
}

// Session view handed to entities.

func (w *World) Now() time.Duration { return w.clock.Now() }

func (w *World) Every(interval time.Duration, fn func()) *sched.Task {
	return w.scope.Every(interval, fn)
}

func (w *World) After(delay time.Duration, fn func()) *sched.Task {
	return w.scope.After(delay, fn)
}

func (w *World) Keys() obj.Keys { return w.keyboard.Keys() }

// Muted reports whether gameplay sounds are suppressed. A finished session
// is always muted.
func (w *World) Muted() bool { return w.muted || w.finished }

func (w *World) Sound() audio.Service { return w.sound }

func (w *World) CharacterX() float64 {
	if w.Character == nil {
		return 0
	}
	return w.Character.X
}

func (w *World) EndbossX() float64 {
	if w.Endboss == nil {
		return math.Inf(1)
	}
	return w.Endboss.X
}

func (w *World) CanvasHeight() float64 { return w.tuning.World.CanvasHeight }

func (w *World) FollowCamera(x float64) { w.Camera.Follow(x) }

func (w *World) emit(kind component.GameEventType, subject string, amount int, x, y float64) {
	w.events.Emit(component.GameEvent{
		Type:   kind,
		Kind:   subject,
		Amount: amount,
		At:     w.clock.Now(),
		PosX:   x,
		PosY:   y,
	})
}

func (w *World) cue(c prefabs.SoundCueSpec) {
	if w.Muted() {
		return
	}
	w.sound.Play(c.Name, c.Volume)
}

func (w *World) shutdown() {
	if w.scope.Shutdown() {
		w.shutdowns++
		log.Printf("world: session %s timers stopped at %s", w.ID, w.clock.Now())
	}
}

// Close stops every timer without declaring an outcome, as a restart does.
func (w *World) Close() {
	w.shutdown()
	ws := w.tuning.World
	w.sound.Pause(w.tuning.Character.WalkSound.Name)
	w.sound.Pause(w.tuning.Character.SnoreSound.Name)
	w.sound.Pause(ws.Music.Name)
	w.sound.Stop(ws.BossMusic.Name)
}

// Win ends the session as won. Only the first terminal transition counts.
func (w *World) Win() {
	if w.finished {
		return
	}
	playerMuted := w.muted
	w.finished = true
	w.outcome = Won
	w.silence()
	w.shutdown()
	if !playerMuted {
		w.sound.Stop(w.tuning.World.WinSound.Name)
		w.sound.Play(w.tuning.World.WinSound.Name, w.tuning.World.WinSound.Volume)
	}
	log.Printf("world: session %s won with %d coins", w.ID, w.coins)
	w.emit(component.EventWon, "character", w.coins, w.Character.X, w.Character.Y)
	if w.hooks.OnWin != nil {
		w.hooks.OnWin(w.Result())
	}
}

// Lose ends the session as lost. The outcome latches immediately; the lose
// sound, timer shutdown and OnLose follow after the lose delay so the death
// fall can play out.
func (w *World) Lose() {
	if w.finished {
		return
	}
	playerMuted := w.muted
	w.finished = true
	w.outcome = Lost
	w.silence()
	log.Printf("world: session %s lost", w.ID)
	w.emit(component.EventLost, "character", w.coins, w.Character.X, w.Character.Y)

	w.scope.After(w.tuning.World.LoseDelay, func() {
		w.shutdown()
		if !playerMuted {
			w.sound.Stop(w.tuning.World.LoseSound.Name)
			w.sound.Play(w.tuning.World.LoseSound.Name, w.tuning.World.LoseSound.Volume)
		}
		if w.hooks.OnLose != nil {
			w.hooks.OnLose(w.Result())
		}
	})
}

func (w *World) silence() {
	ws := w.tuning.World
	w.sound.Pause(w.tuning.Character.WalkSound.Name)
	w.sound.Pause(w.tuning.Character.SnoreSound.Name)
	w.sound.Pause(ws.Music.Name)
	w.stopBossMusic()
}

func (w *World) stopBossMusic() {
	w.sound.Stop(w.tuning.World.BossMusic.Name)
	w.bossMusic = false
}
