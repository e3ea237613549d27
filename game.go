package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/pollo/assets"
	"github.com/milk9111/pollo/audio"
	"github.com/milk9111/pollo/component"
	"github.com/milk9111/pollo/metrics"
	"github.com/milk9111/pollo/obj"
	"github.com/milk9111/pollo/prefabs"
	"github.com/milk9111/pollo/store"
	"github.com/milk9111/pollo/system"
)

type screen int

const (
	screenStart screen = iota
	screenPlaying
	screenWon
	screenLost
)

func (s screen) String() string {
	switch s {
	case screenPlaying:
		return "playing"
	case screenWon:
		return "won"
	case screenLost:
		return "lost"
	default:
		return "start"
	}
}

// Config is what main parses from flags.
type Config struct {
	Debug       bool
	Seed        int64
	Muted       bool
	MetricsAddr string
	PrefabDir   string
}

type Game struct {
	cfg Config

	tuning   *prefabs.Tuning
	reloader *prefabs.Reloader
	sound    audio.Service
	audioMgr *audio.Manager
	input    *obj.Input
	sprites  *assets.Sprites
	store    *store.Store
	metrics  *metrics.Exporter

	world    *system.World
	result   system.Result
	sessions int

	screen  screen
	paused  bool
	overlay *ebitenui.UI
	pauseUI *ebitenui.UI
}

func NewGame(cfg Config) (*Game, error) {
	if cfg.PrefabDir != "" {
		prefabs.Dir = cfg.PrefabDir
	}
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return nil, fmt.Errorf("game: load tuning: %w", err)
	}

	g := &Game{
		cfg:     cfg,
		tuning:  tuning,
		sprites: assets.NewSprites(cfg.Debug),
		metrics: metrics.NewExporter(),
	}

	if cfg.Debug {
		r, err := prefabs.NewReloader(prefabs.Dir)
		if err != nil {
			log.Printf("game: hot reload disabled: %v", err)
		} else {
			g.reloader = r
		}
	}

	st, err := store.Open(store.DefaultAppName)
	if err != nil {
		log.Printf("game: settings will not persist: %v", err)
	}
	g.store = st

	ctx := ebitenaudio.NewContext(tuning.Audio.SampleRate)
	mgr, err := audio.NewManager(ctx, tuning.Audio)
	if err != nil {
		log.Printf("game: audio disabled: %v", err)
		g.sound = &audio.Nop{}
	} else {
		g.audioMgr = mgr
		g.sound = mgr
	}

	muted := cfg.Muted || g.store.Settings().Muted
	g.input = obj.NewInput(muted)
	if muted {
		g.sound.Mute()
	}

	if cfg.MetricsAddr != "" {
		g.metrics.Serve(cfg.MetricsAddr)
	}

	g.pauseUI = newPauseUI(g)
	g.show(screenStart)
	return g, nil
}

// startSession tears down the current World, if any, and builds a fresh one.
func (g *Game) startSession() {
	if g.world != nil {
		g.world.Close()
		log.Printf("game: session %s restarted", g.world.ID)
	}
	if t, ok := g.reloader.Poll(); ok {
		g.tuning = t
	}

	w, err := system.NewWorld(system.Options{
		Tuning:   g.tuning,
		Audio:    g.sound,
		Keyboard: g.input,
		Rand:     rand.New(rand.NewSource(g.nextSeed())),
		Hooks:    system.Hooks{OnWin: g.finish, OnLose: g.finish},
		Events:   []component.GameEventHandler{g.metrics.Handle},
	})
	if err != nil {
		log.Printf("game: start session: %v", err)
		g.show(screenStart)
		return
	}
	g.sessions++
	g.metrics.Reset()
	g.world = w
	g.paused = false
	g.show(screenPlaying)
}

// nextSeed keeps the level fixed across restarts when a seed was given.
func (g *Game) nextSeed() int64 {
	if g.cfg.Seed != 0 {
		return g.cfg.Seed
	}
	return time.Now().UnixNano()
}

func (g *Game) finish(r system.Result) {
	g.result = r
	if err := g.store.Record(r.Outcome == system.Won, r.Coins); err != nil {
		log.Printf("game: %v", err)
	}
	if r.Outcome == system.Won {
		g.show(screenWon)
	} else {
		g.show(screenLost)
	}
}

func (g *Game) backToStart() {
	if g.world != nil {
		g.world.Close()
		g.world = nil
	}
	g.paused = false
	g.show(screenStart)
}

func (g *Game) toggleMute() {
	g.input.SetMuted(!g.input.Keys().Mute)
	g.applyMute()
}

// applyMute mirrors the input toggle outside a running session, where the
// world's run pass is not there to do it.
func (g *Game) applyMute() {
	if g.input.Keys().Mute {
		g.sound.Mute()
	} else {
		g.sound.Unmute()
	}
	g.persistMute()
}

func (g *Game) persistMute() {
	if err := g.store.SetMuted(g.input.Keys().Mute); err != nil {
		log.Printf("game: %v", err)
	}
}

func (g *Game) show(s screen) {
	g.screen = s
	switch s {
	case screenStart:
		g.overlay = newStartUI(g)
	case screenWon, screenLost:
		g.overlay = newEndUI(g, s, g.result)
	default:
		g.overlay = nil
	}
}

func (g *Game) tick() time.Duration {
	if g.tuning.World.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(g.tuning.World.TickRate)
}

func (g *Game) Update() error {
	wasMuted := g.input.Keys().Mute
	g.input.Update()
	if g.input.Keys().Mute != wasMuted {
		if g.screen == screenPlaying {
			g.persistMute()
		} else {
			g.applyMute()
		}
	}

	switch g.screen {
	case screenPlaying:
		if g.input.PausePressed {
			g.paused = !g.paused
		}
		if g.paused {
			g.pauseUI.Update()
			return nil
		}
		if g.input.RestartPressed {
			g.startSession()
			return nil
		}
		g.world.Update(g.tick())
	default:
		if g.input.RestartPressed {
			g.startSession()
			return nil
		}
		if g.overlay != nil {
			g.overlay.Update()
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.world != nil {
		g.world.Draw(screen, g.sprites, g.cfg.Debug)
	}

	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	if g.screen == screenPlaying && g.paused {
		g.pauseUI.Draw(screen)
	}

	if g.cfg.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %.2f  FPS: %.2f  screen: %s  sessions: %d",
			ebiten.ActualTPS(), ebiten.ActualFPS(), g.screen, g.sessions))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return g.tuning.World.CanvasWidth, g.tuning.World.CanvasHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.world != nil {
		g.world.Close()
	}
	if err := g.reloader.Close(); err != nil {
		log.Printf("game: close reloader: %v", err)
	}
	if g.audioMgr != nil {
		g.audioMgr.Close()
	}
}
