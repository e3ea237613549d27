package audio

import (
	"bytes"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/pollo/prefabs"
)

type clip struct {
	player   *audio.Player
	loop     bool
	duration time.Duration
}

// Manager is the ebiten-backed Service. Clips are synthesized once at
// startup and held as in-memory players.
type Manager struct {
	clips map[string]*clip
	muted bool
}

// NewManager synthesizes every clip in spec. ctx must have been created
// with spec.SampleRate.
func NewManager(ctx *audio.Context, spec prefabs.AudioSpec) (*Manager, error) {
	if ctx == nil {
		return nil, fmt.Errorf("audio: nil context")
	}
	if ctx.SampleRate() != spec.SampleRate {
		return nil, fmt.Errorf("audio: context rate %d does not match spec rate %d", ctx.SampleRate(), spec.SampleRate)
	}
	rate := beep.SampleRate(spec.SampleRate)

	names := make([]string, 0, len(spec.Clips))
	for name := range spec.Clips {
		names = append(names, name)
	}
	sort.Strings(names)

	m := &Manager{clips: make(map[string]*clip, len(names))}
	for _, name := range names {
		cs := spec.Clips[name]
		pcm := Render(Synthesize(cs, rate))
		if len(pcm) == 0 {
			log.Printf("audio: clip %s rendered empty, skipping", name)
			continue
		}
		c := &clip{loop: cs.Loop, duration: cs.Duration}
		if cs.Loop {
			loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
			p, err := ctx.NewPlayer(loop)
			if err != nil {
				return nil, fmt.Errorf("audio: player %s: %w", name, err)
			}
			c.player = p
		} else {
			c.player = ctx.NewPlayerFromBytes(pcm)
		}
		m.clips[name] = c
	}
	return m, nil
}

// Play starts or resumes a clip. A finished one-shot clip restarts.
func (m *Manager) Play(name string, volume float64) {
	if m == nil || m.muted {
		return
	}
	c, ok := m.clips[name]
	if !ok {
		return
	}
	c.player.SetVolume(volume)
	if c.player.IsPlaying() {
		return
	}
	if !c.loop && c.player.Position() >= c.duration {
		if err := c.player.Rewind(); err != nil {
			log.Printf("audio: rewind %s: %v", name, err)
		}
	}
	c.player.Play()
}

func (m *Manager) Pause(name string) {
	if c := m.clip(name); c != nil {
		c.player.Pause()
	}
}

func (m *Manager) Stop(name string) {
	c := m.clip(name)
	if c == nil {
		return
	}
	c.player.Pause()
	if err := c.player.Rewind(); err != nil {
		log.Printf("audio: rewind %s: %v", name, err)
	}
}

func (m *Manager) Playing(name string) bool {
	c := m.clip(name)
	return c != nil && c.player.IsPlaying()
}

// Mute pauses everything and blocks Play until Unmute.
func (m *Manager) Mute() {
	if m == nil {
		return
	}
	m.muted = true
	for _, c := range m.clips {
		c.player.Pause()
	}
}

func (m *Manager) Unmute() {
	if m != nil {
		m.muted = false
	}
}

func (m *Manager) Muted() bool {
	return m != nil && m.muted
}

// Close releases every player.
func (m *Manager) Close() {
	if m == nil {
		return
	}
	for name, c := range m.clips {
		if err := c.player.Close(); err != nil {
			log.Printf("audio: close %s: %v", name, err)
		}
	}
	m.clips = nil
}

func (m *Manager) clip(name string) *clip {
	if m == nil {
		return nil
	}
	return m.clips[name]
}
