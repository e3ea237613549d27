package obj

import (
	"time"

	"github.com/milk9111/pollo/audio"
	"github.com/milk9111/pollo/sched"
)

// Keys is a snapshot of the input flags entities react to.
type Keys struct {
	Left  bool
	Right bool
	Jump  bool
	Throw bool
	Mute  bool
}

// Any reports whether a gameplay key is held. Mute does not count.
func (k Keys) Any() bool {
	return k.Left || k.Right || k.Jump || k.Throw
}

// Keyboard supplies key state. The game polls real devices; tests and
// headless runs set state directly.
type Keyboard interface {
	Keys() Keys
}

// StaticKeys is a Keyboard whose state is assigned by the caller.
type StaticKeys struct {
	State Keys
}

func (s *StaticKeys) Keys() Keys {
	if s == nil {
		return Keys{}
	}
	return s.State
}

// Session is the view of the running game handed to every entity. It
// exposes the clock, timers, input and the few sibling positions entities
// need, without exposing the world itself.
type Session interface {
	Now() time.Duration
	Every(interval time.Duration, fn func()) *sched.Task
	After(delay time.Duration, fn func()) *sched.Task
	Keys() Keys
	Muted() bool
	Sound() audio.Service
	CharacterX() float64
	EndbossX() float64
	CanvasHeight() float64
	FollowCamera(x float64)
}

// play is the mute-aware way entities trigger sounds.
func play(s Session, name string, volume float64) {
	if s.Muted() || name == "" {
		return
	}
	s.Sound().Play(name, volume)
}
