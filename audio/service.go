package audio

// Service plays named sounds. Callers never touch players directly.
type Service interface {
	Play(name string, volume float64)
	Pause(name string)
	Stop(name string)
	Playing(name string) bool
	Mute()
	Unmute()
	Muted() bool
}

// Nop is a Service that makes no sound. It still tracks mute and playing
// state so game logic behaves the same in headless runs.
type Nop struct {
	muted   bool
	playing map[string]bool
}

func (n *Nop) Play(name string, _ float64) {
	if n.muted {
		return
	}
	if n.playing == nil {
		n.playing = map[string]bool{}
	}
	n.playing[name] = true
}

func (n *Nop) Pause(name string) { delete(n.playing, name) }

func (n *Nop) Stop(name string) { delete(n.playing, name) }

func (n *Nop) Playing(name string) bool { return n.playing[name] }

func (n *Nop) Mute() {
	n.muted = true
	n.playing = nil
}

func (n *Nop) Unmute() { n.muted = false }

func (n *Nop) Muted() bool { return n.muted }
