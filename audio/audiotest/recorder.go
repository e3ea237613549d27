// Package audiotest provides a recording audio.Service for tests.
package audiotest

// Call is one recorded service call.
type Call struct {
	Op     string
	Name   string
	Volume float64
}

// Recorder implements audio.Service and remembers every call that would
// have produced or changed sound.
type Recorder struct {
	Calls   []Call
	muted   bool
	playing map[string]bool
}

func New() *Recorder {
	return &Recorder{playing: map[string]bool{}}
}

func (r *Recorder) Play(name string, volume float64) {
	if r.muted {
		return
	}
	r.Calls = append(r.Calls, Call{Op: "play", Name: name, Volume: volume})
	r.playing[name] = true
}

func (r *Recorder) Pause(name string) {
	r.Calls = append(r.Calls, Call{Op: "pause", Name: name})
	delete(r.playing, name)
}

func (r *Recorder) Stop(name string) {
	r.Calls = append(r.Calls, Call{Op: "stop", Name: name})
	delete(r.playing, name)
}

func (r *Recorder) Playing(name string) bool { return r.playing[name] }

func (r *Recorder) Mute() {
	r.muted = true
	r.Calls = append(r.Calls, Call{Op: "mute"})
	r.playing = map[string]bool{}
}

func (r *Recorder) Unmute() {
	r.muted = false
	r.Calls = append(r.Calls, Call{Op: "unmute"})
}

func (r *Recorder) Muted() bool { return r.muted }

// Plays counts play calls for name.
func (r *Recorder) Plays(name string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == "play" && c.Name == name {
			n++
		}
	}
	return n
}

// Reset forgets recorded calls but keeps mute and playing state.
func (r *Recorder) Reset() {
	r.Calls = nil
}
