package audio

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/milk9111/pollo/prefabs"
)

// WaveType selects an oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

func parseWave(s string) WaveType {
	switch s {
	case "square":
		return WaveSquare
	case "saw":
		return WaveSaw
	case "noise":
		return WaveNoise
	default:
		return WaveSine
	}
}

// oscillator generates a wave whose frequency slides linearly from freq to
// freqEnd over its duration.
type oscillator struct {
	freq     float64
	freqEnd  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rand.Rand
}

func newOscillator(freq, freqEnd float64, d time.Duration, wave WaveType, rate beep.SampleRate) *oscillator {
	if freqEnd == 0 {
		freqEnd = freq
	}
	return &oscillator{
		freq:     freq,
		freqEnd:  freqEnd,
		duration: rate.N(d),
		wave:     wave,
		rate:     rate,
		noise:    rand.New(rand.NewSource(int64(freq*1000) + int64(d))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.duration {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.duration {
			return i, true
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.freqEnd-o.freq)*t
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope ramps volume up over attack and down over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) *envelope {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Max(0, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

func gain(s beep.Streamer, g float64) beep.Streamer {
	if g <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(g)}
}

// Synthesize builds a finite streamer for a clip spec. A clip with notes
// plays them back to back, splitting the duration evenly.
func Synthesize(spec prefabs.ClipSpec, rate beep.SampleRate) beep.Streamer {
	wave := parseWave(spec.Wave)
	if len(spec.Notes) == 0 {
		osc := newOscillator(spec.Freq, spec.FreqEnd, spec.Duration, wave, rate)
		shaped := newEnvelope(osc, spec.Duration, spec.Attack, spec.Release, rate)
		return gain(beep.Take(rate.N(spec.Duration), shaped), spec.Gain)
	}

	step := spec.Duration / time.Duration(len(spec.Notes))
	notes := make([]beep.Streamer, 0, len(spec.Notes))
	for _, f := range spec.Notes {
		osc := newOscillator(f, f, step, wave, rate)
		notes = append(notes, newEnvelope(osc, step, step/20, step/4, rate))
	}
	return gain(beep.Seq(notes...), spec.Gain)
}

// Render drains s into 16-bit little-endian stereo PCM, the format ebiten's
// audio players read.
func Render(s beep.Streamer) []byte {
	buf := make([][2]float64, 512)
	var out []byte
	var frame [4]byte
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint16(frame[0:], uint16(toPCM(buf[i][0])))
			binary.LittleEndian.PutUint16(frame[2:], uint16(toPCM(buf[i][1])))
			out = append(out, frame[:]...)
		}
		if !ok || n == 0 {
			return out
		}
	}
}

func toPCM(v float64) int16 {
	if v > 1 {
		v = 1
	}
	if v < -1 {
		v = -1
	}
	return int16(v * math.MaxInt16)
}
