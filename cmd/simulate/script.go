package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/milk9111/pollo/obj"
)

type step struct {
	keys obj.Keys
	dur  time.Duration
}

// Script replays a looping list of key steps against a game clock. The
// textual form is comma separated "keys:duration" pairs where keys is any
// mix of L, R, J, T and M, or "-" for nothing held, e.g. "R:2s,RJ:300ms,T:100ms".
type Script struct {
	steps []step
	total time.Duration
	now   func() time.Duration
}

func ParseScript(src string) (*Script, error) {
	s := &Script{}
	for _, part := range strings.Split(src, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		keysText, durText, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("simulate: step %q: missing duration", part)
		}
		d, err := time.ParseDuration(durText)
		if err != nil {
			return nil, fmt.Errorf("simulate: step %q: %w", part, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("simulate: step %q: duration must be positive", part)
		}
		var k obj.Keys
		for _, c := range strings.ToUpper(keysText) {
			switch c {
			case 'L':
				k.Left = true
			case 'R':
				k.Right = true
			case 'J':
				k.Jump = true
			case 'T':
				k.Throw = true
			case 'M':
				k.Mute = true
			case '-':
			default:
				return nil, fmt.Errorf("simulate: step %q: unknown key %q", part, c)
			}
		}
		s.steps = append(s.steps, step{keys: k, dur: d})
		s.total += d
	}
	if len(s.steps) == 0 {
		return nil, fmt.Errorf("simulate: empty script")
	}
	return s, nil
}

// At returns the keys held at game time t.
func (s *Script) At(t time.Duration) obj.Keys {
	t %= s.total
	for _, st := range s.steps {
		if t < st.dur {
			return st.keys
		}
		t -= st.dur
	}
	return s.steps[len(s.steps)-1].keys
}

func (s *Script) Keys() obj.Keys {
	if s.now == nil {
		return obj.Keys{}
	}
	return s.At(s.now())
}
