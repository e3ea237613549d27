package component

import "fmt"

// FrameSet is an ordered list of frame references, e.g. "character/walk/3".
type FrameSet struct {
	Name   string
	Frames []string
}

// NewFrameSet builds count frame keys under prefix, numbered from 1.
func NewFrameSet(prefix string, count int) FrameSet {
	if count < 1 {
		count = 1
	}
	frames := make([]string, count)
	for i := range frames {
		frames[i] = fmt.Sprintf("%s/%d", prefix, i+1)
	}
	return FrameSet{Name: prefix, Frames: frames}
}

// Len returns the number of frames.
func (f FrameSet) Len() int { return len(f.Frames) }

// Animation tracks the current frame of an entity. The frame counter is
// shared between sets, so switching sets continues from the same index
// modulo the new set's length.
type Animation struct {
	current int
	frame   string
	set     string
}

// Play shows the next frame of set.
func (a *Animation) Play(set FrameSet) {
	if a == nil || len(set.Frames) == 0 {
		return
	}
	a.frame = set.Frames[a.current%len(set.Frames)]
	a.set = set.Name
	a.current++
}

// Show pins a specific frame of set without advancing the counter.
func (a *Animation) Show(set FrameSet, i int) {
	if a == nil || len(set.Frames) == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(set.Frames) {
		i = len(set.Frames) - 1
	}
	a.frame = set.Frames[i]
	a.set = set.Name
}

// Reset rewinds the frame counter.
func (a *Animation) Reset() {
	if a == nil {
		return
	}
	a.current = 0
}

// Frame returns the current frame reference.
func (a *Animation) Frame() string {
	if a == nil {
		return ""
	}
	return a.frame
}

// Set returns the name of the set the current frame came from.
func (a *Animation) Set() string {
	if a == nil {
		return ""
	}
	return a.set
}
