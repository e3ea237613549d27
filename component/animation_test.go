package component

import "testing"

func TestAnimationCyclesFrames(t *testing.T) {
	walk := NewFrameSet("chicken/walk", 3)
	var a Animation

	want := []string{"chicken/walk/1", "chicken/walk/2", "chicken/walk/3", "chicken/walk/1"}
	for i, w := range want {
		a.Play(walk)
		if a.Frame() != w {
			t.Fatalf("step %d: got %s, want %s", i, a.Frame(), w)
		}
	}
}

func TestAnimationSharedCounterAcrossSets(t *testing.T) {
	walk := NewFrameSet("walk", 4)
	dead := NewFrameSet("dead", 1)
	var a Animation

	a.Play(walk)
	a.Play(walk)
	a.Play(dead)
	if a.Frame() != "dead/1" || a.Set() != "dead" {
		t.Fatalf("got %s from %s", a.Frame(), a.Set())
	}
	a.Play(walk)
	if a.Frame() != "walk/4" {
		t.Fatalf("counter should carry over, got %s", a.Frame())
	}
}

func TestAnimationShowClamps(t *testing.T) {
	dead := NewFrameSet("boss/dead", 3)
	var a Animation
	a.Show(dead, 10)
	if a.Frame() != "boss/dead/3" {
		t.Fatalf("got %s", a.Frame())
	}
	a.Show(dead, -1)
	if a.Frame() != "boss/dead/1" {
		t.Fatalf("got %s", a.Frame())
	}
}
