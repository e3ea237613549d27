package sched

import "time"

const compactThreshold = 64

// Scope records every task created through it so a whole session can be
// torn down with one Shutdown call.
type Scope struct {
	sched     *Scheduler
	tasks     []*Task
	compactAt int
	closed    bool
}

// NewScope creates a scope bound to s.
func NewScope(s *Scheduler) *Scope {
	return &Scope{sched: s, compactAt: compactThreshold}
}

// Now returns the scheduler clock.
func (sc *Scope) Now() time.Duration {
	if sc == nil {
		return 0
	}
	return sc.sched.Now()
}

// Every schedules a repeating task owned by the scope.
func (sc *Scope) Every(interval time.Duration, fn func()) *Task {
	if sc == nil || sc.closed {
		return inertTask()
	}
	return sc.track(sc.sched.Every(interval, fn))
}

// After schedules a one-shot task owned by the scope.
func (sc *Scope) After(delay time.Duration, fn func()) *Task {
	if sc == nil || sc.closed {
		return inertTask()
	}
	return sc.track(sc.sched.After(delay, fn))
}

func (sc *Scope) track(t *Task) *Task {
	if len(sc.tasks) >= sc.compactAt {
		sc.compact()
	}
	sc.tasks = append(sc.tasks, t)
	return t
}

func (sc *Scope) compact() {
	live := sc.tasks[:0]
	for _, t := range sc.tasks {
		if t.Active() {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(sc.tasks); i++ {
		sc.tasks[i] = nil
	}
	sc.tasks = live
	sc.compactAt = max(compactThreshold, 2*len(live))
}

// Shutdown cancels every task the scope handed out. Only the first call
// does anything; it returns false on repeat calls.
func (sc *Scope) Shutdown() bool {
	if sc == nil || sc.closed {
		return false
	}
	sc.closed = true
	for _, t := range sc.tasks {
		t.Cancel()
	}
	sc.tasks = nil
	return true
}

// Closed reports whether Shutdown has run.
func (sc *Scope) Closed() bool {
	return sc == nil || sc.closed
}

// Len returns the number of live tasks owned by the scope.
func (sc *Scope) Len() int {
	if sc == nil {
		return 0
	}
	n := 0
	for _, t := range sc.tasks {
		if t.Active() {
			n++
		}
	}
	return n
}

func inertTask() *Task {
	return &Task{index: -1, cancelled: true}
}
