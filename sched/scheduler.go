package sched

import (
	"container/heap"
	"time"
)

// MinInterval is the smallest repeat interval a task may use.
const MinInterval = time.Millisecond

// Scheduler runs timer callbacks against a virtual game clock. It never
// spawns goroutines: callbacks fire from Advance, one at a time, so state
// touched by callbacks has a single writer.
type Scheduler struct {
	now   time.Duration
	seq   uint64
	queue taskQueue
}

// NewScheduler creates a scheduler whose clock starts at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the current game time. While a callback runs this is the
// time the task was due.
func (s *Scheduler) Now() time.Duration {
	if s == nil {
		return 0
	}
	return s.now
}

// Every schedules fn to run every interval, starting one interval from now.
func (s *Scheduler) Every(interval time.Duration, fn func()) *Task {
	if interval < MinInterval {
		interval = MinInterval
	}
	return s.schedule(interval, interval, fn)
}

// After schedules fn to run once after delay.
func (s *Scheduler) After(delay time.Duration, fn func()) *Task {
	if delay < 0 {
		delay = 0
	}
	return s.schedule(delay, 0, fn)
}

func (s *Scheduler) schedule(delay, interval time.Duration, fn func()) *Task {
	t := &Task{
		fn:       fn,
		due:      s.now + delay,
		interval: interval,
		index:    -1,
		owner:    s,
	}
	s.push(t)
	return t
}

func (s *Scheduler) push(t *Task) {
	s.seq++
	t.seq = s.seq
	heap.Push(&s.queue, t)
}

// Advance moves the clock forward by dt and fires every task that falls due,
// ordered by due time and then by registration. It returns the number of
// callbacks fired.
func (s *Scheduler) Advance(dt time.Duration) int {
	if s == nil || dt < 0 {
		return 0
	}
	target := s.now + dt
	fired := 0
	for len(s.queue) > 0 {
		t := s.queue[0]
		if t.due > target {
			break
		}
		heap.Pop(&s.queue)
		s.now = t.due
		if t.interval > 0 {
			t.due += t.interval
			s.push(t)
		} else {
			t.done = true
		}
		if t.fn != nil {
			t.fn()
		}
		fired++
	}
	s.now = target
	return fired
}

// Pending returns the number of queued tasks.
func (s *Scheduler) Pending() int {
	if s == nil {
		return 0
	}
	return len(s.queue)
}

// Task is a handle to a scheduled callback.
type Task struct {
	fn        func()
	due       time.Duration
	interval  time.Duration
	seq       uint64
	index     int
	cancelled bool
	done      bool
	owner     *Scheduler
}

// Cancel stops the task. It reports whether a live task was stopped.
func (t *Task) Cancel() bool {
	if t == nil || t.cancelled || t.done {
		return false
	}
	t.cancelled = true
	if t.owner != nil && t.index >= 0 {
		heap.Remove(&t.owner.queue, t.index)
	}
	return true
}

// Active reports whether the task may still fire.
func (t *Task) Active() bool {
	return t != nil && !t.cancelled && !t.done
}

type taskQueue []*Task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].due == q[j].due {
		return q[i].seq < q[j].seq
	}
	return q[i].due < q[j].due
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*Task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
