package engine

import "time"

// Scheduler runs deferred callbacks on the game loop. Tasks carry the
// generation they were scheduled under; CancelPending bumps the generation so
// that callbacks belonging to a torn-down level can never fire afterwards.
// Everything happens on the caller's goroutine.
type Scheduler struct {
	now   time.Time
	gen   uint64
	tasks []task
}

type task struct {
	at  time.Time
	gen uint64
	fn  func()
}

func NewScheduler(now time.Time) *Scheduler {
	return &Scheduler{now: now}
}

// After schedules fn to run once d has elapsed, relative to the last Advance.
func (s *Scheduler) After(d time.Duration, fn func()) {
	s.tasks = append(s.tasks, task{at: s.now.Add(d), gen: s.gen, fn: fn})
}

// Advance moves the clock forward and runs every due task in schedule order.
// Due tasks are removed before running so a callback that schedules or
// cancels never sees itself in the queue.
func (s *Scheduler) Advance(now time.Time) {
	s.now = now

	var due []task
	remaining := s.tasks[:0]
	for _, t := range s.tasks {
		switch {
		case t.gen != s.gen:
			// stale, dropped
		case !t.at.After(now):
			due = append(due, t)
		default:
			remaining = append(remaining, t)
		}
	}
	s.tasks = remaining

	for _, t := range due {
		if t.gen == s.gen {
			t.fn()
		}
	}
}

// CancelPending invalidates every task scheduled so far.
func (s *Scheduler) CancelPending() {
	s.gen++
	s.tasks = s.tasks[:0]
}

// Pending reports how many live tasks are queued.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if t.gen == s.gen {
			n++
		}
	}
	return n
}
