// Package frame provides the single-threaded event loop the tab strip runs on.
//
// A Scheduler holds two queues. Tasks queued with Post run at the next
// checkpoint (Drain, or after every frame callback), which makes them the
// equivalent of microtasks. Callbacks queued with RequestFrame run on the next
// Tick, which the presentation layer calls once per presented frame.
//
// Only Post may be called from another goroutine. Everything else belongs to
// the goroutine that owns the loop.
package frame

import (
	"sync"
	"time"
)

// Scheduler is a task queue plus a next-frame callback list.
type Scheduler struct {
	mu    sync.Mutex
	tasks []func()

	frames  []func()
	now     time.Time
	count   uint64
	running bool
}

// NewScheduler creates an empty scheduler whose clock starts at start.
func NewScheduler(start time.Time) *Scheduler {
	return &Scheduler{now: start}
}

// Post queues fn to run at the next checkpoint.
func (s *Scheduler) Post(fn func()) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.tasks = append(s.tasks, fn)
	s.mu.Unlock()
}

// RequestFrame queues fn to run on the next Tick. Callbacks requested while a
// tick is running wait for the following tick.
func (s *Scheduler) RequestFrame(fn func()) {
	if fn == nil {
		return
	}
	s.frames = append(s.frames, fn)
}

// Drain runs queued tasks until the queue is empty, including tasks queued by
// the tasks it runs.
func (s *Scheduler) Drain() {
	for {
		s.mu.Lock()
		if len(s.tasks) == 0 {
			s.mu.Unlock()
			return
		}
		task := s.tasks[0]
		s.tasks = s.tasks[1:]
		s.mu.Unlock()

		task()
	}
}

// Tick advances the clock to now and runs the frame callbacks that were
// pending when the tick began. Tasks are drained before the first callback
// and after each one.
func (s *Scheduler) Tick(now time.Time) {
	if s.running {
		return
	}
	s.running = true
	defer func() { s.running = false }()

	if now.After(s.now) {
		s.now = now
	}
	s.count++

	s.Drain()

	pending := s.frames
	s.frames = nil
	for _, fn := range pending {
		fn()
		s.Drain()
	}
}

// Now returns the timestamp of the most recent tick.
func (s *Scheduler) Now() time.Time {
	return s.now
}

// Frames returns the number of ticks run so far.
func (s *Scheduler) Frames() uint64 {
	return s.count
}

// Idle reports whether there is nothing queued on either list.
func (s *Scheduler) Idle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks) == 0 && len(s.frames) == 0
}
