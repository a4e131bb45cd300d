package engine

import (
	"container/heap"
	"time"
)

// Scheduler owns the single game timeline
// Time advances only in fixed ticks; each Step fires due timers in (deadline, scheduling order)
// and then runs tick callbacks in registration order
// All game-state mutation happens inside Step, so the core needs no locks
type Scheduler struct {
	tickInterval time.Duration
	now          time.Duration // timeline time since creation
	accumulator  time.Duration // real time not yet consumed by whole ticks
	tickCount    uint64

	seq     uint64
	timers  timerQueue
	tickers []*tickerEntry
	dirty   bool // a ticker was cancelled and the slice needs compaction
}

type tickerEntry struct {
	fn        func(dt time.Duration)
	cancelled bool
}

// Timer is a scheduled one-shot task
type Timer struct {
	at      time.Duration
	seq     uint64
	fn      func()
	index   int
	stopped bool
	fired   bool
}

// Stop cancels the timer, returns false if it already fired or was stopped
func (t *Timer) Stop() bool {
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// NewScheduler creates a scheduler with the given fixed tick interval
func NewScheduler(tickInterval time.Duration) *Scheduler {
	if tickInterval <= 0 {
		tickInterval = time.Millisecond
	}
	return &Scheduler{
		tickInterval: tickInterval,
		timers:       make(timerQueue, 0, 16),
		tickers:      make([]*tickerEntry, 0, 8),
	}
}

// TickInterval returns the fixed step length
func (s *Scheduler) TickInterval() time.Duration {
	return s.tickInterval
}

// Now returns timeline time elapsed since the scheduler was created
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Ticks returns the number of completed steps
func (s *Scheduler) Ticks() uint64 {
	return s.tickCount
}

// PendingTimers returns the number of scheduled timers not yet fired or stopped
func (s *Scheduler) PendingTimers() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// OnTick registers a per-step callback and returns its cancel function
func (s *Scheduler) OnTick(fn func(dt time.Duration)) (cancel func()) {
	entry := &tickerEntry{fn: fn}
	s.tickers = append(s.tickers, entry)
	return func() {
		if !entry.cancelled {
			entry.cancelled = true
			s.dirty = true
		}
	}
}

// After schedules fn to run d after the current timeline time
// A non-positive d fires on the next step, or later in the current step when called from a firing timer
func (s *Scheduler) After(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &Timer{at: s.now + d, seq: s.seq, fn: fn}
	heap.Push(&s.timers, t)
	return t
}

// Delay returns a signal resolved d after the current timeline time
func (s *Scheduler) Delay(d time.Duration) *Signal {
	sig := NewSignal()
	s.After(d, sig.Resolve)
	return sig
}

// Advance consumes real elapsed time and runs as many whole steps as fit
// Returns the number of steps executed
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt <= 0 {
		return 0
	}
	s.accumulator += dt
	steps := 0
	for s.accumulator >= s.tickInterval {
		s.accumulator -= s.tickInterval
		s.Step()
		steps++
	}
	return steps
}

// Step runs exactly one tick
func (s *Scheduler) Step() {
	s.now += s.tickInterval
	s.tickCount++

	// Timers scheduled by a firing timer with a deadline already reached run in this same step
	for len(s.timers) > 0 && s.timers[0].at <= s.now {
		t := heap.Pop(&s.timers).(*Timer)
		if t.stopped {
			continue
		}
		t.fired = true
		t.fn()
	}

	// Callbacks registered during this step start on the next one
	count := len(s.tickers)
	for i := 0; i < count; i++ {
		entry := s.tickers[i]
		if entry.cancelled {
			continue
		}
		entry.fn(s.tickInterval)
	}

	if s.dirty {
		live := s.tickers[:0]
		for _, entry := range s.tickers {
			if !entry.cancelled {
				live = append(live, entry)
			}
		}
		for i := len(live); i < len(s.tickers); i++ {
			s.tickers[i] = nil
		}
		s.tickers = live
		s.dirty = false
	}
}

// timerQueue is a min-heap ordered by deadline, ties broken by scheduling order
type timerQueue []*Timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].at == q[j].at {
		return q[i].seq < q[j].seq
	}
	return q[i].at < q[j].at
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*Timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
