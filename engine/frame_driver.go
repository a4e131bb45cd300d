package engine

import (
	"sync/atomic"
	"time"
)

// FrameDriver converts wall clock frames into scheduler advancement
// Pausing freezes the timeline: paused wall time is never fed to the scheduler
type FrameDriver struct {
	scheduler *Scheduler
	clock     TimeProvider
	maxDelta  time.Duration

	last     time.Time
	started  bool
	isPaused atomic.Bool

	frameNumber  atomic.Int64
	totalPaused  time.Duration
	pauseStarted time.Time
}

// NewFrameDriver creates a driver; maxDelta caps how much time a single stalled frame may inject
func NewFrameDriver(scheduler *Scheduler, clock TimeProvider, maxDelta time.Duration) *FrameDriver {
	if maxDelta <= 0 {
		maxDelta = scheduler.TickInterval() * 8
	}
	return &FrameDriver{
		scheduler: scheduler,
		clock:     clock,
		maxDelta:  maxDelta,
	}
}

// Frame advances the scheduler by the wall time since the previous frame and returns steps executed
func (d *FrameDriver) Frame() int {
	d.frameNumber.Add(1)
	now := d.clock.Now()
	if !d.started {
		d.started = true
		d.last = now
		return 0
	}

	delta := now.Sub(d.last)
	d.last = now
	if d.isPaused.Load() || delta <= 0 {
		return 0
	}
	if delta > d.maxDelta {
		delta = d.maxDelta
	}
	return d.scheduler.Advance(delta)
}

// Pause stops timeline advancement
func (d *FrameDriver) Pause() {
	if d.isPaused.CompareAndSwap(false, true) {
		d.pauseStarted = d.clock.Now()
	}
}

// Resume continues timeline advancement without replaying paused time
func (d *FrameDriver) Resume() {
	if d.isPaused.CompareAndSwap(true, false) {
		now := d.clock.Now()
		d.totalPaused += now.Sub(d.pauseStarted)
		d.pauseStarted = time.Time{}
		d.last = now
	}
}

// TogglePause flips pause state and returns the new value
func (d *FrameDriver) TogglePause() bool {
	if d.isPaused.Load() {
		d.Resume()
		return false
	}
	d.Pause()
	return true
}

// IsPaused returns current pause state
func (d *FrameDriver) IsPaused() bool {
	return d.isPaused.Load()
}

// FrameNumber returns the number of frames seen, paused frames included
func (d *FrameDriver) FrameNumber() int64 {
	return d.frameNumber.Load()
}

// TotalPauseDuration returns cumulative completed pause time
func (d *FrameDriver) TotalPauseDuration() time.Duration {
	return d.totalPaused
}
