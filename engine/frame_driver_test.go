package engine

import (
	"testing"
	"time"
)

func newTestDriver() (*FrameDriver, *Scheduler, *MockTimeProvider) {
	clock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	sched := NewScheduler(testTick)
	return NewFrameDriver(sched, clock, 100*time.Millisecond), sched, clock
}

func TestFrameDriverFirstFrameEstablishesBaseline(t *testing.T) {
	d, sched, clock := newTestDriver()
	clock.Advance(time.Second)
	if n := d.Frame(); n != 0 {
		t.Errorf("Expected first frame to run no steps, got %d", n)
	}
	clock.Advance(30 * time.Millisecond)
	if n := d.Frame(); n != 3 {
		t.Errorf("Expected 3 steps, got %d", n)
	}
	if sched.Now() != 30*time.Millisecond {
		t.Errorf("Expected timeline 30ms, got %v", sched.Now())
	}
	if d.FrameNumber() != 2 {
		t.Errorf("Expected frame number 2, got %d", d.FrameNumber())
	}
}

func TestFrameDriverClampsStalls(t *testing.T) {
	d, sched, clock := newTestDriver()
	d.Frame()
	clock.Advance(5 * time.Second)
	d.Frame()
	if sched.Now() != 100*time.Millisecond {
		t.Errorf("Expected stall clamped to 100ms, got %v", sched.Now())
	}
}

func TestFrameDriverPauseFreezesTimeline(t *testing.T) {
	d, sched, clock := newTestDriver()
	d.Frame()

	if !d.TogglePause() || !d.IsPaused() {
		t.Fatal("Expected paused after toggle")
	}
	clock.Advance(50 * time.Millisecond)
	if n := d.Frame(); n != 0 {
		t.Errorf("Expected no steps while paused, got %d", n)
	}

	if d.TogglePause() {
		t.Fatal("Expected resumed after second toggle")
	}
	if d.TotalPauseDuration() != 50*time.Millisecond {
		t.Errorf("Expected 50ms total pause, got %v", d.TotalPauseDuration())
	}

	clock.Advance(20 * time.Millisecond)
	d.Frame()
	if sched.Now() != 20*time.Millisecond {
		t.Errorf("Expected paused time excluded, timeline at %v", sched.Now())
	}
}

func TestFrameDriverIdempotentPauseResume(t *testing.T) {
	d, _, _ := newTestDriver()
	d.Resume()
	if d.IsPaused() {
		t.Error("Resume on running driver should be a no-op")
	}
	d.Pause()
	d.Pause()
	if !d.IsPaused() {
		t.Error("Expected paused")
	}
}
