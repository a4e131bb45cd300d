package reel

import (
	"errors"
	"testing"
	"time"
)

func assertResting(t *testing.T, r *Reel) {
	t.Helper()
	if r.Len() != r.Rows()+2 {
		t.Fatalf("Expected %d tokens at rest, got %d", r.Rows()+2, r.Len())
	}
	if r.Y() != 0 {
		t.Errorf("Expected container offset 0 at rest, got %f", r.Y())
	}
	r.EachToken(func(i int, tok *Token) {
		want := float64(i)*r.SymbolHeight() - r.SymbolHeight()
		if tok.Y() != want {
			t.Errorf("Slot %d: expected y %f, got %f", i, want, tok.Y())
		}
	})
	if got := len(r.VisibleWindow()); got != r.Rows() {
		t.Errorf("Expected window of %d, got %d", r.Rows(), got)
	}
}

func TestNewReelStacksAtRest(t *testing.T) {
	r := newRig(t, 3, 3, 3)
	reel := r.newReel(t)

	assertResting(t, reel)
	if reel.State() != StateIdle {
		t.Errorf("Expected idle, got %s", reel.State())
	}
	if r.inPlay() != 5 {
		t.Errorf("Expected 5 tokens in play, got %d", r.inPlay())
	}
}

func TestNewReelRejectsBadLayout(t *testing.T) {
	r := newRig(t, 3, 3, 3)
	if _, err := NewReel(r.pool, r.sched, r.tweens, 0, 105); !errors.Is(err, ErrInvalidLayout) {
		t.Errorf("Expected ErrInvalidLayout, got %v", err)
	}
	if _, err := NewReel(r.pool, r.sched, r.tweens, 3, 0); !errors.Is(err, ErrInvalidLayout) {
		t.Errorf("Expected ErrInvalidLayout, got %v", err)
	}
}

func TestReelStartSpinIsIdempotent(t *testing.T) {
	r := newRig(t, 3, 3, 3)
	reel := r.newReel(t)

	reel.StartSpin()
	if reel.Len() != 6 || reel.State() != StateSpinning {
		t.Fatalf("Expected 6 tokens spinning, got %d in %s", reel.Len(), reel.State())
	}
	if top := reel.TokenAt(0); top.Y() != -210 {
		t.Errorf("Expected new top at -2h, got %f", top.Y())
	}

	reel.StartSpin()
	if reel.Len() != 6 {
		t.Errorf("Second start should not add a token, got %d", reel.Len())
	}
}

func TestReelSpinRecyclesThroughPool(t *testing.T) {
	r := newRig(t, 3, 3, 3)
	reel := r.newReel(t)
	reel.StartSpin()

	top := reel.TokenAt(0)
	r.sched.Advance(3 * tick)
	if reel.TokenAt(0) == top {
		t.Fatal("Expected a recycle once the top token reached the view buffer")
	}
	if reel.TokenAt(1) != top {
		t.Error("Previous top should move down one slot")
	}
	if reel.Len() != 6 || r.inPlay() != 6 {
		t.Errorf("Expected 6 held tokens, got len=%d inPlay=%d", reel.Len(), r.inPlay())
	}
	if reel.Speed() <= 0 {
		t.Errorf("Expected positive speed, got %f", reel.Speed())
	}
}

func TestReelStopSettlesToRest(t *testing.T) {
	r := newRig(t, 3, 3, 3)
	reel := r.newReel(t)

	reel.StartSpin()
	r.sched.Advance(200 * time.Millisecond)

	done := reel.StopSpin()
	if done.Done() {
		t.Fatal("Stop signal resolved before settling")
	}
	if again := reel.StopSpin(); again != done {
		t.Error("Repeated stop should share the pending signal")
	}

	runUntil(t, r.sched, done, 5*time.Second)

	assertResting(t, reel)
	if reel.State() != StateIdle || reel.Speed() != 0 {
		t.Errorf("Expected idle at zero speed, got %s speed=%f", reel.State(), reel.Speed())
	}
	if r.inPlay() != 5 {
		t.Errorf("Expected 5 tokens in play after stop, got %d", r.inPlay())
	}
}

func TestReelSettlePassesThroughContainerOffset(t *testing.T) {
	r := newRig(t, 3, 3, 3)
	reel := r.newReel(t)

	reel.StartSpin()
	r.sched.Advance(5 * tick)
	done := reel.StopSpin()

	// Next recycle is on the sixth tick
	r.sched.Step()
	if reel.State() != StateSettling {
		t.Fatalf("Expected settling after the recycle, got %s", reel.State())
	}
	if reel.Y() != -reel.SymbolHeight() {
		t.Errorf("Expected container at -h when settle begins, got %f", reel.Y())
	}
	if reel.Len() != 6 {
		t.Errorf("Trailing token is kept until settle completes, got %d", reel.Len())
	}

	// Start is ignored while settling
	reel.StartSpin()
	if reel.State() != StateSettling {
		t.Errorf("Start during settle must be ignored, got %s", reel.State())
	}

	runUntil(t, r.sched, done, time.Second)
	assertResting(t, reel)
}

func TestReelStopWhileIdleResolvesImmediately(t *testing.T) {
	r := newRig(t, 3, 3, 3)
	reel := r.newReel(t)

	if !reel.StopSpin().Done() {
		t.Error("Stop on an idle reel should return a resolved signal")
	}
	if reel.State() != StateIdle {
		t.Errorf("Expected idle, got %s", reel.State())
	}
}

func TestReelQueueForcesKinds(t *testing.T) {
	r := newRig(t, 3, 3, 3)
	reel := r.newReel(t)

	forced := make([]int, 40)
	reel.Queue(forced...)
	reel.StartSpin()
	r.sched.Advance(200 * time.Millisecond)
	runUntil(t, r.sched, reel.StopSpin(), time.Second)

	for i, name := range reel.VisibleNames() {
		if name != "k0" {
			t.Errorf("Row %d: expected k0, got %s", i, name)
		}
	}
}

func TestReelWinnerEffects(t *testing.T) {
	r := newRig(t, 3, 3, 3)
	reel := r.newReel(t)
	tok := reel.TokenAt(2)

	reel.ShowWinner(2)
	if tok.Scale() != 0.5 {
		t.Errorf("Pulse should start at 0.5, got %f", tok.Scale())
	}
	r.sched.Advance(2 * time.Second)
	if r.tweens.Len() != 1 {
		t.Fatalf("Pulse should loop until stopped, %d tweens active", r.tweens.Len())
	}

	done := reel.StopWinner(2)
	r.sched.Advance(400 * time.Millisecond)
	if done.Done() {
		t.Error("Emphasis should still be running")
	}
	runUntil(t, r.sched, done, time.Second)
	if tok.Scale() != 1 {
		t.Errorf("Expected unit scale after emphasis, got %f", tok.Scale())
	}
	if r.tweens.Len() != 0 {
		t.Errorf("Expected no tweens left, got %d", r.tweens.Len())
	}
}

func TestReelWinnerMisuseIsIgnored(t *testing.T) {
	r := newRig(t, 3, 3, 3)
	reel := r.newReel(t)

	reel.ShowWinner(-1)
	reel.ShowWinner(42)
	if !reel.StopWinner(42).Done() {
		t.Error("StopWinner on a missing slot should resolve immediately")
	}
	if r.tweens.Len() != 0 {
		t.Errorf("Expected no effects, got %d", r.tweens.Len())
	}
}

func TestReelStartClearsWinnerEffects(t *testing.T) {
	r := newRig(t, 3, 3, 3)
	reel := r.newReel(t)
	tok := reel.TokenAt(1)

	reel.ShowWinner(1)
	r.sched.Advance(100 * time.Millisecond)
	reel.StartSpin()

	if tok.Scale() != 1 {
		t.Errorf("Start should reset winner scale, got %f", tok.Scale())
	}
	// Only the speed ramp remains
	if r.tweens.Len() > 1 {
		t.Errorf("Expected pulse killed, %d tweens active", r.tweens.Len())
	}
}

func TestReelStartAfterCloseIsIgnored(t *testing.T) {
	r := newRig(t, 3, 3, 3)
	reel := r.newReel(t)

	reel.Close()
	reel.StartSpin()

	if reel.State() != StateIdle || reel.Len() != 0 {
		t.Errorf("Expected idle empty reel, got %d tokens in %s", reel.Len(), reel.State())
	}
	if r.inPlay() != 0 {
		t.Errorf("Expected no tokens in play, got %d", r.inPlay())
	}
	for i := 0; i < 10; i++ {
		r.sched.Step()
	}
	if !reel.StopSpin().Done() {
		t.Error("Stop on a closed reel should resolve immediately")
	}
}
