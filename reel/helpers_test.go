package reel

import (
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lixenwraith/reelspin/engine"
	"github.com/lixenwraith/reelspin/tween"
)

const tick = 10 * time.Millisecond

func testKinds(n int) []Kind {
	kinds := make([]Kind, n)
	for i := range kinds {
		kinds[i] = Kind{ID: i, Name: fmt.Sprintf("k%d", i), Value: decimal.NewFromInt(int64(i + 1))}
	}
	return kinds
}

// testTiming recycles exactly every third tick with a 105 unit symbol height
func testTiming() Timing {
	return Timing{
		SpinSpeed:      35,
		SpinUp:         0,
		Settle:         100 * time.Millisecond,
		StopStagger:    250 * time.Millisecond,
		WinRevealPause: 300 * time.Millisecond,
		WinHoldPause:   1500 * time.Millisecond,
		Pulse:          500 * time.Millisecond,
		PulseMinScale:  0.5,
		EmphasisScale:  1.3,
		EmphasisUp:     500 * time.Millisecond,
		EmphasisDown:   250 * time.Millisecond,
	}
}

type rig struct {
	sched  *engine.Scheduler
	tweens *tween.Manager
	pool   *Pool
}

func newRig(t *testing.T, kinds, reels, rows int) *rig {
	t.Helper()
	s := engine.NewScheduler(tick)
	pool, err := NewPool(testKinds(kinds), reels, rows, rand.New(rand.NewPCG(1, 2)))
	if err != nil {
		t.Fatalf("NewPool failed: %v", err)
	}
	return &rig{sched: s, tweens: tween.NewManager(s), pool: pool}
}

func (r *rig) newReel(t *testing.T, opts ...Option) *Reel {
	t.Helper()
	opts = append([]Option{WithTiming(testTiming())}, opts...)
	reel, err := NewReel(r.pool, r.sched, r.tweens, 3, 105, opts...)
	if err != nil {
		t.Fatalf("NewReel failed: %v", err)
	}
	return reel
}

// inPlay sums tokens held outside the pool across all kinds
func (r *rig) inPlay() int {
	n := 0
	for _, k := range r.pool.Kinds() {
		n += r.pool.InPlayCount(k.ID)
	}
	return n
}

func runUntil(t *testing.T, s *engine.Scheduler, sig *engine.Signal, limit time.Duration) {
	t.Helper()
	for elapsed := time.Duration(0); !sig.Done(); elapsed += s.TickInterval() {
		if elapsed > limit {
			t.Fatalf("Signal not resolved within %v", limit)
		}
		s.Step()
	}
}

type event struct {
	name   string
	reel   int
	at     time.Duration
	symbol string
}

type recorder struct {
	NopListener
	sched    *engine.Scheduler
	events   []event
	resolved [][]Win
}

func (r *recorder) add(e event) { r.events = append(r.events, e) }

func (r *recorder) SpinStarted(string) {
	r.add(event{name: "start", at: r.sched.Now()})
}

func (r *recorder) ReelStopRequested(reel int, at time.Duration) {
	r.add(event{name: "stop", reel: reel, at: at})
}

func (r *recorder) ReelSettled(reel int, at time.Duration) {
	r.add(event{name: "settled", reel: reel, at: at})
}

func (r *recorder) SpinResolved(_ string, _ [][]string, wins []Win) {
	r.resolved = append(r.resolved, wins)
	r.add(event{name: "resolved", at: r.sched.Now()})
}

func (r *recorder) WinnerShown(win Win, reel int) {
	r.add(event{name: "winner", reel: reel, at: r.sched.Now(), symbol: win.Symbol})
}

func (r *recorder) SpinFinished(string) {
	r.add(event{name: "finished", at: r.sched.Now()})
}

func (r *recorder) named(name string) []event {
	var out []event
	for _, e := range r.events {
		if e.name == name {
			out = append(out, e)
		}
	}
	return out
}
