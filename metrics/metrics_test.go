package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"

	"github.com/lixenwraith/reelspin/reel"
)

type fakePool struct {
	kinds  []reel.Kind
	idle   map[int]int
	inPlay map[int]int
}

func (p *fakePool) Kinds() []reel.Kind     { return p.kinds }
func (p *fakePool) IdleCount(id int) int   { return p.idle[id] }
func (p *fakePool) InPlayCount(id int) int { return p.inPlay[id] }

func newFakePool() *fakePool {
	return &fakePool{
		kinds:  []reel.Kind{{ID: 0, Name: "seven"}, {ID: 1, Name: "bell"}},
		idle:   map[int]int{0: 9, 1: 4},
		inPlay: map[int]int{0: 0, 1: 5},
	}
}

func TestSpinLifecycle(t *testing.T) {
	var now time.Duration
	pool := newFakePool()
	m := New(pool, func() time.Duration { return now })

	if got := testutil.ToFloat64(m.poolIdle.WithLabelValues("bell")); got != 4 {
		t.Fatalf("initial bell idle = %v, want 4", got)
	}

	m.SpinStarted("a")
	m.ReelStopRequested(0, 2*time.Second)
	m.ReelSettled(0, 2750*time.Millisecond)
	m.ReelSettled(1, 3*time.Second) // no request recorded, ignored
	m.SpinResolved("a", nil, []reel.Win{{Symbol: "seven", Rows: []int{0, 0, 0}}})

	pool.idle[1] = 7
	now = 5 * time.Second
	m.SpinFinished("a")

	if got := testutil.ToFloat64(m.spins); got != 1 {
		t.Errorf("spins = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.winningSpins); got != 1 {
		t.Errorf("winning spins = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.wins.WithLabelValues("seven")); got != 1 {
		t.Errorf("seven wins = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(m.settle); got != 1 {
		t.Errorf("settle series = %d, want 1", got)
	}
	if got := testutil.ToFloat64(m.poolIdle.WithLabelValues("bell")); got != 7 {
		t.Errorf("bell idle after spin = %v, want 7", got)
	}
}

func TestLosingSpinCountsNoWins(t *testing.T) {
	m := New(nil, func() time.Duration { return 0 })
	m.SpinStarted("a")
	m.SpinResolved("a", nil, nil)
	m.SpinFinished("a")

	if got := testutil.ToFloat64(m.winningSpins); got != 0 {
		t.Errorf("winning spins = %v, want 0", got)
	}
	if got := testutil.CollectAndCount(m.wins); got != 0 {
		t.Errorf("win series = %d, want 0", got)
	}
}

func TestRouter(t *testing.T) {
	m := New(newFakePool(), func() time.Duration { return 0 })
	m.SpinStarted("a")

	srv := httptest.NewServer(NewRouter(m.Registry()))
	defer srv.Close()

	tests := []struct {
		path     string
		status   int
		contains string
	}{
		{"/healthz", http.StatusOK, "ok"},
		{"/metrics", http.StatusOK, "reelspin_spins_total 1"},
		{"/metrics", http.StatusOK, `reelspin_pool_idle_tokens{symbol="seven"} 9`},
		{"/missing", http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := http.Get(srv.URL + tt.path)
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			defer resp.Body.Close()
			body, _ := io.ReadAll(resp.Body)

			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			if !strings.Contains(string(body), tt.contains) {
				t.Errorf("body missing %q", tt.contains)
			}
		})
	}
}

func TestServerStopsOnCancel(t *testing.T) {
	s := NewServer("127.0.0.1:0", NewRouter(New(nil, func() time.Duration { return 0 }).Registry()), zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run = %v, want nil", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}
