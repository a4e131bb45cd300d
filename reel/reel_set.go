package reel

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/reelspin/engine"
	"github.com/lixenwraith/reelspin/scene"
	"github.com/lixenwraith/reelspin/tween"
)

// Layout is the reel grid geometry
type Layout struct {
	Reels        int
	Rows         int
	SymbolHeight float64
	ReelWidth    float64
}

// ReelSet starts reels together, stops them one after another and presents winning kinds
type ReelSet struct {
	scene.Node

	reels    []*Reel
	sched    *engine.Scheduler
	session  engine.SessionHolder
	listener Listener
	log      *zap.Logger
	timing   Timing

	spinning bool
	closed   bool
	spinID   string
	pending  *engine.Signal
	lastWins []Win
	timer    *engine.Timer // next stagger or presentation step
}

// NewReelSet builds one reel per column, each positioned ReelWidth apart
func NewReelSet(pool *Pool, sched *engine.Scheduler, tweens *tween.Manager, session engine.SessionHolder, layout Layout, opts ...Option) (*ReelSet, error) {
	if layout.Reels <= 0 {
		return nil, fmt.Errorf("%w: reels=%d", ErrInvalidLayout, layout.Reels)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rs := &ReelSet{
		Node:     *scene.NewNode("reels"),
		reels:    make([]*Reel, 0, layout.Reels),
		sched:    sched,
		session:  session,
		listener: o.listener,
		log:      o.log,
		timing:   o.timing,
	}

	for i := 0; i < layout.Reels; i++ {
		r, err := NewReel(pool, sched, tweens, layout.Rows, layout.SymbolHeight,
			WithLogger(o.log), WithTiming(o.timing), WithIndex(i))
		if err != nil {
			rs.Close()
			return nil, fmt.Errorf("building reel set: %w", err)
		}
		r.SetX(float64(i) * layout.ReelWidth)
		rs.AddChild(&r.Node)
		rs.reels = append(rs.reels, r)
	}
	return rs, nil
}

// Reels returns the reels in column order
func (rs *ReelSet) Reels() []*Reel { return rs.reels }

// Spinning reports whether a spin is in progress, presentation included
func (rs *ReelSet) Spinning() bool { return rs.spinning }

// SpinID returns the identifier of the current or most recent spin
func (rs *ReelSet) SpinID() string { return rs.spinID }

// LastWins returns the winning kinds of the most recent resolved spin
func (rs *ReelSet) LastWins() []Win { return rs.lastWins }

// StartSpin sets every reel spinning, returns false when a spin is already in progress
func (rs *ReelSet) StartSpin() bool {
	if rs.spinning || rs.closed {
		return false
	}
	rs.spinning = true
	rs.spinID = uuid.NewString()
	rs.lastWins = nil
	if rs.session != nil {
		rs.session.SetState(engine.StateSpinning)
	}

	for _, r := range rs.reels {
		r.StartSpin()
	}

	rs.log.Debug("spin started", zap.String("spin_id", rs.spinID))
	rs.listener.SpinStarted(rs.spinID)
	return true
}

// StopSpin stops reels left to right, one stagger apart
// The returned signal resolves after match detection and win presentation
// Repeated calls during the same spin share the signal, calls while idle get a resolved one
func (rs *ReelSet) StopSpin() *engine.Signal {
	if !rs.spinning {
		return engine.ResolvedSignal()
	}
	if rs.pending != nil {
		return rs.pending
	}
	rs.pending = engine.NewSignal()

	settled := make([]*engine.Signal, len(rs.reels))
	var request func(i int)
	request = func(i int) {
		rs.timer = nil
		if rs.closed || i >= len(rs.reels) {
			return
		}
		sig := rs.reels[i].StopSpin()
		settled[i] = sig
		rs.listener.ReelStopRequested(i, rs.sched.Now())
		sig.Then(func() {
			rs.listener.ReelSettled(i, rs.sched.Now())
		})

		if i+1 < len(rs.reels) {
			rs.timer = rs.sched.After(rs.timing.StopStagger, func() { request(i + 1) })
			return
		}
		engine.All(settled...).Then(rs.resolve)
	}
	request(0)

	return rs.pending
}

// Windows returns every reel's visible kind names in column order
func (rs *ReelSet) Windows() [][]string {
	windows := make([][]string, len(rs.reels))
	for i, r := range rs.reels {
		windows[i] = r.VisibleNames()
	}
	return windows
}

func (rs *ReelSet) resolve() {
	if rs.closed {
		return
	}
	windows := rs.Windows()
	wins := Match(windows)
	rs.lastWins = wins

	symbols := make([]string, len(wins))
	for i, w := range wins {
		symbols[i] = w.Symbol
	}
	rs.log.Info("spin resolved",
		zap.String("spin_id", rs.spinID),
		zap.Any("windows", windows),
		zap.Strings("wins", symbols),
	)
	rs.listener.SpinResolved(rs.spinID, windows, wins)

	rs.present(wins).Then(rs.finish)
}

// present reveals each winning kind reel by reel, holds, then ends the pulses together
func (rs *ReelSet) present(wins []Win) *engine.Signal {
	if len(wins) == 0 {
		return engine.ResolvedSignal()
	}

	type reveal struct {
		win  Win
		reel int
	}
	steps := make([]reveal, 0, len(wins)*len(rs.reels))
	for _, w := range wins {
		for i := range rs.reels {
			if i < len(w.Rows) {
				steps = append(steps, reveal{win: w, reel: i})
			}
		}
	}

	done := engine.NewSignal()
	var show func(k int)
	show = func(k int) {
		rs.timer = nil
		if rs.closed {
			return
		}
		if k == len(steps) {
			rs.timer = rs.sched.After(rs.timing.WinHoldPause, func() {
				rs.timer = nil
				if rs.closed {
					return
				}
				for _, s := range steps {
					rs.reels[s.reel].StopWinner(s.win.Rows[s.reel] + 1)
				}
				done.Resolve()
			})
			return
		}
		s := steps[k]
		rs.reels[s.reel].ShowWinner(s.win.Rows[s.reel] + 1)
		rs.listener.WinnerShown(s.win, s.reel)
		rs.timer = rs.sched.After(rs.timing.WinRevealPause, func() { show(k + 1) })
	}
	show(0)
	return done
}

func (rs *ReelSet) finish() {
	rs.spinning = false
	if rs.session != nil {
		rs.session.SetState(engine.StateStopped)
	}
	rs.log.Debug("spin finished", zap.String("spin_id", rs.spinID))
	rs.listener.SpinFinished(rs.spinID)

	p := rs.pending
	rs.pending = nil
	if p != nil {
		p.Resolve()
	}
}

// Close cancels pending stop and presentation steps, returns every reel's tokens to the pool
// and ends any spin in progress; the set refuses to spin afterwards
func (rs *ReelSet) Close() {
	if rs.closed {
		return
	}
	// Set first so settle signals resolved by the reels below do not run match detection
	rs.closed = true
	if rs.timer != nil {
		rs.timer.Stop()
		rs.timer = nil
	}
	for _, r := range rs.reels {
		r.Close()
		r.Detach()
	}
	rs.reels = nil

	if rs.spinning {
		rs.spinning = false
		if rs.session != nil {
			rs.session.SetState(engine.StateStopped)
		}
	}
	if p := rs.pending; p != nil {
		rs.pending = nil
		p.Resolve()
	}
}
