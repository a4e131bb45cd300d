package reel

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/reelspin/engine"
	"github.com/lixenwraith/reelspin/scene"
	"github.com/lixenwraith/reelspin/tween"
)

// State is the reel motion phase
type State int

const (
	StateIdle State = iota
	StateSpinning
	StateStopping
	StateSettling
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSpinning:
		return "spinning"
	case StateStopping:
		return "stopping"
	case StateSettling:
		return "settling"
	default:
		return "unknown"
	}
}

// Reel is a vertical strip of tokens scrolling through a fixed view window
// Slot 0 is the buffer above the view, slots 1..rows are visible, slot rows+1 is the buffer below
// The embedded node is the strip container, its y offset carries the settle motion
type Reel struct {
	scene.Node

	pool   *Pool
	sched  *engine.Scheduler
	tweens *tween.Manager
	log    *zap.Logger
	timing Timing
	index  int

	rows   int
	height float64
	strip  *strip

	state   State
	closed  bool
	speed   float64
	pending *engine.Signal
	queue   []int

	speedTween  *tween.Tween
	settleTween *tween.Tween
	effects     map[*Token]*tween.Tween

	cancelTick func()
}

// NewReel checks out rows+2 random tokens, stacks them at rest and hooks the reel into the scheduler tick
func NewReel(pool *Pool, sched *engine.Scheduler, tweens *tween.Manager, rows int, height float64, opts ...Option) (*Reel, error) {
	if rows <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: rows=%d height=%v", ErrInvalidLayout, rows, height)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Reel{
		Node:    *scene.NewNode(fmt.Sprintf("reel-%d", o.index)),
		pool:    pool,
		sched:   sched,
		tweens:  tweens,
		log:     o.log.With(zap.Int("reel", o.index)),
		timing:  o.timing,
		index:   o.index,
		rows:    rows,
		height:  height,
		strip:   newStrip(rows + 3),
		effects: make(map[*Token]*tween.Tween),
	}

	for i := 0; i < rows+2; i++ {
		t, err := pool.CheckoutRandom()
		if err != nil {
			r.releaseAll()
			return nil, fmt.Errorf("stocking reel %d: %w", o.index, err)
		}
		r.attachTop(t)
	}
	r.snap()

	r.cancelTick = sched.OnTick(func(_ time.Duration) { r.tick() })
	return r, nil
}

// Index returns the reel position in its set
func (r *Reel) Index() int { return r.index }

// State returns the current motion phase
func (r *Reel) State() State { return r.state }

// Speed returns the current per-tick scroll speed
func (r *Reel) Speed() float64 { return r.speed }

// Rows returns the number of visible rows
func (r *Reel) Rows() int { return r.rows }

// SymbolHeight returns the vertical spacing between tokens
func (r *Reel) SymbolHeight() float64 { return r.height }

// Len returns the number of tokens currently held
func (r *Reel) Len() int { return r.strip.Len() }

// TokenAt returns the token at strip slot i, nil when out of range
func (r *Reel) TokenAt(i int) *Token { return r.strip.At(i) }

// EachToken visits held tokens top to bottom
func (r *Reel) EachToken(fn func(slot int, t *Token)) { r.strip.Each(fn) }

// Queue forces the kinds of the next tokens entering at the top, first in first out
func (r *Reel) Queue(kindIDs ...int) {
	r.queue = append(r.queue, kindIDs...)
}

// StartSpin adds a token above the strip and ramps speed up to full
// Ignored unless the reel is idle and still holds its tokens
func (r *Reel) StartSpin() {
	if r.state != StateIdle || r.closed || r.strip.Len() == 0 {
		return
	}

	t, err := r.checkout()
	if err != nil {
		r.log.Error("spin start checkout failed", zap.Error(err))
		return
	}

	r.clearEffects()
	top := r.strip.At(0)
	r.attachTop(t)
	t.SetY(top.Y() - r.height)

	r.state = StateSpinning
	r.speed = 0
	r.speedTween = r.tweens.FromTo(r.timing.SpinUp, 0, r.timing.SpinSpeed,
		func(v float64) { r.speed = v },
		tween.WithEasing(tween.BackIn),
	)
}

// StopSpin asks the reel to stop at its next recycle
// The returned signal resolves once the reel has settled, repeated calls share it
// A reel that is not spinning returns an already resolved signal
func (r *Reel) StopSpin() *engine.Signal {
	switch r.state {
	case StateSpinning:
		r.state = StateStopping
		r.pending = engine.NewSignal()
		return r.pending
	case StateStopping, StateSettling:
		return r.pending
	default:
		return engine.ResolvedSignal()
	}
}

func (r *Reel) tick() {
	if r.state != StateSpinning && r.state != StateStopping {
		return
	}

	r.strip.Each(func(_ int, t *Token) {
		t.SetY(t.Y() + r.speed)
	})

	for r.state == StateSpinning || r.state == StateStopping {
		top := r.strip.At(0)
		if top == nil || top.Y() < -r.height {
			return
		}
		if !r.recycle(top) {
			return
		}
		if r.state == StateStopping {
			r.beginSettle()
		}
	}
}

// recycle brings a new token in above top and sends the bottom one back to the pool
func (r *Reel) recycle(top *Token) bool {
	t, err := r.checkout()
	if err != nil {
		r.log.Error("recycle skipped", zap.Error(err))
		return false
	}
	r.release(r.strip.PopBack())
	r.attachTop(t)
	t.SetY(top.Y() - r.height)
	return true
}

func (r *Reel) beginSettle() {
	if r.speedTween != nil {
		r.speedTween.Kill()
		r.speedTween = nil
	}
	r.speed = 0
	r.state = StateSettling

	// Snapping shifts every token down by one slot, the container offset cancels it visually
	r.snap()
	r.SetY(-r.height)
	r.settleTween = r.tweens.FromTo(r.timing.Settle, -r.height, 0,
		func(v float64) { r.SetY(v) },
		tween.WithEasing(tween.BackOut),
		tween.WithOnComplete(r.finishSettle),
	)
}

func (r *Reel) finishSettle() {
	r.settleTween = nil
	r.SetY(0)
	r.release(r.strip.PopBack())
	r.snap()
	r.state = StateIdle

	r.log.Debug("reel settled", zap.Strings("rows", r.VisibleNames()))

	p := r.pending
	r.pending = nil
	if p != nil {
		p.Resolve()
	}
}

// ShowWinner pulses the token at the given strip slot until StopWinner
func (r *Reel) ShowWinner(slot int) {
	t := r.strip.At(slot)
	if t == nil {
		return
	}
	r.killEffect(t)
	r.effects[t] = r.tweens.FromTo(r.timing.Pulse, r.timing.PulseMinScale, 1,
		t.SetScale,
		tween.WithEasing(tween.Elastic),
		tween.WithRepeat(tween.RepeatForever),
		tween.WithYoyo(),
	)
}

// StopWinner ends the pulse with a grow then shrink emphasis
// The returned signal resolves when the token is back at unit scale
func (r *Reel) StopWinner(slot int) *engine.Signal {
	t := r.strip.At(slot)
	if t == nil {
		return engine.ResolvedSignal()
	}
	r.killEffect(t)

	done := engine.NewSignal()
	r.effects[t] = r.tweens.FromTo(r.timing.EmphasisUp, t.Scale(), r.timing.EmphasisScale,
		t.SetScale,
		tween.WithEasing(tween.Elastic),
		tween.WithOnComplete(func() {
			r.effects[t] = r.tweens.FromTo(r.timing.EmphasisDown, r.timing.EmphasisScale, 1,
				t.SetScale,
				tween.WithEasing(tween.ElasticOut),
				tween.WithOnComplete(func() {
					delete(r.effects, t)
					done.Resolve()
				}),
			)
		}),
	)
	return done
}

// VisibleWindow returns the kinds in view, top to bottom
func (r *Reel) VisibleWindow() []Kind {
	window := make([]Kind, 0, r.rows)
	for i := 1; i <= r.rows; i++ {
		if t := r.strip.At(i); t != nil {
			window = append(window, t.Kind())
		}
	}
	return window
}

// VisibleNames returns the kind names in view, top to bottom
func (r *Reel) VisibleNames() []string {
	window := r.VisibleWindow()
	names := make([]string, len(window))
	for i, k := range window {
		names[i] = k.Name
	}
	return names
}

// Close stops all motion and returns every token to the pool, the reel cannot spin afterwards
func (r *Reel) Close() {
	r.closed = true
	if r.cancelTick != nil {
		r.cancelTick()
		r.cancelTick = nil
	}
	if r.speedTween != nil {
		r.speedTween.Kill()
		r.speedTween = nil
	}
	if r.settleTween != nil {
		r.settleTween.Kill()
		r.settleTween = nil
	}
	r.releaseAll()
	r.state = StateIdle
	if p := r.pending; p != nil {
		r.pending = nil
		p.Resolve()
	}
}

func (r *Reel) checkout() (*Token, error) {
	for len(r.queue) > 0 {
		id := r.queue[0]
		r.queue = r.queue[1:]
		t, err := r.pool.Checkout(id)
		if err == nil {
			return t, nil
		}
		r.log.Warn("queued kind unavailable", zap.Int("symbol", id), zap.Error(err))
	}
	return r.pool.CheckoutRandom()
}

func (r *Reel) attachTop(t *Token) {
	r.strip.PushFront(t)
	r.AddChild(&t.Node)
}

// snap places every token at its resting offset
func (r *Reel) snap() {
	r.strip.Each(func(i int, t *Token) {
		t.SetY(float64(i)*r.height - r.height)
	})
}

func (r *Reel) release(t *Token) {
	if t == nil {
		return
	}
	r.killEffect(t)
	r.pool.Return(t)
}

func (r *Reel) releaseAll() {
	for t := r.strip.PopBack(); t != nil; t = r.strip.PopBack() {
		r.release(t)
	}
}

func (r *Reel) killEffect(t *Token) {
	if tw, ok := r.effects[t]; ok {
		tw.Kill()
		delete(r.effects, t)
	}
}

func (r *Reel) clearEffects() {
	for t, tw := range r.effects {
		tw.Kill()
		t.SetScale(1)
		delete(r.effects, t)
	}
}
