package tween

import (
	"time"

	"github.com/lixenwraith/reelspin/engine"
)

// RepeatForever makes a tween loop until killed
const RepeatForever = -1

// Tween animates one scalar from a start to an end value over a fixed duration
type Tween struct {
	duration time.Duration
	elapsed  time.Duration
	from, to float64
	apply    func(float64)

	easing     Easing
	repeat     int
	yoyo       bool
	reversed   bool
	onComplete func()

	value    float64
	done     *engine.Signal
	killed   bool
	finished bool
}

// Option configures a tween
type Option func(*Tween)

// WithEasing sets the curve, default Linear
func WithEasing(e Easing) Option {
	return func(t *Tween) {
		if e != nil {
			t.easing = e
		}
	}
}

// WithRepeat sets extra cycles after the first, RepeatForever loops until killed
func WithRepeat(n int) Option {
	return func(t *Tween) {
		t.repeat = n
	}
}

// WithYoyo reverses direction on every repeat
func WithYoyo() Option {
	return func(t *Tween) {
		t.yoyo = true
	}
}

// WithOnComplete runs fn when the tween finishes, never after Kill
func WithOnComplete(fn func()) Option {
	return func(t *Tween) {
		t.onComplete = fn
	}
}

// FromTo builds an unstarted tween, apply receives every computed value
func FromTo(duration time.Duration, from, to float64, apply func(float64), opts ...Option) *Tween {
	t := &Tween{
		duration: duration,
		from:     from,
		to:       to,
		apply:    apply,
		easing:   Linear,
		value:    from,
		done:     engine.NewSignal(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Kill stops the tween where it is, onComplete and Done never fire afterwards
func (t *Tween) Kill() {
	t.killed = true
}

// Done resolves when the tween completes naturally
func (t *Tween) Done() *engine.Signal {
	return t.done
}

// Active reports whether the tween is still animating
func (t *Tween) Active() bool {
	return !t.killed && !t.finished
}

// Value returns the last applied value
func (t *Tween) Value() float64 {
	return t.value
}

func (t *Tween) set(progress float64) {
	if t.reversed {
		progress = 1 - progress
	}
	switch progress {
	case 0:
		t.value = t.from
	case 1:
		t.value = t.to
	default:
		t.value = t.from + (t.to-t.from)*t.easing(progress)
	}
	if t.apply != nil {
		t.apply(t.value)
	}
}

// update advances by dt and reports whether the tween has ended
func (t *Tween) update(dt time.Duration) bool {
	if t.killed {
		return true
	}
	if t.finished {
		return true
	}

	if t.duration <= 0 {
		t.set(1)
		t.finish()
		return true
	}

	t.elapsed += dt
	for t.elapsed >= t.duration {
		if t.repeat == 0 {
			t.set(1)
			t.finish()
			return true
		}
		if t.repeat > 0 {
			t.repeat--
		}
		t.elapsed -= t.duration
		if t.yoyo {
			t.reversed = !t.reversed
		}
	}

	t.set(float64(t.elapsed) / float64(t.duration))
	return false
}

func (t *Tween) finish() {
	t.finished = true
	if t.onComplete != nil {
		t.onComplete()
	}
	t.done.Resolve()
}
