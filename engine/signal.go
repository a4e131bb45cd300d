package engine

// Signal is a one-shot completion flag on the game timeline
// Continuations registered with Then run synchronously on Resolve, in registration order
// Not safe for concurrent use, all access happens inside scheduler ticks
type Signal struct {
	done    bool
	waiters []func()
}

// NewSignal creates an unresolved signal
func NewSignal() *Signal {
	return &Signal{}
}

// ResolvedSignal returns a signal that is already complete
func ResolvedSignal() *Signal {
	return &Signal{done: true}
}

// Done reports whether the signal has resolved
func (s *Signal) Done() bool {
	return s.done
}

// Resolve completes the signal and runs pending continuations, repeated calls are ignored
func (s *Signal) Resolve() {
	if s.done {
		return
	}
	s.done = true

	waiters := s.waiters
	s.waiters = nil
	for _, fn := range waiters {
		fn()
	}
}

// Then registers fn to run on resolution, runs immediately if already resolved
func (s *Signal) Then(fn func()) {
	if fn == nil {
		return
	}
	if s.done {
		fn()
		return
	}
	s.waiters = append(s.waiters, fn)
}

// All returns a signal that resolves once every input has resolved
// An empty input set yields a resolved signal
func All(signals ...*Signal) *Signal {
	joined := NewSignal()
	pending := 0
	for _, s := range signals {
		if s != nil && !s.done {
			pending++
		}
	}
	if pending == 0 {
		joined.Resolve()
		return joined
	}

	for _, s := range signals {
		if s == nil || s.done {
			continue
		}
		s.Then(func() {
			pending--
			if pending == 0 {
				joined.Resolve()
			}
		})
	}
	return joined
}
