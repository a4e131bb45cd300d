package tween

import (
	"time"

	"github.com/lixenwraith/reelspin/engine"
)

// Manager advances every started tween once per scheduler tick
type Manager struct {
	active []*Tween
	cancel func()
}

// NewManager creates a manager driven by the scheduler's tick
func NewManager(scheduler *engine.Scheduler) *Manager {
	m := &Manager{active: make([]*Tween, 0, 16)}
	m.cancel = scheduler.OnTick(m.Update)
	return m
}

// Start applies the start value immediately and begins animating t
func (m *Manager) Start(t *Tween) *Tween {
	t.set(0)
	m.active = append(m.active, t)
	return t
}

// FromTo builds and starts a tween in one call
func (m *Manager) FromTo(duration time.Duration, from, to float64, apply func(float64), opts ...Option) *Tween {
	return m.Start(FromTo(duration, from, to, apply, opts...))
}

// Update advances all tweens by dt, tweens started from callbacks begin on the next update
func (m *Manager) Update(dt time.Duration) {
	count := len(m.active)
	for i := 0; i < count; i++ {
		m.active[i].update(dt)
	}

	live := m.active[:0]
	for _, t := range m.active {
		if t.Active() {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(m.active); i++ {
		m.active[i] = nil
	}
	m.active = live
}

// Len returns the number of tweens still animating
func (m *Manager) Len() int {
	n := 0
	for _, t := range m.active {
		if t.Active() {
			n++
		}
	}
	return n
}

// Close detaches the manager from its scheduler
func (m *Manager) Close() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}
