package engine

// SessionState gates whether a new spin may be requested
type SessionState int

const (
	StateStopped SessionState = iota
	StateSpinning
)

// String returns the state name for logs and panels
func (s SessionState) String() string {
	switch s {
	case StateStopped:
		return "STOPPED"
	case StateSpinning:
		return "SPINNING"
	default:
		return "UNKNOWN"
	}
}

// SessionHolder is the read/write contract the reel coordinator uses to gate re-entrant spins
type SessionHolder interface {
	State() SessionState
	SetState(SessionState)
}

// Session is the game-owned session state with an optional change hook
type Session struct {
	state    SessionState
	onChange func(from, to SessionState)
}

// NewSession creates a session in the stopped state
func NewSession() *Session {
	return &Session{state: StateStopped}
}

// State returns the current state
func (s *Session) State() SessionState {
	return s.state
}

// SetState updates the state and fires the change hook on actual transitions
func (s *Session) SetState(next SessionState) {
	if s.state == next {
		return
	}
	prev := s.state
	s.state = next
	if s.onChange != nil {
		s.onChange(prev, next)
	}
}

// OnChange installs the transition hook, replacing any previous one
func (s *Session) OnChange(fn func(from, to SessionState)) {
	s.onChange = fn
}
