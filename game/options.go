package game

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/reelspin/audio"
	"github.com/lixenwraith/reelspin/engine"
	"github.com/lixenwraith/reelspin/reel"
)

// Sound is the audio surface the game drives directly and through the reel listener
type Sound interface {
	audio.Player
	PlayClick()
	ToggleMute() bool
	Muted() bool
}

var _ Sound = (*audio.SoundManager)(nil)

type options struct {
	log       *zap.Logger
	clock     engine.TimeProvider
	sound     Sound
	listeners []reel.Listener
}

// Option configures a Game
type Option func(*options)

// WithLogger sets the game logger, nil keeps the no-op logger
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithClock replaces the wall clock feeding the frame driver
func WithClock(clock engine.TimeProvider) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithSound routes spin events to s
func WithSound(s Sound) Option {
	return func(o *options) {
		if s != nil {
			o.sound = s
		}
	}
}

// WithListener adds an observer of the reel set events
func WithListener(l reel.Listener) Option {
	return func(o *options) {
		if l != nil {
			o.listeners = append(o.listeners, l)
		}
	}
}

// silence is used when no sound device is configured
type silence struct{ muted bool }

func (*silence) StartSpinLoop()     {}
func (*silence) StopSpinLoop()      {}
func (*silence) PlayReelStop()      {}
func (*silence) PlayWin()           {}
func (*silence) PlayClick()         {}
func (s *silence) Muted() bool      { return s.muted }
func (s *silence) ToggleMute() bool { s.muted = !s.muted; return s.muted }
