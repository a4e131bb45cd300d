package reel

import "go.uber.org/zap"

type options struct {
	log      *zap.Logger
	timing   Timing
	listener Listener
	index    int
}

func defaultOptions() options {
	return options{
		log:      zap.NewNop(),
		timing:   DefaultTiming(),
		listener: NopListener{},
	}
}

// Option configures a Reel or a ReelSet
type Option func(*options)

// WithLogger sets the logger, nil keeps the no-op logger
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithTiming overrides motion and sequencing durations
func WithTiming(t Timing) Option {
	return func(o *options) {
		o.timing = t
	}
}

// WithListener receives reel set lifecycle events, ignored by a single Reel
func WithListener(l Listener) Option {
	return func(o *options) {
		if l != nil {
			o.listener = l
		}
	}
}

// WithIndex tags a reel with its position in the set, used for logging
func WithIndex(i int) Option {
	return func(o *options) {
		o.index = i
	}
}
