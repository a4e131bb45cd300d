package reel

import (
	"time"

	"github.com/lixenwraith/reelspin/parameter"
)

// Timing holds motion and sequencing durations for reels and the reel set
type Timing struct {
	SpinSpeed float64 // world units per tick at full speed
	SpinUp    time.Duration
	Settle    time.Duration

	StopStagger    time.Duration
	WinRevealPause time.Duration
	WinHoldPause   time.Duration

	Pulse         time.Duration
	PulseMinScale float64
	EmphasisScale float64
	EmphasisUp    time.Duration
	EmphasisDown  time.Duration
}

// DefaultTiming returns the tuned defaults
func DefaultTiming() Timing {
	return Timing{
		SpinSpeed:      parameter.SpinSpeed,
		SpinUp:         parameter.SpinUpDuration,
		Settle:         parameter.SettleDuration,
		StopStagger:    parameter.StopStagger,
		WinRevealPause: parameter.WinRevealPause,
		WinHoldPause:   parameter.WinHoldPause,
		Pulse:          parameter.PulseDuration,
		PulseMinScale:  parameter.PulseMinScale,
		EmphasisScale:  parameter.EmphasisScale,
		EmphasisUp:     parameter.EmphasisUpDuration,
		EmphasisDown:   parameter.EmphasisDownDuration,
	}
}
