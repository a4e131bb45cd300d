package parameter

import "time"

// Reel Layout
const (
	// ReelCount is the number of reels in the set
	ReelCount = 3

	// SymbolsInView is the number of rows visible on every reel
	SymbolsInView = 3

	// SymbolHeight is the vertical spacing between symbols in world units
	SymbolHeight = 105.0

	// ReelWidth is the horizontal spacing between reels in world units
	ReelWidth = 125.0
)

// Reel Motion
const (
	// SpinSpeed is the full spin speed in world units per tick
	SpinSpeed = 10.0

	// SpinUpDuration ramps speed from zero to SpinSpeed (back-ease-in)
	SpinUpDuration = 1000 * time.Millisecond

	// SettleDuration is the back-ease-out snap into the resting position
	SettleDuration = 750 * time.Millisecond
)

// Reel Set Sequencing
const (
	// SpinDwell is how long reels spin before the game requests a stop
	SpinDwell = 2000 * time.Millisecond

	// StopStagger separates consecutive reel stop requests
	StopStagger = 250 * time.Millisecond

	// WinRevealPause separates winner reveals across reels
	WinRevealPause = 300 * time.Millisecond

	// WinHoldPause keeps winners pulsing after the last reveal
	WinHoldPause = 1500 * time.Millisecond
)

// Winner Emphasis
const (
	// PulseDuration is one half-cycle of the winner pulse
	PulseDuration = 500 * time.Millisecond

	// PulseMinScale is the pulse trough; the crest is unit scale
	PulseMinScale = 0.5

	// EmphasisScale is the peak of the post-pulse pop
	EmphasisScale = 1.3

	// EmphasisUpDuration grows the symbol to EmphasisScale
	EmphasisUpDuration = 500 * time.Millisecond

	// EmphasisDownDuration returns the symbol to unit scale
	EmphasisDownDuration = 250 * time.Millisecond
)
