package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// TickInterval is the fixed game timeline step; reel speed is expressed per tick
	TickInterval = 16 * time.Millisecond

	// MaxFrameDelta caps the timeline time a single stalled frame may inject
	MaxFrameDelta = 250 * time.Millisecond

	// InputQueueSize buffers terminal events between the poller and the main loop
	InputQueueSize = 256
)
