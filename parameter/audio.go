package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Reel Stop Sound
const (
	ReelStopSoundDuration = 90 * time.Millisecond
	ReelStopSoundAttack   = 2 * time.Millisecond
	ReelStopSoundRelease  = 60 * time.Millisecond
	ReelStopSoundFreq     = 140.0
)

// Win Chime
const (
	WinNote1Duration = 100 * time.Millisecond
	WinNote2Duration = 400 * time.Millisecond
	WinSoundAttack   = 5 * time.Millisecond
	WinNote1Release  = 50 * time.Millisecond
	WinNote2Release  = 350 * time.Millisecond
)

// Button Click
const (
	ClickSoundDuration = 40 * time.Millisecond
	ClickSoundFreq     = 880.0
)

// Spin Loop
const (
	// SpinLoopCycle is one low-high-low sweep of the spinning hum
	SpinLoopCycle = 2 * time.Second
)
