package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/reelspin/parameter"
)

// SoundManager owns the speaker and plays the game's sounds through one mixer
// Every method is a no-op until Initialize succeeds, so the game runs silently without a device
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	log         *zap.Logger
	spinLoop    *beep.Ctrl
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates an uninitialised sound manager
func NewSoundManager(cfg Config, log *zap.Logger) *SoundManager {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = parameter.AudioSampleRate
	}
	return &SoundManager{
		cfg:   cfg,
		log:   log,
		mixer: &beep.Mixer{},
		muted: !cfg.Enabled,
	}
}

// Initialize opens the speaker, returns the device error so the caller can continue without sound
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.spinLoop != nil {
		sm.spinLoop.Paused = true
		sm.spinLoop = nil
	}
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker Close, clearing the mixer leaves the device idle
	sm.initialized = false
}

// Muted reports whether output is suppressed
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// ToggleMute flips mute and returns the new state, muting silences sounds already playing
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.muted && sm.initialized {
		speaker.Lock()
		if sm.spinLoop != nil {
			sm.spinLoop.Paused = true
			sm.spinLoop = nil
		}
		sm.mixer.Clear()
		speaker.Unlock()
	}
	sm.log.Debug("audio mute toggled", zap.Bool("muted", sm.muted))
	return sm.muted
}

// StartSpinLoop starts the spinning hum, repeated calls keep the running loop
func (sm *SoundManager) StartSpinLoop() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.playable() || sm.spinLoop != nil {
		return
	}

	hum := beep.Loop(-1, NewSpinHumGenerator(beep.SampleRate(sm.cfg.SampleRate)))
	ctrl := &beep.Ctrl{Streamer: newVolume(hum, sm.cfg.MasterVolume), Paused: false}
	sm.spinLoop = ctrl
	sm.add(ctrl)
}

// StopSpinLoop silences the spinning hum
func (sm *SoundManager) StopSpinLoop() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.spinLoop == nil {
		return
	}
	speaker.Lock()
	sm.spinLoop.Paused = true
	speaker.Unlock()
	sm.spinLoop = nil
}

// PlayReelStop plays the clunk of one reel settling
func (sm *SoundManager) PlayReelStop() {
	sm.play(CreateReelStopSound(sm.cfg))
}

// PlayWin plays the win chime
func (sm *SoundManager) PlayWin() {
	sm.play(CreateWinSound(sm.cfg))
}

// PlayClick plays the button tick
func (sm *SoundManager) PlayClick() {
	s, err := CreateClickSound(sm.cfg)
	if err != nil {
		sm.log.Warn("click sound unavailable", zap.Error(err))
		return
	}
	sm.play(s)
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.playable() {
		return
	}
	sm.add(s)
}

// playable requires sm.mu held
func (sm *SoundManager) playable() bool {
	return sm.initialized && !sm.muted
}

// add requires sm.mu held
func (sm *SoundManager) add(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
