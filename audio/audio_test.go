package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/reelspin/parameter"
	"github.com/lixenwraith/reelspin/reel"
)

// drain counts samples and tracks the peak of a finite stream
func drain(t *testing.T, s beep.Streamer, limit int) (count int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for count < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = max(peak, abs(buf[i][0]), abs(buf[i][1]))
		}
		count += n
		if !ok {
			return count, peak
		}
	}
	return count, peak
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(DefaultConfig(), nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.StartSpinLoop()
	sm.StopSpinLoop()
	sm.PlayReelStop()
	sm.PlayWin()
	sm.PlayClick()
	sm.Cleanup()
}

// TestSoundManagerInitialization tolerates missing audio devices
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(DefaultConfig(), nil)

	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should be a no-op, got %v", err)
	}
	sm.StartSpinLoop()
	sm.PlayReelStop()
	sm.StopSpinLoop()
	sm.Cleanup()
}

func TestSoundManagerMute(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg, nil)
	if !sm.Muted() {
		t.Error("Disabled audio should start muted")
	}
	if sm.ToggleMute() || sm.Muted() {
		t.Error("Toggle should unmute")
	}
	if !sm.ToggleMute() {
		t.Error("Toggle should mute again")
	}
}

func TestReelStopSoundLength(t *testing.T) {
	cfg := DefaultConfig()
	rate := beep.SampleRate(cfg.SampleRate)
	want := rate.N(parameter.ReelStopSoundDuration)

	n, peak := drain(t, CreateReelStopSound(cfg), want*4)
	if n != want {
		t.Errorf("Expected %d samples, got %d", want, n)
	}
	if peak == 0 || peak > 1 {
		t.Errorf("Expected audible, unclipped output, peak=%f", peak)
	}
}

func TestWinSoundPlaysBothNotes(t *testing.T) {
	cfg := DefaultConfig()
	rate := beep.SampleRate(cfg.SampleRate)
	want := rate.N(parameter.WinNote1Duration) + rate.N(parameter.WinNote2Duration)

	if n, _ := drain(t, CreateWinSound(cfg), want*4); n != want {
		t.Errorf("Expected %d samples, got %d", want, n)
	}
}

func TestClickSound(t *testing.T) {
	cfg := DefaultConfig()
	s, err := CreateClickSound(cfg)
	if err != nil {
		t.Fatalf("Click sound failed: %v", err)
	}
	want := beep.SampleRate(cfg.SampleRate).N(parameter.ClickSoundDuration)
	if n, _ := drain(t, s, want*4); n != want {
		t.Errorf("Expected %d samples, got %d", want, n)
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MasterVolume = 0
	if _, peak := drain(t, CreateReelStopSound(cfg), 1<<16); peak != 0 {
		t.Errorf("Expected silence, peak=%f", peak)
	}
}

func TestEnvelopeShapesAttack(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}
	if buf[0][0] != 0 || buf[5][0] != 0.5 || buf[50][0] != 1 || buf[95][0] != 0.5 {
		t.Errorf("Unexpected envelope %v %v %v %v", buf[0][0], buf[5][0], buf[50][0], buf[95][0])
	}
}

func TestSpinHumIsEndless(t *testing.T) {
	g := NewSpinHumGenerator(beep.SampleRate(8000))
	n, peak := drain(t, g, 40000)
	if n < 40000 {
		t.Errorf("Hum should never end, stopped after %d", n)
	}
	if peak == 0 || peak > 0.15 {
		t.Errorf("Unexpected hum peak %f", peak)
	}
}

type fakePlayer struct {
	calls []string
}

func (f *fakePlayer) StartSpinLoop() { f.calls = append(f.calls, "start") }
func (f *fakePlayer) StopSpinLoop()  { f.calls = append(f.calls, "stop") }
func (f *fakePlayer) PlayReelStop()  { f.calls = append(f.calls, "clunk") }
func (f *fakePlayer) PlayWin()       { f.calls = append(f.calls, "win") }

func TestListenerMapsSpinEvents(t *testing.T) {
	p := &fakePlayer{}
	l := NewListener(p)

	l.SpinStarted("a")
	l.ReelSettled(0, 0)
	l.ReelSettled(1, 0)
	l.SpinResolved("a", nil, nil)
	l.SpinStarted("b")
	l.SpinResolved("b", nil, []reel.Win{{Symbol: "ace"}})

	want := []string{"start", "clunk", "clunk", "stop", "start", "stop", "win"}
	if len(p.calls) != len(want) {
		t.Fatalf("Expected %v, got %v", want, p.calls)
	}
	for i := range want {
		if p.calls[i] != want[i] {
			t.Errorf("Call %d: expected %s, got %s", i, want[i], p.calls[i])
		}
	}
}
