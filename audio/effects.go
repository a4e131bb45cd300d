package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/reelspin/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly, zero volume is silent since Log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateReelStopSound generates the low clunk of a reel locking in place
func CreateReelStopSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	thud := NewOscillator(parameter.ReelStopSoundFreq, parameter.ReelStopSoundDuration, WaveSquare, rate)
	click := NewOscillator(0, parameter.ReelStopSoundDuration, WaveNoise, rate)
	mixed := beep.Mix(newVolume(thud, 0.6), newVolume(click, 0.2))
	shaped := NewEnvelope(mixed, parameter.ReelStopSoundDuration, parameter.ReelStopSoundAttack, parameter.ReelStopSoundRelease, rate)

	return newVolume(shaped, cfg.MasterVolume)
}

// CreateWinSound generates a two-note chime for a winning spin
func CreateWinSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// B5 then E6
	n1 := NewOscillator(987.77, parameter.WinNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, parameter.WinNote1Duration, parameter.WinSoundAttack, parameter.WinNote1Release, rate)

	n2 := NewOscillator(1318.51, parameter.WinNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, parameter.WinNote2Duration, parameter.WinSoundAttack, parameter.WinNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cfg.MasterVolume*0.5)
}

// CreateClickSound generates the short tick of the spin button
func CreateClickSound(cfg Config) (beep.Streamer, error) {
	rate := beep.SampleRate(cfg.SampleRate)

	tone, err := generators.SineTone(rate, parameter.ClickSoundFreq)
	if err != nil {
		return nil, err
	}
	take := beep.Take(rate.N(parameter.ClickSoundDuration), tone)
	return newVolume(take, cfg.MasterVolume*0.4), nil
}

// SpinHumGenerator is the endless low-high-low sweep played while reels spin
type SpinHumGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
}

// NewSpinHumGenerator creates a hum generator cycling every SpinLoopCycle
func NewSpinHumGenerator(sr beep.SampleRate) *SpinHumGenerator {
	return &SpinHumGenerator{
		sr:      sr,
		samples: max(sr.N(parameter.SpinLoopCycle), 1),
	}
}

func (g *SpinHumGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Frequency sweep from 80Hz to 200Hz and back
		cyclePos := float64(g.pos%g.samples) / float64(g.samples)
		freq := 80 + 120*math.Sin(cyclePos*math.Pi)

		amplitude := 0.15 * (0.5 + 0.5*math.Sin(cyclePos*math.Pi*2))
		sample := amplitude * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SpinHumGenerator) Err() error { return nil }
