package audio

import "github.com/lixenwraith/reelspin/parameter"

// Config controls audio output
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0
	SampleRate   int
}

// DefaultConfig returns enabled audio at half volume
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   parameter.AudioSampleRate,
	}
}
