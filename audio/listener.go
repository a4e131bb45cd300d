package audio

import (
	"time"

	"github.com/lixenwraith/reelspin/reel"
)

// Player is the sound surface the reel listener drives
type Player interface {
	StartSpinLoop()
	StopSpinLoop()
	PlayReelStop()
	PlayWin()
}

var _ Player = (*SoundManager)(nil)

// Listener maps reel set events onto sounds
type Listener struct {
	reel.NopListener
	player Player
}

// NewListener creates a listener playing through p
func NewListener(p Player) *Listener {
	return &Listener{player: p}
}

func (l *Listener) SpinStarted(string) {
	l.player.StartSpinLoop()
}

func (l *Listener) ReelSettled(int, time.Duration) {
	l.player.PlayReelStop()
}

func (l *Listener) SpinResolved(_ string, _ [][]string, wins []reel.Win) {
	l.player.StopSpinLoop()
	if len(wins) > 0 {
		l.player.PlayWin()
	}
}
