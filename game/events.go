package game

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/reelspin/reel"
)

// logListener writes the per-reel timeline to the debug log
type logListener struct {
	reel.NopListener
	log *zap.Logger
}

func newLogListener(log *zap.Logger) *logListener {
	return &logListener{log: log.Named("reels")}
}

func (l *logListener) ReelStopRequested(reelIndex int, at time.Duration) {
	l.log.Debug("stop requested", zap.Int("reel", reelIndex), zap.Duration("at", at))
}

func (l *logListener) ReelSettled(reelIndex int, at time.Duration) {
	l.log.Debug("settled", zap.Int("reel", reelIndex), zap.Duration("at", at))
}

func (l *logListener) WinnerShown(win reel.Win, reelIndex int) {
	l.log.Debug("winner shown",
		zap.String("symbol", win.Symbol),
		zap.Int("reel", reelIndex),
		zap.Int("row", win.Rows[reelIndex]),
	)
}
