package reel

import "time"

// Listener observes the reel set lifecycle
// Callbacks run on the game timeline and must not block
type Listener interface {
	SpinStarted(spinID string)
	ReelStopRequested(reel int, at time.Duration)
	ReelSettled(reel int, at time.Duration)
	SpinResolved(spinID string, windows [][]string, wins []Win)
	WinnerShown(win Win, reel int)
	SpinFinished(spinID string)
}

// NopListener ignores every event, embed it to implement a subset
type NopListener struct{}

func (NopListener) SpinStarted(string)                     {}
func (NopListener) ReelStopRequested(int, time.Duration)   {}
func (NopListener) ReelSettled(int, time.Duration)         {}
func (NopListener) SpinResolved(string, [][]string, []Win) {}
func (NopListener) WinnerShown(Win, int)                   {}
func (NopListener) SpinFinished(string)                    {}

// Listeners fans every event out in slice order
type Listeners []Listener

func (ls Listeners) SpinStarted(spinID string) {
	for _, l := range ls {
		l.SpinStarted(spinID)
	}
}

func (ls Listeners) ReelStopRequested(reel int, at time.Duration) {
	for _, l := range ls {
		l.ReelStopRequested(reel, at)
	}
}

func (ls Listeners) ReelSettled(reel int, at time.Duration) {
	for _, l := range ls {
		l.ReelSettled(reel, at)
	}
}

func (ls Listeners) SpinResolved(spinID string, windows [][]string, wins []Win) {
	for _, l := range ls {
		l.SpinResolved(spinID, windows, wins)
	}
}

func (ls Listeners) WinnerShown(win Win, reel int) {
	for _, l := range ls {
		l.WinnerShown(win, reel)
	}
}

func (ls Listeners) SpinFinished(spinID string) {
	for _, l := range ls {
		l.SpinFinished(spinID)
	}
}
