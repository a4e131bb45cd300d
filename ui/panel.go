// Package ui holds the text panels and the spin button drawn over the reels
// Components are plain state, the render package lays them out
package ui

import (
	"strings"

	"github.com/lixenwraith/reelspin/parameter"
	"github.com/lixenwraith/reelspin/reel"
)

// Panel is a single line of centred announcement text
type Panel struct {
	text string
}

// Text returns the current text, empty when cleared
func (p *Panel) Text() string { return p.text }

// SetText replaces the text
func (p *Panel) SetText(s string) { p.text = s }

// Clear removes the text
func (p *Panel) Clear() { p.text = "" }

// WinPanel announces the outcome of each spin
// It listens to the reel set: cleared on start, filled once matches are known
type WinPanel struct {
	reel.NopListener
	Panel
}

// NewWinPanel creates an empty win panel
func NewWinPanel() *WinPanel {
	return &WinPanel{}
}

func (w *WinPanel) SpinStarted(string) {
	w.SetText(parameter.TextSpinning)
}

func (w *WinPanel) SpinResolved(_ string, _ [][]string, wins []reel.Win) {
	w.SetText(Outcome(wins))
}

// Outcome formats the winning kinds, or the consolation text when there are none
func Outcome(wins []reel.Win) string {
	if len(wins) == 0 {
		return parameter.TextTryAgain
	}
	names := make([]string, len(wins))
	for i, win := range wins {
		names[i] = strings.ToUpper(win.Symbol)
	}
	return parameter.TextWinPrefix + strings.Join(names, ", ")
}
