package renderers

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/reelspin/parameter"
	"github.com/lixenwraith/reelspin/render"
	"github.com/lixenwraith/reelspin/ui"
)

// PanelRenderer draws the outcome panel, balance, paytable and spin button
type PanelRenderer struct {
	win      *ui.WinPanel
	balance  *ui.BalancePanel
	paytable *ui.Paytable
	button   *ui.Button
}

// NewPanelRenderer creates the UI layer
func NewPanelRenderer(win *ui.WinPanel, balance *ui.BalancePanel, paytable *ui.Paytable, button *ui.Button) *PanelRenderer {
	return &PanelRenderer{win: win, balance: balance, paytable: paytable, button: button}
}

// Render draws all panels around the reel grid
func (r *PanelRenderer) Render(ctx render.RenderContext, scr tcell.Screen) {
	l := ctx.Layout

	if text := r.win.Text(); text != "" {
		style := render.StyleLose
		if text != parameter.TextTryAgain && text != parameter.TextSpinning {
			style = render.StyleWin
		}
		render.DrawCentered(scr, l.PanelRow(), style, text)
	}

	if r.balance != nil {
		text := r.balance.Text()
		render.DrawText(scr, ctx.ScreenWidth-runewidth.StringWidth(text)-1, l.ReelTop-1, render.StyleBalance, text)
	}

	// Paytable sits left of the reels when there is room
	if r.paytable != nil {
		lines := r.paytable.Lines()
		width := 0
		for _, line := range lines {
			width = max(width, runewidth.StringWidth(line))
		}
		if x := l.ReelLeft - width - 3; x >= 0 {
			for i, line := range lines {
				render.DrawText(scr, x, l.ReelTop+i, render.StyleStatus, line)
			}
		}
	}

	r.drawButton(scr)
}

func (r *PanelRenderer) drawButton(scr tcell.Screen) {
	b := r.button.Bounds
	style := render.StyleButton
	if !r.button.Enabled() {
		style = render.StyleDisable
	}
	render.FillRect(scr, b.X, b.Y, b.W, b.H, ' ', style)
	render.DrawBox(scr, b.X, b.Y, b.W, b.H, style)
	label := r.button.Label
	render.DrawText(scr, b.X+(b.W-runewidth.StringWidth(label))/2, b.Y+b.H/2, style, label)
	if r.button.Hint != "" {
		hint := "(" + r.button.Hint + ")"
		render.DrawText(scr, b.X+b.W+1, b.Y+b.H/2, render.StyleStatus, hint)
	}
}
