package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/reelspin/parameter"
	"github.com/lixenwraith/reelspin/render"
)

// StatusBarRenderer draws the key help and audio state on the last row
type StatusBarRenderer struct{}

// NewStatusBarRenderer creates the status bar layer
func NewStatusBarRenderer() *StatusBarRenderer {
	return &StatusBarRenderer{}
}

// Render writes the status line
func (r *StatusBarRenderer) Render(ctx render.RenderContext, scr tcell.Screen) {
	y := ctx.ScreenHeight - parameter.StatusRows
	icon := parameter.AudioStr
	if ctx.Muted {
		icon = parameter.MutedStr
	}
	x := render.DrawText(scr, 1, y, render.StyleStatus, icon)
	render.DrawText(scr, x+1, y, render.StyleStatus, parameter.StatusHelp)
}
