package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/reelspin/parameter"
	"github.com/lixenwraith/reelspin/render"
)

// OverlayRenderer draws the pause banner over everything else
type OverlayRenderer struct{}

// NewOverlayRenderer creates the overlay layer
func NewOverlayRenderer() *OverlayRenderer {
	return &OverlayRenderer{}
}

// Render shows the banner while paused
func (r *OverlayRenderer) Render(ctx render.RenderContext, scr tcell.Screen) {
	if !ctx.IsPaused {
		return
	}
	render.DrawCentered(scr, ctx.Layout.ReelTop+ctx.Layout.GridHeight()/2, render.StylePaused, parameter.TextPaused)
}
