// Package renderers holds the per-layer drawing systems registered with the orchestrator
package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/reelspin/render"
)

// SkyRenderer paints the sky band above the reels
type SkyRenderer struct{}

// NewSkyRenderer creates the background layer
func NewSkyRenderer() *SkyRenderer {
	return &SkyRenderer{}
}

// Render fills every row above the reel frame
func (r *SkyRenderer) Render(ctx render.RenderContext, scr tcell.Screen) {
	sky := ctx.Layout.ReelTop - 1
	render.FillRect(scr, 0, 0, ctx.ScreenWidth, sky, ' ', render.StyleSky)
}
