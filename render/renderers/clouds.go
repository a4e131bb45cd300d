package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/reelspin/background"
	"github.com/lixenwraith/reelspin/render"
)

// cloudArt is indexed by variant; the small set is used below half scale
var (
	cloudArt = [][]string{
		{"  .--.   ", ".(    ). ", "(___.__)_"},
		{"   _  _   ", " _( )( )_ ", "(_ _ _ _ _)"},
		{"  .-~~-.  ", " (      ) ", "(__.~~.__)"},
	}
	cloudArtSmall = [][]string{
		{" .-. ", "(___)"},
		{" _ _ ", "(_ _)"},
		{" .~. ", "(___)"},
	}
)

// CloudRenderer draws the drifting cloud field inside the sky band
type CloudRenderer struct {
	clouds *background.Manager
}

// NewCloudRenderer creates a renderer for the given field
func NewCloudRenderer(clouds *background.Manager) *CloudRenderer {
	return &CloudRenderer{clouds: clouds}
}

// Render draws each cloud centred on its world position, clipped to the sky
func (r *CloudRenderer) Render(ctx render.RenderContext, scr tcell.Screen) {
	sky := ctx.Layout.ReelTop - 1
	for _, c := range r.clouds.Clouds() {
		art, style := cloudArt, render.StyleCloud
		if c.Scale() < 0.5 {
			art, style = cloudArtSmall, render.StyleFarSky
		}
		lines := art[c.Variant%len(art)]

		col := ctx.Layout.WorldToColumn(c.WorldX())
		row := ctx.Layout.WorldToSkyRow(c.WorldY())
		for i, line := range lines {
			y := row + i
			if y < 0 || y >= sky {
				continue
			}
			x := col - len(line)/2
			for j, ch := range line {
				if ch == ' ' {
					continue
				}
				if cx := x + j; cx >= 0 && cx < ctx.ScreenWidth {
					scr.SetContent(cx, y, ch, nil, style)
				}
			}
		}
	}
}
