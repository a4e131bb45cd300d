package renderers

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/reelspin/reel"
	"github.com/lixenwraith/reelspin/render"
)

// ReelRenderer draws the reel frame and every token inside the view window
type ReelRenderer struct {
	set *reel.ReelSet
}

// NewReelRenderer creates a renderer for the given reel set
func NewReelRenderer(set *reel.ReelSet) *ReelRenderer {
	return &ReelRenderer{set: set}
}

// Render draws tokens masked to the view window, then the frame around it
func (r *ReelRenderer) Render(ctx render.RenderContext, scr tcell.Screen) {
	l := ctx.Layout
	top, bottom := l.ReelTop, l.WindowBottom()

	for i, rl := range r.set.Reels() {
		x := l.ReelX(i)
		h := rl.SymbolHeight()
		offset := rl.Y()

		rl.EachToken(func(_ int, tok *reel.Token) {
			row := l.SymbolRow(offset+tok.Y(), h)
			lines := symbolLines(tok.KindName(), l.ReelWidth, l.CellsPerSymbol)
			style := render.SymbolStyle(tok.KindID(), tok.Scale())
			for k, line := range lines {
				y := row + k
				if y < top || y >= bottom {
					continue
				}
				render.DrawText(scr, x, y, style, line)
			}
		})
	}

	render.DrawBox(scr, l.ReelLeft-1, top-1, l.GridWidth()+2, l.GridHeight()+2, render.StyleFrame)
	for i := 1; i < l.Reels; i++ {
		sep := l.ReelX(i) - 1
		for y := top; y < bottom; y++ {
			scr.SetContent(sep, y, '┊', nil, render.StyleFrame)
		}
	}
}

// symbolLines builds a boxed label of the given size with the name on the middle row
func symbolLines(name string, width, height int) []string {
	if width < 3 || height < 1 {
		return nil
	}
	inner := width - 2
	label := strings.ToUpper(name)
	if runewidth.StringWidth(label) > inner {
		label = runewidth.Truncate(label, inner, "")
	}
	pad := inner - runewidth.StringWidth(label)
	middle := "│" + strings.Repeat(" ", pad/2) + label + strings.Repeat(" ", pad-pad/2) + "│"

	if height < 3 {
		return []string{middle}
	}
	lines := make([]string, height)
	lines[0] = "┌" + strings.Repeat("─", inner) + "┐"
	lines[height-1] = "└" + strings.Repeat("─", inner) + "┘"
	blank := "│" + strings.Repeat(" ", inner) + "│"
	for k := 1; k < height-1; k++ {
		lines[k] = blank
	}
	lines[height/2] = middle
	return lines
}
