package render

import (
	"math"

	"github.com/lixenwraith/reelspin/parameter"
	"github.com/lixenwraith/reelspin/ui"
)

// Layout maps world units onto terminal cells
// Reels are centred horizontally, the view window starts at ReelTop
type Layout struct {
	Reels, Rows int

	ReelLeft       int // column of reel 0
	ReelTop        int // row of the first visible symbol
	ReelWidth      int // columns per reel
	ReelGap        int
	CellsPerSymbol int // rows per symbol

	ScreenWidth, ScreenHeight int
}

// NewLayout centres a reels x rows grid on a width x height terminal
func NewLayout(width, height, reels, rows int) Layout {
	l := Layout{
		Reels:          reels,
		Rows:           rows,
		ReelWidth:      parameter.ReelCellWidth,
		ReelGap:        parameter.ReelGap,
		CellsPerSymbol: parameter.CellsPerSymbol,
		ReelTop:        parameter.ReelTopMargin,
		ScreenWidth:    width,
		ScreenHeight:   height,
	}
	l.ReelLeft = max((width-l.GridWidth())/2, 0)
	return l
}

// GridWidth is the total width of all reels with gaps
func (l Layout) GridWidth() int {
	if l.Reels <= 0 {
		return 0
	}
	return l.Reels*l.ReelWidth + (l.Reels-1)*l.ReelGap
}

// GridHeight is the height of the view window
func (l Layout) GridHeight() int {
	return l.Rows * l.CellsPerSymbol
}

// ReelX returns the left column of reel i
func (l Layout) ReelX(i int) int {
	return l.ReelLeft + i*(l.ReelWidth+l.ReelGap)
}

// SymbolRow maps a world y offset inside a reel to a terminal row
func (l Layout) SymbolRow(worldY, symbolHeight float64) int {
	if symbolHeight <= 0 {
		return l.ReelTop
	}
	return l.ReelTop + int(math.Round(worldY/symbolHeight*float64(l.CellsPerSymbol)))
}

// WindowBottom returns the first row below the view window
func (l Layout) WindowBottom() int {
	return l.ReelTop + l.GridHeight()
}

// WorldToColumn maps a world x coordinate onto the full terminal width
func (l Layout) WorldToColumn(x float64) int {
	return int(math.Floor(x / parameter.WorldWidth * float64(l.ScreenWidth)))
}

// WorldToSkyRow maps a world y coordinate onto the rows above the reels
func (l Layout) WorldToSkyRow(y float64) int {
	sky := max(l.ReelTop-1, 1)
	return int(math.Floor(y / parameter.SkyHeight * float64(sky)))
}

// PanelRow is the row of the outcome announcement
func (l Layout) PanelRow() int {
	return l.WindowBottom() + 2
}

// ButtonRect places a framed button of the given label width under the panel
func (l Layout) ButtonRect(labelWidth int) ui.Rect {
	w := labelWidth + 6
	return ui.Rect{X: (l.ScreenWidth - w) / 2, Y: l.PanelRow() + 2, W: w, H: 3}
}
