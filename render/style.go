package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/reelspin/parameter/visual"
)

// Frame styles
var (
	StyleDefault = tcell.StyleDefault
	StyleSky     = tcell.StyleDefault.Background(visual.RgbSkyTop).Foreground(visual.RgbText)
	StyleCloud   = tcell.StyleDefault.Background(visual.RgbSkyTop).Foreground(visual.RgbCloud)
	StyleFarSky  = tcell.StyleDefault.Background(visual.RgbSkyTop).Foreground(visual.RgbCloudDark)
	StyleFrame   = tcell.StyleDefault.Foreground(visual.RgbFrame)
	StyleWin     = tcell.StyleDefault.Foreground(visual.RgbWin).Bold(true)
	StyleLose    = tcell.StyleDefault.Foreground(visual.RgbLose)
	StyleBalance = tcell.StyleDefault.Foreground(visual.RgbBalance).Bold(true)
	StyleButton  = tcell.StyleDefault.Background(visual.RgbButton).Foreground(visual.RgbText).Bold(true)
	StyleDisable = tcell.StyleDefault.Background(visual.RgbButtonOff).Foreground(visual.RgbLose)
	StyleStatus  = tcell.StyleDefault.Foreground(visual.RgbStatus)
	StylePaused  = tcell.StyleDefault.Background(visual.RgbPaused).Foreground(visual.RgbTextDark).Bold(true)
)

// Emphasis thresholds on token scale
const (
	ScaleEmphasised = 1.05
	ScaleDimmed     = 0.8
)

// SymbolStyle colours a symbol by kind and emphasises it by scale
func SymbolStyle(kindID int, scale float64) tcell.Style {
	if kindID < 0 {
		kindID = -kindID
	}
	style := tcell.StyleDefault.Foreground(visual.SymbolPalette[kindID%len(visual.SymbolPalette)])
	switch {
	case scale > ScaleEmphasised:
		style = style.Bold(true).Reverse(true)
	case scale < ScaleDimmed:
		style = style.Dim(true)
	}
	return style
}
