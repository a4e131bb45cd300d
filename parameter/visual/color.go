package visual

import "github.com/gdamore/tcell/v2"

// tcell.Color definitions for the machine; tcell maps them to the nearest palette entry on 256-color terminals
var (
	// Sky band and clouds
	RgbSkyTop    = tcell.NewRGBColor(18, 32, 86)
	RgbCloud     = tcell.NewRGBColor(200, 210, 230)
	RgbCloudDark = tcell.NewRGBColor(140, 150, 175)

	// Reel frame and panels
	RgbFrame     = tcell.NewRGBColor(212, 175, 55) // Gold
	RgbWin       = tcell.NewRGBColor(255, 220, 0)
	RgbLose      = tcell.NewRGBColor(150, 150, 150)
	RgbBalance   = tcell.NewRGBColor(80, 220, 80)
	RgbButton    = tcell.NewRGBColor(150, 20, 30)
	RgbButtonOff = tcell.NewRGBColor(70, 70, 70)
	RgbStatus    = tcell.NewRGBColor(130, 130, 130)
	RgbPaused    = tcell.NewRGBColor(255, 200, 0)
	RgbText      = tcell.NewRGBColor(255, 255, 255)
	RgbTextDark  = tcell.NewRGBColor(0, 0, 0)
)

// SymbolPalette colours symbol kinds by id, wrapping for larger symbol sets
// High symbols first, then the card ranks
var SymbolPalette = [9]tcell.Color{
	tcell.NewRGBColor(255, 60, 60),   // Red
	tcell.NewRGBColor(255, 80, 200),  // Pink
	tcell.NewRGBColor(0, 220, 220),   // Cyan
	tcell.NewRGBColor(255, 230, 60),  // Yellow
	tcell.NewRGBColor(60, 230, 60),   // Green
	tcell.NewRGBColor(255, 150, 30),  // Orange
	tcell.NewRGBColor(60, 140, 255),  // Blue
	tcell.NewRGBColor(190, 120, 255), // Violet
	tcell.NewRGBColor(200, 200, 200), // Silver
}
