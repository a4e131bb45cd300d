package parameter

// Terminal Layout
const (
	// CellsPerSymbol is the number of terminal rows one symbol occupies
	CellsPerSymbol = 3

	// ReelCellWidth is the number of terminal columns one reel occupies
	ReelCellWidth = 11

	// ReelGap is the number of columns between reels
	ReelGap = 1

	// ReelTopMargin is the row the reel window starts at
	ReelTopMargin = 6

	// StatusRows reserved at the bottom for the status line
	StatusRows = 1
)

// Text
const (
	ButtonLabel       = "SPIN"
	ButtonHint        = "space"
	TextTryAgain      = "TRY AGAIN"
	TextWinPrefix     = "WIN: "
	TextSpinning      = "GOOD LUCK"
	TextPaused        = " PAUSED "
	AudioStr          = "♫ "
	MutedStr          = "✕ "
	TextTooSmall      = "terminal too small"
	StatusHelp        = "space spin · p pause · m mute · q quit"
	MinTerminalWidth  = 40
	MinTerminalHeight = 24
)
