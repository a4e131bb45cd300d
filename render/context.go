package render

import "github.com/lixenwraith/reelspin/parameter"

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	FrameNumber int64
	IsPaused    bool
	Muted       bool

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	Layout Layout
}

// NewRenderContext lays out the reel grid for the given terminal size
func NewRenderContext(width, height, reels, rows int) RenderContext {
	return RenderContext{
		ScreenWidth:  width,
		ScreenHeight: height,
		Layout:       NewLayout(width, height, reels, rows),
	}
}

// TooSmall reports whether the terminal cannot fit the game
func (c RenderContext) TooSmall() bool {
	return c.ScreenWidth < parameter.MinTerminalWidth || c.ScreenHeight < parameter.MinTerminalHeight
}
