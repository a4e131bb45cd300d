package render

import "github.com/gdamore/tcell/v2"

// SystemRenderer draws one layer of the frame
type SystemRenderer interface {
	Render(ctx RenderContext, scr tcell.Screen)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
