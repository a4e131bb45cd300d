package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/reelspin/parameter"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	screen    tcell.Screen
	renderers []rendererEntry
	regCount  int
}

// NewRenderOrchestrator creates an orchestrator drawing onto screen
func NewRenderOrchestrator(screen tcell.Screen) *RenderOrchestrator {
	return &RenderOrchestrator{
		screen:    screen,
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize resynchronises the terminal after a size change
func (o *RenderOrchestrator) Resize() {
	o.screen.Sync()
}

// RenderFrame executes the render pipeline: clear, render all, show
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	o.screen.Clear()

	if ctx.TooSmall() {
		DrawCentered(o.screen, ctx.ScreenHeight/2, StyleStatus, parameter.TextTooSmall)
		o.screen.Show()
		return
	}

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.screen)
	}

	o.screen.Show()
}
