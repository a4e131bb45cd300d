package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/reelspin/core"
	"github.com/lixenwraith/reelspin/parameter"
	"github.com/lixenwraith/reelspin/render"
	"github.com/lixenwraith/reelspin/render/renderers"
)

// RegisterRenderers adds every drawing layer to the orchestrator
func (g *Game) RegisterRenderers(o *render.RenderOrchestrator) {
	type rendererDef struct {
		renderer render.SystemRenderer
		priority render.RenderPriority
	}

	rendererList := []rendererDef{
		{renderers.NewSkyRenderer(), render.PriorityBackground},
		{renderers.NewCloudRenderer(g.clouds), render.PriorityClouds},
		{renderers.NewReelRenderer(g.reels), render.PriorityReels},
		{renderers.NewPanelRenderer(g.win, g.balance, g.paytable, g.button), render.PriorityUI},
		{renderers.NewStatusBarRenderer(), render.PriorityUI},
		{renderers.NewOverlayRenderer(), render.PriorityOverlay},
	}
	for _, def := range rendererList {
		o.Register(def.renderer, def.priority)
	}
}

// Run drives input, timeline and drawing on screen until ctx ends or the player quits
// The screen must be initialised, the caller owns Fini
func (g *Game) Run(ctx context.Context, screen tcell.Screen) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	screen.EnableMouse()
	g.Resize(screen.Size())

	orchestrator := render.NewRenderOrchestrator(screen)
	g.RegisterRenderers(orchestrator)

	events := make(chan tcell.Event, parameter.InputQueueSize)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if !g.HandleEvent(ev) {
				g.log.Info("player quit")
				return nil
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				orchestrator.Resize()
			}

		case <-frameTicker.C:
			orchestrator.RenderFrame(g.Frame())
		}
	}
}
