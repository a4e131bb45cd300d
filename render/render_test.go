package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	scr := tcell.NewSimulationScreen("UTF-8")
	if err := scr.Init(); err != nil {
		t.Fatalf("Screen init failed: %v", err)
	}
	scr.SetSize(w, h)
	t.Cleanup(scr.Fini)
	return scr
}

func cellRune(scr tcell.Screen, x, y int) rune {
	r, _, _, _ := scr.GetContent(x, y)
	return r
}

type markRenderer struct {
	name    string
	order   *[]string
	visible bool
}

func (m *markRenderer) Render(_ RenderContext, scr tcell.Screen) {
	*m.order = append(*m.order, m.name)
	scr.SetContent(0, 0, rune(m.name[0]), nil, StyleDefault)
}

func (m *markRenderer) IsVisible() bool { return m.visible }

func TestOrchestratorRendersByPriority(t *testing.T) {
	scr := newSimScreen(t, 80, 30)
	o := NewRenderOrchestrator(scr)

	var order []string
	o.Register(&markRenderer{name: "ui", order: &order, visible: true}, PriorityUI)
	o.Register(&markRenderer{name: "sky", order: &order, visible: true}, PriorityBackground)
	o.Register(&markRenderer{name: "reels", order: &order, visible: true}, PriorityReels)
	o.Register(&markRenderer{name: "hidden", order: &order, visible: false}, PriorityClouds)
	o.Register(&markRenderer{name: "ui2", order: &order, visible: true}, PriorityUI)

	o.RenderFrame(NewRenderContext(80, 30, 3, 3))

	want := []string{"sky", "reels", "ui", "ui2"}
	if len(order) != len(want) {
		t.Fatalf("Expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Position %d: expected %s, got %s", i, want[i], order[i])
		}
	}
	if cellRune(scr, 0, 0) != 'u' {
		t.Errorf("Last renderer should win the cell, got %q", cellRune(scr, 0, 0))
	}
}

func TestOrchestratorTooSmall(t *testing.T) {
	scr := newSimScreen(t, 20, 10)
	o := NewRenderOrchestrator(scr)
	var order []string
	o.Register(&markRenderer{name: "sky", order: &order, visible: true}, PriorityBackground)

	o.RenderFrame(NewRenderContext(20, 10, 3, 3))
	if len(order) != 0 {
		t.Errorf("Layers should be skipped on a tiny terminal, ran %v", order)
	}
	if cellRune(scr, 1, 5) != 't' {
		t.Errorf("Expected size warning on the middle row, got %q", cellRune(scr, 1, 5))
	}
}

func TestLayoutCentresGrid(t *testing.T) {
	l := NewLayout(80, 30, 3, 3)
	if l.GridWidth() != 3*11+2 {
		t.Errorf("Expected grid width 35, got %d", l.GridWidth())
	}
	if l.ReelLeft != (80-35)/2 {
		t.Errorf("Expected left %d, got %d", (80-35)/2, l.ReelLeft)
	}
	if l.ReelX(2) != l.ReelLeft+24 {
		t.Errorf("Unexpected reel 2 column %d", l.ReelX(2))
	}
	if l.GridHeight() != 9 || l.WindowBottom() != l.ReelTop+9 {
		t.Errorf("Unexpected window height %d", l.GridHeight())
	}

	tests := []struct {
		y    float64
		want int
	}{
		{0, l.ReelTop},
		{105, l.ReelTop + 3},
		{-105, l.ReelTop - 3},
		{52.5, l.ReelTop + 2},
		{34, l.ReelTop + 1},
	}
	for _, tt := range tests {
		if got := l.SymbolRow(tt.y, 105); got != tt.want {
			t.Errorf("SymbolRow(%f): expected %d, got %d", tt.y, tt.want, got)
		}
	}

	btn := l.ButtonRect(4)
	if btn.W != 10 || btn.X != 35 || btn.Y != l.PanelRow()+2 {
		t.Errorf("Unexpected button rect %+v", btn)
	}
	if l.WorldToColumn(512) != 40 {
		t.Errorf("Expected world midpoint at column 40, got %d", l.WorldToColumn(512))
	}
}

func TestSymbolStyleEmphasis(t *testing.T) {
	_, _, plain := SymbolStyle(0, 1).Decompose()
	_, _, big := SymbolStyle(0, 1.3).Decompose()
	_, _, small := SymbolStyle(0, 0.5).Decompose()

	if plain&(tcell.AttrBold|tcell.AttrReverse|tcell.AttrDim) != 0 {
		t.Error("Unit scale should be plain")
	}
	if big&tcell.AttrReverse == 0 || big&tcell.AttrBold == 0 {
		t.Error("Enlarged symbol should be bold reverse")
	}
	if small&tcell.AttrDim == 0 {
		t.Error("Shrunk symbol should be dim")
	}
	fg1, _, _ := SymbolStyle(1, 1).Decompose()
	fg10, _, _ := SymbolStyle(10, 1).Decompose()
	if fg1 != fg10 {
		t.Error("Palette should wrap by kind id")
	}
}

func TestDrawTextClips(t *testing.T) {
	scr := newSimScreen(t, 10, 3)
	end := DrawText(scr, 7, 1, StyleDefault, "abcdef")
	if end != 13 {
		t.Errorf("Expected end column 13, got %d", end)
	}
	if cellRune(scr, 9, 1) != 'c' {
		t.Errorf("Expected clipped text, got %q", cellRune(scr, 9, 1))
	}
	DrawText(scr, 0, 5, StyleDefault, "off screen")

	DrawBox(scr, 0, 0, 4, 3, StyleDefault)
	if cellRune(scr, 0, 0) != '╭' || cellRune(scr, 3, 2) != '╯' || cellRune(scr, 1, 0) != '─' {
		t.Error("Box corners not drawn")
	}
}
