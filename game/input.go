package game

import (
	"github.com/gdamore/tcell/v2"
)

// HandleEvent applies one terminal event, returns false when the player quits
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.handleKey(ev)

	case *tcell.EventMouse:
		x, y := ev.Position()
		down := ev.Buttons()&tcell.Button1 != 0
		// Fire on the press edge only, drag and release are ignored
		if down && !g.mouseDown {
			g.button.Click(x, y)
		}
		g.mouseDown = down

	case *tcell.EventResize:
		w, h := ev.Size()
		g.Resize(w, h)
	}
	return true
}

func (g *Game) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		g.button.Press()
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case ' ':
		g.button.Press()
	case 'p', 'P':
		g.TogglePause()
	case 'm', 'M':
		g.ToggleMute()
	case 'q', 'Q':
		return false
	}
	return true
}
