package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DrawText writes s starting at (x, y), clipped to the screen, returns the column after the text
func DrawText(scr tcell.Screen, x, y int, style tcell.Style, s string) int {
	w, h := scr.Size()
	if y < 0 || y >= h {
		return x + runewidth.StringWidth(s)
	}
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if x >= 0 && x+rw <= w {
			scr.SetContent(x, y, r, nil, style)
		}
		x += rw
	}
	return x
}

// DrawCentered writes s centred on row y
func DrawCentered(scr tcell.Screen, y int, style tcell.Style, s string) {
	w, _ := scr.Size()
	DrawText(scr, (w-runewidth.StringWidth(s))/2, y, style, s)
}

// FillRect paints a rectangle with r
func FillRect(scr tcell.Screen, x, y, w, h int, r rune, style tcell.Style) {
	sw, sh := scr.Size()
	for row := max(y, 0); row < min(y+h, sh); row++ {
		for col := max(x, 0); col < min(x+w, sw); col++ {
			scr.SetContent(col, row, r, nil, style)
		}
	}
}

// DrawBox outlines a rectangle with rounded corners
func DrawBox(scr tcell.Screen, x, y, w, h int, style tcell.Style) {
	if w < 2 || h < 2 {
		return
	}
	sw, sh := scr.Size()
	set := func(cx, cy int, r rune) {
		if cx >= 0 && cx < sw && cy >= 0 && cy < sh {
			scr.SetContent(cx, cy, r, nil, style)
		}
	}
	for col := x + 1; col < x+w-1; col++ {
		set(col, y, '─')
		set(col, y+h-1, '─')
	}
	for row := y + 1; row < y+h-1; row++ {
		set(x, row, '│')
		set(x+w-1, row, '│')
	}
	set(x, y, '╭')
	set(x+w-1, y, '╮')
	set(x, y+h-1, '╰')
	set(x+w-1, y+h-1, '╯')
}
