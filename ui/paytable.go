package ui

import (
	"fmt"

	"github.com/lixenwraith/reelspin/parameter"
	"github.com/lixenwraith/reelspin/reel"
)

// Paytable lists every symbol kind with its display value
type Paytable struct {
	kinds []reel.Kind
	width int
}

// NewPaytable builds a paytable in kind registration order
func NewPaytable(kinds []reel.Kind) *Paytable {
	width := 0
	for _, k := range kinds {
		width = max(width, len([]rune(k.Name)))
	}
	return &Paytable{kinds: kinds, width: width}
}

// Lines returns one padded "name value" row per kind
func (p *Paytable) Lines() []string {
	lines := make([]string, len(p.kinds))
	for i, k := range p.kinds {
		lines[i] = fmt.Sprintf("%-*s %s", p.width, k.Name, FormatMoney(parameter.CurrencySymbol, k.Value))
	}
	return lines
}

// Value returns the display value of the named kind
func (p *Paytable) Value(name string) (reel.Kind, bool) {
	for _, k := range p.kinds {
		if k.Name == name {
			return k, true
		}
	}
	return reel.Kind{}, false
}
