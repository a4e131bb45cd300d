// Package background drifts decorative clouds across the sky band
package background

import (
	"fmt"

	"github.com/lixenwraith/reelspin/scene"
)

// Cloud is one drifting sprite, Variant selects its art
type Cloud struct {
	scene.Node
	ID      int
	Variant int
	Speed   float64
	moving  bool
}

func newCloud(id, variant int, x, y, speed, scale float64) *Cloud {
	c := &Cloud{
		Node:    *scene.NewNode(fmt.Sprintf("cloud-%d", id)),
		ID:      id,
		Variant: variant,
		Speed:   speed,
		moving:  true,
	}
	c.SetPosition(x, y)
	c.SetScale(scale)
	return c
}

// Moving reports whether the cloud drifts on tick
func (c *Cloud) Moving() bool { return c.moving }

// SetMoving toggles drifting
func (c *Cloud) SetMoving(v bool) { c.moving = v }

// Update drifts the cloud right, scaled clouds move proportionally
// A cloud fully past the right edge re-enters fully off the left edge
func (c *Cloud) Update(worldWidth, bleed, width float64) {
	if !c.moving {
		return
	}
	c.SetX(c.X() + c.Speed*c.Scale())
	if c.X() > worldWidth+bleed+width/2 {
		c.SetX(-bleed - width/2)
	}
}
