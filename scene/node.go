// Package scene is the minimal drawable hierarchy shared by reels, clouds and UI
// Renderers read positions and scale, game logic writes them
package scene

// Positionable is the capability every visual entity exposes
type Positionable interface {
	X() float64
	SetX(float64)
	Y() float64
	SetY(float64)
	Scale() float64
	SetScale(float64)
}

// Node is a positioned, scaled element with parent/child attachment
// Zero value is not ready for use, construct with NewNode
type Node struct {
	name     string
	x, y     float64
	scale    float64
	hidden   bool
	parent   *Node
	children []*Node
}

var _ Positionable = (*Node)(nil)

// NewNode creates a visible node at the origin with unit scale
func NewNode(name string) *Node {
	return &Node{name: name, scale: 1}
}

func (n *Node) Name() string             { return n.name }
func (n *Node) X() float64               { return n.x }
func (n *Node) SetX(x float64)           { n.x = x }
func (n *Node) Y() float64               { return n.y }
func (n *Node) SetY(y float64)           { n.y = y }
func (n *Node) Scale() float64           { return n.scale }
func (n *Node) SetScale(s float64)       { n.scale = s }
func (n *Node) Visible() bool            { return !n.hidden }
func (n *Node) SetVisible(v bool)        { n.hidden = !v }
func (n *Node) Parent() *Node            { return n.parent }
func (n *Node) Children() []*Node        { return n.children }
func (n *Node) SetPosition(x, y float64) { n.x, n.y = x, y }

// AddChild attaches c as the last child, detaching it from any previous parent
func (n *Node) AddChild(c *Node) {
	if c == nil || c == n {
		return
	}
	c.Detach()
	c.parent = n
	n.children = append(n.children, c)
}

// RemoveChild detaches c if it is a direct child
func (n *Node) RemoveChild(c *Node) bool {
	for i, child := range n.children {
		if child == c {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			c.parent = nil
			return true
		}
	}
	return false
}

// Detach removes the node from its parent
func (n *Node) Detach() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// WorldX returns x accumulated through all ancestors
func (n *Node) WorldX() float64 {
	x := n.x
	for p := n.parent; p != nil; p = p.parent {
		x += p.x
	}
	return x
}

// WorldY returns y accumulated through all ancestors
func (n *Node) WorldY() float64 {
	y := n.y
	for p := n.parent; p != nil; p = p.parent {
		y += p.y
	}
	return y
}

// WorldScale returns the product of scales through all ancestors
func (n *Node) WorldScale() float64 {
	s := n.scale
	for p := n.parent; p != nil; p = p.parent {
		s *= p.scale
	}
	return s
}

// Reset restores transient visual state: origin position, unit scale, visible
func (n *Node) Reset() {
	n.x, n.y = 0, 0
	n.scale = 1
	n.hidden = false
}
