package scene

import "testing"

func TestNodeHierarchyOffsets(t *testing.T) {
	root := NewNode("root")
	root.SetPosition(10, 20)
	root.SetScale(2)

	child := NewNode("child")
	child.SetPosition(1, 2)
	child.SetScale(0.5)
	root.AddChild(child)

	if child.Parent() != root || len(root.Children()) != 1 {
		t.Fatal("child not attached")
	}
	if child.WorldX() != 11 || child.WorldY() != 22 {
		t.Errorf("Expected world (11,22), got (%f,%f)", child.WorldX(), child.WorldY())
	}
	if child.WorldScale() != 1 {
		t.Errorf("Expected world scale 1, got %f", child.WorldScale())
	}
}

func TestNodeReparentDetachesFromPrevious(t *testing.T) {
	a, b, c := NewNode("a"), NewNode("b"), NewNode("c")
	a.AddChild(c)
	b.AddChild(c)

	if len(a.Children()) != 0 {
		t.Errorf("Expected c removed from a, a has %d children", len(a.Children()))
	}
	if c.Parent() != b {
		t.Error("Expected c parented to b")
	}

	a.AddChild(nil)
	a.AddChild(a)
	if len(a.Children()) != 0 {
		t.Error("nil and self children should be ignored")
	}
}

func TestNodeRemoveAndDetach(t *testing.T) {
	root := NewNode("root")
	kids := []*Node{NewNode("0"), NewNode("1"), NewNode("2")}
	for _, k := range kids {
		root.AddChild(k)
	}

	kids[1].Detach()
	if len(root.Children()) != 2 || root.Children()[0] != kids[0] || root.Children()[1] != kids[2] {
		t.Errorf("Unexpected children after detach: %v", root.Children())
	}
	if root.RemoveChild(kids[1]) {
		t.Error("RemoveChild of a non-child should report false")
	}
	kids[1].Detach()
}

func TestNodeReset(t *testing.T) {
	n := NewNode("token")
	n.SetPosition(4, 5)
	n.SetScale(1.3)
	n.SetVisible(false)

	n.Reset()
	if n.X() != 0 || n.Y() != 0 || n.Scale() != 1 || !n.Visible() {
		t.Errorf("Reset left state x=%f y=%f scale=%f visible=%v", n.X(), n.Y(), n.Scale(), n.Visible())
	}
}
