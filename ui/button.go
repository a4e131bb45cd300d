package ui

// Rect is a cell-space rectangle
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Button is a clickable label that fires its handler only while enabled
type Button struct {
	Label   string
	Hint    string
	Bounds  Rect
	enabled bool
	onPress func()
}

// NewButton creates an enabled button
func NewButton(label, hint string, onPress func()) *Button {
	return &Button{Label: label, Hint: hint, enabled: true, onPress: onPress}
}

// Enabled reports whether presses are accepted
func (b *Button) Enabled() bool { return b.enabled }

// SetEnabled toggles press acceptance
func (b *Button) SetEnabled(v bool) { b.enabled = v }

// Press fires the handler, returns false when disabled
func (b *Button) Press() bool {
	if !b.enabled || b.onPress == nil {
		return false
	}
	b.onPress()
	return true
}

// Click presses the button when the cell hits its bounds
func (b *Button) Click(x, y int) bool {
	if !b.Bounds.Contains(x, y) {
		return false
	}
	return b.Press()
}
