package system

// Button is a clickable screen rectangle. Pad widens the hit area beyond
// the drawn bounds on every side.
type Button struct {
	X, Y, W, H float64
	Pad        float64
	Label      string

	hovered bool
}

// NewCenteredButton creates a button centred horizontally at cx
func NewCenteredButton(label string, cx, y, w, h, pad float64) *Button {
	return &Button{X: cx - w/2, Y: y, W: w, H: h, Pad: pad, Label: label}
}

// Contains reports whether (x, y) falls inside the hit area
func (b *Button) Contains(x, y float64) bool {
	return x >= b.X-b.Pad && x <= b.X+b.W+b.Pad &&
		y >= b.Y-b.Pad && y <= b.Y+b.H+b.Pad
}

// Hover updates the hover state and reports whether the pointer just entered
func (b *Button) Hover(x, y float64) bool {
	in := b.Contains(x, y)
	entered := in && !b.hovered
	b.hovered = in
	return entered
}

// Hovered reports the last hover state
func (b *Button) Hovered() bool {
	return b.hovered
}
