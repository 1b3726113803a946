package internal

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{Top: value, Right: value, Bottom: value, Left: value}
}

// Horizontal returns the total left and right padding.
func (p Padding) Horizontal() int32 { return p.Left + p.Right }

// Vertical returns the total top and bottom padding.
func (p Padding) Vertical() int32 { return p.Top + p.Bottom }

// Inset shrinks the w x h area at x, y by the padding.
func (p Padding) Inset(x, y, w, h int32) (int32, int32, int32, int32) {
	return x + p.Left, y + p.Top, max(0, w-p.Horizontal()), max(0, h-p.Vertical())
}
