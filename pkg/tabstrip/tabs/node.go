package tabs

// Node is anything an event can target. Events bubble along ParentNode.
type Node interface {
	ParentNode() Node
}

// Orientation is the axis items are arranged and navigated along.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Pos returns the leading edge of r along o.
func (r Rect) Pos(o Orientation) float64 {
	if o == Vertical {
		return r.Y
	}
	return r.X
}

// Extent returns the size of r along o.
func (r Rect) Extent(o Orientation) float64 {
	if o == Vertical {
		return r.H
	}
	return r.W
}

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Translate returns r moved by dx, dy.
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// IsEmpty reports whether r has no area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Part names the regions of a Tab that can be hit by a pointer.
type Part struct {
	Name string
	tab  *Tab
}

// Part names.
const (
	PartIcon  = "icon"
	PartLabel = "label"
)

// ParentNode returns the tab the part belongs to.
func (p *Part) ParentNode() Node {
	return p.tab
}

// Tab returns the owning tab.
func (p *Part) Tab() *Tab {
	return p.tab
}
