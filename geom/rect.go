package geom

// Rect is an axis-aligned rectangle with a top-left origin.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }
func (r Rect) CenterX() float64 {
	return r.X + r.Width/2
}
func (r Rect) CenterY() float64 {
	return r.Y + r.Height/2
}

// Intersects reports whether two rectangles overlap on both axes.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Side identifies the contact side of a resolved collision, named from the
// obstacle's point of view: SideLeft means the mover hit the obstacle's left
// edge (so the mover's right edge gets pinned there), and so on.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
	SideBottom
	SideTop
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	case SideTop:
		return "top"
	default:
		return "none"
	}
}

// ResolveSide computes the contact side for two intersecting rectangles
// using a minimum-translation heuristic: the four penetration depths are
// clamped to zero and the side with the least positive depth wins.
// Ties break in enumeration order: left, right, bottom, top. The order is
// load-bearing; resolution must stay reproducible frame to frame.
func ResolveSide(a, b Rect) Side {
	overlaps := [4]struct {
		side   Side
		amount float64
	}{
		{SideLeft, a.Right() - b.X},
		{SideRight, b.Right() - a.X},
		{SideBottom, a.Bottom() - b.Y},
		{SideTop, b.Bottom() - a.Y},
	}

	best := SideNone
	bestAmount := 0.0
	for _, o := range overlaps {
		if o.amount <= 0 {
			continue
		}
		if best == SideNone || o.amount < bestAmount {
			best = o.side
			bestAmount = o.amount
		}
	}
	return best
}
