package entity

// Rect is an axis-aligned bounding box in world pixels.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Overlaps reports whether the two rects intersect. Touching edges do not
// count as overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// ResolveOverlap returns the displacement that pushes r out of o along the
// axis of minimum penetration. Zero displacement if the rects do not
// overlap.
func (r Rect) ResolveOverlap(o Rect) (dx, dy float64) {
	if !r.Overlaps(o) {
		return 0, 0
	}

	// Penetration depth on each axis
	fromLeft := r.X + r.W - o.X
	fromRight := o.X + o.W - r.X
	fromTop := r.Y + r.H - o.Y
	fromBottom := o.Y + o.H - r.Y

	penX := fromLeft
	if fromRight < penX {
		penX = fromRight
	}
	penY := fromTop
	if fromBottom < penY {
		penY = fromBottom
	}

	if penX < penY {
		if fromLeft < fromRight {
			return -fromLeft, 0
		}
		return fromRight, 0
	}
	if fromTop < fromBottom {
		return 0, -fromTop
	}
	return 0, fromBottom
}

// Moved returns a copy of the rect translated by (dx, dy).
func (r Rect) Moved(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}
