package geom

// Intersects reports whether the two polygons share at least one point.
// Boundary contact (shared edges, shared corners) counts as intersecting.
//
// The test is exact up to float64 arithmetic: bounding boxes are checked
// first, then edge pairs, then mutual containment for the no-edge-crossing
// case where one polygon lies entirely inside the other.
func (p Polygon) Intersects(q Polygon) bool {
	if len(p.Outer) == 0 || len(q.Outer) == 0 {
		return false
	}

	pb, err := p.Bounds()
	if err != nil {
		return false
	}
	qb, err := q.Bounds()
	if err != nil {
		return false
	}
	if !pb.Intersects(qb) {
		return false
	}

	// Edge-pair test catches all boundary contact.
	for i := 0; i < len(p.Outer); i++ {
		a1 := p.Outer[i]
		a2 := p.Outer[(i+1)%len(p.Outer)]
		for j := 0; j < len(q.Outer); j++ {
			b1 := q.Outer[j]
			b2 := q.Outer[(j+1)%len(q.Outer)]
			if segmentsIntersect(a1, a2, b1, b2) {
				return true
			}
		}
	}

	// No edges touch: either disjoint or one ring fully contains the other.
	if q.containsPoint(p.Outer[0]) {
		return true
	}
	if p.containsPoint(q.Outer[0]) {
		return true
	}

	return false
}

// orientation returns the sign of the cross product (b-a) x (c-a):
// >0 counter-clockwise, <0 clockwise, 0 collinear.
func orientation(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// onSegment reports whether c lies on the segment ab, assuming a, b, c are
// collinear.
func onSegment(a, b, c Point) bool {
	return min(a.X, b.X) <= c.X && c.X <= max(a.X, b.X) &&
		min(a.Y, b.Y) <= c.Y && c.Y <= max(a.Y, b.Y)
}

// segmentsIntersect reports whether segments a1a2 and b1b2 share a point,
// including endpoint touches and collinear overlap.
func segmentsIntersect(a1, a2, b1, b2 Point) bool {
	d1 := orientation(a1, a2, b1)
	d2 := orientation(a1, a2, b2)
	d3 := orientation(b1, b2, a1)
	d4 := orientation(b1, b2, a2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	// Collinear / endpoint cases.
	if d1 == 0 && onSegment(a1, a2, b1) {
		return true
	}
	if d2 == 0 && onSegment(a1, a2, b2) {
		return true
	}
	if d3 == 0 && onSegment(b1, b2, a1) {
		return true
	}
	if d4 == 0 && onSegment(b1, b2, a2) {
		return true
	}

	return false
}

// containsPoint reports whether pt lies strictly inside the polygon's outer
// ring, using even-odd ray casting. Boundary points are resolved by the
// edge-pair test before this is consulted.
func (p Polygon) containsPoint(pt Point) bool {
	inside := false
	n := len(p.Outer)
	for i := 0; i < n; i++ {
		a := p.Outer[i]
		b := p.Outer[(i+1)%n]
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			x := a.X + (pt.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if pt.X < x {
				inside = !inside
			}
		}
	}
	return inside
}
