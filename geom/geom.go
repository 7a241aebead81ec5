// Package geom provides the small set of planar geometry primitives the
// adjacency pipeline needs: axis-aligned rectangles, polygon rings, bounding
// box extraction and an exact polygon-polygon intersection test.
//
// The types are plain values; none of the operations mutate their receivers.
package geom

import (
	"errors"
	"fmt"
)

// ErrNoRing is returned when a polygonal outer ring is required but absent.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNoRing)`.
var ErrNoRing = errors.New("geometry has no outer ring")

// ShapeError reports a geometry that cannot serve as polygon input.
//
// The underlying cause (if any) can be accessed via errors.Unwrap.
type ShapeError struct {
	// Detail describes what was encountered instead of a polygon ring.
	Detail string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("malformed geometry: %s", e.Detail)
}

func (e *ShapeError) Unwrap() error { return ErrNoRing }

// Point is a planar coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Ring is a closed sequence of points. The closing point may be repeated or
// omitted; consumers treat the ring as implicitly closed.
type Ring []Point

// Polygon is a simple polygon described by its outer ring. Interior rings
// (holes) do not participate in adjacency detection and are not modeled.
type Polygon struct {
	Outer Ring `json:"outer"`
}

// Rect is an axis-aligned rectangle with MinX <= MaxX and MinY <= MaxY.
// Degenerate (zero-area) rectangles are legal.
type Rect struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// NewRect returns the rectangle spanning the two corner points in any order.
func NewRect(x1, y1, x2, y2 float64) Rect {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	return Rect{MinX: x1, MinY: y1, MaxX: x2, MaxY: y2}
}

// Intersects reports whether r and o share at least one point.
// Touching edges and corners count as intersecting.
func (r Rect) Intersects(o Rect) bool {
	return r.MinX <= o.MaxX && o.MinX <= r.MaxX &&
		r.MinY <= o.MaxY && o.MinY <= r.MaxY
}

// Intersection returns the overlap rectangle of r and o.
// Only meaningful when Intersects(o) is true; the result is then a valid,
// possibly degenerate Rect.
func (r Rect) Intersection(o Rect) Rect {
	return Rect{
		MinX: max(r.MinX, o.MinX),
		MinY: max(r.MinY, o.MinY),
		MaxX: min(r.MaxX, o.MaxX),
		MaxY: min(r.MaxY, o.MaxY),
	}
}

// Extend grows r to also cover o.
func (r Rect) Extend(o Rect) Rect {
	return Rect{
		MinX: min(r.MinX, o.MinX),
		MinY: min(r.MinY, o.MinY),
		MaxX: max(r.MaxX, o.MaxX),
		MaxY: max(r.MaxY, o.MaxY),
	}
}

// ContainsPoint reports whether p lies inside or on the boundary of r.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Bounds returns the minimal enclosing rectangle of the polygon's outer ring.
//
// It fails with a *ShapeError (unwrapping to ErrNoRing) if the polygon has no
// ring. Callers must guarantee polygon input; this is the boundary where
// non-polygon geometry is rejected.
func (p Polygon) Bounds() (Rect, error) {
	if len(p.Outer) == 0 {
		return Rect{}, &ShapeError{Detail: "empty outer ring"}
	}

	r := Rect{
		MinX: p.Outer[0].X, MinY: p.Outer[0].Y,
		MaxX: p.Outer[0].X, MaxY: p.Outer[0].Y,
	}
	for _, pt := range p.Outer[1:] {
		r.MinX = min(r.MinX, pt.X)
		r.MinY = min(r.MinY, pt.Y)
		r.MaxX = max(r.MaxX, pt.X)
		r.MaxY = max(r.MaxY, pt.Y)
	}

	return r, nil
}
