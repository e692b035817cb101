package geom

import (
	"fmt"
	"sort"
)

var _ DrawnRegion = (*PolygonRegion)(nil)

// PolygonRegion is a simple polygon. Containment uses the even-odd rule, so
// self-intersecting rings behave like the fill of a vector renderer.
type PolygonRegion struct {
	points []Point
	bounds Bounds
}

// NewPolygonRegion returns the polygon through points. The ring is closed
// implicitly. It panics when fewer than three points are given.
func NewPolygonRegion(points []Point) *PolygonRegion {
	if len(points) < 3 {
		panic(fmt.Sprintf("geom: a polygon needs at least 3 points, got %d", len(points)))
	}
	bounds := EmptyBounds()
	for _, p := range points {
		bounds = bounds.ExtendPoint(p)
	}
	return &PolygonRegion{points: points, bounds: bounds}
}

// Points returns the vertices of the polygon.
func (r *PolygonRegion) Points() []Point {
	return r.points
}

func (r *PolygonRegion) IsInside(p Point) bool {
	if !r.bounds.Contains(p) {
		return false
	}
	inside := false
	for i, j := 0, len(r.points)-1; i < len(r.points); j, i = i, i+1 {
		a, b := r.points[i], r.points[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			crossX := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < crossX {
				inside = !inside
			}
		}
	}
	return inside
}

func (r *PolygonRegion) Left() float64   { return r.bounds.Left }
func (r *PolygonRegion) Bottom() float64 { return r.bounds.Bottom }
func (r *PolygonRegion) Right() float64  { return r.bounds.Right }
func (r *PolygonRegion) Top() float64    { return r.bounds.Top }

func (r *PolygonRegion) Clone() DrawnRegion {
	points := make([]Point, len(r.points))
	copy(points, r.points)
	return &PolygonRegion{points: points, bounds: r.bounds}
}

func (r *PolygonRegion) FindLineIntersection(from, to Point) LineIntersection {
	fromInside := r.IsInside(from)
	toInside := r.IsInside(to)
	if fromInside && toInside {
		// Concave polygons may be left and re-entered in between, but the
		// endpoints decide the kind
		return Inside()
	}

	var hits []float64
	for i, j := 0, len(r.points)-1; i < len(r.points); j, i = i, i+1 {
		if t, ok := segmentIntersection(from, to, r.points[j], r.points[i]); ok {
			hits = append(hits, t)
		}
	}
	sort.Float64s(hits)

	switch {
	case !fromInside && !toInside:
		if len(hits) < 2 || hits[0] >= hits[len(hits)-1] {
			return Outside()
		}
		return Crossing(from.Lerp(to, hits[0]), from.Lerp(to, hits[len(hits)-1]))
	case toInside:
		if len(hits) == 0 {
			return Entering(to)
		}
		return Entering(from.Lerp(to, hits[0]))
	default:
		if len(hits) == 0 {
			return Exiting(from)
		}
		return Exiting(from.Lerp(to, hits[len(hits)-1]))
	}
}

// segmentIntersection returns the parameter along p0 -> p1 at which it meets
// the segment q0 -> q1. Parallel segments never intersect.
func segmentIntersection(p0, p1, q0, q1 Point) (float64, bool) {
	rx, ry := p1.X-p0.X, p1.Y-p0.Y
	sx, sy := q1.X-q0.X, q1.Y-q0.Y
	denominator := rx*sy - ry*sx
	if denominator == 0 {
		return 0, false
	}
	qpx, qpy := q0.X-p0.X, q0.Y-p0.Y
	t := (qpx*sy - qpy*sx) / denominator
	u := (qpx*ry - qpy*rx) / denominator
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return 0, false
	}
	return t, true
}
