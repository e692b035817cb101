package geom

import "math"

var _ DrawnRegion = OvalRegion{}

// OvalRegion is an axis-aligned ellipse with the given center and radii.
type OvalRegion struct {
	Center           Point
	RadiusX, RadiusY float64
}

func NewOvalRegion(center Point, radiusX, radiusY float64) OvalRegion {
	return OvalRegion{Center: center, RadiusX: radiusX, RadiusY: radiusY}
}

func (o OvalRegion) IsInside(p Point) bool {
	dx := (o.Center.X - p.X) / o.RadiusX
	dy := (o.Center.Y - p.Y) / o.RadiusY
	return dx*dx+dy*dy <= 1
}

func (o OvalRegion) Left() float64   { return o.Center.X - o.RadiusX }
func (o OvalRegion) Bottom() float64 { return o.Center.Y - o.RadiusY }
func (o OvalRegion) Right() float64  { return o.Center.X + o.RadiusX }
func (o OvalRegion) Top() float64    { return o.Center.Y + o.RadiusY }

func (o OvalRegion) Clone() DrawnRegion {
	return o
}

// FindLineIntersection solves
//
//	((fx + t*dx - cx) / rx)^2 + ((fy + t*dy - cy) / ry)^2 = 1
//
// for t and classifies the roots against [0, 1]. The endpoint classification
// is authoritative: when rounding makes the roots disagree with it, the
// nearest valid parameter is used instead.
func (o OvalRegion) FindLineIntersection(from, to Point) LineIntersection {
	fromInside := o.IsInside(from)
	toInside := o.IsInside(to)
	if fromInside && toInside {
		// An oval is convex
		return Inside()
	}

	dx := to.X - from.X
	dy := to.Y - from.Y
	hx := from.X - o.Center.X
	hy := from.Y - o.Center.Y
	rx2 := o.RadiusX * o.RadiusX
	ry2 := o.RadiusY * o.RadiusY

	a := dx*dx/rx2 + dy*dy/ry2
	b := 2 * (dx*hx/rx2 + dy*hy/ry2)
	c := hx*hx/rx2 + hy*hy/ry2 - 1

	if a == 0 {
		// from == to, so both endpoints share a classification
		return Outside()
	}

	discriminant := b*b - 4*a*c
	if !fromInside && !toInside {
		// A tangent line is not reliable, so D == 0 is a miss
		if discriminant <= 0 {
			return Outside()
		}
		sqrtD := math.Sqrt(discriminant)
		t1 := (-b - sqrtD) / (2 * a)
		t2 := (-b + sqrtD) / (2 * a)
		if t1 < 0 || t2 > 1 {
			return Outside()
		}
		return Crossing(from.Lerp(to, t1), from.Lerp(to, t2))
	}

	sqrtD := math.Sqrt(math.Max(discriminant, 0))
	if toInside {
		t1 := clamp01((-b - sqrtD) / (2 * a))
		return Entering(from.Lerp(to, t1))
	}
	t2 := clamp01((-b + sqrtD) / (2 * a))
	return Exiting(from.Lerp(to, t2))
}

func clamp01(t float64) float64 {
	return math.Min(math.Max(t, 0), 1)
}
