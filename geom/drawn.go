package geom

import "math"

// DrawnRegion is the part of a component's local coordinate space that the
// component actually painted during its last render.
//
// Implementations must report tight axis-aligned bounds: IsInside may only
// return true for points that also pass WithinBounds.
type DrawnRegion interface {
	IsInside(p Point) bool

	Left() float64
	Bottom() float64
	Right() float64
	Top() float64

	// FindLineIntersection describes how the segment from -> to meets the
	// region. The kind always agrees with IsInside on both endpoints.
	FindLineIntersection(from, to Point) LineIntersection

	Clone() DrawnRegion
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Left, Bottom, Right, Top float64
}

// EmptyBounds returns bounds that contain nothing and grow with Extend.
func EmptyBounds() Bounds {
	return Bounds{
		Left:   math.Inf(1),
		Bottom: math.Inf(1),
		Right:  math.Inf(-1),
		Top:    math.Inf(-1),
	}
}

// BoundsOf returns the bounds reported by r.
func BoundsOf(r DrawnRegion) Bounds {
	return Bounds{Left: r.Left(), Bottom: r.Bottom(), Right: r.Right(), Top: r.Top()}
}

// Extend returns the smallest bounds containing both b and other.
func (b Bounds) Extend(other Bounds) Bounds {
	return Bounds{
		Left:   math.Min(b.Left, other.Left),
		Bottom: math.Min(b.Bottom, other.Bottom),
		Right:  math.Max(b.Right, other.Right),
		Top:    math.Max(b.Top, other.Top),
	}
}

// ExtendPoint returns the smallest bounds containing both b and p.
func (b Bounds) ExtendPoint(p Point) Bounds {
	return b.Extend(Bounds{Left: p.X, Bottom: p.Y, Right: p.X, Top: p.Y})
}

func (b Bounds) Contains(p Point) bool {
	return p.X >= b.Left && p.X <= b.Right && p.Y >= b.Bottom && p.Y <= b.Top
}

// WithinBounds is the cheap bounding-box check for r. It is implied by
// r.IsInside(p).
func WithinBounds(r DrawnRegion, p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Bottom() && p.Y <= r.Top()
}

// RegionWidth returns Right - Left of r.
func RegionWidth(r DrawnRegion) float64 {
	return r.Right() - r.Left()
}

// RegionHeight returns Top - Bottom of r.
func RegionHeight(r DrawnRegion) float64 {
	return r.Top() - r.Bottom()
}
