package geom

import (
	"fmt"
	"math"
)

// nearlyEqualTolerance is the maximum distance between two points that are
// considered equal after a round trip through floating point math.
const nearlyEqualTolerance = 1e-4

// Point is a position in some local coordinate space. Component-local
// coordinates run from (0, 0) in the bottom-left corner to (1, 1) in the
// top-right corner.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// DistanceTo returns the euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// NearlyEqual reports whether p and q are equal, ignoring rounding errors.
func (p Point) NearlyEqual(q Point) bool {
	return math.Abs(p.X-q.X) <= nearlyEqualTolerance && math.Abs(p.Y-q.Y) <= nearlyEqualTolerance
}

// Lerp returns the point at fraction t of the segment from p to q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + t*(q.X-p.X), Y: p.Y + t*(q.Y-p.Y)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", p.X, p.Y)
}
