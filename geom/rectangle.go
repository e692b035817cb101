package geom

var _ DrawnRegion = RectangleRegion{}

// RectangleRegion is an axis-aligned rectangle. Its edges are part of it.
type RectangleRegion struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewRectangleRegion returns the rectangle between (minX, minY) and
// (maxX, maxY).
func NewRectangleRegion(minX, minY, maxX, maxY float64) RectangleRegion {
	return RectangleRegion{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// EntireRegion returns the rectangle covering the unit square.
func EntireRegion() RectangleRegion {
	return RectangleRegion{MaxX: 1, MaxY: 1}
}

func (r RectangleRegion) IsInside(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

func (r RectangleRegion) Left() float64   { return r.MinX }
func (r RectangleRegion) Bottom() float64 { return r.MinY }
func (r RectangleRegion) Right() float64  { return r.MaxX }
func (r RectangleRegion) Top() float64    { return r.MaxY }

func (r RectangleRegion) Clone() DrawnRegion {
	return r
}

func (r RectangleRegion) FindLineIntersection(from, to Point) LineIntersection {
	fromInside := r.IsInside(from)
	toInside := r.IsInside(to)
	if fromInside && toInside {
		return Inside()
	}

	t0, t1, hit := r.clip(from, to)
	switch {
	case !fromInside && !toInside:
		// A segment that only grazes a corner counts as a miss
		if !hit || t0 >= t1 {
			return Outside()
		}
		return Crossing(from.Lerp(to, t0), from.Lerp(to, t1))
	case toInside:
		if !hit {
			return Entering(to)
		}
		return Entering(from.Lerp(to, t0))
	default:
		if !hit {
			return Exiting(from)
		}
		return Exiting(from.Lerp(to, t1))
	}
}

// clip returns the parameter range [t0, t1] of the segment that lies inside
// the rectangle (Liang-Barsky).
func (r RectangleRegion) clip(from, to Point) (t0, t1 float64, hit bool) {
	dx := to.X - from.X
	dy := to.Y - from.Y
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{from.X - r.MinX, r.MaxX - from.X, from.Y - r.MinY, r.MaxY - from.Y}

	t0, t1 = 0, 1
	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, false
			}
			continue
		}
		ratio := q[i] / p[i]
		if p[i] < 0 {
			if ratio > t1 {
				return 0, 0, false
			}
			if ratio > t0 {
				t0 = ratio
			}
		} else {
			if ratio < t0 {
				return 0, 0, false
			}
			if ratio < t1 {
				t1 = ratio
			}
		}
	}
	return t0, t1, true
}
