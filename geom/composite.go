package geom

var _ DrawnRegion = (*CompositeRegion)(nil)

// CompositeRegion is the union of other regions. A point is inside the
// composite when it is inside at least one of its parts.
type CompositeRegion struct {
	parts  []DrawnRegion
	bounds Bounds
}

// NewCompositeRegion returns the union of parts. Its bounds are the union of
// the bounds of the parts; an empty composite contains nothing.
func NewCompositeRegion(parts ...DrawnRegion) *CompositeRegion {
	bounds := EmptyBounds()
	for _, part := range parts {
		bounds = bounds.Extend(BoundsOf(part))
	}
	return &CompositeRegion{parts: parts, bounds: bounds}
}

// Parts returns the regions the composite is made of.
func (c *CompositeRegion) Parts() []DrawnRegion {
	return c.parts
}

func (c *CompositeRegion) IsInside(p Point) bool {
	if !c.bounds.Contains(p) {
		return false
	}
	for _, part := range c.parts {
		if WithinBounds(part, p) && part.IsInside(p) {
			return true
		}
	}
	return false
}

func (c *CompositeRegion) Left() float64   { return c.bounds.Left }
func (c *CompositeRegion) Bottom() float64 { return c.bounds.Bottom }
func (c *CompositeRegion) Right() float64  { return c.bounds.Right }
func (c *CompositeRegion) Top() float64    { return c.bounds.Top }

func (c *CompositeRegion) Clone() DrawnRegion {
	parts := make([]DrawnRegion, len(c.parts))
	for i, part := range c.parts {
		parts[i] = part.Clone()
	}
	return &CompositeRegion{parts: parts, bounds: c.bounds}
}

// FindLineIntersection asks every part for its intersection. The first
// entrance is the one closest to from and the last exit is the one closest to
// to. When the parts contradict the classification of the endpoints, the
// classification wins.
func (c *CompositeRegion) FindLineIntersection(from, to Point) LineIntersection {
	fromInside := c.IsInside(from)
	toInside := c.IsInside(to)
	if fromInside && toInside {
		return Inside()
	}

	var (
		entrance, exit       Point
		hasEntrance, hasExit bool
	)
	for _, part := range c.parts {
		li := part.FindLineIntersection(from, to)
		if li.Kind == Enters || li.Kind == Crosses {
			if !hasEntrance || li.Entrance.DistanceTo(from) < entrance.DistanceTo(from) {
				entrance = li.Entrance
				hasEntrance = true
			}
		}
		if li.Kind == Exits || li.Kind == Crosses {
			if !hasExit || li.Exit.DistanceTo(to) < exit.DistanceTo(to) {
				exit = li.Exit
				hasExit = true
			}
		}
	}

	switch {
	case !fromInside && !toInside:
		if hasEntrance && hasExit {
			return Crossing(entrance, exit)
		}
		return Outside()
	case toInside:
		if !hasEntrance {
			return Entering(to)
		}
		return Entering(entrance)
	default:
		if !hasExit {
			return Exiting(from)
		}
		return Exiting(exit)
	}
}
