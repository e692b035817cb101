package geom

import "fmt"

var _ DrawnRegion = (*TransformedRegion)(nil)

// TransformFunc maps a point from one coordinate space to another.
type TransformFunc func(Point) Point

// sanityPoint is used to verify that a transform pair is reversible.
var sanityPoint = Point{X: 0.8137, Y: -0.3571}

// TransformedRegion wraps an inner region that lives in another coordinate
// space. Transform maps outer points to inner points and TransformBack maps
// them back. The bounds are given in outer coordinates by the caller, since
// deriving them would require inverting arbitrary functions.
type TransformedRegion struct {
	inner         DrawnRegion
	transform     TransformFunc
	transformBack TransformFunc
	bounds        Bounds
}

// NewTransformedRegion returns inner seen through the given transform pair.
// It panics when transformBack is not the inverse of transform.
func NewTransformedRegion(inner DrawnRegion, transform, transformBack TransformFunc, bounds Bounds) *TransformedRegion {
	if roundTrip := transformBack(transform(sanityPoint)); !roundTrip.NearlyEqual(sanityPoint) {
		panic(fmt.Sprintf("geom: transform is not reversible: %v became %v", sanityPoint, roundTrip))
	}
	return &TransformedRegion{
		inner:         inner,
		transform:     transform,
		transformBack: transformBack,
		bounds:        bounds,
	}
}

// NewDomainRegion maps inner, which is expressed in the local coordinates of
// a child occupying d, to the coordinates of the child's parent.
func NewDomainRegion(inner DrawnRegion, d Domain) *TransformedRegion {
	bottomLeft := d.TransformBack(Point{X: inner.Left(), Y: inner.Bottom()})
	topRight := d.TransformBack(Point{X: inner.Right(), Y: inner.Top()})
	return NewTransformedRegion(inner, d.Transform, d.TransformBack, Bounds{
		Left:   bottomLeft.X,
		Bottom: bottomLeft.Y,
		Right:  topRight.X,
		Top:    topRight.Y,
	})
}

// Inner returns the wrapped region.
func (t *TransformedRegion) Inner() DrawnRegion {
	return t.inner
}

func (t *TransformedRegion) IsInside(p Point) bool {
	return t.inner.IsInside(t.transform(p))
}

func (t *TransformedRegion) Left() float64   { return t.bounds.Left }
func (t *TransformedRegion) Bottom() float64 { return t.bounds.Bottom }
func (t *TransformedRegion) Right() float64  { return t.bounds.Right }
func (t *TransformedRegion) Top() float64    { return t.bounds.Top }

func (t *TransformedRegion) Clone() DrawnRegion {
	return &TransformedRegion{
		inner:         t.inner.Clone(),
		transform:     t.transform,
		transformBack: t.transformBack,
		bounds:        t.bounds,
	}
}

func (t *TransformedRegion) FindLineIntersection(from, to Point) LineIntersection {
	li := t.inner.FindLineIntersection(t.transform(from), t.transform(to))
	switch li.Kind {
	case Enters:
		return Entering(t.transformBack(li.Entrance))
	case Exits:
		return Exiting(t.transformBack(li.Exit))
	case Crosses:
		return Crossing(t.transformBack(li.Entrance), t.transformBack(li.Exit))
	}
	return li
}
