package geom

import "fmt"

// Domain is the sub-rectangle of its parent's unit square that a child
// component occupies. A Domain is immutable once it is assigned to a child.
type Domain struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewDomain returns the domain between (minX, minY) and (maxX, maxY). It panics
// when a bound lies outside [0, 1] or a minimum exceeds its maximum.
func NewDomain(minX, minY, maxX, maxY float64) Domain {
	for _, v := range [4]float64{minX, minY, maxX, maxY} {
		if v < 0 || v > 1 {
			panic(fmt.Sprintf("geom: domain bound %v is outside [0, 1]", v))
		}
	}
	if minX > maxX || minY > maxY {
		panic(fmt.Sprintf("geom: domain min (%v, %v) exceeds max (%v, %v)", minX, minY, maxX, maxY))
	}
	return Domain{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// DomainWithSize returns the domain with its bottom-left corner at
// (minX, minY) and the given width and height.
func DomainWithSize(minX, minY, width, height float64) Domain {
	return NewDomain(minX, minY, minX+width, minY+height)
}

// Full returns the domain covering the entire unit square.
func Full() Domain {
	return Domain{MaxX: 1, MaxY: 1}
}

func (d Domain) Width() float64 {
	return d.MaxX - d.MinX
}

func (d Domain) Height() float64 {
	return d.MaxY - d.MinY
}

// Empty reports whether d has no area.
func (d Domain) Empty() bool {
	return d.MaxX <= d.MinX || d.MaxY <= d.MinY
}

// IsInside reports whether p lies in d. All four edges are inclusive.
func (d Domain) IsInside(p Point) bool {
	return p.X >= d.MinX && p.X <= d.MaxX && p.Y >= d.MinY && p.Y <= d.MaxY
}

// Transform maps a point in the parent's coordinates to the child's local
// coordinates.
func (d Domain) Transform(outer Point) Point {
	return Point{
		X: (outer.X - d.MinX) / d.Width(),
		Y: (outer.Y - d.MinY) / d.Height(),
	}
}

// TransformBack maps a point in the child's local coordinates to the parent's
// coordinates. It is the inverse of Transform.
func (d Domain) TransformBack(inner Point) Point {
	return Point{
		X: d.MinX + inner.X*d.Width(),
		Y: d.MinY + inner.Y*d.Height(),
	}
}

// Child returns sub, which is expressed relative to d, in the coordinates of
// d's parent.
func (d Domain) Child(sub Domain) Domain {
	bottomLeft := d.TransformBack(Point{X: sub.MinX, Y: sub.MinY})
	topRight := d.TransformBack(Point{X: sub.MaxX, Y: sub.MaxY})
	return Domain{MinX: bottomLeft.X, MinY: bottomLeft.Y, MaxX: topRight.X, MaxY: topRight.Y}
}

func (d Domain) String() string {
	return fmt.Sprintf("[%.3f, %.3f, %.3f, %.3f]", d.MinX, d.MinY, d.MaxX, d.MaxY)
}
