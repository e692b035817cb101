package geom

import (
	"fmt"
	"math"
)

// RenderRegion is a rectangle of pixels. The origin is the bottom-left pixel
// and the bounds are exclusive: the region covers [MinX, MinX+Width) x
// [MinY, MinY+Height).
type RenderRegion struct {
	MinX, MinY    int
	Width, Height int
}

// RegionWithSize returns the region at (minX, minY) with the given size. It
// panics on negative values.
func RegionWithSize(minX, minY, width, height int) RenderRegion {
	if minX < 0 || minY < 0 {
		panic(fmt.Sprintf("geom: render region origin (%d, %d) is negative", minX, minY))
	}
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("geom: render region size %dx%d is negative", width, height))
	}
	return RenderRegion{MinX: minX, MinY: minY, Width: width, Height: height}
}

// RegionBetween returns the region from (minX, minY) up to, but excluding,
// (boundX, boundY).
func RegionBetween(minX, minY, boundX, boundY int) RenderRegion {
	return RegionWithSize(minX, minY, boundX-minX, boundY-minY)
}

// BoundX returns the first x-coordinate right of the region.
func (r RenderRegion) BoundX() int {
	return r.MinX + r.Width
}

// BoundY returns the first y-coordinate above the region.
func (r RenderRegion) BoundY() int {
	return r.MinY + r.Height
}

// Empty reports whether the region covers no pixels.
func (r RenderRegion) Empty() bool {
	return r.Width == 0 || r.Height == 0
}

// AspectRatio returns width / height, or 0 when the region has no height.
func (r RenderRegion) AspectRatio() float64 {
	if r.Height == 0 {
		return 0
	}
	return float64(r.Width) / float64(r.Height)
}

// Contains reports whether pixel (x, y) lies in the region.
func (r RenderRegion) Contains(x, y int) bool {
	return x >= r.MinX && x < r.BoundX() && y >= r.MinY && y < r.BoundY()
}

// ChildRegion returns the part of r between the relative coordinates
// (relMinX, relMinY) and (relMaxX, relMaxY), rounded to the nearest pixel
// (halves away from zero). ok is false when the result would be empty.
func (r RenderRegion) ChildRegion(relMinX, relMinY, relMaxX, relMaxY float64) (child RenderRegion, ok bool) {
	minX := r.MinX + int(math.Round(float64(r.Width)*relMinX))
	minY := r.MinY + int(math.Round(float64(r.Height)*relMinY))
	boundX := r.MinX + int(math.Round(float64(r.Width)*relMaxX))
	boundY := r.MinY + int(math.Round(float64(r.Height)*relMaxY))
	if boundX <= minX || boundY <= minY {
		return RenderRegion{}, false
	}
	return RegionBetween(minX, minY, boundX, boundY), true
}

// ChildRegionOf is ChildRegion for the bounds of d.
func (r RenderRegion) ChildRegionOf(d Domain) (RenderRegion, bool) {
	return r.ChildRegion(d.MinX, d.MinY, d.MaxX, d.MaxY)
}

// Intersection returns the pixels covered by both r and other.
func (r RenderRegion) Intersection(other RenderRegion) (RenderRegion, bool) {
	minX := max(r.MinX, other.MinX)
	minY := max(r.MinY, other.MinY)
	boundX := min(r.BoundX(), other.BoundX())
	boundY := min(r.BoundY(), other.BoundY())
	if boundX <= minX || boundY <= minY {
		return RenderRegion{}, false
	}
	return RegionBetween(minX, minY, boundX, boundY), true
}

func (r RenderRegion) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.MinX, r.MinY)
}
