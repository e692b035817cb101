package components

import (
	"errors"
	"fmt"
	"math"

	"github.com/jonas-p/go-shp"

	"github.com/OpticalFlyer/retain/geom"
	"github.com/OpticalFlyer/retain/proj"
)

// ErrNoPolygons is returned by LoadShapefile for files without usable
// polygons.
var ErrNoPolygons = errors.New("shapefile has no polygons")

// LoadShapefile reads the polygon rings of an ESRI shapefile and scales them
// into the unit square, keeping their aspect ratio and centering them.
// Coordinates that look like longitudes and latitudes are projected with Web
// Mercator first.
func LoadShapefile(path string) ([][]geom.Point, error) {
	reader, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open shapefile %q: %w", path, err)
	}
	defer reader.Close()

	box := reader.BBox()
	geographic := box.MinX >= -180 && box.MaxX <= 180 && box.MinY >= -90 && box.MaxY <= 90

	var rings [][]geom.Point
	for reader.Next() {
		_, shape := reader.Shape()
		var parts []int32
		var points []shp.Point
		switch s := shape.(type) {
		case *shp.Polygon:
			parts, points = s.Parts, s.Points
		case *shp.PolygonZ:
			parts, points = s.Parts, s.Points
		case *shp.PolygonM:
			parts, points = s.Parts, s.Points
		default:
			continue
		}
		rings = append(rings, splitRings(parts, points, geographic)...)
	}
	if err := reader.Err(); err != nil {
		return nil, fmt.Errorf("read shapefile %q: %w", path, err)
	}
	if len(rings) == 0 {
		return nil, fmt.Errorf("%q: %w", path, ErrNoPolygons)
	}
	if !normalize(rings) {
		return nil, fmt.Errorf("%q: polygons have no extent", path)
	}
	return rings, nil
}

// splitRings cuts points into one ring per part. The closing point that
// repeats the first one is dropped.
func splitRings(parts []int32, points []shp.Point, geographic bool) [][]geom.Point {
	var rings [][]geom.Point
	for i, start := range parts {
		end := int32(len(points))
		if i+1 < len(parts) {
			end = parts[i+1]
		}
		if start < 0 || start >= end || int(end) > len(points) {
			continue
		}
		raw := points[start:end]
		if len(raw) > 1 && raw[0] == raw[len(raw)-1] {
			raw = raw[:len(raw)-1]
		}
		if len(raw) < 3 {
			continue
		}
		ring := make([]geom.Point, len(raw))
		for j, p := range raw {
			if geographic {
				x, y := proj.LonLatToUnit(p.X, p.Y)
				ring[j] = geom.Pt(x, y)
			} else {
				ring[j] = geom.Pt(p.X, p.Y)
			}
		}
		rings = append(rings, ring)
	}
	return rings
}

// normalize scales and moves rings in place so they fit the unit square. It
// returns false when all points coincide.
func normalize(rings [][]geom.Point) bool {
	bounds := geom.EmptyBounds()
	for _, ring := range rings {
		for _, p := range ring {
			bounds = bounds.ExtendPoint(p)
		}
	}
	width, height := bounds.Right-bounds.Left, bounds.Top-bounds.Bottom
	size := math.Max(width, height)
	if size <= 0 {
		return false
	}
	offsetX := (1 - width/size) / 2
	offsetY := (1 - height/size) / 2
	for _, ring := range rings {
		for j, p := range ring {
			ring[j] = geom.Pt(
				offsetX+(p.X-bounds.Left)/size,
				offsetY+(p.Y-bounds.Bottom)/size,
			)
		}
	}
	return true
}
