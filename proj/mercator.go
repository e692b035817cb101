package proj

import "math"

// Constants for Web Mercator projection
const (
	maxLat   = 85.0511 // Maximum latitude in Web Mercator (arctan(sinh(π)))
	minLat   = -85.0511
	degToRad = math.Pi / 180.0
	radToDeg = 180.0 / math.Pi
)

// LonLatToUnit projects WGS84 coordinates with Web Mercator onto the unit
// square. (0, 0) is the south-west corner of the projected world and (1, 1)
// its north-east corner, so y grows northwards like component coordinates.
//
// Latitudes beyond ±85.0511 are clamped.
func LonLatToUnit(lon, lat float64) (x, y float64) {
	if lat > maxLat {
		lat = maxLat
	} else if lat < minLat {
		lat = minLat
	}

	x = (lon + 180.0) / 360.0

	if lat >= maxLat {
		return x, 1
	}
	if lat <= minLat {
		return x, 0
	}

	sinLat := math.Sin(lat * degToRad)
	y = 0.5 + 0.25*math.Log((1.0+sinLat)/(1.0-sinLat))/math.Pi
	return x, y
}

// UnitToLonLat is the inverse of LonLatToUnit.
func UnitToLonLat(x, y float64) (lon, lat float64) {
	lon = x*360.0 - 180.0
	n := math.Pi * (2*y - 1)
	lat = math.Atan(math.Sinh(n)) * radToDeg
	return lon, lat
}
