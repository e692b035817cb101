package proj

import (
	"math"
	"testing"
)

func TestLonLatToUnit(t *testing.T) {
	tests := []struct {
		name     string
		lon, lat float64
		wantX    float64
		wantY    float64
	}{
		{
			name:  "Null island",
			lon:   0,
			lat:   0,
			wantX: 0.5,
			wantY: 0.5,
		},
		{
			name:  "South-west corner",
			lon:   -180,
			lat:   minLat,
			wantX: 0.0,
			wantY: 0.0,
		},
		{
			name:  "North-east corner",
			lon:   180,
			lat:   maxLat,
			wantX: 1.0,
			wantY: 1.0,
		},
		{
			name:  "Clamped north pole",
			lon:   90,
			lat:   90,
			wantX: 0.75,
			wantY: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotX, gotY := LonLatToUnit(tt.lon, tt.lat)
			if math.Abs(gotX-tt.wantX) > 1e-6 || math.Abs(gotY-tt.wantY) > 1e-6 {
				t.Errorf("got (%f, %f); want (%f, %f)",
					gotX, gotY, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestUnitToLonLatRoundTrip(t *testing.T) {
	coords := [][2]float64{
		{0, 0},
		{-122.67890, 45.12345},
		{151.2093, -33.8688},
		{-98.5833, 39.8333},
	}

	for _, c := range coords {
		x, y := LonLatToUnit(c[0], c[1])
		lon, lat := UnitToLonLat(x, y)
		if math.Abs(lon-c[0]) > 1e-6 || math.Abs(lat-c[1]) > 1e-6 {
			t.Errorf("round trip of (%f, %f) gave (%f, %f)", c[0], c[1], lon, lat)
		}
	}
}
