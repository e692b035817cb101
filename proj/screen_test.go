package proj

import (
	"math"
	"testing"
)

func TestWindowToLocal(t *testing.T) {
	tests := []struct {
		name          string
		px, py        float64
		width, height int
		wantX, wantY  float64
	}{
		{
			name:  "Top-left pixel",
			px:    0,
			py:    0,
			width: 100, height: 50,
			wantX: 0.005,
			wantY: 0.99,
		},
		{
			name:  "Bottom-right pixel",
			px:    99,
			py:    49,
			width: 100, height: 50,
			wantX: 0.995,
			wantY: 0.01,
		},
		{
			name:  "Empty window",
			px:    10,
			py:    10,
			width: 0, height: 0,
			wantX: 0,
			wantY: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotX, gotY := WindowToLocal(tt.px, tt.py, tt.width, tt.height)
			if math.Abs(gotX-tt.wantX) > 1e-6 || math.Abs(gotY-tt.wantY) > 1e-6 {
				t.Errorf("got (%f, %f); want (%f, %f)",
					gotX, gotY, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestLocalToWindow(t *testing.T) {
	// Region of 40x20 pixels whose bottom-left corner is at (10, 5) in a
	// window that is 100 pixels high.
	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{name: "Bottom-left", x: 0, y: 0, wantX: 10, wantY: 95},
		{name: "Top-right", x: 1, y: 1, wantX: 50, wantY: 75},
		{name: "Center", x: 0.5, y: 0.5, wantX: 30, wantY: 85},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotX, gotY := LocalToWindow(tt.x, tt.y, 10, 5, 40, 20, 100)
			if math.Abs(gotX-tt.wantX) > 1e-6 || math.Abs(gotY-tt.wantY) > 1e-6 {
				t.Errorf("got (%f, %f); want (%f, %f)",
					gotX, gotY, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestFlipRegion(t *testing.T) {
	if got := FlipRegion(5, 20, 100); got != 75 {
		t.Errorf("got %d; want 75", got)
	}
	if got := FlipRegion(0, 100, 100); got != 0 {
		t.Errorf("got %d; want 0", got)
	}
}
