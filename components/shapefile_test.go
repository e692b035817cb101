package components

import (
	"path/filepath"
	"testing"

	"github.com/jonas-p/go-shp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpticalFlyer/retain/geom"
)

func writePolygons(t *testing.T, rings ...[]shp.Point) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shapes.shp")
	w, err := shp.Create(path, shp.POLYGON)
	require.NoError(t, err)
	for _, ring := range rings {
		polygon := shp.Polygon(*shp.NewPolyLine([][]shp.Point{ring}))
		w.Write(&polygon)
	}
	w.Close()
	return path
}

func TestLoadShapefileProjected(t *testing.T) {
	path := writePolygons(t, []shp.Point{
		{X: 1000, Y: 1000}, {X: 3000, Y: 1000}, {X: 3000, Y: 2000}, {X: 1000, Y: 2000}, {X: 1000, Y: 1000},
	})

	rings, err := LoadShapefile(path)
	require.NoError(t, err)
	require.Len(t, rings, 1)
	want := []geom.Point{geom.Pt(0, 0.25), geom.Pt(1, 0.25), geom.Pt(1, 0.75), geom.Pt(0, 0.75)}
	require.Len(t, rings[0], len(want), "the closing point is dropped")
	for i, p := range want {
		assert.True(t, p.NearlyEqual(rings[0][i]), "point %d: %v", i, rings[0][i])
	}
}

func TestLoadShapefileGeographic(t *testing.T) {
	path := writePolygons(t,
		[]shp.Point{{X: -10, Y: -10}, {X: 10, Y: -10}, {X: 10, Y: 10}, {X: -10, Y: 10}, {X: -10, Y: -10}},
		[]shp.Point{{X: 20, Y: 40}, {X: 30, Y: 40}, {X: 25, Y: 60}, {X: 20, Y: 40}},
	)

	rings, err := LoadShapefile(path)
	require.NoError(t, err)
	require.Len(t, rings, 2)

	bounds := geom.EmptyBounds()
	for _, ring := range rings {
		for _, p := range ring {
			bounds = bounds.ExtendPoint(p)
		}
	}
	assert.InDelta(t, 1, bounds.Top, 1e-9, "latitudes span more than longitudes once projected")
	assert.InDelta(t, 0, bounds.Bottom, 1e-9)
	assert.GreaterOrEqual(t, bounds.Left, 0.0)
	assert.LessOrEqual(t, bounds.Right, 1.0)

	// Web Mercator barely distorts near the equator.
	square := rings[0]
	assert.InDelta(t, square[2].X-square[0].X, square[2].Y-square[0].Y, 5e-3)
	assert.Len(t, rings[1], 3)
}

func TestLoadShapefileErrors(t *testing.T) {
	_, err := LoadShapefile(filepath.Join(t.TempDir(), "missing.shp"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "points.shp")
	w, err := shp.Create(path, shp.POINT)
	require.NoError(t, err)
	w.Write(&shp.Point{X: 1, Y: 2})
	w.Close()

	_, err = LoadShapefile(path)
	assert.ErrorIs(t, err, ErrNoPolygons)
}
