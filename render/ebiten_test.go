package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpticalFlyer/retain/geom"
)

func TestTriangulate(t *testing.T) {
	tests := []struct {
		name      string
		points    []geom.Point
		triangles int
	}{
		{
			name:      "triangle",
			points:    []geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(0, 1)},
			triangles: 1,
		},
		{
			name:      "square",
			points:    []geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(1, 1), geom.Pt(0, 1)},
			triangles: 2,
		},
		{
			name: "concave arrow",
			points: []geom.Point{
				geom.Pt(0, 0), geom.Pt(0.5, 0.3), geom.Pt(1, 0), geom.Pt(0.5, 1),
			},
			triangles: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			indices, err := triangulate(tt.points)
			require.NoError(t, err)
			require.Len(t, indices, 3*tt.triangles)
			for _, index := range indices {
				assert.Less(t, int(index), len(tt.points))
			}
		})
	}
}

func TestTriangulateDegenerate(t *testing.T) {
	_, err := triangulate([]geom.Point{geom.Pt(0, 0), geom.Pt(0.5, 0.5), geom.Pt(1, 1)})
	assert.ErrorIs(t, err, ErrTriangulation)
}
