package uitest

import (
	"errors"
	"image"

	"github.com/OpticalFlyer/retain/geom"
	"github.com/OpticalFlyer/retain/ui"
)

// ErrPolygon is returned by Recorder.FillPolygon when FailPolygons is set.
var ErrPolygon = errors.New("uitest: polygon rejected")

// Op is one recorded drawing call.
type Op struct {
	Kind     string
	Viewport geom.RenderRegion
	Color    ui.Color
	Points   []geom.Point
}

// Recorder is a Renderer that remembers the calls it receives instead of
// drawing.
type Recorder struct {
	viewport     geom.RenderRegion
	Ops          []Op
	FailPolygons bool
}

var _ ui.Renderer = (*Recorder)(nil)

// NewRecorder returns a recorder whose viewport covers a width x height
// surface.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{viewport: geom.RegionWithSize(0, 0, width, height)}
}

func (r *Recorder) add(kind string, c ui.Color, points ...geom.Point) {
	r.Ops = append(r.Ops, Op{Kind: kind, Viewport: r.viewport, Color: c, Points: points})
}

func (r *Recorder) Viewport() geom.RenderRegion {
	return r.viewport
}

func (r *Recorder) SetViewport(region geom.RenderRegion) {
	r.viewport = region
	r.add("viewport", ui.Color{})
}

func (r *Recorder) Clear(c ui.Color) {
	r.add("clear", c)
}

func (r *Recorder) FillRect(minX, minY, maxX, maxY float64, c ui.Color) {
	r.add("rect", c, geom.Pt(minX, minY), geom.Pt(maxX, maxY))
}

func (r *Recorder) FillOval(center geom.Point, radiusX, radiusY float64, c ui.Color) {
	r.add("oval", c, center, geom.Pt(radiusX, radiusY))
}

func (r *Recorder) FillPolygon(points []geom.Point, c ui.Color) error {
	if r.FailPolygons {
		return ErrPolygon
	}
	r.add("polygon", c, append([]geom.Point(nil), points...)...)
	return nil
}

func (r *Recorder) DrawImage(img image.Image, minX, minY, maxX, maxY float64) {
	r.add("image", ui.Color{}, geom.Pt(minX, minY), geom.Pt(maxX, maxY))
}

// Kinds returns the kinds of the recorded operations, in order.
func (r *Recorder) Kinds() []string {
	kinds := make([]string, len(r.Ops))
	for i, op := range r.Ops {
		kinds[i] = op.Kind
	}
	return kinds
}

// Reset forgets the recorded operations.
func (r *Recorder) Reset() {
	r.Ops = nil
}
