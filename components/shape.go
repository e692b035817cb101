package components

import (
	"fmt"

	"github.com/OpticalFlyer/retain/event"
	"github.com/OpticalFlyer/retain/geom"
	"github.com/OpticalFlyer/retain/ui"
)

// Shape fills a set of polygons given in local coordinates. Mouse events
// outside the polygons are filtered out, and the polygons take the hover
// color while a mouse is above them.
type Shape struct {
	ui.ComponentBase
	polygons   [][]geom.Point
	region     geom.DrawnRegion
	base       ui.Color
	hover      ui.Color
	background *ui.Color
}

var _ ui.Component = (*Shape)(nil)

// NewShape creates a shape. Polygons with fewer than three points are
// ignored.
func NewShape(polygons [][]geom.Point, base, hover ui.Color) *Shape {
	s := &Shape{base: base, hover: hover}
	var parts []geom.DrawnRegion
	for _, polygon := range polygons {
		if len(polygon) < 3 {
			continue
		}
		s.polygons = append(s.polygons, polygon)
		parts = append(parts, geom.NewPolygonRegion(polygon))
	}
	s.region = geom.NewCompositeRegion(parts...)
	return s
}

// WithBackground makes the shape clear its domain with c before drawing.
func (s *Shape) WithBackground(c ui.Color) *Shape {
	s.background = &c
	return s
}

func (s *Shape) OnAttach(b ui.Buddy) {
	b.SubscribeMouseEnter()
	b.SubscribeMouseLeave()
}

func (s *Shape) Render(r ui.Renderer, b ui.Buddy, _ bool) (ui.RenderResult, error) {
	if s.background != nil {
		r.Clear(*s.background)
	}
	c := s.base
	if len(b.LocalMice()) > 0 {
		c = s.hover
	}
	for i, polygon := range s.polygons {
		if err := r.FillPolygon(polygon, c); err != nil {
			return ui.RenderResult{}, fmt.Errorf("fill polygon %d: %w", i, err)
		}
	}

	region := s.region
	if s.background != nil {
		region = geom.EntireRegion()
	}
	return ui.RenderResult{DrawnRegion: region, FilterMouseActions: true}, nil
}

func (s *Shape) OnMouseEnter(_ event.Enter, b ui.Buddy) {
	b.RequestRender()
}

func (s *Shape) OnMouseLeave(_ event.Leave, b ui.Buddy) {
	b.RequestRender()
}
