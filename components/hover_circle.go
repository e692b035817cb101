package components

import (
	"github.com/OpticalFlyer/retain/event"
	"github.com/OpticalFlyer/retain/geom"
	"github.com/OpticalFlyer/retain/ui"
)

// HoverCircle draws the largest circle that fits in its viewport. The circle
// takes the hover color while a mouse is above it. Mouse events outside the
// circle are filtered out.
type HoverCircle struct {
	ui.ComponentBase
	base  ui.Color
	hover ui.Color
}

var _ ui.Component = (*HoverCircle)(nil)

func NewHoverCircle(base, hover ui.Color) *HoverCircle {
	return &HoverCircle{base: base, hover: hover}
}

func (h *HoverCircle) OnAttach(b ui.Buddy) {
	b.SubscribeMouseEnter()
	b.SubscribeMouseLeave()
}

// circle returns the circle for a viewport with the given aspect ratio. The
// radii differ in local coordinates unless the viewport is square.
func circle(aspectRatio float64) geom.OvalRegion {
	if aspectRatio <= 0 {
		aspectRatio = 1
	}
	radiusX := 0.5 / max(aspectRatio, 1)
	radiusY := 0.5 / max(1/aspectRatio, 1)
	return geom.NewOvalRegion(geom.Pt(0.5, 0.5), radiusX, radiusY)
}

func (h *HoverCircle) Render(r ui.Renderer, b ui.Buddy, force bool) (ui.RenderResult, error) {
	oval := circle(r.Viewport().AspectRatio())

	hovering := false
	for _, m := range b.LocalMice() {
		if p, ok := b.MousePosition(m); ok && oval.IsInside(p) {
			hovering = true
			break
		}
	}

	c := h.base
	if hovering {
		c = h.hover
	}
	r.FillOval(oval.Center, oval.RadiusX, oval.RadiusY, c)
	return ui.RenderResult{DrawnRegion: oval, FilterMouseActions: true}, nil
}

func (h *HoverCircle) OnMouseEnter(_ event.Enter, b ui.Buddy) {
	b.RequestRender()
}

func (h *HoverCircle) OnMouseLeave(_ event.Leave, b ui.Buddy) {
	b.RequestRender()
}
