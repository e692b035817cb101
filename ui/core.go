package ui

import (
	"image"

	"github.com/OpticalFlyer/retain/event"
	"github.com/OpticalFlyer/retain/geom"
	"github.com/OpticalFlyer/retain/mouse"
)

// Component is the basic building block of the UI system. Components are
// event handlers that draw themselves when asked to.
//
// OnAttach is called exactly once before any other method and OnDetach exactly
// once after the last one. Every method receives the component's Buddy. An
// event handler is only called while the buddy is subscribed to its event.
type Component interface {
	OnAttach(buddy Buddy)
	OnDetach(buddy Buddy)

	// Render draws the component inside the current viewport of r. force
	// means that the previous pixels can not be trusted.
	Render(r Renderer, buddy Buddy, force bool) (RenderResult, error)

	OnMouseClick(ev event.Click, buddy Buddy)
	OnMouseClickOut(ev event.ClickOut, buddy Buddy)
	OnMousePress(ev event.Press, buddy Buddy)
	OnMouseRelease(ev event.Release, buddy Buddy)
	OnMouseMove(ev event.Move, buddy Buddy)
	OnMouseEnter(ev event.Enter, buddy Buddy)
	OnMouseLeave(ev event.Leave, buddy Buddy)
	OnCharType(ev event.CharType, buddy Buddy)
}

// MenuBuilder creates the component that replaces current. It receives
// ownership of current, which is already detached.
type MenuBuilder func(current Component) Component

// Buddy mediates between a component and its parent (a container, or the
// Application for the root component).
type Buddy interface {
	// ChangeMenu asks the parent to replace the menu this component lives in
	// by the result of build. Only the last request before the swap counts.
	ChangeMenu(build MenuBuilder)

	// RequestRender asks for Render to be called at the next opportunity.
	RequestRender()

	// SetUsedArea declares the part of the component's domain it uses.
	// Events and the viewport are restricted to it.
	SetUsedArea(area geom.Domain)

	SubscribeMouseClick()
	UnsubscribeMouseClick()
	SubscribeMouseClickOut()
	UnsubscribeMouseClickOut()
	SubscribeMousePress()
	UnsubscribeMousePress()
	SubscribeMouseRelease()
	UnsubscribeMouseRelease()
	SubscribeMouseMove()
	UnsubscribeMouseMove()
	SubscribeMouseEnter()
	UnsubscribeMouseEnter()
	SubscribeMouseLeave()
	UnsubscribeMouseLeave()
	SubscribeCharType()
	UnsubscribeCharType()

	// MousePosition returns the position of m in local coordinates when m
	// hovers over the component's domain.
	MousePosition(m mouse.Mouse) (geom.Point, bool)

	// MouseState returns the local position and pressed buttons of m, even
	// when m is outside the component. ok is false for unknown mice.
	MouseState(m mouse.Mouse) (local geom.Point, buttons mouse.PressedButtons, ok bool)

	// IsMouseButtonDown reports whether button of m is down. ok is false when
	// m is unknown, before the component's first render, or when the
	// component filters mouse actions and m is outside its drawn region.
	IsMouseButtonDown(m mouse.Mouse, button mouse.Button) (down, ok bool)

	IsPrimaryMouseButtonDown(m mouse.Mouse) (down, ok bool)

	// LocalMice returns the mice hovering over the component.
	LocalMice() []mouse.Mouse

	// AllMice returns every mouse inside the window.
	AllMice() []mouse.Mouse
}

// RenderResult is what a component reports after rendering.
type RenderResult struct {
	// DrawnRegion is the area that was painted, in local coordinates.
	DrawnRegion geom.DrawnRegion

	// FilterMouseActions makes the parent ignore mouse events outside
	// DrawnRegion.
	FilterMouseActions bool
}

// EntireResult is the result of a component that painted its whole domain and
// accepts mouse events everywhere.
func EntireResult() RenderResult {
	return RenderResult{DrawnRegion: geom.EntireRegion()}
}

// Accepts reports whether a mouse event at local point p may be delivered.
func (r RenderResult) Accepts(p geom.Point) bool {
	return !r.FilterMouseActions || r.DrawnRegion.IsInside(p)
}

// Renderer is the drawing back-end. Drawing coordinates are relative to the
// current viewport: (0, 0) is its bottom-left corner and (1, 1) its top-right
// corner.
type Renderer interface {
	Viewport() geom.RenderRegion

	// SetViewport moves the viewport and the scissor to region.
	SetViewport(region geom.RenderRegion)

	// Clear fills the entire viewport with c.
	Clear(c Color)

	FillRect(minX, minY, maxX, maxY float64, c Color)
	FillOval(center geom.Point, radiusX, radiusY float64, c Color)
	FillPolygon(points []geom.Point, c Color) error
	DrawImage(img image.Image, minX, minY, maxX, maxY float64)
}
