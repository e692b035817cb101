// Package components contains ready-made leaf components.
package components

import (
	"github.com/OpticalFlyer/retain/ui"
)

// FlatColor fills its whole domain with a single color.
type FlatColor struct {
	ui.ComponentBase
	color ui.Color
	buddy ui.Buddy
}

var _ ui.Component = (*FlatColor)(nil)

func NewFlatColor(c ui.Color) *FlatColor {
	return &FlatColor{color: c}
}

func (f *FlatColor) Color() ui.Color {
	return f.color
}

// SetColor changes the color and asks for a render when attached.
func (f *FlatColor) SetColor(c ui.Color) {
	if c == f.color {
		return
	}
	f.color = c
	if f.buddy != nil {
		f.buddy.RequestRender()
	}
}

func (f *FlatColor) OnAttach(b ui.Buddy) {
	f.buddy = b
}

func (f *FlatColor) OnDetach(ui.Buddy) {
	f.buddy = nil
}

func (f *FlatColor) Render(r ui.Renderer, _ ui.Buddy, _ bool) (ui.RenderResult, error) {
	r.Clear(f.color)
	return ui.EntireResult(), nil
}
