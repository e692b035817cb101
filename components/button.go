package components

import (
	"github.com/OpticalFlyer/retain/event"
	"github.com/OpticalFlyer/retain/mouse"
	"github.com/OpticalFlyer/retain/text"
	"github.com/OpticalFlyer/retain/ui"
)

// ButtonStyle holds the colors of a Button.
type ButtonStyle struct {
	Base    ui.Color
	Hover   ui.Color
	Pressed ui.Color
	Text    ui.Color
	Border  ui.Color

	// BorderWidth is the width of the border in pixels. Zero means no
	// border.
	BorderWidth int
}

// DefaultButtonStyle is a grey button with a black border.
var DefaultButtonStyle = ButtonStyle{
	Base:        ui.RGB(150, 150, 150),
	Hover:       ui.RGB(180, 180, 180),
	Pressed:     ui.RGB(100, 100, 100),
	Text:        ui.RGB(0, 0, 0),
	Border:      ui.RGB(0, 0, 0),
	BorderWidth: 1,
}

// Button fills its domain and calls onClick when clicked with the primary
// button.
type Button struct {
	ui.ComponentBase
	style   ButtonStyle
	label   *text.Label
	onClick func(b ui.Buddy)

	// State
	isPressed bool
}

var _ ui.Component = (*Button)(nil)

// NewButton creates a button. label may be nil for a button without text.
func NewButton(style ButtonStyle, label *text.Label, onClick func(b ui.Buddy)) *Button {
	return &Button{style: style, label: label, onClick: onClick}
}

func (b *Button) OnAttach(buddy ui.Buddy) {
	buddy.SubscribeMouseClick()
	buddy.SubscribeMousePress()
	buddy.SubscribeMouseRelease()
	buddy.SubscribeMouseEnter()
	buddy.SubscribeMouseLeave()
	if b.label != nil {
		b.label.OnAttach(buddy)
	}
}

func (b *Button) OnDetach(buddy ui.Buddy) {
	if b.label != nil {
		b.label.OnDetach(buddy)
	}
}

func (b *Button) background(buddy ui.Buddy) ui.Color {
	if b.isPressed {
		return b.style.Pressed
	}
	if len(buddy.LocalMice()) > 0 {
		return b.style.Hover
	}
	return b.style.Base
}

func (b *Button) Render(r ui.Renderer, buddy ui.Buddy, force bool) (ui.RenderResult, error) {
	bgColor := b.background(buddy)
	if b.label != nil {
		b.label.SetColors(b.style.Text, bgColor)
		if _, err := b.label.Render(r, buddy, force); err != nil {
			return ui.RenderResult{}, err
		}
	} else {
		r.Clear(bgColor)
	}

	// Draw border
	if width := b.style.BorderWidth; width > 0 {
		viewport := r.Viewport()
		if viewport.Width > 0 && viewport.Height > 0 {
			bx := min(0.5, float64(width)/float64(viewport.Width))
			by := min(0.5, float64(width)/float64(viewport.Height))
			r.FillRect(0, 0, 1, by, b.style.Border)
			r.FillRect(0, 1-by, 1, 1, b.style.Border)
			r.FillRect(0, 0, bx, 1, b.style.Border)
			r.FillRect(1-bx, 0, 1, 1, b.style.Border)
		}
	}
	return ui.EntireResult(), nil
}

func (b *Button) OnMouseClick(ev event.Click, buddy ui.Buddy) {
	if ev.Button.IsPrimary() && b.onClick != nil {
		b.onClick(buddy)
	}
}

func (b *Button) OnMousePress(ev event.Press, buddy ui.Buddy) {
	if ev.Button.IsPrimary() && !b.isPressed {
		b.isPressed = true
		buddy.RequestRender()
	}
}

func (b *Button) OnMouseRelease(ev event.Release, buddy ui.Buddy) {
	if ev.Button.IsPrimary() && b.isPressed {
		b.isPressed = false
		buddy.RequestRender()
	}
}

func (b *Button) OnMouseEnter(_ event.Enter, buddy ui.Buddy) {
	buddy.RequestRender()
}

// OnMouseLeave releases the button when the last pressing mouse leaves.
func (b *Button) OnMouseLeave(ev event.Leave, buddy ui.Buddy) {
	if b.isPressed && !b.pressedByOther(ev.Mouse, buddy) {
		b.isPressed = false
	}
	buddy.RequestRender()
}

func (b *Button) pressedByOther(leaving mouse.Mouse, buddy ui.Buddy) bool {
	for _, m := range buddy.LocalMice() {
		if m == leaving {
			continue
		}
		if down, ok := buddy.IsPrimaryMouseButtonDown(m); ok && down {
			return true
		}
	}
	return false
}
