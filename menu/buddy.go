package menu

import (
	"github.com/OpticalFlyer/retain/geom"
	"github.com/OpticalFlyer/retain/mouse"
	"github.com/OpticalFlyer/retain/ui"
)

// childBuddy is the buddy the menu gives to each of its children. Mouse
// queries are answered through the menu's own buddy, so menus can be nested.
type childBuddy struct {
	ui.BuddyCore
	parent ui.Buddy
	domain geom.Domain
}

var _ ui.Buddy = (*childBuddy)(nil)

func newChildBuddy(parent ui.Buddy, domain geom.Domain) *childBuddy {
	return &childBuddy{BuddyCore: ui.NewBuddyCore(), parent: parent, domain: domain}
}

// area is the part of the menu covered by the child: its domain narrowed to
// the used area it declared.
func (b *childBuddy) area() geom.Domain {
	return b.domain.Child(b.UsedArea())
}

func (b *childBuddy) MousePosition(m mouse.Mouse) (geom.Point, bool) {
	b.MustBeAttached("MousePosition")
	p, ok := b.parent.MousePosition(m)
	area := b.area()
	if !ok || area.Empty() || !area.IsInside(p) {
		return geom.Point{}, false
	}
	return area.Transform(p), true
}

func (b *childBuddy) MouseState(m mouse.Mouse) (geom.Point, mouse.PressedButtons, bool) {
	b.MustBeAttached("MouseState")
	p, buttons, ok := b.parent.MouseState(m)
	area := b.area()
	if !ok || area.Empty() {
		return geom.Point{}, buttons, ok
	}
	return area.Transform(p), buttons, true
}

func (b *childBuddy) IsMouseButtonDown(m mouse.Mouse, button mouse.Button) (bool, bool) {
	b.MustBeAttached("IsMouseButtonDown")
	local, buttons, known := b.MouseState(m)
	return b.ButtonDown(local, buttons, known, button)
}

func (b *childBuddy) IsPrimaryMouseButtonDown(m mouse.Mouse) (bool, bool) {
	return b.IsMouseButtonDown(m, mouse.Primary)
}

func (b *childBuddy) LocalMice() []mouse.Mouse {
	b.MustBeAttached("LocalMice")
	return ui.LocalMice(b, &b.BuddyCore, b.parent.AllMice())
}

func (b *childBuddy) AllMice() []mouse.Mouse {
	b.MustBeAttached("AllMice")
	return b.parent.AllMice()
}
