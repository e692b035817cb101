package ui

import (
	"github.com/OpticalFlyer/retain/geom"
	"github.com/OpticalFlyer/retain/mouse"
)

// RootBuddy is the buddy of the component owned by an Application. Root-local
// coordinates are only transformed by the used area.
type RootBuddy struct {
	BuddyCore
	store *mouse.Store
}

var _ Buddy = (*RootBuddy)(nil)

// NewRootBuddy creates a root buddy reading mice from store.
func NewRootBuddy(store *mouse.Store) *RootBuddy {
	return &RootBuddy{BuddyCore: NewBuddyCore(), store: store}
}

func (b *RootBuddy) MousePosition(m mouse.Mouse) (geom.Point, bool) {
	b.MustBeAttached("MousePosition")
	state, ok := b.store.Get(m)
	if !ok || !b.usedArea.IsInside(state.Position) {
		return geom.Point{}, false
	}
	return b.usedArea.Transform(state.Position), true
}

func (b *RootBuddy) MouseState(m mouse.Mouse) (geom.Point, mouse.PressedButtons, bool) {
	b.MustBeAttached("MouseState")
	state, ok := b.store.Get(m)
	if !ok {
		return geom.Point{}, mouse.PressedButtons{}, false
	}
	return b.usedArea.Transform(state.Position), state.Buttons, true
}

func (b *RootBuddy) IsMouseButtonDown(m mouse.Mouse, button mouse.Button) (bool, bool) {
	b.MustBeAttached("IsMouseButtonDown")
	local, buttons, known := b.MouseState(m)
	return b.ButtonDown(local, buttons, known, button)
}

func (b *RootBuddy) IsPrimaryMouseButtonDown(m mouse.Mouse) (bool, bool) {
	return b.IsMouseButtonDown(m, mouse.Primary)
}

func (b *RootBuddy) LocalMice() []mouse.Mouse {
	b.MustBeAttached("LocalMice")
	return LocalMice(b, &b.BuddyCore, b.store.Mice())
}

func (b *RootBuddy) AllMice() []mouse.Mouse {
	b.MustBeAttached("AllMice")
	return b.store.Mice()
}
