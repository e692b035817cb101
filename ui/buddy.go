package ui

import (
	"fmt"

	"github.com/OpticalFlyer/retain/geom"
	"github.com/OpticalFlyer/retain/mouse"
)

// Subscriptions holds which events a component wants to receive.
type Subscriptions struct {
	MouseClick    bool
	MouseClickOut bool
	MousePress    bool
	MouseRelease  bool
	MouseMove     bool
	MouseEnter    bool
	MouseLeave    bool
	CharType      bool
}

// AnyMouseMotion reports whether at least one of move, enter and leave is
// subscribed.
func (s Subscriptions) AnyMouseMotion() bool {
	return s.MouseMove || s.MouseEnter || s.MouseLeave
}

type lifecycle uint8

const (
	unattached lifecycle = iota
	attached
	detached
)

// BuddyCore is the state shared by every buddy implementation. Containers
// embed it in their child buddies and use its exported accessors to drive
// their children.
type BuddyCore struct {
	subscriptions Subscriptions
	state         lifecycle

	requestedRender bool
	hasChanges      bool
	nextMenu        MenuBuilder

	lastResult RenderResult
	hasResult  bool

	usedArea geom.Domain
}

// NewBuddyCore returns a core that requests its first render.
func NewBuddyCore() BuddyCore {
	return BuddyCore{
		requestedRender: true,
		hasChanges:      true,
		usedArea:        geom.Full(),
	}
}

func (b *BuddyCore) MustBeAttached(method string) {
	switch b.state {
	case unattached:
		panic(fmt.Sprintf("ui: buddy.%s called before the component was attached", method))
	case detached:
		panic(fmt.Sprintf("ui: buddy.%s called after the component was detached", method))
	}
}

// Attach moves the buddy to the attached state. The owner calls it right
// before the component's OnAttach.
func (b *BuddyCore) Attach() {
	if b.state != unattached {
		panic("ui: buddy attached twice")
	}
	b.state = attached
}

// Detach moves the buddy to its terminal state. The owner calls it right
// after the component's OnDetach.
func (b *BuddyCore) Detach() {
	if b.state != attached {
		panic("ui: buddy detached while not attached")
	}
	b.state = detached
}

func (b *BuddyCore) IsAttached() bool {
	return b.state == attached
}

func (b *BuddyCore) ChangeMenu(build MenuBuilder) {
	b.MustBeAttached("ChangeMenu")
	if build == nil {
		panic("ui: ChangeMenu needs a builder")
	}
	b.nextMenu = build
	b.hasChanges = true
}

func (b *BuddyCore) RequestRender() {
	b.MustBeAttached("RequestRender")
	b.requestedRender = true
	b.hasChanges = true
}

func (b *BuddyCore) SetUsedArea(area geom.Domain) {
	b.MustBeAttached("SetUsedArea")
	if area != b.usedArea {
		b.usedArea = area
		b.requestedRender = true
		b.hasChanges = true
	}
}

// UsedArea returns the declared used area, the full domain by default.
func (b *BuddyCore) UsedArea() geom.Domain {
	return b.usedArea
}

func (b *BuddyCore) subscribe(flag *bool, value bool, method string) {
	b.MustBeAttached(method)
	if *flag != value {
		*flag = value
		b.hasChanges = true
	}
}

func (b *BuddyCore) SubscribeMouseClick() {
	b.subscribe(&b.subscriptions.MouseClick, true, "SubscribeMouseClick")
}

func (b *BuddyCore) UnsubscribeMouseClick() {
	b.subscribe(&b.subscriptions.MouseClick, false, "UnsubscribeMouseClick")
}

func (b *BuddyCore) SubscribeMouseClickOut() {
	b.subscribe(&b.subscriptions.MouseClickOut, true, "SubscribeMouseClickOut")
}

func (b *BuddyCore) UnsubscribeMouseClickOut() {
	b.subscribe(&b.subscriptions.MouseClickOut, false, "UnsubscribeMouseClickOut")
}

func (b *BuddyCore) SubscribeMousePress() {
	b.subscribe(&b.subscriptions.MousePress, true, "SubscribeMousePress")
}

func (b *BuddyCore) UnsubscribeMousePress() {
	b.subscribe(&b.subscriptions.MousePress, false, "UnsubscribeMousePress")
}

func (b *BuddyCore) SubscribeMouseRelease() {
	b.subscribe(&b.subscriptions.MouseRelease, true, "SubscribeMouseRelease")
}

func (b *BuddyCore) UnsubscribeMouseRelease() {
	b.subscribe(&b.subscriptions.MouseRelease, false, "UnsubscribeMouseRelease")
}

func (b *BuddyCore) SubscribeMouseMove() {
	b.subscribe(&b.subscriptions.MouseMove, true, "SubscribeMouseMove")
}

func (b *BuddyCore) UnsubscribeMouseMove() {
	b.subscribe(&b.subscriptions.MouseMove, false, "UnsubscribeMouseMove")
}

func (b *BuddyCore) SubscribeMouseEnter() {
	b.subscribe(&b.subscriptions.MouseEnter, true, "SubscribeMouseEnter")
}

func (b *BuddyCore) UnsubscribeMouseEnter() {
	b.subscribe(&b.subscriptions.MouseEnter, false, "UnsubscribeMouseEnter")
}

func (b *BuddyCore) SubscribeMouseLeave() {
	b.subscribe(&b.subscriptions.MouseLeave, true, "SubscribeMouseLeave")
}

func (b *BuddyCore) UnsubscribeMouseLeave() {
	b.subscribe(&b.subscriptions.MouseLeave, false, "UnsubscribeMouseLeave")
}

func (b *BuddyCore) SubscribeCharType() {
	b.subscribe(&b.subscriptions.CharType, true, "SubscribeCharType")
}

func (b *BuddyCore) UnsubscribeCharType() {
	b.subscribe(&b.subscriptions.CharType, false, "UnsubscribeCharType")
}

// Subscriptions returns a copy of the current subscription flags.
func (b *BuddyCore) Subscriptions() Subscriptions {
	return b.subscriptions
}

func (b *BuddyCore) DidRequestRender() bool {
	return b.requestedRender
}

// ClearRenderRequest is called by the owner right before Render.
func (b *BuddyCore) ClearRenderRequest() {
	b.requestedRender = false
}

// HasChanges reports whether anything changed since ClearChanges.
func (b *BuddyCore) HasChanges() bool {
	return b.hasChanges
}

func (b *BuddyCore) ClearChanges() {
	b.hasChanges = false
}

// LastRenderResult returns the result of the previous Render, if any.
func (b *BuddyCore) LastRenderResult() (RenderResult, bool) {
	return b.lastResult, b.hasResult
}

func (b *BuddyCore) SetLastRenderResult(result RenderResult) {
	if result.DrawnRegion == nil {
		panic("ui: render result without a drawn region")
	}
	b.lastResult = result
	b.hasResult = true
}

func (b *BuddyCore) HasNextMenu() bool {
	return b.nextMenu != nil
}

// TakeNextMenu returns the pending menu builder and clears it.
func (b *BuddyCore) TakeNextMenu() (MenuBuilder, bool) {
	build := b.nextMenu
	b.nextMenu = nil
	return build, build != nil
}

// Accepts reports whether a mouse event at local point p passes the filter
// of the last render result. A component that never rendered accepts
// nothing.
func (b *BuddyCore) Accepts(p geom.Point) bool {
	return b.hasResult && b.lastResult.Accepts(p)
}

// ButtonDown answers IsMouseButtonDown for a mouse in the given local state.
func (b *BuddyCore) ButtonDown(local geom.Point, buttons mouse.PressedButtons, known bool, button mouse.Button) (down, ok bool) {
	if !known || !b.Accepts(local) {
		return false, false
	}
	return buttons.IsPressed(button), true
}

// LocalMice filters mice down to those that buddy places inside its domain and
// that pass the render filter of core.
func LocalMice(buddy Buddy, core *BuddyCore, mice []mouse.Mouse) []mouse.Mouse {
	var local []mouse.Mouse
	for _, m := range mice {
		if p, ok := buddy.MousePosition(m); ok && core.Accepts(p) {
			local = append(local, m)
		}
	}
	return local
}
