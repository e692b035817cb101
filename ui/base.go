package ui

import (
	"fmt"

	"github.com/OpticalFlyer/retain/event"
)

// ComponentBase can be embedded by components that only handle some events.
// Its handlers panic, since they are only reachable when a component
// subscribed to an event it does not handle.
type ComponentBase struct{}

func unhandled(name string) {
	panic(fmt.Sprintf("ui: component is subscribed to %s events but does not handle them", name))
}

func (ComponentBase) OnDetach(Buddy) {}

func (ComponentBase) OnMouseClick(event.Click, Buddy)       { unhandled("mouse click") }
func (ComponentBase) OnMouseClickOut(event.ClickOut, Buddy) { unhandled("mouse click out") }
func (ComponentBase) OnMousePress(event.Press, Buddy)       { unhandled("mouse press") }
func (ComponentBase) OnMouseRelease(event.Release, Buddy)   { unhandled("mouse release") }
func (ComponentBase) OnMouseMove(event.Move, Buddy)         { unhandled("mouse move") }
func (ComponentBase) OnMouseEnter(event.Enter, Buddy)       { unhandled("mouse enter") }
func (ComponentBase) OnMouseLeave(event.Leave, Buddy)       { unhandled("mouse leave") }
func (ComponentBase) OnCharType(event.CharType, Buddy)      { unhandled("char type") }
