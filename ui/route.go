package ui

import (
	"github.com/OpticalFlyer/retain/event"
	"github.com/OpticalFlyer/retain/geom"
)

// RouteMove delivers ev to c as a sequence of enter, move and leave events
// according to how the segment crosses the component's drawn region. ev and
// li are in the component's local coordinates. Pieces of zero length are not
// delivered, and subscriptions are checked again before every call since a
// handler may change them.
func RouteMove(c Component, buddy Buddy, core *BuddyCore, ev event.Move, li geom.LineIntersection) {
	enter := func(p geom.Point) {
		if core.subscriptions.MouseEnter {
			c.OnMouseEnter(event.NewEnter(ev.Mouse, p), buddy)
		}
	}
	move := func(from, to geom.Point) {
		if core.subscriptions.MouseMove && from != to {
			c.OnMouseMove(event.NewMove(ev.Mouse, from, to), buddy)
		}
	}
	leave := func(p geom.Point) {
		if core.subscriptions.MouseLeave {
			c.OnMouseLeave(event.NewLeave(ev.Mouse, p), buddy)
		}
	}

	switch li.Kind {
	case geom.FullyInside:
		if core.subscriptions.MouseMove {
			c.OnMouseMove(ev, buddy)
		}
	case geom.Enters:
		enter(li.Entrance)
		move(li.Entrance, ev.To)
	case geom.Exits:
		move(ev.From, li.Exit)
		leave(li.Exit)
	case geom.Crosses:
		enter(li.Entrance)
		move(li.Entrance, li.Exit)
		leave(li.Exit)
	}
}
