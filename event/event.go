// Package event defines the input events that are routed to components.
// Points are always expressed in the local coordinates of the component that
// receives the event.
package event

import (
	"fmt"

	"github.com/OpticalFlyer/retain/geom"
	"github.com/OpticalFlyer/retain/mouse"
)

// Click means that a mouse button was clicked on the component.
type Click struct {
	Mouse  mouse.Mouse
	Point  geom.Point
	Button mouse.Button
}

func NewClick(m mouse.Mouse, point geom.Point, button mouse.Button) Click {
	return Click{Mouse: m, Point: point, Button: button}
}

func (ev Click) String() string {
	return fmt.Sprintf("Click{%v, %v, %v}", ev.Mouse, ev.Point, ev.Button)
}

// ClickOut means that a mouse button was clicked somewhere, but not on the
// component. It carries no position.
type ClickOut struct {
	Mouse  mouse.Mouse
	Button mouse.Button
}

func NewClickOut(m mouse.Mouse, button mouse.Button) ClickOut {
	return ClickOut{Mouse: m, Button: button}
}

func (ev ClickOut) String() string {
	return fmt.Sprintf("ClickOut{%v, %v}", ev.Mouse, ev.Button)
}

// Press means that a mouse button went down on the component.
type Press struct {
	Mouse  mouse.Mouse
	Point  geom.Point
	Button mouse.Button
}

func NewPress(m mouse.Mouse, point geom.Point, button mouse.Button) Press {
	return Press{Mouse: m, Point: point, Button: button}
}

func (ev Press) String() string {
	return fmt.Sprintf("Press{%v, %v, %v}", ev.Mouse, ev.Point, ev.Button)
}

// Release means that a mouse button went up on the component. A quick
// press-release pair is followed by a Click.
type Release struct {
	Mouse  mouse.Mouse
	Point  geom.Point
	Button mouse.Button
}

func NewRelease(m mouse.Mouse, point geom.Point, button mouse.Button) Release {
	return Release{Mouse: m, Point: point, Button: button}
}

func (ev Release) String() string {
	return fmt.Sprintf("Release{%v, %v, %v}", ev.Mouse, ev.Point, ev.Button)
}

// Move means that a mouse moved from From to To, both of which are on the
// component. A move that leaves the component is cut at the exit point and
// followed by a Leave; a move that enters it starts at the entrance point and
// is preceded by an Enter.
type Move struct {
	Mouse mouse.Mouse
	From  geom.Point
	To    geom.Point
}

func NewMove(m mouse.Mouse, from, to geom.Point) Move {
	return Move{Mouse: m, From: from, To: to}
}

func (ev Move) DeltaX() float64 {
	return ev.To.X - ev.From.X
}

func (ev Move) DeltaY() float64 {
	return ev.To.Y - ev.From.Y
}

func (ev Move) String() string {
	return fmt.Sprintf("Move{%v, %v -> %v}", ev.Mouse, ev.From, ev.To)
}

// Enter means that a mouse started hovering over the component at Point. For
// a real mouse Point lies on the border; a finger may land anywhere.
type Enter struct {
	Mouse mouse.Mouse
	Point geom.Point
}

func NewEnter(m mouse.Mouse, point geom.Point) Enter {
	return Enter{Mouse: m, Point: point}
}

func (ev Enter) String() string {
	return fmt.Sprintf("Enter{%v, %v}", ev.Mouse, ev.Point)
}

// Leave means that a mouse stopped hovering over the component at Point.
type Leave struct {
	Mouse mouse.Mouse
	Point geom.Point
}

func NewLeave(m mouse.Mouse, point geom.Point) Leave {
	return Leave{Mouse: m, Point: point}
}

func (ev Leave) String() string {
	return fmt.Sprintf("Leave{%v, %v}", ev.Mouse, ev.Point)
}

// CharType carries text the user typed. It is not tied to a position.
type CharType struct {
	Text string
}

func (ev CharType) String() string {
	return fmt.Sprintf("CharType{%q}", ev.Text)
}
