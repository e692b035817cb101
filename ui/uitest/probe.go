// Package uitest provides a recording component and a recording renderer for
// testing code built on package ui.
package uitest

import (
	"fmt"

	"github.com/OpticalFlyer/retain/event"
	"github.com/OpticalFlyer/retain/ui"
)

// Probe is a component that records every call it receives. It subscribes
// to the events in Subscribe when attached and reports Result when rendered.
type Probe struct {
	Name      string
	Subscribe ui.Subscriptions
	Result    ui.RenderResult
	Err       error

	// Log receives one line per call. Several probes may share a log to
	// check the order of calls across components.
	Log *[]string

	// Hooks run after the call was logged.
	OnAttachFunc func(b ui.Buddy)
	OnRenderFunc func(r ui.Renderer, b ui.Buddy, force bool)
	OnClickFunc  func(ev event.Click, b ui.Buddy)
	OnEnterFunc  func(ev event.Enter, b ui.Buddy)
	OnLeaveFunc  func(ev event.Leave, b ui.Buddy)

	Attaches int
	Detaches int
	Renders  int

	Clicks    []event.Click
	ClickOuts []event.ClickOut
	Presses   []event.Press
	Releases  []event.Release
	Moves     []event.Move
	Enters    []event.Enter
	Leaves    []event.Leave
	Chars     []event.CharType
}

var _ ui.Component = (*Probe)(nil)

// NewProbe returns a probe named name that subscribes to subs and draws its
// entire domain.
func NewProbe(name string, subs ui.Subscriptions) *Probe {
	return &Probe{Name: name, Subscribe: subs, Result: ui.EntireResult(), Log: new([]string)}
}

func (p *Probe) record(format string, args ...any) {
	if p.Log != nil {
		*p.Log = append(*p.Log, p.Name+": "+fmt.Sprintf(format, args...))
	}
}

// Apply makes b match subs.
func Apply(b ui.Buddy, subs ui.Subscriptions) {
	toggle := func(on bool, subscribe, unsubscribe func()) {
		if on {
			subscribe()
		} else {
			unsubscribe()
		}
	}
	toggle(subs.MouseClick, b.SubscribeMouseClick, b.UnsubscribeMouseClick)
	toggle(subs.MouseClickOut, b.SubscribeMouseClickOut, b.UnsubscribeMouseClickOut)
	toggle(subs.MousePress, b.SubscribeMousePress, b.UnsubscribeMousePress)
	toggle(subs.MouseRelease, b.SubscribeMouseRelease, b.UnsubscribeMouseRelease)
	toggle(subs.MouseMove, b.SubscribeMouseMove, b.UnsubscribeMouseMove)
	toggle(subs.MouseEnter, b.SubscribeMouseEnter, b.UnsubscribeMouseEnter)
	toggle(subs.MouseLeave, b.SubscribeMouseLeave, b.UnsubscribeMouseLeave)
	toggle(subs.CharType, b.SubscribeCharType, b.UnsubscribeCharType)
}

func (p *Probe) OnAttach(b ui.Buddy) {
	p.Attaches++
	p.record("attach")
	Apply(b, p.Subscribe)
	if p.OnAttachFunc != nil {
		p.OnAttachFunc(b)
	}
}

func (p *Probe) OnDetach(ui.Buddy) {
	p.Detaches++
	p.record("detach")
}

func (p *Probe) Render(r ui.Renderer, b ui.Buddy, force bool) (ui.RenderResult, error) {
	p.Renders++
	p.record("render force=%t", force)
	if p.OnRenderFunc != nil {
		p.OnRenderFunc(r, b, force)
	}
	if p.Err != nil {
		return ui.RenderResult{}, p.Err
	}
	return p.Result, nil
}

func (p *Probe) OnMouseClick(ev event.Click, b ui.Buddy) {
	p.Clicks = append(p.Clicks, ev)
	p.record("%v", ev)
	if p.OnClickFunc != nil {
		p.OnClickFunc(ev, b)
	}
}

func (p *Probe) OnMouseClickOut(ev event.ClickOut, _ ui.Buddy) {
	p.ClickOuts = append(p.ClickOuts, ev)
	p.record("%v", ev)
}

func (p *Probe) OnMousePress(ev event.Press, _ ui.Buddy) {
	p.Presses = append(p.Presses, ev)
	p.record("%v", ev)
}

func (p *Probe) OnMouseRelease(ev event.Release, _ ui.Buddy) {
	p.Releases = append(p.Releases, ev)
	p.record("%v", ev)
}

func (p *Probe) OnMouseMove(ev event.Move, _ ui.Buddy) {
	p.Moves = append(p.Moves, ev)
	p.record("%v", ev)
}

func (p *Probe) OnMouseEnter(ev event.Enter, b ui.Buddy) {
	p.Enters = append(p.Enters, ev)
	p.record("%v", ev)
	if p.OnEnterFunc != nil {
		p.OnEnterFunc(ev, b)
	}
}

func (p *Probe) OnMouseLeave(ev event.Leave, b ui.Buddy) {
	p.Leaves = append(p.Leaves, ev)
	p.record("%v", ev)
	if p.OnLeaveFunc != nil {
		p.OnLeaveFunc(ev, b)
	}
}

func (p *Probe) OnCharType(ev event.CharType, _ ui.Buddy) {
	p.Chars = append(p.Chars, ev)
	p.record("%v", ev)
}
