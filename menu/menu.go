// Package menu provides SimpleFlatMenu, a container that places each child
// component in a fixed sub-domain of its own unit square.
package menu

import (
	"fmt"

	"github.com/OpticalFlyer/retain/event"
	"github.com/OpticalFlyer/retain/geom"
	"github.com/OpticalFlyer/retain/ui"
)

type entry struct {
	component ui.Component
	domain    geom.Domain
	buddy     *childBuddy
}

// SimpleFlatMenu is a container whose children live in fixed domains.
//
// Domains may overlap. Positional events go to the first child, in order of
// addition, whose domain contains the point. Children added with Add are
// attached at the start of the next event or render the menu receives.
type SimpleFlatMenu struct {
	entries []*entry
	pending []*entry

	buddy      ui.Buddy
	background *ui.Color
	rendering  bool
}

var _ ui.Component = (*SimpleFlatMenu)(nil)

// Option configures a SimpleFlatMenu.
type Option func(*SimpleFlatMenu)

// WithBackground makes the menu fill its domain with c wherever no child
// draws.
func WithBackground(c ui.Color) Option {
	return func(m *SimpleFlatMenu) {
		m.background = &c
	}
}

// New creates an empty menu.
func New(opts ...Option) *SimpleFlatMenu {
	m := &SimpleFlatMenu{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Add queues c to be attached in domain. It is safe to call from within
// event handlers of the menu's children.
func (m *SimpleFlatMenu) Add(c ui.Component, domain geom.Domain) {
	m.pending = append(m.pending, &entry{component: c, domain: domain})
}

// Len returns the number of attached children.
func (m *SimpleFlatMenu) Len() int {
	return len(m.entries)
}

// update attaches the queued children. Children queued while attaching are
// attached too.
func (m *SimpleFlatMenu) update() {
	for len(m.pending) > 0 {
		e := m.pending[0]
		m.pending = m.pending[1:]

		e.buddy = newChildBuddy(m.buddy, e.domain)
		e.buddy.Attach()
		e.component.OnAttach(e.buddy)
		m.entries = append(m.entries, e)
		m.propagate(e)
	}
}

// propagate forwards what changed in the buddy of e to the menu's buddy.
func (m *SimpleFlatMenu) propagate(e *entry) {
	if !e.buddy.HasChanges() {
		return
	}
	e.buddy.ClearChanges()
	if e.buddy.DidRequestRender() && !m.rendering {
		m.buddy.RequestRender()
	}
	if build, ok := e.buddy.TakeNextMenu(); ok {
		m.buddy.ChangeMenu(build)
	}
}

func (m *SimpleFlatMenu) OnAttach(b ui.Buddy) {
	m.buddy = b
	b.SubscribeMouseClick()
	b.SubscribeMouseClickOut()
	b.SubscribeMousePress()
	b.SubscribeMouseRelease()
	b.SubscribeMouseMove()
	b.SubscribeMouseEnter()
	b.SubscribeMouseLeave()
	b.SubscribeCharType()
	m.update()
}

// OnDetach detaches every attached child. Queued children are dropped
// without ever being attached.
func (m *SimpleFlatMenu) OnDetach(ui.Buddy) {
	for _, e := range m.entries {
		e.component.OnDetach(e.buddy)
		e.buddy.Detach()
	}
	m.entries = nil
	m.pending = nil
}

// hit returns the first child whose domain contains p, and p in the local
// coordinates of that child.
func (m *SimpleFlatMenu) hit(p geom.Point) (*entry, geom.Point) {
	for _, e := range m.entries {
		area := e.buddy.area()
		if !area.Empty() && area.IsInside(p) {
			return e, area.Transform(p)
		}
	}
	return nil, geom.Point{}
}

// accepts reports whether e may receive a positional event at local point p.
// Children that were never rendered receive none.
func accepts(e *entry, p geom.Point) bool {
	result, ok := e.buddy.LastRenderResult()
	return ok && result.Accepts(p)
}

// OnMouseClick delivers ev to the child that was hit and a click-out to every
// other child that subscribed to them. A hit child that filters the click out
// counts as missed.
func (m *SimpleFlatMenu) OnMouseClick(ev event.Click, _ ui.Buddy) {
	m.update()
	hit, local := m.hit(ev.Point)
	for _, e := range m.entries {
		subs := e.buddy.Subscriptions()
		missed := e != hit || !accepts(e, local)
		if !missed && subs.MouseClick {
			e.component.OnMouseClick(event.NewClick(ev.Mouse, local, ev.Button), e.buddy)
		} else if missed && subs.MouseClickOut {
			e.component.OnMouseClickOut(event.NewClickOut(ev.Mouse, ev.Button), e.buddy)
		} else {
			continue
		}
		m.propagate(e)
	}
}

// OnMouseClickOut forwards ev to every child that subscribed to it.
func (m *SimpleFlatMenu) OnMouseClickOut(ev event.ClickOut, _ ui.Buddy) {
	m.update()
	for _, e := range m.entries {
		if e.buddy.Subscriptions().MouseClickOut {
			e.component.OnMouseClickOut(ev, e.buddy)
			m.propagate(e)
		}
	}
}

func (m *SimpleFlatMenu) OnMousePress(ev event.Press, _ ui.Buddy) {
	m.update()
	hit, local := m.hit(ev.Point)
	if hit != nil && hit.buddy.Subscriptions().MousePress && accepts(hit, local) {
		hit.component.OnMousePress(event.NewPress(ev.Mouse, local, ev.Button), hit.buddy)
		m.propagate(hit)
	}
}

func (m *SimpleFlatMenu) OnMouseRelease(ev event.Release, _ ui.Buddy) {
	m.update()
	hit, local := m.hit(ev.Point)
	if hit != nil && hit.buddy.Subscriptions().MouseRelease && accepts(hit, local) {
		hit.component.OnMouseRelease(event.NewRelease(ev.Mouse, local, ev.Button), hit.buddy)
		m.propagate(hit)
	}
}

// OnMouseMove cuts ev against the last drawn region of every child and
// delivers the pieces as enter, move and leave events.
func (m *SimpleFlatMenu) OnMouseMove(ev event.Move, _ ui.Buddy) {
	m.update()
	for _, e := range m.entries {
		if !e.buddy.Subscriptions().AnyMouseMotion() {
			continue
		}
		result, ok := e.buddy.LastRenderResult()
		area := e.buddy.area()
		if !ok || area.Empty() {
			continue
		}
		local := event.NewMove(ev.Mouse, area.Transform(ev.From), area.Transform(ev.To))
		li := result.DrawnRegion.FindLineIntersection(local.From, local.To)
		ui.RouteMove(e.component, e.buddy, &e.buddy.BuddyCore, local, li)
		m.propagate(e)
	}
}

// hovered calls deliver for every child whose last drawn region contains p.
func (m *SimpleFlatMenu) hovered(p geom.Point, subscribed func(ui.Subscriptions) bool, deliver func(e *entry, local geom.Point)) {
	for _, e := range m.entries {
		result, ok := e.buddy.LastRenderResult()
		area := e.buddy.area()
		if !ok || area.Empty() || !area.IsInside(p) || !subscribed(e.buddy.Subscriptions()) {
			continue
		}
		local := area.Transform(p)
		if result.DrawnRegion.IsInside(local) {
			deliver(e, local)
			m.propagate(e)
		}
	}
}

func (m *SimpleFlatMenu) OnMouseEnter(ev event.Enter, _ ui.Buddy) {
	m.update()
	m.hovered(ev.Point, func(s ui.Subscriptions) bool { return s.MouseEnter }, func(e *entry, local geom.Point) {
		e.component.OnMouseEnter(event.NewEnter(ev.Mouse, local), e.buddy)
	})
}

func (m *SimpleFlatMenu) OnMouseLeave(ev event.Leave, _ ui.Buddy) {
	m.update()
	m.hovered(ev.Point, func(s ui.Subscriptions) bool { return s.MouseLeave }, func(e *entry, local geom.Point) {
		e.component.OnMouseLeave(event.NewLeave(ev.Mouse, local), e.buddy)
	})
}

func (m *SimpleFlatMenu) OnCharType(ev event.CharType, _ ui.Buddy) {
	m.update()
	for _, e := range m.entries {
		if e.buddy.Subscriptions().CharType {
			e.component.OnCharType(ev, e.buddy)
			m.propagate(e)
		}
	}
}

// Render renders the children that requested it, or all of them when force
// is set. The drawn region is the union of the drawn regions of the children,
// plus the whole domain when a background was painted.
func (m *SimpleFlatMenu) Render(r ui.Renderer, b ui.Buddy, force bool) (ui.RenderResult, error) {
	m.rendering = true
	defer func() { m.rendering = false }()
	m.update()

	region := r.Viewport()
	defer r.SetViewport(region)

	var parts []geom.DrawnRegion
	if force && m.background != nil {
		r.Clear(*m.background)
		parts = append(parts, geom.EntireRegion())
	}

	for i, e := range m.entries {
		area := e.buddy.area()
		if area.Empty() {
			continue
		}
		if force || e.buddy.DidRequestRender() {
			e.buddy.ClearRenderRequest()
			if childRegion, ok := region.ChildRegionOf(area); ok {
				r.SetViewport(childRegion)
				if !force && m.background != nil {
					r.Clear(*m.background)
				}
				result, err := e.component.Render(r, e.buddy, force)
				if err != nil {
					return ui.RenderResult{}, fmt.Errorf("render child %d: %w", i, err)
				}
				e.buddy.SetLastRenderResult(result)
			}
			m.propagate(e)
		}
		if result, ok := e.buddy.LastRenderResult(); ok {
			parts = append(parts, geom.NewDomainRegion(result.DrawnRegion, area))
		}
	}

	// Children that asked for another render while rendering get it at the
	// next opportunity.
	for _, e := range m.entries {
		if e.buddy.DidRequestRender() {
			b.RequestRender()
			break
		}
	}
	return ui.RenderResult{DrawnRegion: geom.NewCompositeRegion(parts...)}, nil
}
