package ui

import (
	"fmt"
	"log/slog"

	"github.com/OpticalFlyer/retain/event"
	"github.com/OpticalFlyer/retain/geom"
	"github.com/OpticalFlyer/retain/mouse"
)

// Application owns the root component and turns host input into events for
// it. Points passed to the Fire methods are in root-local coordinates: (0, 0)
// is the bottom-left corner of the render region and (1, 1) the top-right.
//
// An Application must be driven from a single goroutine.
type Application struct {
	root   Component
	buddy  *RootBuddy
	store  *mouse.Store
	logger *slog.Logger

	// forceNext is set when the pixels on screen do not belong to the
	// current root, so its next render must be forced.
	forceNext    bool
	renderedArea geom.Domain
	closed       bool
}

// Option configures an Application.
type Option func(*Application)

// WithLogger sets the logger, slog.Default() otherwise.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Application) {
		a.logger = logger
	}
}

// WithMouseStore makes the Application track mice in store.
func WithMouseStore(store *mouse.Store) Option {
	return func(a *Application) {
		a.store = store
	}
}

// NewApplication creates an Application and attaches root.
func NewApplication(root Component, opts ...Option) *Application {
	a := &Application{
		root:   root,
		store:  mouse.NewStore(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.buddy = NewRootBuddy(a.store)
	a.attach()
	a.afterEvent()
	return a
}

func (a *Application) attach() {
	a.buddy.Attach()
	a.root.OnAttach(a.buddy)
	a.forceNext = true
}

func (a *Application) mustBeOpen(method string) {
	if a.closed {
		panic(fmt.Sprintf("ui: Application.%s called after Close", method))
	}
}

// afterEvent replaces the root component for as long as a menu change is
// pending.
func (a *Application) afterEvent() {
	for {
		build, ok := a.buddy.TakeNextMenu()
		if !ok {
			return
		}
		old := a.root
		old.OnDetach(a.buddy)
		a.buddy.Detach()

		a.root = build(old)
		if a.root == nil {
			panic("ui: menu builder returned nil")
		}
		a.buddy = NewRootBuddy(a.store)
		a.logger.Debug("replaced root component",
			"old", fmt.Sprintf("%T", old), "new", fmt.Sprintf("%T", a.root))
		a.attach()
	}
}

// locate maps p to root-local coordinates. ok is false when p is outside the
// used area or filtered out by the last render result, and before the first
// render.
func (a *Application) locate(p geom.Point) (local geom.Point, ok bool) {
	used := a.buddy.UsedArea()
	if used.Empty() || !used.IsInside(p) {
		return geom.Point{}, false
	}
	local = used.Transform(p)
	return local, a.buddy.Accepts(local)
}

// FireMouseClick delivers a click, or a click-out when the click missed the
// root component. Nothing is delivered before the first render.
func (a *Application) FireMouseClick(ev event.Click) {
	a.mustBeOpen("FireMouseClick")
	subs := a.buddy.Subscriptions()
	_, rendered := a.buddy.LastRenderResult()
	local, ok := a.locate(ev.Point)
	switch {
	case !rendered:
	case ok:
		if subs.MouseClick {
			a.root.OnMouseClick(event.NewClick(ev.Mouse, local, ev.Button), a.buddy)
		}
	case subs.MouseClickOut:
		a.root.OnMouseClickOut(event.NewClickOut(ev.Mouse, ev.Button), a.buddy)
	}
	a.afterEvent()
}

// state returns the stored state of m, adding m at p if the host never
// reported it entering.
func (a *Application) state(m mouse.Mouse, p geom.Point) *mouse.State {
	state := a.store.GetMut(m)
	if state == nil {
		a.logger.Debug("event for unknown mouse", "mouse", m)
		a.store.Add(m, mouse.State{Position: p})
		state = a.store.GetMut(m)
	}
	return state
}

func (a *Application) FireMousePress(ev event.Press) {
	a.mustBeOpen("FireMousePress")
	state := a.state(ev.Mouse, ev.Point)
	state.Position = ev.Point
	state.Buttons.Press(ev.Button)

	if local, ok := a.locate(ev.Point); ok && a.buddy.Subscriptions().MousePress {
		a.root.OnMousePress(event.NewPress(ev.Mouse, local, ev.Button), a.buddy)
	}
	a.afterEvent()
}

func (a *Application) FireMouseRelease(ev event.Release) {
	a.mustBeOpen("FireMouseRelease")
	state := a.state(ev.Mouse, ev.Point)
	state.Position = ev.Point
	state.Buttons.Release(ev.Button)

	if local, ok := a.locate(ev.Point); ok && a.buddy.Subscriptions().MouseRelease {
		a.root.OnMouseRelease(event.NewRelease(ev.Mouse, local, ev.Button), a.buddy)
	}
	a.afterEvent()
}

// FireMouseMove delivers a move. When the root filters mouse actions the move
// is split into enter, move and leave events at the border of its drawn
// region.
func (a *Application) FireMouseMove(ev event.Move) {
	a.mustBeOpen("FireMouseMove")
	a.state(ev.Mouse, ev.From).Position = ev.To

	used := a.buddy.UsedArea()
	result, rendered := a.buddy.LastRenderResult()
	if rendered && a.buddy.Subscriptions().AnyMouseMotion() && !used.Empty() {
		var region geom.DrawnRegion = geom.EntireRegion()
		if result.FilterMouseActions {
			region = result.DrawnRegion
		}
		local := event.NewMove(ev.Mouse, used.Transform(ev.From), used.Transform(ev.To))
		li := region.FindLineIntersection(local.From, local.To)
		RouteMove(a.root, a.buddy, &a.buddy.BuddyCore, local, li)
	}
	a.afterEvent()
}

// FireMouseEnter registers a new mouse at ev.Point and delivers the enter.
func (a *Application) FireMouseEnter(ev event.Enter) {
	a.mustBeOpen("FireMouseEnter")
	a.store.Add(ev.Mouse, mouse.State{Position: ev.Point})

	if local, ok := a.locate(ev.Point); ok && a.buddy.Subscriptions().MouseEnter {
		a.root.OnMouseEnter(event.NewEnter(ev.Mouse, local), a.buddy)
	}
	a.afterEvent()
}

// FireMouseLeave delivers the leave and forgets the mouse afterwards.
func (a *Application) FireMouseLeave(ev event.Leave) {
	a.mustBeOpen("FireMouseLeave")
	if local, ok := a.locate(ev.Point); ok && a.buddy.Subscriptions().MouseLeave {
		a.root.OnMouseLeave(event.NewLeave(ev.Mouse, local), a.buddy)
	}
	a.store.Remove(ev.Mouse)
	a.afterEvent()
}

func (a *Application) FireCharType(ev event.CharType) {
	a.mustBeOpen("FireCharType")
	if _, rendered := a.buddy.LastRenderResult(); rendered && a.buddy.Subscriptions().CharType {
		a.root.OnCharType(ev, a.buddy)
	}
	a.afterEvent()
}

// Render renders the root component inside region if force is set or the
// root requested a render. It reports whether the root was rendered.
//
// A renderer failure is returned wrapped; later calls may try again.
func (a *Application) Render(r Renderer, region geom.RenderRegion, force bool) (bool, error) {
	a.mustBeOpen("Render")
	used := a.buddy.UsedArea()
	force = force || a.forceNext || used != a.renderedArea
	if !force && !a.buddy.DidRequestRender() {
		return false, nil
	}
	viewport, ok := region.ChildRegionOf(used)
	if !ok {
		a.afterEvent()
		return false, nil
	}
	a.buddy.ClearRenderRequest()
	r.SetViewport(viewport)
	result, err := a.root.Render(r, a.buddy, force)
	if err != nil {
		a.logger.Error("render failed", "region", viewport, "err", err)
		a.afterEvent()
		return false, fmt.Errorf("render root component: %w", err)
	}
	a.buddy.SetLastRenderResult(result)
	a.forceNext = false
	a.renderedArea = used
	a.afterEvent()
	return true, nil
}

// Close detaches the root component. The Application can not be used
// afterwards.
func (a *Application) Close() {
	if a.closed {
		return
	}
	a.root.OnDetach(a.buddy)
	a.buddy.Detach()
	a.closed = true
}

// Root returns the current root component.
func (a *Application) Root() Component {
	return a.root
}

// Mice returns the mice inside the window.
func (a *Application) Mice() []mouse.Mouse {
	return a.store.Mice()
}
