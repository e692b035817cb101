package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/retain/event"
	"github.com/OpticalFlyer/retain/geom"
	"github.com/OpticalFlyer/retain/mouse"
)

// touch is a finger on the screen. Each finger is reported as a separate
// mouse that enters and presses when the finger goes down, and releases,
// clicks and leaves when it is lifted.
type touch struct {
	mouse    mouse.Mouse
	position geom.Point
}

func (g *Retain) handleTouchEvents() {
	// Touch start
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		t := &touch{mouse: g.freeTouchMouse(), position: g.toLocal(x, y)}
		g.touches[id] = t
		g.logger.Debug("touch started", "touch", id, "mouse", t.mouse)
		g.app.FireMouseEnter(event.NewEnter(t.mouse, t.position))
		g.app.FireMousePress(event.NewPress(t.mouse, t.position, mouse.Primary))
	}

	// Dragging fingers
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		t, ok := g.touches[id]
		if !ok {
			continue
		}
		x, y := ebiten.TouchPosition(id)
		if p := g.toLocal(x, y); p != t.position {
			g.app.FireMouseMove(event.NewMove(t.mouse, t.position, p))
			t.position = p
		}
	}

	// Touch end
	g.touchIDs = inpututil.AppendJustReleasedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		t, ok := g.touches[id]
		if !ok {
			continue
		}
		delete(g.touches, id)
		g.app.FireMouseRelease(event.NewRelease(t.mouse, t.position, mouse.Primary))
		g.app.FireMouseClick(event.NewClick(t.mouse, t.position, mouse.Primary))
		g.app.FireMouseLeave(event.NewLeave(t.mouse, t.position))
	}
}

// freeTouchMouse returns the lowest mouse id that is neither the cursor nor
// held by a finger.
func (g *Retain) freeTouchMouse() mouse.Mouse {
	for m := cursorMouse + 1; ; m++ {
		taken := false
		for _, t := range g.touches {
			if t.mouse == m {
				taken = true
				break
			}
		}
		if !taken {
			return m
		}
	}
}
