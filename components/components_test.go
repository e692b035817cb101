package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpticalFlyer/retain/event"
	"github.com/OpticalFlyer/retain/geom"
	"github.com/OpticalFlyer/retain/mouse"
	"github.com/OpticalFlyer/retain/text"
	"github.com/OpticalFlyer/retain/ui"
	"github.com/OpticalFlyer/retain/ui/uitest"
)

var (
	red   = ui.RGB(200, 0, 0)
	green = ui.RGB(0, 200, 0)
	grey  = ui.RGB(50, 50, 50)
)

func render(t *testing.T, app *ui.Application, rec *uitest.Recorder, region geom.RenderRegion, force bool) bool {
	t.Helper()
	rendered, err := app.Render(rec, region, force)
	require.NoError(t, err)
	return rendered
}

func lastOp(rec *uitest.Recorder, kind string) uitest.Op {
	for i := len(rec.Ops) - 1; i >= 0; i-- {
		if rec.Ops[i].Kind == kind {
			return rec.Ops[i]
		}
	}
	return uitest.Op{}
}

func TestFlatColor(t *testing.T) {
	flat := NewFlatColor(red)
	app := ui.NewApplication(flat)
	rec := uitest.NewRecorder(10, 10)
	region := geom.RegionWithSize(0, 0, 10, 10)

	require.True(t, render(t, app, rec, region, true))
	assert.Equal(t, red, lastOp(rec, "clear").Color)
	assert.False(t, render(t, app, rec, region, false))

	flat.SetColor(red)
	assert.False(t, render(t, app, rec, region, false))

	flat.SetColor(green)
	require.True(t, render(t, app, rec, region, false))
	assert.Equal(t, green, lastOp(rec, "clear").Color)
	assert.Equal(t, green, flat.Color())
}

func TestHoverCircleAvoidsDistortion(t *testing.T) {
	tests := []struct {
		name   string
		region geom.RenderRegion
		radii  geom.Point
	}{
		{name: "square", region: geom.RegionWithSize(10, 20, 50, 50), radii: geom.Pt(0.5, 0.5)},
		{name: "wide", region: geom.RegionWithSize(10, 20, 100, 50), radii: geom.Pt(0.25, 0.5)},
		{name: "high", region: geom.RegionWithSize(10, 20, 50, 100), radii: geom.Pt(0.5, 0.25)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := ui.NewApplication(NewHoverCircle(grey, green))
			rec := uitest.NewRecorder(200, 200)
			require.True(t, render(t, app, rec, tt.region, true))

			oval := lastOp(rec, "oval")
			assert.Equal(t, tt.region, oval.Viewport)
			assert.Equal(t, geom.Pt(0.5, 0.5), oval.Points[0])
			assert.True(t, tt.radii.NearlyEqual(oval.Points[1]), "radii %v", oval.Points[1])
			assert.Equal(t, grey, oval.Color)
		})
	}
}

func TestHoverCircleHover(t *testing.T) {
	app := ui.NewApplication(NewHoverCircle(grey, green))
	rec := uitest.NewRecorder(100, 50)
	region := geom.RegionWithSize(0, 0, 100, 50)
	require.True(t, render(t, app, rec, region, true))

	m := mouse.Mouse(1)
	app.FireMouseEnter(event.NewEnter(m, geom.Pt(0.1, 0.5)))
	assert.False(t, render(t, app, rec, region, false), "entered the window beside the circle")

	app.FireMouseMove(event.NewMove(m, geom.Pt(0.1, 0.5), geom.Pt(0.5, 0.5)))
	require.True(t, render(t, app, rec, region, false))
	assert.Equal(t, green, lastOp(rec, "oval").Color)

	app.FireMouseMove(event.NewMove(m, geom.Pt(0.5, 0.5), geom.Pt(0.9, 0.5)))
	require.True(t, render(t, app, rec, region, false))
	assert.Equal(t, grey, lastOp(rec, "oval").Color)
}

func TestButton(t *testing.T) {
	clicks := 0
	button := NewButton(DefaultButtonStyle, nil, func(ui.Buddy) { clicks++ })
	app := ui.NewApplication(button)
	rec := uitest.NewRecorder(100, 50)
	region := geom.RegionWithSize(0, 0, 100, 50)

	require.True(t, render(t, app, rec, region, true))
	assert.Equal(t, []string{"viewport", "clear", "rect", "rect", "rect", "rect"}, rec.Kinds())
	assert.Equal(t, DefaultButtonStyle.Base, rec.Ops[1].Color)
	assert.True(t, geom.Pt(0, 0.98).NearlyEqual(rec.Ops[3].Points[0]), "top border %v", rec.Ops[3].Points[0])

	m := mouse.Mouse(1)
	app.FireMouseEnter(event.NewEnter(m, geom.Pt(0.5, 0.5)))
	require.True(t, render(t, app, rec, region, false))
	assert.Equal(t, DefaultButtonStyle.Hover, lastOp(rec, "clear").Color)

	app.FireMousePress(event.NewPress(m, geom.Pt(0.5, 0.5), mouse.Primary))
	require.True(t, render(t, app, rec, region, false))
	assert.Equal(t, DefaultButtonStyle.Pressed, lastOp(rec, "clear").Color)

	app.FireMouseRelease(event.NewRelease(m, geom.Pt(0.5, 0.5), mouse.Primary))
	app.FireMouseClick(event.NewClick(m, geom.Pt(0.5, 0.5), mouse.Primary))
	app.FireMouseClick(event.NewClick(m, geom.Pt(0.5, 0.5), mouse.Secondary))
	assert.Equal(t, 1, clicks)
	require.True(t, render(t, app, rec, region, false))
	assert.Equal(t, DefaultButtonStyle.Hover, lastOp(rec, "clear").Color)
}

func TestButtonReleasedWhenMouseLeaves(t *testing.T) {
	button := NewButton(DefaultButtonStyle, nil, nil)
	app := ui.NewApplication(button)
	rec := uitest.NewRecorder(10, 10)
	region := geom.RegionWithSize(0, 0, 10, 10)
	render(t, app, rec, region, true)

	m := mouse.Mouse(2)
	app.FireMouseEnter(event.NewEnter(m, geom.Pt(0.5, 0.5)))
	app.FireMousePress(event.NewPress(m, geom.Pt(0.5, 0.5), mouse.Primary))
	app.FireMouseLeave(event.NewLeave(m, geom.Pt(0.5, 0.5)))
	app.FireMouseClick(event.NewClick(m, geom.Pt(0.5, 0.5), mouse.Primary))

	require.True(t, render(t, app, rec, region, false))
	assert.Equal(t, DefaultButtonStyle.Base, lastOp(rec, "clear").Color)
}

func TestButtonWithLabel(t *testing.T) {
	label := text.NewLabel("OK", text.NewBasicFont(), 13, ui.RGB(0, 0, 0), ui.RGB(0, 0, 0), text.NewAtlas(64, 64))
	style := DefaultButtonStyle
	style.BorderWidth = 0
	app := ui.NewApplication(NewButton(style, label, nil))
	rec := uitest.NewRecorder(40, 20)

	require.True(t, render(t, app, rec, geom.RegionWithSize(0, 0, 40, 20), true))
	assert.Equal(t, []string{"viewport", "clear", "image"}, rec.Kinds())
	assert.Equal(t, style.Base, rec.Ops[1].Color)

	label.SetText("Cancel")
	assert.True(t, render(t, app, rec, geom.RegionWithSize(0, 0, 40, 20), false))
}

func TestShape(t *testing.T) {
	triangle := []geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(0.5, 1)}
	line := []geom.Point{geom.Pt(0, 0), geom.Pt(1, 1)}
	shape := NewShape([][]geom.Point{triangle, line}, grey, green)
	app := ui.NewApplication(shape)
	rec := uitest.NewRecorder(10, 10)
	region := geom.RegionWithSize(0, 0, 10, 10)

	require.True(t, render(t, app, rec, region, true))
	assert.Equal(t, []string{"viewport", "polygon"}, rec.Kinds())
	assert.Equal(t, triangle, rec.Ops[1].Points)

	m := mouse.Mouse(1)
	app.FireMouseEnter(event.NewEnter(m, geom.Pt(0.1, 0.9)))
	assert.False(t, render(t, app, rec, region, false), "outside the triangle")

	app.FireMouseMove(event.NewMove(m, geom.Pt(0.1, 0.9), geom.Pt(0.5, 0.3)))
	require.True(t, render(t, app, rec, region, false))
	assert.Equal(t, green, lastOp(rec, "polygon").Color)
}

func TestShapeRenderFailure(t *testing.T) {
	shape := NewShape([][]geom.Point{{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(0, 1)}}, grey, green).WithBackground(red)
	app := ui.NewApplication(shape)
	rec := uitest.NewRecorder(10, 10)
	rec.FailPolygons = true

	rendered, err := app.Render(rec, geom.RegionWithSize(0, 0, 10, 10), true)
	assert.False(t, rendered)
	assert.ErrorIs(t, err, uitest.ErrPolygon)
}
