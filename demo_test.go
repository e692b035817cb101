package main

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpticalFlyer/retain/event"
	"github.com/OpticalFlyer/retain/geom"
	"github.com/OpticalFlyer/retain/mouse"
	"github.com/OpticalFlyer/retain/text"
	"github.com/OpticalFlyer/retain/ui"
	"github.com/OpticalFlyer/retain/ui/uitest"
)

func click(app *ui.Application, p geom.Point) {
	app.FireMousePress(event.NewPress(cursorMouse, p, mouse.Primary))
	app.FireMouseRelease(event.NewRelease(cursorMouse, p, mouse.Primary))
	app.FireMouseClick(event.NewClick(cursorMouse, p, mouse.Primary))
}

func TestDemoSwitchesScreens(t *testing.T) {
	d := newDemo(defaultConfig(), slog.Default())
	app := ui.NewApplication(d.home())
	defer app.Close()

	rec := uitest.NewRecorder(800, 600)
	region := geom.RegionWithSize(0, 0, 800, 600)
	_, err := app.Render(rec, region, true)
	require.NoError(t, err)

	app.FireMouseEnter(event.NewEnter(cursorMouse, geom.Pt(0.25, 0.2)))
	click(app, geom.Pt(0.25, 0.2))
	click(app, geom.Pt(0.25, 0.2))
	assert.Equal(t, 2, d.clicks)
	assert.Equal(t, "Clicked 2 times", d.clickText())

	home := app.Root()
	// Details button inside the nested menu
	click(app, geom.Pt(0.725, 0.125))
	details := app.Root()
	require.NotSame(t, home, details)

	rendered, err := app.Render(rec, region, false)
	require.NoError(t, err)
	assert.True(t, rendered)

	click(app, geom.Pt(0.5, 0.25))
	assert.NotSame(t, details, app.Root())
	assert.Equal(t, 2, d.clicks)
}

func TestDemoWithoutShapefile(t *testing.T) {
	conf := defaultConfig()
	conf.Shapefile = "does-not-exist.shp"
	d := newDemo(conf, slog.Default())
	assert.Nil(t, d.polygons)
}

func TestEchoKeepsLastGraphemes(t *testing.T) {
	atlas := text.NewAtlas(256, 256)
	e := newEcho(text.NewLabel("", text.NewBasicFont(), 13, textColor, panelColor, atlas))
	app := ui.NewApplication(e)
	defer app.Close()
	_, err := app.Render(uitest.NewRecorder(200, 20), geom.RegionWithSize(0, 0, 200, 20), true)
	require.NoError(t, err)

	app.FireCharType(event.CharType{Text: "hé"})
	assert.Equal(t, "hé", e.Text())
	assert.Len(t, e.typed, 2)

	app.FireCharType(event.CharType{Text: "abcdefghijklmnopqrstuvwxyz"})
	assert.Len(t, e.typed, echoLimit)
	assert.Equal(t, "cdefghijklmnopqrstuvwxyz", e.Text())
}

func TestRunDetachesRootWhenLoopFails(t *testing.T) {
	probe := uitest.NewProbe("root", ui.Subscriptions{})
	app := ui.NewApplication(probe)
	game := newRetain(app, slog.Default(), false)

	stopped := errors.New("window closed")
	err := game.run(func(g ebiten.Game) error {
		assert.Same(t, game, g)
		return stopped
	})
	assert.ErrorIs(t, err, stopped)
	assert.Equal(t, 1, probe.Detaches)
}
