package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/OpticalFlyer/retain/components"
	"github.com/OpticalFlyer/retain/event"
	"github.com/OpticalFlyer/retain/geom"
	"github.com/OpticalFlyer/retain/menu"
	"github.com/OpticalFlyer/retain/text"
	"github.com/OpticalFlyer/retain/ui"
)

const (
	labelSize = 26
	echoLimit = 24
)

var (
	backgroundColor = ui.RGB(30, 32, 38)
	panelColor      = ui.RGB(48, 52, 62)
	textColor       = ui.RGB(230, 230, 230)
)

// demo builds the screens of the example application. The two screens
// replace each other through Buddy.ChangeMenu.
type demo struct {
	logger   *slog.Logger
	font     *text.BasicFont
	atlas    *text.Atlas
	polygons [][]geom.Point
	clicks   int
}

func newDemo(conf config, logger *slog.Logger) *demo {
	d := &demo{
		logger: logger,
		font:   text.NewBasicFont(),
		atlas:  text.NewAtlas(512, 512),
	}
	if conf.Shapefile != "" {
		polygons, err := components.LoadShapefile(conf.Shapefile)
		if err != nil {
			logger.Warn("could not load shapefile", "path", conf.Shapefile, "err", err)
		} else {
			d.polygons = polygons
		}
	}
	return d
}

func (d *demo) label(s string, background ui.Color) *text.Label {
	return text.NewLabel(s, d.font, labelSize, textColor, background, d.atlas)
}

func (d *demo) clickText() string {
	return fmt.Sprintf("Clicked %d times", d.clicks)
}

func (d *demo) home() ui.Component {
	root := menu.New(menu.WithBackground(backgroundColor))
	root.Add(d.label("retain", backgroundColor), geom.NewDomain(0.05, 0.85, 0.95, 0.97))

	root.Add(components.NewFlatColor(ui.RGB(200, 80, 60)), geom.NewDomain(0.05, 0.45, 0.3, 0.8))
	root.Add(components.NewHoverCircle(ui.RGB(60, 140, 200), ui.RGB(120, 200, 255)), geom.NewDomain(0.35, 0.45, 0.65, 0.8))
	if d.polygons != nil {
		shape := components.NewShape(d.polygons, ui.RGB(90, 170, 90), ui.RGB(150, 230, 150)).WithBackground(backgroundColor)
		root.Add(shape, geom.NewDomain(0.7, 0.45, 0.95, 0.8))
	} else {
		root.Add(components.NewHoverCircle(ui.RGB(90, 170, 90), ui.RGB(150, 230, 150)), geom.NewDomain(0.7, 0.45, 0.95, 0.8))
	}

	counter := d.label(d.clickText(), components.DefaultButtonStyle.Base)
	root.Add(components.NewButton(components.DefaultButtonStyle, counter, func(ui.Buddy) {
		d.clicks++
		counter.SetText(d.clickText())
	}), geom.NewDomain(0.05, 0.05, 0.45, 0.35))

	nested := menu.New(menu.WithBackground(panelColor))
	nested.Add(newEcho(d.label("type something", panelColor)), geom.NewDomain(0.05, 0.55, 0.95, 0.95))
	details := d.label("Details", components.DefaultButtonStyle.Base)
	nested.Add(components.NewButton(components.DefaultButtonStyle, details, func(b ui.Buddy) {
		b.ChangeMenu(func(ui.Component) ui.Component {
			return d.details()
		})
	}), geom.NewDomain(0.25, 0.05, 0.75, 0.45))
	root.Add(nested, geom.NewDomain(0.5, 0.05, 0.95, 0.35))
	return root
}

func (d *demo) details() ui.Component {
	root := menu.New(menu.WithBackground(panelColor))
	root.Add(d.label(d.clickText(), panelColor), geom.NewDomain(0.1, 0.6, 0.9, 0.9))
	back := d.label("Back", components.DefaultButtonStyle.Base)
	root.Add(components.NewButton(components.DefaultButtonStyle, back, func(b ui.Buddy) {
		b.ChangeMenu(func(ui.Component) ui.Component {
			return d.home()
		})
	}), geom.NewDomain(0.3, 0.1, 0.7, 0.4))
	return root
}

// echo shows the last characters typed.
type echo struct {
	*text.Label
	typed []string
}

func newEcho(label *text.Label) *echo {
	return &echo{Label: label}
}

func (e *echo) OnAttach(b ui.Buddy) {
	e.Label.OnAttach(b)
	b.SubscribeCharType()
}

func (e *echo) OnCharType(ev event.CharType, _ ui.Buddy) {
	e.typed = append(e.typed, text.Graphemes(ev.Text)...)
	if len(e.typed) > echoLimit {
		e.typed = e.typed[len(e.typed)-echoLimit:]
	}
	e.SetText(strings.Join(e.typed, ""))
}
