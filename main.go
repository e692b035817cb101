package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/retain/event"
	"github.com/OpticalFlyer/retain/geom"
	"github.com/OpticalFlyer/retain/mouse"
	"github.com/OpticalFlyer/retain/proj"
	"github.com/OpticalFlyer/retain/render"
	"github.com/OpticalFlyer/retain/ui"
)

// cursorMouse is the mouse id of the desktop cursor. Touches get the ids
// after it.
const cursorMouse mouse.Mouse = 0

var mouseButtons = []struct {
	ebiten ebiten.MouseButton
	button mouse.Button
}{
	{ebiten.MouseButtonLeft, mouse.Primary},
	{ebiten.MouseButtonMiddle, mouse.Wheel},
	{ebiten.MouseButtonRight, mouse.Secondary},
	{ebiten.MouseButton3, 3},
	{ebiten.MouseButton4, 4},
}

// Retain implements ebiten.Game interface. It turns window input into
// Application events and lets the Application draw on a screen that is not
// cleared between frames.
type Retain struct {
	app       *ui.Application
	renderer  *render.Ebiten
	logger    *slog.Logger
	debugMode bool

	width       int
	height      int
	forceRender bool

	// Cursor state
	cursorInside bool
	cursor       geom.Point
	held         mouse.PressedButtons

	// Touch state, one mouse per finger
	touches  map[ebiten.TouchID]*touch
	touchIDs []ebiten.TouchID

	chars []rune
}

func newRetain(app *ui.Application, logger *slog.Logger, debug bool) *Retain {
	return &Retain{
		app:         app,
		renderer:    render.NewEbiten(),
		logger:      logger,
		debugMode:   debug,
		forceRender: true,
		touches:     make(map[ebiten.TouchID]*touch),
	}
}

func (g *Retain) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debugMode = !g.debugMode
		// Paint over the overlay
		g.forceRender = true
	}
	if g.width == 0 || g.height == 0 {
		return nil
	}

	g.handleCursor()
	g.handleTouchEvents()

	g.chars = ebiten.AppendInputChars(g.chars[:0])
	if len(g.chars) > 0 {
		g.app.FireCharType(event.CharType{Text: string(g.chars)})
	}
	return nil
}

// toLocal converts a window pixel to root-local coordinates.
func (g *Retain) toLocal(x, y int) geom.Point {
	lx, ly := proj.WindowToLocal(float64(x), float64(y), g.width, g.height)
	return geom.Pt(lx, ly)
}

func (g *Retain) handleCursor() {
	cx, cy := ebiten.CursorPosition()
	inside := ebiten.IsFocused() && cx >= 0 && cy >= 0 && cx < g.width && cy < g.height

	if !inside {
		if g.cursorInside {
			// Buttons held while leaving are released where the cursor
			// was last seen.
			for _, b := range g.held.Buttons() {
				g.app.FireMouseRelease(event.NewRelease(cursorMouse, g.cursor, b))
			}
			g.held = mouse.PressedButtons{}
			g.app.FireMouseLeave(event.NewLeave(cursorMouse, g.cursor))
			g.cursorInside = false
		}
		return
	}

	p := g.toLocal(cx, cy)
	if !g.cursorInside {
		g.app.FireMouseEnter(event.NewEnter(cursorMouse, p))
		g.cursorInside = true
	} else if p != g.cursor {
		g.app.FireMouseMove(event.NewMove(cursorMouse, g.cursor, p))
	}
	g.cursor = p

	for _, mb := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(mb.ebiten) {
			g.held.Press(mb.button)
			g.app.FireMousePress(event.NewPress(cursorMouse, p, mb.button))
		}
		if inpututil.IsMouseButtonJustReleased(mb.ebiten) && g.held.IsPressed(mb.button) {
			g.held.Release(mb.button)
			g.app.FireMouseRelease(event.NewRelease(cursorMouse, p, mb.button))
			g.app.FireMouseClick(event.NewClick(cursorMouse, p, mb.button))
		}
	}
}

func (g *Retain) Draw(screen *ebiten.Image) {
	region := g.renderer.Begin(screen)
	force := g.forceRender || g.debugMode
	rendered, err := g.app.Render(g.renderer, region, force)
	if err != nil {
		// Logged by the application. Start over on the next frame.
		g.forceRender = true
		return
	}
	g.forceRender = false

	if g.debugMode {
		debugText := fmt.Sprintf("TPS: %.1f\nFPS: %.1f\nMice: %d\nRendered: %t",
			ebiten.ActualTPS(), ebiten.ActualFPS(), len(g.app.Mice()), rendered)
		ebitenutil.DebugPrint(screen, debugText)
	}
}

// run drives the game with loop, usually ebiten.RunGame, and detaches the
// root component once the loop has stopped.
func (g *Retain) run(loop func(ebiten.Game) error) error {
	defer g.app.Close()
	return loop(g)
}

func (g *Retain) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.forceRender = true
	}
	return outsideWidth, outsideHeight
}

func main() {
	configPath := flag.String("config", "", "TOML file with window and demo settings")
	debug := flag.Bool("debug", false, "log at debug level and show the frame overlay")
	width := flag.Int("width", 0, "window width in pixels")
	height := flag.Int("height", 0, "window height in pixels")
	shapefile := flag.String("shapefile", "", "shapefile with polygons to show")
	flag.Parse()

	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	conf, err := readConfig(*configPath, logger)
	if err != nil {
		logger.Error("could not load configuration", "err", err)
		os.Exit(1)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			conf.Debug = *debug
		case "width":
			conf.Width = *width
		case "height":
			conf.Height = *height
		case "shapefile":
			conf.Shapefile = *shapefile
		}
	})
	if err := conf.validate(); err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(1)
	}
	if conf.Debug {
		level.Set(slog.LevelDebug)
	}

	app := ui.NewApplication(newDemo(conf, logger).home(), ui.WithLogger(logger))

	ebiten.SetWindowSize(conf.Width, conf.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(conf.Title)
	ebiten.SetTPS(conf.TPS)
	ebiten.SetVsyncEnabled(conf.Vsync)
	ebiten.SetScreenClearedEveryFrame(false)

	if err := newRetain(app, logger, conf.Debug).run(ebiten.RunGame); err != nil {
		logger.Error("game loop stopped", "err", err)
		os.Exit(1)
	}
}
