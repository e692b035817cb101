package text

import (
	"errors"
	"fmt"
	"image"

	"github.com/rivo/uniseg"
	"golang.org/x/image/draw"

	"github.com/OpticalFlyer/retain/ui"
)

// Label is a component that draws a single line of text, as large as fits
// in its domain, centered.
type Label struct {
	ui.ComponentBase

	text       string
	font       Font
	pointSize  float64
	foreground ui.Color
	background ui.Color

	atlas      *Atlas
	glyphs     map[string]Position
	generation uint64

	buddy ui.Buddy
	line  *image.NRGBA
}

var _ ui.Component = (*Label)(nil)

// NewLabel creates a label that caches its glyphs in atlas.
func NewLabel(text string, f Font, pointSize float64, foreground, background ui.Color, atlas *Atlas) *Label {
	return &Label{
		text:       text,
		font:       f,
		pointSize:  pointSize,
		foreground: foreground,
		background: background,
		atlas:      atlas,
		glyphs:     make(map[string]Position),
	}
}

// Graphemes splits s into user-perceived characters.
func Graphemes(s string) []string {
	var graphemes []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		graphemes = append(graphemes, g.Str())
	}
	return graphemes
}

func (l *Label) Text() string {
	return l.text
}

// SetText replaces the text and asks for a render when attached.
func (l *Label) SetText(text string) {
	if text == l.text {
		return
	}
	l.text = text
	l.line = nil
	if l.buddy != nil {
		l.buddy.RequestRender()
	}
}

// SetColors changes the colors used by the next render.
func (l *Label) SetColors(foreground, background ui.Color) {
	if foreground != l.foreground {
		l.line = nil
	}
	l.foreground = foreground
	l.background = background
}

func (l *Label) OnAttach(b ui.Buddy) {
	l.buddy = b
}

func (l *Label) OnDetach(ui.Buddy) {
	l.buddy = nil
}

// glyph returns the atlas position of grapheme, rasterizing it on first use.
// ok is false when the font can not draw it.
func (l *Label) glyph(grapheme string) (pos Position, ok bool, err error) {
	if l.generation != l.atlas.Generation() {
		clear(l.glyphs)
		l.generation = l.atlas.Generation()
	}
	if pos, ok := l.glyphs[grapheme]; ok {
		return pos, true, nil
	}
	raster, ok := l.font.DrawGrapheme(grapheme, l.pointSize)
	if !ok {
		return Position{}, false, nil
	}
	pos, err = l.atlas.Add(raster)
	if errors.Is(err, ErrAtlasFull) {
		l.atlas.Reset()
		clear(l.glyphs)
		l.generation = l.atlas.Generation()
		pos, err = l.atlas.Add(raster)
	}
	if err != nil {
		return Position{}, false, err
	}
	l.glyphs[grapheme] = pos
	return pos, true, nil
}

// compose draws the whole line into one image, tinted with the foreground
// color. Graphemes the font can not draw are skipped.
func (l *Label) compose() (*image.NRGBA, error) {
	positions, err := l.layout()
	if err != nil {
		return nil, err
	}

	width, height := 0, 0
	for _, pos := range positions {
		width += pos.Width
		height = max(height, pos.Height)
	}
	line := image.NewNRGBA(image.Rect(0, 0, width, height))
	ink := image.NewUniform(l.foreground.NRGBA())
	x := 0
	for _, pos := range positions {
		dst := image.Rect(x, height-pos.Height, x+pos.Width, height)
		draw.DrawMask(line, dst, ink, image.Point{}, l.atlas.Image(), image.Pt(pos.MinX, pos.MinY), draw.Over)
		x += pos.Width
	}
	return line, nil
}

// layout returns the atlas positions of the drawable graphemes of the text.
// The atlas may be reset halfway, in which case the layout is done again in
// the emptied atlas.
func (l *Label) layout() ([]Position, error) {
	for attempt := 0; attempt < 2; attempt++ {
		generation := l.atlas.Generation()
		var positions []Position
		for _, grapheme := range Graphemes(l.text) {
			pos, ok, err := l.glyph(grapheme)
			if err != nil {
				return nil, fmt.Errorf("rasterize %q: %w", grapheme, err)
			}
			if ok {
				positions = append(positions, pos)
			}
		}
		if l.atlas.Generation() == generation {
			return positions, nil
		}
	}
	return nil, fmt.Errorf("text %q: %w", l.text, ErrAtlasFull)
}

// Render clears the domain and draws the text centered in it. The whole
// domain is painted.
func (l *Label) Render(r ui.Renderer, _ ui.Buddy, _ bool) (ui.RenderResult, error) {
	r.Clear(l.background)
	if l.line == nil {
		line, err := l.compose()
		if err != nil {
			return ui.RenderResult{}, err
		}
		l.line = line
	}

	bounds := l.line.Rect
	if bounds.Empty() {
		return ui.EntireResult(), nil
	}

	// Keep the aspect ratio of the text: width / height in viewport units.
	textAspect := float64(bounds.Dx()) / float64(bounds.Dy())
	if viewportAspect := r.Viewport().AspectRatio(); viewportAspect > 0 {
		textAspect /= viewportAspect
	}
	width, height := 1.0, 1.0
	if textAspect > 1 {
		height = 1 / textAspect
	} else {
		width = textAspect
	}
	minX, minY := (1-width)/2, (1-height)/2
	maxX, maxY := minX+width, minY+height

	r.DrawImage(l.line, minX, minY, maxX, maxY)
	return ui.EntireResult(), nil
}
