// Package text rasterizes graphemes, packs them in a texture atlas and draws
// them with the Label component.
package text

import (
	"image"
	"math"
	"unicode/utf8"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Font rasterizes a single grapheme. ok is false when the font has no glyph
// for it.
type Font interface {
	DrawGrapheme(grapheme string, pointSize float64) (raster *image.Alpha, ok bool)
}

// BasicFont is a Font backed by a fixed-size bitmap face. Rasters are scaled
// to the requested point size.
type BasicFont struct {
	face *basicfont.Face
}

var _ Font = (*BasicFont)(nil)

func NewBasicFont() *BasicFont {
	return &BasicFont{face: basicfont.Face7x13}
}

// NativeSize is the point size at which the face needs no scaling.
func (f *BasicFont) NativeSize() float64 {
	return float64(f.face.Height)
}

func (f *BasicFont) DrawGrapheme(grapheme string, pointSize float64) (*image.Alpha, bool) {
	r, _ := utf8.DecodeRuneInString(grapheme)
	if r == utf8.RuneError || !f.hasGlyph(r) {
		return nil, false
	}

	metrics := f.face.Metrics()
	raster := image.NewAlpha(image.Rect(0, 0, f.face.Advance, metrics.Height.Ceil()))
	d := font.Drawer{
		Dst:  raster,
		Src:  image.Opaque,
		Face: f.face,
		Dot:  fixed.P(0, metrics.Ascent.Ceil()),
	}
	d.DrawString(grapheme)

	if pointSize <= 0 || pointSize == f.NativeSize() {
		return raster, true
	}
	scale := pointSize / f.NativeSize()
	width := max(1, int(math.Round(float64(raster.Rect.Dx())*scale)))
	height := max(1, int(math.Round(float64(raster.Rect.Dy())*scale)))
	scaled := image.NewAlpha(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(scaled, scaled.Rect, raster, raster.Rect, draw.Src, nil)
	return scaled, true
}

func (f *BasicFont) hasGlyph(r rune) bool {
	for _, rng := range f.face.Ranges {
		if rng.Low <= r && r < rng.High {
			return true
		}
	}
	return false
}
