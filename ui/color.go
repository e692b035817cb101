package ui

import (
	"fmt"
	"image/color"
)

// Color is an 8-bit sRGB color with an 8-bit linear alpha channel.
type Color struct {
	R, G, B, A uint8
}

// RGB returns the opaque color (r, g, b).
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

func (c Color) RedFloat() float32   { return float32(c.R) / 255 }
func (c Color) GreenFloat() float32 { return float32(c.G) / 255 }
func (c Color) BlueFloat() float32  { return float32(c.B) / 255 }
func (c Color) AlphaFloat() float32 { return float32(c.A) / 255 }

// NRGBA converts c for use with image/color. The channels are not
// premultiplied.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
