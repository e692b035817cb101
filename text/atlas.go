package text

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// ErrAtlasFull is returned by Atlas.Add when there is no room left for a
// raster that would fit in an empty atlas.
var ErrAtlasFull = errors.New("text: atlas is full")

// Position locates a raster inside an atlas, in pixels from the top-left
// corner of the atlas image.
type Position struct {
	MinX, MinY    int
	Width, Height int
}

// Rect returns p as an image.Rectangle.
func (p Position) Rect() image.Rectangle {
	return image.Rect(p.MinX, p.MinY, p.MinX+p.Width, p.MinY+p.Height)
}

// Atlas packs alpha rasters into a single image, row by row.
type Atlas struct {
	image *image.Alpha

	rowY      int
	rowHeight int
	cursorX   int

	version    uint64
	generation uint64
}

// NewAtlas creates an empty width x height atlas.
func NewAtlas(width, height int) *Atlas {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("text: invalid atlas size %dx%d", width, height))
	}
	return &Atlas{image: image.NewAlpha(image.Rect(0, 0, width, height))}
}

// Add copies raster into the atlas. It panics when raster is larger than the
// atlas itself.
func (a *Atlas) Add(raster *image.Alpha) (Position, error) {
	size := a.image.Rect.Size()
	width, height := raster.Rect.Dx(), raster.Rect.Dy()
	if width > size.X || height > size.Y {
		panic(fmt.Sprintf("text: raster of %dx%d does not fit in a %dx%d atlas", width, height, size.X, size.Y))
	}

	if a.cursorX+width > size.X {
		a.rowY += a.rowHeight
		a.rowHeight = 0
		a.cursorX = 0
	}
	if a.rowY+height > size.Y {
		return Position{}, ErrAtlasFull
	}

	pos := Position{MinX: a.cursorX, MinY: a.rowY, Width: width, Height: height}
	draw.Draw(a.image, pos.Rect(), raster, raster.Rect.Min, draw.Src)
	a.cursorX += width
	a.rowHeight = max(a.rowHeight, height)
	a.version++
	return pos, nil
}

// Reset empties the atlas. Positions returned earlier become invalid.
func (a *Atlas) Reset() {
	draw.Draw(a.image, a.image.Rect, image.Transparent, image.Point{}, draw.Src)
	a.rowY, a.rowHeight, a.cursorX = 0, 0, 0
	a.version++
	a.generation++
}

// Image returns the atlas pixels. The image is modified by Add and Reset.
func (a *Atlas) Image() *image.Alpha {
	return a.image
}

// Version changes every time the atlas pixels change.
func (a *Atlas) Version() uint64 {
	return a.version
}

// Generation changes every time the atlas is reset.
func (a *Atlas) Generation() uint64 {
	return a.generation
}
