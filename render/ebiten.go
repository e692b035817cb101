// Package render implements ui.Renderer on top of Ebitengine.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	earcut "github.com/flywave/go-earcut"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/retain/geom"
	"github.com/OpticalFlyer/retain/proj"
	"github.com/OpticalFlyer/retain/ui"
)

// ErrTriangulation is returned by FillPolygon when a polygon can not be
// split into triangles.
var ErrTriangulation = errors.New("render: polygon triangulation failed")

// ovalSegments is the number of edges used to approximate an oval.
const ovalSegments = 64

// cacheFrames is how many frames an uploaded image survives without being
// drawn.
const cacheFrames = 600

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Ebiten draws on an ebiten.Image. Drawing is clipped to the current
// viewport.
type Ebiten struct {
	screen   *ebiten.Image
	target   *ebiten.Image
	viewport geom.RenderRegion

	images map[image.Image]*upload
	frame  uint64

	vertices []ebiten.Vertex
	indices  []uint16
}

type upload struct {
	image    *ebiten.Image
	lastUsed uint64
}

var _ ui.Renderer = (*Ebiten)(nil)

// NewEbiten creates a renderer. Call Begin once per frame before rendering.
func NewEbiten() *Ebiten {
	return &Ebiten{images: make(map[image.Image]*upload)}
}

// Begin makes screen the drawing surface and resets the viewport to all of
// it. Uploads that have not been drawn for a while are released.
func (e *Ebiten) Begin(screen *ebiten.Image) geom.RenderRegion {
	e.frame++
	for img, up := range e.images {
		if e.frame-up.lastUsed > cacheFrames {
			up.image.Deallocate()
			delete(e.images, img)
		}
	}

	e.screen = screen
	bounds := screen.Bounds()
	region := geom.RegionWithSize(0, 0, bounds.Dx(), bounds.Dy())
	e.SetViewport(region)
	return region
}

func (e *Ebiten) Viewport() geom.RenderRegion {
	return e.viewport
}

// SetViewport points subsequent drawing at region. Region coordinates start
// at the bottom-left corner of the screen.
func (e *Ebiten) SetViewport(region geom.RenderRegion) {
	e.viewport = region
	height := e.screen.Bounds().Dy()
	top := proj.FlipRegion(region.MinY, region.Height, height)
	rect := image.Rect(region.MinX, top, region.BoundX(), top+region.Height)
	e.target = e.screen.SubImage(rect).(*ebiten.Image)
}

// point converts viewport-local coordinates to screen pixels.
func (e *Ebiten) point(x, y float64) (float32, float32) {
	v := e.viewport
	px, py := proj.LocalToWindow(x, y, v.MinX, v.MinY, v.Width, v.Height, e.screen.Bounds().Dy())
	return float32(px), float32(py)
}

func (e *Ebiten) Clear(c ui.Color) {
	e.target.Fill(c.NRGBA())
}

func (e *Ebiten) FillRect(minX, minY, maxX, maxY float64, c ui.Color) {
	left, top := e.point(minX, maxY)
	right, bottom := e.point(maxX, minY)
	vector.DrawFilledRect(e.target, left, top, right-left, bottom-top, c.NRGBA(), true)
}

// FillOval draws the oval as a triangle fan around its center.
func (e *Ebiten) FillOval(center geom.Point, radiusX, radiusY float64, c ui.Color) {
	e.vertices = e.vertices[:0]
	e.indices = e.indices[:0]
	e.vertices = append(e.vertices, e.vertex(center.X, center.Y, c))
	for i := 0; i < ovalSegments; i++ {
		angle := 2 * math.Pi * float64(i) / ovalSegments
		x := center.X + radiusX*math.Cos(angle)
		y := center.Y + radiusY*math.Sin(angle)
		e.vertices = append(e.vertices, e.vertex(x, y, c))
		next := uint16(i+1)%ovalSegments + 1
		e.indices = append(e.indices, 0, uint16(i+1), next)
	}
	e.drawTriangles()
}

// FillPolygon fills a simple polygon, convex or not.
func (e *Ebiten) FillPolygon(points []geom.Point, c ui.Color) error {
	if len(points) < 3 {
		return nil
	}
	triangles, err := triangulate(points)
	if err != nil {
		return err
	}

	e.vertices = e.vertices[:0]
	for _, p := range points {
		e.vertices = append(e.vertices, e.vertex(p.X, p.Y, c))
	}
	e.indices = append(e.indices[:0], triangles...)
	e.drawTriangles()
	return nil
}

// triangulate returns the vertex indices of the triangles covering the
// polygon, three per triangle.
func triangulate(points []geom.Point) ([]uint16, error) {
	if len(points) > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %d points is too many", ErrTriangulation, len(points))
	}
	data := make([]float64, 0, 2*len(points))
	for _, p := range points {
		data = append(data, p.X, p.Y)
	}
	triangles, err := earcut.Earcut(data, nil, 2)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTriangulation, err)
	}
	if len(triangles) == 0 {
		return nil, fmt.Errorf("%w: no triangles for %d points", ErrTriangulation, len(points))
	}
	indices := make([]uint16, len(triangles))
	for i, index := range triangles {
		indices[i] = uint16(index)
	}
	return indices, nil
}

func (e *Ebiten) vertex(x, y float64, c ui.Color) ebiten.Vertex {
	px, py := e.point(x, y)
	return ebiten.Vertex{
		DstX:   px,
		DstY:   py,
		SrcX:   1,
		SrcY:   1,
		ColorR: c.RedFloat(),
		ColorG: c.GreenFloat(),
		ColorB: c.BlueFloat(),
		ColorA: c.AlphaFloat(),
	}
}

func (e *Ebiten) drawTriangles() {
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	e.target.DrawTriangles(e.vertices, e.indices, whiteSubImage, op)
}

// DrawImage stretches img over the given rectangle. Images that are not
// ebiten images are uploaded once and cached.
func (e *Ebiten) DrawImage(img image.Image, minX, minY, maxX, maxY float64) {
	if img.Bounds().Empty() {
		return
	}
	src, ok := img.(*ebiten.Image)
	if !ok {
		up, cached := e.images[img]
		if !cached {
			up = &upload{image: ebiten.NewImageFromImage(img)}
			e.images[img] = up
		}
		up.lastUsed = e.frame
		src = up.image
	}
	bounds := src.Bounds()

	left, top := e.point(minX, maxY)
	right, bottom := e.point(maxX, minY)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(right-left)/float64(bounds.Dx()), float64(bottom-top)/float64(bounds.Dy()))
	op.GeoM.Translate(float64(left), float64(top))
	op.Filter = ebiten.FilterLinear
	e.target.DrawImage(src, op)
}
