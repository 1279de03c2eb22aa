// Package raster renders the indicator into an in-memory RGBA image that
// can be written as PNG or pushed to a Linux framebuffer.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/golang/geo/r2"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Default palette.
var (
	Background = color.RGBA{R: 0x08, G: 0x0e, B: 0x0b, A: 0xff}
	FirstInk   = color.RGBA{R: 0x00, G: 0xd4, B: 0xa0, A: 0xff}
	SecondInk  = color.RGBA{R: 0xff, G: 0xcc, B: 0x00, A: 0xff}
	LabelInk   = color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
)

// Canvas is an edgetrack.Surface over an image.RGBA with a top-left
// origin. Rectangles are filled with the current ink.
type Canvas struct {
	img  *image.RGBA
	ink  color.Color
	face font.Face
}

// NewCanvas returns a w x h canvas cleared to Background.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		img:  image.NewRGBA(image.Rect(0, 0, w, h)),
		ink:  FirstInk,
		face: basicfont.Face7x13,
	}
	c.Clear(Background)
	return c
}

func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// SetInk selects the fill color for subsequent DrawRect calls.
func (c *Canvas) SetInk(col color.Color) { c.ink = col }

// DrawRect fills the pixels whose centers fall inside the rectangle with
// corners a and b.
func (c *Canvas) DrawRect(a, b r2.Point) {
	r := PixelRect(a, b).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, image.NewUniform(c.ink), image.Point{}, draw.Over)
}

// PixelRect rounds a float rectangle to whole pixels.
func PixelRect(a, b r2.Point) image.Rectangle {
	r := r2.RectFromPoints(a, b)
	return image.Rect(
		int(math.Round(r.X.Lo)), int(math.Round(r.Y.Lo)),
		int(math.Round(r.X.Hi)), int(math.Round(r.Y.Hi)),
	)
}

// Marker draws a filled square of the given size centered on p.
func (c *Canvas) Marker(p image.Point, size int, col color.Color) {
	h := size / 2
	r := image.Rect(p.X-h, p.Y-h, p.X-h+size, p.Y-h+size).Intersect(c.img.Bounds())
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Over)
}

// Label draws text with its top-left corner near p, nudged so it stays
// inside the canvas.
func (c *Canvas) Label(p image.Point, text string, col color.Color) {
	d := &font.Drawer{Dst: c.img, Src: image.NewUniform(col), Face: c.face}
	m := c.face.Metrics()
	w := d.MeasureString(text).Ceil()
	h := (m.Ascent + m.Descent).Ceil()

	b := c.img.Bounds()
	x := min(max(p.X, b.Min.X), b.Max.X-w)
	y := min(max(p.Y, b.Min.Y), b.Max.Y-h)
	d.Dot = fixed.P(x, y+m.Ascent.Ceil())
	d.DrawString(text)
}

// WritePNG encodes the canvas.
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// Scale resamples src onto the whole of dst.
func Scale(dst draw.Image, src image.Image) {
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
}
