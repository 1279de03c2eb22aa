package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/wesen/edgetrack/pkg/edgetrack"
)

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

// ── PixelRect ──

func TestPixelRect(t *testing.T) {
	tests := []struct {
		a, b r2.Point
		want image.Rectangle
	}{
		{r2.Point{X: 100, Y: 0}, r2.Point{X: 700, Y: 10}, image.Rect(100, 0, 700, 10)},
		{r2.Point{X: 700, Y: 10}, r2.Point{X: 100, Y: 0}, image.Rect(100, 0, 700, 10)},
		{r2.Point{X: 0.4, Y: 1.6}, r2.Point{X: 9.5, Y: 3.2}, image.Rect(0, 2, 10, 3)},
	}
	for _, tc := range tests {
		if got := PixelRect(tc.a, tc.b); got != tc.want {
			t.Errorf("PixelRect(%v,%v): expected %v, got %v", tc.a, tc.b, tc.want, got)
		}
	}
}

// ── Canvas as a tracker surface ──

func TestCanvasDrawsTopBand(t *testing.T) {
	c := NewCanvas(800, 600)
	cfg := edgetrack.DefaultConfig()
	cfg.Origin = edgetrack.OriginTopLeft
	tr, err := edgetrack.New(cfg, c)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := tr.DrawFromVectors(r2.Point{X: 1, Y: 1}, r2.Point{X: -1, Y: 1}); err != nil {
		t.Fatalf("DrawFromVectors: %v", err)
	}

	img := c.Image()
	inside := []image.Point{{100, 0}, {400, 5}, {699, 9}}
	outside := []image.Point{{99, 0}, {700, 0}, {400, 10}, {400, 599}, {0, 300}, {799, 300}}
	for _, p := range inside {
		if !sameColor(img.At(p.X, p.Y), FirstInk) {
			t.Errorf("pixel %v: expected ink, got %v", p, img.At(p.X, p.Y))
		}
	}
	for _, p := range outside {
		if !sameColor(img.At(p.X, p.Y), Background) {
			t.Errorf("pixel %v: expected background, got %v", p, img.At(p.X, p.Y))
		}
	}
}

func TestCanvasSetInkAndClip(t *testing.T) {
	c := NewCanvas(20, 10)
	c.SetInk(SecondInk)
	c.DrawRect(r2.Point{X: -5, Y: -5}, r2.Point{X: 3, Y: 2})
	c.DrawRect(r2.Point{X: 50, Y: 50}, r2.Point{X: 60, Y: 60})
	if !sameColor(c.Image().At(0, 0), SecondInk) || !sameColor(c.Image().At(2, 1), SecondInk) {
		t.Error("clipped rect not drawn")
	}
	if !sameColor(c.Image().At(3, 2), Background) {
		t.Error("rect drawn past its corner")
	}
}

// ── Marker / Label ──

func TestMarker(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Marker(image.Pt(10, 10), 4, LabelInk)
	if !sameColor(c.Image().At(8, 8), LabelInk) || !sameColor(c.Image().At(11, 11), LabelInk) {
		t.Error("marker square not filled")
	}
	if !sameColor(c.Image().At(12, 12), Background) {
		t.Error("marker larger than requested")
	}
	// Markers on the border are clipped, not dropped.
	c.Marker(image.Pt(0, 0), 4, SecondInk)
	if !sameColor(c.Image().At(0, 0), SecondInk) {
		t.Error("border marker missing")
	}
}

func TestLabelStaysInside(t *testing.T) {
	c := NewCanvas(60, 30)
	c.Label(image.Pt(55, 25), "A", LabelInk)

	found := false
	b := c.Image().Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if sameColor(c.Image().At(x, y), LabelInk) {
				found = true
			}
		}
	}
	if !found {
		t.Error("label pushed off the canvas")
	}
}

// ── Output ──

func TestWritePNG(t *testing.T) {
	c := NewCanvas(32, 16)
	var buf bytes.Buffer
	if err := c.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 32, 16) {
		t.Errorf("expected 32x16, got %v", img.Bounds())
	}
}

func TestScale(t *testing.T) {
	src := NewCanvas(8, 6)
	src.SetInk(FirstInk)
	src.DrawRect(r2.Point{X: 0, Y: 0}, r2.Point{X: 8, Y: 1})

	dst := image.NewRGBA(image.Rect(0, 0, 16, 12))
	Scale(dst, src.Image())
	if !sameColor(dst.At(15, 0), FirstInk) || !sameColor(dst.At(15, 1), FirstInk) {
		t.Error("top band not scaled to two rows")
	}
	if !sameColor(dst.At(15, 2), Background) {
		t.Error("band grew past two rows")
	}
}
