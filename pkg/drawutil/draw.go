package drawutil

import (
	"image"

	"github.com/wesen/edgetrack/pkg/cellbuf"
)

// stepChar picks the glyph for pts[i] from the step toward its successor,
// or from its predecessor for the final point.
func stepChar(pts []image.Point, i int) rune {
	switch {
	case i+1 < len(pts):
		return LineChar(pts[i+1].X-pts[i].X, pts[i+1].Y-pts[i].Y)
	case i > 0:
		return LineChar(pts[i].X-pts[i-1].X, pts[i].Y-pts[i-1].Y)
	default:
		return LineChar(0, 0)
	}
}

// DrawLine draws a solid line in buffer coordinates.
func DrawLine(buf *cellbuf.Buffer, from, to image.Point, style cellbuf.StyleKey) {
	pts := Bresenham(from.X, from.Y, to.X, to.Y)
	for i, p := range pts {
		buf.Set(p.X, p.Y, stepChar(pts, i), style)
	}
}

// DrawArrowLine draws a line whose final cell is an arrowhead in headStyle.
func DrawArrowLine(buf *cellbuf.Buffer, from, to image.Point, style, headStyle cellbuf.StyleKey) {
	pts := Bresenham(from.X, from.Y, to.X, to.Y)
	last := len(pts) - 1
	for i, p := range pts[:last] {
		buf.Set(p.X, p.Y, stepChar(pts, i), style)
	}
	var dx, dy int
	if last > 0 {
		dx, dy = pts[last].X-pts[last-1].X, pts[last].Y-pts[last-1].Y
	}
	buf.Set(to.X, to.Y, ArrowChar(dx, dy), headStyle)
}

// DrawDashedLine draws a line skipping every third cell. Used for rays
// toward off-screen targets.
func DrawDashedLine(buf *cellbuf.Buffer, from, to image.Point, style cellbuf.StyleKey) {
	pts := Bresenham(from.X, from.Y, to.X, to.Y)
	for i, p := range pts {
		if i%3 != 2 {
			buf.Set(p.X, p.Y, stepChar(pts, i), style)
		}
	}
}
