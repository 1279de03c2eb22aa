// Package drawutil holds the terminal drawing primitives the indicator demo
// is built from: Bresenham rasterization, line and arrow glyph lookup, ray
// exit points on cell rectangles, and conversion of float rectangles to cell
// rectangles. The Draw* helpers write into a cellbuf.Buffer.
package drawutil

import "image"

// Bresenham returns the cells on the line from (x0,y0) to (x1,y1), both
// endpoints included.
func Bresenham(x0, y0, x1, y1 int) []image.Point {
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	pts := make([]image.Point, 0, max(dx, dy)+1)
	err := dx - dy
	for x, y := x0, y0; ; {
		pts = append(pts, image.Pt(x, y))
		if (x == x1 && y == y1) || len(pts) > dx+dy+1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
	return pts
}

// LineChar returns the glyph for a step of (dx, dy) in terminal coordinates
// (y grows downward).
func LineChar(dx, dy int) rune {
	switch {
	case dx == 0:
		return '│'
	case dy == 0:
		return '─'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

// ArrowChar returns the arrowhead pointing along the dominant axis of
// (dx, dy), y down.
func ArrowChar(dx, dy int) rune {
	if abs(dy) > abs(dx) {
		if dy > 0 {
			return '▼'
		}
		return '▲'
	}
	if dx > 0 {
		return '►'
	}
	return '◄'
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
