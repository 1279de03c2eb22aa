package drawutil

import (
	"image"
	"math"

	"github.com/golang/geo/r2"
)

// EdgeExit returns the border cell of rect crossed by the straight line
// from the rect's center toward target. A target inside rect is returned
// as is; an empty rect yields rect.Min.
func EdgeExit(rect image.Rectangle, target image.Point) image.Point {
	if rect.Empty() {
		return rect.Min
	}
	if target.In(rect) {
		return target
	}

	// Cell centers: the last column is Max.X-1.
	cx := float64(rect.Min.X+rect.Max.X-1) / 2
	cy := float64(rect.Min.Y+rect.Max.Y-1) / 2
	hw := float64(rect.Dx()-1) / 2
	hh := float64(rect.Dy()-1) / 2
	dx := float64(target.X) - cx
	dy := float64(target.Y) - cy

	t := math.Inf(1)
	if dx != 0 {
		t = hw / math.Abs(dx)
	}
	if dy != 0 {
		t = math.Min(t, hh/math.Abs(dy))
	}
	p := image.Pt(int(math.Round(cx+dx*t)), int(math.Round(cy+dy*t)))
	return clampTo(p, rect)
}

// CellRect converts a float rectangle with opposite corners a and b into the
// cells it touches. Edges falling on a cell boundary do not pull in the
// neighbouring cell, so [0,1]x[0,1] is exactly one cell.
func CellRect(a, b r2.Point) image.Rectangle {
	r := r2.RectFromPoints(a, b)
	return image.Rect(
		int(math.Floor(r.X.Lo)), int(math.Floor(r.Y.Lo)),
		int(math.Ceil(r.X.Hi)), int(math.Ceil(r.Y.Hi)),
	)
}

// Cell returns the cell containing p, clamped into bounds.
func Cell(p r2.Point, bounds image.Rectangle) image.Point {
	return clampTo(image.Pt(int(math.Floor(p.X)), int(math.Floor(p.Y))), bounds)
}

func clampTo(p image.Point, r image.Rectangle) image.Point {
	if r.Empty() {
		return r.Min
	}
	p.X = min(max(p.X, r.Min.X), r.Max.X-1)
	p.Y = min(max(p.Y, r.Min.Y), r.Max.Y-1)
	return p
}
