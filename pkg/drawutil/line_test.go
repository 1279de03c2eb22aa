package drawutil

import (
	"image"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/wesen/edgetrack/pkg/cellbuf"
)

// ── Bresenham ──

func TestBresenhamAxes(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		step           image.Point
	}{
		{"horizontal", 0, 0, 5, 0, image.Pt(1, 0)},
		{"vertical", 0, 0, 0, 5, image.Pt(0, 1)},
		{"diagonal", 0, 0, 5, 5, image.Pt(1, 1)},
		{"reverse", 5, 0, 0, 0, image.Pt(-1, 0)},
	}
	for _, tc := range tests {
		pts := Bresenham(tc.x0, tc.y0, tc.x1, tc.y1)
		if len(pts) != 6 {
			t.Fatalf("%s: expected 6 points, got %d: %v", tc.name, len(pts), pts)
		}
		for i, p := range pts {
			want := image.Pt(tc.x0, tc.y0).Add(tc.step.Mul(i))
			if p != want {
				t.Errorf("%s: point %d: expected %v, got %v", tc.name, i, want, p)
			}
		}
	}
}

func TestBresenhamSteepEndpoints(t *testing.T) {
	pts := Bresenham(0, 0, 2, 8)
	if len(pts) != 9 {
		t.Fatalf("expected 9 points, got %d", len(pts))
	}
	if pts[0] != image.Pt(0, 0) || pts[len(pts)-1] != image.Pt(2, 8) {
		t.Errorf("endpoints: expected (0,0)..(2,8), got %v..%v", pts[0], pts[len(pts)-1])
	}
}

func TestBresenhamZeroLength(t *testing.T) {
	pts := Bresenham(3, 3, 3, 3)
	if len(pts) != 1 || pts[0] != image.Pt(3, 3) {
		t.Fatalf("expected [(3,3)], got %v", pts)
	}
}

// ── Glyphs ──

func TestLineChar(t *testing.T) {
	tests := []struct {
		dx, dy int
		want   rune
	}{
		{0, 1, '│'},
		{1, 0, '─'},
		{1, 1, '\\'},
		{-1, -1, '\\'},
		{-1, 1, '/'},
		{1, -1, '/'},
	}
	for _, tc := range tests {
		if got := LineChar(tc.dx, tc.dy); got != tc.want {
			t.Errorf("LineChar(%d,%d): expected %c, got %c", tc.dx, tc.dy, tc.want, got)
		}
	}
}

func TestArrowChar(t *testing.T) {
	tests := []struct {
		dx, dy int
		want   rune
	}{
		{0, 1, '▼'},
		{0, -1, '▲'},
		{1, 0, '►'},
		{-1, 0, '◄'},
		{1, 5, '▼'},
		{-3, 1, '◄'},
	}
	for _, tc := range tests {
		if got := ArrowChar(tc.dx, tc.dy); got != tc.want {
			t.Errorf("ArrowChar(%d,%d): expected %c, got %c", tc.dx, tc.dy, tc.want, got)
		}
	}
}

// ── EdgeExit ──

func TestEdgeExitSides(t *testing.T) {
	rect := image.Rect(10, 10, 20, 14)
	tests := []struct {
		name   string
		target image.Point
		want   image.Point
	}{
		{"right", image.Pt(50, 12), image.Pt(19, 12)},
		{"left", image.Pt(0, 12), image.Pt(10, 12)},
		{"below", image.Pt(15, 50), image.Pt(15, 13)},
		{"above", image.Pt(15, 0), image.Pt(15, 10)},
	}
	for _, tc := range tests {
		if got := EdgeExit(rect, tc.target); got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestEdgeExitFollowsRay(t *testing.T) {
	// A shallow diagonal leaves through the right side, below the middle row.
	rect := image.Rect(0, 0, 41, 11)
	got := EdgeExit(rect, image.Pt(60, 15))
	if got.X != 40 || got.Y <= 5 || got.Y > 10 {
		t.Errorf("expected an exit on x=40 below row 5, got %v", got)
	}
}

func TestEdgeExitInsideAndEmpty(t *testing.T) {
	rect := image.Rect(10, 10, 20, 14)
	if got := EdgeExit(rect, image.Pt(15, 12)); got != image.Pt(15, 12) {
		t.Errorf("inside: expected the target back, got %v", got)
	}
	empty := image.Rect(3, 3, 3, 3)
	if got := EdgeExit(empty, image.Pt(40, 40)); got != image.Pt(3, 3) {
		t.Errorf("empty: expected (3,3), got %v", got)
	}
}

// ── CellRect / Cell ──

func TestCellRect(t *testing.T) {
	tests := []struct {
		a, b r2.Point
		want image.Rectangle
	}{
		{r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 1}, image.Rect(0, 0, 1, 1)},
		{r2.Point{X: 79, Y: 0}, r2.Point{X: 80, Y: 24}, image.Rect(79, 0, 80, 24)},
		{r2.Point{X: 12.5, Y: 0}, r2.Point{X: 40.2, Y: 1}, image.Rect(12, 0, 41, 1)},
		// Corners given in either order.
		{r2.Point{X: 10, Y: 3}, r2.Point{X: 2, Y: 2}, image.Rect(2, 2, 10, 3)},
	}
	for _, tc := range tests {
		if got := CellRect(tc.a, tc.b); got != tc.want {
			t.Errorf("CellRect(%v,%v): expected %v, got %v", tc.a, tc.b, tc.want, got)
		}
	}
}

func TestCellClamps(t *testing.T) {
	bounds := image.Rect(0, 0, 80, 24)
	if got := Cell(r2.Point{X: 80, Y: 24}, bounds); got != image.Pt(79, 23) {
		t.Errorf("far corner: expected (79,23), got %v", got)
	}
	if got := Cell(r2.Point{X: 12.7, Y: 0}, bounds); got != image.Pt(12, 0) {
		t.Errorf("expected (12,0), got %v", got)
	}
}

// ── Draw functions ──

func TestDrawLine(t *testing.T) {
	buf := cellbuf.New(10, 3, 0)
	DrawLine(buf, image.Pt(0, 1), image.Pt(9, 1), 1)
	for x := 0; x < 10; x++ {
		if c := buf.Cells[1][x]; c.Ch != '─' || c.Style != 1 {
			t.Errorf("cell (%d,1): expected ─/1, got %c/%d", x, c.Ch, c.Style)
		}
	}
}

func TestDrawArrowLine(t *testing.T) {
	buf := cellbuf.New(10, 10, 0)
	DrawArrowLine(buf, image.Pt(5, 0), image.Pt(5, 5), 1, 2)
	if c := buf.Cells[5][5]; c.Ch != '▼' || c.Style != 2 {
		t.Errorf("arrowhead: expected ▼/2, got %c/%d", c.Ch, c.Style)
	}
	if c := buf.Cells[2][5]; c.Ch != '│' || c.Style != 1 {
		t.Errorf("body: expected │/1, got %c/%d", c.Ch, c.Style)
	}
}

func TestDrawDashedLine(t *testing.T) {
	buf := cellbuf.New(20, 1, 0)
	DrawDashedLine(buf, image.Pt(0, 0), image.Pt(19, 0), 1)
	drawn := 0
	for x := 0; x < 20; x++ {
		if buf.Cells[0][x].Style == 1 {
			drawn++
		}
	}
	// 20 cells, indices 2,5,8,11,14,17 skipped.
	if drawn != 14 {
		t.Errorf("expected 14 drawn cells, got %d", drawn)
	}
}

func TestDrawGridWithCamera(t *testing.T) {
	buf := cellbuf.New(20, 10, 0)
	DrawGrid(buf, 2, 1, 5, 3, 1)
	// World (2,1) is buffer (0,0): not on the grid.
	if buf.Cells[0][0].Ch == '·' {
		t.Error("unexpected dot at buf(0,0) = world(2,1)")
	}
	// World (5,3) is buffer (3,2).
	if buf.Cells[2][3].Ch != '·' {
		t.Error("expected dot at buf(3,2) = world(5,3)")
	}
	// Negative camera positions still land on multiples.
	neg := cellbuf.New(10, 4, 0)
	DrawGrid(neg, -5, -3, 5, 3, 1)
	if neg.Cells[0][0].Ch != '·' || neg.Cells[3][5].Ch != '·' {
		t.Error("expected dots at world (-5,-3) and (0,0)")
	}
}
