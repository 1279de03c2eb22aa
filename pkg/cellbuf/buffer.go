// Package cellbuf is a terminal-sized raster: a grid of runes, each tagged
// with a StyleKey that is resolved to a lipgloss.Style only when the grid is
// rendered. The edge indicator, the exit markers and the background grid are
// all drawn into one Buffer and composited as a single layer.
//
// Runes are assumed to be one column wide.
package cellbuf

import "image"

// StyleKey names a visual style. The mapping to lipgloss.Style is supplied
// at render time.
type StyleKey int

// Cell is one character position.
type Cell struct {
	Ch    rune
	Style StyleKey
}

// Buffer is a W x H grid of cells, row-major.
type Buffer struct {
	W, H  int
	Cells [][]Cell // [row][col]
}

// New returns a w x h buffer of spaces in style bg. Negative sizes are
// treated as zero.
func New(w, h int, bg StyleKey) *Buffer {
	w, h = max(w, 0), max(h, 0)
	b := &Buffer{W: w, H: h, Cells: make([][]Cell, h)}
	for y := range b.Cells {
		b.Cells[y] = make([]Cell, w)
	}
	b.Fill(bg)
	return b
}

// Bounds returns the buffer rectangle anchored at (0, 0).
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.W, b.H)
}

func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// Set writes one cell. Writes outside the buffer are dropped.
func (b *Buffer) Set(x, y int, ch rune, style StyleKey) {
	if b.InBounds(x, y) {
		b.Cells[y][x] = Cell{Ch: ch, Style: style}
	}
}

// SetString writes s left to right from (x, y), clipping at the edges.
func (b *Buffer) SetString(x, y int, s string, style StyleKey) {
	i := 0
	for _, ch := range s {
		b.Set(x+i, y, ch, style)
		i++
	}
}

// Fill resets every cell to a space in style.
func (b *Buffer) Fill(style StyleKey) {
	b.FillRect(b.Bounds(), ' ', style)
}

// FillRect sets every cell of r, clipped to the buffer, to ch in style.
func (b *Buffer) FillRect(r image.Rectangle, ch rune, style StyleKey) {
	r = r.Intersect(b.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := b.Cells[y]
		for x := r.Min.X; x < r.Max.X; x++ {
			row[x] = Cell{Ch: ch, Style: style}
		}
	}
}
