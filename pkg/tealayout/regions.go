// Package tealayout carves a terminal into named rectangles and builds the
// lipgloss layers that fill them.
package tealayout

import "image"

// Side is the side of the remaining area a region is cut from.
type Side int

const (
	Top Side = iota
	Bottom
	Left
	Right
)

// Region is a named rectangle in terminal cells.
type Region struct {
	Name string
	Rect image.Rectangle
}

// Layout is the result of a Builder.
type Layout struct {
	Bounds  image.Rectangle
	regions []Region
}

// Get returns the named region, or a zero Region.
func (l Layout) Get(name string) Region {
	for _, r := range l.regions {
		if r.Name == name {
			return r
		}
	}
	return Region{}
}

// Regions returns the regions in the order they were cut.
func (l Layout) Regions() []Region {
	return append([]Region(nil), l.regions...)
}

// Builder cuts regions off the sides of a shrinking rectangle. Each cut
// spans whatever is left at that moment, so cut full-width bars before
// side panels.
type Builder struct {
	bounds image.Rectangle
	rest   image.Rectangle
	cut    []Region
}

// NewBuilder starts from a w x h terminal.
func NewBuilder(w, h int) *Builder {
	return NewBuilderIn(image.Rect(0, 0, max(w, 0), max(h, 0)))
}

// NewBuilderIn starts from r, for laying out the inside of a region.
func NewBuilderIn(r image.Rectangle) *Builder {
	return &Builder{bounds: r, rest: r}
}

// Cut takes n cells from side of the remaining area. n is clamped to what
// is left.
func (b *Builder) Cut(name string, side Side, n int) *Builder {
	r := b.rest
	switch side {
	case Top:
		n = clamp(n, r.Dy())
		r.Max.Y = r.Min.Y + n
		b.rest.Min.Y += n
	case Bottom:
		n = clamp(n, r.Dy())
		r.Min.Y = r.Max.Y - n
		b.rest.Max.Y -= n
	case Left:
		n = clamp(n, r.Dx())
		r.Max.X = r.Min.X + n
		b.rest.Min.X += n
	case Right:
		n = clamp(n, r.Dx())
		r.Min.X = r.Max.X - n
		b.rest.Max.X -= n
	}
	b.cut = append(b.cut, Region{Name: name, Rect: canon(r)})
	return b
}

func (b *Builder) Top(name string, rows int) *Builder    { return b.Cut(name, Top, rows) }
func (b *Builder) Bottom(name string, rows int) *Builder { return b.Cut(name, Bottom, rows) }
func (b *Builder) Left(name string, cols int) *Builder   { return b.Cut(name, Left, cols) }
func (b *Builder) Right(name string, cols int) *Builder  { return b.Cut(name, Right, cols) }

// Rest names whatever is left.
func (b *Builder) Rest(name string) *Builder {
	b.cut = append(b.cut, Region{Name: name, Rect: canon(b.rest)})
	return b
}

func (b *Builder) Build() Layout {
	return Layout{Bounds: b.bounds, regions: append([]Region(nil), b.cut...)}
}

func clamp(n, limit int) int {
	return min(max(n, 0), max(limit, 0))
}

// canon maps every empty rectangle to the zero rectangle.
func canon(r image.Rectangle) image.Rectangle {
	if r.Empty() {
		return image.Rectangle{}
	}
	return r
}
