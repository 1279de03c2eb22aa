package trackui

import (
	"github.com/golang/geo/r2"
	"github.com/wesen/edgetrack/pkg/cellbuf"
	"github.com/wesen/edgetrack/pkg/drawutil"
)

// cellSurface fills tracker rectangles into a cell buffer. One unit is one
// cell and y grows downward, so the tracker runs with OriginTopLeft.
type cellSurface struct {
	buf   *cellbuf.Buffer
	ch    rune
	style cellbuf.StyleKey
}

func (s cellSurface) DrawRect(a, b r2.Point) {
	s.buf.FillRect(drawutil.CellRect(a, b), s.ch, s.style)
}
