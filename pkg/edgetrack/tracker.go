package edgetrack

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// Surface is the drawing capability the tracker renders through.
// a and b are opposite corners of a filled rectangle in the surface's pixel
// frame (see Config.Origin).
type Surface interface {
	DrawRect(a, b r2.Point)
}

// ErrUntrackable is returned for direction vectors that have no angle.
var ErrUntrackable = errors.New("untrackable direction vector")

// VectorError reports which input vector made a frame untrackable.
type VectorError struct {
	Index  int // 1 or 2
	Vector r2.Point
}

func (e *VectorError) Error() string {
	return fmt.Sprintf("vector %d %v: %v", e.Index, e.Vector, ErrUntrackable)
}

func (e *VectorError) Unwrap() error { return ErrUntrackable }

// Segment is one border rectangle of the indicator.
type Segment struct {
	Edge  Edge
	Owner int // 1 or 2: the DrawFromVectors argument this segment belongs to

	// From and To are the along-edge endpoints, in the bottom-left frame.
	From, To float64

	// Min and Max are the rectangle corners in the surface frame.
	Min, Max r2.Point
}

// Tracker draws the off-screen indicator for two direction vectors.
type Tracker struct {
	cfg     Config
	corners Corners
	edges   [4]edgeGeometry
	surface Surface
}

// New builds a tracker for cfg drawing through surface. Zero dimensions and
// a zero line width take the package defaults.
func New(cfg Config, surface Surface) (*Tracker, error) {
	if cfg.Width == 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height == 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.LineWidth == 0 {
		cfg.LineWidth = DefaultLineWidth
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if surface == nil {
		return nil, errors.New("edgetrack: nil surface")
	}
	corners := CornersOf(cfg.Width, cfg.Height)
	return &Tracker{
		cfg:     cfg,
		corners: corners,
		edges:   edgesOf(cfg.Width, cfg.Height, corners),
		surface: surface,
	}, nil
}

// SetLineWidth changes the border thickness for subsequent frames.
// Negative and non-finite widths are ignored.
func (t *Tracker) SetLineWidth(width float64) {
	if width < 0 || math.IsNaN(width) || math.IsInf(width, 0) {
		return
	}
	t.cfg.LineWidth = width
}

// LineWidth is the current border thickness.
func (t *Tracker) LineWidth() float64 { return t.cfg.LineWidth }

// Config returns the screen config with defaults applied.
func (t *Tracker) Config() Config { return t.cfg }

// Corners returns the corner points and angles of the screen.
func (t *Tracker) Corners() Corners { return t.corners }

// DrawFromVectors draws the indicator for v1 and v2. An untrackable vector
// is skipped for this frame and reported in the returned error; the other
// one, if valid, is drawn on its own as a notch (see Segments).
func (t *Tracker) DrawFromVectors(v1, v2 r2.Point) error {
	segs, err := t.Segments(v1, v2)
	for _, s := range segs {
		t.surface.DrawRect(s.Min, s.Max)
	}
	return err
}

// Segments returns the rectangles DrawFromVectors would draw, in draw order.
//
// When one vector is untrackable the other is returned alone as a notch
// centered on its exit point, LineWidth to either side, together with a
// *VectorError for the bad one. When both are untrackable nothing is
// returned and the error names vector 1.
func (t *Tracker) Segments(v1, v2 r2.Point) ([]Segment, error) {
	ok1, ok2 := trackable(v1), trackable(v2)
	switch {
	case !ok1 && !ok2:
		return nil, &VectorError{Index: 1, Vector: v1}
	case !ok1:
		return t.notch(v2, 2), &VectorError{Index: 1, Vector: v1}
	case !ok2:
		return t.notch(v1, 1), &VectorError{Index: 2, Vector: v2}
	}

	a1 := NormalizePositiveAngle(v1)
	a2 := NormalizePositiveAngle(v2)

	// The indicator runs clockwise from the first vector to the second;
	// order the pair so that arc is the shorter one.
	first, second := v1, v2
	fa, sa := a1, a2
	owners := [2]int{1, 2}
	if positive(a1-a2) > math.Pi {
		first, second = v2, v1
		fa, sa = a2, a1
		owners = [2]int{2, 1}
	}

	segs := make([]Segment, 0, 8)
	for _, e := range drawOrder {
		g := t.edges[e]
		s1, s2 := g.resolve(fa, sa, first, second)
		for i, s := range [2]span{s1, s2} {
			if s.empty() {
				continue
			}
			lo, hi := t.toSurface(g.rect(s, t.cfg.LineWidth))
			segs = append(segs, Segment{Edge: e, Owner: owners[i], From: s.from, To: s.to, Min: lo, Max: hi})
		}
	}
	return segs, nil
}

// Exit returns the edge v's ray leaves the screen through and the exit point
// in the surface frame. A ray through a corner reports the edge counter-
// clockwise of that corner.
func (t *Tracker) Exit(v r2.Point) (Edge, r2.Point, error) {
	if !trackable(v) {
		return 0, r2.Point{}, &VectorError{Index: 1, Vector: v}
	}
	e := t.exitEdge(v)
	p := t.edges[e].exit(v)
	p, _ = t.toSurface(p, p)
	return e, p, nil
}

// exitEdge finds the edge a trackable v leaves through.
func (t *Tracker) exitEdge(v r2.Point) Edge {
	a := NormalizePositiveAngle(v)
	for _, g := range t.edges {
		if g.contains(a) {
			return g.edge
		}
	}
	// Exactly on a corner.
	switch {
	case v.X > 0 && v.Y > 0:
		return EdgeTop
	case v.X < 0 && v.Y > 0:
		return EdgeLeft
	case v.X < 0 && v.Y < 0:
		return EdgeBottom
	}
	return EdgeRight
}

// notch is the lone-vector indicator: a segment of the exit edge centered
// on v's exit point, clipped to the edge.
func (t *Tracker) notch(v r2.Point, owner int) []Segment {
	e := t.exitEdge(v)
	g := t.edges[e]
	at, _ := g.intersect(v)
	w := t.cfg.LineWidth
	s := span{from: math.Max(at-w, 0), to: math.Min(at+w, g.extent)}
	if s.empty() {
		return nil
	}
	lo, hi := t.toSurface(g.rect(s, w))
	return []Segment{{Edge: e, Owner: owner, From: s.from, To: s.to, Min: lo, Max: hi}}
}

// toSurface maps a bottom-left frame rectangle into the surface frame.
func (t *Tracker) toSurface(lo, hi r2.Point) (r2.Point, r2.Point) {
	if t.cfg.Origin != OriginTopLeft {
		return lo, hi
	}
	h := t.cfg.Height
	return r2.Point{X: lo.X, Y: h - hi.Y}, r2.Point{X: hi.X, Y: h - lo.Y}
}

func trackable(v r2.Point) bool {
	if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) {
		return false
	}
	return v.X != 0 || v.Y != 0
}
