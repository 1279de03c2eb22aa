package edgetrack

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// Edge identifies one side of the screen.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// drawOrder is the order edges are resolved and drawn in.
var drawOrder = [4]Edge{EdgeTop, EdgeBottom, EdgeLeft, EdgeRight}

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	default:
		return fmt.Sprintf("Edge(%d)", int(e))
	}
}

// span is an along-edge pair of coordinates.
type span struct{ from, to float64 }

func (s span) empty() bool { return s.from == s.to }

// edgeGeometry is everything resolve needs to know about one side of a
// specific screen, in the bottom-left pixel frame.
type edgeGeometry struct {
	edge Edge

	// Angular interval and the edge coordinates at its two bounds.
	lower, higher float64
	low, high     float64

	// alongX is true for top/bottom, whose segments run along x.
	alongX bool
	// sign of the normal component for rays that reach this edge.
	sign float64
	// The interval straddles 0/2π; angles are turned by π before testing.
	rotate bool

	halfAlong, halfNormal float64
	extent                float64 // edge length
	outer                 float64 // perpendicular coordinate of the border itself
}

func edgesOf(w, h float64, c Corners) [4]edgeGeometry {
	return [4]edgeGeometry{
		EdgeTop: {
			edge: EdgeTop, lower: c.TopRightAngle, higher: c.TopLeftAngle, low: w, high: 0,
			alongX: true, sign: 1, halfAlong: w / 2, halfNormal: h / 2, extent: w, outer: h,
		},
		EdgeBottom: {
			edge: EdgeBottom, lower: c.BottomLeftAngle, higher: c.BottomRightAngle, low: 0, high: w,
			alongX: true, sign: -1, halfAlong: w / 2, halfNormal: h / 2, extent: w, outer: 0,
		},
		EdgeLeft: {
			edge: EdgeLeft, lower: c.TopLeftAngle, higher: c.BottomLeftAngle, low: h, high: 0,
			sign: -1, halfAlong: h / 2, halfNormal: w / 2, extent: h, outer: 0,
		},
		EdgeRight: {
			edge: EdgeRight, lower: c.BottomRightAngle, higher: c.TopRightAngle, low: 0, high: h,
			sign: 1, rotate: true, halfAlong: h / 2, halfNormal: w / 2, extent: h, outer: w,
		},
	}
}

// bounds returns the working interval, turned when the edge wraps.
func (g edgeGeometry) bounds() (lower, higher float64) {
	if g.rotate {
		return halfTurn(g.lower), halfTurn(g.higher)
	}
	return g.lower, g.higher
}

func (g edgeGeometry) working(angle float64) float64 {
	if g.rotate {
		return halfTurn(angle)
	}
	return angle
}

// contains reports whether a ray at angle exits strictly inside this edge.
func (g edgeGeometry) contains(angle float64) bool {
	lower, higher := g.bounds()
	a := g.working(angle)
	return a > lower && a < higher
}

// intersect returns where v's ray crosses this edge's line, as a coordinate
// along the edge. Rays parallel to the edge, or pointing away from it, have
// no crossing.
func (g edgeGeometry) intersect(v r2.Point) (float64, bool) {
	along, normal := v.Y, v.X
	if g.alongX {
		along, normal = v.X, v.Y
	}
	if normal*g.sign <= 0 {
		return 0, false
	}
	t := g.sign * g.halfNormal / normal
	p := g.halfAlong + along*t
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, false
	}
	return math.Min(math.Max(p, 0), g.extent), true
}

// resolve runs FindPoints for this edge and returns the spans for the
// first and second vector.
func (g edgeGeometry) resolve(a1, a2 float64, v1, v2 r2.Point) (first, second span) {
	i1, _ := g.intersect(v1)
	i2, _ := g.intersect(v2)
	lower, higher := g.bounds()

	p1, p2, q1, q2 := FindPoints(g.working(a1), g.working(a2), i1, i2, lower, higher, g.low, g.high)
	return span{p1, p2}, span{q1, q2}
}

// rect turns an along-edge span into the inset border rectangle, in the
// bottom-left pixel frame.
func (g edgeGeometry) rect(s span, lineWidth float64) (lo, hi r2.Point) {
	from, to := math.Min(s.from, s.to), math.Max(s.from, s.to)
	inner := g.outer + lineWidth
	if g.outer > 0 {
		inner = g.outer - lineWidth
	}
	nlo, nhi := math.Min(g.outer, inner), math.Max(g.outer, inner)
	if g.alongX {
		return r2.Point{X: from, Y: nlo}, r2.Point{X: to, Y: nhi}
	}
	return r2.Point{X: nlo, Y: from}, r2.Point{X: nhi, Y: to}
}

// exit returns where v's ray leaves the screen, in the bottom-left frame.
func (g edgeGeometry) exit(v r2.Point) r2.Point {
	p, _ := g.intersect(v)
	if g.alongX {
		return r2.Point{X: p, Y: g.outer}
	}
	return r2.Point{X: g.outer, Y: p}
}
