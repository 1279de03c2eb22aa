package trackui

import (
	"image"
	"math"

	"github.com/golang/geo/r2"
	"github.com/wesen/edgetrack/internal/motion"
	"github.com/wesen/edgetrack/pkg/scene"
)

// Target is one tracked object. At is in world cells, y down.
type Target struct {
	Name   string
	At     r2.Point
	Motion *motion.Motion
	Pinned bool   // dragged by the user; the motion script is ignored
	Err    string // last script error, cleared on success
}

const targetW = 3 // "[A]"

// Pos implements scene.Spatial: the label box is centered on the position.
func (t Target) Pos() image.Point {
	c := t.Cell()
	return image.Pt(c.X-targetW/2, c.Y)
}

func (t Target) Size() image.Point { return image.Pt(targetW, 1) }

// Cell is the world cell holding the target.
func (t Target) Cell() image.Point {
	return image.Pt(int(math.Floor(t.At.X)), int(math.Floor(t.At.Y)))
}

// setCell moves a target so its box starts at p.
func setCell(t *Target, p image.Point) {
	t.At = r2.Point{X: float64(p.X+targetW/2) + 0.5, Y: float64(p.Y) + 0.5}
}

// World is the set of targets being tracked.
type World = scene.Scene[Target]

// defaultScripts move A on a wide ellipse and B on a slower figure-eight,
// both large enough to leave a typical terminal.
var defaultScripts = []struct {
	name   string
	script motion.Script
}{
	{"A", motion.Script{X: "70*cos(t*0.4)", Y: "22*sin(t*0.4)"}},
	{"B", motion.Script{X: "50*sin(t*0.25)", Y: "30*sin(t*0.5)"}},
}

// NewWorld builds the two demo targets placed at t = 0.
func NewWorld() (*World, error) {
	w := scene.New[Target]()
	for _, d := range defaultScripts {
		m, err := motion.New(d.script)
		if err != nil {
			return nil, err
		}
		p, err := m.At(0)
		if err != nil {
			return nil, err
		}
		w.Add(Target{Name: d.name, At: p, Motion: m})
	}
	return w, nil
}

// Item is a target in the world.
type Item = scene.Item[Target]
