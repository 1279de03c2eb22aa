package trackui

import (
	"image"

	"github.com/golang/geo/r2"
	"github.com/wesen/edgetrack/pkg/cellbuf"
	"github.com/wesen/edgetrack/pkg/drawutil"
	"github.com/wesen/edgetrack/pkg/edgetrack"
	"github.com/wesen/edgetrack/pkg/scene"
)

// targetView is a target as seen from the current camera.
type targetView struct {
	item     *Item
	index    int
	cell     image.Point     // canvas cell, may lie outside the canvas
	box      image.Rectangle // label box in canvas cells
	vec      r2.Point        // from the canvas center, +Y up
	onScreen bool

	edge    edgetrack.Edge
	exit    r2.Point // tracker surface frame, valid when exitErr is nil
	exitErr error
}

// frame is everything one View needs about the targets and the tracker.
type frame struct {
	bounds  image.Rectangle // canvas-local, (0,0)-(w,h)
	mid     image.Point
	tracker *edgetrack.Tracker
	targets []targetView
}

// newFrame lays out the targets for a w x h canvas. The tracker draws
// through s; nothing is drawn until draw is called.
func (m Model) newFrame(w, h int, s edgetrack.Surface) (*frame, error) {
	tr, err := edgetrack.New(edgetrack.Config{
		Width:     float64(w),
		Height:    float64(h),
		LineWidth: 1,
		Origin:    edgetrack.OriginTopLeft,
	}, s)
	if err != nil {
		return nil, err
	}
	tr.SetLineWidth(m.LineWidth)

	f := &frame{
		bounds:  image.Rect(0, 0, w, h),
		mid:     image.Pt(w/2, h/2),
		tracker: tr,
	}
	cam := image.Pt(m.CamX, m.CamY)
	center := r2.Point{X: float64(m.CamX) + float64(w)/2, Y: float64(m.CamY) + float64(h)/2}
	for i, it := range m.World.Items() {
		tv := targetView{
			item:  it,
			index: i,
			cell:  it.Data.Cell().Sub(cam),
			box:   scene.BoundsOf(it.Data).Sub(cam),
			vec:   r2.Point{X: it.Data.At.X - center.X, Y: center.Y - it.Data.At.Y},
		}
		tv.onScreen = tv.box.In(f.bounds)
		tv.edge, tv.exit, tv.exitErr = tr.Exit(tv.vec)
		f.targets = append(f.targets, tv)
	}
	return f, nil
}

// indicate runs the tracker for the first two targets.
func (f *frame) indicate() error {
	if len(f.targets) < 2 {
		return nil
	}
	return f.tracker.DrawFromVectors(f.targets[0].vec, f.targets[1].vec)
}

// draw renders the whole canvas into buf, which must be the buffer behind
// the tracker's surface. The returned error is the tracker's.
func (f *frame) draw(buf *cellbuf.Buffer, camX, camY int, rays bool) error {
	drawutil.DrawGrid(buf, camX, camY, 6, 3, styleGrid)

	if rays {
		for _, tv := range f.targets {
			drawutil.DrawDashedLine(buf, f.mid, tv.cell, styleRay)
		}
	}

	err := f.indicate()

	drawutil.DrawLine(buf, f.mid.Add(image.Pt(-2, 0)), f.mid.Add(image.Pt(2, 0)), styleCross)
	buf.Set(f.mid.X, f.mid.Y, '┼', styleCross)

	for _, tv := range f.targets {
		if tv.onScreen {
			end := drawutil.EdgeExit(tv.box.Inset(-1), f.mid)
			drawutil.DrawArrowLine(buf, f.mid, end, styleLink, styleLink)
			continue
		}
		if tv.exitErr != nil {
			continue
		}
		at := drawutil.Cell(tv.exit, f.bounds)
		buf.Set(at.X, at.Y, drawutil.ArrowChar(tv.cell.X-f.mid.X, tv.cell.Y-f.mid.Y), styleMarker)
		if name := []rune(tv.item.Data.Name); len(name) > 0 {
			in := at.Add(inward(tv.edge))
			buf.Set(in.X, in.Y, name[0], styleMarker)
		}
	}
	return err
}

// inward is the step from an exit cell toward the canvas center.
func inward(e edgetrack.Edge) image.Point {
	switch e {
	case edgetrack.EdgeTop:
		return image.Pt(0, 1)
	case edgetrack.EdgeBottom:
		return image.Pt(0, -1)
	case edgetrack.EdgeLeft:
		return image.Pt(1, 0)
	default:
		return image.Pt(-1, 0)
	}
}
