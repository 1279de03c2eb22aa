// edgetrack-render draws one indicator frame for two direction vectors and
// writes it as a PNG or shows it on the Linux framebuffer.
//
//	edgetrack-render -v1 1,1 -v2 -1,-0.2 -out frame.png
//	edgetrack-render -v1 0,1 -v2 1,0 -fb /dev/fb0 -labels
package main

import (
	"bufio"
	"flag"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/golang/geo/r2"
	"github.com/wesen/edgetrack/internal/applog"
	"github.com/wesen/edgetrack/internal/config"
	"github.com/wesen/edgetrack/pkg/edgetrack"
	"github.com/wesen/edgetrack/pkg/raster"
)

type options struct {
	cfg    config.Config
	v1, v2 config.Vector
	out    string
	fb     string
	labels bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parse(args []string, stderr io.Writer) (options, error) {
	cfg, err := config.DefaultFromEnv(config.Config{
		Width:     edgetrack.DefaultWidth,
		Height:    edgetrack.DefaultHeight,
		LineWidth: edgetrack.DefaultLineWidth,
	})
	if err != nil {
		return options{}, err
	}
	o := options{
		cfg: cfg,
		v1:  config.Vector{X: 1, Y: 1},
		v2:  config.Vector{X: -1, Y: 1},
	}
	fs := flag.NewFlagSet("edgetrack-render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	o.cfg.RegisterFlags(fs)
	o.cfg.RegisterScreenFlags(fs)
	fs.Var(&o.v1, "v1", "first direction vector x,y (+y up)")
	fs.Var(&o.v2, "v2", "second direction vector x,y (+y up)")
	fs.StringVar(&o.out, "out", "", "PNG file to write, - for stdout")
	fs.StringVar(&o.fb, "fb", "", "framebuffer device to draw on, e.g. "+raster.DefaultDevice)
	fs.BoolVar(&o.labels, "labels", false, "mark and label the exit points")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if o.out == "" && o.fb == "" {
		o.out = "-"
	}
	return o, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	o, err := parse(args, stderr)
	if err != nil {
		return err
	}
	var logger applog.Logger = applog.NoopLogger{}
	if o.cfg.Debug {
		logger = applog.New(stderr)
	}

	canvas, err := render(o, logger)
	if err != nil {
		return err
	}

	if o.out != "" {
		if err := writePNG(canvas, o.out, stdout); err != nil {
			return err
		}
		logger.Infof("render", "wrote %s", o.out)
	}
	if o.fb != "" {
		fb, err := raster.OpenFramebuffer(o.fb)
		if err != nil {
			return err
		}
		defer fb.Close()
		fb.Show(canvas.Image())
		logger.Infof("render", "drew on %s (%v)", o.fb, fb.Bounds())
	}
	return nil
}

// inks colours segments by the vector they belong to.
var inks = map[int]color.Color{1: raster.FirstInk, 2: raster.SecondInk}

func render(o options, logger applog.Logger) (*raster.Canvas, error) {
	tc := o.cfg.Tracker(edgetrack.OriginTopLeft)
	canvas := raster.NewCanvas(int(tc.Width), int(tc.Height))
	tr, err := edgetrack.New(tc, canvas)
	if err != nil {
		return nil, err
	}

	v1, v2 := r2.Point(o.v1), r2.Point(o.v2)
	segs, err := tr.Segments(v1, v2)
	if err != nil {
		return nil, err
	}
	for _, s := range segs {
		canvas.SetInk(inks[s.Owner])
		canvas.DrawRect(s.Min, s.Max)
		logger.Infof("render", "%s edge, vector %d: %.1f..%.1f", s.Edge, s.Owner, s.From, s.To)
	}

	if o.labels {
		for i, v := range []r2.Point{v1, v2} {
			e, p, err := tr.Exit(v)
			if err != nil {
				return nil, err
			}
			at := image.Pt(int(p.X), int(p.Y))
			canvas.Marker(at, 9, inks[i+1])
			canvas.Label(at.Add(labelOffset(e)), fmt.Sprintf("v%d %s", i+1, e), raster.LabelInk)
		}
	}
	return canvas, nil
}

// labelOffset moves a label off the border toward the screen center.
func labelOffset(e edgetrack.Edge) image.Point {
	switch e {
	case edgetrack.EdgeTop:
		return image.Pt(6, 14)
	case edgetrack.EdgeBottom:
		return image.Pt(6, -28)
	case edgetrack.EdgeLeft:
		return image.Pt(14, 6)
	default:
		return image.Pt(-60, 6)
	}
}

func writePNG(c *raster.Canvas, path string, stdout io.Writer) error {
	if path == "-" {
		w := bufio.NewWriter(stdout)
		if err := c.WritePNG(w); err != nil {
			return err
		}
		return w.Flush()
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := c.WritePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
