// edgetrack-window shows the indicator in a desktop window. The first
// vector points at the mouse cursor, the second at a target orbiting on a
// motion script far outside the window.
//
// Keys: up/down line width, space pause, esc quit.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/golang/geo/r2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/wesen/edgetrack/internal/applog"
	"github.com/wesen/edgetrack/internal/config"
	"github.com/wesen/edgetrack/internal/motion"
	"github.com/wesen/edgetrack/pkg/edgetrack"
)

const tps = 60

var (
	colorBG     = color.RGBA{R: 0x08, G: 0x0e, B: 0x0b, A: 0xff}
	colorIndic  = color.RGBA{R: 0x00, G: 0xff, B: 0xc8, A: 0xff}
	colorRay    = color.RGBA{R: 0x1a, G: 0x6a, B: 0x4a, A: 0xff}
	colorTarget = color.RGBA{R: 0xff, G: 0xcc, B: 0x00, A: 0xff}
)

var orbit = motion.Script{X: "600*cos(t*0.5)", Y: "450*sin(t*0.8)"}

// screenSurface fills tracker rectangles on the frame being drawn.
type screenSurface struct {
	dst *ebiten.Image
	clr color.Color
}

func (s *screenSurface) DrawRect(a, b r2.Point) {
	if s.dst == nil {
		return
	}
	r := r2.RectFromPoints(a, b)
	vector.DrawFilledRect(s.dst, float32(r.X.Lo), float32(r.Y.Lo),
		float32(r.X.Hi-r.X.Lo), float32(r.Y.Hi-r.Y.Lo), s.clr, false)
}

type game struct {
	w, h    int
	tracker *edgetrack.Tracker
	surface *screenSurface
	target  *motion.Motion
	logger  applog.Logger

	t       float64
	paused  bool
	v1, v2  r2.Point
	lastErr string
}

func newGame(cfg config.Config, logger applog.Logger) (*game, error) {
	s := &screenSurface{clr: colorIndic}
	tr, err := edgetrack.New(cfg.Tracker(edgetrack.OriginTopLeft), s)
	if err != nil {
		return nil, err
	}
	m, err := motion.New(orbit)
	if err != nil {
		return nil, err
	}
	return &game{
		w: int(cfg.Width), h: int(cfg.Height),
		tracker: tr, surface: s, target: m, logger: logger,
	}, nil
}

// center returns the window center in screen pixels.
func (g *game) center() r2.Point {
	return r2.Point{X: float64(g.w) / 2, Y: float64(g.h) / 2}
}

func (g *game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.paused = !g.paused
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		g.tracker.SetLineWidth(g.tracker.LineWidth() + 2)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		g.tracker.SetLineWidth(max(g.tracker.LineWidth()-2, 0))
	}

	if !g.paused {
		g.t += 1.0 / tps
	}
	p, err := g.target.At(g.t)
	if err != nil {
		g.report(err)
		return nil
	}

	c := g.center()
	mx, my := ebiten.CursorPosition()
	g.v1 = r2.Point{X: float64(mx) - c.X, Y: c.Y - float64(my)}
	g.v2 = p
	return nil
}

func (g *game) report(err error) {
	if msg := err.Error(); msg != g.lastErr {
		g.lastErr = msg
		g.logger.Errorf("window", "%v", err)
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	c := g.center()
	target := r2.Point{X: c.X + g.v2.X, Y: c.Y - g.v2.Y}
	vector.StrokeLine(screen, float32(c.X), float32(c.Y), float32(target.X), float32(target.Y), 1, colorRay, false)

	g.surface.dst = screen
	err := g.tracker.DrawFromVectors(g.v1, g.v2)
	g.surface.dst = nil
	if err != nil {
		g.report(err)
	} else {
		g.lastErr = ""
	}

	if image.Pt(int(target.X), int(target.Y)).In(screen.Bounds()) {
		vector.DrawFilledRect(screen, float32(target.X)-4, float32(target.Y)-4, 8, 8, colorTarget, false)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("line width %g  t=%.1f  %s",
		g.tracker.LineWidth(), g.t, g.lastErr), 8, 8)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.DefaultFromEnv(config.Config{
		Width:     edgetrack.DefaultWidth,
		Height:    edgetrack.DefaultHeight,
		LineWidth: edgetrack.DefaultLineWidth,
	})
	if err != nil {
		return err
	}
	fs := flag.NewFlagSet("edgetrack-window", flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	cfg.RegisterScreenFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	var logger applog.Logger = applog.NoopLogger{}
	if cfg.Debug {
		logger = applog.New(os.Stderr)
	}
	g, err := newGame(cfg, logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle("edgetrack")
	ebiten.SetWindowSize(g.w, g.h)
	ebiten.SetTPS(tps)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
