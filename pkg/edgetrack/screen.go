package edgetrack

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// Origin selects where a surface puts pixel (0, 0).
type Origin int

const (
	// OriginBottomLeft has y growing upward (OpenGL style).
	OriginBottomLeft Origin = iota
	// OriginTopLeft has y growing downward (images, terminals).
	OriginTopLeft
)

func (o Origin) String() string {
	switch o {
	case OriginBottomLeft:
		return "bottom-left"
	case OriginTopLeft:
		return "top-left"
	default:
		return fmt.Sprintf("Origin(%d)", int(o))
	}
}

// Defaults used when a Config field is left zero.
const (
	DefaultWidth     = 800.0
	DefaultHeight    = 600.0
	DefaultLineWidth = 10.0
)

// Config describes the screen the indicator is drawn on.
type Config struct {
	Width, Height float64
	LineWidth     float64
	Origin        Origin
}

// DefaultConfig returns an 800x600 bottom-left screen with 10 unit lines.
func DefaultConfig() Config {
	return Config{Width: DefaultWidth, Height: DefaultHeight, LineWidth: DefaultLineWidth}
}

var errBadConfig = errors.New("invalid screen config")

func (c Config) validate() error {
	if !(c.Width > 0) || math.IsInf(c.Width, 0) {
		return fmt.Errorf("%w: width %v", errBadConfig, c.Width)
	}
	if !(c.Height > 0) || math.IsInf(c.Height, 0) {
		return fmt.Errorf("%w: height %v", errBadConfig, c.Height)
	}
	if c.LineWidth < 0 || math.IsNaN(c.LineWidth) || math.IsInf(c.LineWidth, 0) {
		return fmt.Errorf("%w: line width %v", errBadConfig, c.LineWidth)
	}
	if c.Origin != OriginBottomLeft && c.Origin != OriginTopLeft {
		return fmt.Errorf("%w: origin %v", errBadConfig, c.Origin)
	}
	return nil
}

// Corners holds the four screen corners, relative to the screen center, and
// the angle at which a ray from the center reaches each of them.
type Corners struct {
	TopRight, TopLeft, BottomLeft, BottomRight r2.Point

	TopRightAngle, TopLeftAngle, BottomLeftAngle, BottomRightAngle float64
}

// CornersOf computes the corners of a w x h screen centered on the origin.
// Only the top-right angle is measured; the others are its reflections.
func CornersOf(w, h float64) Corners {
	hw, hh := w/2, h/2
	c := Corners{
		TopRight:    r2.Point{X: hw, Y: hh},
		TopLeft:     r2.Point{X: -hw, Y: hh},
		BottomLeft:  r2.Point{X: -hw, Y: -hh},
		BottomRight: r2.Point{X: hw, Y: -hh},
	}
	a := NormalizePositiveAngle(c.TopRight)
	c.TopRightAngle = a
	c.TopLeftAngle = math.Pi - a
	c.BottomLeftAngle = math.Pi + a
	c.BottomRightAngle = fullTurn - a
	return c
}
