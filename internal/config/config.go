// Package config resolves the settings shared by the edgetrack binaries:
// environment defaults first, then command-line flags.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/golang/geo/r2"
	"github.com/wesen/edgetrack/pkg/edgetrack"
)

const (
	EnvWidth     = "EDGETRACK_WIDTH"
	EnvHeight    = "EDGETRACK_HEIGHT"
	EnvLineWidth = "EDGETRACK_LINE_WIDTH"
	EnvDebug     = "EDGETRACK_DEBUG"
)

// Config holds the screen and logging settings. Width and Height are in the
// binary's own units (pixels, or cells for the terminal demo).
type Config struct {
	Width     float64
	Height    float64
	LineWidth float64
	Debug     bool
}

// DefaultFromEnv overrides def with any EDGETRACK_* variables that are set.
// Malformed values are errors.
func DefaultFromEnv(def Config) (Config, error) {
	c := def
	for _, f := range []struct {
		env string
		dst *float64
	}{
		{EnvWidth, &c.Width},
		{EnvHeight, &c.Height},
		{EnvLineWidth, &c.LineWidth},
	} {
		raw := os.Getenv(f.env)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a number (got %q): %w", f.env, raw, err)
		}
		*f.dst = v
	}
	if raw := os.Getenv(EnvDebug); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvDebug, raw, err)
		}
		c.Debug = v
	}
	return c, nil
}

// RegisterFlags binds the line width and debug switch to fs, using the
// current values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.Float64Var(&c.LineWidth, "line-width", c.LineWidth, "indicator thickness (env "+EnvLineWidth+")")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable debug logging (env "+EnvDebug+")")
}

// RegisterScreenFlags binds the screen size. The terminal demo takes its
// size from the terminal and does not call it.
func (c *Config) RegisterScreenFlags(fs *flag.FlagSet) {
	fs.Float64Var(&c.Width, "width", c.Width, "screen width (env "+EnvWidth+")")
	fs.Float64Var(&c.Height, "height", c.Height, "screen height (env "+EnvHeight+")")
}

// Tracker returns the tracker config for a surface with the given origin.
func (c Config) Tracker(origin edgetrack.Origin) edgetrack.Config {
	return edgetrack.Config{Width: c.Width, Height: c.Height, LineWidth: c.LineWidth, Origin: origin}
}

// Vector is a flag.Value parsing "x,y".
type Vector r2.Point

func (v *Vector) String() string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(v.X, 'g', -1, 64) + "," + strconv.FormatFloat(v.Y, 'g', -1, 64)
}

func (v *Vector) Set(s string) error {
	p, err := ParseVector(s)
	if err != nil {
		return err
	}
	*v = Vector(p)
	return nil
}

// ParseVector parses "x,y" with optional spaces.
func ParseVector(s string) (r2.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return r2.Point{}, fmt.Errorf("vector %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return r2.Point{}, fmt.Errorf("vector %q: x: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return r2.Point{}, fmt.Errorf("vector %q: y: %w", s, err)
	}
	return r2.Point{X: x, Y: y}, nil
}
