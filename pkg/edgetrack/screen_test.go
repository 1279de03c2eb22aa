package edgetrack

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/r2"
)

// ── Corners ──

func TestCornersOfPoints(t *testing.T) {
	c := CornersOf(800, 600)
	want := map[string][2]r2.Point{
		"top-right":    {c.TopRight, {X: 400, Y: 300}},
		"top-left":     {c.TopLeft, {X: -400, Y: 300}},
		"bottom-left":  {c.BottomLeft, {X: -400, Y: -300}},
		"bottom-right": {c.BottomRight, {X: 400, Y: -300}},
	}
	for name, p := range want {
		if p[0] != p[1] {
			t.Errorf("%s: expected %v, got %v", name, p[1], p[0])
		}
	}
}

func TestCornersOfAnglesOrdered(t *testing.T) {
	for _, size := range [][2]float64{{800, 600}, {600, 800}, {100, 100}, {1920, 1080}, {3, 1000}} {
		c := CornersOf(size[0], size[1])
		if !(0 < c.TopRightAngle && c.TopRightAngle < c.TopLeftAngle &&
			c.TopLeftAngle < c.BottomLeftAngle && c.BottomLeftAngle < c.BottomRightAngle &&
			c.BottomRightAngle < 2*math.Pi) {
			t.Errorf("%vx%v: corner angles out of order: %v %v %v %v", size[0], size[1],
				c.TopRightAngle, c.TopLeftAngle, c.BottomLeftAngle, c.BottomRightAngle)
		}
	}
}

func TestCornersOfAnglesMatchPoints(t *testing.T) {
	c := CornersOf(800, 600)
	tests := []struct {
		name  string
		p     r2.Point
		angle float64
	}{
		{"top-right", c.TopRight, c.TopRightAngle},
		{"top-left", c.TopLeft, c.TopLeftAngle},
		{"bottom-left", c.BottomLeft, c.BottomLeftAngle},
		{"bottom-right", c.BottomRight, c.BottomRightAngle},
	}
	for _, tc := range tests {
		if got := NormalizePositiveAngle(tc.p); math.Abs(got-tc.angle) > eps {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.angle, got)
		}
	}
	if math.Abs(c.TopRightAngle-math.Atan2(300, 400)) > eps {
		t.Errorf("top-right angle: expected atan(3/4), got %v", c.TopRightAngle)
	}
}

// ── Config ──

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"default", DefaultConfig(), true},
		{"top-left", Config{Width: 10, Height: 10, Origin: OriginTopLeft}, true},
		{"zero line", Config{Width: 10, Height: 10}, true},
		{"negative width", Config{Width: -1, Height: 10}, false},
		{"nan height", Config{Width: 10, Height: math.NaN()}, false},
		{"inf width", Config{Width: math.Inf(1), Height: 10}, false},
		{"negative line", Config{Width: 10, Height: 10, LineWidth: -2}, false},
		{"bad origin", Config{Width: 10, Height: 10, Origin: Origin(7)}, false},
	}
	for _, tc := range tests {
		err := tc.cfg.validate()
		if tc.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
		if !tc.ok && !errors.Is(err, errBadConfig) {
			t.Errorf("%s: expected errBadConfig, got %v", tc.name, err)
		}
	}
}

func TestOriginString(t *testing.T) {
	if OriginTopLeft.String() != "top-left" || OriginBottomLeft.String() != "bottom-left" {
		t.Errorf("unexpected origin names: %v %v", OriginTopLeft, OriginBottomLeft)
	}
	if Origin(5).String() != "Origin(5)" {
		t.Errorf("expected Origin(5), got %v", Origin(5))
	}
}
