package edgetrack

import (
	"math"

	"github.com/golang/geo/r2"
)

const fullTurn = 2 * math.Pi

// xAxis is the reference direction all angles are measured from.
var xAxis = r2.Point{X: 1, Y: 0}

// SignedAngle returns the angle in radians that rotates from onto to,
// positive counter-clockwise, in (-π, π].
func SignedAngle(from, to r2.Point) float64 {
	a := math.Atan2(from.Cross(to), from.Dot(to))
	if a == -math.Pi {
		return math.Pi
	}
	return a
}

// NormalizePositiveAngle returns the counter-clockwise angle from +X to v
// in [0, 2π).
func NormalizePositiveAngle(v r2.Point) float64 {
	return positive(SignedAngle(xAxis, v))
}

// positive folds a signed angle into [0, 2π). A tiny negative input can
// round up to exactly 2π after the shift, which folds back to 0.
func positive(a float64) float64 {
	if a < 0 {
		a += fullTurn
	}
	if a >= fullTurn {
		a = 0
	}
	return a
}

// halfTurn rotates a by π, wrapping into [0, 2π).
func halfTurn(a float64) float64 {
	return math.Mod(a+math.Pi, fullTurn)
}

// ClosestAngleClockwise returns whichever of lower, higher and v2 is reached
// first when sweeping clockwise (decreasing angle) from v1. A target equal to
// v1 counts as a full turn away. Ties resolve toward v2, then higher.
func ClosestAngleClockwise(v1, lower, higher, v2 float64) float64 {
	toLower := v1 - lower
	if toLower <= 0 {
		toLower += fullTurn
	}
	toHigher := v1 - higher
	if toHigher <= 0 {
		toHigher += fullTurn
	}
	toOther := v1 - v2
	if toOther <= 0 {
		toOther += fullTurn
	}

	if toLower < toHigher && toLower < toOther {
		return lower
	} else if toHigher < toOther {
		return higher
	}
	return v2
}

// ClosestAngleCounterClockwise returns whichever of lower, higher and v2 is
// reached first when sweeping counter-clockwise (increasing angle) from v1.
//
// The wrap threshold is strict (< 0): a target equal to v1 stays at distance
// zero and can never win. Paired with ClosestAngleClockwise this keeps the
// two sweeps from claiming the same boundary at a corner.
func ClosestAngleCounterClockwise(v1, lower, higher, v2 float64) float64 {
	toLower := v1 - lower
	if toLower < 0 {
		toLower += fullTurn
	}
	toHigher := v1 - higher
	if toHigher < 0 {
		toHigher += fullTurn
	}
	toOther := v1 - v2
	if toOther < 0 {
		toOther += fullTurn
	}

	if toLower > toHigher && toLower > toOther {
		return lower
	} else if toHigher > toOther {
		return higher
	}
	return v2
}
