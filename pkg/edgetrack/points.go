package edgetrack

// FindPoints resolves the along-edge endpoints of the two indicator segments
// for a single screen edge.
//
// angle1 and angle2 are the vectors' angles, intersection1 and intersection2
// their crossing coordinates with the edge's line (only meaningful while the
// angle lies inside the edge interval). lowerAngle/higherAngle bound the
// interval and lowPoint/highPoint are the edge coordinates at those bounds.
//
// The first vector's segment runs from its near point toward lowPoint and the
// second's toward highPoint, unless the other vector shares the edge, in which
// case the far point is pulled in to the other vector's near point. A
// coordinate of 0 on both ends means the vector draws nothing here.
func FindPoints(angle1, angle2, intersection1, intersection2, lowerAngle, higherAngle, lowPoint, highPoint float64) (v1p1, v1p2, v2p1, v2p2 float64) {
	v1InRange := angle1 > lowerAngle && angle1 < higherAngle
	v2InRange := angle2 > lowerAngle && angle2 < higherAngle

	v1p2 = lowPoint
	v2p2 = highPoint

	v1Closest := ClosestAngleClockwise(angle1, lowerAngle, higherAngle, angle2)
	v2Closest := ClosestAngleCounterClockwise(angle2, lowerAngle, higherAngle, angle1)

	switch {
	case v1Closest == higherAngle:
		v1p1 = highPoint
	case v1InRange:
		v1p1 = intersection1
		if v2Closest != higherAngle {
			v2p2 = v1p1
		}
	default:
		v1p1 = 0
		if v1Closest == angle2 {
			v1p2 = 0
		}
	}

	switch {
	case v2Closest == lowerAngle:
		v2p1 = lowPoint
	case v2InRange:
		v2p1 = intersection2
		if v1Closest != lowerAngle {
			v1p2 = v2p1
		}
	default:
		v2p1 = 0
		if v2Closest == angle1 {
			v2p2 = 0
		}
	}

	return v1p1, v1p2, v2p1, v2p2
}
