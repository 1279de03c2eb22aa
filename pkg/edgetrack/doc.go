// Package edgetrack draws a border indicator pointing at up to two
// off-screen points of interest.
//
// Given two direction vectors from the screen center, the tracker finds where
// each ray leaves the screen rectangle and emits thin rectangles hugging the
// border between the two exit points, along the shorter arc. Geometry is
// computed around the screen center and emitted in pixel coordinates through
// a Surface, so the package has no dependency on any graphics API.
//
// Angles are measured counter-clockwise from +X with +Y up. Surfaces whose y
// axis points down set Config.Origin to OriginTopLeft.
package edgetrack
