// Package ccpath chops device-space contours into a small closed vocabulary
// of primitives that a coverage-counting GPU rasterizer can tessellate
// directly: lines, chord-monotonic quadratics, and convex cubic pieces cut
// from serpentine and loop cubics.
//
// # Overview
//
// The central type is [Geometry]. A caller opens a path, opens a contour,
// feeds line/quadratic/cubic segments in device space, and closes the
// contour, receiving a [PrimitiveTallies] describing exactly how many
// instances of each primitive kind the contour produced:
//
//	g := ccpath.NewGeometry(numPoints, numVerbs)
//	g.BeginPath()
//	g.BeginContour(ccpath.Pt(0, 0))
//	g.CubicTo(ccpath.Pt(10, 20), ccpath.Pt(20, -20), ccpath.Pt(30, 0))
//	tallies := g.EndContour()
//
// After all contours of interest are closed, Points and Verbs expose two
// parallel buffers that together encode the chopped geometry. Each verb
// consumes a fixed number of points ([Verb.PointCount]), and the tallies
// let the consumer pre-size GPU instance buffers without a second pass.
//
// Cubics are classified algebraically ([ClassifyCubic]) and chopped at
// their inflection or double-point parameters so every emitted piece is
// convex; quadratics are split where their tangent reverses against the
// chord. All chopping happens in device space, since an affine transform
// can change whether a curve is monotonic.
//
// # Sub-packages
//
// Package instance expands the verb/point buffers into per-kind GPU
// instance data; package glyph feeds font glyph outlines through the
// chopper.
package ccpath
