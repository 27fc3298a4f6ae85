// Package glyph feeds font glyph outlines through the ccpath chopper.
// Glyph outlines are the canonical workload for coverage-counting path
// rendering: each contour arrives as quadratic (TrueType) or cubic (CFF)
// segments that must be chopped before the GPU can consume them.
package glyph

import (
	"fmt"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ccpath"
)

// Chopper converts glyph outlines into chopped contour geometry.
// It reuses an sfnt buffer across loads, so a Chopper must not be shared
// between goroutines.
type Chopper struct {
	buf sfnt.Buffer
}

// AppendGlyph loads the outline of the glyph at gid rendered at ppem (26.6
// fixed point pixels per em), transforms it by m into device space, and
// appends the chopped contours to g. It returns the summed primitive
// tallies of the glyph's contours.
//
// Glyphs with no outline (such as space) append nothing and return zero
// tallies.
func (c *Chopper) AppendGlyph(g *ccpath.Geometry, f *sfnt.Font, gid sfnt.GlyphIndex,
	ppem fixed.Int26_6, m ccpath.Matrix) (ccpath.PrimitiveTallies, error) {

	segments, err := f.LoadGlyph(&c.buf, gid, ppem, nil)
	if err != nil {
		return ccpath.PrimitiveTallies{}, fmt.Errorf("glyph: load glyph %d: %w", gid, err)
	}
	return AppendSegments(g, segments, m), nil
}

// AppendSegments transforms the outline segments by m and appends the
// chopped contours to g. Every MoveTo opens a new contour; font contours
// are implicitly closed, so each one is ended at the next MoveTo or at the
// end of the outline.
func AppendSegments(g *ccpath.Geometry, segments sfnt.Segments, m ccpath.Matrix) ccpath.PrimitiveTallies {
	var total ccpath.PrimitiveTallies
	if len(segments) == 0 {
		return total
	}

	g.BeginPath()
	building := false
	endContour := func() {
		if building {
			total.Add(g.EndContour())
			building = false
		}
	}

	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			endContour()
			g.BeginContour(m.TransformPoint(devicePoint(seg.Args[0])))
			building = true

		case sfnt.SegmentOpLineTo:
			if building {
				g.LineTo(m.TransformPoint(devicePoint(seg.Args[0])))
			}

		case sfnt.SegmentOpQuadTo:
			if building {
				g.QuadraticTo(
					m.TransformPoint(devicePoint(seg.Args[0])),
					m.TransformPoint(devicePoint(seg.Args[1])),
				)
			}

		case sfnt.SegmentOpCubeTo:
			if building {
				g.CubicTo(
					m.TransformPoint(devicePoint(seg.Args[0])),
					m.TransformPoint(devicePoint(seg.Args[1])),
					m.TransformPoint(devicePoint(seg.Args[2])),
				)
			}
		}
	}
	endContour()
	return total
}

// devicePoint converts a 26.6 fixed-point outline point to float32 pixels.
func devicePoint(p fixed.Point26_6) ccpath.Point {
	return ccpath.Pt(float32(p.X)/64, float32(p.Y)/64)
}
