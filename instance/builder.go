// Package instance expands chopped contour geometry into per-primitive GPU
// instance data. It is the downstream side of the ccpath contract: one fan
// triangle instance per tallied primitive, plus one curve instance per
// quadratic, serpentine or loop.
package instance

import (
	"fmt"

	"github.com/gogpu/ccpath"
)

// Buffers holds the flat instance arrays for one or more chopped contours,
// ready for upload. Layouts for each array are published by FanLayout,
// QuadraticLayout and CubicLayout.
//
// Fan triangle instances are 6 floats: anchor.xy, from.xy, to.xy.
// Quadratic instances are 6 floats: start.xy, control.xy, end.xy.
// Serpentine and loop instances are 8 floats: start.xy, c1.xy, c2.xy, end.xy.
type Buffers struct {
	Fans        []float32
	Quadratics  []float32
	Serpentines []float32
	Loops       []float32
}

// floats per instance kind.
const (
	fanFloats   = 6
	quadFloats  = 6
	cubicFloats = 8
)

// Build walks the verb stream, consuming points according to each verb's
// fixed arity, and produces instance buffers pre-sized from the summed
// tallies. Contours must be complete: Build returns an error if the verb
// stream is malformed or the point stream does not exhaust exactly.
func Build(verbs []ccpath.Verb, points []ccpath.Point, total ccpath.PrimitiveTallies) (*Buffers, error) {
	b := &Buffers{
		Fans:        make([]float32, 0, total.Triangles*fanFloats),
		Quadratics:  make([]float32, 0, total.Quadratics*quadFloats),
		Serpentines: make([]float32, 0, total.Serpentines*cubicFloats),
		Loops:       make([]float32, 0, total.Loops*cubicFloats),
	}

	var anchor, cursor ccpath.Point
	building := false
	pi := 0

	take := func(n int) ([]ccpath.Point, bool) {
		if pi+n > len(points) {
			return nil, false
		}
		pts := points[pi : pi+n]
		pi += n
		return pts, true
	}

	for vi, v := range verbs {
		pts, ok := take(v.PointCount())
		if !ok {
			return nil, fmt.Errorf("instance: verb %d (%s) overruns point stream", vi, v)
		}

		switch v {
		case ccpath.VerbBeginPath:
			// Marker only.

		case ccpath.VerbBeginContour:
			if building {
				return nil, fmt.Errorf("instance: verb %d opens a contour inside another", vi)
			}
			building = true
			anchor = pts[0]
			cursor = pts[0]

		case ccpath.VerbLineTo:
			if !building {
				return nil, fmt.Errorf("instance: verb %d (%s) outside a contour", vi, v)
			}
			b.appendFan(anchor, cursor, pts[0])
			cursor = pts[0]

		case ccpath.VerbMonotonicQuadTo:
			if !building {
				return nil, fmt.Errorf("instance: verb %d (%s) outside a contour", vi, v)
			}
			b.Quadratics = append(b.Quadratics,
				cursor.X, cursor.Y, pts[0].X, pts[0].Y, pts[1].X, pts[1].Y)
			b.appendFan(anchor, cursor, pts[1])
			cursor = pts[1]

		case ccpath.VerbConvexSerpentineTo:
			if !building {
				return nil, fmt.Errorf("instance: verb %d (%s) outside a contour", vi, v)
			}
			b.Serpentines = appendCubic(b.Serpentines, cursor, pts)
			b.appendFan(anchor, cursor, pts[2])
			cursor = pts[2]

		case ccpath.VerbConvexLoopTo:
			if !building {
				return nil, fmt.Errorf("instance: verb %d (%s) outside a contour", vi, v)
			}
			b.Loops = appendCubic(b.Loops, cursor, pts)
			b.appendFan(anchor, cursor, pts[2])
			cursor = pts[2]

		case ccpath.VerbEndClosedContour, ccpath.VerbEndOpenContour:
			if !building {
				return nil, fmt.Errorf("instance: verb %d (%s) outside a contour", vi, v)
			}
			building = false

		default:
			return nil, fmt.Errorf("instance: unknown verb %d at %d", uint8(v), vi)
		}
	}

	if building {
		return nil, fmt.Errorf("instance: verb stream ends inside a contour")
	}
	if pi != len(points) {
		return nil, fmt.Errorf("instance: %d unconsumed points", len(points)-pi)
	}
	return b, nil
}

// Counts returns the number of instances of each kind currently held.
func (b *Buffers) Counts() ccpath.PrimitiveTallies {
	return ccpath.PrimitiveTallies{
		Triangles:   len(b.Fans) / fanFloats,
		Quadratics:  len(b.Quadratics) / quadFloats,
		Serpentines: len(b.Serpentines) / cubicFloats,
		Loops:       len(b.Loops) / cubicFloats,
	}
}

func (b *Buffers) appendFan(anchor, from, to ccpath.Point) {
	b.Fans = append(b.Fans, anchor.X, anchor.Y, from.X, from.Y, to.X, to.Y)
}

func appendCubic(dst []float32, start ccpath.Point, pts []ccpath.Point) []float32 {
	return append(dst,
		start.X, start.Y,
		pts[0].X, pts[0].Y,
		pts[1].X, pts[1].Y,
		pts[2].X, pts[2].Y)
}
