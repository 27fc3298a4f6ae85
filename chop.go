package ccpath

import "math"

// Parameter-space epsilon: chop parameters closer than this to 0, 1 or to
// each other are dropped so no zero-length piece is ever emitted.
const chopParamEps = 1e-4

// Device-space flatness below which a chopped cubic tail degenerates to a
// straight line.
const flatTol = 1e-4

// chopMonotonicQuadratic splits the quadratic (p0, p1, p2) at the parameter
// where its tangent reverses relative to the chord p2-p0, if any, and
// appends the resulting monotonic piece or pieces.
//
// The signed velocity along the chord is linear in t, interpolating from
// (p1-p0)·n at t=0 to (p2-p1)·n at t=1, so each curve has at most one
// reversal relative to its own chord. Splitting moves the chord, though:
// a sharp turn-back half can reverse again relative to its new chord, so
// both halves are re-examined. The endpoint epsilon guard stops the
// recursion once a piece's reversal sits at its boundary.
func (g *Geometry) chopMonotonicQuadratic(p0, p1, p2 Point) {
	n := p2.Sub(p0)
	v0 := float64(p1.Sub(p0).Dot(n))
	v1 := float64(p2.Sub(p1).Dot(n))
	if v0*v1 >= 0 {
		// No sign change: already monotonic relative to the chord.
		g.appendMonotonicQuadratic(p1, p2)
		return
	}

	t := v0 / (v0 - v1)
	if t <= chopParamEps || t >= 1-chopParamEps {
		// A root this close to an endpoint would produce a zero-length
		// piece; treat as no split.
		g.appendMonotonicQuadratic(p1, p2)
		return
	}

	tt := float32(t)
	ab := p0.Lerp(p1, tt)
	bc := p1.Lerp(p2, tt)
	mid := ab.Lerp(bc, tt)
	g.chopMonotonicQuadratic(p0, ab, mid)
	g.chopMonotonicQuadratic(mid, bc, p2)
}

// chopConvexCubic classifies c and emits it as one to three convex pieces
// drawn from the verb vocabulary, falling back to quadratic or line
// handling for degenerate classifications.
func (g *Geometry) chopConvexCubic(c cubic) {
	class, co := classifyCubic(c)
	Logger().Debug("chop cubic", "type", class.String(), "discr", co.discr)

	switch class {
	case CubicLine:
		if !c.p3.NearlyEqual(g.fanPoint, closedContourTol) {
			g.appendLine(c.p3)
		}

	case CubicQuadratic:
		// Invert the degree elevation: both elevated controls map back to
		// the same quadratic control, so average the two estimates.
		q1 := Point{
			X: (3*(c.p1.X+c.p2.X) - c.p0.X - c.p3.X) / 4,
			Y: (3*(c.p1.Y+c.p2.Y) - c.p0.Y - c.p3.Y) / 4,
		}
		g.chopMonotonicQuadratic(c.p0, q1, c.p3)

	case CubicSerpentine:
		// Inflection parameters: roots of d1*t^2 - d2*t + d3/3.
		ts := chopParams(SolveQuadratic(co.d1, -co.d2, co.d3/3))
		g.emitChopped(c, ts, func(piece int) Verb { return VerbConvexSerpentineTo })

	case CubicLoop:
		g.chopLoop(c, co)

	case CubicLocalCusp:
		// Both inflections collapse onto the cusp; force a chop there.
		ts := chopParams([]float64{co.d2 / (2 * co.d1)})
		g.emitChopped(c, ts, func(piece int) Verb { return VerbConvexSerpentineTo })

	case CubicCuspAtInfinity:
		ts := chopParams([]float64{co.d3 / (3 * co.d2)})
		g.emitChopped(c, ts, func(piece int) Verb { return VerbConvexSerpentineTo })
	}
}

// chopLoop isolates the self-intersection window [td0, td1] of a loop
// cubic as its own convex piece and emits the remaining tails as convex
// serpentine arcs.
func (g *Geometry) chopLoop(c cubic, co cubicCoeffs) {
	r := math.Sqrt(-co.discr)
	td0 := (co.d2 - r) / (2 * co.d1)
	td1 := (co.d2 + r) / (2 * co.d1)
	if td0 > td1 {
		td0, td1 = td1, td0
	}

	if td1 <= chopParamEps || td0 >= 1-chopParamEps {
		// The self-intersection lies outside the parameter range; the
		// drawn arc is a single convex tail.
		g.emitChopped(c, nil, func(piece int) Verb { return VerbConvexSerpentineTo })
		return
	}

	ts := chopParams([]float64{td0, td1})
	g.emitChopped(c, ts, func(piece int) Verb {
		// Pieces are indexed left to right across the sorted chop points;
		// the piece inside the window is the loop itself.
		lo, hi := 0.0, 1.0
		if piece > 0 {
			lo = ts[piece-1]
		}
		if piece < len(ts) {
			hi = ts[piece]
		}
		mid := (lo + hi) / 2
		if mid > td0-chopParamEps && mid < td1+chopParamEps {
			return VerbConvexLoopTo
		}
		return VerbConvexSerpentineTo
	})
}

// emitChopped chops c at the sorted in-range parameters ts and appends each
// resulting piece under the verb chosen by verbFor, demoting flat pieces to
// lines. With no chop points the whole cubic is emitted as one piece.
func (g *Geometry) emitChopped(c cubic, ts []float64, verbFor func(piece int) Verb) {
	rest := c
	lo := 0.0
	for i, t := range ts {
		// Remap t into the remaining sub-curve's parameter space.
		local := (t - lo) / (1 - lo)
		var piece cubic
		piece, rest = chopCubicAt(rest, float32(local))
		g.emitConvexPiece(verbFor(i), piece)
		lo = t
	}
	g.emitConvexPiece(verbFor(len(ts)), rest)
}

// emitConvexPiece appends one convex cubic piece, collapsing it to a line
// when it is too flat for curve coverage to matter.
func (g *Geometry) emitConvexPiece(v Verb, c cubic) {
	if cubicIsFlat(c) {
		if !c.p3.NearlyEqual(g.fanPoint, closedContourTol) {
			g.appendLine(c.p3)
		}
		return
	}
	g.appendConvexCubic(v, c)
}

// chopCubicAt de Casteljau-splits c at parameter t. The two halves share
// their split point exactly.
func chopCubicAt(c cubic, t float32) (cubic, cubic) {
	ab := c.p0.Lerp(c.p1, t)
	bc := c.p1.Lerp(c.p2, t)
	cd := c.p2.Lerp(c.p3, t)
	abc := ab.Lerp(bc, t)
	bcd := bc.Lerp(cd, t)
	mid := abc.Lerp(bcd, t)
	return cubic{c.p0, ab, abc, mid}, cubic{mid, bcd, cd, c.p3}
}

// cubicIsFlat reports whether both control points sit within flatTol of the
// chord, making the piece visually a straight segment.
func cubicIsFlat(c cubic) bool {
	chord := c.p3.Sub(c.p0)
	chordLen := chord.Length()
	if chordLen <= flatTol {
		return c.p1.Distance(c.p0) <= flatTol && c.p2.Distance(c.p0) <= flatTol
	}
	d1 := chord.Cross(c.p1.Sub(c.p0))
	d2 := chord.Cross(c.p2.Sub(c.p0))
	if d1 < 0 {
		d1 = -d1
	}
	if d2 < 0 {
		d2 = -d2
	}
	return d1 <= flatTol*chordLen && d2 <= flatTol*chordLen
}

// chopParams clamps candidate chop parameters into the open unit interval,
// sorts them and drops near-duplicates, so every de Casteljau chop yields
// two pieces of usable length.
func chopParams(roots []float64) []float64 {
	out := roots[:0]
	for _, t := range roots {
		if t <= chopParamEps || t >= 1-chopParamEps {
			continue
		}
		if n := len(out); n > 0 && t-out[n-1] <= chopParamEps {
			continue
		}
		out = append(out, t)
	}
	return out
}
