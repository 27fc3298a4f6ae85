package ccpath

import "math"

// CubicType is the algebraic classification of a planar cubic Bezier,
// derived from the discriminant of its homogeneous parametrization
// (Loop & Blinn, "Resolution Independent Curve Rendering using
// Programmable Graphics Hardware").
type CubicType uint8

// Cubic classifications.
const (
	// CubicLine means all four control points are (nearly) collinear.
	CubicLine CubicType = iota
	// CubicQuadratic means the cubic is a (nearly) exact degree elevation
	// of a quadratic.
	CubicQuadratic
	// CubicSerpentine has up to two real inflections and no
	// self-intersection in range.
	CubicSerpentine
	// CubicLoop self-intersects once within its parameter range.
	CubicLoop
	// CubicLocalCusp is the serpentine/loop boundary: the two inflections
	// collapse onto one cusp parameter.
	CubicLocalCusp
	// CubicCuspAtInfinity has a degenerate leading inflection coefficient;
	// the single finite cusp parameter sits at d3/(3*d2).
	CubicCuspAtInfinity
)

// String returns a human-readable name for the classification.
func (t CubicType) String() string {
	switch t {
	case CubicLine:
		return "Line"
	case CubicQuadratic:
		return "Quadratic"
	case CubicSerpentine:
		return "Serpentine"
	case CubicLoop:
		return "Loop"
	case CubicLocalCusp:
		return "LocalCusp"
	case CubicCuspAtInfinity:
		return "CuspAtInfinity"
	default:
		return "Unknown"
	}
}

// cubic is a cubic Bezier in device space. p0 is the implicit start point
// (the accumulator's running point), p1 and p2 the controls, p3 the end.
type cubic struct {
	p0, p1, p2, p3 Point
}

// cubicCoeffs carries the inflection-function coefficients of a classified
// cubic so the chopper can solve for chop parameters without recomputing
// them. The inflection function is I(t) = d1*t^2 - d2*t + d3/3, and
// discr = 3*d2*d2 - 4*d1*d3 separates serpentines (> 0) from loops (< 0).
type cubicCoeffs struct {
	d1, d2, d3 float64
	discr      float64
}

// relative tolerances for treating coefficients and discriminants as zero.
// The coefficients are cross products of float32 inputs, so their absolute
// error scales with the squared coordinate magnitude; comparing against the
// largest same-unit quantity keeps the band scale-invariant.
const (
	coeffZeroTol = 1e-6
	discrZeroTol = 1e-6
)

// ClassifyCubic determines the algebraic type of the cubic through control
// points p0..p3. Visually degenerate cubics (flat, or exact quadratic
// elevations) classify as CubicLine/CubicQuadratic rather than as noisy
// serpentines with near-duplicate roots.
func ClassifyCubic(p0, p1, p2, p3 Point) CubicType {
	t, _ := classifyCubic(cubic{p0, p1, p2, p3})
	return t
}

func classifyCubic(c cubic) (CubicType, cubicCoeffs) {
	// Triple products of the homogeneous control points: a_i is the
	// determinant |p_j p_k p_l| with rows (x, y, 1).
	a1 := dotCross(c.p0, c.p3, c.p2)
	a2 := dotCross(c.p1, c.p0, c.p3)
	a3 := dotCross(c.p2, c.p1, c.p0)

	d3 := 3 * a3
	d2 := d3 - a2
	d1 := d2 - a2 + a1

	norm := math.Max(math.Abs(d1), math.Max(math.Abs(d2), math.Abs(d3)))
	co := cubicCoeffs{d1: d1, d2: d2, d3: d3}
	if norm == 0 {
		return CubicLine, co
	}
	// The coefficients carry the rounding noise of float32 inputs, which
	// grows with the squared coordinate magnitude. Basing the zero band on
	// both norms keeps flat-but-large curves from classifying as noisy
	// serpentines.
	scale := coordScale(c)
	zero := coeffZeroTol * math.Max(norm, scale*scale)

	if math.Abs(d1) <= zero {
		if math.Abs(d2) <= zero {
			if math.Abs(d3) <= zero {
				return CubicLine, co
			}
			return CubicQuadratic, co
		}
		return CubicCuspAtInfinity, co
	}

	co.discr = 3*d2*d2 - 4*d1*d3
	if math.Abs(co.discr) <= discrZeroTol*math.Max(3*d2*d2, math.Abs(4*d1*d3)) {
		return CubicLocalCusp, co
	}
	if co.discr > 0 {
		return CubicSerpentine, co
	}
	return CubicLoop, co
}

// coordScale returns the largest absolute coordinate of the cubic.
func coordScale(c cubic) float64 {
	s := 0.0
	for _, p := range [4]Point{c.p0, c.p1, c.p2, c.p3} {
		s = math.Max(s, math.Max(math.Abs(float64(p.X)), math.Abs(float64(p.Y))))
	}
	return s
}

// dotCross returns the determinant of the 3x3 matrix whose rows are the
// homogeneous points (a,1), (b,1), (c,1), computed in float64.
func dotCross(a, b, c Point) float64 {
	bx := float64(b.X) - float64(a.X)
	by := float64(b.Y) - float64(a.Y)
	cx := float64(c.X) - float64(a.X)
	cy := float64(c.Y) - float64(a.Y)
	return bx*cy - by*cx
}
