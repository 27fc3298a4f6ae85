package ccpath

import "math"

// Closed-form root solving for the chopper's inflection equations.
// Iterative search is deliberately avoided: chop parameters must be stable
// under degenerate input, and the quadratics involved are well within
// reach of the direct formula.
//
// Based on the numerically robust formulation from kurbo
// (https://github.com/linebender/kurbo), adapted for Go.

// SolveQuadratic finds real roots of a*x^2 + b*x + c = 0.
// Returns roots sorted in ascending order.
//
// If a is zero or small enough that scaling by it overflows, the equation
// is demoted to linear. All-zero coefficients yield a single 0 root.
func SolveQuadratic(a, b, c float64) []float64 {
	// Scale by the leading coefficient so the discriminant cannot
	// overflow for well-scaled inputs.
	sc0 := c / a
	sc1 := b / a
	if !isFinite(sc0) || !isFinite(sc1) {
		return solveLinear(b, c)
	}

	arg := sc1*sc1 - 4*sc0
	if !isFinite(arg) {
		// Discriminant overflow: the roots are far apart; -sc1 recovers
		// the large one and sc0 divided by it the small one.
		root1 := -sc1
		root2 := sc0 / root1
		if !isFinite(root2) {
			return []float64{root1}
		}
		return sortedPair(root1, root2)
	}
	if arg < 0 {
		return nil
	}
	if arg == 0 {
		return []float64{-0.5 * sc1}
	}

	// Avoid cancellation between -sc1 and the square root.
	root1 := -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	root2 := sc0 / root1
	if !isFinite(root2) {
		return []float64{root1}
	}
	return sortedPair(root1, root2)
}

func solveLinear(b, c float64) []float64 {
	root := -c / b
	if isFinite(root) {
		return []float64{root}
	}
	if b == 0 && c == 0 {
		return []float64{0}
	}
	return nil
}

func sortedPair(r1, r2 float64) []float64 {
	if r1 > r2 {
		return []float64{r2, r1}
	}
	return []float64{r1, r2}
}

// isFinite returns true if x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
