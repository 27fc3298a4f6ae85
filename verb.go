package ccpath

// Verb is one canonical primitive the downstream rasterizer can tessellate
// directly. Any path segment that does not map to this list is chopped into
// smaller segments that do. A verb stream plus its point stream is a compact
// representation of what can later be expanded into GPU instance data.
type Verb uint8

// Verb constants.
const (
	// VerbBeginPath marks the start of a path. Included only for caller
	// convenience; consumes no points.
	VerbBeginPath Verb = iota
	// VerbBeginContour opens a contour at its single point, which is also
	// the contour's fan anchor.
	VerbBeginContour
	// VerbLineTo draws a line to its single point.
	VerbLineTo
	// VerbMonotonicQuadTo draws a quadratic (control + end point) that is
	// monotonic relative to the vector between its endpoints.
	VerbMonotonicQuadTo
	// VerbConvexSerpentineTo draws a convex cubic piece (two controls +
	// end point) cut from a serpentine or cusp cubic.
	VerbConvexSerpentineTo
	// VerbConvexLoopTo draws a convex cubic piece isolated from a
	// self-intersecting cubic.
	VerbConvexLoopTo
	// VerbEndClosedContour ends a contour whose end point equals its
	// start point. Consumes no points.
	VerbEndClosedContour
	// VerbEndOpenContour ends a contour whose end point differs from its
	// start point. Consumes no points.
	VerbEndOpenContour
)

// String returns a human-readable name for the verb.
func (v Verb) String() string {
	switch v {
	case VerbBeginPath:
		return "BeginPath"
	case VerbBeginContour:
		return "BeginContour"
	case VerbLineTo:
		return "LineTo"
	case VerbMonotonicQuadTo:
		return "MonotonicQuadTo"
	case VerbConvexSerpentineTo:
		return "ConvexSerpentineTo"
	case VerbConvexLoopTo:
		return "ConvexLoopTo"
	case VerbEndClosedContour:
		return "EndClosedContour"
	case VerbEndOpenContour:
		return "EndOpenContour"
	default:
		return "Unknown"
	}
}

// PointCount returns the number of points this verb consumes from the
// point stream. Walking a verb stream and summing PointCount exactly
// exhausts the matching point stream.
func (v Verb) PointCount() int {
	switch v {
	case VerbBeginContour, VerbLineTo:
		return 1
	case VerbMonotonicQuadTo:
		return 2
	case VerbConvexSerpentineTo, VerbConvexLoopTo:
		return 3
	default:
		// BeginPath and the contour-end verbs carry no points.
		return 0
	}
}

// IsContourEnd reports whether v terminates a contour.
func (v Verb) IsContourEnd() bool {
	return v == VerbEndClosedContour || v == VerbEndOpenContour
}
