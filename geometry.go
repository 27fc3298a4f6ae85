package ccpath

// Geometry chops device-space contours into the closed verb vocabulary the
// downstream rasterizer knows how to tessellate. Curves that do not map to
// the vocabulary (non-monotonic quadratics, inflected or self-intersecting
// cubics) are chopped into smaller pieces that do.
//
// Chopping must happen in device space: an affine transformation can change
// whether a curve is monotonic, so callers apply their transform before
// feeding segments in.
//
// A Geometry is not safe for concurrent use. Independent instances share no
// state and may run in parallel.
type Geometry struct {
	points []Point
	verbs  []Verb

	// Transient state used while building a contour.
	anchor   Point // fan anchor, fixed at BeginContour
	fanPoint Point // running point, start of the next segment
	tallies  PrimitiveTallies
	building bool
}

// closedContourTol is the distance within which a contour's final running
// point is considered coincident with its anchor.
const closedContourTol = 1e-4

// NewGeometry creates a Geometry sized for input of roughly numPoints
// points and numVerbs verbs. Both buffers reserve a 3x expansion so curve
// splitting does not reallocate in the common case.
func NewGeometry(numPoints, numVerbs int) *Geometry {
	return &Geometry{
		points: make([]Point, 0, numPoints*3),
		verbs:  make([]Verb, 0, numVerbs*3),
	}
}

// Points returns the chopped point stream. It must not be called while a
// contour is open.
func (g *Geometry) Points() []Point {
	g.assertIdle("Points")
	return g.points
}

// Verbs returns the chopped verb stream. It must not be called while a
// contour is open.
func (g *Geometry) Verbs() []Verb {
	g.assertIdle("Verbs")
	return g.verbs
}

// Reset clears both output buffers, keeping their capacity. It must not be
// called while a contour is open.
func (g *Geometry) Reset() {
	g.assertIdle("Reset")
	g.points = g.points[:0]
	g.verbs = g.verbs[:0]
}

// Truncate discards previously added contours by cutting both buffers back
// to the given lengths. The caller is responsible for tracking counts so
// the cut does not land inside a contour; the only checked invariant is
// that the new final verb, if any, ends a contour.
func (g *Geometry) Truncate(numPoints, numVerbs int) {
	g.assertIdle("Truncate")
	g.points = g.points[:numPoints]
	g.verbs = g.verbs[:numVerbs]
	if len(g.verbs) > 0 && !g.verbs[len(g.verbs)-1].IsContourEnd() {
		panic("ccpath: Truncate cut inside a contour")
	}
}

// BeginPath appends a path-begin marker. It must not be called while a
// contour is open.
func (g *Geometry) BeginPath() {
	g.assertIdle("BeginPath")
	g.verbs = append(g.verbs, VerbBeginPath)
}

// BeginContour opens a new contour at pt. The point becomes both the
// contour's fan anchor and its running point.
func (g *Geometry) BeginContour(pt Point) {
	g.assertIdle("BeginContour")
	g.building = true
	g.anchor = pt
	g.fanPoint = pt
	g.tallies = PrimitiveTallies{}
	g.points = append(g.points, pt)
	g.verbs = append(g.verbs, VerbBeginContour)
}

// LineTo appends a straight segment from the running point to pt.
func (g *Geometry) LineTo(pt Point) {
	g.assertBuilding("LineTo")
	g.appendLine(pt)
}

// QuadraticTo appends a quadratic segment from the running point through
// control point p1 to p2, splitting it if it is not monotonic relative to
// its chord.
func (g *Geometry) QuadraticTo(p1, p2 Point) {
	g.assertBuilding("QuadraticTo")
	g.chopMonotonicQuadratic(g.fanPoint, p1, p2)
}

// CubicTo appends a cubic segment from the running point through control
// points p1 and p2 to p3. The cubic is classified by its algebraic type and
// chopped into convex serpentine/loop pieces, or demoted to quadratic or
// line handling when degenerate.
func (g *Geometry) CubicTo(p1, p2, p3 Point) {
	g.assertBuilding("CubicTo")
	g.chopConvexCubic(cubic{g.fanPoint, p1, p2, p3})
	// The chopper approximates degenerate tails; the contour continues
	// from the exact input end point regardless.
	g.fanPoint = p3
}

// EndContour closes the open contour and returns the number of primitives
// needed to draw it. The end verb records whether the contour's final
// running point landed back on its anchor.
func (g *Geometry) EndContour() PrimitiveTallies {
	g.assertBuilding("EndContour")
	g.building = false
	if g.fanPoint.NearlyEqual(g.anchor, closedContourTol) {
		g.verbs = append(g.verbs, VerbEndClosedContour)
	} else {
		g.verbs = append(g.verbs, VerbEndOpenContour)
	}
	return g.tallies
}

// appendLine emits a line-to verb. A line needs no curve coverage, so it
// contributes only a fan triangle.
func (g *Geometry) appendLine(pt Point) {
	g.points = append(g.points, pt)
	g.verbs = append(g.verbs, VerbLineTo)
	g.fanPoint = pt
	g.tallies.Triangles++
}

// appendMonotonicQuadratic emits one already-monotonic quadratic piece.
func (g *Geometry) appendMonotonicQuadratic(p1, p2 Point) {
	g.points = append(g.points, p1, p2)
	g.verbs = append(g.verbs, VerbMonotonicQuadTo)
	g.fanPoint = p2
	g.tallies.Triangles++
	g.tallies.Quadratics++
}

// appendConvexCubic emits one convex cubic piece under the given verb,
// which must be VerbConvexSerpentineTo or VerbConvexLoopTo.
func (g *Geometry) appendConvexCubic(v Verb, c cubic) {
	g.points = append(g.points, c.p1, c.p2, c.p3)
	g.verbs = append(g.verbs, v)
	g.fanPoint = c.p3
	g.tallies.Triangles++
	if v == VerbConvexLoopTo {
		g.tallies.Loops++
	} else {
		g.tallies.Serpentines++
	}
}

func (g *Geometry) assertIdle(method string) {
	if g.building {
		panic("ccpath: " + method + " called while a contour is open")
	}
}

func (g *Geometry) assertBuilding(method string) {
	if !g.building {
		panic("ccpath: " + method + " called with no open contour")
	}
}
