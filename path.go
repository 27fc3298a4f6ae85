package ccpath

// PathElement represents a single element in a retained path.
type PathElement interface {
	isPathElement()
}

// MoveTo begins a new contour at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current contour.
type Close struct{}

func (Close) isPathElement() {}

// Path is a retained list of pre-transform path commands. It is the input
// side of the chopper: Fill replays the commands, applies a device
// transform, and feeds the resulting device-space contours to a Geometry.
type Path struct {
	elements []PathElement
	start    Point // start of the current contour
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo begins a new contour at (x, y).
func (p *Path) MoveTo(x, y float32) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to (x, y).
func (p *Path) LineTo(x, y float32) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve through control (cx, cy)
// to (x, y).
func (p *Path) QuadraticTo(cx, cy, x, y float32) {
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
	p.current = Pt(x, y)
}

// CubicTo draws a cubic Bezier curve through controls (c1x, c1y) and
// (c2x, c2y) to (x, y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float32) {
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
	p.current = Pt(x, y)
}

// Close closes the current contour back to its start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// SegmentCounts returns the number of on-curve/control points and commands
// in the path, the figures a caller passes to NewGeometry to pre-size the
// output buffers.
func (p *Path) SegmentCounts() (numPoints, numVerbs int) {
	for _, elem := range p.elements {
		numVerbs++
		switch elem.(type) {
		case MoveTo, LineTo:
			numPoints++
		case QuadTo:
			numPoints += 2
		case CubicTo:
			numPoints += 3
		}
	}
	return numPoints, numVerbs
}

// Fill chops the path into g under the device transform m, closing any
// contour left open by a trailing segment, and returns the summed
// primitive tallies of all contours.
//
// A segment following a Close without an intervening MoveTo starts a new
// contour at the closed contour's start point, and a segment before any
// MoveTo starts one at the origin.
//
// Mapping through m happens before any segment reaches the chopper:
// monotonicity and convexity are properties of the device-space curve, not
// of the authored one.
func (p *Path) Fill(g *Geometry, m Matrix) PrimitiveTallies {
	var total PrimitiveTallies
	g.BeginPath()

	var contourStart Point
	building := false
	endContour := func() {
		if building {
			total.Add(g.EndContour())
			building = false
		}
	}
	ensureContour := func() {
		if !building {
			g.BeginContour(m.TransformPoint(contourStart))
			building = true
		}
	}

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			endContour()
			contourStart = e.Point
			ensureContour()

		case LineTo:
			ensureContour()
			g.LineTo(m.TransformPoint(e.Point))

		case QuadTo:
			ensureContour()
			g.QuadraticTo(m.TransformPoint(e.Control), m.TransformPoint(e.Point))

		case CubicTo:
			ensureContour()
			g.CubicTo(
				m.TransformPoint(e.Control1),
				m.TransformPoint(e.Control2),
				m.TransformPoint(e.Point),
			)

		case Close:
			// No closing edge is emitted: the fan anchor is the contour
			// start, so the implicit closing triangle is degenerate. The
			// contour-end verb records whether the ends met.
			endContour()
		}
	}
	endContour()
	return total
}
