package ccpath

// PrimitiveTallies counts how many of each primitive kind are required to
// draw a contour. The downstream instance-data builder uses these to size
// its GPU buffers without a second pass over the geometry.
//
// Every emitted primitive (line, quadratic, serpentine or loop) joins the
// contour's fan anchor with one triangle, so for any single contour
// Triangles == Quadratics + Serpentines + Loops.
type PrimitiveTallies struct {
	Triangles   int // triangles in the contour's fan
	Quadratics  int
	Serpentines int
	Loops       int
}

// Add accumulates b into t.
func (t *PrimitiveTallies) Add(b PrimitiveTallies) {
	t.Triangles += b.Triangles
	t.Quadratics += b.Quadratics
	t.Serpentines += b.Serpentines
	t.Loops += b.Loops
}

// Sub returns the component-wise difference t - b. Used to recover a single
// contour's contribution from before/after running totals.
func (t PrimitiveTallies) Sub(b PrimitiveTallies) PrimitiveTallies {
	return PrimitiveTallies{
		Triangles:   t.Triangles - b.Triangles,
		Quadratics:  t.Quadratics - b.Quadratics,
		Serpentines: t.Serpentines - b.Serpentines,
		Loops:       t.Loops - b.Loops,
	}
}
