package instance

import (
	"testing"

	"github.com/gogpu/ccpath"
)

func TestBuild_MixedContour(t *testing.T) {
	g := ccpath.NewGeometry(16, 16)
	g.BeginPath()
	g.BeginContour(ccpath.Pt(0, 0))
	g.LineTo(ccpath.Pt(10, 0))
	g.QuadraticTo(ccpath.Pt(15, 5), ccpath.Pt(20, 0))
	g.CubicTo(ccpath.Pt(32, 16), ccpath.Pt(46, -8), ccpath.Pt(50, 1))
	total := g.EndContour()

	b, err := Build(g.Verbs(), g.Points(), total)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if got := b.Counts(); got != total {
		t.Errorf("instance counts = %+v, want tallies %+v", got, total)
	}
	if len(b.Fans) != total.Triangles*fanFloats {
		t.Errorf("fan floats = %d, want %d", len(b.Fans), total.Triangles*fanFloats)
	}

	// Every fan triangle shares the contour's anchor.
	for i := 0; i < len(b.Fans); i += fanFloats {
		if b.Fans[i] != 0 || b.Fans[i+1] != 0 {
			t.Errorf("fan %d anchor = (%v, %v), want (0, 0)",
				i/fanFloats, b.Fans[i], b.Fans[i+1])
		}
	}
}

func TestBuild_MultipleContoursAccumulate(t *testing.T) {
	g := ccpath.NewGeometry(16, 16)
	g.BeginPath()
	g.BeginContour(ccpath.Pt(0, 0))
	g.LineTo(ccpath.Pt(10, 0))
	total := g.EndContour()

	g.BeginContour(ccpath.Pt(50, 50))
	g.LineTo(ccpath.Pt(60, 50))
	g.LineTo(ccpath.Pt(60, 60))
	total.Add(g.EndContour())

	b, err := Build(g.Verbs(), g.Points(), total)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := b.Counts(); got != total {
		t.Errorf("instance counts = %+v, want %+v", got, total)
	}

	// The second contour's fans are anchored at (50, 50), not at the
	// first contour's anchor.
	last := b.Fans[len(b.Fans)-fanFloats:]
	if last[0] != 50 || last[1] != 50 {
		t.Errorf("last fan anchor = (%v, %v), want (50, 50)", last[0], last[1])
	}
}

func TestBuild_QuadraticInstanceCarriesStartPoint(t *testing.T) {
	g := ccpath.NewGeometry(8, 8)
	g.BeginContour(ccpath.Pt(1, 2))
	g.QuadraticTo(ccpath.Pt(5, 3), ccpath.Pt(9, 2))
	total := g.EndContour()

	b, err := Build(g.Verbs(), g.Points(), total)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(b.Quadratics) != quadFloats {
		t.Fatalf("quadratic floats = %d, want %d", len(b.Quadratics), quadFloats)
	}
	// start.xy comes from the running point, not the point stream.
	if b.Quadratics[0] != 1 || b.Quadratics[1] != 2 {
		t.Errorf("quadratic start = (%v, %v), want (1, 2)",
			b.Quadratics[0], b.Quadratics[1])
	}
}

func TestBuild_MalformedStreams(t *testing.T) {
	tests := []struct {
		name   string
		verbs  []ccpath.Verb
		points []ccpath.Point
	}{
		{
			name:  "verb overruns points",
			verbs: []ccpath.Verb{ccpath.VerbBeginContour, ccpath.VerbLineTo},
			points: []ccpath.Point{
				ccpath.Pt(0, 0),
			},
		},
		{
			name:  "unconsumed points",
			verbs: []ccpath.Verb{ccpath.VerbBeginContour, ccpath.VerbEndOpenContour},
			points: []ccpath.Point{
				ccpath.Pt(0, 0), ccpath.Pt(1, 1),
			},
		},
		{
			name:   "segment outside contour",
			verbs:  []ccpath.Verb{ccpath.VerbLineTo},
			points: []ccpath.Point{ccpath.Pt(0, 0)},
		},
		{
			name:  "unterminated contour",
			verbs: []ccpath.Verb{ccpath.VerbBeginContour},
			points: []ccpath.Point{
				ccpath.Pt(0, 0),
			},
		},
		{
			name: "nested contour",
			verbs: []ccpath.Verb{
				ccpath.VerbBeginContour, ccpath.VerbBeginContour,
			},
			points: []ccpath.Point{ccpath.Pt(0, 0), ccpath.Pt(1, 1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Build(tt.verbs, tt.points, ccpath.PrimitiveTallies{}); err == nil {
				t.Error("Build accepted a malformed stream")
			}
		})
	}
}

func TestLayouts(t *testing.T) {
	fan := FanLayout()
	if fan.ArrayStride != fanStride || len(fan.Attributes) != 3 {
		t.Errorf("fan layout stride %d attrs %d", fan.ArrayStride, len(fan.Attributes))
	}
	quad := QuadraticLayout()
	if quad.ArrayStride != quadStride || len(quad.Attributes) != 3 {
		t.Errorf("quadratic layout stride %d attrs %d", quad.ArrayStride, len(quad.Attributes))
	}
	cub := CubicLayout()
	if cub.ArrayStride != cubicStride || len(cub.Attributes) != 4 {
		t.Errorf("cubic layout stride %d attrs %d", cub.ArrayStride, len(cub.Attributes))
	}
}
