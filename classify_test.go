package ccpath

import "testing"

func TestClassifyCubic(t *testing.T) {
	tests := []struct {
		name           string
		p0, p1, p2, p3 Point
		want           CubicType
	}{
		{
			name: "collinear controls",
			p0:   Pt(0, 0), p1: Pt(5, 0), p2: Pt(10, 0), p3: Pt(15, 0),
			want: CubicLine,
		},
		{
			name: "all points coincident",
			p0:   Pt(3, 3), p1: Pt(3, 3), p2: Pt(3, 3), p3: Pt(3, 3),
			want: CubicLine,
		},
		{
			// Degree elevation of the quadratic (0,0), (5,1), (10,0).
			name: "elevated quadratic",
			p0:   Pt(0, 0), p1: Pt(10.0/3, 2.0/3), p2: Pt(20.0/3, 2.0/3), p3: Pt(10, 0),
			want: CubicQuadratic,
		},
		{
			// Asymmetric S-curve: inflections at t ~ 0.587 and t ~ 2.61.
			name: "serpentine",
			p0:   Pt(0, 0), p1: Pt(12, 16), p2: Pt(26, -8), p3: Pt(30, 1),
			want: CubicSerpentine,
		},
		{
			// Controls cross over the chord: self-intersection in range.
			name: "loop",
			p0:   Pt(0, 0), p1: Pt(30, 15), p2: Pt(-10, 15), p3: Pt(20, 0),
			want: CubicLoop,
		},
		{
			// 3*d2^2 == 4*d1*d3 exactly: the inflections collapse onto a
			// cusp at t = 0.5.
			name: "local cusp",
			p0:   Pt(0, 0), p1: Pt(20, 20), p2: Pt(0, 20), p3: Pt(20, 0),
			want: CubicLocalCusp,
		},
		{
			// Centrally symmetric S-curve: d1 == 0 exactly, single finite
			// cusp parameter at d3/(3*d2).
			name: "cusp at infinity",
			p0:   Pt(0, 0), p1: Pt(10, 10), p2: Pt(20, -10), p3: Pt(30, 0),
			want: CubicCuspAtInfinity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyCubic(tt.p0, tt.p1, tt.p2, tt.p3); got != tt.want {
				t.Errorf("ClassifyCubic = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifyCubic_Coefficients(t *testing.T) {
	// The serpentine case above has hand-computed coefficients:
	// a1 = -266, a2 = 468, a3 = 512 giving d1 = 334, d2 = 1068, d3 = 1536.
	_, co := classifyCubic(cubic{Pt(0, 0), Pt(12, 16), Pt(26, -8), Pt(30, 1)})

	if co.d1 != 334 || co.d2 != 1068 || co.d3 != 1536 {
		t.Errorf("coefficients = (%v, %v, %v), want (334, 1068, 1536)",
			co.d1, co.d2, co.d3)
	}
	if want := 3*1068.0*1068 - 4*334*1536; co.discr != want {
		t.Errorf("discr = %v, want %v", co.discr, want)
	}
}
