package ccpath

import "testing"

func TestPoint_Ops(t *testing.T) {
	p, q := Pt(3, 4), Pt(1, -2)

	if got := p.Add(q); got != Pt(4, 2) {
		t.Errorf("Add = %v", got)
	}
	if got := p.Sub(q); got != Pt(2, 6) {
		t.Errorf("Sub = %v", got)
	}
	if got := p.Mul(2); got != Pt(6, 8) {
		t.Errorf("Mul = %v", got)
	}
	if got := p.Dot(q); got != 3-8 {
		t.Errorf("Dot = %v", got)
	}
	if got := p.Cross(q); got != -6-4 {
		t.Errorf("Cross = %v", got)
	}
	if got := p.Length(); got != 5 {
		t.Errorf("Length = %v", got)
	}
}

func TestPoint_Lerp(t *testing.T) {
	p, q := Pt(0, 0), Pt(10, 20)
	tests := []struct {
		t    float32
		want Point
	}{
		{0, Pt(0, 0)},
		{0.5, Pt(5, 10)},
		{1, Pt(10, 20)},
	}
	for _, tt := range tests {
		if got := p.Lerp(q, tt.t); got != tt.want {
			t.Errorf("Lerp(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestPoint_NearlyEqual(t *testing.T) {
	if !Pt(1, 1).NearlyEqual(Pt(1.0005, 0.9995), 1e-3) {
		t.Error("points within tolerance reported unequal")
	}
	if Pt(1, 1).NearlyEqual(Pt(1.01, 1), 1e-3) {
		t.Error("points outside tolerance reported equal")
	}
}
