package ccpath

import "testing"

func TestVerb_PointCount(t *testing.T) {
	tests := []struct {
		verb Verb
		want int
	}{
		{VerbBeginPath, 0},
		{VerbBeginContour, 1},
		{VerbLineTo, 1},
		{VerbMonotonicQuadTo, 2},
		{VerbConvexSerpentineTo, 3},
		{VerbConvexLoopTo, 3},
		{VerbEndClosedContour, 0},
		{VerbEndOpenContour, 0},
	}
	for _, tt := range tests {
		t.Run(tt.verb.String(), func(t *testing.T) {
			if got := tt.verb.PointCount(); got != tt.want {
				t.Errorf("PointCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestVerb_IsContourEnd(t *testing.T) {
	for v := VerbBeginPath; v <= VerbEndOpenContour; v++ {
		want := v == VerbEndClosedContour || v == VerbEndOpenContour
		if got := v.IsContourEnd(); got != want {
			t.Errorf("%v.IsContourEnd() = %v, want %v", v, got, want)
		}
	}
}

func TestVerb_String(t *testing.T) {
	if got := Verb(200).String(); got != "Unknown" {
		t.Errorf("out-of-range verb String() = %q, want Unknown", got)
	}
	if got := VerbConvexLoopTo.String(); got != "ConvexLoopTo" {
		t.Errorf("String() = %q", got)
	}
}
