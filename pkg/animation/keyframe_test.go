package animation

import (
	"math"
	"testing"
)

func TestInterpolateKeyframe(t *testing.T) {
	times := []float32{0, 1}
	values := []float32{0, 0, 0, 10, 10, 10}

	tests := []struct {
		name string
		time float32
		want []float32
	}{
		{"midpoint", 0.5, []float32{5, 5, 5}},
		{"before first", -1, []float32{0, 0, 0}},
		{"after last", 2, []float32{10, 10, 10}},
		{"on first", 0, []float32{0, 0, 0}},
		{"on last", 1, []float32{10, 10, 10}},
		{"quarter", 0.25, []float32{2.5, 2.5, 2.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InterpolateKeyframe(times, values, tt.time, 3)
			if len(got) != 3 {
				t.Fatalf("len = %d, want 3", len(got))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestInterpolateKeyframeNaN(t *testing.T) {
	nan := float32(math.NaN())

	// A NaN sample time clamps to the last key
	got := InterpolateKeyframe([]float32{0, 1}, []float32{0, 0, 0, 10, 10, 10}, nan, 3)
	if got[0] != 10 || got[1] != 10 || got[2] != 10 {
		t.Errorf("NaN time = %v, want [10 10 10]", got)
	}

	// Unvalidated data with a NaN key must not index past the end
	got = InterpolateKeyframe([]float32{0, nan}, []float32{1, 2}, 0.5, 1)
	if got[0] != 2 {
		t.Errorf("NaN key = %v, want [2]", got)
	}
}

func TestInterpolateKeyframeBrackets(t *testing.T) {
	k := KeyFrameData{
		Times:  []float32{0, 1, 3},
		Values: []float32{0, 10, 30},
	}

	// Between the second and third keys
	if got := k.Interpolate(2, 1); got[0] != 20 {
		t.Errorf("Interpolate(2) = %v, want 20", got[0])
	}
	// Exactly on an interior key
	if got := k.Interpolate(1, 1); got[0] != 10 {
		t.Errorf("Interpolate(1) = %v, want 10", got[0])
	}
}

func TestInterpolateKeyframeEmpty(t *testing.T) {
	got := InterpolateKeyframe(nil, nil, 0.5, 4)
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
	for _, v := range got {
		if v != 0 {
			t.Errorf("empty keyframes should give zeros, got %v", got)
		}
	}

	// Values shorter than times*dims are treated as missing
	got = InterpolateKeyframe([]float32{0, 1}, []float32{1, 2, 3}, 0.5, 3)
	if got[0] != 0 || got[1] != 0 || got[2] != 0 {
		t.Errorf("short values should give zeros, got %v", got)
	}
}

func TestInterpolateKeyframeRotationTuple(t *testing.T) {
	times := []float32{0, 2}
	values := []float32{
		0, 0, 0, 1,
		0, 1, 0, 1,
	}

	got := InterpolateKeyframe(times, values, 1, 4)
	want := []float32{0, 0.5, 0, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
