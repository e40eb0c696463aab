package renderer

import "testing"

func TestAppendColored(t *testing.T) {
	color := [3]float32{0.1, 0.2, 0.3}
	tests := []struct {
		name      string
		positions []float32
		want      []float32
	}{
		{"empty", nil, nil},
		{
			name:      "one segment",
			positions: []float32{0, 0, 0, 1, 2, 3},
			want: []float32{
				0, 0, 0, 0.1, 0.2, 0.3,
				1, 2, 3, 0.1, 0.2, 0.3,
			},
		},
		{
			name:      "trailing partial position",
			positions: []float32{4, 5, 6, 7},
			want:      []float32{4, 5, 6, 0.1, 0.2, 0.3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AppendColored(nil, tt.positions, color)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d floats, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("float %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestAppendColoredKeepsPrefix(t *testing.T) {
	dst := []float32{9, 9, 9, 9, 9, 9}
	got := AppendColored(dst, []float32{1, 1, 1}, [3]float32{})
	if len(got) != 12 || got[0] != 9 || got[6] != 1 {
		t.Errorf("unexpected result %v", got)
	}
}

func TestAppendColoredMatchesAttributeLayout(t *testing.T) {
	color := [3]float32{0.4, 0.5, 0.6}
	got := AppendColored(nil, []float32{1, 2, 3, 4, 5, 6}, color)
	if len(got) != 2*floatsPerVertex {
		t.Fatalf("got %d floats, want %d", len(got), 2*floatsPerVertex)
	}
	for v := 0; v < 2; v++ {
		base := v * floatsPerVertex
		for i := 0; i < 3; i++ {
			if got[base+colorOffset+i] != color[i] {
				t.Errorf("vertex %d color[%d] = %v, want %v", v, i, got[base+colorOffset+i], color[i])
			}
			if got[base+i] != float32(v*3+i+1) {
				t.Errorf("vertex %d position[%d] = %v", v, i, got[base+i])
			}
		}
	}
}
