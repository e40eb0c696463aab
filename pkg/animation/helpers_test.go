package animation

import (
	"testing"

	"github.com/bugsyth/bugsyth-engine/pkg/math"
)

// chain builds a skeleton of n joints where joint i is the parent of i+1.
func chain(t *testing.T, n int) *Skeleton {
	t.Helper()
	joints := make([]Joint, n)
	origin := make([]math.Mat4, n)
	for i := range joints {
		idx := JointIndices{Index: i, Parent: i - 1}
		if i == 0 {
			idx.Parent = NoParent
		}
		if i+1 < n {
			idx.Children = []int{i + 1}
		}
		joints[i] = Joint{InverseBindMatrix: math.Identity(), Indices: idx}
		origin[i] = math.Identity()
	}

	s, err := NewSkeleton(joints, origin)
	if err != nil {
		t.Fatalf("NewSkeleton: %v", err)
	}
	return s
}

func channel(t *testing.T, target int, prop Property, times, values []float32) Channel {
	t.Helper()
	c, err := NewChannel(target, prop, times, values)
	if err != nil {
		t.Fatalf("NewChannel: %v", err)
	}
	return c
}

func approxMat(a, b math.Mat4, eps float32) bool {
	for i := range a {
		d := a[i] - b[i]
		if d < -eps || d > eps {
			return false
		}
	}
	return true
}
