package physics

import (
	"testing"

	"github.com/bugsyth/bugsyth-engine/pkg/math"
)

func box(t *testing.T, minPt, maxPt math.Vec3) *AABB {
	t.Helper()
	b, err := NewAABB(minPt, maxPt)
	if err != nil {
		t.Fatalf("NewAABB(%v, %v): %v", minPt, maxPt, err)
	}
	return b
}

// unitBox returns a 1x1x1 box with its min corner at (x, y, z).
func unitBox(t *testing.T, x, y, z float32) *AABB {
	t.Helper()
	b, err := NewAABBFromSize(math.Vec3{X: x, Y: y, Z: z}, math.Vec3{X: 1, Y: 1, Z: 1})
	if err != nil {
		t.Fatalf("NewAABBFromSize: %v", err)
	}
	return b
}

func sphere(t *testing.T, center math.Vec3, r float32) *Sphere {
	t.Helper()
	s, err := NewSphere(center, r)
	if err != nil {
		t.Fatalf("NewSphere(%v, %v): %v", center, r, err)
	}
	return s
}

func approxVec(a, b math.Vec3, eps float32) bool {
	d := a.Sub(b)
	return abs(d.X) <= eps && abs(d.Y) <= eps && abs(d.Z) <= eps
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
