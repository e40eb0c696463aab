package math

import (
	"math"
	"testing"
)

func TestQuatFromSlice(t *testing.T) {
	q := QuatFromSlice([]float32{0.1, 0.2, 0.3, 0.9})
	if q != (Quat{X: 0.1, Y: 0.2, Z: 0.3, W: 0.9}) {
		t.Errorf("QuatFromSlice = %v", q)
	}
	if got := QuatFromSlice([]float32{1, 2}); got != QuatIdentity() {
		t.Errorf("short slice should give identity, got %v", got)
	}
}

func TestQuatNormalize(t *testing.T) {
	n := Quat{X: 1, Y: 2, Z: 3, W: 4}.Normalize()

	if l := float32(math.Sqrt(float64(n.Dot(n)))); abs(l-1) > 0.0001 {
		t.Errorf("normalized quaternion length should be 1, got %v", l)
	}
	if got := (Quat{}).Normalize(); got != QuatIdentity() {
		t.Errorf("zero quaternion should normalize to identity, got %v", got)
	}
}

func TestQuatToMat4(t *testing.T) {
	if m := QuatIdentity().ToMat4(); m != Identity() {
		t.Errorf("identity quaternion should give identity matrix, got %v", m)
	}

	// 90 degrees around Y takes +X to -Z
	m := QuatFromAxisAngle(Vec3{Y: 1}, float32(math.Pi/2)).ToMat4()
	p := m.TransformVec3(Vec3{X: 1})
	if abs(p.X) > 0.001 || abs(p.Y) > 0.001 || abs(p.Z+1) > 0.001 {
		t.Errorf("rotated +X = %v, want (0, 0, -1)", p)
	}
}
