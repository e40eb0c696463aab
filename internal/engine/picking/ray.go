// Package picking provides ray casting against collision shapes.
package picking

import (
	gomath "math"

	"github.com/bugsyth/bugsyth-engine/pkg/math"
	"github.com/bugsyth/bugsyth-engine/pkg/physics"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// At returns the point t units along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// ScreenToNDC converts pixel coordinates to normalized device coordinates
// (-1 to 1, Y up).
func ScreenToNDC(screenX, screenY, viewportW, viewportH float32) (float32, float32) {
	ndcX := 2.0*screenX/viewportW - 1.0
	ndcY := 1.0 - 2.0*screenY/viewportH // Flip Y
	return ndcX, ndcY
}

// CameraRay builds the ray through an NDC point for a perspective camera at
// eye looking at center.
func CameraRay(eye, center, up math.Vec3, fovY, aspect, ndcX, ndcY float32) Ray {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)

	h := float32(gomath.Tan(float64(fovY) / 2))
	dir := f.Add(s.Scale(ndcX * h * aspect)).Add(u.Scale(ndcY * h))
	return Ray{Origin: eye, Direction: dir.Normalize()}
}

// IntersectShape dispatches on the collision shape.
func (r Ray) IntersectShape(s physics.Shape) (float32, bool) {
	switch s := s.(type) {
	case *physics.AABB:
		return r.IntersectAABB(s)
	case *physics.Sphere:
		return r.IntersectSphere(s)
	default:
		return 0, false
	}
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance to intersection (t) and whether intersection occurred.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box *physics.AABB) (t float32, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	for axis := 0; axis < 3; axis++ {
		o, d := r.Origin.Axis(axis), r.Direction.Axis(axis)
		lo, hi := box.Min.Axis(axis), box.Max.Axis(axis)
		if d == 0 {
			// Parallel to this slab: must already be between its planes.
			if o < lo || o > hi {
				return 0, false
			}
			continue
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// IntersectSphere returns the distance to the first hit on the sphere's
// surface, or the exit distance when the ray starts inside.
func (r Ray) IntersectSphere(s *physics.Sphere) (float32, bool) {
	oc := r.Origin.Sub(s.Center)
	b := oc.Dot(r.Direction)
	c := oc.LengthSq() - s.Radius*s.Radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := float32(gomath.Sqrt(float64(disc)))
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}
