package physics

import (
	gomath "math"

	"github.com/bugsyth/bugsyth-engine/pkg/math"
)

// fallbackNormal separates shapes whose centers coincide.
var fallbackNormal = math.Vec3{Y: 1}

// MTV returns the minimum translation vector that moves a out of b.
// The zero vector means there is nothing to correct.
func MTV(a, b Shape) math.Vec3 {
	switch a := a.(type) {
	case *AABB:
		switch b := b.(type) {
		case *AABB:
			return mtvAABBAABB(a, b)
		case *Sphere:
			return mtvSphereAABB(b, a).Neg()
		}
	case *Sphere:
		switch b := b.(type) {
		case *AABB:
			return mtvSphereAABB(a, b)
		case *Sphere:
			return mtvSphereSphere(a, b)
		}
	}
	return math.Vec3{}
}

// Resolve applies mtv to the pair according to their collider types.
// Dynamic-dynamic pairs split the correction evenly; a dynamic object facing
// a static one takes all of it; two static objects stay put.
func Resolve(a, b *Object, mtv math.Vec3) {
	switch {
	case a.Collider == Dynamic && b.Collider == Dynamic:
		half := mtv.Scale(0.5)
		a.Shape.Translate(half)
		b.Shape.Translate(half.Neg())
	case a.Collider == Dynamic && b.Collider == Static:
		a.Shape.Translate(mtv)
	case a.Collider == Static && b.Collider == Dynamic:
		b.Shape.Translate(mtv.Neg())
	}
}

// Solve computes the MTV for an overlapping pair and resolves it.
// It returns the vector that was applied.
func Solve(a, b *Object) math.Vec3 {
	mtv := MTV(a.Shape, b.Shape)
	Resolve(a, b, mtv)
	return mtv
}

// mtvAABBAABB pushes along the axis of least penetration.
func mtvAABBAABB(a, b *AABB) math.Vec3 {
	var overlap [3]float32
	for i := 0; i < 3; i++ {
		overlap[i] = min(a.Max.Axis(i)-b.Min.Axis(i), b.Max.Axis(i)-a.Min.Axis(i))
		if overlap[i] <= 0 {
			return math.Vec3{}
		}
	}

	axis := 0
	for i := 1; i < 3; i++ {
		if overlap[i] < overlap[axis] {
			axis = i
		}
	}

	depth := overlap[axis]
	if a.Min.Axis(axis) < b.Min.Axis(axis) {
		depth = -depth
	}
	return math.Vec3{}.WithAxis(axis, depth)
}

// mtvSphereSphere pushes a along the line between the centers.
func mtvSphereSphere(a, b *Sphere) math.Vec3 {
	d := a.Center.Sub(b.Center)
	dist := d.Length()
	depth := a.Radius + b.Radius - dist
	if depth <= 0 {
		return math.Vec3{}
	}
	if dist == 0 {
		return fallbackNormal.Scale(depth)
	}
	return d.Scale(depth / dist)
}

// mtvSphereAABB pushes the sphere away from the nearest point on the box.
func mtvSphereAABB(s *Sphere, box *AABB) math.Vec3 {
	closest := box.ClosestPoint(s.Center)
	d := s.Center.Sub(closest)
	dist := d.Length()

	if dist > 0 {
		depth := s.Radius - dist
		if depth <= 0 {
			return math.Vec3{}
		}
		return d.Scale(depth / dist)
	}

	// Center is inside the box: leave through the nearest face.
	axis, sign := 0, float32(1)
	best := float32(gomath.MaxFloat32)
	for i := 0; i < 3; i++ {
		toMin := s.Center.Axis(i) - box.Min.Axis(i)
		toMax := box.Max.Axis(i) - s.Center.Axis(i)
		if toMin < best {
			best, axis, sign = toMin, i, -1
		}
		if toMax < best {
			best, axis, sign = toMax, i, 1
		}
	}
	return math.Vec3{}.WithAxis(axis, sign*(best+s.Radius))
}
