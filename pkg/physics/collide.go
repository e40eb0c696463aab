package physics

// Test reports whether two shapes overlap.
//
// Box-box overlap is strict: boxes that only share a face are not colliding.
// Tests involving a sphere are inclusive, so touching counts.
func Test(a, b Shape) bool {
	switch a := a.(type) {
	case *AABB:
		switch b := b.(type) {
		case *AABB:
			return testAABBAABB(a, b)
		case *Sphere:
			return testAABBSphere(a, b)
		}
	case *Sphere:
		switch b := b.(type) {
		case *AABB:
			return testAABBSphere(b, a)
		case *Sphere:
			return testSphereSphere(a, b)
		}
	}
	return false
}

func testAABBAABB(a, b *AABB) bool {
	for i := 0; i < 3; i++ {
		if a.Max.Axis(i) <= b.Min.Axis(i) || a.Min.Axis(i) >= b.Max.Axis(i) {
			return false
		}
	}
	return true
}

func testSphereSphere(a, b *Sphere) bool {
	r := a.Radius + b.Radius
	return a.Center.DistanceSq(b.Center) <= r*r
}

func testAABBSphere(box *AABB, s *Sphere) bool {
	closest := box.ClosestPoint(s.Center)
	return closest.DistanceSq(s.Center) <= s.Radius*s.Radius
}
