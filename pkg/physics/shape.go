// Package physics implements a small pairwise collision world: axis-aligned
// boxes and spheres, narrow-phase overlap tests, minimum translation vectors
// and positional correction between static and dynamic colliders.
//
// There is no broad phase. World.Update tests every unordered pair of
// registered objects, so it is intended for scenes with a modest number of
// bodies.
package physics

import (
	"errors"
	"fmt"

	"github.com/bugsyth/bugsyth-engine/pkg/math"
)

// Shape errors.
var (
	ErrInvalidShape = errors.New("invalid shape")
)

// Shape is a collision primitive. The set of shapes is closed: Test and MTV
// dispatch over the concrete types *AABB and *Sphere.
type Shape interface {
	// Position returns the reference point used to place the shape in the
	// scene (AABB min corner, sphere center).
	Position() math.Vec3
	// Translate moves the shape by delta.
	Translate(delta math.Vec3)

	shape()
}

// AABB is an axis-aligned bounding box. Min <= Max on every axis.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// NewAABB creates a box from its corners.
func NewAABB(minPt, maxPt math.Vec3) (*AABB, error) {
	for i := 0; i < 3; i++ {
		if minPt.Axis(i) > maxPt.Axis(i) {
			return nil, fmt.Errorf("%w: aabb min %v exceeds max %v on axis %d", ErrInvalidShape, minPt, maxPt, i)
		}
	}
	return &AABB{Min: minPt, Max: maxPt}, nil
}

// NewAABBFromSize creates a box whose min corner sits at pos.
func NewAABBFromSize(pos, size math.Vec3) (*AABB, error) {
	return NewAABB(pos, pos.Add(size))
}

// Position returns the min corner.
func (b *AABB) Position() math.Vec3 { return b.Min }

// Translate moves both corners by delta.
func (b *AABB) Translate(delta math.Vec3) {
	b.Min = b.Min.Add(delta)
	b.Max = b.Max.Add(delta)
}

// Size returns the extent of the box on each axis.
func (b *AABB) Size() math.Vec3 { return b.Max.Sub(b.Min) }

// Center returns the midpoint of the box.
func (b *AABB) Center() math.Vec3 { return b.Min.Add(b.Max).Scale(0.5) }

// ClosestPoint returns the point inside the box nearest to p.
func (b *AABB) ClosestPoint(p math.Vec3) math.Vec3 {
	return p.Clamp(b.Min, b.Max)
}

func (*AABB) shape() {}

// Sphere is a ball with a non-negative radius.
type Sphere struct {
	Center math.Vec3
	Radius float32
}

// NewSphere creates a sphere.
func NewSphere(center math.Vec3, radius float32) (*Sphere, error) {
	if radius < 0 {
		return nil, fmt.Errorf("%w: negative sphere radius %v", ErrInvalidShape, radius)
	}
	return &Sphere{Center: center, Radius: radius}, nil
}

// Position returns the center.
func (s *Sphere) Position() math.Vec3 { return s.Center }

// Translate moves the center by delta.
func (s *Sphere) Translate(delta math.Vec3) {
	s.Center = s.Center.Add(delta)
}

func (*Sphere) shape() {}
