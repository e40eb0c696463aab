package main

import (
	gomath "math"

	"github.com/bugsyth/bugsyth-engine/pkg/animation"
	"github.com/bugsyth/bugsyth-engine/pkg/math"
)

// newRig builds a two-joint arm: a root at the origin and a child one unit
// above it, bound in that rest pose.
func newRig() (*animation.Skeleton, error) {
	childRest := math.Translate(0, 1, 0)
	joints := []animation.Joint{
		{
			InverseBindMatrix: math.Identity(),
			Indices:           animation.JointIndices{Index: 0, Parent: animation.NoParent, Children: []int{1}},
		},
		{
			InverseBindMatrix: math.Translate(0, -1, 0),
			Indices:           animation.JointIndices{Index: 1, Parent: 0},
		},
	}
	return animation.NewSkeleton(joints, []math.Mat4{math.Identity(), childRest})
}

// newClips returns a two second "wave": the root turns a quarter circle about
// Y while the child lifts one unit off its rest offset and doubles in size.
func newClips() ([]animation.Animation, error) {
	times := []float32{0, 1, 2}
	q0 := math.QuatIdentity()
	q1 := math.QuatFromAxisAngle(math.Vec3{Y: 1}, gomath.Pi/4)
	q2 := math.QuatFromAxisAngle(math.Vec3{Y: 1}, gomath.Pi/2)

	rotate, err := animation.NewChannel(0, animation.Rotation, times, []float32{
		q0.X, q0.Y, q0.Z, q0.W,
		q1.X, q1.Y, q1.Z, q1.W,
		q2.X, q2.Y, q2.Z, q2.W,
	})
	if err != nil {
		return nil, err
	}
	lift, err := animation.NewChannel(1, animation.Translation, []float32{0, 2}, []float32{
		0, 0, 0,
		0, 1, 0,
	})
	if err != nil {
		return nil, err
	}
	grow, err := animation.NewChannel(1, animation.Scale, []float32{0, 2}, []float32{
		1, 1, 1,
		2, 2, 2,
	})
	if err != nil {
		return nil, err
	}

	return []animation.Animation{
		{Name: "wave", Channels: []animation.Channel{rotate, lift, grow}},
	}, nil
}
