// Package animation samples skeletal animation keyframes into per-joint
// transform matrices ready for GPU skinning.
package animation

import (
	"errors"
	"fmt"

	"github.com/bugsyth/bugsyth-engine/pkg/math"
)

// ErrDataIntegrity is returned when skeleton or animation data handed over
// by an asset loader is internally inconsistent.
var ErrDataIntegrity = errors.New("animation data integrity")

// NoParent marks the root joint.
const NoParent = -1

// JointIndices places a joint in the hierarchy. Relationships are positions
// in Skeleton.Joints.
type JointIndices struct {
	Index    int
	Parent   int // NoParent for the root
	Children []int
}

// IsRoot reports whether the joint has no parent.
func (j JointIndices) IsRoot() bool {
	return j.Parent == NoParent
}

// Joint is a single bone of a skeleton.
type Joint struct {
	InverseBindMatrix math.Mat4
	Indices           JointIndices
}

// Skeleton is a joint tree plus the matrices uploaded for skinning.
// All matrix slices have one entry per joint, in joint order.
type Skeleton struct {
	Joints              []Joint
	OriginBoneMatrices  []math.Mat4
	BoneMatrices        []math.Mat4
	InverseBindMatrices []math.Mat4

	root int
}

// NewSkeleton validates the joint tree and builds a skeleton. origin holds
// the rest transform of each joint; bone matrices start out equal to it.
func NewSkeleton(joints []Joint, origin []math.Mat4) (*Skeleton, error) {
	root, err := validateJoints(joints)
	if err != nil {
		return nil, err
	}
	if len(origin) != len(joints) {
		return nil, fmt.Errorf("%w: %d origin matrices for %d joints", ErrDataIntegrity, len(origin), len(joints))
	}

	s := &Skeleton{
		Joints:              joints,
		OriginBoneMatrices:  append([]math.Mat4(nil), origin...),
		BoneMatrices:        append([]math.Mat4(nil), origin...),
		InverseBindMatrices: make([]math.Mat4, len(joints)),
		root:                root,
	}
	for i, j := range joints {
		s.InverseBindMatrices[i] = j.InverseBindMatrix
	}
	return s, nil
}

// Root returns the index of the root joint.
func (s *Skeleton) Root() int {
	return s.root
}

// UpdateBoneMatrices recomputes every bone matrix as animated * origin.
// Joints without an animated transform use the identity.
func (s *Skeleton) UpdateBoneMatrices(animated []math.Mat4) {
	for i := range s.Joints {
		a := math.Identity()
		if i < len(animated) {
			a = animated[i]
		}
		s.BoneMatrices[i] = a.Mul(s.OriginBoneMatrices[i])
	}
}

// BoneMatrixData returns the bone matrices as one flat column-major slice,
// suitable for a mat4 array uniform.
func (s *Skeleton) BoneMatrixData() []float32 {
	data := make([]float32, 0, len(s.BoneMatrices)*16)
	for _, m := range s.BoneMatrices {
		data = append(data, m[:]...)
	}
	return data
}

// validateJoints checks index/parent/children consistency and returns the
// root index.
func validateJoints(joints []Joint) (int, error) {
	if len(joints) == 0 {
		return 0, fmt.Errorf("%w: skeleton has no joints", ErrDataIntegrity)
	}

	root := -1
	for i, j := range joints {
		idx := j.Indices
		if idx.Index != i {
			return 0, fmt.Errorf("%w: joint at position %d has index %d", ErrDataIntegrity, i, idx.Index)
		}

		if idx.IsRoot() {
			if root >= 0 {
				return 0, fmt.Errorf("%w: joints %d and %d are both roots", ErrDataIntegrity, root, i)
			}
			root = i
		} else if idx.Parent < 0 || idx.Parent >= len(joints) {
			return 0, fmt.Errorf("%w: joint %d has parent %d out of range", ErrDataIntegrity, i, idx.Parent)
		} else if !contains(joints[idx.Parent].Indices.Children, i) {
			return 0, fmt.Errorf("%w: joint %d is not listed as a child of its parent %d", ErrDataIntegrity, i, idx.Parent)
		}

		for _, c := range idx.Children {
			if c < 0 || c >= len(joints) {
				return 0, fmt.Errorf("%w: joint %d has child %d out of range", ErrDataIntegrity, i, c)
			}
			if joints[c].Indices.Parent != i {
				return 0, fmt.Errorf("%w: joint %d lists child %d whose parent is %d", ErrDataIntegrity, i, c, joints[c].Indices.Parent)
			}
		}
	}
	if root < 0 {
		return 0, fmt.Errorf("%w: skeleton has no root joint", ErrDataIntegrity)
	}

	// Every joint must be reachable from the root exactly once.
	visited := make([]bool, len(joints))
	stack := []int{root}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[i] {
			return 0, fmt.Errorf("%w: joint %d reached twice from the root", ErrDataIntegrity, i)
		}
		visited[i] = true
		stack = append(stack, joints[i].Indices.Children...)
	}
	for i, ok := range visited {
		if !ok {
			return 0, fmt.Errorf("%w: joint %d is not connected to the root", ErrDataIntegrity, i)
		}
	}
	return root, nil
}

func contains(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
