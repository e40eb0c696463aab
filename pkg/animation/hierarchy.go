package animation

import "github.com/bugsyth/bugsyth-engine/pkg/math"

// WorldTransforms accumulates local joint transforms down the hierarchy so
// that each result is parent world * child local.
//
// AnimatedTransforms returns local transforms only. Callers that need
// world-space skinning pass its output through this function before
// UpdateBoneMatrices.
func WorldTransforms(s *Skeleton, local []math.Mat4) []math.Mat4 {
	world := make([]math.Mat4, len(s.Joints))
	localAt := func(i int) math.Mat4 {
		if i < len(local) {
			return local[i]
		}
		return math.Identity()
	}

	world[s.root] = localAt(s.root)
	stack := []int{s.root}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range s.Joints[p].Indices.Children {
			world[c] = world[p].Mul(localAt(c))
			stack = append(stack, c)
		}
	}
	return world
}
