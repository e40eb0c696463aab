// Package debug provides debug visualization utilities.
package debug

import (
	gomath "math"

	"github.com/bugsyth/bugsyth-engine/pkg/math"
	"github.com/bugsyth/bugsyth-engine/pkg/physics"
)

// BBoxWireframeVertexCount is the number of vertices for a bbox wireframe (12 edges × 2).
const BBoxWireframeVertexCount = 24

// DefaultSphereSegments is the number of line segments per great circle.
const DefaultSphereSegments = 24

// GenerateBBoxWireframeVertices creates line vertices for a wireframe bounding box.
// Returns 24 vertices (12 edges × 2 endpoints), format: [x, y, z] per vertex.
func GenerateBBoxWireframeVertices(lo, hi math.Vec3) []float32 {
	minX, minY, minZ := lo.X, lo.Y, lo.Z
	maxX, maxY, maxZ := hi.X, hi.Y, hi.Z
	return []float32{
		// Bottom face (4 edges)
		minX, minY, minZ, maxX, minY, minZ,
		maxX, minY, minZ, maxX, minY, maxZ,
		maxX, minY, maxZ, minX, minY, maxZ,
		minX, minY, maxZ, minX, minY, minZ,
		// Top face (4 edges)
		minX, maxY, minZ, maxX, maxY, minZ,
		maxX, maxY, minZ, maxX, maxY, maxZ,
		maxX, maxY, maxZ, minX, maxY, maxZ,
		minX, maxY, maxZ, minX, maxY, minZ,
		// Vertical edges (4 edges)
		minX, minY, minZ, minX, maxY, minZ,
		maxX, minY, minZ, maxX, maxY, minZ,
		maxX, minY, maxZ, maxX, maxY, maxZ,
		minX, minY, maxZ, minX, maxY, maxZ,
	}
}

// GenerateSphereWireframeVertices creates line vertices for three great
// circles (XY, XZ and YZ planes) around center. Each circle has segments
// edges; fewer than 3 segments uses DefaultSphereSegments.
func GenerateSphereWireframeVertices(center math.Vec3, radius float32, segments int) []float32 {
	if segments < 3 {
		segments = DefaultSphereSegments
	}

	out := make([]float32, 0, 3*segments*2*3)
	// Each plane is given by the two axes the circle spans.
	planes := [3][2]int{{0, 1}, {0, 2}, {1, 2}}
	for _, axes := range planes {
		point := func(i int) math.Vec3 {
			angle := 2 * gomath.Pi * float64(i) / float64(segments)
			p := center
			p = p.WithAxis(axes[0], p.Axis(axes[0])+radius*float32(gomath.Cos(angle)))
			p = p.WithAxis(axes[1], p.Axis(axes[1])+radius*float32(gomath.Sin(angle)))
			return p
		}
		for i := 0; i < segments; i++ {
			a, b := point(i), point(i+1)
			out = append(out, a.X, a.Y, a.Z, b.X, b.Y, b.Z)
		}
	}
	return out
}

// SphereWireframeVertexCount returns the vertex count GenerateSphereWireframeVertices produces.
func SphereWireframeVertexCount(segments int) int {
	if segments < 3 {
		segments = DefaultSphereSegments
	}
	return 3 * segments * 2
}

// ShapeWireframeVertices dispatches on the collision shape.
func ShapeWireframeVertices(s physics.Shape) []float32 {
	switch s := s.(type) {
	case *physics.AABB:
		return GenerateBBoxWireframeVertices(s.Min, s.Max)
	case *physics.Sphere:
		return GenerateSphereWireframeVertices(s.Center, s.Radius, DefaultSphereSegments)
	default:
		return nil
	}
}

// GenerateGridVertices creates a flat grid on the XZ plane at height y,
// spanning [-half*step, half*step] on both axes.
func GenerateGridVertices(half int, step, y float32) []float32 {
	if half <= 0 || step <= 0 {
		return nil
	}
	extent := float32(half) * step
	out := make([]float32, 0, (2*half+1)*2*2*3)
	for i := -half; i <= half; i++ {
		o := float32(i) * step
		out = append(out,
			o, y, -extent, o, y, extent, // along Z
			-extent, y, o, extent, y, o, // along X
		)
	}
	return out
}
