// Package scene loads YAML descriptions of physics bodies and registers
// them with a physics world.
package scene

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bugsyth/bugsyth-engine/pkg/math"
	"github.com/bugsyth/bugsyth-engine/pkg/physics"
)

// Scene description errors.
var (
	ErrUnknownShape    = errors.New("unknown shape")
	ErrUnknownCollider = errors.New("unknown collider")
	ErrDuplicateBody   = errors.New("duplicate body")
	ErrUnknownPlayer   = errors.New("unknown player body")
	ErrInvalidBody     = errors.New("invalid body")
)

// Shape names accepted in scene files.
const (
	ShapeBox    = "box"
	ShapeSphere = "sphere"
)

// Scene is a list of bodies plus the name of the one driven by input.
type Scene struct {
	Player string     `yaml:"player,omitempty"`
	Bodies []BodyDesc `yaml:"bodies"`
}

// BodyDesc describes one body. Boxes are placed by their min corner,
// spheres by their center.
type BodyDesc struct {
	Name     string      `yaml:"name"`
	Shape    string      `yaml:"shape"`
	Collider string      `yaml:"collider"`
	Position [3]float32  `yaml:"position"`
	Size     [3]float32  `yaml:"size,omitempty"`
	Radius   float32     `yaml:"radius,omitempty"`
	Color    *[3]float32 `yaml:"color,omitempty"`
}

// Body is a registered body, ready to be drawn.
type Body struct {
	Name   string
	Handle physics.Handle
	Object *physics.Object
	Color  [3]float32
}

// palette colours bodies that don't set one.
var palette = [][3]float32{
	{0.95, 0.45, 0.25},
	{0.30, 0.70, 0.95},
	{0.55, 0.85, 0.35},
	{0.90, 0.80, 0.30},
	{0.75, 0.45, 0.90},
	{0.85, 0.85, 0.85},
}

// Load reads and validates a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a scene from YAML.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks names, shapes and colliders without touching a world.
func (s *Scene) Validate() error {
	seen := make(map[string]bool, len(s.Bodies))
	for i := range s.Bodies {
		b := &s.Bodies[i]
		if b.Name == "" {
			return fmt.Errorf("%w: body %d has no name", ErrInvalidBody, i)
		}
		if seen[b.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateBody, b.Name)
		}
		seen[b.Name] = true

		if _, err := parseCollider(b.Collider); err != nil {
			return fmt.Errorf("body %q: %w", b.Name, err)
		}
		if _, err := b.newShape(); err != nil {
			return fmt.Errorf("body %q: %w", b.Name, err)
		}
	}
	if s.Player != "" && !seen[s.Player] {
		return fmt.Errorf("%w: %q", ErrUnknownPlayer, s.Player)
	}
	return nil
}

// Build registers every body with the world in declaration order.
func (s *Scene) Build(world *physics.World) ([]Body, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	bodies := make([]Body, 0, len(s.Bodies))
	for i := range s.Bodies {
		desc := &s.Bodies[i]
		shape, _ := desc.newShape()
		collider, _ := parseCollider(desc.Collider)

		obj := physics.NewObject(shape, collider)
		color := palette[i%len(palette)]
		if desc.Color != nil {
			color = *desc.Color
		}
		bodies = append(bodies, Body{
			Name:   desc.Name,
			Handle: world.Add(obj),
			Object: obj,
			Color:  color,
		})
	}
	return bodies, nil
}

// Find returns the body with the given name.
func Find(bodies []Body, name string) (Body, bool) {
	for _, b := range bodies {
		if b.Name == name {
			return b, true
		}
	}
	return Body{}, false
}

func (b *BodyDesc) newShape() (physics.Shape, error) {
	pos := math.Vec3FromSlice(b.Position[:])
	switch b.Shape {
	case ShapeBox:
		box, err := physics.NewAABBFromSize(pos, math.Vec3FromSlice(b.Size[:]))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
		}
		return box, nil
	case ShapeSphere:
		sphere, err := physics.NewSphere(pos, b.Radius)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
		}
		return sphere, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, b.Shape)
	}
}

func parseCollider(name string) (physics.ColliderType, error) {
	switch name {
	case physics.Static.String():
		return physics.Static, nil
	case physics.Dynamic.String():
		return physics.Dynamic, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCollider, name)
	}
}

// Default returns the built-in demo scene: a floor, a static pillar, two
// dynamic boxes and a ball.
func Default() *Scene {
	return &Scene{
		Player: "player",
		Bodies: []BodyDesc{
			{Name: "player", Shape: ShapeBox, Collider: "dynamic", Position: [3]float32{2, 3, 2}, Size: [3]float32{1, 1, 1}},
			{Name: "pillar", Shape: ShapeBox, Collider: "static", Position: [3]float32{0, 2, 0}, Size: [3]float32{1, 1, 1}},
			{Name: "crate", Shape: ShapeBox, Collider: "dynamic", Position: [3]float32{5, 2, 5}, Size: [3]float32{1, 1, 1}},
			{Name: "floor", Shape: ShapeBox, Collider: "static", Position: [3]float32{0, 0, 0}, Size: [3]float32{20, 2, 20}},
			{Name: "ball", Shape: ShapeSphere, Collider: "dynamic", Position: [3]float32{4, 2.6, 2.5}, Radius: 0.5},
		},
	}
}
