package physics

// ColliderType decides which member of a colliding pair absorbs the
// positional correction.
type ColliderType int

const (
	// Static objects are never moved by collision resolution.
	Static ColliderType = iota
	// Dynamic objects are pushed out of whatever they overlap.
	Dynamic
)

// String returns the collider type name.
func (c ColliderType) String() string {
	switch c {
	case Static:
		return "static"
	case Dynamic:
		return "dynamic"
	default:
		return "unknown"
	}
}

// Object pairs a shape with its collider classification.
//
// The application keeps its own pointer to an Object (to read the position
// when drawing) while the World holds another. The World mutates Shape in
// place during Update.
type Object struct {
	Shape    Shape
	Collider ColliderType
}

// NewObject creates a physics object.
func NewObject(shape Shape, collider ColliderType) *Object {
	return &Object{Shape: shape, Collider: collider}
}
