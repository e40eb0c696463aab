package physics

import (
	"go.uber.org/zap"

	"github.com/bugsyth/bugsyth-engine/pkg/math"
)

// Handle identifies an object registered with a World. Handles are assigned
// from a counter that only grows, so a removed handle is never handed out
// again by the same World. The counter is 64 bits wide so it cannot wrap in
// practice.
type Handle uint64

// ContactFunc is called for every colliding pair resolved during Update,
// after the correction has been applied.
type ContactFunc func(a, b Handle, mtv math.Vec3)

// UpdateStats describes one Update pass.
type UpdateStats struct {
	Pairs    int // unordered pairs tested
	Contacts int // pairs that overlapped and were resolved
}

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger used for registration and contact diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(w *World) {
		if log != nil {
			w.log = log
		}
	}
}

// WithContactFunc installs a contact callback.
func WithContactFunc(fn ContactFunc) Option {
	return func(w *World) {
		w.onContact = fn
	}
}

type slot struct {
	handle Handle
	obj    *Object
}

// World holds references to physics objects and resolves collisions between
// them. Objects are stored in a flat slice and visited by index; the map only
// translates handles to slice positions.
//
// A World is not safe for concurrent use, and registered objects must not be
// modified from elsewhere while Update runs.
type World struct {
	slots  []slot
	index  map[Handle]int
	nextID Handle

	log       *zap.Logger
	onContact ContactFunc
}

// NewWorld creates an empty world.
func NewWorld(opts ...Option) *World {
	w := &World{
		index: make(map[Handle]int),
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Add registers obj and returns its handle. obj must not be nil.
func (w *World) Add(obj *Object) Handle {
	h := w.nextID
	w.nextID++

	w.index[h] = len(w.slots)
	w.slots = append(w.slots, slot{handle: h, obj: obj})

	w.log.Debug("object added",
		zap.Uint64("handle", uint64(h)),
		zap.Stringer("collider", obj.Collider),
	)
	return h
}

// Remove unregisters the object behind h. Unknown handles are ignored.
//
// The last slot is moved into the vacated position, so pair order after a
// removal differs from insertion order.
func (w *World) Remove(h Handle) {
	i, ok := w.index[h]
	if !ok {
		return
	}

	last := len(w.slots) - 1
	if i != last {
		w.slots[i] = w.slots[last]
		w.index[w.slots[i].handle] = i
	}
	w.slots[last] = slot{}
	w.slots = w.slots[:last]
	delete(w.index, h)

	w.log.Debug("object removed", zap.Uint64("handle", uint64(h)))
}

// Get returns the object registered under h.
func (w *World) Get(h Handle) (*Object, bool) {
	i, ok := w.index[h]
	if !ok {
		return nil, false
	}
	return w.slots[i].obj, true
}

// Len returns the number of registered objects.
func (w *World) Len() int {
	return len(w.slots)
}

// Handles returns the registered handles in iteration order.
func (w *World) Handles() []Handle {
	hs := make([]Handle, len(w.slots))
	for i, s := range w.slots {
		hs[i] = s.handle
	}
	return hs
}

// Update tests every unordered pair once and resolves the ones that overlap.
//
// Corrections are applied immediately, so a pair visited later in the same
// pass sees positions already moved by earlier pairs.
func (w *World) Update() UpdateStats {
	var stats UpdateStats

	for i := 0; i < len(w.slots); i++ {
		a := w.slots[i]
		for j := i + 1; j < len(w.slots); j++ {
			b := w.slots[j]
			stats.Pairs++

			if !Test(a.obj.Shape, b.obj.Shape) {
				continue
			}

			mtv := Solve(a.obj, b.obj)
			stats.Contacts++
			if w.onContact != nil {
				w.onContact(a.handle, b.handle, mtv)
			}
		}
	}

	if stats.Contacts > 0 {
		w.log.Debug("collisions resolved",
			zap.Int("pairs", stats.Pairs),
			zap.Int("contacts", stats.Contacts),
		)
	}
	return stats
}
