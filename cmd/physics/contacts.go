package main

import "github.com/bugsyth/bugsyth-engine/pkg/physics"

type pairKey struct {
	a, b physics.Handle
}

func makePairKey(a, b physics.Handle) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

// contactTracker tells a pair's first frame of contact apart from the
// frames that follow, so impact sounds fire once per touch.
type contactTracker struct {
	prev map[pairKey]bool
	cur  map[pairKey]bool
}

func newContactTracker() *contactTracker {
	return &contactTracker{
		prev: make(map[pairKey]bool),
		cur:  make(map[pairKey]bool),
	}
}

// touch records a contact this frame and reports whether it just began.
func (t *contactTracker) touch(a, b physics.Handle) bool {
	k := makePairKey(a, b)
	t.cur[k] = true
	return !t.prev[k]
}

// endFrame rolls this frame's contacts over and returns how many there were.
func (t *contactTracker) endFrame() int {
	n := len(t.cur)
	t.prev, t.cur = t.cur, t.prev
	clear(t.cur)
	return n
}

func (t *contactTracker) reset() {
	clear(t.prev)
	clear(t.cur)
}
