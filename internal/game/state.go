package game

import "github.com/bugsyth/bugsyth-engine/internal/engine/input"

// GameState is what the application implements to drive a scene.
type GameState interface {
	// Init is called once, the first time the state becomes current.
	Init(ctx *Context) error

	// Update is called every frame with ctx.DT set.
	Update(ctx *Context) error

	// Draw queues geometry between renderer Begin and End.
	Draw(ctx *Context) error

	// Event receives input events the engine did not consume.
	Event(ctx *Context, e input.Event) error
}

// Manager manages state transitions.
type Manager struct {
	current GameState
	next    GameState
	started map[GameState]bool
}

// NewManager creates a new state manager starting in initial.
func NewManager(initial GameState) *Manager {
	return &Manager{next: initial, started: make(map[GameState]bool)}
}

// Current returns the current state.
func (m *Manager) Current() GameState {
	return m.current
}

// Change schedules a state change for the start of the next update.
func (m *Manager) Change(next GameState) {
	m.next = next
}

// Update processes state changes and updates the current state.
func (m *Manager) Update(ctx *Context) error {
	if m.next != nil {
		m.current = m.next
		m.next = nil
		if !m.started[m.current] {
			m.started[m.current] = true
			if err := m.current.Init(ctx); err != nil {
				return err
			}
		}
	}

	if m.current != nil {
		return m.current.Update(ctx)
	}
	return nil
}

// Draw draws the current state.
func (m *Manager) Draw(ctx *Context) error {
	if m.current != nil {
		return m.current.Draw(ctx)
	}
	return nil
}

// Event forwards an input event to the current state.
func (m *Manager) Event(ctx *Context, e input.Event) error {
	if m.current != nil {
		return m.current.Event(ctx, e)
	}
	return nil
}
