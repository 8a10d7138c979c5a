package mode

import (
	"fmt"
	"sort"

	"github.com/dshills/paintr/internal/input/mouse"
	"github.com/dshills/paintr/internal/scene"
)

// Manager owns the active tool and coordinates tool switches.
// It is not safe for concurrent use.
type Manager struct {
	// modes holds all registered modes by name.
	modes map[string]Mode

	// current is the active mode.
	current Mode

	// previous is the mode before the current one.
	previous Mode

	// callbacks are notified on mode changes.
	callbacks []ModeChangeCallback

	// context is handed to every tool.
	context *Context
}

// ModeChangeCallback is called when the mode changes.
// from is nil for the first switch.
type ModeChangeCallback func(from, to Mode)

// NewManager creates a new mode manager with no tools registered.
func NewManager(ctx *Context) *Manager {
	if ctx == nil {
		ctx = &Context{}
	}
	return &Manager{
		modes:   make(map[string]Mode),
		context: ctx,
	}
}

// Register adds a mode to the manager.
// If a mode with the same name exists, it is replaced.
func (m *Manager) Register(modes ...Mode) {
	for _, mode := range modes {
		m.modes[mode.Name()] = mode
	}
}

// Get returns a mode by name, or nil if not found.
func (m *Manager) Get(name string) Mode {
	return m.modes[name]
}

// Current returns the current mode.
// Returns nil if no mode is set.
func (m *Manager) Current() Mode {
	return m.current
}

// CurrentName returns the name of the current mode.
// Returns empty string if no mode is set.
func (m *Manager) CurrentName() string {
	if m.current == nil {
		return ""
	}
	return m.current.Name()
}

// Previous returns the previous mode.
// Returns nil if there is no previous mode.
func (m *Manager) Previous() Mode {
	return m.previous
}

// State returns the gesture state of the current mode.
func (m *Manager) State() State {
	if m.current == nil {
		return StateIdle
	}
	return m.current.State()
}

// IsMode returns true if the current mode matches the given name.
func (m *Manager) IsMode(name string) bool {
	return m.current != nil && m.current.Name() == name
}

// Switch changes to the named mode. The full reset runs even when name is
// already the current mode.
func (m *Manager) Switch(name string) error {
	newMode, ok := m.modes[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMode, name)
	}

	oldMode := m.current
	ctx := m.context

	// Exit current mode
	if oldMode != nil {
		if err := oldMode.Exit(ctx); err != nil {
			return fmt.Errorf("exit %s: %w", oldMode.Name(), err)
		}
	}
	m.current = nil

	m.reset()

	// Enter new mode
	if err := newMode.Enter(ctx); err != nil {
		return fmt.Errorf("enter %s: %w", newMode.Name(), err)
	}

	m.previous = oldMode
	m.current = newMode

	for _, cb := range m.callbacks {
		if cb != nil {
			cb(oldMode, newMode)
		}
	}
	return nil
}

// Refresh re-enters the current mode without exiting it first. A gesture in
// progress is dropped without a commit. Used after the document was replaced
// underneath the tools.
func (m *Manager) Refresh() error {
	if m.current == nil {
		return nil
	}
	m.reset()
	if err := m.current.Enter(m.context); err != nil {
		return fmt.Errorf("enter %s: %w", m.current.Name(), err)
	}
	return nil
}

// Settle ends a gesture in progress the way a tool switch would, committing
// what was drawn so far, and leaves the same tool active and idle. The
// active selection survives.
func (m *Manager) Settle() error {
	if m.current == nil || m.current.State() == StateIdle {
		return nil
	}
	if err := m.current.Exit(m.context); err != nil {
		return fmt.Errorf("exit %s: %w", m.current.Name(), err)
	}
	if err := m.current.Enter(m.context); err != nil {
		return fmt.Errorf("enter %s: %w", m.current.Name(), err)
	}
	return nil
}

// reset returns the canvas to its neutral state between tools.
func (m *Manager) reset() {
	c := m.context.Canvas
	if c == nil {
		return
	}
	c.SetFreeDrawing(false)
	c.SetSelection(false)
	c.ForEach(func(s *scene.Shape) {
		c.SetSelectable(s, false)
	})
}

// HandlePointer routes ev to the current mode only.
func (m *Manager) HandlePointer(ev mouse.Event) {
	if m.current == nil || m.context.Canvas == nil {
		return
	}
	m.current.HandlePointer(ev, m.context)
}

// OnChange registers a callback for mode changes.
// Returns a function to unregister the callback.
func (m *Manager) OnChange(callback ModeChangeCallback) func() {
	m.callbacks = append(m.callbacks, callback)
	index := len(m.callbacks) - 1

	return func() {
		// Remove callback by setting to nil (preserves indices)
		if index < len(m.callbacks) {
			m.callbacks[index] = nil
		}
	}
}

// Modes returns the names of all registered modes, sorted.
func (m *Manager) Modes() []string {
	names := make([]string, 0, len(m.modes))
	for name := range m.modes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
