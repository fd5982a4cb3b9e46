package hardware

import (
	"fmt"
	"sort"
)

// StateRegistry holds state handles by resource name.
type StateRegistry struct {
	handles map[string]StateHandle
}

// NewStateRegistry creates an empty state registry.
func NewStateRegistry() *StateRegistry {
	return &StateRegistry{handles: make(map[string]StateHandle)}
}

// Register adds a handle. Returns ErrDuplicateHandle if the name is taken.
func (r *StateRegistry) Register(h StateHandle) error {
	if _, ok := r.handles[h.Name()]; ok {
		return fmt.Errorf("state handle %q: %w", h.Name(), ErrDuplicateHandle)
	}
	r.handles[h.Name()] = h
	return nil
}

// Handle returns the handle registered under name, or ErrHandleNotFound.
func (r *StateRegistry) Handle(name string) (StateHandle, error) {
	h, ok := r.handles[name]
	if !ok {
		return StateHandle{}, fmt.Errorf("state handle %q: %w", name, ErrHandleNotFound)
	}
	return h, nil
}

// Names returns the registered resource names in sorted order.
func (r *StateRegistry) Names() []string {
	names := make([]string, 0, len(r.handles))
	for name := range r.handles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CommandRegistry holds command handles by resource name.
type CommandRegistry struct {
	handles map[string]CommandHandle
}

// NewCommandRegistry creates an empty command registry.
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{handles: make(map[string]CommandHandle)}
}

// Register adds a handle. Returns ErrDuplicateHandle if the name is taken.
func (r *CommandRegistry) Register(h CommandHandle) error {
	if _, ok := r.handles[h.Name()]; ok {
		return fmt.Errorf("command handle %q: %w", h.Name(), ErrDuplicateHandle)
	}
	r.handles[h.Name()] = h
	return nil
}

// Handle returns the handle registered under name, or ErrHandleNotFound.
func (r *CommandRegistry) Handle(name string) (CommandHandle, error) {
	h, ok := r.handles[name]
	if !ok {
		return CommandHandle{}, fmt.Errorf("command handle %q: %w", name, ErrHandleNotFound)
	}
	return h, nil
}

// Names returns the registered resource names in sorted order.
func (r *CommandRegistry) Names() []string {
	names := make([]string, 0, len(r.handles))
	for name := range r.handles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
