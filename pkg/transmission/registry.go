package transmission

import (
	"fmt"
	"sort"
)

// Registry holds transmission handles by name and propagates quantities
// across all of them in one call, the way a control loop consumes them.
type Registry struct {
	handles map[string]*Handle
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handles: make(map[string]*Handle)}
}

// Register adds a handle. Returns ErrDuplicateHandle if a handle with the
// same name is already registered.
func (r *Registry) Register(h *Handle) error {
	if _, ok := r.handles[h.Name()]; ok {
		return fmt.Errorf("handle %q: %w", h.Name(), ErrDuplicateHandle)
	}
	r.handles[h.Name()] = h
	return nil
}

// Handle returns the handle registered under name, or ErrHandleNotFound.
func (r *Registry) Handle(name string) (*Handle, error) {
	h, ok := r.handles[name]
	if !ok {
		return nil, fmt.Errorf("handle %q: %w", name, ErrHandleNotFound)
	}
	return h, nil
}

// Names returns the registered handle names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handles))
	for name := range r.handles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PropagateActuatorToJointState propagates actuator state to joint state on
// every registered handle.
func (r *Registry) PropagateActuatorToJointState() {
	for _, h := range r.handles {
		h.PropagateActuatorToJointState()
	}
}

// PropagateJointToActuatorCommand propagates one joint-space quantity to
// actuator space on every registered handle.
func (r *Registry) PropagateJointToActuatorCommand(q Quantity) {
	for _, h := range r.handles {
		h.PropagateJointToActuatorCommand(q)
	}
}
