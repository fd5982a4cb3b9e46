package hardware

import (
	"errors"
	"fmt"
)

// Handle and registry errors.
var (
	ErrNameEmpty       = errors.New("resource name must not be empty")
	ErrNilValue        = errors.New("value locations must not be nil")
	ErrDuplicateHandle = errors.New("handle is already registered")
	ErrHandleNotFound  = errors.New("handle not found")
)

// StateHandle reads the position, velocity, and effort of one named
// resource through caller-owned storage. The handle never takes ownership
// of the locations; it is cheap to copy and safe to pass by value.
type StateHandle struct {
	name     string
	position *float64
	velocity *float64
	effort   *float64
}

// NewStateHandle binds a resource name to its three value locations.
func NewStateHandle(name string, position, velocity, effort *float64) (StateHandle, error) {
	if name == "" {
		return StateHandle{}, ErrNameEmpty
	}
	if position == nil || velocity == nil || effort == nil {
		return StateHandle{}, fmt.Errorf("state handle %q: %w", name, ErrNilValue)
	}
	return StateHandle{name: name, position: position, velocity: velocity, effort: effort}, nil
}

// Name returns the resource name.
func (h StateHandle) Name() string { return h.name }

// Position returns the current position value.
func (h StateHandle) Position() float64 { return *h.position }

// Velocity returns the current velocity value.
func (h StateHandle) Velocity() float64 { return *h.velocity }

// Effort returns the current effort value.
func (h StateHandle) Effort() float64 { return *h.effort }

// CommandHandle is a StateHandle plus a writable command location.
type CommandHandle struct {
	StateHandle
	command *float64
}

// NewCommandHandle binds a state handle to a command location.
func NewCommandHandle(state StateHandle, command *float64) (CommandHandle, error) {
	if command == nil {
		return CommandHandle{}, fmt.Errorf("command handle %q: %w", state.Name(), ErrNilValue)
	}
	return CommandHandle{StateHandle: state, command: command}, nil
}

// SetCommand writes the command value.
func (h CommandHandle) SetCommand(value float64) { *h.command = value }

// Command returns the last written command value.
func (h CommandHandle) Command() float64 { return *h.command }
