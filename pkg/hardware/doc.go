// Package hardware exposes named actuator and joint state to control code.
// A handle binds a resource name to live position, velocity, and effort
// storage owned by the caller; registries hand handles out by name.
// See docs/ARCHITECTURE.md § Hardware state.
package hardware
