// Package transmission converts effort, velocity, and position quantities
// between actuator space and joint space. A Transmission encapsulates the
// coupling ratios and position offsets of one mechanical transmission so
// that control code never reasons about mechanism geometry.
// See docs/ARCHITECTURE.md § Transmissions.
package transmission
