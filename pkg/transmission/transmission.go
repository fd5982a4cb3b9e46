package transmission

import "fmt"

// Transmission is the contract shared by all transmission variants. Each
// conversion reads from the source slice and writes the destination slice in
// place; both slices stay owned by the caller and are never retained.
//
// Slice lengths must equal NumActuators and NumJoints exactly. A mismatch is
// a caller bug, not a runtime condition, and panics. Conversions perform a
// fixed sequence of arithmetic over parameters validated at construction:
// they do not allocate, block, or fail, and all are safe for concurrent use
// on a single instance.
type Transmission interface {
	// ActuatorToJointEffort maps actuator efforts to joint efforts.
	ActuatorToJointEffort(actuator, joint []float64)

	// ActuatorToJointVelocity maps actuator velocities to joint velocities.
	ActuatorToJointVelocity(actuator, joint []float64)

	// ActuatorToJointPosition maps actuator positions to joint positions,
	// including the configured joint offsets.
	ActuatorToJointPosition(actuator, joint []float64)

	// JointToActuatorEffort maps joint efforts to actuator efforts.
	JointToActuatorEffort(joint, actuator []float64)

	// JointToActuatorVelocity maps joint velocities to actuator velocities.
	JointToActuatorVelocity(joint, actuator []float64)

	// JointToActuatorPosition maps joint positions to actuator positions,
	// removing the configured joint offsets. The joint slice is read only.
	JointToActuatorPosition(joint, actuator []float64)

	// NumActuators returns the number of actuator-space values per call.
	NumActuators() int

	// NumJoints returns the number of joint-space values per call.
	NumJoints() int
}

// checkArity panics unless both slices have exactly the expected lengths.
func checkArity(op string, actuator, joint []float64, numActuators, numJoints int) {
	if len(actuator) != numActuators || len(joint) != numJoints {
		panic(fmt.Sprintf("transmission: %s requires %d actuator and %d joint values, got %d and %d",
			op, numActuators, numJoints, len(actuator), len(joint)))
	}
}
