package transmission

import "fmt"

// Simple relates one actuator and one joint through a fixed reduction.
// Effort scales by the reduction, velocity by its inverse, and position by
// its inverse plus the joint offset:
//
//	effort:   tj = ta*r        ta = tj/r
//	velocity: vj = va/r        va = vj*r
//	position: xj = xa/r + off  xa = (xj - off)*r
type Simple struct {
	reduction   float64
	jointOffset float64
}

var _ Transmission = (*Simple)(nil)

// NewSimple creates a simple transmission. Returns an error wrapping
// ErrZeroReduction if reduction is zero.
func NewSimple(reduction, jointOffset float64) (*Simple, error) {
	if reduction == 0.0 {
		return nil, fmt.Errorf("simple transmission: %w", ErrZeroReduction)
	}
	return &Simple{reduction: reduction, jointOffset: jointOffset}, nil
}

// NumActuators returns 1.
func (s *Simple) NumActuators() int { return 1 }

// NumJoints returns 1.
func (s *Simple) NumJoints() int { return 1 }

func (s *Simple) ActuatorToJointEffort(actuator, joint []float64) {
	checkArity("ActuatorToJointEffort", actuator, joint, 1, 1)
	joint[0] = actuator[0] * s.reduction
}

func (s *Simple) ActuatorToJointVelocity(actuator, joint []float64) {
	checkArity("ActuatorToJointVelocity", actuator, joint, 1, 1)
	joint[0] = actuator[0] / s.reduction
}

func (s *Simple) ActuatorToJointPosition(actuator, joint []float64) {
	checkArity("ActuatorToJointPosition", actuator, joint, 1, 1)
	joint[0] = actuator[0]/s.reduction + s.jointOffset
}

func (s *Simple) JointToActuatorEffort(joint, actuator []float64) {
	checkArity("JointToActuatorEffort", actuator, joint, 1, 1)
	actuator[0] = joint[0] / s.reduction
}

func (s *Simple) JointToActuatorVelocity(joint, actuator []float64) {
	checkArity("JointToActuatorVelocity", actuator, joint, 1, 1)
	actuator[0] = joint[0] * s.reduction
}

func (s *Simple) JointToActuatorPosition(joint, actuator []float64) {
	checkArity("JointToActuatorPosition", actuator, joint, 1, 1)
	actuator[0] = (joint[0] - s.jointOffset) * s.reduction
}
