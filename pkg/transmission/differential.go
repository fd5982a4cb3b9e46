package transmission

import "fmt"

// Differential relates two actuators and two joints through a differential
// mechanism: both actuators jointly drive both joints, with one joint moved
// by the sum of the actuator motions and the other by their difference.
//
// Reduction ratios take any nonzero real value. A magnitude greater than one
// reduces velocity and amplifies effort; a negative sign flips direction.
// Joint offsets reconcile actuator and joint zero positions and participate
// only in the position mappings.
//
// The mappings are:
//
//	effort, actuator to joint:   tj0 = jr0*(ta0*ar0 + ta1*ar1)
//	                             tj1 = jr1*(ta0*ar0 - ta1*ar1)
//	effort, joint to actuator:   ta0 = (tj0/jr0 + tj1/jr1) / (2*ar0)
//	                             ta1 = (tj0/jr0 - tj1/jr1) / (2*ar1)
//	velocity, actuator to joint: vj0 = (va0/ar0 + va1/ar1) / (2*jr0)
//	                             vj1 = (va0/ar0 - va1/ar1) / (2*jr1)
//	velocity, joint to actuator: va0 = (vj0*jr0 + vj1*jr1) * ar0
//	                             va1 = (vj0*jr0 - vj1*jr1) * ar1
//
// Position is not given its own formulas. Position is the integral of
// velocity, so the actuator-to-joint mapping applies the velocity flow map
// and adds the per-joint offset, and the reverse mapping subtracts the
// offset before applying the reverse flow map. The two position mappings
// therefore stay consistent with the velocity mappings by construction.
type Differential struct {
	actuatorReduction [2]float64
	jointReduction    [2]float64
	jointOffset       [2]float64
}

var _ Transmission = (*Differential)(nil)

// NewDifferential creates a differential transmission from its reduction
// ratios and joint offsets. A nil jointOffset defaults to zero offsets.
// Returns an error wrapping ErrVectorSize if any vector's length is not
// exactly 2, or ErrZeroReduction if any reduction value is zero. On success
// the parameters are copied and frozen for the life of the instance.
func NewDifferential(actuatorReduction, jointReduction, jointOffset []float64) (*Differential, error) {
	if jointOffset == nil {
		jointOffset = []float64{0.0, 0.0}
	}
	if len(actuatorReduction) != 2 || len(jointReduction) != 2 || len(jointOffset) != 2 {
		return nil, fmt.Errorf("differential transmission: %w", ErrVectorSize)
	}
	if actuatorReduction[0] == 0.0 || actuatorReduction[1] == 0.0 ||
		jointReduction[0] == 0.0 || jointReduction[1] == 0.0 {
		return nil, fmt.Errorf("differential transmission: %w", ErrZeroReduction)
	}

	d := &Differential{}
	copy(d.actuatorReduction[:], actuatorReduction)
	copy(d.jointReduction[:], jointReduction)
	copy(d.jointOffset[:], jointOffset)
	return d, nil
}

// NumActuators returns 2.
func (d *Differential) NumActuators() int { return 2 }

// NumJoints returns 2.
func (d *Differential) NumJoints() int { return 2 }

// ActuatorToJointEffort maps actuator efforts to joint efforts.
func (d *Differential) ActuatorToJointEffort(actuator, joint []float64) {
	checkArity("ActuatorToJointEffort", actuator, joint, 2, 2)
	ar := &d.actuatorReduction
	jr := &d.jointReduction
	joint[0] = jr[0] * (actuator[0]*ar[0] + actuator[1]*ar[1])
	joint[1] = jr[1] * (actuator[0]*ar[0] - actuator[1]*ar[1])
}

// ActuatorToJointVelocity maps actuator velocities to joint velocities.
func (d *Differential) ActuatorToJointVelocity(actuator, joint []float64) {
	checkArity("ActuatorToJointVelocity", actuator, joint, 2, 2)
	ar := &d.actuatorReduction
	jr := &d.jointReduction
	joint[0] = (actuator[0]/ar[0] + actuator[1]/ar[1]) / (2.0 * jr[0])
	joint[1] = (actuator[0]/ar[0] - actuator[1]/ar[1]) / (2.0 * jr[1])
}

// ActuatorToJointPosition maps actuator positions to joint positions.
func (d *Differential) ActuatorToJointPosition(actuator, joint []float64) {
	checkArity("ActuatorToJointPosition", actuator, joint, 2, 2)
	d.ActuatorToJointVelocity(actuator, joint) // apply flow map
	joint[0] += d.jointOffset[0]               // then add the integration
	joint[1] += d.jointOffset[1]               // constant to each joint
}

// JointToActuatorEffort maps joint efforts to actuator efforts.
func (d *Differential) JointToActuatorEffort(joint, actuator []float64) {
	checkArity("JointToActuatorEffort", actuator, joint, 2, 2)
	ar := &d.actuatorReduction
	jr := &d.jointReduction
	actuator[0] = (joint[0]/jr[0] + joint[1]/jr[1]) / (2.0 * ar[0])
	actuator[1] = (joint[0]/jr[0] - joint[1]/jr[1]) / (2.0 * ar[1])
}

// JointToActuatorVelocity maps joint velocities to actuator velocities.
func (d *Differential) JointToActuatorVelocity(joint, actuator []float64) {
	checkArity("JointToActuatorVelocity", actuator, joint, 2, 2)
	ar := &d.actuatorReduction
	jr := &d.jointReduction
	actuator[0] = (joint[0]*jr[0] + joint[1]*jr[1]) * ar[0]
	actuator[1] = (joint[0]*jr[0] - joint[1]*jr[1]) * ar[1]
}

// JointToActuatorPosition maps joint positions to actuator positions. The
// joint slice is never written.
func (d *Differential) JointToActuatorPosition(joint, actuator []float64) {
	checkArity("JointToActuatorPosition", actuator, joint, 2, 2)
	// Remove the integration constant into a call-local scratch pair, then
	// apply the reverse flow map to the scratch. No instance state is
	// touched, so concurrent calls on one instance do not race.
	tmp := [2]float64{
		joint[0] - d.jointOffset[0],
		joint[1] - d.jointOffset[1],
	}
	d.JointToActuatorVelocity(tmp[:], actuator)
}
