package transmission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSimpleValidation(t *testing.T) {
	_, err := NewSimple(0.0, 0.0)
	assert.ErrorIs(t, err, ErrZeroReduction)

	s, err := NewSimple(-4.0, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 1, s.NumActuators())
	assert.Equal(t, 1, s.NumJoints())
}

func TestSimpleMappings(t *testing.T) {
	s, err := NewSimple(8.0, 1.0)
	require.NoError(t, err)

	out := make([]float64, 1)

	s.ActuatorToJointEffort([]float64{2.0}, out)
	assert.InDelta(t, 16.0, out[0], tolerance)
	s.JointToActuatorEffort([]float64{16.0}, out)
	assert.InDelta(t, 2.0, out[0], tolerance)

	s.ActuatorToJointVelocity([]float64{16.0}, out)
	assert.InDelta(t, 2.0, out[0], tolerance)
	s.JointToActuatorVelocity([]float64{2.0}, out)
	assert.InDelta(t, 16.0, out[0], tolerance)

	s.ActuatorToJointPosition([]float64{16.0}, out)
	assert.InDelta(t, 3.0, out[0], tolerance)
	s.JointToActuatorPosition([]float64{3.0}, out)
	assert.InDelta(t, 16.0, out[0], tolerance)
}

func TestSimpleRoundTrips(t *testing.T) {
	tests := []struct {
		name      string
		reduction float64
		offset    float64
	}{
		{"reducer", 50.0, 0.0},
		{"amplifier", 0.25, 0.0},
		{"negative with offset", -12.0, 2.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSimple(tt.reduction, tt.offset)
			require.NoError(t, err)

			joint := make([]float64, 1)
			back := make([]float64, 1)
			for _, in := range []float64{0.0, 1.0, -3.5, 42.0} {
				s.ActuatorToJointEffort([]float64{in}, joint)
				s.JointToActuatorEffort(joint, back)
				assert.InDelta(t, in, back[0], tolerance)

				s.ActuatorToJointVelocity([]float64{in}, joint)
				s.JointToActuatorVelocity(joint, back)
				assert.InDelta(t, in, back[0], tolerance)

				s.ActuatorToJointPosition([]float64{in}, joint)
				s.JointToActuatorPosition(joint, back)
				assert.InDelta(t, in, back[0], tolerance)
			}
		})
	}
}

func TestSimpleArityPanics(t *testing.T) {
	s, err := NewSimple(2.0, 0.0)
	require.NoError(t, err)

	one := []float64{1.0}
	two := []float64{1.0, 2.0}

	assert.Panics(t, func() { s.ActuatorToJointEffort(two, one) })
	assert.Panics(t, func() { s.JointToActuatorPosition(one, two) })
}
