package loop

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-robotics/gearbox/pkg/transmission"
)

// rampSource moves every actuator linearly, with a distinct slope per index.
type rampSource struct{}

func (rampSource) Sample(elapsed time.Duration, out []float64) {
	t := elapsed.Seconds()
	for i := range out {
		out[i] = t * float64(i+1)
	}
}

// captureRecorder collects every snapshot it receives.
type captureRecorder struct {
	cycles []int
	joints []map[string]float64
	err    error
}

func (c *captureRecorder) Record(cycle int, elapsed time.Duration, actuators, joints map[string]float64) error {
	if c.err != nil {
		return c.err
	}
	c.cycles = append(c.cycles, cycle)
	c.joints = append(c.joints, joints)
	return nil
}

func wristConfig() transmission.Config {
	return transmission.Config{
		Name:              "wrist",
		Type:              transmission.TypeDifferential,
		Actuators:         []string{"wrist_motor_left", "wrist_motor_right"},
		Joints:            []string{"wrist_pitch", "wrist_roll"},
		ActuatorReduction: []float64{2.0, 2.0},
		JointReduction:    []float64{1.0, 1.0},
	}
}

func TestNewRunnerValidation(t *testing.T) {
	_, err := New(nil, 100.0, rampSource{}, nil)
	assert.ErrorIs(t, err, ErrNoTransmissions)

	_, err = New([]transmission.Config{wristConfig()}, 0.0, rampSource{}, nil)
	assert.ErrorIs(t, err, ErrBadRate)

	_, err = New([]transmission.Config{wristConfig()}, 100.0, nil, nil)
	assert.ErrorIs(t, err, ErrNilSource)

	bad := wristConfig()
	bad.Type = "planetary"
	_, err = New([]transmission.Config{bad}, 100.0, rampSource{}, nil)
	assert.ErrorIs(t, err, transmission.ErrTypeUnknown)

	dup := wristConfig()
	_, err = New([]transmission.Config{wristConfig(), dup}, 100.0, rampSource{}, nil)
	assert.ErrorIs(t, err, transmission.ErrDuplicateHandle)
}

func TestRunnerRegistersNamedState(t *testing.T) {
	r, err := New([]transmission.Config{wristConfig()}, 100.0, rampSource{}, nil)
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"wrist_motor_left", "wrist_motor_right", "wrist_pitch", "wrist_roll"},
		r.States().Names())
	assert.Equal(t, []string{"wrist"}, r.Transmissions().Names())
}

func TestRunnerPropagatesEachCycle(t *testing.T) {
	rec := &captureRecorder{}
	r, err := New([]transmission.Config{wristConfig()}, 1000.0, rampSource{}, rec)
	require.NoError(t, err)

	cycles, err := r.Run(context.Background(), 10*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 10, cycles)
	assert.Len(t, rec.cycles, 10)

	// The final joint state must match a direct conversion of the final
	// actuator sample through the same transmission.
	trans, err := transmission.NewDifferential([]float64{2.0, 2.0}, []float64{1.0, 1.0}, nil)
	require.NoError(t, err)

	elapsed := 10 * r.Period()
	act := make([]float64, 2)
	rampSource{}.Sample(elapsed, act)
	want := make([]float64, 2)
	trans.ActuatorToJointPosition(act, want)

	got := r.JointPositions()
	assert.InDelta(t, want[0], got["wrist_pitch"], 1e-9)
	assert.InDelta(t, want[1], got["wrist_roll"], 1e-9)

	last := rec.joints[len(rec.joints)-1]
	assert.InDelta(t, want[0], last["wrist_pitch"], 1e-9)
}

func TestRunnerStopsOnCancel(t *testing.T) {
	r, err := New([]transmission.Config{wristConfig()}, 10.0, rampSource{}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cycles, err := r.Run(ctx, time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, cycles)
}

func TestSineSourcePhaseShift(t *testing.T) {
	src := SineSource{Amplitude: 2.0, Frequency: 1.0, PhaseStep: 0.5}

	out := make([]float64, 2)
	src.Sample(0, out)
	assert.InDelta(t, 0.0, out[0], 1e-9)
	assert.NotZero(t, out[1], "phase-shifted actuator must start off zero")

	src.Sample(250*time.Millisecond, out)
	assert.InDelta(t, 2.0, out[0], 1e-9)
}
