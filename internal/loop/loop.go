// Package loop runs simulated control cycles over a set of transmissions.
// Each cycle samples actuator positions from a Source, derives velocities,
// propagates actuator state to joint state through every transmission, and
// hands the resulting snapshot to an optional Recorder.
// See docs/ARCHITECTURE.md § Control loop.
package loop

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/mesh-robotics/gearbox/pkg/hardware"
	"github.com/mesh-robotics/gearbox/pkg/transmission"
)

// Runner construction errors.
var (
	ErrNoTransmissions = errors.New("at least one transmission is required")
	ErrBadRate         = errors.New("cycle rate must be positive")
	ErrNilSource       = errors.New("source must not be nil")
)

// Source produces actuator position samples. Sample fills out with one
// position per actuator, in the runner's actuator order, for the given
// elapsed time since the start of the run.
type Source interface {
	Sample(elapsed time.Duration, out []float64)
}

// SineSource drives every actuator with a sine wave, phase-shifted per
// actuator index so coupled actuators do not move in lockstep.
type SineSource struct {
	Amplitude float64
	Frequency float64 // cycles per second
	PhaseStep float64 // radians between successive actuators
}

// Sample fills out with the sine positions at the given elapsed time.
func (s SineSource) Sample(elapsed time.Duration, out []float64) {
	t := elapsed.Seconds()
	for i := range out {
		out[i] = s.Amplitude * math.Sin(2.0*math.Pi*s.Frequency*t+float64(i)*s.PhaseStep)
	}
}

// Recorder receives one snapshot per completed cycle. The value maps are
// keyed by actuator and joint name and hold positions.
type Recorder interface {
	Record(cycle int, elapsed time.Duration, actuators, joints map[string]float64) error
}

// Runner owns the value storage shared by the transmission handles and the
// hardware state registry, and steps it once per cycle.
type Runner struct {
	period   time.Duration
	source   Source
	recorder Recorder

	transmissions *transmission.Registry
	states        *hardware.StateRegistry

	actuatorNames []string
	jointNames    []string

	actPos, actVel, actEff []float64
	jntPos, jntVel, jntEff []float64
	prevPos                []float64
	samples                []float64
}

// New builds a Runner from a robot description. Every transmission config is
// validated and instantiated, its handle is bound to freshly allocated value
// storage, and state handles for all actuators and joints are registered
// under their configured names. recorder may be nil.
func New(configs []transmission.Config, rateHz float64, source Source, recorder Recorder) (*Runner, error) {
	if len(configs) == 0 {
		return nil, ErrNoTransmissions
	}
	if rateHz <= 0.0 {
		return nil, ErrBadRate
	}
	if source == nil {
		return nil, ErrNilSource
	}

	r := &Runner{
		period:        time.Duration(float64(time.Second) / rateHz),
		source:        source,
		recorder:      recorder,
		transmissions: transmission.NewRegistry(),
		states:        hardware.NewStateRegistry(),
	}

	// Size the flat storage arrays before taking pointers into them, so the
	// backing arrays are never reallocated underneath the handles.
	var numActuators, numJoints int
	for _, cfg := range configs {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		na, nj := countsFor(cfg.Type)
		numActuators += na
		numJoints += nj
	}
	r.actPos = make([]float64, numActuators)
	r.actVel = make([]float64, numActuators)
	r.actEff = make([]float64, numActuators)
	r.jntPos = make([]float64, numJoints)
	r.jntVel = make([]float64, numJoints)
	r.jntEff = make([]float64, numJoints)
	r.prevPos = make([]float64, numActuators)
	r.samples = make([]float64, numActuators)

	actOffset, jntOffset := 0, 0
	for _, cfg := range configs {
		trans, err := transmission.New(cfg)
		if err != nil {
			return nil, err
		}
		na := trans.NumActuators()
		nj := trans.NumJoints()

		actuatorData := transmission.ActuatorData{
			Position: pointers(r.actPos[actOffset : actOffset+na]),
			Velocity: pointers(r.actVel[actOffset : actOffset+na]),
			Effort:   pointers(r.actEff[actOffset : actOffset+na]),
		}
		jointData := transmission.JointData{
			Position: pointers(r.jntPos[jntOffset : jntOffset+nj]),
			Velocity: pointers(r.jntVel[jntOffset : jntOffset+nj]),
			Effort:   pointers(r.jntEff[jntOffset : jntOffset+nj]),
		}

		handle, err := transmission.NewHandle(cfg.Name, trans, actuatorData, jointData)
		if err != nil {
			return nil, err
		}
		if err := r.transmissions.Register(handle); err != nil {
			return nil, err
		}

		for i, name := range cfg.Actuators {
			state, err := hardware.NewStateHandle(name,
				&r.actPos[actOffset+i], &r.actVel[actOffset+i], &r.actEff[actOffset+i])
			if err != nil {
				return nil, err
			}
			if err := r.states.Register(state); err != nil {
				return nil, err
			}
			r.actuatorNames = append(r.actuatorNames, name)
		}
		for i, name := range cfg.Joints {
			state, err := hardware.NewStateHandle(name,
				&r.jntPos[jntOffset+i], &r.jntVel[jntOffset+i], &r.jntEff[jntOffset+i])
			if err != nil {
				return nil, err
			}
			if err := r.states.Register(state); err != nil {
				return nil, err
			}
			r.jointNames = append(r.jointNames, name)
		}

		actOffset += na
		jntOffset += nj
	}

	return r, nil
}

// countsFor mirrors the arity of the known transmission types. Unknown
// types never reach here; Validate rejects them first.
func countsFor(transmissionType string) (numActuators, numJoints int) {
	if transmissionType == transmission.TypeSimple {
		return 1, 1
	}
	return 2, 2
}

// pointers returns one pointer per element of values.
func pointers(values []float64) []*float64 {
	ptrs := make([]*float64, len(values))
	for i := range values {
		ptrs[i] = &values[i]
	}
	return ptrs
}

// Period returns the cycle period.
func (r *Runner) Period() time.Duration { return r.period }

// States returns the registry of named actuator and joint state handles.
func (r *Runner) States() *hardware.StateRegistry { return r.states }

// Transmissions returns the registry of transmission handles.
func (r *Runner) Transmissions() *transmission.Registry { return r.transmissions }

// JointPositions returns the current joint positions keyed by joint name.
func (r *Runner) JointPositions() map[string]float64 {
	return values(r.jointNames, r.jntPos)
}

// ActuatorPositions returns the current actuator positions keyed by name.
func (r *Runner) ActuatorPositions() map[string]float64 {
	return values(r.actuatorNames, r.actPos)
}

func values(names []string, positions []float64) map[string]float64 {
	m := make(map[string]float64, len(names))
	for i, name := range names {
		m[name] = positions[i]
	}
	return m
}

// Run executes cycles at the configured rate until duration elapses or ctx
// is canceled. Cycle timestamps are logical (cycle index times the period),
// so recorded traces are reproducible regardless of scheduler jitter.
// Returns the number of completed cycles and, on cancellation, ctx.Err().
func (r *Runner) Run(ctx context.Context, duration time.Duration) (int, error) {
	total := int(duration / r.period)
	r.source.Sample(0, r.prevPos)

	ticker := time.NewTicker(r.period)
	defer ticker.Stop()

	for cycle := 0; cycle < total; cycle++ {
		select {
		case <-ctx.Done():
			return cycle, ctx.Err()
		case <-ticker.C:
		}

		elapsed := time.Duration(cycle+1) * r.period
		r.step(elapsed)

		if r.recorder != nil {
			if err := r.recorder.Record(cycle, elapsed, r.ActuatorPositions(), r.JointPositions()); err != nil {
				return cycle, fmt.Errorf("recording cycle %d: %w", cycle, err)
			}
		}
	}
	return total, nil
}

// step samples actuator positions, derives velocities by finite difference,
// and propagates actuator state to joint state.
func (r *Runner) step(elapsed time.Duration) {
	r.source.Sample(elapsed, r.samples)
	dt := r.period.Seconds()
	for i, pos := range r.samples {
		r.actPos[i] = pos
		r.actVel[i] = (pos - r.prevPos[i]) / dt
		r.prevPos[i] = pos
	}
	r.transmissions.PropagateActuatorToJointState()
}
