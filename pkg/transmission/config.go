package transmission

import "fmt"

// Transmission type names accepted in a robot description.
const (
	TypeSimple       = "simple"
	TypeDifferential = "differential"
)

// knownTypes is the set of transmission types that Validate accepts.
var knownTypes = map[string]bool{
	TypeSimple:       true,
	TypeDifferential: true,
}

// arity returns the actuator and joint counts of a known transmission type.
func arity(transmissionType string) (numActuators, numJoints int) {
	switch transmissionType {
	case TypeSimple:
		return 1, 1
	case TypeDifferential:
		return 2, 2
	}
	return 0, 0
}

// Config describes one transmission in a robot description: the variant to
// build, the names of the actuators and joints it couples, and its
// mechanical parameters. For a simple transmission only the first
// ActuatorReduction and JointOffset values are used; JointReduction is
// ignored. JointOffset may be omitted and defaults to zero offsets.
type Config struct {
	Name              string    `json:"name" yaml:"name" mapstructure:"name"`
	Type              string    `json:"type" yaml:"type" mapstructure:"type"`
	Actuators         []string  `json:"actuators" yaml:"actuators" mapstructure:"actuators"`
	Joints            []string  `json:"joints" yaml:"joints" mapstructure:"joints"`
	ActuatorReduction []float64 `json:"actuator_reduction" yaml:"actuator_reduction" mapstructure:"actuator_reduction"`
	JointReduction    []float64 `json:"joint_reduction" yaml:"joint_reduction" mapstructure:"joint_reduction"`
	JointOffset       []float64 `json:"joint_offset" yaml:"joint_offset" mapstructure:"joint_offset"`
}

// Validate checks that the Config names a known transmission type and lists
// exactly as many actuator and joint names as the variant couples. It
// returns a sentinel error from this package on failure. Parameter vector
// contents are validated by the variant constructors.
func (c Config) Validate() error {
	if c.Name == "" {
		return ErrNameEmpty
	}
	if !knownTypes[c.Type] {
		return fmt.Errorf("%w: %q", ErrTypeUnknown, c.Type)
	}
	numActuators, numJoints := arity(c.Type)
	if len(c.Actuators) != numActuators || len(c.Joints) != numJoints {
		return fmt.Errorf("transmission %q: %w", c.Name, ErrWrongNameCount)
	}
	return nil
}

// New validates the Config and builds the transmission variant it selects.
func New(cfg Config) (Transmission, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Type {
	case TypeSimple:
		if len(cfg.ActuatorReduction) != 1 {
			return nil, fmt.Errorf("transmission %q: %w", cfg.Name, ErrVectorSize)
		}
		offset := 0.0
		if len(cfg.JointOffset) > 0 {
			offset = cfg.JointOffset[0]
		}
		t, err := NewSimple(cfg.ActuatorReduction[0], offset)
		if err != nil {
			return nil, fmt.Errorf("transmission %q: %w", cfg.Name, err)
		}
		return t, nil

	case TypeDifferential:
		t, err := NewDifferential(cfg.ActuatorReduction, cfg.JointReduction, cfg.JointOffset)
		if err != nil {
			return nil, fmt.Errorf("transmission %q: %w", cfg.Name, err)
		}
		return t, nil
	}

	// Unreachable: Validate rejects unknown types.
	return nil, fmt.Errorf("%w: %q", ErrTypeUnknown, cfg.Type)
}
