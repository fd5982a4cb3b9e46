package transmission

import "fmt"

// Quantity selects which physical quantity a command propagation maps.
type Quantity int

// Quantities a transmission converts.
const (
	Position Quantity = iota
	Velocity
	Effort
)

// String returns the lowercase quantity name.
func (q Quantity) String() string {
	switch q {
	case Position:
		return "position"
	case Velocity:
		return "velocity"
	case Effort:
		return "effort"
	}
	return fmt.Sprintf("quantity(%d)", int(q))
}

// ActuatorData points at caller-owned actuator-space storage, one slot per
// actuator and quantity. The caller retains ownership; a Handle only reads
// and writes through the slots.
type ActuatorData struct {
	Position []*float64
	Velocity []*float64
	Effort   []*float64
}

// JointData points at caller-owned joint-space storage, one slot per joint
// and quantity.
type JointData struct {
	Position []*float64
	Velocity []*float64
	Effort   []*float64
}

// Handle binds a named Transmission to live actuator and joint value slots
// and propagates quantities between them. A Handle carries scratch buffers
// reused across calls, so a single Handle must not be used from multiple
// goroutines concurrently; the Transmission itself may be shared.
type Handle struct {
	name     string
	trans    Transmission
	actuator ActuatorData
	joint    JointData

	actScratch []float64
	jntScratch []float64
}

// NewHandle binds a transmission to actuator and joint value slots.
// Every slot slice must have exactly the transmission's arity and contain no
// nil pointers. Returns a sentinel error from this package otherwise.
func NewHandle(name string, trans Transmission, actuator ActuatorData, joint JointData) (*Handle, error) {
	if name == "" {
		return nil, ErrNameEmpty
	}
	if trans == nil {
		return nil, fmt.Errorf("handle %q: %w", name, ErrNilTransmission)
	}

	numActuators := trans.NumActuators()
	numJoints := trans.NumJoints()
	for _, slots := range [][]*float64{actuator.Position, actuator.Velocity, actuator.Effort} {
		if err := checkSlots(name, slots, numActuators); err != nil {
			return nil, err
		}
	}
	for _, slots := range [][]*float64{joint.Position, joint.Velocity, joint.Effort} {
		if err := checkSlots(name, slots, numJoints); err != nil {
			return nil, err
		}
	}

	return &Handle{
		name:       name,
		trans:      trans,
		actuator:   actuator,
		joint:      joint,
		actScratch: make([]float64, numActuators),
		jntScratch: make([]float64, numJoints),
	}, nil
}

// checkSlots validates one quantity's slot slice against the expected count.
func checkSlots(name string, slots []*float64, want int) error {
	if len(slots) != want {
		return fmt.Errorf("handle %q: %w", name, ErrSlotCount)
	}
	for _, p := range slots {
		if p == nil {
			return fmt.Errorf("handle %q: %w", name, ErrNilSlot)
		}
	}
	return nil
}

// Name returns the handle name.
func (h *Handle) Name() string { return h.name }

// Transmission returns the bound transmission.
func (h *Handle) Transmission() Transmission { return h.trans }

// PropagateActuatorToJointState maps the current actuator position,
// velocity, and effort values through the transmission into the joint slots.
func (h *Handle) PropagateActuatorToJointState() {
	gather(h.actuator.Position, h.actScratch)
	h.trans.ActuatorToJointPosition(h.actScratch, h.jntScratch)
	scatter(h.jntScratch, h.joint.Position)

	gather(h.actuator.Velocity, h.actScratch)
	h.trans.ActuatorToJointVelocity(h.actScratch, h.jntScratch)
	scatter(h.jntScratch, h.joint.Velocity)

	gather(h.actuator.Effort, h.actScratch)
	h.trans.ActuatorToJointEffort(h.actScratch, h.jntScratch)
	scatter(h.jntScratch, h.joint.Effort)
}

// PropagateJointToActuatorCommand maps the current joint values of one
// quantity through the transmission into the actuator slots.
func (h *Handle) PropagateJointToActuatorCommand(q Quantity) {
	switch q {
	case Position:
		gather(h.joint.Position, h.jntScratch)
		h.trans.JointToActuatorPosition(h.jntScratch, h.actScratch)
		scatter(h.actScratch, h.actuator.Position)
	case Velocity:
		gather(h.joint.Velocity, h.jntScratch)
		h.trans.JointToActuatorVelocity(h.jntScratch, h.actScratch)
		scatter(h.actScratch, h.actuator.Velocity)
	case Effort:
		gather(h.joint.Effort, h.jntScratch)
		h.trans.JointToActuatorEffort(h.jntScratch, h.actScratch)
		scatter(h.actScratch, h.actuator.Effort)
	default:
		panic(fmt.Sprintf("transmission: unknown quantity %d", int(q)))
	}
}

// gather copies slot values into a scratch slice.
func gather(slots []*float64, scratch []float64) {
	for i, p := range slots {
		scratch[i] = *p
	}
}

// scatter copies scratch values back out through the slots.
func scatter(scratch []float64, slots []*float64) {
	for i, p := range slots {
		*p = scratch[i]
	}
}
