package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-robotics/gearbox/pkg/transmission"
)

// Conversion direction names.
const (
	directionActuatorToJoint = "a2j"
	directionJointToActuator = "j2a"
)

// Quantity names accepted by --quantity.
const (
	quantityEffort   = "effort"
	quantityVelocity = "velocity"
	quantityPosition = "position"
)

func newConvertCmd() *cobra.Command {
	var (
		transmissionName string
		quantity         string
		direction        string
	)

	cmd := &cobra.Command{
		Use:   "convert [values...]",
		Short: "Convert values between actuator and joint space",
		Long: "Convert maps the given values through one transmission of the robot\n" +
			"description. The value count must match the input side of the\n" +
			"conversion: actuators for a2j, joints for j2a.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configs, err := loadTransmissions(flags.configFile)
			if err != nil {
				return err
			}
			cfg, err := findTransmission(configs, transmissionName)
			if err != nil {
				return err
			}
			trans, err := transmission.New(cfg)
			if err != nil {
				return err
			}

			in := make([]float64, len(args))
			for i, arg := range args {
				in[i], err = strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("value %q is not a number", arg)
				}
			}

			out, err := convert(trans, direction, quantity, in)
			if err != nil {
				return err
			}

			formatted := make([]string, len(out))
			for i, value := range out {
				formatted[i] = strconv.FormatFloat(value, 'g', -1, 64)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(formatted, " "))
			return nil
		},
	}

	cmd.Flags().StringVarP(&transmissionName, "transmission", "t", "", "transmission name from the robot description")
	cmd.MarkFlagRequired("transmission")
	cmd.Flags().StringVarP(&quantity, "quantity", "q", quantityPosition, "quantity to convert (effort|velocity|position)")
	cmd.Flags().StringVarP(&direction, "direction", "d", directionActuatorToJoint, "conversion direction (a2j|j2a)")

	return cmd
}

// convert validates the input arity for the requested direction and applies
// the selected mapping.
func convert(trans transmission.Transmission, direction, quantity string, in []float64) ([]float64, error) {
	var numIn, numOut int
	switch direction {
	case directionActuatorToJoint:
		numIn, numOut = trans.NumActuators(), trans.NumJoints()
	case directionJointToActuator:
		numIn, numOut = trans.NumJoints(), trans.NumActuators()
	default:
		return nil, fmt.Errorf("unknown direction %q (want a2j or j2a)", direction)
	}
	if len(in) != numIn {
		return nil, fmt.Errorf("direction %s expects %d input values, got %d", direction, numIn, len(in))
	}

	out := make([]float64, numOut)
	switch direction + "/" + quantity {
	case directionActuatorToJoint + "/" + quantityEffort:
		trans.ActuatorToJointEffort(in, out)
	case directionActuatorToJoint + "/" + quantityVelocity:
		trans.ActuatorToJointVelocity(in, out)
	case directionActuatorToJoint + "/" + quantityPosition:
		trans.ActuatorToJointPosition(in, out)
	case directionJointToActuator + "/" + quantityEffort:
		trans.JointToActuatorEffort(in, out)
	case directionJointToActuator + "/" + quantityVelocity:
		trans.JointToActuatorVelocity(in, out)
	case directionJointToActuator + "/" + quantityPosition:
		trans.JointToActuatorPosition(in, out)
	default:
		return nil, fmt.Errorf("unknown quantity %q (want effort, velocity, or position)", quantity)
	}
	return out, nil
}
