package cli

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-robotics/gearbox/internal/capture"
	"github.com/mesh-robotics/gearbox/internal/loop"
)

func newRunCmd() *cobra.Command {
	var (
		duration    time.Duration
		rateHz      float64
		amplitude   float64
		frequency   float64
		phaseStep   float64
		capturePath string
		sessionName string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a simulated control session",
		Long: "Run drives every actuator of the robot description with a sine\n" +
			"profile, propagates actuator state to joint state each cycle, and\n" +
			"optionally records the session to a capture database.",
		RunE: func(cmd *cobra.Command, args []string) error {
			configs, err := loadTransmissions(flags.configFile)
			if err != nil {
				return err
			}

			source := loop.SineSource{
				Amplitude: amplitude,
				Frequency: frequency,
				PhaseStep: phaseStep,
			}

			var recorder loop.Recorder
			var store *capture.Store
			var sessionID string
			if capturePath != "" {
				store, err = capture.Open(capturePath)
				if err != nil {
					return err
				}
				defer store.Close()

				sessionID, err = store.BeginSession(sessionName, rateHz)
				if err != nil {
					return err
				}
				recorder = capture.NewSessionRecorder(store, sessionID)
			}

			runner, err := loop.New(configs, rateHz, source, recorder)
			if err != nil {
				return err
			}

			cycles, err := runner.Run(cmd.Context(), duration)
			if err != nil {
				return err
			}

			if store != nil {
				if err := store.EndSession(sessionID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "session: %s\n", sessionID)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "completed %d cycles at %g Hz\n", cycles, rateHz)
			printPositions(cmd, "joint positions:", runner.JointPositions())
			return nil
		},
	}

	cmd.Flags().DurationVar(&duration, "duration", 2*time.Second, "how long to run")
	cmd.Flags().Float64Var(&rateHz, "rate", 100.0, "control cycle rate in Hz")
	cmd.Flags().Float64Var(&amplitude, "amplitude", 1.0, "actuator sine amplitude")
	cmd.Flags().Float64Var(&frequency, "frequency", 0.5, "actuator sine frequency in Hz")
	cmd.Flags().Float64Var(&phaseStep, "phase-step", math.Pi/2.0, "phase shift between actuators in radians")
	cmd.Flags().StringVar(&capturePath, "capture", "", "capture database path (omit to skip recording)")
	cmd.Flags().StringVar(&sessionName, "session", "run", "session name for the capture database")

	return cmd
}

// printPositions writes name: value lines in sorted name order.
func printPositions(cmd *cobra.Command, header string, positions map[string]float64) {
	fmt.Fprintln(cmd.OutOrStdout(), header)
	names := make([]string, 0, len(positions))
	for name := range positions {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s: %.6f\n", name, positions[name])
	}
}
