// Package cli implements the gearbox command-line interface: validating
// robot descriptions, one-shot conversions, simulated control sessions, and
// capture inspection.
// See docs/ARCHITECTURE.md § CLI.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configFile string
}

var flags rootFlags

// NewRootCmd creates the top-level "gearbox" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gearbox",
		Short: "Actuator and joint space conversions for robot transmissions",
		Long: "Gearbox converts effort, velocity, and position quantities between\n" +
			"actuator space and joint space for the transmissions of a robot\n" +
			"description, and runs simulated control sessions over them.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.configFile, "config", "",
		"robot description file (default: gearbox.yaml in the working or user config directory)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newConvertCmd())
	root.AddCommand(newRunCmd())
	root.AddCommand(newSessionsCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(exitUserError)
	}
}
