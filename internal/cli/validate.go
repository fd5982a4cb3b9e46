package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-robotics/gearbox/pkg/transmission"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the robot description",
		Long: "Validate loads the robot description, checks every transmission\n" +
			"definition, and instantiates each variant to verify its parameters.",
		RunE: func(cmd *cobra.Command, args []string) error {
			configs, err := loadTransmissions(flags.configFile)
			if err != nil {
				return err
			}

			failed := false
			for _, cfg := range configs {
				if _, err := transmission.New(cfg); err != nil {
					failed = true
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", cfg.Name, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%s, %d actuators, %d joints)\n",
					cfg.Name, cfg.Type, len(cfg.Actuators), len(cfg.Joints))
			}
			if failed {
				return errors.New("robot description is invalid")
			}
			return nil
		},
	}
}
