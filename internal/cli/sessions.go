package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mesh-robotics/gearbox/internal/capture"
)

func newSessionsCmd() *cobra.Command {
	var capturePath string

	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Inspect recorded capture sessions",
	}
	cmd.PersistentFlags().StringVar(&capturePath, "capture", "", "capture database path")
	cmd.MarkPersistentFlagRequired("capture")

	list := &cobra.Command{
		Use:   "list",
		Short: "List recorded sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := capture.Open(capturePath)
			if err != nil {
				return err
			}
			defer store.Close()

			sessions, err := store.Sessions()
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no sessions recorded")
				return nil
			}
			for _, sess := range sessions {
				state := "running"
				if sess.EndedAt != nil {
					state = "ended"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %g Hz  %s  %s\n",
					sess.ID, sess.Name, sess.RateHz,
					sess.StartedAt.Format("2006-01-02 15:04:05"), state)
			}
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show <session-id>",
		Short: "Show the recorded cycles of one session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := capture.Open(capturePath)
			if err != nil {
				return err
			}
			defer store.Close()

			sess, err := store.Session(args[0])
			if err != nil {
				return err
			}
			cycles, err := store.Cycles(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "session %s (%s, %g Hz, %d cycles)\n",
				sess.ID, sess.Name, sess.RateHz, len(cycles))
			for _, c := range cycles {
				fmt.Fprintf(cmd.OutOrStdout(), "cycle %d  t=%.3fms  %s\n",
					c.Cycle, c.ElapsedMS, formatValues(c.Joints))
			}
			return nil
		},
	}

	cmd.AddCommand(list)
	cmd.AddCommand(show)
	return cmd
}

// formatValues renders a value map as "name=value" pairs in name order.
func formatValues(values map[string]float64) string {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	out := ""
	for i, name := range names {
		if i > 0 {
			out += "  "
		}
		out += fmt.Sprintf("%s=%.6f", name, values[name])
	}
	return out
}
