package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/akshara/internal/curriculum"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show learned percentage per letter group",
	RunE: func(cmd *cobra.Command, args []string) error {
		modes := curriculum.Modes()
		if m, _ := cmd.Flags().GetString("mode"); m != "" {
			mode, err := curriculum.ParseMode(m)
			if err != nil {
				return err
			}
			modes = []curriculum.Mode{mode}
		}

		l, cleanup, err := openLearner(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer cleanup()

		out := cmd.OutOrStdout()
		for i, mode := range modes {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%s\n", mode.Label())
			fmt.Fprintln(out, strings.Repeat("─", 52))
			for _, g := range l.Progress.Summary(cmd.Context(), mode) {
				fmt.Fprintf(out, "%-28s  %2d/%-2d  %3d%%  %s\n",
					g.Group, g.Learned, g.Total, g.Percent, bar(g.Percent, 10))
			}
		}
		return nil
	},
}

func init() {
	progressCmd.Flags().String("mode", "", "Show only one mode (write or read)")
}

// bar renders a fixed-width text progress bar.
func bar(percent, width int) string {
	filled := min(max(percent, 0), 100) * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
